package taxa

import (
	"sort"
)

// GroupSummary is one row of a grouped abundance table.
type GroupSummary struct {
	Label      string `json:"label"`
	TotalCount int    `json:"total_count"`
	TaxonCount int    `json:"taxon_count"`
	Rank       int    `json:"rank"`
}

// SummarizeByFamily groups annotated records by family and ranks the groups
// by total read count descending. Ties rank by label ascending so the
// ordering is deterministic.
func SummarizeByFamily(records []AnnotatedRecord) []GroupSummary {
	return summarize(records, func(r AnnotatedRecord) string { return r.Family })
}

// SummarizeByHost groups annotated records by host category, ranked the
// same way as SummarizeByFamily.
func SummarizeByHost(records []AnnotatedRecord) []GroupSummary {
	return summarize(records, func(r AnnotatedRecord) string { return string(r.Host) })
}

// SummarizeByRelevance groups annotated records by spillover relevance tag.
func SummarizeByRelevance(records []AnnotatedRecord) []GroupSummary {
	return summarize(records, func(r AnnotatedRecord) string { return string(r.Spillover) })
}

func summarize(records []AnnotatedRecord, key func(AnnotatedRecord) string) []GroupSummary {
	totals := make(map[string]*GroupSummary)
	for _, rec := range records {
		label := key(rec)
		group, ok := totals[label]
		if !ok {
			group = &GroupSummary{Label: label}
			totals[label] = group
		}
		group.TotalCount += rec.Count
		group.TaxonCount++
	}

	summaries := make([]GroupSummary, 0, len(totals))
	for _, group := range totals {
		summaries = append(summaries, *group)
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].TotalCount != summaries[j].TotalCount {
			return summaries[i].TotalCount > summaries[j].TotalCount
		}
		return summaries[i].Label < summaries[j].Label
	})
	for i := range summaries {
		summaries[i].Rank = i + 1
	}
	return summaries
}

// TopTaxa returns the n most abundant records, count descending with
// name-ascending tiebreak. The input slice is not modified.
func TopTaxa(records []AnnotatedRecord, n int) []AnnotatedRecord {
	sorted := make([]AnnotatedRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Count != sorted[j].Count {
			return sorted[i].Count > sorted[j].Count
		}
		return sorted[i].Name < sorted[j].Name
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// RankAbundancePoint is one point of a rank-abundance (Whittaker) curve.
type RankAbundancePoint struct {
	Rank  int `json:"rank"`
	Count int `json:"count"`
}

// RankAbundance returns counts sorted descending with 1-based ranks.
func RankAbundance(records []AnnotatedRecord) []RankAbundancePoint {
	counts := make([]int, len(records))
	for i, rec := range records {
		counts[i] = rec.Count
	}
	sort.Sort(sort.Reverse(sort.IntSlice(counts)))

	points := make([]RankAbundancePoint, len(counts))
	for i, c := range counts {
		points[i] = RankAbundancePoint{Rank: i + 1, Count: c}
	}
	return points
}

// Counts extracts the raw count vector from a record set.
func Counts(records []AnnotatedRecord) []int {
	counts := make([]int, len(records))
	for i, rec := range records {
		counts[i] = rec.Count
	}
	return counts
}
