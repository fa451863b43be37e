package app

import (
	"viromex/domain/diversity"
	"viromex/domain/taxa"
)

// Filter selects a subset of annotated records by host category and
// spillover relevance. Empty selections mean "no restriction".
type Filter struct {
	Hosts     []taxa.HostCategory
	Relevance []taxa.Relevance
}

// IsZero reports whether the filter restricts nothing.
func (f Filter) IsZero() bool {
	return len(f.Hosts) == 0 && len(f.Relevance) == 0
}

func (f Filter) matches(rec taxa.AnnotatedRecord) bool {
	if len(f.Hosts) > 0 && !containsHost(f.Hosts, rec.Host) {
		return false
	}
	if len(f.Relevance) > 0 && !containsRelevance(f.Relevance, rec.Spillover) {
		return false
	}
	return true
}

func containsHost(hosts []taxa.HostCategory, h taxa.HostCategory) bool {
	for _, candidate := range hosts {
		if candidate == h {
			return true
		}
	}
	return false
}

func containsRelevance(tags []taxa.Relevance, r taxa.Relevance) bool {
	for _, candidate := range tags {
		if candidate == r {
			return true
		}
	}
	return false
}

// View is a filtered snapshot of an analysis. All summaries, including the
// diversity indices, are recomputed from the filtered subset.
type View struct {
	Records   []taxa.AnnotatedRecord `json:"records"`
	Diversity diversity.Summary      `json:"diversity"`
	Stats     diversity.VectorStats  `json:"stats"`
	Families  []taxa.GroupSummary    `json:"families"`
	Hosts     []taxa.GroupSummary    `json:"hosts"`
	Relevance []taxa.GroupSummary    `json:"relevance"`
}

// View derives a filtered view. A filter that matches nothing produces a
// valid empty view (zero indices, empty summaries) so the UI can render a
// placeholder instead of failing.
func (a *Analysis) View(f Filter) *View {
	records := a.Records
	if !f.IsZero() {
		records = make([]taxa.AnnotatedRecord, 0, len(a.Records))
		for _, rec := range a.Records {
			if f.matches(rec) {
				records = append(records, rec)
			}
		}
	}

	counts := taxa.Counts(records)
	div, err := diversity.Compute(counts)
	if err != nil {
		div = diversity.Summary{}
	}

	return &View{
		Records:   records,
		Diversity: div,
		Stats:     diversity.DescribeCounts(counts),
		Families:  taxa.SummarizeByFamily(records),
		Hosts:     taxa.SummarizeByHost(records),
		Relevance: taxa.SummarizeByRelevance(records),
	}
}

// HostView narrows an analysis to a single host category.
func (a *Analysis) HostView(host taxa.HostCategory) *View {
	return a.View(Filter{Hosts: []taxa.HostCategory{host}})
}
