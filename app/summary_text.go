package app

import (
	"fmt"
	"strings"

	"viromex/domain/taxa"
)

// BuildOneHealthSummary renders the plain-text report offered on the
// overview tab and as a download. The wording is stable so downstream
// scripts can grep it.
func BuildOneHealthSummary(a *Analysis) string {
	highRelevance := 0
	spilloverFlagged := 0
	unknownHost := 0
	for _, rec := range a.Records {
		if rec.OneHealth == taxa.OneHealthHigh {
			highRelevance++
		}
		if taxa.IsSpilloverFlagged(rec.Spillover) {
			spilloverFlagged++
		}
		if rec.Host == taxa.HostUnknown {
			unknownHost++
		}
	}

	lines := []string{
		fmt.Sprintf("Total viral taxa detected: %d", len(a.Records)),
		fmt.Sprintf("Total reads: %d", a.Stats.TotalReads),
		fmt.Sprintf("Shannon diversity: %.3f", a.Diversity.Shannon),
		fmt.Sprintf("Simpson diversity (1-D): %.3f", a.Diversity.Simpson),
		fmt.Sprintf("High One Health relevance taxa: %d", highRelevance),
		fmt.Sprintf("Taxa with potential spillover relevance: %d", spilloverFlagged),
		fmt.Sprintf("Unknown or environmental host taxa: %d", unknownHost),
		"",
		"Top 5 most abundant viral taxa:",
	}

	for _, rec := range taxa.TopTaxa(a.Records, 5) {
		lines = append(lines, fmt.Sprintf("- %s (%d reads)", rec.Name, rec.Count))
	}

	lines = append(lines, "", "Top viral families:")
	listed := 0
	for _, fam := range a.Families {
		if fam.Label == taxa.UnclassifiedFamily {
			continue
		}
		if listed == 3 {
			break
		}
		lines = append(lines, fmt.Sprintf("- %s (%d taxa, %d reads)", fam.Label, fam.TaxonCount, fam.TotalCount))
		listed++
	}
	if listed == 0 {
		lines = append(lines, "- none classified")
	}

	lines = append(lines, "", "Host category composition:")
	for _, host := range a.Hosts {
		lines = append(lines, fmt.Sprintf("- %s: %d taxa, %d reads", host.Label, host.TaxonCount, host.TotalCount))
	}

	if a.DroppedRows > 0 {
		lines = append(lines, "",
			fmt.Sprintf("Note: %d of %d input rows dropped during validation.", a.DroppedRows, a.TotalRows))
	}

	return strings.Join(lines, "\n")
}
