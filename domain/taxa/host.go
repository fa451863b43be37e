package taxa

import (
	"strings"
)

// hostRule maps a keyword set to a host category and confidence grade.
// A rule matches when any of its keywords appears in the lowercased name.
type hostRule struct {
	keywords   []string
	host       HostCategory
	confidence Confidence
}

// hostRules is the ordered rule table for host inference. Order matters:
// the first matching rule decides, so phage detection must precede the
// eukaryotic rules ("Salmonella phage" would otherwise never resolve).
var hostRules = []hostRule{
	{[]string{"phage"}, HostBacterial, ConfidenceHigh},
	{[]string{"herpes", "papilloma", "pox", "adeno"}, HostMammalian, ConfidenceHigh},
	{[]string{"avian", "gallid", "chicken", "fowl"}, HostAvian, ConfidenceMedium},
	{[]string{"baculovirus", "ascovirus", "nudivirus", "nucleopolyhedrovirus", "granulovirus"}, HostInsect, ConfidenceHigh},
}

// InferHost assigns a (host category, confidence) pair to a taxon name by
// evaluating the ordered rule table. Total: every name receives exactly one
// pair; no match falls through to (Unknown, Low).
func InferHost(taxonName string) (HostCategory, Confidence) {
	n := strings.ToLower(taxonName)
	for _, rule := range hostRules {
		for _, kw := range rule.keywords {
			if strings.Contains(n, kw) {
				return rule.host, rule.confidence
			}
		}
	}
	return HostUnknown, ConfidenceLow
}

// HostCategories lists all host categories in display order.
func HostCategories() []HostCategory {
	return []HostCategory{HostBacterial, HostMammalian, HostAvian, HostInsect, HostUnknown}
}
