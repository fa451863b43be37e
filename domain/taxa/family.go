package taxa

import (
	"regexp"
	"strings"
)

// viridaePattern matches a formal ICTV-style family name embedded in a taxon
// name, e.g. "Siphoviridae sp." or "human Herpesviridae isolate".
var viridaePattern = regexp.MustCompile(`\b([a-z]+viridae)\b`)

// familyFragment maps a name fragment to the family label it implies.
// Evaluated in order; first match wins.
type familyFragment struct {
	fragment string
	family   string
}

// familyFragments covers common Kraken-style names that omit the formal
// family, mostly phages and insect viruses named by their host.
var familyFragments = []familyFragment{
	{"nucleopolyhedrovirus", "Baculoviridae"},
	{"granulovirus", "Baculoviridae"},
	{"baculovirus", "Baculoviridae"},
	{"ascovirus", "Ascoviridae"},
	{"nudivirus", "Nudiviridae"},
	{"herpes", "Herpesviridae"},
	{"papilloma", "Papillomaviridae"},
	{"adenovirus", "Adenoviridae"},
	{"poxvirus", "Poxviridae"},
	{"phage", "Caudoviricetes (phage)"},
}

// ExtractFamily derives a viral family label from a taxon name. A formal
// "-viridae" token takes precedence over fragment rules. Total over all
// input; no match yields UnclassifiedFamily.
func ExtractFamily(taxonName string) string {
	n := strings.ToLower(taxonName)

	if m := viridaePattern.FindStringSubmatch(n); m != nil {
		return strings.ToUpper(m[1][:1]) + m[1][1:]
	}

	for _, rule := range familyFragments {
		if strings.Contains(n, rule.fragment) {
			return rule.family
		}
	}
	return UnclassifiedFamily
}

// ClassifyVirusType splits taxa into phages and eukaryotic viruses by name.
func ClassifyVirusType(taxonName string) VirusType {
	n := strings.ToLower(taxonName)
	switch {
	case strings.Contains(n, "phage"):
		return VirusTypePhage
	case strings.Contains(n, "virus"):
		return VirusTypeEukaryotic
	default:
		return VirusTypeUnknown
	}
}
