package taxa

import (
	"testing"
)

// TestExtractFamilyViridaeToken tests that a formal -viridae token is
// extracted and capitalized regardless of where it sits in the name.
func TestExtractFamilyViridaeToken(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"Siphoviridae sp.", "Siphoviridae"},
		{"human Herpesviridae isolate X", "Herpesviridae"},
		{"MYOVIRIDAE phage T4", "Myoviridae"},
		{"uncultured Microviridae", "Microviridae"},
	}

	for _, test := range tests {
		result := ExtractFamily(test.name)
		if result != test.expected {
			t.Errorf("ExtractFamily(%q) = %q, expected %q", test.name, result, test.expected)
		}
	}
}

// TestExtractFamilyFragments tests the fragment fallback rules for names
// that omit the formal family.
func TestExtractFamilyFragments(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"Autographa californica nucleopolyhedrovirus", "Baculoviridae"},
		{"Cydia pomonella granulovirus", "Baculoviridae"},
		{"Spodoptera frugiperda ascovirus 1a", "Ascoviridae"},
		{"Oryctes rhinoceros nudivirus", "Nudiviridae"},
		{"Human herpes simplex virus 1", "Herpesviridae"},
		{"Human papillomavirus type 16", "Papillomaviridae"},
		{"Human adenovirus C", "Adenoviridae"},
		{"Fowlpox virus", "Unclassified"},
		{"Vaccinia poxvirus", "Poxviridae"},
		{"Salmonella phage Chi", "Caudoviricetes (phage)"},
	}

	for _, test := range tests {
		result := ExtractFamily(test.name)
		if result != test.expected {
			t.Errorf("ExtractFamily(%q) = %q, expected %q", test.name, result, test.expected)
		}
	}
}

// TestExtractFamilyViridaeWinsOverFragment tests rule precedence: an
// explicit family token beats any fragment in the same name.
func TestExtractFamilyViridaeWinsOverFragment(t *testing.T) {
	result := ExtractFamily("Escherichia phage T7, Autographiviridae")
	if result != "Autographiviridae" {
		t.Errorf("Expected formal family to win, got %q", result)
	}
}

// TestExtractFamilyUnclassified tests that unmatched names fall through to
// the Unclassified label rather than erroring.
func TestExtractFamilyUnclassified(t *testing.T) {
	for _, name := range []string{"", "uncultured organism", "Torque teno mini virus 5"} {
		if result := ExtractFamily(name); result != UnclassifiedFamily {
			t.Errorf("ExtractFamily(%q) = %q, expected %q", name, result, UnclassifiedFamily)
		}
	}
}

// TestClassifyVirusType tests the phage / eukaryotic / unknown split.
func TestClassifyVirusType(t *testing.T) {
	tests := []struct {
		name     string
		expected VirusType
	}{
		{"Salmonella phage Chi", VirusTypePhage},
		{"Human herpesvirus 1", VirusTypeEukaryotic},
		{"Bacteriophage lambda", VirusTypePhage},
		{"uncultured organism", VirusTypeUnknown},
		{"", VirusTypeUnknown},
	}

	for _, test := range tests {
		result := ClassifyVirusType(test.name)
		if result != test.expected {
			t.Errorf("ClassifyVirusType(%q) = %q, expected %q", test.name, result, test.expected)
		}
	}
}
