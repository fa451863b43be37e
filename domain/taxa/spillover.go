package taxa

// spilloverByHost is the static host -> spillover relevance mapping.
// Mammal-associated taxa are the primary cross-species transmission
// interest; bird- and insect-associated taxa are watchlist material;
// phage hosts are not a spillover concern.
var spilloverByHost = map[HostCategory]Relevance{
	HostMammalian: RelevanceLikely,
	HostAvian:     RelevancePossible,
	HostInsect:    RelevancePossible,
	HostBacterial: RelevanceUnlikely,
	HostUnknown:   RelevanceUnknown,
}

// oneHealthByHost grades overall One Health interest per host category.
var oneHealthByHost = map[HostCategory]OneHealthLevel{
	HostMammalian: OneHealthHigh,
	HostAvian:     OneHealthModerate,
	HostInsect:    OneHealthModerate,
	HostBacterial: OneHealthLow,
	HostUnknown:   OneHealthUncertain,
}

// SpilloverFor returns the spillover relevance tag for a host category.
func SpilloverFor(host HostCategory) Relevance {
	if rel, ok := spilloverByHost[host]; ok {
		return rel
	}
	return RelevanceUnknown
}

// OneHealthFor returns the One Health interest level for a host category.
func OneHealthFor(host HostCategory) OneHealthLevel {
	if level, ok := oneHealthByHost[host]; ok {
		return level
	}
	return OneHealthUncertain
}

// IsSpilloverFlagged reports whether a relevance tag belongs in the
// spillover-focused view.
func IsSpilloverFlagged(rel Relevance) bool {
	return rel == RelevanceLikely || rel == RelevancePossible
}
