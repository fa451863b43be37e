package taxa

// TaxonRecord is one validated row of an uploaded count table: a non-empty
// taxon name and a positive read count.
type TaxonRecord struct {
	Name  string `json:"taxon"`
	Count int    `json:"count"`
}

// HostCategory is the inferred host group for a taxon.
type HostCategory string

const (
	HostBacterial HostCategory = "Bacterial"
	HostMammalian HostCategory = "Mammalian"
	HostAvian     HostCategory = "Avian"
	HostInsect    HostCategory = "Insect"
	HostUnknown   HostCategory = "Unknown"
)

// Confidence grades how firmly a host rule matched.
type Confidence string

const (
	ConfidenceHigh   Confidence = "High"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceLow    Confidence = "Low"
)

// Relevance is the spillover-interest tag derived from the host category.
// It is a screening heuristic, not a diagnostic claim.
type Relevance string

const (
	RelevanceLikely   Relevance = "Likely"
	RelevancePossible Relevance = "Possible"
	RelevanceUnlikely Relevance = "Unlikely"
	RelevanceUnknown  Relevance = "Unknown"
)

// OneHealthLevel grades overall One Health interest for a taxon.
type OneHealthLevel string

const (
	OneHealthHigh      OneHealthLevel = "High"
	OneHealthModerate  OneHealthLevel = "Moderate"
	OneHealthLow       OneHealthLevel = "Low"
	OneHealthUncertain OneHealthLevel = "Uncertain"
)

// VirusType is the coarse split between phages and eukaryotic viruses.
type VirusType string

const (
	VirusTypePhage      VirusType = "Phage"
	VirusTypeEukaryotic VirusType = "Eukaryotic virus"
	VirusTypeUnknown    VirusType = "Unknown"
)

// UnclassifiedFamily is the family label for taxa whose name carries no
// recognizable family token.
const UnclassifiedFamily = "Unclassified"

// AnnotatedRecord is a TaxonRecord with the full rule-derived annotation
// attached. Immutable once created; one-to-one with its source record.
type AnnotatedRecord struct {
	TaxonRecord
	Family     string         `json:"family"`
	VirusType  VirusType      `json:"virus_type"`
	Host       HostCategory   `json:"host_category"`
	Confidence Confidence     `json:"confidence"`
	OneHealth  OneHealthLevel `json:"one_health_relevance"`
	Spillover  Relevance      `json:"spillover"`
}

// Annotate runs the full classification pipeline over the input records,
// order-preserving. Every record receives exactly one annotation; the
// pipeline is total and never fails.
func Annotate(records []TaxonRecord) []AnnotatedRecord {
	annotated := make([]AnnotatedRecord, len(records))
	for i, rec := range records {
		annotated[i] = annotateOne(rec)
	}
	return annotated
}

func annotateOne(rec TaxonRecord) AnnotatedRecord {
	host, conf := InferHost(rec.Name)
	return AnnotatedRecord{
		TaxonRecord: rec,
		Family:      ExtractFamily(rec.Name),
		VirusType:   ClassifyVirusType(rec.Name),
		Host:        host,
		Confidence:  conf,
		OneHealth:   OneHealthFor(host),
		Spillover:   SpilloverFor(host),
	}
}
