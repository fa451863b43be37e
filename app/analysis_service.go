package app

import (
	"io"
	"log"
	"sort"
	"sync"
	"time"

	"viromex/adapters/tabular"
	"viromex/domain/core"
	"viromex/domain/diversity"
	"viromex/domain/taxa"
	"viromex/internal/errors"
)

// Analysis is the immutable result of annotating one uploaded count table.
// Everything in it is a pure function of the source rows plus the static
// rule tables, so it is never mutated after creation; filtered views are
// derived on demand.
type Analysis struct {
	ID          core.AnalysisID        `json:"id"`
	SourceName  string                 `json:"source_name"`
	CreatedAt   time.Time              `json:"created_at"`
	Records     []taxa.AnnotatedRecord `json:"records"`
	TotalRows   int                    `json:"total_rows"`
	DroppedRows int                    `json:"dropped_rows"`
	Diversity   diversity.Summary      `json:"diversity"`
	Stats       diversity.VectorStats  `json:"stats"`
	Families    []taxa.GroupSummary    `json:"families"`
	Hosts       []taxa.GroupSummary    `json:"hosts"`
	Relevance   []taxa.GroupSummary    `json:"relevance"`
}

// AnalysisService runs the annotation pipeline and keeps finished analyses
// in a per-process, in-memory store. Nothing is persisted; an analysis
// lives as long as the process and is re-derivable from its source table.
type AnalysisService struct {
	mu       sync.RWMutex
	analyses map[core.AnalysisID]*Analysis
}

// NewAnalysisService creates an empty analysis service.
func NewAnalysisService() *AnalysisService {
	return &AnalysisService{
		analyses: make(map[core.AnalysisID]*Analysis),
	}
}

// AnalyzeReader loads a table from a stream (an upload), runs the full
// pipeline, and stores the result under a fresh ID.
func (s *AnalysisService) AnalyzeReader(src io.Reader, filename string) (*Analysis, error) {
	table, err := tabular.ReadTableFrom(src, filename)
	if err != nil {
		return nil, err
	}
	return s.analyzeTable(table, filename)
}

// AnalyzeFile loads a table from disk (DATA_FILE preload or CLI input).
func (s *AnalysisService) AnalyzeFile(path string) (*Analysis, error) {
	table, err := tabular.NewDataReader(path).ReadTable()
	if err != nil {
		return nil, err
	}
	return s.analyzeTable(table, path)
}

func (s *AnalysisService) analyzeTable(table *tabular.Table, sourceName string) (*Analysis, error) {
	report, err := tabular.ValidateCounts(table)
	if err != nil {
		return nil, err
	}

	records := taxa.Annotate(report.Records)
	counts := taxa.Counts(records)

	div, err := diversity.Compute(counts)
	if err != nil {
		return nil, err
	}

	analysis := &Analysis{
		ID:          core.AnalysisID(core.NewID()),
		SourceName:  sourceName,
		CreatedAt:   time.Now().UTC(),
		Records:     records,
		TotalRows:   report.TotalRows,
		DroppedRows: report.DroppedRows,
		Diversity:   div,
		Stats:       diversity.DescribeCounts(counts),
		Families:    taxa.SummarizeByFamily(records),
		Hosts:       taxa.SummarizeByHost(records),
		Relevance:   taxa.SummarizeByRelevance(records),
	}

	s.mu.Lock()
	s.analyses[analysis.ID] = analysis
	s.mu.Unlock()

	log.Printf("[AnalysisService] Analysis %s ready: %d taxa, %d reads, %d rows dropped",
		analysis.ID, analysis.Stats.TaxonCount, analysis.Stats.TotalReads, analysis.DroppedRows)
	return analysis, nil
}

// Get retrieves a stored analysis by ID.
func (s *AnalysisService) Get(id core.AnalysisID) (*Analysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	analysis, ok := s.analyses[id]
	if !ok {
		return nil, errors.NotFound("analysis " + id.String())
	}
	return analysis, nil
}

// Latest returns the most recently created analysis, if any.
func (s *AnalysisService) Latest() (*Analysis, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var latest *Analysis
	for _, a := range s.analyses {
		if latest == nil || a.CreatedAt.After(latest.CreatedAt) {
			latest = a
		}
	}
	return latest, latest != nil
}

// SpilloverRecords returns the records flagged Likely or Possible, sorted
// by count descending. An empty result is the expected outcome for clean
// samples, not an error.
func (a *Analysis) SpilloverRecords() []taxa.AnnotatedRecord {
	flagged := make([]taxa.AnnotatedRecord, 0)
	for _, rec := range a.Records {
		if taxa.IsSpilloverFlagged(rec.Spillover) {
			flagged = append(flagged, rec)
		}
	}
	sort.Slice(flagged, func(i, j int) bool {
		if flagged[i].Count != flagged[j].Count {
			return flagged[i].Count > flagged[j].Count
		}
		return flagged[i].Name < flagged[j].Name
	})
	return flagged
}
