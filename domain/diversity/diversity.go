// Package diversity computes alpha-diversity indices over taxon count
// vectors.
//
// Convention: Simpson is reported in its diversity form 1-D, where
// D = sum(p_i^2). Higher is more diverse, range [0, 1). The same form is
// used everywhere: computation, display, and exports.
package diversity

import (
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"viromex/internal/errors"
)

// Summary holds the alpha-diversity indices for one count vector.
type Summary struct {
	Shannon float64 `json:"shannon"`
	Simpson float64 `json:"simpson"`
}

// Compute calculates Shannon entropy (natural log) and Simpson diversity
// (1-D) over a count vector. Zero counts contribute nothing to either
// index. A vector with at most one nonzero count yields {0, 0}.
//
// Returns EMPTY_INPUT only for a genuinely empty slice; callers surface
// that as an empty-state message rather than an error page.
func Compute(counts []int) (Summary, error) {
	if len(counts) == 0 {
		return Summary{}, errors.EmptyInput("no counts to compute diversity over")
	}

	total := 0
	for _, c := range counts {
		if c > 0 {
			total += c
		}
	}
	if total == 0 {
		return Summary{}, nil
	}

	p := make([]float64, 0, len(counts))
	for _, c := range counts {
		if c > 0 {
			p = append(p, float64(c)/float64(total))
		}
	}

	// stat.Entropy skips zero-probability entries, so no log(0) terms can
	// arise even if a zero slipped through.
	shannon := stat.Entropy(p)
	if shannon < 0 {
		// Guard against -0.0 from float rounding on single-taxon vectors.
		shannon = 0
	}

	sumSquares := 0.0
	for _, pi := range p {
		sumSquares += pi * pi
	}

	return Summary{
		Shannon: shannon,
		Simpson: 1 - sumSquares,
	}, nil
}

// VectorStats summarizes a count vector for overview metrics.
type VectorStats struct {
	TotalReads int     `json:"total_reads"`
	TaxonCount int     `json:"taxon_count"`
	MaxCount   int     `json:"max_count"`
	MeanCount  float64 `json:"mean_count"`
}

// DescribeCounts computes headline statistics for the overview panel.
func DescribeCounts(counts []int) VectorStats {
	vs := VectorStats{TaxonCount: len(counts)}
	if len(counts) == 0 {
		return vs
	}

	data := make([]float64, len(counts))
	for i, c := range counts {
		vs.TotalReads += c
		data[i] = float64(c)
	}

	if max, err := stats.Max(data); err == nil {
		vs.MaxCount = int(max)
	}
	if mean, err := stats.Mean(data); err == nil {
		vs.MeanCount = mean
	}
	return vs
}
