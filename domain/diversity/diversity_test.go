package diversity

import (
	"math"
	"testing"

	"viromex/internal/errors"
)

// TestComputeKnownVector tests the indices against hand-computed values
// for a skewed three-taxon community.
func TestComputeKnownVector(t *testing.T) {
	counts := []int{4823, 4523, 7}
	total := 4823.0 + 4523.0 + 7.0

	wantShannon := 0.0
	wantSumSq := 0.0
	for _, c := range []float64{4823, 4523, 7} {
		p := c / total
		wantShannon -= p * math.Log(p)
		wantSumSq += p * p
	}

	summary, err := Compute(counts)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if math.Abs(summary.Shannon-wantShannon) > 1e-9 {
		t.Errorf("Shannon = %.9f, expected %.9f", summary.Shannon, wantShannon)
	}
	// Two near-equal dominant taxa and one negligible one land just under
	// ln(2).
	if summary.Shannon < 0.68 || summary.Shannon > 0.71 {
		t.Errorf("Shannon = %.3f, expected about 0.69 nats", summary.Shannon)
	}
	if math.Abs(summary.Simpson-(1-wantSumSq)) > 1e-9 {
		t.Errorf("Simpson = %.9f, expected %.9f", summary.Simpson, 1-wantSumSq)
	}
}

// TestComputeUniformVector tests that an even community maximizes Shannon
// at ln(n).
func TestComputeUniformVector(t *testing.T) {
	summary, err := Compute([]int{100, 100, 100, 100})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if math.Abs(summary.Shannon-math.Log(4)) > 1e-9 {
		t.Errorf("Shannon = %.9f, expected ln(4) = %.9f", summary.Shannon, math.Log(4))
	}
	if math.Abs(summary.Simpson-0.75) > 1e-9 {
		t.Errorf("Simpson = %.9f, expected 0.75", summary.Simpson)
	}
}

// TestComputeSingleTaxon tests the boundary: one taxon means zero
// diversity on both indices, never a negative zero.
func TestComputeSingleTaxon(t *testing.T) {
	summary, err := Compute([]int{5000})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if summary.Shannon != 0 || math.Signbit(summary.Shannon) {
		t.Errorf("Shannon = %v, expected exact 0", summary.Shannon)
	}
	if summary.Simpson != 0 {
		t.Errorf("Simpson = %v, expected 0", summary.Simpson)
	}
}

// TestComputeZeroCountsIgnored tests that zero entries do not perturb the
// indices.
func TestComputeZeroCountsIgnored(t *testing.T) {
	withZeros, err := Compute([]int{10, 0, 20, 0, 30})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	without, err := Compute([]int{10, 20, 30})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if withZeros != without {
		t.Errorf("Zero counts changed the result: %+v vs %+v", withZeros, without)
	}
}

// TestComputeAllZeros tests the all-zero vector edge.
func TestComputeAllZeros(t *testing.T) {
	summary, err := Compute([]int{0, 0, 0})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if summary.Shannon != 0 || summary.Simpson != 0 {
		t.Errorf("Expected {0, 0} for all-zero vector, got %+v", summary)
	}
}

// TestComputeEmptyInput tests the EMPTY_INPUT error on an empty slice.
func TestComputeEmptyInput(t *testing.T) {
	_, err := Compute(nil)
	if err == nil {
		t.Fatal("Expected error for empty input")
	}
	if !errors.HasCode(err, errors.CodeEmptyInput) {
		t.Errorf("Expected EMPTY_INPUT code, got %v", errors.GetCode(err))
	}
}

// TestComputeRanges tests the index ranges over assorted vectors: Shannon
// is nonnegative, Simpson stays in [0, 1).
func TestComputeRanges(t *testing.T) {
	vectors := [][]int{
		{1},
		{1, 1},
		{1, 999999},
		{3, 1, 4, 1, 5, 9, 2, 6},
		{100, 0, 0, 0},
	}

	for _, counts := range vectors {
		summary, err := Compute(counts)
		if err != nil {
			t.Fatalf("Compute(%v) failed: %v", counts, err)
		}
		if summary.Shannon < 0 {
			t.Errorf("Compute(%v) Shannon = %v, expected >= 0", counts, summary.Shannon)
		}
		if summary.Simpson < 0 || summary.Simpson >= 1 {
			t.Errorf("Compute(%v) Simpson = %v, expected in [0, 1)", counts, summary.Simpson)
		}
	}
}

// TestDescribeCounts tests the overview statistics.
func TestDescribeCounts(t *testing.T) {
	vs := DescribeCounts([]int{10, 20, 30})
	if vs.TotalReads != 60 {
		t.Errorf("TotalReads = %d, expected 60", vs.TotalReads)
	}
	if vs.TaxonCount != 3 {
		t.Errorf("TaxonCount = %d, expected 3", vs.TaxonCount)
	}
	if vs.MaxCount != 30 {
		t.Errorf("MaxCount = %d, expected 30", vs.MaxCount)
	}
	if math.Abs(vs.MeanCount-20) > 1e-9 {
		t.Errorf("MeanCount = %v, expected 20", vs.MeanCount)
	}
}

// TestDescribeCountsEmpty tests the zero-value result for no counts.
func TestDescribeCountsEmpty(t *testing.T) {
	vs := DescribeCounts(nil)
	if vs.TotalReads != 0 || vs.TaxonCount != 0 || vs.MaxCount != 0 || vs.MeanCount != 0 {
		t.Errorf("Expected zero stats for empty input, got %+v", vs)
	}
}
