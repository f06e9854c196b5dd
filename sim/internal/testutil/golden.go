// Package testutil provides shared test infrastructure for the elevator simulator.
// It holds the golden dataset types and assertion helpers used by the sim tests.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is one fully scripted run: a building, a strategy and a fixed list
// of arrivals, together with the outcome it must produce.
type GoldenTestCase struct {
	Name          string          `json:"name"`
	Floors        int             `json:"floors"`
	Capacities    []int           `json:"capacities"`
	Strategy      string          `json:"strategy"`
	BoardingTicks int64           `json:"boarding_ticks"`
	Steps         int64           `json:"steps"`
	Arrivals      []GoldenArrival `json:"arrivals"`
	Metrics       GoldenMetrics   `json:"metrics"`
}

// GoldenArrival is a passenger injected before the given tick runs.
type GoldenArrival struct {
	Tick        int64 `json:"tick"`
	Source      int   `json:"source"`
	Destination int   `json:"destination"`
}

// GoldenMetrics represents the expected outcome of a golden test case.
type GoldenMetrics struct {
	// Exact match metrics (integers)
	Transported int   `json:"transported"`
	TotalMoves  int64 `json:"total_moves"`

	// Delivery ticks, in delivery order
	DeliveryTicks []int64 `json:"delivery_ticks"`

	MeanWait float64 `json:"mean_wait"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
