package testutil

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-sdr/dsp/iq"
)

// RequireSamplesEqual fails t if got and want differ in length or in any
// sample.
func RequireSamplesEqual(t *testing.T, got, want []iq.Sample) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

// RequireAllZero fails t if any sample is non-zero.
func RequireAllZero(t *testing.T, data []iq.Sample) {
	t.Helper()
	for i, s := range data {
		if !s.IsZero() {
			t.Fatalf("index %d: got %+v, want 0", i, s)
		}
	}
}

// MaxAbsDiff returns the largest per-component absolute difference between
// two sample slices. Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []iq.Sample) (int64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	var maxDiff int64
	for i := range a {
		maxDiff = max(maxDiff, abs64(int64(a[i].Re)-int64(b[i].Re)), abs64(int64(a[i].Im)-int64(b[i].Im)))
	}
	return maxDiff, nil
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
