// Package testutil holds float64 assertion helpers shared by the dsp tests.
package testutil

import (
	"math"
	"testing"
)

// RequireNear fails t if got and want differ by more than eps.
func RequireNear(t *testing.T, got, want, eps float64) {
	t.Helper()
	if math.Abs(got-want) > eps {
		t.Fatalf("got %v, want %v (diff %v > eps %v)", got, want, math.Abs(got-want), eps)
	}
}

// RequireNearSlice fails t if got and want differ in length or any element
// pair exceeds eps (absolute tolerance).
func RequireNearSlice(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if math.Abs(got[i]-want[i]) > eps {
			t.Fatalf("index %d: got %v, want %v (eps %v)", i, got[i], want[i], eps)
		}
	}
}

// RequireIdentical fails t if got and want are not bit-for-bit equal.
func RequireIdentical(t *testing.T, got, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v (not identical)", i, got[i], want[i])
		}
	}
}

// RequireSymmetricAbout fails t if data is not mirror-symmetric about the
// given center index within eps. Indices falling outside data are skipped.
func RequireSymmetricAbout(t *testing.T, data []float64, center int, eps float64) {
	t.Helper()
	for j := 1; ; j++ {
		lo, hi := center-j, center+j
		if lo < 0 || hi >= len(data) {
			return
		}
		if math.Abs(data[lo]-data[hi]) > eps {
			t.Fatalf("data[%d] = %v, data[%d] = %v: not symmetric about %d", lo, data[lo], hi, data[hi], center)
		}
	}
}
