package realfft

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-eq/internal/testutil"
)

func TestNewPlan_RejectsBadSizes(t *testing.T) {
	for _, size := range []int{-4, 0, 1, 3, 15} {
		if _, err := NewPlan(size); err == nil {
			t.Errorf("NewPlan(%d): expected error", size)
		}
		if _, err := NewDirect(size); err == nil {
			t.Errorf("NewDirect(%d): expected error", size)
		}
	}
}

func TestDirect_ForwardImpulse(t *testing.T) {
	const n = 8
	d, err := NewDirect(n)
	if err != nil {
		t.Fatal(err)
	}

	src := make([]float64, n)
	src[0] = 1
	dst := make([]float64, n)
	if err := d.Forward(dst, src); err != nil {
		t.Fatal(err)
	}

	// An impulse at lag zero has unit cosine coefficients and zero sine terms.
	want := []float64{1, 1, 1, 1, 1, 0, 0, 0}
	testutil.RequireNearSlice(t, dst, want, 1e-12)
}

func TestDirect_RoundTripScalesByN(t *testing.T) {
	const n = 16
	d, err := NewDirect(n)
	if err != nil {
		t.Fatal(err)
	}

	rng := rand.New(rand.NewSource(1))
	src := make([]float64, n)
	for i := range src {
		src[i] = rng.NormFloat64()
	}

	spec := make([]float64, n)
	back := make([]float64, n)
	if err := d.Forward(spec, src); err != nil {
		t.Fatal(err)
	}
	if err := d.Inverse(back, spec); err != nil {
		t.Fatal(err)
	}

	want := make([]float64, n)
	for i := range want {
		want[i] = src[i] * n
	}
	testutil.RequireNearSlice(t, back, want, 1e-9)
}

func TestDirect_InverseOfRealSpectrumIsSymmetric(t *testing.T) {
	const n = 32
	d, err := NewDirect(n)
	if err != nil {
		t.Fatal(err)
	}

	// Magnitude-only spectrum: all sine slots zero.
	spec := make([]float64, n)
	for i := 0; i <= n/2; i++ {
		spec[i] = 1 + 0.5*math.Sin(float64(i))
	}

	out := make([]float64, n)
	if err := d.Inverse(out, spec); err != nil {
		t.Fatal(err)
	}

	for i := 1; i < n/2; i++ {
		if math.Abs(out[i]-out[n-i]) > 1e-9 {
			t.Errorf("out[%d] = %v, out[%d] = %v: not circularly symmetric", i, out[i], n-i, out[n-i])
		}
	}
}

func TestPlan_MatchesDirect(t *testing.T) {
	for _, n := range []int{2, 8, 64, 256} {
		p, err := NewPlan(n)
		if err != nil {
			t.Fatalf("NewPlan(%d): %v", n, err)
		}
		d, err := NewDirect(n)
		if err != nil {
			t.Fatalf("NewDirect(%d): %v", n, err)
		}

		rng := rand.New(rand.NewSource(int64(n)))
		src := make([]float64, n)
		for i := range src {
			src[i] = rng.NormFloat64()
		}

		fastFwd := make([]float64, n)
		slowFwd := make([]float64, n)
		if err := p.Forward(fastFwd, src); err != nil {
			t.Fatalf("plan forward n=%d: %v", n, err)
		}
		if err := d.Forward(slowFwd, src); err != nil {
			t.Fatalf("direct forward n=%d: %v", n, err)
		}
		testutil.RequireNearSlice(t, fastFwd, slowFwd, 1e-8*float64(n))

		fastInv := make([]float64, n)
		slowInv := make([]float64, n)
		if err := p.Inverse(fastInv, slowFwd); err != nil {
			t.Fatalf("plan inverse n=%d: %v", n, err)
		}
		if err := d.Inverse(slowInv, slowFwd); err != nil {
			t.Fatalf("direct inverse n=%d: %v", n, err)
		}
		testutil.RequireNearSlice(t, fastInv, slowInv, 1e-8*float64(n))
	}
}

func TestPlan_LengthMismatch(t *testing.T) {
	p, err := NewPlan(8)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Forward(make([]float64, 8), make([]float64, 4)); err == nil {
		t.Error("Forward with short src: expected error")
	}
	if err := p.Inverse(make([]float64, 4), make([]float64, 8)); err == nil {
		t.Error("Inverse with short dst: expected error")
	}
}
