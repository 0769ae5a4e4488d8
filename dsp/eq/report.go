package eq

import (
	"fmt"
	"io"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// report writes the per-bin comparison of requested versus realized
// magnitude, followed by the time-domain tap listing. It is purely
// observational and never influences the delivered filter.
func (e *Equalizer) report() {
	if e.diag == nil || e.diag == io.Discard {
		return
	}

	n := e.size
	binHz := e.rate / float64(n)

	mag := make([]float64, n/2+1)
	mag[0] = math.Abs(e.freq[0])
	mag[n/2] = math.Abs(e.freq[n/2])
	if n/2 > 1 {
		// Interior bins carry a mirrored sine term at index n-i.
		for i := 1; i < n/2; i++ {
			e.mirrored[i-1] = e.freq[n-i]
		}
		vecmath.Magnitude(mag[1:n/2], e.freq[1:n/2], e.mirrored)
	}

	for i := 0; i <= n/2; i++ {
		f := binHz * float64(i)
		a := mag[i] * float64(n)
		r := e.requested[i]
		fmt.Fprintf(e.diag, "%3.1f Hz: requested %2.2f, got %2.7f (log10 = %.2f), %3.7fdb\n",
			f, r, a, math.Log10(a), 10*math.Log10(a/r))
	}

	for i := 0; i < n; i++ {
		fmt.Fprintf(e.diag, "%.3f ms: %.3f\n", 1000*float64(i)/e.rate, e.time[i])
	}
}
