package eq_test

import (
	"fmt"

	"github.com/cwbudde/algo-eq/dsp/eq"
	"github.com/cwbudde/algo-eq/dsp/realfft"
)

func Example() {
	// A uniform gain of 2 across the whole band realizes as a scaled,
	// centered impulse. The reference transform keeps the example exact.
	tr, err := realfft.NewDirect(8)
	if err != nil {
		fmt.Println(err)
		return
	}

	e, err := eq.New(48000, 8, eq.WithTransform(tr))
	if err != nil {
		fmt.Println(err)
		return
	}
	defer e.Close()

	if err := e.Load("6000 2.0"); err != nil {
		fmt.Println(err)
		return
	}

	taps := e.Taps()
	fmt.Println(taps[0], taps[4])
	// Output: 0 2
}
