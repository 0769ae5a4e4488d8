package response_test

import (
	"fmt"

	"github.com/cwbudde/algo-eq/dsp/response"
)

func ExampleSample() {
	// Sample a single-breakpoint specification onto the bins of an
	// 8-tap filter at 48 kHz: 0, 6000, 12000, 18000 and 24000 Hz.
	dst := make([]float64, 5)
	if err := response.Sample(dst, 48000, 8, response.NewParser("6000 2.0")); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(dst)
	// Output: [2 2 2 2 2]
}

func ExampleParse() {
	bps, err := response.Parse("100 0.5 1000 2.0")
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, bp := range bps {
		fmt.Printf("%g Hz: %g\n", bp.FreqHz, bp.Gain)
	}
	// Output:
	// 100 Hz: 0.5
	// 1000 Hz: 2
}
