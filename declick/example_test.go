// SPDX-License-Identifier: EPL-2.0

package declick_test

import (
	"fmt"

	"github.com/robopeter/depop/declick"
)

// ExampleClean demonstrates the allocating whole-signal pass.
func ExampleClean() {
	samples := []int32{0, 0, 0, 100, 0, 0, 0}

	cleaned := declick.Clean(declick.Int32, samples)

	fmt.Println(cleaned)
	// Output:
	// [0 0 0 0 0 0 0]
}

// ExampleStreamer demonstrates in-place block processing.
func ExampleStreamer() {
	s := declick.NewStreamer(declick.Float32, 128)

	block := []float32{0, 0, 0, 0.8, 0, 0, 0}
	s.Process(block)

	fmt.Println(block)
	// Output:
	// [0 0 0 0 0 0 0]
}
