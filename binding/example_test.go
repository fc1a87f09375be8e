// SPDX-License-Identifier: MIT
package binding_test

import (
	"fmt"

	"github.com/katalvlaran/ljbind/binding"
	"github.com/katalvlaran/ljbind/potential"
)

// ExampleAggregate reports two objects at twice σ.
func ExampleAggregate() {
	p := potential.DefaultParams()
	res, err := binding.Aggregate([]float64{2 * p.Sigma}, p)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Objects, "objects")
	for _, line := range res.Report() {
		fmt.Println(line)
	}
	// Output:
	// 2 objects
	// There is 1 pairing in this list
	// The total binding energy of the 1 pairing is -1.0151367187500001e-22 J
}
