package heuristic_test

import (
	"fmt"

	"github.com/katalvlaran/gridroute/gridgraph"
	"github.com/katalvlaran/gridroute/heuristic"
)

// ExampleProvider_Func prints every estimate between (0,0) and (3,4).
func ExampleProvider_Func() {
	p := heuristic.DefaultProvider()
	u, v := gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 3, Col: 4}
	for _, k := range heuristic.Kinds() {
		fn, _ := p.Func(k)
		fmt.Printf("%s %.1f\n", k, fn(u, v))
	}

	// Output:
	// null 0.0
	// manhattan 7.0
	// chebyshev 4.0
	// octile 5.2
	// euclidean 5.0
}
