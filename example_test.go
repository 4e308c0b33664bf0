package absorb_test

import (
	"fmt"
	"slices"

	"honnef.co/go/absorb"
)

func ExampleF() {
	fmt.Println(absorb.F(1, 3, 1))
	fmt.Println(absorb.F(0.5, 0, 1))
	fmt.Printf("%.6f\n", absorb.F(2, 4, 1))
	// Output:
	// 0
	// 0
	// 49.598150
}

func ExampleLinspace() {
	fmt.Println(absorb.Linspace(0, 2, 5))
	// Output: [0 0.5 1 1.5 2]
}

func ExampleFamily() {
	for _, c := range absorb.DefaultFamily() {
		pt, i, _ := c.Min()
		fmt.Printf("coe=%g: min %.4g at x=%.4f (sample %d)\n", c.Func.Coe, pt.Y, pt.X, i)
	}
	// Output:
	// coe=1: min 0.0002068 at x=0.9796 (sample 24)
	// coe=2: min 0.0008218 at x=0.9796 (sample 24)
	// coe=3: min 0.001837 at x=0.9796 (sample 24)
	// coe=4: min 0.003243 at x=0.9796 (sample 24)
}

func ExampleFitToBezPath() {
	g := absorb.Graph{Func: absorb.Func{Coe: 0, X0: 1}, Lo: 0, Hi: 3}
	p := absorb.BezPath(slices.Collect(absorb.FitToBezPath(g, 0.01)))
	fmt.Println(p.SVG(absorb.SVGOptions{}))
	// Output: M0,0 C1,0 2,0 3,0
}
