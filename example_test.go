package unitgo_test

import (
	"fmt"

	"github.com/hupe1980/unitgo"
	"github.com/hupe1980/unitgo/baseunit"
	"github.com/hupe1980/unitgo/dimension"
)

func Example() {
	reg := baseunit.NewRegistry()

	metersUnit := dimension.Of(dimension.Base(reg.Register("meters")))
	width := dimension.Of(dimension.Base(reg.Register("width")))
	depth := dimension.Of(dimension.Base(reg.Register("depth")))

	w := unitgo.MustNew(20.0, 1, width, metersUnit)
	d := unitgo.MustNew(5.0, 1, depth, metersUnit)

	area := w.Mul(d)
	fmt.Println(area.Units().Format(reg))

	// Widths and depths share physical units but not meaning.
	if _, err := w.Add(d); err != nil {
		fmt.Println("add rejected")
	}

	// Stripping the semantic tag makes the depth a plain length.
	sum, _ := w.Add(d.StripSemantic())
	fmt.Println(sum.Value())

	// Output:
	// meters^2
	// add rejected
	// 25
}

func ExampleQuantity_Add_scales() {
	metersUnit := dimension.Of(dimension.Base(baseunit.Register("example-meters")))

	m := unitgo.MustNew(500.0, 1, nil, metersUnit)
	km := unitgo.MustNew(2.0, 1000, nil, metersUnit)

	sum, _ := m.Add(km)
	fmt.Println(sum.Value())
	// Output:
	// 2500
}

func ExamplePow() {
	metersUnit := dimension.Of(dimension.Base(baseunit.Register("example-pow-meters")))

	side := unitgo.MustNew(3.0, 1, nil, metersUnit)
	area, _ := unitgo.Pow(side, 2, 1)
	fmt.Println(area.Value())
	// Output:
	// 9
}
