// Package unitgo provides runtime dimensional analysis for Go.
//
// A Quantity carries a numeric payload together with a physical-unit
// dimension vector (meters^2, meters/second, ...) and an orthogonal
// semantic-subcategory vector that distinguishes values sharing the
// same physical units (a width is not a depth, even though both are
// meters). Arithmetic that would mix incompatible quantities is
// rejected with typed errors; compatible arithmetic derives the
// correct resulting dimension and converts scales automatically.
//
// # Quick Start
//
// Declare base units once at module scope, then build quantities:
//
//	var (
//		Meters = baseunit.Register("meters")
//		Width  = baseunit.Register("width")
//		Depth  = baseunit.Register("depth")
//	)
//
//	meters := dimension.Of(dimension.Base(Meters))
//
//	w := unitgo.MustNew(20.0, 1, dimension.Of(dimension.Base(Width)), meters)
//	d := unitgo.MustNew(5.0, 1, dimension.Of(dimension.Base(Depth)), meters)
//
//	area := w.Mul(d) // meters^2, semantic width*depth
//
//	_, err := w.Add(d) // *ErrIncompatibleSemantics
//
// Scales express storage units against a base scale: a kilometer
// quantity stored against a meter base uses scale 1000, and addition
// or conversion between scales happens automatically:
//
//	km := unitgo.MustNew(2.0, 1000, nil, meters)
//	m := unitgo.MustNew(500.0, 1, nil, meters)
//	sum, _ := m.Add(km) // 2500 meters
//
// Multiplication that cancels all physical units degrades to a
// dimensionless scalar:
//
//	perM := m.Reciprocal()
//	ratio := m.Mul(perM)    // dimensionless
//	v, _ := ratio.Scalar()  // raw numeric value
package unitgo
