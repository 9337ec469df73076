package geometry

import "fmt"

// Point is a position (or, interchangeably, a displacement) in the plane. It is
// a plain value type; operations never mutate a point, they return new ones.
// Two points with the same coordinates are the same point for all purposes.
type Point struct {
	X float64
	Y float64
}

// Construction is a full snapshot of the adventitious angle figure for one
// trial slope. Everything in it is derived from Slope by closed formulas, so a
// Construction is immutable by convention: build a new one rather than editing
// fields.
//
// The fixed frame is C at the origin and B at (1, 0), giving the base CB unit
// length. K is where the line of slope m through B meets the circle
// x² + y² = 2x (center B, radius 1, passing through C), which pins
// |BK| = |CB| = 1. A is the apex of the isosceles triangle (so it sits on
// x = 1/2), and L lies on BA at distance BL from B.
type Construction struct {
	// Slope is m, the trial slope of line segment BK. Everything else below
	// is a function of it.
	Slope float64

	B, C, K, A, L Point

	// SlopeCK is the slope of the line through C and K (and A).
	SlopeCK float64

	// CK is the length of segment CK — the "two dash" side, called j in the
	// construction notes.
	CK float64

	// BL is the length of segment BL — the "one dash" side, called i. It is
	// |CA| − |CK| by the construction.
	BL float64
}

func (c Construction) String() string {
	return fmt.Sprintf("m=%.9g: K=(%.9g, %.9g) A=(%.9g, %.9g) L=(%.9g, %.9g) |CK|=%.9g |BL|=%.9g",
		c.Slope, c.K.X, c.K.Y, c.A.X, c.A.Y, c.L.X, c.L.Y, c.CK, c.BL)
}
