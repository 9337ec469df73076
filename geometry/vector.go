package geometry

import "math"

// Tolerance for coordinate comparison. The construction lives on the unit
// circle, so everything interesting is within an order of magnitude of 1 and a
// tight absolute tolerance is safe. Fixture coordinates are stored to nine
// decimal places, which this comfortably absorbs.
const Tolerance = 1e-8

// To compensate for imprecision in floats, equality is tolerance based.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Sub returns the displacement p − q, componentwise.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Dot is the standard inner product.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Magnitude is the Euclidean norm, the square root of the dot product with
// itself. Deliberately not math.Hypot: the solver's regression tests pin
// trailing digits, and Hypot's rescaling produces slightly different ones.
// Overflow is not a concern at unit-circle scale.
func (p Point) Magnitude() float64 {
	return math.Sqrt(p.Dot(p))
}

// AngleAt returns the angle at vertex b between the rays b→a and b→c, in
// radians, via arccos of the normalized dot product. For collinear points on
// the same side the result is 0; for opposite sides, π. If either ray is zero
// length, or float error pushes the cosine outside [−1, 1], the result is NaN
// under the usual arccos domain rules. Callers are expected to let that
// propagate rather than treat it as fatal.
func AngleAt(a, b, c Point) float64 {
	ab := a.Sub(b)
	cb := c.Sub(b)
	return math.Acos(ab.Dot(cb) / (ab.Magnitude() * cb.Magnitude()))
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * (180 / math.Pi)
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * (math.Pi / 180)
}
