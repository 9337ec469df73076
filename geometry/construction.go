// Package geometry reconstructs the adventitious angle figure: an isosceles
// triangle ABC with C = (0, 0), B = (1, 0) and apex A centered over the base,
// carrying two extra cevian points. K lies on side CA with |BK| = |CB|, and L
// lies on side BA with |AL| = |CK|. One angular constraint, ∠BKL, determines
// the whole shape; every quantity here is a closed-form function of the single
// free parameter m, the slope of segment BK.
//
// For a visual, all of it graphs directly (Desmos works well):
//
//	K circle : x² + y² = 2x
//	BK       : y = m(1 − x)
//	CA       : y = ((√(m²+1) + 1)/m)·x
//	BA       : y = ((√(m²+1) + 1)/m)·(1 − x)
//
// with side lengths i = |BL| = |CA| − j, j = |CK| = √(2·K.x), k = |CB| = 1.
//
// Everything is computed in float64. The construction is exact in IEEE terms:
// no randomness, no iteration, so a given slope always reproduces the same
// bits, which the tests rely on.
package geometry

import "math"

// FromSlope builds the construction for trial slope m.
//
// No validation happens here. m = 0 divides by zero and the resulting Infs and
// NaNs flow through the snapshot untouched, per IEEE semantics; so does any
// other degenerate slope. This is deliberate: the solver probes slopes freely
// and wants arithmetic, not exceptions. Use MustFromSlope (or the top-level
// langley.Construct) when degenerate geometry should be rejected instead.
func FromSlope(m float64) Construction {
	// K is the intersection of the line y = m(1 − x) with the circle
	// x² + y² = 2x. Substituting and solving the quadratic, the root on the
	// near arc is:
	//
	//	K = (1 − 1/√(m²+1), m/√(m²+1))
	msqrt := math.Sqrt(m*m + 1.0)
	K := Point{
		X: 1.0 - 1.0/msqrt,
		Y: m / msqrt,
	}

	// The slope of CK follows from K.y/K.x, which simplifies to the form
	// below. This is the one place m appears in a denominator.
	slopeCK := (msqrt + 1.0) / m

	// j = |CK|, from the circle equation: K on x² + y² = 2x means
	// |CK|² = K.x² + K.y² = 2·K.x.
	j := CKLength(m)

	// A is the apex. The triangle is isosceles over CB, so A.x = 1/2 exactly,
	// and A sits on the infinite line CK.
	A := Point{
		X: 0.5,
		Y: slopeCK * 0.5,
	}
	magA := A.Magnitude()

	// L sits on BA, at distance i = |CA| − j from B:
	//
	//	L = B + (A − B)/|A| · i
	//
	// Written out componentwise, using A.x − B.x = −1/2.
	i := magA - j
	L := Point{
		X: 1.0 - i*0.5/magA,
		Y: i * A.Y / magA,
	}

	return Construction{
		Slope:   m,
		B:       Point{X: 1.0, Y: 0.0},
		C:       Point{X: 0.0, Y: 0.0},
		K:       K,
		A:       A,
		L:       L,
		SlopeCK: slopeCK,
		CK:      j,
		BL:      i,
	}
}

// MustFromSlope is FromSlope for callers that want degenerate geometry
// rejected. It panics with a descriptive error if any derived quantity came
// out non-finite (m = 0 is the classic way to get here). The public API in
// the root package recovers this panic and converts it to an ordinary error.
func MustFromSlope(m float64) Construction {
	c := FromSlope(m)
	if !c.IsFinite() {
		fatalf("construction is not real-valued at slope m=%v: %v", m, c)
	}
	return c
}

// AngleBKL is the constrained angle of the figure: the angle at vertex K
// between rays K→B and K→L, in radians. NaN when the construction is
// degenerate.
func (c Construction) AngleBKL() float64 {
	return AngleAt(c.B, c.K, c.L)
}

// AngleBKL reconstructs the figure for slope m and measures ∠BKL in radians.
// This is the objective the solver drives to its 50° target. Like FromSlope,
// it never fails; degenerate slopes yield NaN.
func AngleBKL(m float64) float64 {
	return FromSlope(m).AngleBKL()
}

// CKLength returns j, the length of segment CK, directly from the slope:
//
//	j = √(2·K.x) = √(2 − 2/√(m²+1))
//
// Both the constraint evaluation and the alpha derivation need j, and they
// must agree bit for bit, so this is the single place it is computed. (The
// two algebraic forms above really are identical in floating point: scaling
// by two is exact in binary.)
func CKLength(m float64) float64 {
	return math.Sqrt(2.0 - 2.0/math.Sqrt(m*m+1.0))
}

// Alpha derives the apex angle of the triangle, in degrees, from a solved
// slope. Triangle BCK is isosceles with |CB| = |BK| = 1 and base CK = j, so
// ∠BCK = arccos(j/2). That is also the base angle of the big triangle (K lies
// on ray CA), both its base angles are equal, and its angles sum to 180°:
//
//	alpha = 180 − 2·∠BCK
func Alpha(m float64) float64 {
	j := CKLength(m)
	angleBCK := Degrees(math.Acos(j * 0.5))
	return 180.0 - 2.0*angleBCK
}

// IsFinite reports whether every derived quantity of the construction is a
// finite real. A false result means the slope was degenerate (zero, infinite,
// or NaN) and the snapshot contains Infs or NaNs.
func (c Construction) IsFinite() bool {
	finite := func(f float64) bool {
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	}
	for _, f := range []float64{
		c.Slope, c.SlopeCK, c.CK, c.BL,
		c.K.X, c.K.Y, c.A.X, c.A.Y, c.L.X, c.L.Y,
	} {
		if !finite(f) {
			return false
		}
	}
	return true
}
