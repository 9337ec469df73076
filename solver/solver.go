// Package solver finds the slope of segment BK for which the construction's
// ∠BKL angle lands on its 50° constraint.
//
// There is no algebra here; the solver treats geometry.AngleBKL as a black
// box and runs proportional feedback on it: measure the angle, take the
// signed error against the target, and nudge the slope by a tenth of it.
// Near the solution the angle responds to the slope with a gain around −3.6
// rad per unit slope, so each nudge cancels roughly a third of the remaining
// error and the loop walks in geometrically, reaching the 1e-10 threshold in
// about fifty iterations from the 1.0 starting guess.
//
// Everything is float64, and the iteration is deterministic: same build,
// same bits, same count. The regression tests pin all of it.
package solver

import (
	"math"

	"github.com/osuushi/langley/geometry"
)

const (
	// MaxIterations caps the feedback loop. Fifty-ish is the observed need;
	// a thousand means a degenerate run exhausts quickly rather than
	// spinning forever on a NaN.
	MaxIterations = 1000

	// InitialSlope is the starting guess for m. Anything in the basin works;
	// 1.0 (a 45° segment BK) is comfortably inside it.
	InitialSlope = 1.0

	// TransferRatio is the feedback gain: the fraction of the angle error,
	// radians to slope, applied each iteration. Large enough to converge in
	// tens of iterations, small enough not to overshoot into the degenerate
	// m ≤ 0 region.
	TransferRatio = 0.1

	// ErrorThreshold is the convergence criterion on |∠BKL − target|, in
	// radians. 1e-10 rad is far below anything the printed degrees show.
	ErrorThreshold = 1e-10
)

// TargetAngle is the constraint: ∠BKL must measure 50 degrees, in radians.
const TargetAngle = 50 * math.Pi / 180

// Result is the final state of a solve.
type Result struct {
	// Slope is the last value of m. The solution when Converged; otherwise
	// the best the loop had when it ran out.
	Slope float64

	// Err is the signed constraint error ∠BKL − TargetAngle, in radians, for
	// the last slope the loop measured. On an exhausted run this describes
	// the slope from before the final nudge (the loop measures, nudges, and
	// then runs out), which is as honest as an unconverged answer gets.
	Err float64

	// Iterations is the number of feedback nudges applied before the loop
	// stopped.
	Iterations int

	// Converged reports whether Err actually crossed below ErrorThreshold,
	// as opposed to the loop hitting MaxIterations.
	Converged bool
}

// Alpha derives the apex angle of the triangle, in degrees, from the solved
// slope. For the 50° constraint this is the point of the whole exercise, and
// it comes out to 40°.
func (r Result) Alpha() float64 {
	return geometry.Alpha(r.Slope)
}

// Solve runs the feedback loop from InitialSlope and returns its final
// state. It cannot fail: a run that never meets the threshold comes back
// with Converged = false after MaxIterations nudges. A NaN angle (from a
// slope that degenerated) never satisfies the threshold, so that case
// exhausts too rather than panicking.
func Solve() Result {
	m := InitialSlope
	var e float64
	for n := 0; n < MaxIterations; n++ {
		c := geometry.FromSlope(m)
		e = c.AngleBKL() - TargetAngle
		traceStep(n, &c, e)
		if math.Abs(e) <= ErrorThreshold {
			return Result{Slope: m, Err: e, Iterations: n, Converged: true}
		}
		m += e * TransferRatio
	}
	return Result{Slope: m, Err: e, Iterations: MaxIterations, Converged: false}
}
