// A numeric solver for a classic adventitious angles puzzle.
//
// Take an isosceles triangle with apex A and base CB. Mark K on side CA so
// that |BK| = |CB|, and L on side BA so that |AL| = |CK|. Requiring the
// angle ∠BKL to measure exactly 50° pins down the whole figure, and in
// particular the apex angle alpha, which famously comes out to 40°.
//
// This package computes that the honest way: it parameterizes the figure by
// the slope of segment BK and runs a feedback loop on the one constraint.
// See the geometry and solver packages for the two halves of the machinery.
package langley

import (
	"fmt"
	"io"

	"github.com/osuushi/langley/geometry"
	"github.com/osuushi/langley/solver"
)

type Point = geometry.Point
type Construction = geometry.Construction
type Result = solver.Result

// Solve runs the feedback iteration against the 50° constraint and returns
// its final state. It cannot fail: a run that exhausts its iteration budget
// reports Converged = false along with the best slope it had.
func Solve() Result {
	return solver.Solve()
}

// Construct builds the figure for one trial slope, rejecting slopes that do
// not produce real-valued geometry (zero, most prominently: the slope of CK
// divides by m).
func Construct(m float64) (c Construction, err error) {
	defer func() {
		recoveredErr := geometry.HandleGeometryPanicRecover(recover())
		if recoveredErr != nil {
			c = Construction{}
			err = recoveredErr
		}
	}()
	return geometry.MustFromSlope(m), nil
}

// WriteReport writes the four line report for a solve: the iteration count,
// the slope it landed on, the residual constraint error in radians, and the
// derived apex angle in degrees. Values are printed to twenty decimal
// places, which is more than float64 deserves, but makes round-trip
// comparisons against other implementations painless.
func WriteReport(w io.Writer, r Result) error {
	_, err := fmt.Fprintf(w, "Total iterations = %d\n", r.Iterations)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Slope of Line Segment BK = %.20f\n", r.Slope)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Angle BKL Error = %.20f\n", r.Err)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Alpha = %.20f\n", r.Alpha())
	return err
}
