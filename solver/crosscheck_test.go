package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/optimize"

	"github.com/osuushi/langley/geometry"
)

// An independent check on the answer: hand the squared constraint error to a
// general-purpose optimizer and make sure it lands on the same slope the
// feedback loop does. The solver has no business shipping machinery this
// heavy, so it lives here; its job is to catch an algebra slip in the
// closed-form reconstruction, which the feedback loop would cheerfully
// converge onto.
func TestSolveAgreesWithOptimizer(t *testing.T) {
	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			e := geometry.AngleBKL(x[0]) - TargetAngle
			return e * e
		},
	}

	result, err := optimize.Minimize(problem, []float64{InitialSlope}, nil, nil)
	require.NoError(t, err)
	require.NoError(t, result.Status.Err())

	// The optimizer stops on function improvement, and the objective is
	// quadratically flat at the root, so only expect agreement to around the
	// square root of its tolerance. Plenty to catch a real algebra slip.
	res := Solve()
	assert.InDelta(t, result.X[0], res.Slope, 1e-4)
	assert.Less(t, result.F, 1e-8)
}
