package langley

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/langley/geometry"
)

// Smoke test. The internals are already tested.
func TestSolve(t *testing.T) {
	res := Solve()
	assert.True(t, res.Converged)
	assert.Less(t, res.Iterations, 1000)
	assert.InDelta(t, 0.839099631195426, res.Slope, 1e-9)
	assert.InDelta(t, 40.0, res.Alpha(), 1e-6)
}

func TestConstruct(t *testing.T) {
	c, err := Construct(1.0)
	require.NoError(t, err)
	assert.True(t, c.IsFinite())

	_, err = Construct(0)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "m=0")
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	r := Result{Slope: 0.5, Err: -1.25e-11, Iterations: 63, Converged: true}
	require.NoError(t, WriteReport(&buf, r))

	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 5) // four lines plus the trailing newline
	assert.Equal(t, "Total iterations = 63", lines[0])
	assert.Equal(t, "Slope of Line Segment BK = 0.50000000000000000000", lines[1])
	assert.Equal(t, "Angle BKL Error = -0.00000000001250000000", lines[2])
	// Alpha is recomputed from the slope, so compare against the same
	// computation rather than a digit string from some other libm.
	assert.Equal(t, fmt.Sprintf("Alpha = %.20f", geometry.Alpha(0.5)), lines[3])
	assert.Equal(t, "", lines[4])
}

func TestWriteReportDegenerate(t *testing.T) {
	// An exhausted run can carry NaNs; the report must still print.
	var buf bytes.Buffer
	r := Result{Slope: math.NaN(), Err: math.NaN(), Iterations: 1000, Converged: false}
	require.NoError(t, WriteReport(&buf, r))
	assert.Contains(t, buf.String(), "Total iterations = 1000")
	assert.Contains(t, buf.String(), "NaN")
}
