package solver

import (
	"fmt"
	"math"

	"github.com/logrusorgru/aurora"

	"github.com/osuushi/langley/dbg"
	"github.com/osuushi/langley/geometry"
)

// Iteration tracing, for debugging the feedback loop. Off by default because
// the program's output is exactly four lines and nothing should leak into it;
// flip the constant and rebuild to watch the loop walk in, with a rendering
// of the final construction at the end.
const traceIterations = false

// Pixels per construction unit for the final rendering.
const traceDrawScale = 240

func traceStep(n int, c *geometry.Construction, e float64) {
	if !traceIterations {
		return
	}
	fmt.Println("Iteration", n, dbg.Name(c), classifyErr(e), c)
	if math.Abs(e) <= ErrorThreshold {
		c.DbgDraw(traceDrawScale)
	}
}

// Color the error by how the iteration is doing: green once it is inside the
// convergence threshold, red if the construction degenerated, yellow while it
// is still walking in.
func classifyErr(e float64) string {
	s := fmt.Sprintf("err=%+.12e", e)
	switch {
	case math.IsNaN(e) || math.IsInf(e, 0):
		return aurora.Red(s).String()
	case math.Abs(e) <= ErrorThreshold:
		return aurora.Green(s).String()
	default:
		return aurora.Yellow(s).String()
	}
}
