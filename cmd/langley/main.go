package main

import (
	"os"

	"github.com/osuushi/langley"
)

// Solves the 50° adventitious angle construction and prints the result: the
// iteration count, the slope of segment BK, the residual constraint error,
// and alpha, the apex angle. Everything about the figure is fixed at compile
// time, so there are no flags; it always exits zero and reports whatever the
// solver found, converged or not.
func main() {
	langley.WriteReport(os.Stdout, langley.Solve())
}
