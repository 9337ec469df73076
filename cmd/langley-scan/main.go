package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/logrusorgru/aurora"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/langley/geometry"
	"github.com/osuushi/langley/solver"
)

// Samples the constraint angle ∠BKL across a range of trial slopes and dumps
// the curve as CSV, one row per sample, for graphing in whatever plots CSV
// (Desmos's table import works nicely). The solver never needs this; it
// exists for poking at the construction by hand, eyeballing where the error
// crosses zero, and sanity-checking that the feedback loop's bracket is
// where you think it is.
//
// The crossing, if the range contains one, is pointed out on stderr so the
// CSV on stdout stays clean.

var (
	from    = kingpin.Flag("from", "Low end of the slope range.").Default("0.5").Float64()
	to      = kingpin.Flag("to", "High end of the slope range.").Default("1.2").Float64()
	samples = kingpin.Flag("samples", "Number of evenly spaced samples, endpoints included.").Default("500").Int()
	output  = kingpin.Flag("output", "Write the CSV here instead of stdout.").Short('o').String()
)

func main() {
	kingpin.Parse()
	if *samples < 2 {
		kingpin.Fatalf("need at least two samples")
	}
	if *to <= *from {
		kingpin.Fatalf("empty slope range [%v, %v]", *from, *to)
	}

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			kingpin.Fatalf("creating %s: %v", *output, err)
		}
		defer f.Close()
		out = f
	}

	targetDeg := geometry.Degrees(solver.TargetAngle)

	w := csv.NewWriter(out)
	defer w.Flush()
	_ = w.Write([]string{"slope", "angle_bkl_deg", "error_deg"}) // header

	// Walk the range, remembering where the error changes sign. NaN samples
	// (the range may straddle the degenerate m = 0) never compare as a sign
	// change, which is what we want.
	crossLo, crossHi := 0.0, 0.0
	haveCross := false
	prevM, prevErr := 0.0, 0.0
	for n := 0; n < *samples; n++ {
		m := *from + (*to-*from)*float64(n)/float64(*samples-1)
		angle := geometry.Degrees(geometry.AngleBKL(m))
		errDeg := angle - targetDeg
		_ = w.Write([]string{
			strconv.FormatFloat(m, 'f', 12, 64),
			strconv.FormatFloat(angle, 'f', 12, 64),
			strconv.FormatFloat(errDeg, 'f', 12, 64),
		})
		if n > 0 && !haveCross && prevErr*errDeg < 0 {
			crossLo, crossHi = prevM, m
			haveCross = true
		}
		prevM, prevErr = m, errDeg
	}
	w.Flush()

	if haveCross {
		fmt.Fprintln(os.Stderr, aurora.Green(fmt.Sprintf(
			"constraint crosses %.0f° between m=%.6f and m=%.6f", targetDeg, crossLo, crossHi)))
	} else {
		fmt.Fprintln(os.Stderr, aurora.Red(fmt.Sprintf(
			"no %.0f° crossing between m=%v and m=%v", targetDeg, *from, *to)))
	}
}
