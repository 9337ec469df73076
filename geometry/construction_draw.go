package geometry

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// This is for debugging purposes only

const dbgDrawPadding = 40

// DbgDraw renders the construction to /tmp/construction.png and cats it to the
// terminal for terminals that support inline images. Triangle sides are white,
// BK is cyan, KL is red, the K circle arc is gray, and the five points are
// drawn as dots (B and C on the baseline, then K, A, L going up). Exported so
// the solver's iteration trace can call it; nothing in a normal run does.
func (c Construction) DbgDraw(scale float64) {
	if !c.IsFinite() {
		fatalf("refusing to draw a degenerate construction: %v", c)
	}

	points := []Point{c.B, c.C, c.K, c.A, c.L}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	dc := gg.NewContext(width, height)
	dc.SetRGB(0, 0, 0)
	dc.DrawRectangle(0, 0, float64(width), float64(height))
	dc.Fill()

	// Flip the context so the origin is at the bottom left, then map the
	// construction's bounding box into the padded canvas.
	dc.Translate(0, float64(height))
	dc.Scale(1, -1)
	dc.Translate(dbgDrawPadding, dbgDrawPadding)
	dc.Scale(scale, scale)
	dc.Translate(-minX, -minY)

	// The arc of the K circle between C and K, so you can see K pinned to it.
	dc.SetLineWidth(1)
	kAngle := math.Atan2(c.K.Y, c.K.X-1.0)
	dc.SetRGB(0.4, 0.4, 0.4)
	dc.DrawArc(1.0, 0.0, 1.0, kAngle, math.Pi)
	dc.Stroke()

	// Triangle C → B → A.
	dc.SetLineWidth(2)
	dc.SetRGB(1, 1, 1)
	dc.MoveTo(c.C.X, c.C.Y)
	dc.LineTo(c.B.X, c.B.Y)
	dc.LineTo(c.A.X, c.A.Y)
	dc.ClosePath()
	dc.Stroke()

	// The cevians that carry the constraint.
	dc.SetRGB(0, 1, 1)
	dc.DrawLine(c.B.X, c.B.Y, c.K.X, c.K.Y)
	dc.Stroke()
	dc.SetRGB(1, 0.3, 0.3)
	dc.DrawLine(c.K.X, c.K.Y, c.L.X, c.L.Y)
	dc.Stroke()

	dc.SetRGB(1, 1, 0)
	for _, p := range points {
		dc.DrawCircle(p.X, p.Y, 3/scale)
		dc.Fill()
	}

	dc.SavePNG("/tmp/construction.png")
	imgcat.CatFile("/tmp/construction.png", os.Stdout)
}
