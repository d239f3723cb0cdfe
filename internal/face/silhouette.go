package face

import (
	"image"
	"image/color"
	"math"
)

// ColorGrip is the colour of the corner resize grips.
var ColorGrip = color.NRGBA{R: 90, G: 90, B: 90, A: 255}

const gripWidth = 2

// Silhouette returns the opaque region of a window of the given size as a list of
// rectangles: one span per row covering the dial including its rim, plus a
// border-sized square at each corner so the resize zones stay reachable.
func Silhouette(width, height, border int) []image.Rectangle {
	l := NewLayout(width, height)
	outer := l.Radius + rimWidth/2 + 1

	rects := make([]image.Rectangle, 0, height+4)
	for y := 0; y < height; y++ {
		dy := float64(y) + 0.5 - l.Center.Y
		if math.Abs(dy) > outer {
			continue
		}
		half := math.Sqrt(outer*outer - dy*dy)
		x0 := max(0, int(math.Floor(l.Center.X-half)))
		x1 := min(width, int(math.Ceil(l.Center.X+half)))
		if x1 > x0 {
			rects = append(rects, image.Rect(x0, y, x1, y+1))
		}
	}

	if border > 0 {
		b := border + 1
		rects = append(rects,
			image.Rect(0, 0, b, b),
			image.Rect(width-b, 0, width, b),
			image.Rect(0, height-b, b, height),
			image.Rect(width-b, height-b, width, height),
		)
	}
	return rects
}

// RenderGrips draws an L-shaped bracket in each corner resize zone.
func RenderGrips(c Canvas, width, height, border int) {
	if border <= 0 {
		return
	}
	w, h := float64(width), float64(height)
	b := float64(border)
	in := float64(gripWidth) / 2

	corners := []struct {
		corner, alongX, alongY Point
	}{
		{Point{in, in}, Point{b, in}, Point{in, b}},
		{Point{w - in, in}, Point{w - b, in}, Point{w - in, b}},
		{Point{in, h - in}, Point{b, h - in}, Point{in, h - b}},
		{Point{w - in, h - in}, Point{w - b, h - in}, Point{w - in, h - b}},
	}
	for _, g := range corners {
		c.StrokeLine(g.corner, g.alongX, gripWidth, CapButt, ColorGrip)
		c.StrokeLine(g.corner, g.alongY, gripWidth, CapButt, ColorGrip)
	}
}
