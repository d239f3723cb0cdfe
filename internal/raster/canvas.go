// Package raster draws clock frames into an in-memory RGBA image with
// anti-aliased vector paths.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/1broseidon/deskclock/internal/face"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

const (
	// NumeralSize is the numeral font size in points.
	NumeralSize = 16
	numeralDPI  = 96
)

var (
	parseOnce  sync.Once
	parsedFont *opentype.Font
	parseErr   error
)

// NumeralFace opens a fresh bold face for the hour numerals. The caller owns the
// face and must close it when the frame is done.
func NumeralFace() (font.Face, error) {
	parseOnce.Do(func() {
		parsedFont, parseErr = opentype.Parse(gobold.TTF)
	})
	if parseErr != nil {
		return nil, fmt.Errorf("failed to parse numeral font: %w", parseErr)
	}

	f, err := opentype.NewFace(parsedFont, &opentype.FaceOptions{
		Size:    NumeralSize,
		DPI:     numeralDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open numeral face: %w", err)
	}
	return f, nil
}

// Canvas implements face.Canvas on top of an *image.RGBA. Every shape is
// rasterised and composited immediately; nothing is kept between calls except
// the rasterizer's scratch buffer.
type Canvas struct {
	dst  *image.RGBA
	text font.Face
	z    *vector.Rasterizer
}

var _ face.Canvas = (*Canvas)(nil)

// New creates a canvas drawing into dst. textFace may be nil, in which case
// DrawText is a no-op.
func New(dst *image.RGBA, textFace font.Face) *Canvas {
	b := dst.Bounds()
	return &Canvas{
		dst:  dst,
		text: textFace,
		z:    vector.NewRasterizer(b.Dx(), b.Dy()),
	}
}

// FillCircle fills a disc.
func (c *Canvas) FillCircle(center face.Point, radius float64, col color.Color) {
	if radius <= 0 {
		return
	}
	c.begin()
	c.addPolygon(circle(center, radius), false)
	c.fill(col)
}

// StrokeCircle draws a ring of the given width centred on the circle.
func (c *Canvas) StrokeCircle(center face.Point, radius, width float64, col color.Color) {
	if width <= 0 {
		return
	}
	outer := radius + width/2
	inner := radius - width/2
	if outer <= 0 {
		return
	}

	c.begin()
	c.addPolygon(circle(center, outer), false)
	if inner > 0 {
		c.addPolygon(circle(center, inner), true)
	}
	c.fill(col)
}

// StrokeLine draws a straight segment of the given width.
func (c *Canvas) StrokeLine(from, to face.Point, width float64, lineCap face.LineCap, col color.Color) {
	if width <= 0 {
		return
	}
	half := width / 2

	c.begin()
	dx, dy := to.X-from.X, to.Y-from.Y
	if length := math.Hypot(dx, dy); length > 0 {
		nx, ny := -dy/length*half, dx/length*half
		c.addPolygon([]face.Point{
			from.Offset(nx, ny),
			to.Offset(nx, ny),
			to.Offset(-nx, -ny),
			from.Offset(-nx, -ny),
		}, false)
	}
	if lineCap == face.CapRound {
		c.addPolygon(circle(from, half), false)
		c.addPolygon(circle(to, half), false)
	}
	c.fill(col)
}

// DrawText draws text centred on the given point.
func (c *Canvas) DrawText(text string, center face.Point, col color.Color) {
	if c.text == nil || text == "" {
		return
	}

	d := &font.Drawer{
		Dst:  c.dst,
		Src:  image.NewUniform(col),
		Face: c.text,
	}
	metrics := c.text.Metrics()
	width := d.MeasureString(text)
	height := metrics.Ascent + metrics.Descent

	d.Dot = fixed.Point26_6{
		X: toFixed(center.X) - width/2,
		Y: toFixed(center.Y) - height/2 + metrics.Ascent,
	}
	d.DrawString(text)
}

func (c *Canvas) begin() {
	b := c.dst.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
}

func (c *Canvas) fill(col color.Color) {
	b := c.dst.Bounds()
	c.z.Draw(c.dst, b, image.NewUniform(col), image.Point{})
}

// addPolygon appends a closed path. Polygons are normalised to a positive winding
// so overlapping parts of one shape do not cancel; reverse flips that to punch a
// hole.
func (c *Canvas) addPolygon(pts []face.Point, reverse bool) {
	if len(pts) < 3 {
		return
	}
	if (signedArea(pts) < 0) != reverse {
		pts = reversed(pts)
	}

	origin := c.dst.Bounds().Min
	ox, oy := float64(origin.X), float64(origin.Y)

	c.z.MoveTo(float32(pts[0].X-ox), float32(pts[0].Y-oy))
	for _, p := range pts[1:] {
		c.z.LineTo(float32(p.X-ox), float32(p.Y-oy))
	}
	c.z.ClosePath()
}

func circle(center face.Point, radius float64) []face.Point {
	n := int(math.Ceil(radius * 1.5))
	if n < 24 {
		n = 24
	}
	if n > 360 {
		n = 360
	}

	pts := make([]face.Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = face.Point{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
		}
	}
	return pts
}

func signedArea(pts []face.Point) float64 {
	var sum float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

func reversed(pts []face.Point) []face.Point {
	out := make([]face.Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
