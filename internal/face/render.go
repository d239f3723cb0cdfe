package face

import (
	"image/color"
	"time"
)

// LineCap selects how stroked line ends are drawn.
type LineCap int

const (
	CapButt LineCap = iota
	CapRound
)

// Canvas receives the draw calls for one frame. Implementations own any brushes,
// paths or glyph caches and release them when the frame is done.
type Canvas interface {
	FillCircle(center Point, radius float64, c color.Color)
	StrokeCircle(center Point, radius, width float64, c color.Color)
	StrokeLine(from, to Point, width float64, lineCap LineCap, c color.Color)
	// DrawText draws text centred on the given point.
	DrawText(text string, center Point, c color.Color)
}

// Face colours
var (
	ColorBackground = color.NRGBA{R: 245, G: 245, B: 220, A: 255} // Beige dial
	ColorRim        = color.NRGBA{R: 160, G: 160, B: 160, A: 255}
	ColorInnerRim   = color.NRGBA{R: 192, G: 192, B: 192, A: 255}
	ColorShadow     = color.NRGBA{R: 0, G: 0, B: 0, A: 100}
	ColorMarker     = color.NRGBA{R: 60, G: 60, B: 60, A: 255}
	ColorNumeral    = color.NRGBA{R: 40, G: 40, B: 40, A: 255}
	ColorHand       = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	ColorSecondHand = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	ColorCenterCap  = color.NRGBA{R: 40, G: 40, B: 40, A: 180}
)

const (
	rimWidth      = 8
	innerRimWidth = 3
	innerRimInset = 4

	markerShadowOffset  = 1
	numeralShadowOffset = 1
	handShadowOffset    = 2

	// CenterCapRadius is the radius of the hub drawn over the hands.
	CenterCapRadius = 5
)

// Hand describes one clock hand.
type Hand struct {
	Length float64 // Fraction of the face radius
	Width  float64
	Color  color.Color
}

// Hour, minute and second hands, in paint order.
var (
	HourHand   = Hand{Length: 0.5, Width: 8, Color: ColorHand}
	MinuteHand = Hand{Length: 0.7, Width: 6, Color: ColorHand}
	SecondHand = Hand{Length: 0.85, Width: 2, Color: ColorSecondHand}
)

// Render draws a complete frame: dial, markers, numerals, the three hands and the
// centre cap, in that order.
func Render(c Canvas, l Layout, now time.Time) {
	RenderDial(c, l)

	hands := HandAngles(now)
	RenderHand(c, l, HourHand, hands.Hour)
	RenderHand(c, l, MinuteHand, hands.Minute)
	RenderHand(c, l, SecondHand, hands.Second)

	c.FillCircle(l.Center, CenterCapRadius, ColorCenterCap)
}

// RenderDial draws everything that does not move: background, rims, hour markers
// and numerals. Each marker and numeral is preceded by its shadow.
func RenderDial(c Canvas, l Layout) {
	c.FillCircle(l.Center, l.Radius, ColorBackground)
	c.StrokeCircle(l.Center, l.Radius, rimWidth, ColorRim)
	c.StrokeCircle(l.Center, l.Radius-innerRimInset, innerRimWidth, ColorInnerRim)

	for _, m := range l.Markers {
		c.StrokeLine(
			m.Inner.Offset(markerShadowOffset, markerShadowOffset),
			m.Outer.Offset(markerShadowOffset, markerShadowOffset),
			m.Width, CapButt, ColorShadow,
		)
		c.StrokeLine(m.Inner, m.Outer, m.Width, CapButt, ColorMarker)
	}

	for _, n := range l.Numerals {
		c.DrawText(n.Text, n.At.Offset(numeralShadowOffset, numeralShadowOffset), ColorShadow)
		c.DrawText(n.Text, n.At, ColorNumeral)
	}
}

// RenderHand draws one hand at the given angle, shadow first.
func RenderHand(c Canvas, l Layout, h Hand, angle float64) {
	tip := HandTip(l, h, angle)
	c.StrokeLine(
		l.Center.Offset(handShadowOffset, handShadowOffset),
		tip.Offset(handShadowOffset, handShadowOffset),
		h.Width, CapRound, ColorShadow,
	)
	c.StrokeLine(l.Center, tip, h.Width, CapRound, h.Color)
}

// HandTip returns the end point of a hand at the given angle.
func HandTip(l Layout, h Hand, angle float64) Point {
	return PointOnCircle(l.Center, l.Radius*h.Length, angle-90)
}
