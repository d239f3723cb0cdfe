package face

import (
	"math"
	"strconv"
	"time"
)

// Point is a position on the drawing surface in fractional pixels.
type Point struct {
	X float64
	Y float64
}

// Offset returns p moved by (dx, dy).
func (p Point) Offset(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

const (
	// FaceInset is the gap between the window edge and the face circle.
	FaceInset = 10
	// NumeralInset is how far inside the face circle numerals sit.
	NumeralInset = 35

	majorMarkerLength = 20
	minorMarkerLength = 10
	markerOuterInset  = 5
	majorMarkerWidth  = 4
	minorMarkerWidth  = 2
)

// Hands holds hand angles in degrees, measured clockwise from 3 o'clock before
// the -90 degree draw-time rotation.
type Hands struct {
	Hour   float64
	Minute float64
	Second float64
}

// HandAngles derives the hand angles for a wall-clock time. Only the minute moves
// the hour hand between hours; seconds do not move the minute hand.
func HandAngles(t time.Time) Hands {
	hour, minute, second := t.Clock()
	return Hands{
		Hour:   float64(hour%12)*30 + float64(minute)*0.5,
		Minute: float64(minute) * 6,
		Second: float64(second) * 6,
	}
}

// PointOnCircle returns the point at the given angle in degrees on a circle.
func PointOnCircle(center Point, radius, degrees float64) Point {
	rad := degrees * math.Pi / 180
	return Point{
		X: center.X + radius*math.Cos(rad),
		Y: center.Y + radius*math.Sin(rad),
	}
}

// NumeralAngle returns the placement angle of hour label n (1-12). Label 12 sits
// straight up at 270 degrees and the others follow clockwise, matching where the
// hands point for that hour.
func NumeralAngle(n int) float64 {
	return float64(n*30 - 90)
}

// Marker is one radial hour tick.
type Marker struct {
	Inner Point
	Outer Point
	Width float64
	Major bool // 12, 3, 6 and 9 o'clock
}

// Numeral is one hour label and the point its text is centred on.
type Numeral struct {
	Text string
	At   Point
}

// Layout is the per-frame geometry of the face. It depends only on the window size.
type Layout struct {
	Center   Point
	Radius   float64
	Markers  [12]Marker
	Numerals [12]Numeral
}

// NewLayout computes the face geometry for a client area of the given size.
func NewLayout(width, height int) Layout {
	l := Layout{
		Center: Point{X: float64(width) / 2, Y: float64(height) / 2},
		Radius: float64(min(width, height))/2 - FaceInset,
	}

	for i := range l.Markers {
		angle := float64(i * 30)
		length, width, major := float64(minorMarkerLength), float64(minorMarkerWidth), false
		if i%3 == 0 {
			length, width, major = majorMarkerLength, majorMarkerWidth, true
		}
		l.Markers[i] = Marker{
			Inner: PointOnCircle(l.Center, l.Radius-length, angle),
			Outer: PointOnCircle(l.Center, l.Radius-markerOuterInset, angle),
			Width: width,
			Major: major,
		}
	}

	for i := 1; i <= 12; i++ {
		l.Numerals[i-1] = Numeral{
			Text: strconv.Itoa(i),
			At:   PointOnCircle(l.Center, l.Radius-NumeralInset, NumeralAngle(i)),
		}
	}

	return l
}
