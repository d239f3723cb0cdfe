package gesture

import "github.com/1broseidon/deskclock/internal/platform"

// DefaultBorder is the thickness of the corner resize zones in pixels.
const DefaultBorder = 10

// HitTest classifies a client-local point into a corner resize zone. A point is
// in a corner when it is within border pixels of both adjacent edges. Plain edges
// are not resize zones.
func HitTest(p platform.Point, width, height, border int) Corner {
	nearLeft := p.X <= border
	nearRight := p.X >= width-border
	nearTop := p.Y <= border
	nearBottom := p.Y >= height-border

	switch {
	case nearLeft && nearTop:
		return CornerTopLeft
	case nearRight && nearTop:
		return CornerTopRight
	case nearLeft && nearBottom:
		return CornerBottomLeft
	case nearRight && nearBottom:
		return CornerBottomRight
	default:
		return CornerNone
	}
}

// CursorFor returns the pointer glyph shown over a zone.
func CursorFor(c Corner) platform.Cursor {
	switch c {
	case CornerTopLeft, CornerBottomRight:
		return platform.CursorResizeDiagonal
	case CornerTopRight, CornerBottomLeft:
		return platform.CursorResizeAntiDiagonal
	default:
		return platform.CursorDefault
	}
}

// ResizeBounds computes the window bounds produced by dragging corner to the
// pointer. screen is the pointer in screen coordinates and local the same pointer
// in client coordinates.
//
// The origin is derived from the unclamped candidate size and only the size is
// clamped afterwards. The bottom-right corner measures from the client origin and
// never moves the window.
func ResizeBounds(corner Corner, bounds platform.Rect, screen, local platform.Point, limits Limits) (platform.Rect, bool) {
	var size int
	origin := bounds.Origin()

	switch corner {
	case CornerTopLeft:
		size = min(bounds.Right()-screen.X, bounds.Bottom()-screen.Y)
		origin = platform.Point{X: bounds.Right() - size, Y: bounds.Bottom() - size}
	case CornerTopRight:
		size = min(screen.X-bounds.Left(), bounds.Bottom()-screen.Y)
		origin = platform.Point{X: bounds.Left(), Y: bounds.Bottom() - size}
	case CornerBottomLeft:
		size = min(bounds.Right()-screen.X, screen.Y-bounds.Top())
		origin = platform.Point{X: bounds.Right() - size, Y: bounds.Top()}
	case CornerBottomRight:
		size = min(local.X, local.Y)
	default:
		return bounds, false
	}

	size = limits.Clamp(size)
	return platform.Rect{X: origin.X, Y: origin.Y, Width: size, Height: size}, true
}
