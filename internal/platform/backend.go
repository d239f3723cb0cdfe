package platform

import (
	"image"

	"github.com/1broseidon/deskclock/internal/menu"
)

// Point is a position in whole pixels, either client-local or in screen coordinates
// depending on where it came from.
type Point struct {
	X int
	Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Rect describes a rectangular region in screen coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Left returns the x coordinate of the left edge.
func (r Rect) Left() int { return r.X }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() int { return r.Y }

// Right returns the x coordinate one past the right edge.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the y coordinate one past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Origin returns the top-left corner.
func (r Rect) Origin() Point { return Point{X: r.X, Y: r.Y} }

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Cursor is the pointer glyph shown over the widget.
type Cursor int

const (
	CursorDefault Cursor = iota
	// CursorResizeDiagonal is the NW-SE resize glyph.
	CursorResizeDiagonal
	// CursorResizeAntiDiagonal is the NE-SW resize glyph.
	CursorResizeAntiDiagonal
)

// String returns the string representation of the cursor
func (c Cursor) String() string {
	switch c {
	case CursorDefault:
		return "default"
	case CursorResizeDiagonal:
		return "resize-nwse"
	case CursorResizeAntiDiagonal:
		return "resize-nesw"
	default:
		return "unknown"
	}
}

// Button identifies a pointer button.
type Button int

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonMiddle
	ButtonSecondary
)

// Host abstracts the window that shows the widget. Every call happens on the
// event-dispatch goroutine.
type Host interface {
	// Bounds returns the window position and size in screen coordinates.
	Bounds() Rect
	// SetBounds moves and resizes the window.
	SetBounds(bounds Rect)
	// PointToScreen converts a client-local point to screen coordinates.
	PointToScreen(local Point) Point
	// RequestRedraw marks the window dirty; the host paints once the current
	// event has been dispatched.
	RequestRedraw()
	// SetCursor changes the pointer glyph over the window.
	SetCursor(cursor Cursor)
}

// MenuHost is implemented by hosts that can pop up a context menu.
type MenuHost interface {
	// ShowMenu pops up m with its top-left corner at the given screen point.
	ShowMenu(m *menu.Menu, at Point)
	HideMenu()
}

// Quitter is implemented by hosts that can stop their event loop.
type Quitter interface {
	Quit()
}

// Raiser is implemented by hosts that can restack the window above its siblings.
type Raiser interface {
	Raise()
}

// Handler receives the host's window callbacks on the event-dispatch goroutine.
type Handler interface {
	PointerDown(pos Point, button Button)
	PointerMove(pos Point)
	PointerUp(pos Point, button Button)
	// Paint draws one frame into dst, which covers the whole client area.
	Paint(dst *image.RGBA)
	// Silhouette returns the opaque region of a window of the given size.
	Silhouette(width, height int) []image.Rectangle
}

// EventLoop is implemented by hosts that dispatch window events on their own
// goroutine. Each dispatched event is bracketed by a receive on before and
// after; quit is closed when the loop stops.
type EventLoop interface {
	Start() (before, after, quit <-chan struct{})
	// Flush paints the window if a redraw was requested since the last flush.
	Flush()
	Quit()
}
