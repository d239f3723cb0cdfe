//go:build linux

package platform

import (
	"errors"
	"image"
	"log/slog"
	"testing"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/xcursor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSurface struct {
	moves    []Rect
	shapes   [][]image.Rectangle
	paints   []image.Rectangle
	glyphs   []uint16
	shapeErr error
}

func (s *fakeSurface) ID() xproto.Window { return 1 }
func (s *fakeSurface) Map()              {}
func (s *fakeSurface) Raise()            {}
func (s *fakeSurface) Destroy()          {}

func (s *fakeSurface) MoveResize(x, y, width, height int) {
	s.moves = append(s.moves, Rect{X: x, Y: y, Width: width, Height: height})
}

func (s *fakeSurface) SetShape(rects []image.Rectangle) error {
	s.shapes = append(s.shapes, rects)
	return s.shapeErr
}

func (s *fakeSurface) SetCursor(glyph uint16) error {
	s.glyphs = append(s.glyphs, glyph)
	return nil
}

func (s *fakeSurface) Paint(img image.Image) error {
	s.paints = append(s.paints, img.Bounds())
	return nil
}

type pointerEvent struct {
	pos    Point
	button Button
}

type recordingHandler struct {
	downs  []pointerEvent
	moves  []Point
	ups    []pointerEvent
	paints int
}

func (r *recordingHandler) PointerDown(pos Point, button Button) {
	r.downs = append(r.downs, pointerEvent{pos, button})
}

func (r *recordingHandler) PointerMove(pos Point) {
	r.moves = append(r.moves, pos)
}

func (r *recordingHandler) PointerUp(pos Point, button Button) {
	r.ups = append(r.ups, pointerEvent{pos, button})
}

func (r *recordingHandler) Paint(dst *image.RGBA) {
	r.paints++
}

func (r *recordingHandler) Silhouette(width, height int) []image.Rectangle {
	return []image.Rectangle{image.Rect(0, 0, width, height)}
}

func newTestHost(bounds Rect) (*X11Host, *fakeSurface, *recordingHandler) {
	win := &fakeSurface{}
	handler := &recordingHandler{}
	h := &X11Host{
		win:     win,
		handler: handler,
		logger:  slog.Default(),
		bounds:  bounds,
		origin:  bounds.Origin(),
	}
	return h, win, handler
}

func TestPointToScreenFollowsPointerEvents(t *testing.T) {
	h, _, handler := newTestHost(Rect{X: 100, Y: 100, Width: 300, Height: 300})

	h.motion(260, 270, 150, 160)

	require.Len(t, handler.moves, 1)
	assert.Equal(t, Point{X: 150, Y: 160}, handler.moves[0])
	assert.Equal(t, Point{X: 120, Y: 130}, h.PointToScreen(Point{X: 10, Y: 20}))
}

func TestPointToScreenIgnoresStaleBounds(t *testing.T) {
	h, _, _ := newTestHost(Rect{X: 100, Y: 100, Width: 300, Height: 300})

	// The server has not applied this move yet; events still carry the old origin.
	h.SetBounds(Rect{X: 400, Y: 400, Width: 300, Height: 300})
	h.motion(150, 150, 50, 50)

	assert.Equal(t, Point{X: 100, Y: 100}, h.PointToScreen(Point{}))

	h.motion(460, 470, 60, 70)
	assert.Equal(t, Point{X: 400, Y: 400}, h.PointToScreen(Point{}))
}

func TestButtonFromDetail(t *testing.T) {
	tests := []struct {
		detail xproto.Button
		want   Button
	}{
		{xproto.ButtonIndex1, ButtonPrimary},
		{xproto.ButtonIndex2, ButtonMiddle},
		{xproto.ButtonIndex3, ButtonSecondary},
		{xproto.ButtonIndex4, ButtonNone},
		{xproto.ButtonIndex5, ButtonNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, buttonFromDetail(tt.detail), "detail %d", tt.detail)
	}
}

func TestButtonEventsReachHandler(t *testing.T) {
	h, _, handler := newTestHost(Rect{X: 10, Y: 20, Width: 200, Height: 200})

	h.buttonPress(60, 70, 50, 50, xproto.ButtonIndex3)
	h.buttonRelease(61, 71, 51, 51, xproto.ButtonIndex3)
	h.buttonPress(40, 40, 30, 20, xproto.ButtonIndex1)

	require.Len(t, handler.downs, 2)
	assert.Equal(t, pointerEvent{Point{X: 50, Y: 50}, ButtonSecondary}, handler.downs[0])
	assert.Equal(t, pointerEvent{Point{X: 30, Y: 20}, ButtonPrimary}, handler.downs[1])
	require.Len(t, handler.ups, 1)
	assert.Equal(t, pointerEvent{Point{X: 51, Y: 51}, ButtonSecondary}, handler.ups[0])
}

func TestFlushCoalescesRedraws(t *testing.T) {
	h, win, handler := newTestHost(Rect{X: 0, Y: 0, Width: 240, Height: 180})

	h.RequestRedraw()
	h.RequestRedraw()
	h.RequestRedraw()
	h.Flush()

	assert.Equal(t, 1, handler.paints)
	require.Len(t, win.paints, 1)
	assert.Equal(t, image.Rect(0, 0, 240, 180), win.paints[0])

	h.Flush()
	assert.Equal(t, 1, handler.paints, "clean window must not repaint")
}

func TestExposeRepaintsAfterLastEvent(t *testing.T) {
	h, win, _ := newTestHost(Rect{Width: 100, Height: 100})

	h.expose(2)
	h.expose(1)
	h.Flush()
	assert.Empty(t, win.paints)

	h.expose(0)
	h.Flush()
	assert.Len(t, win.paints, 1)
}

func TestSetBoundsReshapesOnlyOnResize(t *testing.T) {
	h, win, _ := newTestHost(Rect{X: 0, Y: 0, Width: 200, Height: 200})

	h.SetBounds(Rect{X: 30, Y: 40, Width: 200, Height: 200})
	assert.Empty(t, win.shapes)
	assert.False(t, h.dirty)

	h.SetBounds(Rect{X: 30, Y: 40, Width: 260, Height: 260})
	require.Len(t, win.shapes, 1)
	assert.Equal(t, []image.Rectangle{image.Rect(0, 0, 260, 260)}, win.shapes[0])
	assert.True(t, h.dirty)

	assert.Equal(t, []Rect{
		{X: 30, Y: 40, Width: 200, Height: 200},
		{X: 30, Y: 40, Width: 260, Height: 260},
	}, win.moves)
	assert.Equal(t, Rect{X: 30, Y: 40, Width: 260, Height: 260}, h.Bounds())
}

func TestShapeFailureKeepsWindowUsable(t *testing.T) {
	h, win, _ := newTestHost(Rect{Width: 200, Height: 200})
	win.shapeErr = errors.New("no SHAPE extension")

	h.SetBounds(Rect{Width: 220, Height: 220})

	assert.False(t, h.shaped)
	assert.True(t, h.dirty)
}

func TestSetCursorGlyphs(t *testing.T) {
	h, win, _ := newTestHost(Rect{Width: 100, Height: 100})

	h.SetCursor(CursorResizeDiagonal)
	h.SetCursor(CursorResizeAntiDiagonal)
	h.SetCursor(CursorDefault)

	assert.Equal(t, []uint16{
		xcursor.BottomRightCorner,
		xcursor.BottomLeftCorner,
		xcursor.LeftPtr,
	}, win.glyphs)
}
