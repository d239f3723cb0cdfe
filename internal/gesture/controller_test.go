package gesture

import (
	"testing"

	"github.com/1broseidon/deskclock/internal/platform"
	"github.com/1broseidon/deskclock/internal/platform/platformtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	started []string
	resized int
	moved   int
}

func (r *recordingObserver) GestureStarted(mode string) { r.started = append(r.started, mode) }
func (r *recordingObserver) WindowResized()             { r.resized++ }
func (r *recordingObserver) WindowMoved()               { r.moved++ }

func newTestController(bounds platform.Rect) (*Controller, *platformtest.Host) {
	host := platformtest.NewHost(bounds)
	return NewController(host, DefaultBorder, Limits{Min: 150, Max: 600}, nil), host
}

func TestPointerDownInCornerStartsResize(t *testing.T) {
	c, _ := newTestController(platform.Rect{X: 100, Y: 100, Width: 300, Height: 300})

	c.PointerDown(platform.Point{X: 5, Y: 5}, platform.ButtonPrimary)

	g, ok := c.Active()
	require.True(t, ok)
	assert.Equal(t, ModeResizing, g.Mode)
	assert.Equal(t, CornerTopLeft, g.Corner)
}

func TestPointerDownElsewhereStartsDrag(t *testing.T) {
	c, _ := newTestController(platform.Rect{X: 100, Y: 100, Width: 300, Height: 300})

	c.PointerDown(platform.Point{X: 150, Y: 40}, platform.ButtonPrimary)

	g, ok := c.Active()
	require.True(t, ok)
	assert.Equal(t, ModeDragging, g.Mode)
	assert.Equal(t, CornerNone, g.Corner)
	assert.Equal(t, platform.Point{X: 150, Y: 40}, g.Anchor)
}

func TestPointerDownIgnoresOtherButtons(t *testing.T) {
	c, _ := newTestController(platform.Rect{X: 100, Y: 100, Width: 300, Height: 300})

	c.PointerDown(platform.Point{X: 150, Y: 150}, platform.ButtonSecondary)
	c.PointerDown(platform.Point{X: 150, Y: 150}, platform.ButtonMiddle)

	assert.Equal(t, ModeIdle, c.Mode())
}

func TestPointerDownDuringGestureIsIgnored(t *testing.T) {
	c, _ := newTestController(platform.Rect{X: 100, Y: 100, Width: 300, Height: 300})

	c.PointerDown(platform.Point{X: 150, Y: 150}, platform.ButtonPrimary)
	c.PointerDown(platform.Point{X: 2, Y: 2}, platform.ButtonPrimary)

	g, _ := c.Active()
	assert.Equal(t, ModeDragging, g.Mode)
	assert.Equal(t, platform.Point{X: 150, Y: 150}, g.Anchor)
}

func TestTopLeftResizeScenario(t *testing.T) {
	c, host := newTestController(platform.Rect{X: 100, Y: 100, Width: 300, Height: 300})
	c.limits = Limits{Min: 50, Max: 600}

	c.PointerDown(platform.Point{X: 5, Y: 5}, platform.ButtonPrimary)

	// Screen (Right-100, Bottom-100) expressed in client coordinates.
	c.PointerMove(platform.Point{X: 200, Y: 200})

	assert.Equal(t, platform.Rect{X: 300, Y: 300, Width: 100, Height: 100}, host.Rect)
	assert.Equal(t, 1, host.Redraws)
}

func TestTopLeftResizeScenarioClampedToMinimum(t *testing.T) {
	c, host := newTestController(platform.Rect{X: 100, Y: 100, Width: 300, Height: 300})

	c.PointerDown(platform.Point{X: 5, Y: 5}, platform.ButtonPrimary)
	c.PointerMove(platform.Point{X: 200, Y: 200})

	assert.Equal(t, platform.Rect{X: 300, Y: 300, Width: 150, Height: 150}, host.Rect)
}

func TestBottomRightResizeKeepsOrigin(t *testing.T) {
	c, host := newTestController(platform.Rect{X: 100, Y: 100, Width: 300, Height: 300})

	c.PointerDown(platform.Point{X: 295, Y: 295}, platform.ButtonPrimary)
	for _, p := range []platform.Point{{X: 350, Y: 400}, {X: 10, Y: 10}, {X: 900, Y: 900}, {X: 250, Y: 260}} {
		c.PointerMove(p)
		assert.Equal(t, 100, host.Rect.X)
		assert.Equal(t, 100, host.Rect.Y)
	}
	assert.Equal(t, 250, host.Rect.Width)
}

func TestResizeAlwaysSquareAndWithinLimits(t *testing.T) {
	corners := map[Corner]platform.Point{
		CornerTopLeft:     {X: 1, Y: 1},
		CornerTopRight:    {X: 298, Y: 1},
		CornerBottomLeft:  {X: 1, Y: 298},
		CornerBottomRight: {X: 298, Y: 298},
	}

	for corner, press := range corners {
		t.Run(corner.String(), func(t *testing.T) {
			c, host := newTestController(platform.Rect{X: 500, Y: 500, Width: 300, Height: 300})
			c.PointerDown(press, platform.ButtonPrimary)
			g, _ := c.Active()
			require.Equal(t, corner, g.Corner)

			for x := -1200; x <= 1200; x += 97 {
				for y := -1200; y <= 1200; y += 89 {
					c.PointerMove(platform.Point{X: x, Y: y})
					assert.Equal(t, host.Rect.Width, host.Rect.Height)
					assert.GreaterOrEqual(t, host.Rect.Width, 150)
					assert.LessOrEqual(t, host.Rect.Width, 600)
				}
			}
		})
	}
}

func TestDragMovesWithoutResizing(t *testing.T) {
	c, host := newTestController(platform.Rect{X: 100, Y: 100, Width: 300, Height: 300})

	c.PointerDown(platform.Point{X: 150, Y: 120}, platform.ButtonPrimary)
	c.PointerMove(platform.Point{X: 160, Y: 100})

	assert.Equal(t, platform.Rect{X: 110, Y: 80, Width: 300, Height: 300}, host.Rect)

	c.PointerMove(platform.Point{X: 100, Y: 200})
	assert.Equal(t, platform.Rect{X: 60, Y: 160, Width: 300, Height: 300}, host.Rect)
}

func TestDragRequestsRedrawPerUpdate(t *testing.T) {
	c, host := newTestController(platform.Rect{X: 100, Y: 100, Width: 300, Height: 300})

	c.PointerDown(platform.Point{X: 150, Y: 150}, platform.ButtonPrimary)
	c.PointerMove(platform.Point{X: 160, Y: 170})
	c.PointerMove(platform.Point{X: 180, Y: 210})

	assert.Len(t, host.SetCalls, 2)
	assert.Equal(t, 2, host.Redraws)

	c.PointerUp()
	c.PointerMove(platform.Point{X: 190, Y: 220})
	assert.Equal(t, 2, host.Redraws, "moves after release must not redraw")
}

func TestPointerMoveUpdatesCursorWithoutGesture(t *testing.T) {
	c, host := newTestController(platform.Rect{X: 0, Y: 0, Width: 300, Height: 300})

	c.PointerMove(platform.Point{X: 3, Y: 3})
	assert.Equal(t, platform.CursorResizeDiagonal, host.Cursor)

	c.PointerMove(platform.Point{X: 297, Y: 3})
	assert.Equal(t, platform.CursorResizeAntiDiagonal, host.Cursor)

	c.PointerMove(platform.Point{X: 150, Y: 150})
	assert.Equal(t, platform.CursorDefault, host.Cursor)

	assert.Empty(t, host.SetCalls)
}

func TestPointerMoveUpdatesCursorDuringDrag(t *testing.T) {
	c, host := newTestController(platform.Rect{X: 0, Y: 0, Width: 300, Height: 300})

	c.PointerDown(platform.Point{X: 150, Y: 150}, platform.ButtonPrimary)
	c.PointerMove(platform.Point{X: 3, Y: 3})

	assert.Equal(t, platform.CursorResizeDiagonal, host.Cursor)
	assert.Equal(t, ModeDragging, c.Mode())
}

func TestPointerUpReturnsToIdle(t *testing.T) {
	c, host := newTestController(platform.Rect{X: 100, Y: 100, Width: 300, Height: 300})

	c.PointerDown(platform.Point{X: 5, Y: 5}, platform.ButtonPrimary)
	c.PointerUp()
	_, ok := c.Active()
	assert.False(t, ok)

	before := len(host.SetCalls)
	c.PointerMove(platform.Point{X: 100, Y: 100})
	assert.Len(t, host.SetCalls, before)

	c.PointerUp()
	assert.Equal(t, ModeIdle, c.Mode())
}

func TestObserverSeesGestures(t *testing.T) {
	c, _ := newTestController(platform.Rect{X: 100, Y: 100, Width: 300, Height: 300})
	obs := &recordingObserver{}
	c.SetObserver(obs)

	c.PointerDown(platform.Point{X: 5, Y: 5}, platform.ButtonPrimary)
	c.PointerMove(platform.Point{X: 0, Y: 0})
	c.PointerUp()
	c.PointerDown(platform.Point{X: 150, Y: 150}, platform.ButtonPrimary)
	c.PointerMove(platform.Point{X: 151, Y: 150})
	c.PointerUp()

	assert.Equal(t, []string{"resizing", "dragging"}, obs.started)
	assert.Equal(t, 1, obs.resized)
	assert.Equal(t, 1, obs.moved)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "idle", ModeIdle.String())
	assert.Equal(t, "dragging", ModeDragging.String())
	assert.Equal(t, "resizing", ModeResizing.String())
	assert.Equal(t, "unknown", Mode(42).String())
}
