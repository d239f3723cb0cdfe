package gesture

import (
	"log/slog"

	"github.com/1broseidon/deskclock/internal/platform"
)

// Observer receives gesture notifications, typically for metrics.
type Observer interface {
	GestureStarted(mode string)
	WindowResized()
	WindowMoved()
}

// Controller turns pointer events into window moves and resizes. It must only be
// called from the host's event-dispatch goroutine.
type Controller struct {
	host     platform.Host
	border   int
	limits   Limits
	active   *Gesture
	logger   *slog.Logger
	observer Observer
}

// NewController creates a controller that drives host.
func NewController(host platform.Host, border int, limits Limits, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	if border <= 0 {
		border = DefaultBorder
	}
	return &Controller{
		host:   host,
		border: border,
		limits: limits,
		logger: logger,
	}
}

// SetObserver installs an optional observer. Pass nil to remove it.
func (c *Controller) SetObserver(o Observer) {
	c.observer = o
}

// Limits returns the size bounds the controller clamps to.
func (c *Controller) Limits() Limits {
	return c.limits
}

// Active returns the gesture in progress, if any.
func (c *Controller) Active() (Gesture, bool) {
	if c.active == nil {
		return Gesture{}, false
	}
	return *c.active, true
}

// Mode returns the current state of the gesture state machine.
func (c *Controller) Mode() Mode {
	if c.active == nil {
		return ModeIdle
	}
	return c.active.Mode
}

// PointerDown starts a drag or a corner resize. Only the primary button starts a
// gesture; a press while a gesture is active is ignored.
func (c *Controller) PointerDown(pos platform.Point, button platform.Button) {
	if button != platform.ButtonPrimary || c.active != nil {
		return
	}

	bounds := c.host.Bounds()
	corner := HitTest(pos, bounds.Width, bounds.Height, c.border)
	if corner != CornerNone {
		c.active = &Gesture{Mode: ModeResizing, Corner: corner}
	} else {
		c.active = &Gesture{Mode: ModeDragging, Anchor: pos}
	}

	c.logger.Debug("gesture started", "mode", c.active.Mode, "corner", corner, "x", pos.X, "y", pos.Y)
	if c.observer != nil {
		c.observer.GestureStarted(c.active.Mode.String())
	}
}

// PointerMove updates the cursor glyph and, during a gesture, the window geometry.
func (c *Controller) PointerMove(pos platform.Point) {
	bounds := c.host.Bounds()
	c.host.SetCursor(CursorFor(HitTest(pos, bounds.Width, bounds.Height, c.border)))

	if c.active == nil {
		return
	}

	switch c.active.Mode {
	case ModeResizing:
		screen := c.host.PointToScreen(pos)
		next, ok := ResizeBounds(c.active.Corner, bounds, screen, pos, c.limits)
		if !ok {
			return
		}
		c.host.SetBounds(next)
		c.host.RequestRedraw()
		if c.observer != nil {
			c.observer.WindowResized()
		}
	case ModeDragging:
		origin := c.host.PointToScreen(pos).Sub(c.active.Anchor)
		c.host.SetBounds(platform.Rect{
			X:      origin.X,
			Y:      origin.Y,
			Width:  bounds.Width,
			Height: bounds.Height,
		})
		c.host.RequestRedraw()
		if c.observer != nil {
			c.observer.WindowMoved()
		}
	}
}

// PointerUp ends any gesture, whichever button was released.
func (c *Controller) PointerUp() {
	if c.active == nil {
		return
	}
	c.logger.Debug("gesture ended", "mode", c.active.Mode)
	c.active = nil
}
