//go:build linux

package platform

import (
	"errors"
	"image"
	"log/slog"

	"github.com/1broseidon/deskclock/internal/menu"
	"github.com/1broseidon/deskclock/internal/x11"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xevent"
)

// Window identity reported to the window manager and pagers.
const (
	WindowTitle = "Desk Clock"
	WindowClass = "deskclock"
)

// surface is the part of an X window the host drives. *x11.Window implements it.
type surface interface {
	ID() xproto.Window
	Map()
	Raise()
	MoveResize(x, y, width, height int)
	SetShape(rects []image.Rectangle) error
	SetCursor(glyph uint16) error
	Paint(img image.Image) error
	Destroy()
}

var _ surface = (*x11.Window)(nil)

// X11Host shows the widget in an override-redirect X11 window. All state is
// touched either from xevent callbacks or from the goroutine that drains the
// EventLoop channels, which the channel handshake serializes.
type X11Host struct {
	conn    *x11.Connection
	win     surface
	popup   *x11.Popup
	handler Handler
	logger  *slog.Logger

	bounds Rect
	// origin is the window origin as reported by the most recent pointer event.
	origin Point
	shaped bool
	dirty  bool
}

var (
	_ Host      = (*X11Host)(nil)
	_ MenuHost  = (*X11Host)(nil)
	_ Quitter   = (*X11Host)(nil)
	_ Raiser    = (*X11Host)(nil)
	_ EventLoop = (*X11Host)(nil)
)

// NewX11Host creates a size x size widget window centred on the active monitor.
// The window is mapped by Start.
func NewX11Host(conn *x11.Connection, size int, logger *slog.Logger) (*X11Host, error) {
	if logger == nil {
		logger = slog.Default()
	}

	x, y := 0, 0
	if mon, err := conn.ActiveMonitor(); err != nil {
		logger.Warn("could not find active monitor, placing widget at origin", "error", err)
	} else {
		x, y = mon.CenterSquare(size)
		logger.Debug("centring on monitor", "monitor", mon.Name, "x", x, "y", y)
	}

	win, err := x11.CreateWindow(conn, x, y, size, size)
	if err != nil {
		return nil, err
	}
	// An override-redirect window works without names.
	if err := win.SetNames(WindowTitle, WindowClass); err != nil {
		logger.Debug("could not set window names", "error", err)
	}

	popup, err := x11.NewPopup(conn)
	if err != nil {
		logger.Warn("context menu disabled", "error", err)
		popup = nil
	}

	bounds := Rect{X: x, Y: y, Width: size, Height: size}
	return &X11Host{
		conn:   conn,
		win:    win,
		popup:  popup,
		logger: logger,
		bounds: bounds,
		origin: bounds.Origin(),
	}, nil
}

// SetHandler installs the receiver of window callbacks. Must be called before Start.
func (h *X11Host) SetHandler(handler Handler) {
	h.handler = handler
}

// Bounds returns the window position and size in screen coordinates.
func (h *X11Host) Bounds() Rect {
	return h.bounds
}

// SetBounds moves and resizes the window. A size change reshapes the window and
// schedules a repaint.
func (h *X11Host) SetBounds(bounds Rect) {
	resized := bounds.Width != h.bounds.Width || bounds.Height != h.bounds.Height
	h.bounds = bounds
	h.win.MoveResize(bounds.X, bounds.Y, bounds.Width, bounds.Height)
	if resized {
		h.applyShape()
		h.dirty = true
	}
}

// PointToScreen converts a client-local point using the window origin seen by the
// latest pointer event, which tracks the server even while moves are in flight.
func (h *X11Host) PointToScreen(local Point) Point {
	return local.Add(h.origin)
}

// RequestRedraw marks the window dirty; Flush paints it.
func (h *X11Host) RequestRedraw() {
	h.dirty = true
}

// SetCursor changes the pointer glyph over the window.
func (h *X11Host) SetCursor(cursor Cursor) {
	glyph := uint16(x11.GlyphDefault)
	switch cursor {
	case CursorResizeDiagonal:
		glyph = x11.GlyphResizeDiagonal
	case CursorResizeAntiDiagonal:
		glyph = x11.GlyphResizeAntiDiagonal
	}
	if err := h.win.SetCursor(glyph); err != nil {
		h.logger.Warn("failed to set cursor", "cursor", cursor, "error", err)
	}
}

// Raise keeps the widget (and an open menu) above other windows.
func (h *X11Host) Raise() {
	h.win.Raise()
	if h.popup != nil {
		h.popup.Raise()
	}
}

// ShowMenu pops up m at the given screen point.
func (h *X11Host) ShowMenu(m *menu.Menu, at Point) {
	if h.popup == nil {
		return
	}
	if err := h.popup.Show(m, at.X, at.Y); err != nil {
		h.logger.Warn("failed to show context menu", "error", err)
		h.popup.Hide()
	}
}

// HideMenu dismisses the popup menu if it is open.
func (h *X11Host) HideMenu() {
	if h.popup != nil {
		h.popup.Hide()
	}
}

// Quit stops the event loop after the current event.
func (h *X11Host) Quit() {
	h.conn.Quit()
}

// Start connects the X event callbacks, maps the window and starts dispatching.
func (h *X11Host) Start() (before, after, quit <-chan struct{}) {
	if h.handler == nil {
		panic("platform: X11Host started without a handler")
	}
	xu := h.conn.XUtil
	wid := h.win.ID()

	xevent.ButtonPressFun(func(_ *xgbutil.XUtil, ev xevent.ButtonPressEvent) {
		h.buttonPress(ev.RootX, ev.RootY, ev.EventX, ev.EventY, ev.Detail)
	}).Connect(xu, wid)

	xevent.MotionNotifyFun(func(_ *xgbutil.XUtil, ev xevent.MotionNotifyEvent) {
		h.motion(ev.RootX, ev.RootY, ev.EventX, ev.EventY)
	}).Connect(xu, wid)

	xevent.ButtonReleaseFun(func(_ *xgbutil.XUtil, ev xevent.ButtonReleaseEvent) {
		h.buttonRelease(ev.RootX, ev.RootY, ev.EventX, ev.EventY, ev.Detail)
	}).Connect(xu, wid)

	xevent.ExposeFun(func(_ *xgbutil.XUtil, ev xevent.ExposeEvent) {
		h.expose(ev.Count)
	}).Connect(xu, wid)

	if h.popup != nil {
		pid := h.popup.Window
		xevent.ButtonPressFun(func(_ *xgbutil.XUtil, ev xevent.ButtonPressEvent) {
			h.menuClick(int(ev.EventX), int(ev.EventY))
		}).Connect(xu, pid)
		xevent.ExposeFun(func(_ *xgbutil.XUtil, ev xevent.ExposeEvent) {
			if ev.Count == 0 {
				h.popup.Draw()
			}
		}).Connect(xu, pid)
	}

	h.applyShape()
	h.win.Map()
	h.dirty = true

	return h.conn.EventLoop()
}

// Flush paints the window if a redraw was requested since the last flush.
func (h *X11Host) Flush() {
	if !h.dirty || h.handler == nil {
		return
	}
	h.dirty = false

	img := image.NewRGBA(image.Rect(0, 0, h.bounds.Width, h.bounds.Height))
	h.handler.Paint(img)
	if err := h.win.Paint(img); err != nil {
		h.logger.Warn("failed to paint window", "error", err)
	}
}

// Close destroys the widget's windows. The connection stays open.
func (h *X11Host) Close() {
	if h.popup != nil {
		h.popup.Destroy()
		h.popup = nil
	}
	h.win.Destroy()
}

func (h *X11Host) track(rootX, rootY, eventX, eventY int16) Point {
	h.origin = Point{X: int(rootX) - int(eventX), Y: int(rootY) - int(eventY)}
	return Point{X: int(eventX), Y: int(eventY)}
}

func (h *X11Host) buttonPress(rootX, rootY, eventX, eventY int16, detail xproto.Button) {
	pos := h.track(rootX, rootY, eventX, eventY)
	h.handler.PointerDown(pos, buttonFromDetail(detail))
}

func (h *X11Host) motion(rootX, rootY, eventX, eventY int16) {
	pos := h.track(rootX, rootY, eventX, eventY)
	h.handler.PointerMove(pos)
}

func (h *X11Host) buttonRelease(rootX, rootY, eventX, eventY int16, detail xproto.Button) {
	pos := h.track(rootX, rootY, eventX, eventY)
	h.handler.PointerUp(pos, buttonFromDetail(detail))
}

// expose schedules a repaint once the last Expose of a series arrives.
func (h *X11Host) expose(count uint16) {
	if count == 0 {
		h.dirty = true
	}
}

func (h *X11Host) applyShape() {
	if h.handler == nil {
		return
	}
	rects := h.handler.Silhouette(h.bounds.Width, h.bounds.Height)
	if err := h.win.SetShape(rects); err != nil {
		if !h.shaped {
			h.logger.Warn("window shape not applied, widget will be square", "error", err)
		}
		return
	}
	h.shaped = true
}

func (h *X11Host) menuClick(x, y int) {
	m := h.popup.Menu()
	h.popup.Hide()
	if m == nil {
		return
	}
	if err := m.Activate(x, y); errors.Is(err, menu.ErrNoItem) {
		h.logger.Debug("context menu dismissed")
	}
}

func buttonFromDetail(detail xproto.Button) Button {
	switch detail {
	case xproto.ButtonIndex1:
		return ButtonPrimary
	case xproto.ButtonIndex2:
		return ButtonMiddle
	case xproto.ButtonIndex3:
		return ButtonSecondary
	default:
		return ButtonNone
	}
}
