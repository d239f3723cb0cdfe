package x11

import (
	"errors"
	"fmt"
	"image"

	"github.com/BurntSushi/xgb/shape"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xcursor"
	"github.com/BurntSushi/xgbutil/xgraphics"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// Cursor glyphs from the X cursor font. The core font has no double-headed
// diagonal arrow, so the resize glyphs use the bottom corner arrows the way
// GDK maps nwse-resize and nesw-resize on core cursors.
const (
	GlyphDefault            = xcursor.LeftPtr
	GlyphResizeDiagonal     = xcursor.BottomRightCorner
	GlyphResizeAntiDiagonal = xcursor.BottomLeftCorner
)

const widgetEventMask = xproto.EventMaskExposure |
	xproto.EventMaskButtonPress |
	xproto.EventMaskButtonRelease |
	xproto.EventMaskPointerMotion

// Window is a borderless override-redirect window. Override-redirect keeps the
// window manager from decorating, placing or lowering it.
type Window struct {
	conn    *Connection
	win     *xwindow.Window
	cursors map[uint16]xproto.Cursor
	glyph   uint16
}

// CreateWindow creates an unmapped widget window with the given geometry.
func CreateWindow(conn *Connection, x, y, width, height int) (*Window, error) {
	xu := conn.XUtil

	win, err := xwindow.Generate(xu)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate window id: %w", err)
	}

	// Value list order follows the bit positions of the mask (low to high).
	err = win.CreateChecked(
		conn.Root,
		x, y, width, height,
		xproto.CwBackPixel|xproto.CwOverrideRedirect|xproto.CwEventMask,
		0,               // back_pixel=black
		1,               // override_redirect=true
		widgetEventMask, // event_mask
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	return &Window{
		conn:    conn,
		win:     win,
		cursors: make(map[uint16]xproto.Cursor),
	}, nil
}

// SetNames sets _NET_WM_NAME, WM_NAME and WM_CLASS. Every property is
// attempted; the failures are returned joined.
func (w *Window) SetNames(title, class string) error {
	xu := w.conn.XUtil
	var errs []error
	if err := ewmh.WmNameSet(xu, w.win.Id, title); err != nil {
		errs = append(errs, fmt.Errorf("_NET_WM_NAME: %w", err))
	}
	if err := icccm.WmNameSet(xu, w.win.Id, title); err != nil {
		errs = append(errs, fmt.Errorf("WM_NAME: %w", err))
	}
	if err := icccm.WmClassSet(xu, w.win.Id, &icccm.WmClass{Instance: class, Class: class}); err != nil {
		errs = append(errs, fmt.Errorf("WM_CLASS: %w", err))
	}
	return errors.Join(errs...)
}

// ID returns the X window id.
func (w *Window) ID() xproto.Window {
	return w.win.Id
}

// Map shows the window above its siblings.
func (w *Window) Map() {
	w.win.Map()
	w.Raise()
}

// Raise restacks the window above every sibling.
func (w *Window) Raise() {
	w.win.Stack(xproto.StackModeAbove)
}

// MoveResize sets the window geometry in root coordinates.
func (w *Window) MoveResize(x, y, width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	w.win.MoveResize(x, y, width, height)
}

// SetShape replaces the window's bounding region with the union of rects.
func (w *Window) SetShape(rects []image.Rectangle) error {
	xrects := make([]xproto.Rectangle, 0, len(rects))
	for _, r := range rects {
		if r.Empty() {
			continue
		}
		xrects = append(xrects, xproto.Rectangle{
			X:      int16(r.Min.X),
			Y:      int16(r.Min.Y),
			Width:  uint16(r.Dx()),
			Height: uint16(r.Dy()),
		})
	}

	err := shape.RectanglesChecked(
		w.conn.XUtil.Conn(),
		shape.SoSet,
		shape.SkBounding,
		xproto.ClipOrderingUnsorted,
		w.win.Id,
		0, 0,
		xrects,
	).Check()
	if err != nil {
		return fmt.Errorf("failed to set window shape: %w", err)
	}
	return nil
}

// SetCursor changes the pointer glyph shown over the window. Cursors are created
// once per glyph and reused.
func (w *Window) SetCursor(glyph uint16) error {
	if glyph == w.glyph {
		return nil
	}
	cur, ok := w.cursors[glyph]
	if !ok {
		var err error
		cur, err = xcursor.CreateCursor(w.conn.XUtil, glyph)
		if err != nil {
			return fmt.Errorf("failed to create cursor %d: %w", glyph, err)
		}
		w.cursors[glyph] = cur
	}
	w.win.Change(xproto.CwCursor, uint32(cur))
	w.glyph = glyph
	return nil
}

// Paint uploads img and makes it the window contents.
func (w *Window) Paint(img image.Image) error {
	ximg := xgraphics.NewConvert(w.conn.XUtil, img)
	defer ximg.Destroy()

	if err := ximg.XSurfaceSet(w.win.Id); err != nil {
		return fmt.Errorf("failed to create window surface: %w", err)
	}
	ximg.XDraw()
	ximg.XPaint(w.win.Id)
	return nil
}

// Destroy frees the cursors and the window.
func (w *Window) Destroy() {
	conn := w.conn.XUtil.Conn()
	for _, cur := range w.cursors {
		xproto.FreeCursor(conn, cur)
	}
	w.cursors = nil
	w.win.Destroy()
}
