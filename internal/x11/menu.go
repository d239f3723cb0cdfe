package x11

import (
	"fmt"

	"github.com/1broseidon/deskclock/internal/menu"
	"github.com/BurntSushi/xgb/xproto"
)

// Popup menu colors
const (
	ColorMenuText = 0xf5f7fa // Light text
	ColorMenuBg   = 0x1f2933 // Dark background
)

// Popup is an override-redirect window that shows a menu.Menu using the server's
// core "fixed" font. While mapped it holds a pointer grab so that a click outside
// the popup can dismiss it.
type Popup struct {
	conn   *Connection
	Window xproto.Window
	GC     xproto.Gcontext
	Font   xproto.Font
	menu   *menu.Menu
	mapped bool
}

// NewPopup creates the popup window and its drawing resources. The window stays
// unmapped until Show.
func NewPopup(conn *Connection) (*Popup, error) {
	x := conn.XUtil.Conn()
	screen := conn.XUtil.Screen()

	wid, err := xproto.NewWindowId(x)
	if err != nil {
		return nil, err
	}
	err = xproto.CreateWindowChecked(
		x,
		screen.RootDepth,
		wid,
		conn.Root,
		0, 0,
		1, 1,
		0,
		xproto.WindowClassInputOutput,
		screen.RootVisual,
		xproto.CwBackPixel|xproto.CwOverrideRedirect|xproto.CwEventMask,
		[]uint32{
			ColorMenuBg,
			1,
			xproto.EventMaskExposure | xproto.EventMaskButtonPress,
		},
	).Check()
	if err != nil {
		return nil, fmt.Errorf("failed to create popup window: %w", err)
	}

	font, err := openCoreFont(conn)
	if err != nil {
		xproto.DestroyWindow(x, wid)
		return nil, err
	}

	gc, err := xproto.NewGcontextId(x)
	if err != nil {
		xproto.CloseFont(x, font)
		xproto.DestroyWindow(x, wid)
		return nil, err
	}
	err = xproto.CreateGCChecked(
		x,
		gc,
		xproto.Drawable(wid),
		xproto.GcForeground|xproto.GcBackground|xproto.GcFont|xproto.GcGraphicsExposures,
		[]uint32{
			ColorMenuText, // foreground
			ColorMenuBg,   // background
			uint32(font),  // font
			0,             // graphics_exposures=false
		},
	).Check()
	if err != nil {
		xproto.CloseFont(x, font)
		xproto.DestroyWindow(x, wid)
		return nil, fmt.Errorf("failed to create popup gc: %w", err)
	}

	return &Popup{conn: conn, Window: wid, GC: gc, Font: font}, nil
}

func openCoreFont(conn *Connection) (xproto.Font, error) {
	x := conn.XUtil.Conn()
	font, err := xproto.NewFontId(x)
	if err != nil {
		return 0, err
	}
	for _, name := range []string{"fixed", "9x15", "8x13", "6x13"} {
		if err := xproto.OpenFontChecked(x, font, uint16(len(name)), name).Check(); err == nil {
			return font, nil
		}
	}
	return 0, fmt.Errorf("no core font available for popup menu")
}

// Menu returns the menu being shown, or nil when the popup is hidden.
func (p *Popup) Menu() *menu.Menu {
	if !p.mapped {
		return nil
	}
	return p.menu
}

// Visible reports whether the popup is mapped.
func (p *Popup) Visible() bool {
	return p.mapped
}

// Show maps the popup with its top-left corner at the given root position.
func (p *Popup) Show(m *menu.Menu, x, y int) error {
	conn := p.conn.XUtil.Conn()
	width, height := m.Size()

	xproto.ConfigureWindow(
		conn,
		p.Window,
		xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|xproto.ConfigWindowHeight|xproto.ConfigWindowStackMode,
		[]uint32{
			uint32(x),
			uint32(y),
			uint32(width),
			uint32(height),
			xproto.StackModeAbove,
		},
	)
	xproto.MapWindow(conn, p.Window)
	p.menu = m
	p.mapped = true
	p.Draw()

	reply, err := xproto.GrabPointer(
		conn,
		false,
		p.Window,
		xproto.EventMaskButtonPress|xproto.EventMaskButtonRelease,
		xproto.GrabModeAsync,
		xproto.GrabModeAsync,
		xproto.WindowNone,
		xproto.CursorNone,
		xproto.TimeCurrentTime,
	).Reply()
	if err != nil {
		return fmt.Errorf("failed to grab pointer for popup: %w", err)
	}
	if reply.Status != xproto.GrabStatusSuccess {
		return fmt.Errorf("failed to grab pointer for popup: status %d", reply.Status)
	}
	return nil
}

// Raise restacks a visible popup above every sibling.
func (p *Popup) Raise() {
	if !p.mapped {
		return
	}
	xproto.ConfigureWindow(p.conn.XUtil.Conn(), p.Window, xproto.ConfigWindowStackMode, []uint32{xproto.StackModeAbove})
}

// Draw renders the menu rows. Safe to call on every Expose.
func (p *Popup) Draw() {
	if !p.mapped || p.menu == nil {
		return
	}
	conn := p.conn.XUtil.Conn()
	xproto.ClearArea(conn, false, p.Window, 0, 0, 0, 0)
	for i, item := range p.menu.Items() {
		label := item.Label
		if label == "" {
			continue
		}
		if len(label) > 255 {
			label = label[:255]
		}
		xproto.ImageText8(
			conn,
			byte(len(label)),
			xproto.Drawable(p.Window),
			p.GC,
			int16(menu.PaddingX),
			int16(menu.Baseline(i)),
			label,
		)
	}
}

// Hide releases the pointer grab and unmaps the popup.
func (p *Popup) Hide() {
	if !p.mapped {
		return
	}
	conn := p.conn.XUtil.Conn()
	xproto.UngrabPointer(conn, xproto.TimeCurrentTime)
	xproto.UnmapWindow(conn, p.Window)
	p.mapped = false
	p.menu = nil
}

// Destroy frees the popup's server resources.
func (p *Popup) Destroy() {
	p.Hide()
	conn := p.conn.XUtil.Conn()
	xproto.FreeGC(conn, p.GC)
	xproto.CloseFont(conn, p.Font)
	xproto.DestroyWindow(conn, p.Window)
}
