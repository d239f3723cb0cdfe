// Package platformtest provides an in-memory platform.Host for tests.
package platformtest

import (
	"github.com/1broseidon/deskclock/internal/menu"
	"github.com/1broseidon/deskclock/internal/platform"
)

// Host records every call the core makes against the window.
type Host struct {
	Rect      platform.Rect
	Cursor    platform.Cursor
	Cursors   []platform.Cursor
	SetCalls  []platform.Rect
	Redraws   int
	Menu      *menu.Menu
	MenuAt    platform.Point
	MenuShown bool
	Quitted   bool
	Raises    int
}

var (
	_ platform.Host     = (*Host)(nil)
	_ platform.MenuHost = (*Host)(nil)
	_ platform.Quitter  = (*Host)(nil)
	_ platform.Raiser   = (*Host)(nil)
)

// NewHost creates a host whose window occupies bounds.
func NewHost(bounds platform.Rect) *Host {
	return &Host{Rect: bounds}
}

func (h *Host) Bounds() platform.Rect { return h.Rect }

func (h *Host) SetBounds(bounds platform.Rect) {
	h.Rect = bounds
	h.SetCalls = append(h.SetCalls, bounds)
}

func (h *Host) PointToScreen(local platform.Point) platform.Point {
	return local.Add(h.Rect.Origin())
}

func (h *Host) RequestRedraw() { h.Redraws++ }

func (h *Host) SetCursor(cursor platform.Cursor) {
	h.Cursor = cursor
	h.Cursors = append(h.Cursors, cursor)
}

func (h *Host) ShowMenu(m *menu.Menu, at platform.Point) {
	h.Menu = m
	h.MenuAt = at
	h.MenuShown = true
}

func (h *Host) HideMenu() { h.MenuShown = false }

func (h *Host) Quit() { h.Quitted = true }

func (h *Host) Raise() { h.Raises++ }
