package menu

import "errors"

// ErrNoItem is returned by Activate when the point is not over an item.
var ErrNoItem = errors.New("menu: no item at point")

// Layout metrics for the popup. Glyph cell sizes match the X core "fixed" font.
const (
	PaddingX   = 10
	PaddingY   = 4
	LineHeight = 18
	CharWidth  = 7
	MinWidth   = 96
)

// MenuItem represents one selectable entry.
type MenuItem struct {
	Label  string // Display label
	Action func() // Invoked when the item is chosen
}

// Menu is a flat popup menu. Rows are laid out top to bottom, one per item.
type Menu struct {
	items []MenuItem
}

// New creates a menu with the given items.
func New(items ...MenuItem) *Menu {
	return &Menu{items: items}
}

// Items returns the menu entries in display order.
func (m *Menu) Items() []MenuItem {
	return m.items
}

// Size returns the popup dimensions in pixels.
func (m *Menu) Size() (width, height int) {
	maxChars := 0
	for _, item := range m.items {
		if len(item.Label) > maxChars {
			maxChars = len(item.Label)
		}
	}
	width = maxChars*CharWidth + 2*PaddingX
	if width < MinWidth {
		width = MinWidth
	}
	height = len(m.items)*LineHeight + 2*PaddingY
	return width, height
}

// Baseline returns the text baseline for row i, relative to the popup origin.
func Baseline(i int) int {
	return PaddingY + i*LineHeight + LineHeight - 5
}

// ItemAt returns the index of the item under the popup-local point, or -1.
func (m *Menu) ItemAt(x, y int) int {
	width, height := m.Size()
	if x < 0 || x >= width || y < PaddingY || y >= height-PaddingY {
		return -1
	}
	idx := (y - PaddingY) / LineHeight
	if idx < 0 || idx >= len(m.items) {
		return -1
	}
	return idx
}

// Activate runs the action of the item under the popup-local point.
func (m *Menu) Activate(x, y int) error {
	idx := m.ItemAt(x, y)
	if idx < 0 {
		return ErrNoItem
	}
	if action := m.items[idx].Action; action != nil {
		action()
	}
	return nil
}
