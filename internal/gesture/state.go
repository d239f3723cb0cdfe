package gesture

import "github.com/1broseidon/deskclock/internal/platform"

// Mode is the kind of pointer gesture in progress.
type Mode int

const (
	// ModeIdle means no button is held over the widget
	ModeIdle Mode = iota
	// ModeDragging means the window follows the pointer
	ModeDragging
	// ModeResizing means a corner follows the pointer
	ModeResizing
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeDragging:
		return "dragging"
	case ModeResizing:
		return "resizing"
	default:
		return "unknown"
	}
}

// Corner is a resize zone of the window.
type Corner int

const (
	// CornerNone means the point is not in a resize zone
	CornerNone Corner = iota
	// CornerTopLeft resizes against the fixed bottom-right corner
	CornerTopLeft
	// CornerTopRight resizes against the fixed bottom-left corner
	CornerTopRight
	// CornerBottomLeft resizes against the fixed top-right corner
	CornerBottomLeft
	// CornerBottomRight grows the window from its fixed origin
	CornerBottomRight
)

// String returns the string representation of the corner
func (c Corner) String() string {
	switch c {
	case CornerNone:
		return "none"
	case CornerTopLeft:
		return "top-left"
	case CornerTopRight:
		return "top-right"
	case CornerBottomLeft:
		return "bottom-left"
	case CornerBottomRight:
		return "bottom-right"
	default:
		return "unknown"
	}
}

// Gesture is the transient state of one press-move-release interaction.
// It is created whole on pointer-down and dropped on pointer-up.
type Gesture struct {
	Mode   Mode
	Corner Corner         // Set only when resizing
	Anchor platform.Point // Client-local press position, used when dragging
}

// Limits bounds the square window size, inclusive on both ends.
type Limits struct {
	Min int
	Max int
}

// Clamp returns size restricted to [Min, Max].
func (l Limits) Clamp(size int) int {
	if size > l.Max {
		size = l.Max
	}
	if size < l.Min {
		size = l.Min
	}
	return size
}
