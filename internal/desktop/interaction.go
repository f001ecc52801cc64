package desktop

// Handle identifies a resize handle.
type Handle string

const (
	HandleTopLeft     Handle = "tl"
	HandleBottomLeft  Handle = "bl"
	HandleBottomRight Handle = "br"
)

// Handles lists the resize handles every window carries, in shell order.
var Handles = []Handle{HandleTopLeft, HandleBottomLeft, HandleBottomRight}

func (h Handle) valid() bool {
	switch h {
	case HandleTopLeft, HandleBottomLeft, HandleBottomRight:
		return true
	}
	return false
}

// Mode is the pointer interaction state of a session.
type Mode int

const (
	ModeIdle Mode = iota
	ModeDragging
	ModeResizing
)

// String returns a string representation of the interaction mode.
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

// interaction is the session-wide drag/resize state machine. At most one
// window is dragged or resized at a time, and never both.
type interaction struct {
	mode     Mode
	windowID string
	handle   Handle
	origin   Point
	start    Geometry
}

func (in *interaction) beginDrag(w *Window, at Point) {
	*in = interaction{mode: ModeDragging, windowID: w.ID, origin: at, start: w.Geometry}
}

func (in *interaction) beginResize(w *Window, h Handle, at Point) {
	*in = interaction{mode: ModeResizing, windowID: w.ID, handle: h, origin: at, start: w.Geometry}
}

// move returns the geometry the interacting window should take for a
// pointer at p. ok is false while idle.
func (in *interaction) move(p Point, floor Size) (id string, g Geometry, ok bool) {
	delta := p.Sub(in.origin)
	switch in.mode {
	case ModeDragging:
		return in.windowID, Drag(in.start, delta), true
	case ModeResizing:
		return in.windowID, Resize(in.start, in.handle, delta, floor), true
	}
	return "", Geometry{}, false
}

func (in *interaction) reset() {
	*in = interaction{}
}

// releaseWindow drops the interaction if it targets id.
func (in *interaction) releaseWindow(id string) {
	if in.mode != ModeIdle && in.windowID == id {
		in.reset()
	}
}
