package desktop

import (
	"golang.org/x/net/html"
)

// WindowKind selects the body a window is built with.
type WindowKind int

const (
	// KindExplorer browses a folder: a tree on the left, icons on the right.
	KindExplorer WindowKind = iota
	// KindViewer shows a single document.
	KindViewer
)

// String returns a string representation of the window kind.
func (k WindowKind) String() string {
	switch k {
	case KindExplorer:
		return "explorer"
	case KindViewer:
		return "viewer"
	default:
		return "unknown"
	}
}

// State is the controller state of a window.
type State int

const (
	StateNormal State = iota
	StateMinimized
	StateMaximized
	StateClosed
)

// String returns a string representation of the window state.
func (s State) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateMinimized:
		return "minimized"
	case StateMaximized:
		return "maximized"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Window is one desktop window. Its fields are owned by the Session that
// created it; read them, but change them only through Session methods.
type Window struct {
	ID       string
	Kind     WindowKind
	Title    string
	Geometry Geometry
	ZIndex   int
	Visible  bool

	// Maximized is set while the window fills the viewport. Saved holds the
	// geometry to restore and is meaningful only while Maximized is set.
	Maximized bool
	Saved     Geometry

	active bool
	closed bool
	shell  *html.Node
}

// State derives the controller state from the window's flags. A minimized
// window that was maximized reports Minimized and returns to Maximized
// when restored.
func (w *Window) State() State {
	switch {
	case w.closed:
		return StateClosed
	case !w.Visible:
		return StateMinimized
	case w.Maximized:
		return StateMaximized
	default:
		return StateNormal
	}
}

// Active reports whether the controller has been attached.
func (w *Window) Active() bool { return w.active }

// Shell returns the window's root element.
func (w *Window) Shell() *html.Node { return w.shell }
