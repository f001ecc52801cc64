package desktop

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dgallion1/docdesk/internal/render"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Render writes the desktop surface as HTML: icons, windows in creation
// order, notices and the taskbar.
func (s *Session) Render(w io.Writer) error {
	s.sync()
	if err := html.Render(w, s.surface); err != nil {
		return fmt.Errorf("render desktop: %w", err)
	}
	return nil
}

// HTML returns the rendered surface.
func (s *Session) HTML() string {
	s.sync()
	return render.String(s.surface)
}

// Surface returns the desktop root element after syncing window state.
func (s *Session) Surface() *html.Node {
	s.sync()
	return s.surface
}

func (s *Session) sync() {
	active, _ := s.taskbar.ActiveID()
	for _, win := range s.Windows() {
		syncShell(win, win.ID == active)
	}
	s.syncNotices()
	s.syncTaskbar()
}

func syncShell(w *Window, active bool) {
	g := w.Geometry
	style := fmt.Sprintf("left: %dpx; top: %dpx; width: %dpx; height: %dpx; z-index: %d;",
		g.Left, g.Top, g.Width, g.Height, w.ZIndex)
	if !w.Visible {
		style += " display: none;"
	}
	render.SetAttr(w.shell, "style", style)
	render.SetAttr(w.shell, "data-state", w.State().String())
	classes := []string{"window", "window-" + w.Kind.String()}
	if active {
		classes = append(classes, "active")
	}
	render.SetAttr(w.shell, "class", render.Class(classes...).Val)
}

func (s *Session) syncNotices() {
	removeChildren(s.notes)
	for i, n := range s.notices {
		idx := strconv.Itoa(i)
		s.notes.AppendChild(render.Append(
			render.Element(atom.Div, render.Class("notice", "notice-"+string(n.Kind)), render.Attr("data-index", idx)),
			render.TextElement(atom.Span, n.Message, render.Class("notice-message")),
			render.TextElement(atom.Button, "×", render.Attr("aria-label", "Dismiss"), render.Attr("data-dismiss", idx)),
		))
	}
}

func (s *Session) syncTaskbar() {
	removeChildren(s.bar)
	list := render.Element(atom.Div, render.Class("taskbar-windows"))
	for _, e := range s.taskbar.Entries() {
		classes := []string{"taskbar-item"}
		if e.Active {
			classes = append(classes, "active")
		}
		list.AppendChild(render.TextElement(atom.Div, e.Title,
			render.Class(classes...), render.Attr("data-id", e.WindowID)))
	}
	s.bar.AppendChild(list)
}

func removeChildren(n *html.Node) {
	for c := n.FirstChild; c != nil; c = n.FirstChild {
		n.RemoveChild(c)
	}
}
