package desktop

import (
	"strings"

	"github.com/dgallion1/docdesk/internal/docstore"
	"github.com/dgallion1/docdesk/internal/render"
	"github.com/google/uuid"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Default placement. New windows are offset by a random jitter so stacked
// windows never sit exactly on top of each other.
const (
	placeLeft       = 100
	placeLeftJitter = 200
	placeTop        = 40
	placeTopJitter  = 100
	explorerWidth   = 800
	explorerHeight  = 500
	viewerWidth     = 600
	viewerBottomGap = 20
)

var controlLabels = []string{"Minimize", "Maximize", "Close"}

// CreateExplorerWindow builds a folder browser for folder and inserts it
// into the surface. It does not activate the window.
func (s *Session) CreateExplorerWindow(folder *docstore.Folder, store *docstore.Store) *Window {
	return s.createWindow(KindExplorer, folder.Name, render.ExplorerBody(folder, store))
}

// CreateViewerWindow builds a document viewer and inserts it into the
// surface. It does not activate the window. It fails, inserting nothing,
// when doc cannot be rendered.
func (s *Session) CreateViewerWindow(doc *docstore.Document) (*Window, error) {
	body, err := render.ViewerBody(doc)
	if err != nil {
		return nil, err
	}
	return s.createWindow(KindViewer, doc.Title, body), nil
}

func (s *Session) createWindow(kind WindowKind, title string, body *html.Node) *Window {
	w := &Window{
		ID:       uuid.NewString(),
		Kind:     kind,
		Title:    title,
		Geometry: s.placement(kind),
		Visible:  true,
	}
	w.shell = buildShell(w, body)
	s.surface.InsertBefore(w.shell, s.notes)
	s.windows[w.ID] = w
	s.order = append(s.order, w.ID)
	s.log.Debug("window created", "window", w.ID, "kind", kind.String(), "title", title)
	return w
}

func (s *Session) placement(kind WindowKind) Geometry {
	g := Geometry{
		Left: placeLeft + s.opts.Rand.IntN(placeLeftJitter),
		Top:  placeTop + s.opts.Rand.IntN(placeTopJitter),
	}
	switch kind {
	case KindExplorer:
		g.Width, g.Height = explorerWidth, explorerHeight
	default:
		g.Width = viewerWidth
		g.Height = max(s.opts.Viewport.Height-g.Top-viewerBottomGap, s.opts.MinSize.Height)
	}
	return g
}

func buildShell(w *Window, body *html.Node) *html.Node {
	controls := render.Element(atom.Div, render.Class("title-bar-controls"))
	for _, label := range controlLabels {
		controls.AppendChild(render.Element(atom.Button,
			render.Attr("aria-label", label),
			render.Attr("data-control", strings.ToLower(label)),
		))
	}
	titleBar := render.Append(render.Element(atom.Div, render.Class("title-bar")),
		render.TextElement(atom.Div, w.Title, render.Class("title-bar-text")),
		controls,
	)

	shell := render.Element(atom.Div,
		render.Class("window", "window-"+w.Kind.String()),
		render.Attr("data-id", w.ID),
		render.Attr("data-kind", w.Kind.String()),
	)
	render.Append(shell, titleBar, body)
	for _, h := range Handles {
		shell.AppendChild(render.Element(atom.Div,
			render.Class("resize-handle", string(h)),
			render.Attr("data-handle", string(h)),
		))
	}
	return shell
}
