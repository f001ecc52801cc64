package desktop

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/dgallion1/docdesk/internal/docstore"
	"github.com/dgallion1/docdesk/internal/render"
	"github.com/google/uuid"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	// ErrWindowNotFound is returned for unknown or closed window ids.
	ErrWindowNotFound = errors.New("window not found")
	// ErrWindowInactive is returned for events aimed at a window whose
	// controller has not been attached yet.
	ErrWindowInactive = errors.New("window not activated")
	// ErrWindowHidden is returned for pointer events aimed at a minimized window.
	ErrWindowHidden = errors.New("window is minimized")
	// ErrInvalidHandle is returned for an unknown resize handle.
	ErrInvalidHandle = errors.New("invalid resize handle")
)

// Source provides the store a session reads from. docstore.Library serves
// it in-process and docstore.Client over HTTP.
type Source interface {
	Snapshot(ctx context.Context) (*docstore.Store, error)
	Document(ctx context.Context, id string) (*docstore.Document, error)
}

// baseZ is the stacking value below every window.
const baseZ = 10

// Options configures a Session. Zero values fall back to defaults.
type Options struct {
	Viewport   Size
	MinSize    Size
	MaxNotices int
	Rand       *rand.Rand
	Log        *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.Viewport.Width <= 0 {
		o.Viewport.Width = 1280
	}
	if o.Viewport.Height <= 0 {
		o.Viewport.Height = 800
	}
	if o.MinSize.Width <= 0 {
		o.MinSize.Width = 150
	}
	if o.MinSize.Height <= 0 {
		o.MinSize.Height = 100
	}
	if o.MaxNotices <= 0 {
		o.MaxNotices = 5
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if o.Log == nil {
		o.Log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

// Session is one desktop: its windows, stacking order, interaction state,
// taskbar and notices.
type Session struct {
	id     string
	opts   Options
	log    *slog.Logger
	source Source

	store   *docstore.Store
	windows map[string]*Window
	order   []string
	topZ    int

	pointer interaction
	taskbar Taskbar
	notices []Notice

	surface *html.Node
	icons   *html.Node
	notes   *html.Node
	bar     *html.Node
}

// NewSession returns an empty desktop reading from source.
func NewSession(source Source, opts Options) *Session {
	opts = opts.withDefaults()
	id := uuid.NewString()
	s := &Session{
		id:      id,
		opts:    opts,
		log:     opts.Log.With("session", id),
		source:  source,
		windows: make(map[string]*Window),
		topZ:    baseZ,
	}
	s.icons = render.Element(atom.Div, render.Class("desktop-icons"))
	s.notes = render.Element(atom.Div, render.Class("notices"))
	s.bar = render.Element(atom.Div, render.Class("taskbar"))
	s.surface = render.Append(
		render.Element(atom.Div, render.Class("desktop"), render.Attr("data-session", id)),
		s.icons, s.notes, s.bar,
	)
	return s
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// Viewport returns the size a maximized window fills.
func (s *Session) Viewport() Size { return s.opts.Viewport }

// SetViewport updates the viewport size. Already maximized windows keep
// their geometry until toggled.
func (s *Session) SetViewport(v Size) {
	if v.Width > 0 && v.Height > 0 {
		s.opts.Viewport = v
	}
}

// Window returns an open window by id.
func (s *Session) Window(id string) (*Window, error) {
	w, ok := s.windows[id]
	if !ok {
		return nil, ErrWindowNotFound
	}
	return w, nil
}

// Windows returns the open windows in creation order.
func (s *Session) Windows() []*Window {
	out := make([]*Window, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.windows[id])
	}
	return out
}

// Taskbar returns the session's taskbar registry.
func (s *Session) Taskbar() *Taskbar { return &s.taskbar }

// Mode returns the current pointer interaction mode.
func (s *Session) Mode() Mode { return s.pointer.mode }

// TopWindow returns the open window holding the highest stacking value.
func (s *Session) TopWindow() (*Window, bool) {
	var top *Window
	for _, w := range s.windows {
		if top == nil || w.ZIndex > top.ZIndex {
			top = w
		}
	}
	return top, top != nil
}

// Store returns the snapshot the desktop icons were built from.
func (s *Session) Store() *docstore.Store { return s.store }

// SetStore replaces the snapshot behind the desktop icons. Open windows
// keep the content they were built with.
func (s *Session) SetStore(store *docstore.Store) {
	s.store = store
	removeChildren(s.icons)
	if store == nil {
		return
	}
	for _, icon := range render.Children(render.DesktopIcons(store)) {
		icon.Parent.RemoveChild(icon)
		s.icons.AppendChild(icon)
	}
}

// LoadDesktop fetches the store and builds the desktop icons.
func (s *Session) LoadDesktop(ctx context.Context) error {
	store, err := s.source.Snapshot(ctx)
	if err != nil {
		s.notify(err)
		return err
	}
	s.SetStore(store)
	return nil
}
