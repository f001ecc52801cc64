package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/docdesk/internal/config"
	"github.com/dgallion1/docdesk/internal/desktop"
	"github.com/dgallion1/docdesk/internal/docstore"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Source is the document store behind the API and every desktop session.
// docstore.Library and docstore.Client both satisfy it.
type Source = desktop.Source

// snapshotter is implemented by sources that keep an encoded snapshot.
type snapshotter interface {
	Current() *docstore.Snapshot
}

// subscriber is implemented by sources that announce reloads.
type subscriber interface {
	Subscribe() (<-chan *docstore.Snapshot, func())
}

// Server is the HTTP API server for docdesk.
type Server struct {
	router chi.Router
	source Source
	log    *slog.Logger
	cfg    config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(source Source, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		source: source,
		log:    log,
		cfg:    cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Get("/api/docs", s.handleListDocs)
	r.Get("/api/docs/{id}", s.handleGetDoc)
	r.Post("/api/convert", s.handleConvert)
	r.Post("/api/convert/batch", s.handleBatchConvert)

	r.Get("/ws/desktop", s.handleDesktop)

	if s.cfg.PublicDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(s.cfg.PublicDir)))
	}

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
