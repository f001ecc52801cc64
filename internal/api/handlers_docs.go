package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/dgallion1/docdesk/internal/docstore"
	"github.com/go-chi/chi/v5"
)

// handleListDocs serves the whole store. Unchanged snapshots answer
// conditional requests with 304.
func (s *Server) handleListDocs(w http.ResponseWriter, r *http.Request) {
	snap, err := s.snapshot(r)
	if err != nil {
		s.log.Error("load store failed", "error", err)
		jsonError(w, "failed to load documents", statusFor(err))
		return
	}

	w.Header().Set("ETag", snap.ETag)
	w.Header().Set("Cache-Control", "no-cache")
	if etagMatches(r.Header.Get("If-None-Match"), snap.ETag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(snap.Raw)
}

// handleGetDoc serves a single document by id.
func (s *Server) handleGetDoc(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	doc, err := s.source.Document(r.Context(), id)
	if errors.Is(err, docstore.ErrDocumentNotFound) {
		jsonError(w, "Document not found", http.StatusNotFound)
		return
	}
	if err != nil {
		s.log.Error("load document failed", "id", id, "error", err)
		jsonError(w, "failed to load document", statusFor(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(doc)
}

func (s *Server) snapshot(r *http.Request) (*docstore.Snapshot, error) {
	if sn, ok := s.source.(snapshotter); ok {
		return sn.Current(), nil
	}
	store, err := s.source.Snapshot(r.Context())
	if err != nil {
		return nil, err
	}
	return docstore.NewSnapshot(store)
}

// statusFor maps a store error to a response status. Remote store failures
// are reported as a bad gateway.
func statusFor(err error) int {
	if errors.Is(err, docstore.ErrFetchFailed) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// etagMatches reports whether an If-None-Match header lists etag.
func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}

// jsonError writes {"error": msg} with no trailing newline.
func jsonError(w http.ResponseWriter, msg string, code int) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(body)
}
