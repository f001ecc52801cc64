package desktop

import (
	"context"
	"fmt"
)

// OpenFolder looks up a folder in the desktop's store snapshot and opens an
// explorer window for it. A failed lookup adds a notice and opens nothing.
func (s *Session) OpenFolder(ctx context.Context, id string) (*Window, error) {
	if s.store == nil {
		if err := s.LoadDesktop(ctx); err != nil {
			return nil, err
		}
	}
	folder, err := s.store.FindFolder(id)
	if err != nil {
		s.notify(err)
		return nil, err
	}
	w := s.CreateExplorerWindow(folder, s.store)
	if err := s.Activate(w.ID); err != nil {
		return nil, err
	}
	s.log.Info("folder opened", "folder", id, "window", w.ID)
	return w, nil
}

// OpenDocument fetches a document from the source and opens a viewer
// window for it. A failed fetch adds a notice and opens nothing.
func (s *Session) OpenDocument(ctx context.Context, id string) (*Window, error) {
	doc, err := s.source.Document(ctx, id)
	if err != nil {
		s.notify(err)
		return nil, fmt.Errorf("open document %s: %w", id, err)
	}
	w, err := s.CreateViewerWindow(doc)
	if err != nil {
		s.notify(err)
		return nil, fmt.Errorf("open document %s: %w", id, err)
	}
	if err := s.Activate(w.ID); err != nil {
		return nil, err
	}
	s.log.Info("document opened", "document", id, "window", w.ID)
	return w, nil
}
