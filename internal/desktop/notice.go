package desktop

import (
	"errors"

	"github.com/dgallion1/docdesk/internal/docstore"
)

// NoticeKind classifies a failed action shown to the user.
type NoticeKind string

const (
	NoticeDocumentNotFound NoticeKind = "document_not_found"
	NoticeFolderNotFound   NoticeKind = "folder_not_found"
	NoticeFetchFailed      NoticeKind = "fetch_failed"
	NoticeError            NoticeKind = "error"
)

// Notice is a dismissible toast shown in the surface's notice area.
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Message string     `json:"message"`
}

func noticeFor(err error) Notice {
	switch {
	case errors.Is(err, docstore.ErrDocumentNotFound):
		return Notice{Kind: NoticeDocumentNotFound, Message: "Document not found"}
	case errors.Is(err, docstore.ErrFolderNotFound):
		return Notice{Kind: NoticeFolderNotFound, Message: "Folder not found"}
	case errors.Is(err, docstore.ErrFetchFailed):
		return Notice{Kind: NoticeFetchFailed, Message: "Could not reach the document store"}
	default:
		return Notice{Kind: NoticeError, Message: err.Error()}
	}
}

// notify records a notice for err, dropping the oldest past MaxNotices.
func (s *Session) notify(err error) {
	n := noticeFor(err)
	s.log.Warn("action failed", "kind", n.Kind, "error", err)
	s.notices = append(s.notices, n)
	if over := len(s.notices) - s.opts.MaxNotices; over > 0 {
		s.notices = s.notices[over:]
	}
}

// Notices returns the pending notices, oldest first.
func (s *Session) Notices() []Notice {
	return append([]Notice(nil), s.notices...)
}

// DismissNotice removes the notice at index i. Out-of-range indexes are
// ignored.
func (s *Session) DismissNotice(i int) {
	if i < 0 || i >= len(s.notices) {
		return
	}
	s.notices = append(s.notices[:i], s.notices[i+1:]...)
}
