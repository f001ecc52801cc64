package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/dgallion1/docdesk/internal/desktop"
	"github.com/dgallion1/docdesk/internal/docstore"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

// Server to client message types.
const (
	msgRender = "render"
	msgError  = "error"
)

type serverMessage struct {
	Type    string                 `json:"type"`
	HTML    string                 `json:"html,omitempty"`
	Notices []desktop.Notice       `json:"notices,omitempty"`
	Taskbar []desktop.TaskbarEntry `json:"taskbar,omitempty"`
	Error   string                 `json:"error,omitempty"`
}

// inbound is one client message as decoded by the reader goroutine.
type inbound struct {
	event desktop.Event
	err   error
}

// handleDesktop upgrades to a websocket and runs one desktop session for
// the lifetime of the connection. Only the loop goroutine touches the
// session; the reader goroutine just decodes frames.
func (s *Server) handleDesktop(w http.ResponseWriter, r *http.Request) {
	// The connection outlives the server's read and write timeouts.
	rc := http.NewResponseController(w)
	rc.SetReadDeadline(time.Time{})
	rc.SetWriteDeadline(time.Time{})

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: s.cfg.WSOriginPatterns,
	})
	if err != nil {
		s.log.Warn("websocket accept failed", "error", err)
		return
	}
	defer conn.CloseNow()

	sess := desktop.NewSession(s.source, desktop.Options{
		Viewport:   desktop.Size{Width: s.cfg.ViewportWidth, Height: s.cfg.ViewportHeight},
		MinSize:    desktop.Size{Width: s.cfg.MinWindowWidth, Height: s.cfg.MinWindowHeight},
		MaxNotices: s.cfg.MaxNotices,
		Log:        s.log,
	})
	log := s.log.With("session", sess.ID())
	log.Info("desktop session started")

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	var updates <-chan *docstore.Snapshot
	if sub, ok := s.source.(subscriber); ok {
		ch, unsubscribe := sub.Subscribe()
		defer unsubscribe()
		updates = ch
	}

	inbox := make(chan inbound)
	readErr := make(chan error, 1)
	go readEvents(ctx, conn, inbox, readErr)

	if err := sess.LoadDesktop(ctx); err != nil {
		log.Warn("load desktop failed", "error", err)
	}
	if err := sendRender(ctx, conn, sess); err != nil {
		log.Warn("send failed", "error", err)
		return
	}

	for {
		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusGoingAway, "server shutting down")
			return

		case err := <-readErr:
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				log.Info("desktop session closed")
			default:
				log.Warn("desktop session read failed", "error", err)
			}
			return

		case in := <-inbox:
			if in.err != nil {
				if err := wsjson.Write(ctx, conn, serverMessage{Type: msgError, Error: in.err.Error()}); err != nil {
					return
				}
				continue
			}
			if err := sess.Dispatch(ctx, in.event); err != nil {
				log.Debug("event rejected", "type", in.event.Type, "error", err)
				if isProtocolError(err) {
					if err := wsjson.Write(ctx, conn, serverMessage{Type: msgError, Error: err.Error()}); err != nil {
						return
					}
				}
			}
			if err := sendRender(ctx, conn, sess); err != nil {
				log.Warn("send failed", "error", err)
				return
			}

		case snap := <-updates:
			sess.SetStore(snap.Store)
			log.Debug("desktop refreshed", "etag", snap.ETag)
			if err := sendRender(ctx, conn, sess); err != nil {
				log.Warn("send failed", "error", err)
				return
			}
		}
	}
}

// readEvents decodes text frames into events until the connection fails.
// Undecodable frames are forwarded as errors and do not end the session.
func readEvents(ctx context.Context, conn *websocket.Conn, inbox chan<- inbound, readErr chan<- error) {
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			readErr <- err
			return
		}
		var in inbound
		if err := json.Unmarshal(data, &in.event); err != nil {
			in.err = errors.New("invalid event: " + err.Error())
		} else if in.event.Type == "" {
			in.err = errors.New("invalid event: missing type")
		}
		select {
		case inbox <- in:
		case <-ctx.Done():
			return
		}
	}
}

func sendRender(ctx context.Context, conn *websocket.Conn, sess *desktop.Session) error {
	return wsjson.Write(ctx, conn, serverMessage{
		Type:    msgRender,
		HTML:    sess.HTML(),
		Notices: sess.Notices(),
		Taskbar: sess.Taskbar().Entries(),
	})
}

// isProtocolError reports errors caused by a malformed or stale client
// event, as opposed to open failures that already became notices.
func isProtocolError(err error) bool {
	for _, target := range []error{
		desktop.ErrUnknownEvent,
		desktop.ErrWindowNotFound,
		desktop.ErrWindowInactive,
		desktop.ErrWindowHidden,
		desktop.ErrInvalidHandle,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
