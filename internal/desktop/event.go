package desktop

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnknownEvent is returned by Dispatch for an unrecognised event type or
// target.
var ErrUnknownEvent = errors.New("unknown event")

// Event types accepted by Dispatch.
const (
	EventOpenFolder   = "open_folder"
	EventOpenDocument = "open_document"
	EventPointerDown  = "pointer_down"
	EventPointerMove  = "pointer_move"
	EventPointerUp    = "pointer_up"
	EventClick        = "click"
	EventTaskbar      = "taskbar"
	EventViewport     = "viewport"
	EventDismiss      = "dismiss"
)

// Event is one user action sent by the desktop client.
type Event struct {
	Type   string `json:"type"`
	ID     string `json:"id,omitempty"`
	Window string `json:"window,omitempty"`
	Target string `json:"target,omitempty"`
	Handle Handle `json:"handle,omitempty"`
	X      int    `json:"x,omitempty"`
	Y      int    `json:"y,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Index  int    `json:"index,omitempty"`
}

// Dispatch applies ev to the session. Open failures are already recorded
// as notices when the error is returned.
func (s *Session) Dispatch(ctx context.Context, ev Event) error {
	at := Point{X: ev.X, Y: ev.Y}
	switch ev.Type {
	case EventOpenFolder:
		_, err := s.OpenFolder(ctx, ev.ID)
		return err
	case EventOpenDocument:
		_, err := s.OpenDocument(ctx, ev.ID)
		return err
	case EventPointerDown:
		switch ev.Target {
		case "title":
			return s.PointerDownTitleBar(ev.Window, at)
		case "handle":
			return s.PointerDownHandle(ev.Window, ev.Handle, at)
		}
	case EventPointerMove:
		s.PointerMove(at)
		return nil
	case EventPointerUp:
		s.PointerUp()
		return nil
	case EventClick:
		switch ev.Target {
		case "", "body":
			return s.ClickBody(ev.Window)
		case "minimize":
			return s.Minimize(ev.Window)
		case "maximize":
			return s.ToggleMaximize(ev.Window)
		case "close":
			return s.Close(ev.Window)
		}
	case EventTaskbar:
		return s.ClickTaskbar(ev.Window)
	case EventViewport:
		s.SetViewport(Size{Width: ev.Width, Height: ev.Height})
		return nil
	case EventDismiss:
		s.DismissNotice(ev.Index)
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Type)
	}
	return fmt.Errorf("%w: %s target %q", ErrUnknownEvent, ev.Type, ev.Target)
}
