package desktop

import "fmt"

// lookup returns an activated window.
func (s *Session) lookup(id string) (*Window, error) {
	w, ok := s.windows[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrWindowNotFound, id)
	}
	if !w.active {
		return nil, fmt.Errorf("%w: %s", ErrWindowInactive, id)
	}
	return w, nil
}

// Activate attaches the controller to a created window: it registers the
// taskbar entry and focuses the window. Calling it again is a no-op.
func (s *Session) Activate(id string) error {
	w, ok := s.windows[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrWindowNotFound, id)
	}
	if w.active {
		return nil
	}
	w.active = true
	s.taskbar.Register(w)
	s.focus(w)
	return nil
}

// Focus raises the window above every other and highlights its taskbar
// entry.
func (s *Session) Focus(id string) error {
	w, err := s.lookup(id)
	if err != nil {
		return err
	}
	s.focus(w)
	return nil
}

func (s *Session) focus(w *Window) {
	s.topZ++
	w.ZIndex = s.topZ
	s.taskbar.SetActive(w)
}

// Minimize hides the window. Its taskbar entry stays but loses the active
// highlight. An interaction on the window is dropped.
func (s *Session) Minimize(id string) error {
	w, err := s.lookup(id)
	if err != nil {
		return err
	}
	w.Visible = false
	s.pointer.releaseWindow(id)
	s.taskbar.deactivate(id)
	return nil
}

// ClickTaskbar restores a minimized window and focuses it. A visible window
// is only focused.
func (s *Session) ClickTaskbar(id string) error {
	w, err := s.lookup(id)
	if err != nil {
		return err
	}
	w.Visible = true
	s.focus(w)
	return nil
}

// ToggleMaximize fills the viewport with the window, saving its geometry,
// or restores the saved geometry exactly. Either way the window is focused.
func (s *Session) ToggleMaximize(id string) error {
	w, err := s.lookup(id)
	if err != nil {
		return err
	}
	if w.Maximized {
		w.Geometry = w.Saved
		w.Saved = Geometry{}
		w.Maximized = false
	} else {
		w.Saved = w.Geometry
		w.Geometry = Geometry{Width: s.opts.Viewport.Width, Height: s.opts.Viewport.Height}
		w.Maximized = true
	}
	s.focus(w)
	return nil
}

// Close destroys the window and removes its taskbar entry. A closed window
// accepts no further events.
func (s *Session) Close(id string) error {
	w, err := s.lookup(id)
	if err != nil {
		return err
	}
	s.pointer.releaseWindow(id)
	s.taskbar.Unregister(id)
	if w.shell.Parent != nil {
		w.shell.Parent.RemoveChild(w.shell)
	}
	delete(s.windows, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	w.closed = true
	w.Visible = false
	s.log.Debug("window closed", "window", id)
	return nil
}

// ClickBody focuses the window.
func (s *Session) ClickBody(id string) error {
	return s.Focus(id)
}

func (s *Session) pointerTarget(id string) (*Window, error) {
	w, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	if !w.Visible {
		return nil, fmt.Errorf("%w: %s", ErrWindowHidden, id)
	}
	return w, nil
}

// PointerDownTitleBar focuses the window and starts dragging it. Any
// interaction already in progress is abandoned.
func (s *Session) PointerDownTitleBar(id string, at Point) error {
	w, err := s.pointerTarget(id)
	if err != nil {
		return err
	}
	s.focus(w)
	s.pointer.beginDrag(w, at)
	return nil
}

// PointerDownHandle focuses the window and starts resizing it from h.
func (s *Session) PointerDownHandle(id string, h Handle, at Point) error {
	if !h.valid() {
		return fmt.Errorf("%w: %q", ErrInvalidHandle, h)
	}
	w, err := s.pointerTarget(id)
	if err != nil {
		return err
	}
	s.focus(w)
	s.pointer.beginResize(w, h, at)
	return nil
}

// PointerMove applies the current drag or resize for a pointer at p. It
// reports whether a window changed.
func (s *Session) PointerMove(at Point) bool {
	id, g, ok := s.pointer.move(at, s.opts.MinSize)
	if !ok {
		return false
	}
	w, found := s.windows[id]
	if !found {
		s.pointer.reset()
		return false
	}
	w.Geometry = g
	return true
}

// PointerUp ends any drag or resize.
func (s *Session) PointerUp() {
	s.pointer.reset()
}
