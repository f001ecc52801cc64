/*
Package desktop implements a headless window manager for the docdesk faux
desktop.

A Session owns everything one desktop needs: the windows and the surface
they are inserted into, the stacking-order counter, the pointer interaction
state (idle, dragging or resizing), the taskbar registry and the notice
area. Browsers drive a session by forwarding events (see Event and
Dispatch); tests drive it directly.

A Session is not safe for concurrent use. Callers confine it to a single
goroutine, the way a browser confines the same logic to its event loop.

Example usage:

	s := desktop.NewSession(source, desktop.Options{})
	if err := s.LoadDesktop(ctx); err != nil {
		// handle error
	}
	win, err := s.OpenFolder(ctx, "f1")
	if err != nil {
		// a notice has been added to the surface
	}
	err = s.ToggleMaximize(win.ID)
*/
package desktop
