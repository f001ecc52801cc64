package desktop

// TaskbarEntry mirrors one open window on the taskbar.
type TaskbarEntry struct {
	WindowID string `json:"window_id"`
	Title    string `json:"title"`
	Active   bool   `json:"active"`
}

// Taskbar keeps exactly one entry per registered window, in registration
// order. At most one entry is active.
type Taskbar struct {
	entries []*TaskbarEntry
}

// Register adds an entry for w. A second call for the same window is a
// no-op and returns false.
func (t *Taskbar) Register(w *Window) bool {
	if t.find(w.ID) >= 0 {
		return false
	}
	t.entries = append(t.entries, &TaskbarEntry{WindowID: w.ID, Title: w.Title})
	return true
}

// Unregister removes the entry for the window id, if any.
func (t *Taskbar) Unregister(id string) {
	if i := t.find(id); i >= 0 {
		t.entries = append(t.entries[:i], t.entries[i+1:]...)
	}
}

// SetActive clears every entry's active flag, then marks w's entry active
// only if w is visible.
func (t *Taskbar) SetActive(w *Window) {
	for _, e := range t.entries {
		e.Active = w.Visible && e.WindowID == w.ID
	}
}

// Entries returns a copy of the entries in order.
func (t *Taskbar) Entries() []TaskbarEntry {
	out := make([]TaskbarEntry, len(t.entries))
	for i, e := range t.entries {
		out[i] = *e
	}
	return out
}

// Entry returns the entry for a window id.
func (t *Taskbar) Entry(id string) (TaskbarEntry, bool) {
	if i := t.find(id); i >= 0 {
		return *t.entries[i], true
	}
	return TaskbarEntry{}, false
}

// ActiveID returns the window id of the active entry, if any.
func (t *Taskbar) ActiveID() (string, bool) {
	for _, e := range t.entries {
		if e.Active {
			return e.WindowID, true
		}
	}
	return "", false
}

// Len returns the number of entries.
func (t *Taskbar) Len() int { return len(t.entries) }

func (t *Taskbar) find(id string) int {
	for i, e := range t.entries {
		if e.WindowID == id {
			return i
		}
	}
	return -1
}

// deactivate clears the active flag of the entry for id.
func (t *Taskbar) deactivate(id string) {
	if i := t.find(id); i >= 0 {
		t.entries[i].Active = false
	}
}
