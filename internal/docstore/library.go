package docstore

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// Snapshot is one loaded version of the store together with its encoded
// form, which is what the HTTP API serves.
type Snapshot struct {
	Store    *Store
	Raw      []byte
	ETag     string
	LoadedAt time.Time
}

// NewSnapshot encodes s and derives its ETag.
func NewSnapshot(s *Store) (*Snapshot, error) {
	raw, err := encodeBytes(s)
	if err != nil {
		return nil, fmt.Errorf("encode store: %w", err)
	}
	return &Snapshot{
		Store:    s,
		Raw:      raw,
		ETag:     `"` + ContentHashHex(raw)[:16] + `"`,
		LoadedAt: time.Now(),
	}, nil
}

// Library serves the current snapshot of a JSON store file and swaps it on
// Reload. It is safe for concurrent use.
type Library struct {
	path string
	log  *slog.Logger
	cur  atomic.Pointer[Snapshot]

	mu   sync.Mutex
	subs map[chan *Snapshot]struct{}
}

// Open loads the store file at path. The file must pass schema validation.
func Open(path string, log *slog.Logger) (*Library, error) {
	l := &Library{
		path: path,
		log:  log,
		subs: make(map[chan *Snapshot]struct{}),
	}
	if err := l.Reload(); err != nil {
		return nil, err
	}
	return l, nil
}

// NewLibrary wraps an in-memory store. Reload is a no-op for it.
func NewLibrary(s *Store, log *slog.Logger) (*Library, error) {
	snap, err := NewSnapshot(s)
	if err != nil {
		return nil, err
	}
	l := &Library{log: log, subs: make(map[chan *Snapshot]struct{})}
	l.cur.Store(snap)
	return l, nil
}

// Path returns the backing file path, empty for in-memory libraries.
func (l *Library) Path() string { return l.path }

// Reload re-reads the backing file. On failure the previous snapshot stays
// current and the error is returned.
func (l *Library) Reload() error {
	if l.path == "" {
		return nil
	}
	data, err := os.ReadFile(l.path)
	if err != nil {
		return fmt.Errorf("read store %s: %w", l.path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return fmt.Errorf("load store %s: %w", l.path, err)
	}
	snap, err := NewSnapshot(s)
	if err != nil {
		return err
	}
	l.cur.Store(snap)
	l.log.Info("store loaded",
		"path", l.path,
		"folders", len(s.Folders),
		"files", len(s.Files),
		"etag", snap.ETag,
	)
	l.publish(snap)
	return nil
}

// Current returns the active snapshot.
func (l *Library) Current() *Snapshot {
	return l.cur.Load()
}

// Snapshot returns the active store.
func (l *Library) Snapshot(ctx context.Context) (*Store, error) {
	return l.Current().Store, nil
}

// Document returns a single document from the active store.
func (l *Library) Document(ctx context.Context, id string) (*Document, error) {
	return l.Current().Store.FindDocument(id)
}

// Subscribe returns a channel that receives each newly loaded snapshot and
// a func that cancels the subscription. Slow subscribers only see the
// latest snapshot.
func (l *Library) Subscribe() (<-chan *Snapshot, func()) {
	ch := make(chan *Snapshot, 1)
	l.mu.Lock()
	l.subs[ch] = struct{}{}
	l.mu.Unlock()
	return ch, func() {
		l.mu.Lock()
		delete(l.subs, ch)
		l.mu.Unlock()
	}
}

func (l *Library) publish(snap *Snapshot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for ch := range l.subs {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snap:
		default:
		}
	}
}
