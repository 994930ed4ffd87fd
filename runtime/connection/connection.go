// Package connection is the runtime's connection table: a name-keyed
// registry of open channel sockets (spec.md §3), shared within a single
// evaluator instance and exposed read-only to the diagnostics HTTP server.
//
// Per the reference implementation, a par block's spawned children each get
// a brand-new, empty connection table rather than a copy of the parent's —
// see runtime/evaluator/par.go and DESIGN.md.
package connection

import (
	"net"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Role distinguishes a channel opened as a client from one listening as a
// server.
type Role string

const (
	RoleClient Role = "client"
	RoleServer Role = "server"
)

// Entry is one open channel's bookkeeping, independent of the raw net.Conn
// it wraps — enough for the diagnostics server to describe a connection
// without handing out the socket itself.
type Entry struct {
	ID         uuid.UUID
	Name       string
	Role       Role
	RemoteAddr string
	OpenedAt   time.Time
	Conn       net.Conn
}

// Table is the process-local (or, inside a par child, thread-local) set of
// open channels, keyed by the name bound in source.
type Table struct {
	mu      sync.Mutex
	entries map[string]*Entry
}

func New() *Table {
	return &Table{entries: map[string]*Entry{}}
}

// Open registers a freshly-opened connection under name, tagging it with a
// correlation ID for log lines and the diagnostics server.
func (t *Table) Open(name string, role Role, conn net.Conn) *Entry {
	e := &Entry{
		ID:         uuid.New(),
		Name:       name,
		Role:       role,
		RemoteAddr: conn.RemoteAddr().String(),
		OpenedAt:   time.Now(),
		Conn:       conn,
	}
	t.mu.Lock()
	t.entries[name] = e
	t.mu.Unlock()
	return e
}

// Get returns the entry registered under name, if any.
func (t *Table) Get(name string) (*Entry, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.entries[name]
	return e, ok
}

// Close closes and forgets the connection registered under name. Closing an
// unknown name is a no-op error returned to the caller (the evaluator turns
// it into a runtime error).
func (t *Table) Close(name string) error {
	t.mu.Lock()
	e, ok := t.entries[name]
	if ok {
		delete(t.entries, name)
	}
	t.mu.Unlock()
	if !ok {
		return errUnknownChannel(name)
	}
	return e.Conn.Close()
}

// Snapshot returns a stable copy of every open entry, for the diagnostics
// server's /connections endpoint.
func (t *Table) Snapshot() []*Entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]*Entry, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, e)
	}
	return out
}

type errUnknownChannel string

func (e errUnknownChannel) Error() string { return "unknown channel " + string(e) }
