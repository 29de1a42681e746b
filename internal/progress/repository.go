package progress

import (
	"encoding/json"
	"slices"
	"time"

	"github.com/papapumpkin/roster/internal/store"
)

// Repository owns the progress document for the life of the process. The
// document is loaded lazily on first access, cached in memory, and written
// back through the gateway after every mutation.
//
// Mutations return the persist result: false means the gateway rejected the
// write, not that the in-memory change failed. Content problems (unknown
// role labels, toggling an id that is absent) are silent no-ops, never
// errors — the cache stays authoritative for reads either way.
type Repository struct {
	store store.Store
	now   func() time.Time
	doc   *Document
}

// Option configures a Repository.
type Option func(*Repository)

// WithClock overrides the timestamp source. Tests use this to make
// completion stamps deterministic.
func WithClock(now func() time.Time) Option {
	return func(r *Repository) { r.now = now }
}

// NewRepository creates a repository backed by the given store.
func NewRepository(st store.Store, opts ...Option) *Repository {
	r := &Repository{store: st, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// StorageAvailable reports whether the backing medium accepts writes.
// Callers surface a one-time warning when it does not; the repository
// keeps working purely in memory.
func (r *Repository) StorageAvailable() bool {
	return r.store.Available()
}

func (r *Repository) load() *Document {
	if r.doc != nil {
		return r.doc
	}
	data, ok := r.store.Read()
	if !ok {
		// Missing and corrupt both mean "start from defaults".
		r.doc = Empty()
		return r.doc
	}
	r.doc = Migrate(data)
	return r.doc
}

func (r *Repository) persist() bool {
	data, err := json.Marshal(r.doc)
	if err != nil {
		return false
	}
	return r.store.Write(data)
}

// IsCompleted reports whether id is marked played.
func (r *Repository) IsCompleted(id string) bool {
	return r.load().IsCompleted(id)
}

// ToggleCompleted flips id's completion state. Marking stamps the current
// time; unmarking clears the stamp but leaves lane roles alone.
func (r *Repository) ToggleCompleted(id string) bool {
	doc := r.load()
	if doc.IsCompleted(id) {
		doc.unmarkCompleted(id)
	} else {
		doc.markCompleted(id, r.now())
	}
	return r.persist()
}

// SetCompleted sets id's completion state explicitly. Already being in the
// requested state is a no-op that reports success without re-persisting.
func (r *Repository) SetCompleted(id string, completed bool) bool {
	doc := r.load()
	if doc.IsCompleted(id) == completed {
		return true
	}
	if completed {
		doc.markCompleted(id, r.now())
	} else {
		doc.unmarkCompleted(id)
	}
	return r.persist()
}

// Roles returns the lane roles assigned to id (empty slice if none).
func (r *Repository) Roles(id string) []string {
	return r.load().RolesFor(id)
}

// AddRole assigns a lane role to id. Unknown labels are rejected as a
// silent no-op; adding an already-present role reports success.
func (r *Repository) AddRole(id, role string) bool {
	if !KnownRole(role) {
		return true
	}
	doc := r.load()
	if slices.Contains(doc.LaneRoles[id], role) {
		return true
	}
	doc.addRole(id, role)
	return r.persist()
}

// RemoveRole unassigns a lane role from id. Removing the last role deletes
// the per-champion key entirely.
func (r *Repository) RemoveRole(id, role string) bool {
	doc := r.load()
	if !slices.Contains(doc.LaneRoles[id], role) {
		return true
	}
	doc.removeRole(id, role)
	return r.persist()
}

// ToggleRole flips a lane role assignment on id.
func (r *Repository) ToggleRole(id, role string) bool {
	if slices.Contains(r.load().LaneRoles[id], role) {
		return r.RemoveRole(id, role)
	}
	return r.AddRole(id, role)
}

// Snapshot returns a deep copy of the current document for read-only
// consumers (the view composer, the import pipeline).
func (r *Repository) Snapshot() *Document {
	return r.load().Clone()
}

// Export serializes the full current document as pretty-printed JSON.
func (r *Repository) Export() ([]byte, error) {
	return json.MarshalIndent(r.load(), "", "  ")
}

// Replace swaps the cached document wholesale and persists it. The import
// pipeline calls this after validating and migrating its input; reset uses
// it with an empty document. The caller is responsible for having obtained
// any destructive-action confirmation first.
func (r *Repository) Replace(doc *Document) bool {
	r.doc = doc.Clone()
	normalize(r.doc)
	return r.persist()
}

// ResetAll replaces the document with the empty default. Irreversible.
func (r *Repository) ResetAll() bool {
	return r.Replace(Empty())
}
