// Package progress owns the canonical record of what the user has done:
// which champions are marked played, which lane roles they carry, and when
// each was first (or last) marked. The document is a single JSON aggregate
// persisted through a store.Store gateway.
package progress

import (
	"slices"
	"time"
)

// CurrentSchemaVersion tags the persisted document format. Bump it when a
// new Migrate step is added.
const CurrentSchemaVersion = 2

// Lane roles form a fixed closed set. RoleUnknown is tolerated on read but
// never assigned by this tool.
const (
	RoleTop     = "TOP"
	RoleJungle  = "JUNGLE"
	RoleMid     = "MID"
	RoleBot     = "BOT"
	RoleSupport = "SUPPORT"
	RoleFlex    = "FLEX"
	RoleUnknown = "UNKNOWN"
)

// Roles lists the assignable lane roles in display order.
var Roles = []string{RoleTop, RoleJungle, RoleMid, RoleBot, RoleSupport, RoleFlex}

// KnownRole reports whether label is one of the assignable lane roles.
func KnownRole(label string) bool {
	return slices.Contains(Roles, label)
}

// Document is the persisted progress aggregate.
//
// Invariants maintained by this package:
//   - Completed holds unique IDs; CompletedAt has an entry for an ID only
//     if that ID is in Completed.
//   - LaneRoles never stores an empty slice; zero roles means the key is
//     absent. Either shape is tolerated on read and normalized away.
//   - IDs need not exist in the current catalog; stale entries are kept.
type Document struct {
	Completed     []string            `json:"completed"`
	LaneRoles     map[string][]string `json:"laneRoles"`
	CompletedAt   map[string]string   `json:"completedAt"`
	SchemaVersion int                 `json:"schemaVersion"`
}

// Empty returns a fresh default document at the current schema version.
func Empty() *Document {
	return &Document{
		Completed:     []string{},
		LaneRoles:     map[string][]string{},
		CompletedAt:   map[string]string{},
		SchemaVersion: CurrentSchemaVersion,
	}
}

// Clone returns a deep copy. Callers handed a snapshot can mutate it freely
// without touching the repository's cached document.
func (d *Document) Clone() *Document {
	out := &Document{
		Completed:     slices.Clone(d.Completed),
		LaneRoles:     make(map[string][]string, len(d.LaneRoles)),
		CompletedAt:   make(map[string]string, len(d.CompletedAt)),
		SchemaVersion: d.SchemaVersion,
	}
	if out.Completed == nil {
		out.Completed = []string{}
	}
	for id, roles := range d.LaneRoles {
		out.LaneRoles[id] = slices.Clone(roles)
	}
	for id, ts := range d.CompletedAt {
		out.CompletedAt[id] = ts
	}
	return out
}

// IsCompleted reports whether id is marked played.
func (d *Document) IsCompleted(id string) bool {
	return slices.Contains(d.Completed, id)
}

// markCompleted adds id to the completed set and stamps it. No-op if the id
// is already completed; the existing timestamp is preserved.
func (d *Document) markCompleted(id string, at time.Time) {
	if d.IsCompleted(id) {
		return
	}
	d.Completed = append(d.Completed, id)
	slices.Sort(d.Completed)
	d.CompletedAt[id] = at.UTC().Format(time.RFC3339)
}

// unmarkCompleted removes id and its timestamp. Lane roles are untouched:
// a user who unmarks and later re-marks a champion expects prior role
// assignments to survive.
func (d *Document) unmarkCompleted(id string) {
	i := slices.Index(d.Completed, id)
	if i < 0 {
		return
	}
	d.Completed = slices.Delete(d.Completed, i, i+1)
	delete(d.CompletedAt, id)
}

// RolesFor returns the lane roles assigned to id, or an empty slice.
func (d *Document) RolesFor(id string) []string {
	return slices.Clone(d.LaneRoles[id])
}

// addRole adds a role to id's set. Adding a present role is a no-op.
func (d *Document) addRole(id, role string) {
	roles := d.LaneRoles[id]
	if slices.Contains(roles, role) {
		return
	}
	roles = append(roles, role)
	slices.Sort(roles)
	d.LaneRoles[id] = roles
}

// removeRole removes a role from id's set. Removing the last role deletes
// the key entirely so that "absent" stays the canonical form of "empty".
func (d *Document) removeRole(id, role string) {
	roles := d.LaneRoles[id]
	i := slices.Index(roles, role)
	if i < 0 {
		return
	}
	roles = slices.Delete(roles, i, i+1)
	if len(roles) == 0 {
		delete(d.LaneRoles, id)
		return
	}
	d.LaneRoles[id] = roles
}

// parseStamp interprets a stored completion timestamp. The zero time and
// false are returned for anything unparseable.
func parseStamp(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
