package progress

import (
	"encoding/json"
	"slices"
	"time"
)

// rawDocument is the loosely-typed shape used to read documents of any
// schema version. LaneRoles values stay raw because version 1 stored a
// single scalar role per champion where version 2 stores a set.
type rawDocument struct {
	Completed     []string                   `json:"completed"`
	LaneRoles     map[string]json.RawMessage `json:"laneRoles"`
	CompletedAt   map[string]string          `json:"completedAt"`
	SchemaVersion int                        `json:"schemaVersion"`
}

// Migrate upgrades a serialized document of any known schema version to the
// current in-memory shape. It is total: any input too malformed to
// interpret, or tagged with a version older than the migration chain knows,
// resolves to the empty default document. Migrate never returns an error
// and re-running it on its own output is a no-op.
func Migrate(data []byte) *Document {
	if len(data) == 0 {
		return Empty()
	}

	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return Empty()
	}

	// A missing schemaVersion field decodes as 0 and is treated as the
	// oldest known format. Negative versions are nonsense: fail to empty
	// rather than guess.
	version := raw.SchemaVersion
	if version == 0 {
		version = 1
	}
	if version < 0 {
		return Empty()
	}

	doc := &Document{
		Completed:     raw.Completed,
		LaneRoles:     make(map[string][]string, len(raw.LaneRoles)),
		CompletedAt:   raw.CompletedAt,
		SchemaVersion: CurrentSchemaVersion,
	}

	// v1 -> v2: a lone scalar role becomes a single-element set. Values
	// that are already arrays copy through, which also makes this step
	// safe to re-run. The same coercion doubles as defensive
	// normalization for current-version documents.
	for id, rawRoles := range raw.LaneRoles {
		doc.LaneRoles[id] = coerceRoles(rawRoles)
	}

	normalize(doc)
	return doc
}

// coerceRoles decodes a laneRoles value that may be either a JSON array of
// strings or a bare string. Anything else yields nil.
func coerceRoles(raw json.RawMessage) []string {
	var roles []string
	if err := json.Unmarshal(raw, &roles); err == nil {
		return roles
	}
	var scalar string
	if err := json.Unmarshal(raw, &scalar); err == nil && scalar != "" {
		return []string{scalar}
	}
	return nil
}

// normalize enforces the document invariants after a read or merge:
// unique sorted completed set, no empty role sets, no timestamp without a
// matching completed entry, no nil containers. Surviving timestamps are
// re-rendered canonically so two strings denoting the same instant
// (offset +00:00 vs Z) cannot make equal documents differ byte-wise.
func normalize(doc *Document) {
	if doc.Completed == nil {
		doc.Completed = []string{}
	}
	slices.Sort(doc.Completed)
	doc.Completed = slices.Compact(doc.Completed)
	doc.Completed = slices.DeleteFunc(doc.Completed, func(id string) bool { return id == "" })

	if doc.LaneRoles == nil {
		doc.LaneRoles = map[string][]string{}
	}
	for id, roles := range doc.LaneRoles {
		slices.Sort(roles)
		roles = slices.Compact(roles)
		roles = slices.DeleteFunc(roles, func(r string) bool { return r == "" })
		if len(roles) == 0 {
			delete(doc.LaneRoles, id)
			continue
		}
		doc.LaneRoles[id] = roles
	}

	if doc.CompletedAt == nil {
		doc.CompletedAt = map[string]string{}
	}
	for id, ts := range doc.CompletedAt {
		t, ok := parseStamp(ts)
		if !ok || !doc.IsCompleted(id) {
			delete(doc.CompletedAt, id)
			continue
		}
		doc.CompletedAt[id] = t.UTC().Format(time.RFC3339Nano)
	}

	doc.SchemaVersion = CurrentSchemaVersion
}
