// Package reconcile validates externally supplied progress data — file
// uploads, exported snapshots from another device, bulk match-history
// payloads — and folds it into the repository. Validation fails closed:
// a rejected import leaves the existing document byte-for-byte untouched.
package reconcile

import (
	"encoding/json"
	"fmt"

	"github.com/papapumpkin/roster/internal/progress"
)

// Mode selects how an imported document is combined with the current one.
type Mode string

const (
	// ModeMerge unions the import with the current document; nothing the
	// user already has is ever lost.
	ModeMerge Mode = "merge"
	// ModeReplace discards the current document wholesale.
	ModeReplace Mode = "replace"
)

// ParseMode validates a user-supplied mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeMerge, ModeReplace:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("reconcile: unknown import mode %q (want merge or replace)", s)
	}
}

// Outcome reports the result of an import. Err is a human-readable reason
// when Success is false; Imported counts champions newly marked played.
type Outcome struct {
	Success  bool
	Imported int
	Err      string
}

// shape mirrors the document's top-level structure with every field left
// raw, so validation can distinguish "absent" from "wrong type" before any
// mutation happens.
type shape struct {
	Completed   json.RawMessage `json:"completed"`
	LaneRoles   json.RawMessage `json:"laneRoles"`
	CompletedAt json.RawMessage `json:"completedAt"`
}

// validate checks that raw structurally resembles a progress document: a
// completed array of strings, and object-shaped role and timestamp
// mappings when present.
func validate(raw []byte) error {
	var s shape
	if err := json.Unmarshal(raw, &s); err != nil {
		return fmt.Errorf("not a JSON object: %v", err)
	}
	if s.Completed == nil {
		return fmt.Errorf("missing required %q array", "completed")
	}
	var completed []string
	if err := json.Unmarshal(s.Completed, &completed); err != nil {
		return fmt.Errorf("%q is not an array of champion ids", "completed")
	}
	if s.LaneRoles != nil {
		var roles map[string]json.RawMessage
		if err := json.Unmarshal(s.LaneRoles, &roles); err != nil {
			return fmt.Errorf("%q is not an object", "laneRoles")
		}
	}
	if s.CompletedAt != nil {
		var stamps map[string]string
		if err := json.Unmarshal(s.CompletedAt, &stamps); err != nil {
			return fmt.Errorf("%q is not an object of timestamps", "completedAt")
		}
	}
	return nil
}

// ImportDocument feeds a raw serialized document into the repository under
// the given mode. Structural mismatches fail closed with a descriptive
// reason and zero mutation.
func ImportDocument(repo *progress.Repository, raw []byte, mode Mode) Outcome {
	if err := validate(raw); err != nil {
		return Outcome{Err: fmt.Sprintf("invalid import: %v", err)}
	}

	incoming := progress.Migrate(raw)
	before := repo.Snapshot()

	var next *progress.Document
	switch mode {
	case ModeReplace:
		next = incoming
	case ModeMerge:
		next = progress.Merge(before, incoming)
	default:
		return Outcome{Err: fmt.Sprintf("unknown import mode %q", mode)}
	}

	if !repo.Replace(next) {
		return Outcome{Err: "import parsed but could not be persisted"}
	}

	imported := 0
	for _, id := range next.Completed {
		if !before.IsCompleted(id) {
			imported++
		}
	}
	return Outcome{Success: true, Imported: imported}
}

// ImportIdentifiers bulk-marks a bare list of champion ids as played, the
// shape the match-history importer produces. Each new id is stamped with
// the current time; ids already played are strictly untouched — their
// timestamps and lane roles survive repeated overlapping syncs.
func ImportIdentifiers(repo *progress.Repository, ids []string) Outcome {
	imported := 0
	for _, id := range ids {
		if id == "" || repo.IsCompleted(id) {
			continue
		}
		if !repo.SetCompleted(id, true) {
			return Outcome{Imported: imported, Err: "progress could not be persisted"}
		}
		imported++
	}
	return Outcome{Success: true, Imported: imported}
}
