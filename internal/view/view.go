// Package view derives what the user actually looks at: the catalog joined
// with progress state, narrowed by filters, ordered by a sort mode, and
// summarized into aggregate counts. Everything here is a pure derivation —
// nothing is persisted, and the same inputs always produce the same list.
package view

import (
	"strings"

	"github.com/papapumpkin/roster/internal/catalog"
	"github.com/papapumpkin/roster/internal/progress"
)

// Item is a catalog champion enriched with the user's progress state.
// Recomputed on every document or catalog change, never stored.
type Item struct {
	catalog.Champion

	Completed   bool
	LaneRoles   []string
	CompletedAt string // RFC 3339; empty when never marked
}

// Enrich joins each catalog champion with the progress document.
func Enrich(champs []catalog.Champion, doc *progress.Document) []Item {
	items := make([]Item, 0, len(champs))
	for _, c := range champs {
		items = append(items, Item{
			Champion:    c,
			Completed:   doc.IsCompleted(c.ID),
			LaneRoles:   doc.RolesFor(c.ID),
			CompletedAt: doc.CompletedAt[c.ID],
		})
	}
	return items
}

// Status narrows the list by completion state.
type Status string

const (
	StatusAll        Status = "all"
	StatusCompleted  Status = "completed"
	StatusIncomplete Status = "incomplete"
)

// ParseStatus validates a user-supplied status filter value.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusAll, StatusCompleted, StatusIncomplete:
		return Status(s), true
	default:
		return "", false
	}
}

// Filters is the session-scoped filter state. The zero value of each
// multi-select means "no restriction", never "exclude everything".
type Filters struct {
	Search        string
	Status        Status
	Tags          []string
	ResourceTypes []string
	LaneRoles     []string
	Sort          Sort
}

// DefaultFilters returns the reset state: everything visible, sorted by
// name ascending.
func DefaultFilters() Filters {
	return Filters{Status: StatusAll, Sort: SortNameAsc}
}

// Active counts how many filters deviate from the default (the sort mode
// is presentation, not a filter).
func (f Filters) Active() int {
	n := 0
	if strings.TrimSpace(f.Search) != "" {
		n++
	}
	if f.Status != StatusAll && f.Status != "" {
		n++
	}
	if len(f.Tags) > 0 {
		n++
	}
	if len(f.ResourceTypes) > 0 {
		n++
	}
	if len(f.LaneRoles) > 0 {
		n++
	}
	return n
}

// Apply narrows and orders the list. Each predicate is independent and
// only ever removes candidates; an empty multi-select skips its predicate
// entirely.
func (f Filters) Apply(items []Item) []Item {
	result := make([]Item, 0, len(items))
	for _, it := range items {
		if f.match(it) {
			result = append(result, it)
		}
	}
	sortItems(result, f.Sort)
	return result
}

func (f Filters) match(it Item) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		if !matchesSearch(it, q) {
			return false
		}
	}

	switch f.Status {
	case StatusCompleted:
		if !it.Completed {
			return false
		}
	case StatusIncomplete:
		if it.Completed {
			return false
		}
	}

	if len(f.Tags) > 0 && !intersects(it.Tags, f.Tags) {
		return false
	}
	if len(f.ResourceTypes) > 0 && !containsString(f.ResourceTypes, it.ResourceType) {
		return false
	}
	if len(f.LaneRoles) > 0 && !intersects(it.LaneRoles, f.LaneRoles) {
		return false
	}
	return true
}

// matchesSearch does a case-insensitive substring match against name,
// title, and the game-provided class tags.
func matchesSearch(it Item, q string) bool {
	if strings.Contains(strings.ToLower(it.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(it.Title), q) {
		return true
	}
	for _, tag := range it.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// intersects reports whether the two sets share at least one element
// (OR semantics across a multi-select).
func intersects(have, want []string) bool {
	for _, w := range want {
		if containsString(have, w) {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
