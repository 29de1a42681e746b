package view

import (
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort selects the ordering of the composed list.
type Sort string

const (
	SortNameAsc         Sort = "name-asc"
	SortNameDesc        Sort = "name-desc"
	SortDifficultyAsc   Sort = "difficulty-asc"
	SortDifficultyDesc  Sort = "difficulty-desc"
	SortIncompleteFirst Sort = "incomplete-first"
	SortLastCompleted   Sort = "last-completed"
)

// Sorts lists the valid sort modes for flag validation and help text.
var Sorts = []Sort{
	SortNameAsc, SortNameDesc,
	SortDifficultyAsc, SortDifficultyDesc,
	SortIncompleteFirst, SortLastCompleted,
}

// ParseSort validates a user-supplied sort value.
func ParseSort(s string) (Sort, bool) {
	for _, mode := range Sorts {
		if Sort(s) == mode {
			return mode, true
		}
	}
	return "", false
}

// collator handles locale-aware name comparison (Bel'Veth sorts by its
// letters, not its apostrophe). Composition is single-threaded, which is
// all collate.Collator supports.
var collator = collate.New(language.English, collate.Loose)

func compareNames(a, b string) int {
	return collator.CompareString(a, b)
}

// completedTime parses an item's completion stamp. ok is false for items
// never marked or carrying an unparseable stamp.
func completedTime(it Item) (time.Time, bool) {
	if it.CompletedAt == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, it.CompletedAt)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// sortItems orders items in place. Every mode tie-breaks lexicographically
// by name so equal-keyed champions come out in a stable, predictable order.
func sortItems(items []Item, mode Sort) {
	switch mode {
	case SortNameDesc:
		sort.SliceStable(items, func(i, j int) bool {
			return compareNames(items[i].Name, items[j].Name) > 0
		})
	case SortDifficultyAsc:
		sort.SliceStable(items, func(i, j int) bool {
			if items[i].Difficulty != items[j].Difficulty {
				return items[i].Difficulty < items[j].Difficulty
			}
			return compareNames(items[i].Name, items[j].Name) < 0
		})
	case SortDifficultyDesc:
		sort.SliceStable(items, func(i, j int) bool {
			if items[i].Difficulty != items[j].Difficulty {
				return items[i].Difficulty > items[j].Difficulty
			}
			return compareNames(items[i].Name, items[j].Name) < 0
		})
	case SortIncompleteFirst:
		sort.SliceStable(items, func(i, j int) bool {
			if items[i].Completed != items[j].Completed {
				return !items[i].Completed
			}
			return compareNames(items[i].Name, items[j].Name) < 0
		})
	case SortLastCompleted:
		sort.SliceStable(items, func(i, j int) bool {
			ti, okI := completedTime(items[i])
			tj, okJ := completedTime(items[j])
			if okI != okJ {
				// Unstamped items sort after all stamped ones.
				return okI
			}
			if okI && !ti.Equal(tj) {
				return ti.After(tj)
			}
			return compareNames(items[i].Name, items[j].Name) < 0
		})
	default: // SortNameAsc
		sort.SliceStable(items, func(i, j int) bool {
			return compareNames(items[i].Name, items[j].Name) < 0
		})
	}
}
