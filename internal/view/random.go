package view

import "math/rand"

// Restrict narrows the random candidate pool. Empty fields mean no
// restriction, matching the multi-select filter semantics.
type Restrict struct {
	Tags          []string
	ResourceTypes []string
	LaneRoles     []string
}

// RandomIncomplete picks a uniformly random not-yet-played champion from
// the items matching the restriction. ok is false when no candidate
// matches — the caller gets an explicit "none", never a pick from outside
// the restriction.
//
// The random source is injected so selection is testable with a seed.
func RandomIncomplete(items []Item, restrict Restrict, rng *rand.Rand) (Item, bool) {
	f := Filters{
		Status:        StatusIncomplete,
		Tags:          restrict.Tags,
		ResourceTypes: restrict.ResourceTypes,
		LaneRoles:     restrict.LaneRoles,
	}

	var pool []Item
	for _, it := range items {
		if f.match(it) {
			pool = append(pool, it)
		}
	}
	if len(pool) == 0 {
		return Item{}, false
	}
	return pool[rng.Intn(len(pool))], true
}
