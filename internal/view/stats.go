package view

// Count is a total/completed pair for one bucket.
type Count struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

// Stats aggregates completion counts over a composed item list.
//
// A champion with several lane roles counts once per role, so the sum of
// ByLaneRole totals can exceed Total. That is expected, not double
// counting.
type Stats struct {
	Total      int     `json:"total"`
	Completed  int     `json:"completed"`
	Incomplete int     `json:"incomplete"`
	Percentage float64 `json:"percentage"`

	ByTag          map[string]Count `json:"byTag"`
	ByLaneRole     map[string]Count `json:"byLaneRole"`
	ByResourceType map[string]Count `json:"byResourceType"`
}

// ComputeStats derives aggregate counts from an item list.
func ComputeStats(items []Item) Stats {
	s := Stats{
		ByTag:          map[string]Count{},
		ByLaneRole:     map[string]Count{},
		ByResourceType: map[string]Count{},
	}

	bump := func(m map[string]Count, key string, completed bool) {
		c := m[key]
		c.Total++
		if completed {
			c.Completed++
		}
		m[key] = c
	}

	for _, it := range items {
		s.Total++
		if it.Completed {
			s.Completed++
		}
		for _, tag := range it.Tags {
			bump(s.ByTag, tag, it.Completed)
		}
		for _, role := range it.LaneRoles {
			bump(s.ByLaneRole, role, it.Completed)
		}
		if it.ResourceType != "" {
			bump(s.ByResourceType, it.ResourceType, it.Completed)
		}
	}

	s.Incomplete = s.Total - s.Completed
	if s.Total > 0 {
		s.Percentage = float64(s.Completed) / float64(s.Total) * 100
	}
	return s
}
