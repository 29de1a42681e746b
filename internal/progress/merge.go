package progress

import "slices"

// Merge combines two documents without losing progress from either side.
//
// The result's completed set is the union of both inputs, lane roles are
// unioned per champion, and where both sides carry a completion timestamp
// the chronologically later one wins (more recent evidence of play). Merge
// is commutative and idempotent: merging the same snapshot in again
// produces no further change, which matters because overlapping match
// history payloads get imported repeatedly.
func Merge(a, b *Document) *Document {
	out := Empty()

	out.Completed = slices.Concat(a.Completed, b.Completed)

	for _, src := range []*Document{a, b} {
		for id, roles := range src.LaneRoles {
			for _, role := range roles {
				out.addRole(id, role)
			}
		}
	}

	for id, ts := range a.CompletedAt {
		out.CompletedAt[id] = ts
	}
	for id, ts := range b.CompletedAt {
		out.CompletedAt[id] = laterStamp(out.CompletedAt[id], ts)
	}

	normalize(out)
	return out
}

// laterStamp picks the chronologically later of two timestamp strings.
// An absent or unparseable side loses to a parseable one.
func laterStamp(a, b string) string {
	ta, okA := parseStamp(a)
	tb, okB := parseStamp(b)
	switch {
	case !okA:
		return b
	case !okB:
		return a
	case tb.After(ta):
		return b
	default:
		return a
	}
}
