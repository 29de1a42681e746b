package progress

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMerge_UnionsCompletedAndRoles(t *testing.T) {
	t.Parallel()
	a := &Document{
		Completed:     []string{"Ahri", "Lux"},
		LaneRoles:     map[string][]string{"Ahri": {"MID"}},
		CompletedAt:   map[string]string{"Ahri": "2025-01-01T00:00:00Z"},
		SchemaVersion: CurrentSchemaVersion,
	}
	b := &Document{
		Completed:     []string{"Lux", "Zed"},
		LaneRoles:     map[string][]string{"Ahri": {"BOT"}, "Zed": {"TOP"}},
		CompletedAt:   map[string]string{"Zed": "2025-02-01T00:00:00Z"},
		SchemaVersion: CurrentSchemaVersion,
	}

	got := Merge(a, b)

	want := &Document{
		Completed:     []string{"Ahri", "Lux", "Zed"},
		LaneRoles:     map[string][]string{"Ahri": {"BOT", "MID"}, "Zed": {"TOP"}},
		CompletedAt:   map[string]string{"Ahri": "2025-01-01T00:00:00Z", "Zed": "2025-02-01T00:00:00Z"},
		SchemaVersion: CurrentSchemaVersion,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Merge mismatch (-want +got):\n%s", diff)
	}
}

func TestMerge_Commutative(t *testing.T) {
	t.Parallel()
	a := &Document{
		Completed:     []string{"Ahri"},
		LaneRoles:     map[string][]string{"Ahri": {"MID"}},
		CompletedAt:   map[string]string{"Ahri": "2025-01-01T00:00:00Z"},
		SchemaVersion: CurrentSchemaVersion,
	}
	b := &Document{
		Completed:     []string{"Ahri", "Zed"},
		LaneRoles:     map[string][]string{"Ahri": {"BOT"}},
		CompletedAt:   map[string]string{"Ahri": "2025-06-01T00:00:00Z"},
		SchemaVersion: CurrentSchemaVersion,
	}

	if diff := cmp.Diff(Merge(a, b), Merge(b, a)); diff != "" {
		t.Errorf("Merge(a,b) != Merge(b,a):\n%s", diff)
	}
}

func TestMerge_Idempotent(t *testing.T) {
	t.Parallel()
	a := &Document{
		Completed:     []string{"Ahri", "Zed"},
		LaneRoles:     map[string][]string{"Zed": {"MID", "TOP"}},
		CompletedAt:   map[string]string{"Ahri": "2025-01-01T00:00:00Z"},
		SchemaVersion: CurrentSchemaVersion,
	}

	once := Merge(a, a)
	twice := Merge(once, a)

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("re-merging the same document changed the result:\n%s", diff)
	}
}

func TestMerge_NeverLosesProgress(t *testing.T) {
	t.Parallel()
	local := &Document{
		Completed:     []string{"Ahri", "Lux", "Zed"},
		LaneRoles:     map[string][]string{"Lux": {"SUPPORT"}},
		CompletedAt:   map[string]string{},
		SchemaVersion: CurrentSchemaVersion,
	}
	incoming := Empty()

	got := Merge(local, incoming)

	for _, id := range local.Completed {
		if !got.IsCompleted(id) {
			t.Errorf("merge dropped completed champion %q", id)
		}
	}
	if diff := cmp.Diff([]string{"SUPPORT"}, got.LaneRoles["Lux"]); diff != "" {
		t.Errorf("merge dropped roles (-want +got):\n%s", diff)
	}
}

func TestMerge_LaterTimestampWins(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		a    string
		b    string
		want string
	}{
		{"b later", "2025-01-01T00:00:00Z", "2025-06-01T00:00:00Z", "2025-06-01T00:00:00Z"},
		{"a later", "2025-06-01T00:00:00Z", "2025-01-01T00:00:00Z", "2025-06-01T00:00:00Z"},
		{"equal keeps a", "2025-01-01T00:00:00Z", "2025-01-01T00:00:00Z", "2025-01-01T00:00:00Z"},
		{"unparseable a loses", "garbage", "2025-01-01T00:00:00Z", "2025-01-01T00:00:00Z"},
		{"unparseable b loses", "2025-01-01T00:00:00Z", "garbage", "2025-01-01T00:00:00Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a := &Document{
				Completed:     []string{"Ahri"},
				CompletedAt:   map[string]string{"Ahri": tt.a},
				SchemaVersion: CurrentSchemaVersion,
			}
			b := &Document{
				Completed:     []string{"Ahri"},
				CompletedAt:   map[string]string{"Ahri": tt.b},
				SchemaVersion: CurrentSchemaVersion,
			}
			got := Merge(a, b)
			if got.CompletedAt["Ahri"] != tt.want {
				t.Errorf("CompletedAt = %q, want %q", got.CompletedAt["Ahri"], tt.want)
			}
		})
	}
}

func TestMerge_EquivalentStampRenderingsCommute(t *testing.T) {
	t.Parallel()
	// Same instant, two renderings: whichever side's string wins, the
	// result must come out canonical and identical in both merge orders.
	a := &Document{
		Completed:     []string{"Ahri"},
		CompletedAt:   map[string]string{"Ahri": "2025-01-01T00:00:00Z"},
		SchemaVersion: CurrentSchemaVersion,
	}
	b := &Document{
		Completed:     []string{"Ahri"},
		CompletedAt:   map[string]string{"Ahri": "2025-01-01T00:00:00+00:00"},
		SchemaVersion: CurrentSchemaVersion,
	}

	ab := Merge(a, b)
	ba := Merge(b, a)

	if diff := cmp.Diff(ab, ba); diff != "" {
		t.Errorf("merge order changed the document:\n%s", diff)
	}
	if got := ab.CompletedAt["Ahri"]; got != "2025-01-01T00:00:00Z" {
		t.Errorf("CompletedAt = %q, want the canonical rendering", got)
	}
}

func TestMerge_BothUnparseableStampsDropped(t *testing.T) {
	t.Parallel()
	a := &Document{
		Completed:     []string{"Ahri"},
		CompletedAt:   map[string]string{"Ahri": "garbage"},
		SchemaVersion: CurrentSchemaVersion,
	}
	got := Merge(a, a)
	if _, ok := got.CompletedAt["Ahri"]; ok {
		t.Errorf("unparseable stamp survived merge: %v", got.CompletedAt)
	}
}
