package progress

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMigrate_EmptyInput(t *testing.T) {
	t.Parallel()
	got := Migrate(nil)
	if diff := cmp.Diff(Empty(), got); diff != "" {
		t.Errorf("Migrate(nil) mismatch (-want +got):\n%s", diff)
	}
}

func TestMigrate_UnparseableInput(t *testing.T) {
	t.Parallel()
	for _, input := range []string{"not json", `{"completed": 42}`, `[]`} {
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			got := Migrate([]byte(input))
			if diff := cmp.Diff(Empty(), got); diff != "" {
				t.Errorf("Migrate(%q) mismatch (-want +got):\n%s", input, diff)
			}
		})
	}
}

func TestMigrate_ScalarRolesBecomeSets(t *testing.T) {
	t.Parallel()
	input := []byte(`{
		"completed": ["Ahri", "Zed"],
		"laneRoles": {"Ahri": "MID", "Zed": ["MID", "TOP"]},
		"completedAt": {"Ahri": "2025-03-01T12:00:00Z"},
		"schemaVersion": 1
	}`)

	got := Migrate(input)

	want := &Document{
		Completed:     []string{"Ahri", "Zed"},
		LaneRoles:     map[string][]string{"Ahri": {"MID"}, "Zed": {"MID", "TOP"}},
		CompletedAt:   map[string]string{"Ahri": "2025-03-01T12:00:00Z"},
		SchemaVersion: CurrentSchemaVersion,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Migrate mismatch (-want +got):\n%s", diff)
	}
}

func TestMigrate_MissingVersionTreatedAsOldest(t *testing.T) {
	t.Parallel()
	input := []byte(`{"completed": ["Ahri"], "laneRoles": {"Ahri": "MID"}}`)

	got := Migrate(input)

	if got.SchemaVersion != CurrentSchemaVersion {
		t.Errorf("SchemaVersion = %d, want %d", got.SchemaVersion, CurrentSchemaVersion)
	}
	if diff := cmp.Diff([]string{"MID"}, got.LaneRoles["Ahri"]); diff != "" {
		t.Errorf("roles mismatch (-want +got):\n%s", diff)
	}
}

func TestMigrate_NegativeVersionFailsToEmpty(t *testing.T) {
	t.Parallel()
	input := []byte(`{"completed": ["Ahri"], "schemaVersion": -3}`)
	got := Migrate(input)
	if diff := cmp.Diff(Empty(), got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	t.Parallel()
	input := []byte(`{
		"completed": ["Zed", "Ahri", "Ahri", ""],
		"laneRoles": {"Ahri": "MID", "Zed": [], "Lux": ["", "SUPPORT"]},
		"completedAt": {"Ahri": "2025-03-01T12:00:00Z", "Ghost": "2025-01-01T00:00:00Z", "Zed": "garbage"},
		"schemaVersion": 1
	}`)

	once := Migrate(input)
	raw, err := json.Marshal(once)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	twice := Migrate(raw)

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("second migration changed the document (-once +twice):\n%s", diff)
	}
}

func TestMigrate_NormalizesInvariants(t *testing.T) {
	t.Parallel()
	input := []byte(`{
		"completed": ["Zed", "Ahri", "Ahri", ""],
		"laneRoles": {"Ahri": ["MID", "MID"], "Zed": []},
		"completedAt": {"Ghost": "2025-01-01T00:00:00Z", "Ahri": "not a time"},
		"schemaVersion": 2
	}`)

	got := Migrate(input)

	if diff := cmp.Diff([]string{"Ahri", "Zed"}, got.Completed); diff != "" {
		t.Errorf("Completed mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string][]string{"Ahri": {"MID"}}, got.LaneRoles); diff != "" {
		t.Errorf("LaneRoles mismatch (-want +got):\n%s", diff)
	}
	// Ghost is not completed and Ahri's stamp is unparseable: both dropped.
	if len(got.CompletedAt) != 0 {
		t.Errorf("CompletedAt = %v, want empty", got.CompletedAt)
	}
}

func TestMigrate_CanonicalizesStampRendering(t *testing.T) {
	t.Parallel()
	input := []byte(`{
		"completed": ["Ahri"],
		"completedAt": {"Ahri": "2025-03-01T12:00:00+00:00"},
		"schemaVersion": 2
	}`)
	got := Migrate(input)
	if stamp := got.CompletedAt["Ahri"]; stamp != "2025-03-01T12:00:00Z" {
		t.Errorf("CompletedAt = %q, want the canonical UTC rendering", stamp)
	}
}

func TestMigrate_PreservesStaleIdentifiers(t *testing.T) {
	t.Parallel()
	// Identifiers unknown to any catalog survive unchanged.
	input := []byte(`{"completed": ["NotARealChampion"], "schemaVersion": 2}`)
	got := Migrate(input)
	if !got.IsCompleted("NotARealChampion") {
		t.Error("stale identifier was dropped during migration")
	}
}
