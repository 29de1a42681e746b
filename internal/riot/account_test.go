package riot

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestAccount_RoundTrip(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	want := &Account{
		Summoner:   "TestSummoner",
		Region:     "euw1",
		LastSync:   time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		SyncCount:  3,
		LastResult: 17,
	}

	if err := SaveAccount(dir, want); err != nil {
		t.Fatalf("SaveAccount: %v", err)
	}

	got, err := LoadAccount(dir)
	if err != nil {
		t.Fatalf("LoadAccount: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("account (-want +got):\n%s", diff)
	}
}

func TestLoadAccount_MissingFileIsUnlinked(t *testing.T) {
	t.Parallel()
	a, err := LoadAccount(t.TempDir())
	if err != nil {
		t.Fatalf("LoadAccount: %v", err)
	}
	if a.Linked() {
		t.Error("missing file should yield an unlinked account")
	}
}

func TestLoadAccount_CorruptFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, accountFileName), []byte("= not toml ="), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadAccount(dir); err == nil {
		t.Error("expected an error for corrupt TOML")
	}
}

func TestAccount_Linked(t *testing.T) {
	t.Parallel()
	if (&Account{}).Linked() {
		t.Error("empty account should not read as linked")
	}
	if !(&Account{Summoner: "TestSummoner"}).Linked() {
		t.Error("account with a summoner should read as linked")
	}
}

func TestSaveAccount_OverwritesPrevious(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	if err := SaveAccount(dir, &Account{Summoner: "First", Region: "na1"}); err != nil {
		t.Fatalf("first SaveAccount: %v", err)
	}
	if err := SaveAccount(dir, &Account{Summoner: "Second", Region: "euw1", SyncCount: 1}); err != nil {
		t.Fatalf("second SaveAccount: %v", err)
	}

	got, err := LoadAccount(dir)
	if err != nil {
		t.Fatalf("LoadAccount: %v", err)
	}
	if got.Summoner != "Second" || got.Region != "euw1" {
		t.Errorf("got %+v, want the second save", got)
	}
}
