package store

import (
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_SignalsOnDocumentWrite(t *testing.T) {
	t.Parallel()
	fs := NewFileStore(filepath.Join(t.TempDir(), "progress.json"))

	w, err := NewWatcher(fs)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	if !fs.Write([]byte(`{"completed":[]}`)) {
		t.Fatal("Write failed")
	}

	select {
	case <-w.Changes:
		// Signalled as expected.
	case <-time.After(3 * time.Second):
		t.Fatal("no change signal after document write")
	}
}

func TestWatcher_IgnoresUnrelatedFiles(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	fs := NewFileStore(filepath.Join(dir, "progress.json"))

	w, err := NewWatcher(fs)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	other := NewFileStore(filepath.Join(dir, "other.json"))
	if !other.Write([]byte(`{}`)) {
		t.Fatal("Write failed")
	}

	select {
	case <-w.Changes:
		t.Fatal("signalled for a write to an unrelated file")
	case <-time.After(300 * time.Millisecond):
		// No signal, as expected.
	}
}

func TestWatcher_CoalescesRapidWrites(t *testing.T) {
	t.Parallel()
	fs := NewFileStore(filepath.Join(t.TempDir(), "progress.json"))

	w, err := NewWatcher(fs)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	for range 5 {
		if !fs.Write([]byte(`{"completed":[]}`)) {
			t.Fatal("Write failed")
		}
	}

	// At least one signal arrives; the debounce collapses the burst.
	select {
	case <-w.Changes:
	case <-time.After(3 * time.Second):
		t.Fatal("no change signal after rapid writes")
	}
}

func TestWatcher_StopClosesChannel(t *testing.T) {
	t.Parallel()
	fs := NewFileStore(filepath.Join(t.TempDir(), "progress.json"))

	w, err := NewWatcher(fs)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	w.Stop()

	select {
	case _, ok := <-w.Changes:
		if ok {
			// A buffered signal may drain first; the next receive must
			// observe the close.
			if _, ok := <-w.Changes; ok {
				t.Fatal("Changes still open after Stop")
			}
		}
	case <-time.After(time.Second):
		t.Fatal("Changes not closed after Stop")
	}
}
