package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_DetectsPageChange(t *testing.T) {
	dir := t.TempDir()

	pageFile := filepath.Join(dir, "index.md")
	if err := os.WriteFile(pageFile, []byte("+++\ntitle = \"Home\"\n+++\nbody\n"), 0644); err != nil {
		t.Fatalf("failed to create page file: %v", err)
	}

	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(pageFile, []byte("+++\ntitle = \"Updated\"\n+++\nnew body\n"), 0644); err != nil {
		t.Fatalf("failed to update page file: %v", err)
	}

	select {
	case change := <-w.Changes:
		if change.File != pageFile {
			t.Errorf("expected change for %q, got %q", pageFile, change.File)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}

func TestWatcher_DetectsManifestChange(t *testing.T) {
	dir := t.TempDir()

	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	manifest := filepath.Join(dir, "site.toml")
	if err := os.WriteFile(manifest, []byte("[site]\nname = \"docs\"\n"), 0644); err != nil {
		t.Fatalf("failed to create manifest: %v", err)
	}

	select {
	case change := <-w.Changes:
		if change.File != manifest {
			t.Errorf("expected change for %q, got %q", manifest, change.File)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()

	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	select {
	case change := <-w.Changes:
		t.Errorf("unexpected change event: %+v", change)
	case <-time.After(300 * time.Millisecond):
		// Expected: no events for unrelated files.
	}
}

func TestIsSourceFile(t *testing.T) {
	t.Parallel()

	cases := []struct {
		path string
		want bool
	}{
		{"/src/index.md", true},
		{"/src/site.toml", true},
		{"/src/notes.txt", false},
		{"/src/objects.db", false},
	}
	for _, tc := range cases {
		if got := isSourceFile(tc.path); got != tc.want {
			t.Errorf("isSourceFile(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}
