package queue

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("img"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func buildQueue(t *testing.T, names ...string) (*Queue, string) {
	t.Helper()
	root := t.TempDir()
	for _, name := range names {
		writeFile(t, filepath.Join(root, name))
	}
	q, err := Build(root)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	q.Sort()
	return q, root
}

func current(t *testing.T, q *Queue) string {
	t.Helper()
	path, ok := q.Current()
	if !ok {
		t.Fatal("Current on empty queue")
	}
	return filepath.Base(path)
}

func TestBuildRecursesAndSkipsCategoryDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.png"))
	writeFile(t, filepath.Join(root, "sub", "nested", "b.png"))
	writeFile(t, filepath.Join(root, ".favorites", "c.png"))
	writeFile(t, filepath.Join(root, ".like", "d.png"))

	q, err := Build(root)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if q.Len() != 2 {
		t.Fatalf("Len = %d, want 2 (category dirs must be excluded)", q.Len())
	}
}

func TestBuildFollowsSymlinkedDirs(t *testing.T) {
	root := t.TempDir()
	other := t.TempDir()
	writeFile(t, filepath.Join(other, "a.png"))
	if err := os.Symlink(other, filepath.Join(root, "linked")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	q, err := Build(root)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if q.Len() != 1 {
		t.Fatalf("Len = %d, want 1 (symlinked dir must be followed)", q.Len())
	}
}

func TestBuildMissingRoot(t *testing.T) {
	if _, err := Build(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("Build of missing root succeeded, want error")
	}
}

func TestAdvanceWrapsForward(t *testing.T) {
	q, _ := buildQueue(t, "a.png", "b.png", "c.png")

	want := []string{"b.png", "c.png", "a.png", "b.png"}
	for _, name := range want {
		if !q.Advance(Forward) {
			t.Fatal("Advance returned false")
		}
		if got := current(t, q); got != name {
			t.Fatalf("Current = %q, want %q", got, name)
		}
	}
}

func TestAdvanceBackwardIsInverse(t *testing.T) {
	q, _ := buildQueue(t, "a.png", "b.png", "c.png")

	q.Advance(Forward)
	q.Advance(Forward)
	q.Advance(Backward)
	if got := current(t, q); got != "b.png" {
		t.Fatalf("Current = %q, want b.png", got)
	}

	// Backward from the front wraps to the tail.
	q.Advance(Backward)
	q.Advance(Backward)
	if got := current(t, q); got != "c.png" {
		t.Fatalf("Current after wrap = %q, want c.png", got)
	}
}

func TestAdvancePrunesMissingEntries(t *testing.T) {
	q, root := buildQueue(t, "a.png", "b.png", "c.png")

	if err := os.Remove(filepath.Join(root, "b.png")); err != nil {
		t.Fatal(err)
	}

	if !q.Advance(Forward) {
		t.Fatal("Advance returned false")
	}
	if got := current(t, q); got != "c.png" {
		t.Fatalf("Current = %q, want c.png (missing b.png skipped)", got)
	}
	if q.Len() != 2 {
		t.Fatalf("Len = %d, want 2 after prune", q.Len())
	}

	// a is still reachable after the prune.
	if !q.Advance(Forward) {
		t.Fatal("Advance returned false")
	}
	if got := current(t, q); got != "a.png" {
		t.Fatalf("Current = %q, want a.png", got)
	}
}

func TestAdvancePrunesMissingBackward(t *testing.T) {
	q, root := buildQueue(t, "a.png", "b.png", "c.png")

	if err := os.Remove(filepath.Join(root, "c.png")); err != nil {
		t.Fatal(err)
	}

	if !q.Advance(Backward) {
		t.Fatal("Advance returned false")
	}
	if got := current(t, q); got != "b.png" {
		t.Fatalf("Current = %q, want b.png (missing c.png skipped)", got)
	}
}

func TestAdvanceAllMissing(t *testing.T) {
	q, root := buildQueue(t, "a.png", "b.png")
	if err := os.RemoveAll(root); err != nil {
		t.Fatal(err)
	}

	if q.Advance(Forward) {
		t.Fatal("Advance succeeded with every file gone")
	}
	if !q.IsEmpty() {
		t.Fatalf("Len = %d, want empty queue", q.Len())
	}
}

func TestAdvanceEmptyQueue(t *testing.T) {
	q, err := Build(t.TempDir())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if q.Advance(Forward) {
		t.Fatal("Advance on empty queue returned true")
	}
	if _, ok := q.Current(); ok {
		t.Fatal("Current on empty queue returned true")
	}
}

func TestShuffleResetsIndex(t *testing.T) {
	q, _ := buildQueue(t, "a.png", "b.png", "c.png", "d.png")
	q.Advance(Forward)
	q.Advance(Forward)

	q.Shuffle()
	if q.index != 0 {
		t.Fatalf("index = %d after Shuffle, want 0", q.index)
	}
	if q.Len() != 4 {
		t.Fatalf("Len = %d after Shuffle, want 4", q.Len())
	}
}

func TestSortIsDeterministic(t *testing.T) {
	q, _ := buildQueue(t, "c.png", "a.png", "b.png")
	if got := current(t, q); got != "a.png" {
		t.Fatalf("Current after Sort = %q, want a.png", got)
	}
}
