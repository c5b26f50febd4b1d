package flatfile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadLinesMissingFile(t *testing.T) {
	lines, exists, err := ReadLines(filepath.Join(t.TempDir(), "absent.txt"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for a missing file")
	}
	if lines != nil {
		t.Fatalf("expected no lines, got %v", lines)
	}
}

func TestWriteThenReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.txt")
	want := []string{"first,1", "second,2"}

	if err := WriteLines(path, want); err != nil {
		t.Fatalf("WriteLines: %v", err)
	}
	lines, exists, err := ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	if !exists {
		t.Fatal("expected exists=true")
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(lines))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestWriteLinesReplacesPreviousContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.txt")
	if err := WriteLines(path, []string{"old-a", "old-b", "old-c"}); err != nil {
		t.Fatalf("WriteLines: %v", err)
	}
	if err := WriteLines(path, []string{"new"}); err != nil {
		t.Fatalf("WriteLines: %v", err)
	}

	lines, _, err := ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	if len(lines) != 1 || lines[0] != "new" {
		t.Fatalf("expected a full rewrite, got %v", lines)
	}
}

func TestReadLinesSkipsEmptyLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.txt")
	if err := os.WriteFile(path, []byte("a\n\n\nb\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	lines, _, err := ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	if len(lines) != 2 || lines[0] != "a" || lines[1] != "b" {
		t.Fatalf("expected [a b], got %v", lines)
	}
}

func TestWriteLinesLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "records.txt")
	if err := WriteLines(path, []string{"only"}); err != nil {
		t.Fatalf("WriteLines: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected a single file in %s, found %d", dir, len(entries))
	}
}
