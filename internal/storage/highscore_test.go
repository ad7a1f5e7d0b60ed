package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.txt")
	store := NewHighScoreStore(path)

	if err := store.Save(1234); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != 1234 {
		t.Fatalf("Load = %d, want 1234", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	store := NewHighScoreStore(filepath.Join(t.TempDir(), "nope.txt"))
	if _, err := store.Load(); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	if err := os.WriteFile(path, []byte("not a number"), 0644); err != nil {
		t.Fatal(err)
	}
	store := NewHighScoreStore(path)
	if _, err := store.Load(); err == nil {
		t.Fatal("expected error for corrupt file")
	}
}

func TestLoadTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ws.txt")
	if err := os.WriteFile(path, []byte(" 77\n"), 0644); err != nil {
		t.Fatal(err)
	}
	store := NewHighScoreStore(path)
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != 77 {
		t.Fatalf("Load = %d, want 77", got)
	}
}
