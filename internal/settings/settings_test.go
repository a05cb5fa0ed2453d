package settings

import (
	"path/filepath"
	"testing"
)

func TestLoadMissingFileYieldsEmptySettings(t *testing.T) {
	t.Parallel()

	s, err := Load(filepath.Join(t.TempDir(), "settings.toml"))
	if err != nil {
		t.Fatalf("Load of missing file failed: %v", err)
	}
	if s.GameDir != nil || s.Verbose != nil {
		t.Fatalf("missing file should yield empty settings: %+v", s)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "settings.toml")

	gameDir := "/data/minecraft"
	concurrency := 12
	verbose := true
	in := &Settings{
		GameDir:     &gameDir,
		Concurrency: &concurrency,
		Verbose:     &verbose,
	}
	if err := Save(path, in); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if out.GameDir == nil || *out.GameDir != gameDir {
		t.Fatalf("game-dir round trip mismatch: %v", out.GameDir)
	}
	if out.Concurrency == nil || *out.Concurrency != concurrency {
		t.Fatalf("concurrency round trip mismatch: %v", out.Concurrency)
	}
	if out.Verbose == nil || !*out.Verbose {
		t.Fatalf("verbose round trip mismatch: %v", out.Verbose)
	}
	// Unset fields stay unset so flags can tell "absent" from zero.
	if out.RuntimeDir != nil || out.LogFile != nil {
		t.Fatalf("unset fields should stay nil: %+v", out)
	}
}
