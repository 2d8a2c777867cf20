package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"qadeck/logger"
)

func TestBuildPresentationWritesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, defaultOutputFile)

	got, err := buildPresentation(path, logger.NewLogger())
	if err != nil {
		t.Fatalf("buildPresentation: %v", err)
	}
	if got != path {
		t.Errorf("returned path = %q, want %q", got, path)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output file is empty")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read output dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("output dir has %d entries, want exactly 1", len(entries))
	}
}

func TestBuildPresentationOverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), defaultOutputFile)
	if err := os.WriteFile(path, []byte("stale"), 0644); err != nil {
		t.Fatalf("seed stale file: %v", err)
	}

	if _, err := buildPresentation(path, logger.NewLogger()); err != nil {
		t.Fatalf("buildPresentation: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if info.Size() <= int64(len("stale")) {
		t.Error("existing file was not overwritten with the generated deck")
	}
}

func TestBuildPresentationOutputWriteError(t *testing.T) {
	// Point at a directory that does not exist; the write must fail and
	// surface as OutputWriteError with the cause preserved.
	path := filepath.Join(t.TempDir(), "missing", defaultOutputFile)

	_, err := buildPresentation(path, logger.NewLogger())
	if err == nil {
		t.Fatal("expected error for unwritable path")
	}

	var owe *OutputWriteError
	if !errors.As(err, &owe) {
		t.Fatalf("error type = %T, want *OutputWriteError", err)
	}
	if owe.Path != path {
		t.Errorf("error path = %q, want %q", owe.Path, path)
	}
	if owe.Unwrap() == nil {
		t.Error("OutputWriteError does not wrap the I/O cause")
	}
}
