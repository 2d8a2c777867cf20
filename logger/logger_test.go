package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoggerNoopBeforeInit(t *testing.T) {
	l := NewLogger()
	l.Log("dropped")
	l.Logf("also %s", "dropped")
	l.Close()
}

func TestLoggerWritesToRunFile(t *testing.T) {
	dir := t.TempDir()

	l := NewLogger()
	if err := l.Init(dir); err != nil {
		t.Fatalf("Init: %v", err)
	}
	l.Logf("wrote %d bytes", 42)
	l.Close()

	matches, err := filepath.Glob(filepath.Join(dir, "qadeck_*_1.log"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("run log file not found: %v (%v)", matches, err)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	for _, want := range []string{"run started", "wrote 42 bytes", "run finished"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("log missing %q", want)
		}
	}
}

func TestLoggerNumbersRuns(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 2; i++ {
		l := NewLogger()
		if err := l.Init(dir); err != nil {
			t.Fatalf("Init run %d: %v", i+1, err)
		}
		l.Close()
	}

	matches, _ := filepath.Glob(filepath.Join(dir, "qadeck_*.log"))
	if len(matches) != 2 {
		t.Fatalf("run files = %d, want 2", len(matches))
	}
}
