package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input  string
		want   Level
		wantOK bool
	}{
		{"debug", LevelDebug, true},
		{"INFO", LevelInfo, true},
		{"Warn", LevelWarn, true},
		{"warning", LevelWarn, true},
		{"error", LevelError, true},
		{" error ", LevelError, true},
		{"verbose", LevelInfo, false},
		{"", LevelInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseLevel(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseLevel(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestNew_CreatesLogFile(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")

	l, err := New(&Config{
		Level:  LevelDebug,
		LogDir: logDir,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer l.Close()

	l.Info("hello", "key", "value")

	data, err := os.ReadFile(l.LogPath())
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file missing message: %q", string(data))
	}
	if !strings.Contains(string(data), "key=value") {
		t.Errorf("log file missing attribute: %q", string(data))
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")

	l, err := New(&Config{
		Level:  LevelWarn,
		LogDir: logDir,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer l.Close()

	l.Debug("too quiet")
	l.Error("loud enough")

	data, err := os.ReadFile(l.LogPath())
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if strings.Contains(string(data), "too quiet") {
		t.Error("debug message should be filtered at warn level")
	}
	if !strings.Contains(string(data), "loud enough") {
		t.Error("error message should be logged at warn level")
	}
}

func TestNewNoop(t *testing.T) {
	l := NewNoop()
	// Should not panic and should not create files.
	l.Debug("discarded")
	l.Info("discarded")
	l.Warn("discarded")
	l.Error("discarded")

	if l.LogPath() != "" {
		t.Errorf("LogPath() = %q, want empty", l.LogPath())
	}
}

func TestLogger_With(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")

	l, err := New(&Config{Level: LevelInfo, LogDir: logDir})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer l.Close()

	l.With("list", "movies").Info("rolled")

	data, err := os.ReadFile(l.LogPath())
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "list=movies") {
		t.Errorf("log file missing With attribute: %q", string(data))
	}
}

func TestLogger_Cleanup(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatal(err)
	}

	// Seed an old log file that should be removed by age.
	oldPath := filepath.Join(logDir, "marbles_20200101_000000.log")
	if err := os.WriteFile(oldPath, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}
	oldTime := time.Now().Add(-30 * 24 * time.Hour)
	if err := os.Chtimes(oldPath, oldTime, oldTime); err != nil {
		t.Fatal(err)
	}

	// A non-log file must survive cleanup.
	otherPath := filepath.Join(logDir, "notes.txt")
	if err := os.WriteFile(otherPath, []byte("keep"), 0644); err != nil {
		t.Fatal(err)
	}

	l, err := New(&Config{
		Level:       LevelInfo,
		LogDir:      logDir,
		MaxLogFiles: 10,
		MaxLogAge:   7 * 24 * time.Hour,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer l.Close()

	if err := l.Cleanup(); err != nil {
		t.Fatalf("Cleanup: %v", err)
	}

	if _, err := os.Stat(oldPath); !os.IsNotExist(err) {
		t.Error("old log file should have been removed")
	}
	if _, err := os.Stat(otherPath); err != nil {
		t.Error("non-log file should not be removed")
	}
	if _, err := os.Stat(l.LogPath()); err != nil {
		t.Error("current log file should not be removed")
	}
}

func TestGlobal(t *testing.T) {
	// Reset global state after the test.
	defer SetGlobal(nil)

	// Uninitialized global returns a usable no-op logger.
	SetGlobal(nil)
	if Global() == nil {
		t.Fatal("Global() should never return nil")
	}

	l := NewNoop()
	SetGlobal(l)
	if Global() != l {
		t.Error("Global() should return the logger set via SetGlobal")
	}
}
