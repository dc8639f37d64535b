package editor

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/dbmrq/marbles/internal/errors"
)

func testFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "list")
	if err := os.WriteFile(path, []byte("cat\n"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLaunch_Success(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a unix shell environment")
	}

	// "true" stands in for an editor that opens and exits cleanly.
	if err := Launch(context.Background(), "true", testFile(t)); err != nil {
		t.Fatalf("Launch: %v", err)
	}
}

func TestLaunch_CommandWithArgs(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a unix shell environment")
	}

	out := filepath.Join(t.TempDir(), "touched")
	if err := Launch(context.Background(), "touch", out); err != nil {
		t.Fatalf("Launch: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Error("editor should have received the file path as an argument")
	}
}

func TestLaunch_MissingCommand(t *testing.T) {
	err := Launch(context.Background(), "definitely-not-an-editor-binary", testFile(t))
	if !stderrors.Is(err, errors.ErrEditor) {
		t.Errorf("Launch error = %v, want ErrEditor", err)
	}
}

func TestLaunch_EmptyCommand(t *testing.T) {
	err := Launch(context.Background(), "   ", testFile(t))
	if !stderrors.Is(err, errors.ErrEditor) {
		t.Errorf("Launch error = %v, want ErrEditor", err)
	}
}

func TestLaunch_EditorFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a unix shell environment")
	}

	err := Launch(context.Background(), "false", testFile(t))
	if !stderrors.Is(err, errors.ErrEditor) {
		t.Errorf("Launch error = %v, want ErrEditor", err)
	}
}
