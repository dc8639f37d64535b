// Package editor launches the user's external editor on a list file.
// Edits go straight to disk; the in-memory list is bypassed entirely.
package editor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/dbmrq/marbles/internal/errors"
)

// Launch runs the editor command on the given path and blocks until the
// editor exits. The editor is attached to the current terminal. The command
// may contain arguments (e.g. "code --wait"); it is split on whitespace.
func Launch(ctx context.Context, command, path string) error {
	command = strings.TrimSpace(command)
	if command == "" {
		return errors.New(errors.ErrEditor, "no editor configured")
	}

	parts := strings.Fields(command)
	args := append(parts[1:], path)

	cmd := exec.CommandContext(ctx, parts[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return errors.Wrap(err, errors.ErrEditor, fmt.Sprintf("could not launch editor %q", parts[0])).
			WithDetails("path", path)
	}

	if err := cmd.Wait(); err != nil {
		return errors.Wrap(err, errors.ErrEditor, "editor exited with an error").
			WithDetails("path", path)
	}

	return nil
}
