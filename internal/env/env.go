// Package env abstracts the process environment so storage and editor
// resolution can be tested without touching the real file system or
// environment variables.
package env

import (
	"fmt"
	"os"
	"path/filepath"
)

// AppDirName is the directory name used under the data and config roots.
const AppDirName = "marbles"

// DefaultEditor is used when no editor is configured and $EDITOR is unset.
const DefaultEditor = "vim"

// Provider resolves environment-dependent values for the application.
type Provider interface {
	// DataDir returns the directory where list files live.
	// Implementations do not create the directory; callers do.
	DataDir() (string, error)
	// Editor returns the command used to open files for editing.
	Editor() string
}

// OS is the Provider backed by the real process environment.
// DataDirOverride and EditorOverride, when set (typically from config),
// take precedence over environment lookup.
type OS struct {
	DataDirOverride string
	EditorOverride  string
}

// DataDir resolves the data directory following the XDG base directory
// spec: $XDG_DATA_HOME if set, otherwise ~/.local/share, joined with the
// application directory name.
func (o *OS) DataDir() (string, error) {
	if o.DataDirOverride != "" {
		return o.DataDirOverride, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not get user home directory: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, AppDirName), nil
}

// Editor resolves the editor command: the configured override, then
// $EDITOR, then the default.
func (o *OS) Editor() string {
	if o.EditorOverride != "" {
		return o.EditorOverride
	}
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	return DefaultEditor
}

// Static is a fixed Provider for tests.
type Static struct {
	Dir    string
	Cmd    string
	DirErr error
}

// DataDir returns the fixed directory (or the fixed error).
func (s *Static) DataDir() (string, error) {
	if s.DirErr != nil {
		return "", s.DirErr
	}
	return s.Dir, nil
}

// Editor returns the fixed editor command.
func (s *Static) Editor() string {
	if s.Cmd == "" {
		return DefaultEditor
	}
	return s.Cmd
}

// ConfigDir returns the directory for the application's config file,
// based on the platform user config directory.
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not get user config directory: %w", err)
	}
	return filepath.Join(base, AppDirName), nil
}
