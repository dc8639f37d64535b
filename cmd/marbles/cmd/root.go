// Package cmd provides the CLI commands for marbles.
package cmd

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dbmrq/marbles/internal/config"
	"github.com/dbmrq/marbles/internal/env"
	"github.com/dbmrq/marbles/internal/errors"
	"github.com/dbmrq/marbles/internal/logging"
	"github.com/dbmrq/marbles/internal/marble"
)

// Version information - set via ldflags at build time in main.go.
// These are exported so main.go can set them before Execute().
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Output color helpers. fatih/color disables itself automatically when
// stdout is not a terminal.
var (
	emphasize = color.New(color.Underline).SprintFunc()
	listTag   = color.New(color.Bold, color.FgGreen).SprintFunc()
	errLabel  = color.New(color.Bold, color.FgRed).SprintFunc()
	boldText  = color.New(color.Bold).SprintFunc()
)

// app holds the per-invocation state resolved before any subcommand runs.
type app struct {
	cfg      *config.Config
	provider *env.OS
	store    *marble.Store
	listName string
}

// NewRoot builds the complete command tree. Each call returns a fresh
// tree so tests don't share cobra state.
func NewRoot() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "marbles",
		Short: "Keep named lists and roll random marbles from them",
		Long: `Marbles maintains named, persistent lists of items and draws from
them at random. Add marbles to a list, then roll to pick one; the
rolled marble is removed from the list.

Lists are plain text files, one item per line, stored in the
platform data directory.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringP("list", "l", "", "Operate on a list with the given name")
	root.PersistentFlags().String("config", "", "Path to config file")
	root.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(newAddCmd(a))
	root.AddCommand(newRemoveCmd(a))
	root.AddCommand(newListCmd(a))
	root.AddCommand(newListsCmd(a))
	root.AddCommand(newRollCmd(a))
	root.AddCommand(newEditCmd(a))
	root.AddCommand(newConfigCmd(a))

	return root
}

// setup loads configuration, resolves the target list name, and wires the
// store and logger. It runs before every subcommand.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfgPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfig, "could not load configuration")
	}
	a.cfg = cfg

	listFlag, _ := cmd.Flags().GetString("list")
	a.listName = cfg.DefaultList
	if listFlag != "" {
		a.listName = listFlag
	}

	a.provider = &env.OS{
		DataDirOverride: cfg.DataDir,
		EditorOverride:  cfg.Editor,
	}
	a.store = marble.NewStore(a.provider)

	a.initLogging(cmd)
	logging.Debug("invocation", "command", cmd.Name(), "list", a.listName)

	return nil
}

// initLogging sets up the global file logger. Logging is best-effort: if
// the log directory cannot be created the CLI still works, silently.
func (a *app) initLogging(cmd *cobra.Command) {
	dataDir, err := a.provider.DataDir()
	if err != nil {
		return
	}

	level, _ := logging.ParseLevel(a.cfg.Log.Level)
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = logging.LevelDebug
	}

	logCfg := &logging.Config{
		Level:       level,
		LogDir:      filepath.Join(dataDir, "logs"),
		MaxLogFiles: a.cfg.Log.MaxFiles,
		MaxLogAge:   a.cfg.Log.MaxAge,
	}
	if err := logging.InitGlobal(logCfg); err != nil {
		logging.SetGlobal(logging.NewNoop())
	}
}

// isInteractive returns true if stdout is a terminal.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// reportError prints a fatal error with its suggestion, if any.
func reportError(err error) {
	var merr *errors.MarbleError
	if stderrors.As(err, &merr) {
		fmt.Fprint(os.Stderr, merr.Format())
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

// Execute runs the CLI. This is called by main.main().
func Execute() {
	root := NewRoot()
	root.Version = fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
	root.SetVersionTemplate("marbles {{.Version}}\n")
	root.SilenceErrors = true

	err := root.Execute()
	logging.CloseGlobal()
	if err != nil {
		reportError(err)
		os.Exit(1)
	}
}
