package cmd

import (
	stderrors "errors"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/dbmrq/marbles/internal/editor"
	"github.com/dbmrq/marbles/internal/logging"
)

func newEditCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit the list with $EDITOR",
		Long: `Open the list's backing file in your editor.

The editor is taken from the config file's editor setting, then
$EDITOR, then vim. Edits go straight to disk; nothing is re-saved
afterwards, so the file is yours while the editor runs.

Examples:
  marbles edit
  marbles edit -l games`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.store.Path(a.listName)
			if err != nil {
				return err
			}

			command := a.provider.Editor()
			logging.Debug("launching editor", "editor", command, "path", path)

			if err := editor.Launch(cmd.Context(), command, path); err != nil {
				// A missing editor binary is an expected condition,
				// reported without failing the process.
				var execErr *exec.Error
				if stderrors.As(err, &execErr) {
					cmd.Printf("%s Could not open %s\n", errLabel("error:"), emphasize(command))
					return nil
				}
				return err
			}

			return nil
		},
	}
}
