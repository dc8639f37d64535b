package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dbmrq/marbles/internal/logging"
)

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a marble from the list",
		Long: `Remove a marble from the list.

Removing a marble that is not in the list prints an error message
but is not a failure; the command still exits successfully.

Examples:
  marbles remove "The Big Lebowski"
  marbles remove chess -l games`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			list, err := a.store.Load(a.listName)
			if err != nil {
				return err
			}

			cmd.Printf("Removing %s from %s\n", emphasize(name), listTag(a.listName))
			if !list.Remove(name) {
				cmd.Printf("%s %s was not in list\n", errLabel("error:"), emphasize(name))
			}
			logging.Debug("removed marble", "list", a.listName, "item", name)

			return a.store.Save(list)
		},
	}
}
