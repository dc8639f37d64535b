package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dbmrq/marbles/internal/logging"
)

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a marble to the list",
		Long: `Add a marble to the list.

Adding a marble that is already in the list is a no-op and still
reports success.

Examples:
  marbles add "The Big Lebowski"
  marbles add chess -l games`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			list, err := a.store.Load(a.listName)
			if err != nil {
				return err
			}

			inserted := list.Add(name)
			cmd.Printf("Added %s to %s\n", emphasize(name), listTag(a.listName))
			logging.Debug("added marble", "list", a.listName, "item", name, "inserted", inserted)

			return a.store.Save(list)
		},
	}
}
