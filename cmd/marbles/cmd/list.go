package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dbmrq/marbles/internal/tui"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show marbles in the list",
		Long: `Show the marbles in the list as a numbered table, in sorted order.

Examples:
  marbles list
  marbles list -l games`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.store.Load(a.listName)
			if err != nil {
				return err
			}

			cmd.Println(tui.RenderItemTable(list.Items()))
			return nil
		},
	}
}
