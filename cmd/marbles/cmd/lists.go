package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dbmrq/marbles/internal/tui"
)

func newListsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lists",
		Short: "Show all lists",
		Long: `Show every list in the data directory with its marble count.

Examples:
  marbles lists`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := a.store.Names()
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(names))
			for _, name := range names {
				list, err := a.store.Load(name)
				if err != nil {
					return err
				}
				rows = append(rows, []string{name, strconv.Itoa(list.Len())})
			}

			cmd.Println(tui.RenderTable([]string{"List", "Marbles"}, rows))
			return nil
		},
	}
}
