package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dbmrq/marbles/internal/logging"
	"github.com/dbmrq/marbles/internal/tui"
)

func newRollCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roll",
		Short: "Roll a random marble from the list, removing it",
		Long: `Roll a random marble from the list. The rolled marble is removed
from the list and printed.

The draw is a single uniform random pick made before anything is
rendered; the shuffle animation is pure decoration and never changes
the outcome. The animation only plays when stdout is a terminal; use
--plain (or roll.animate: false in the config) to skip it.

Examples:
  marbles roll
  marbles roll -l games --plain`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plain, _ := cmd.Flags().GetBool("plain")

			list, err := a.store.Load(a.listName)
			if err != nil {
				return err
			}

			if list.Len() == 0 {
				cmd.Printf("%s No marbles. You can add some with\n    %s\n",
					errLabel("error:"), boldText("marbles add <NAME>"))
				return nil
			}

			total := list.Len()
			rolled, _ := list.TakeRandom()
			logging.Info("rolled marble", "list", a.listName, "item", rolled, "of", total)

			animate := a.cfg.Roll.Animate && !plain && isInteractive()
			if animate {
				err := tui.RunRoll(rolled, list.Items(), tui.RollOptions{
					Duration:   a.cfg.Roll.Duration,
					Tick:       a.cfg.Roll.Tick,
					KillChance: a.cfg.Roll.KillChance,
				})
				if err != nil {
					// Rendering trouble shouldn't cost the user their roll.
					animate = false
				}
			}
			if !animate {
				cmd.Printf("Rolling a marble for %s of %s choices\n",
					boldText("1"), boldText(total))
				cmd.Printf("  rolled: %s\n", listTag(rolled))
			}

			return a.store.Save(list)
		},
	}

	cmd.Flags().Bool("plain", false, "Skip the roll animation")
	return cmd
}
