package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dbmrq/marbles/internal/config"
	"github.com/dbmrq/marbles/internal/errors"
)

func newConfigCmd(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the marbles configuration",
		Long: `Commands for managing the marbles configuration file.

The config file is optional; without one, built-in defaults apply.`,
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a starter config file with default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveConfigPath(cmd)
			if err != nil {
				return err
			}
			if err := config.WriteDefault(path); err != nil {
				return errors.Wrap(err, errors.ErrConfig, "could not write config file")
			}
			cmd.Printf("Wrote %s\n", path)
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveConfigPath(cmd)
			if err != nil {
				return err
			}
			cmd.Println(path)
			return nil
		},
	})

	return configCmd
}

// resolveConfigPath honors the --config flag, falling back to the default
// location in the user config directory.
func resolveConfigPath(cmd *cobra.Command) (string, error) {
	if flag, _ := cmd.Flags().GetString("config"); flag != "" {
		return flag, nil
	}
	path, err := config.DefaultPath()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrConfig, "could not resolve config path")
	}
	return path, nil
}
