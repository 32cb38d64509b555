package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configResetCmd = &cobra.Command{
	Use:   "reset [label]",
	Short: "Reset the current or named config to default values",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		label, err := labelArg(args)
		if err != nil {
			return err
		}

		path, err := store.ResetConfig(label)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Reset config: %s\n", path)
		return nil
	},
}

// labelArg is the explicit label argument or the active label.
func labelArg(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	label, err := store.CurrentLabel()
	if err != nil {
		return "", fmt.Errorf("failed to get current config label: %w", err)
	}
	return label, nil
}

func init() {
	configCmd.AddCommand(configResetCmd)
}
