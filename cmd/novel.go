package cmd

import (
	"github.com/brogergvhs/novelfetch/internal/config"

	"github.com/spf13/cobra"
)

var novelCmd = &cobra.Command{
	Use:   "novel <path|url>",
	Short: "Show a novel's details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, config.Options{})
		if err != nil {
			return err
		}

		novel, err := a.provider.ParseNovel(commandContext(cmd), a.sitePath(args[0]))
		if err != nil {
			return err
		}

		return printNovel(a.out, novel)
	},
}

func init() {
	rootCmd.AddCommand(novelCmd)
}
