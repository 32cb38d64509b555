package cmd

import (
	"strings"

	"github.com/brogergvhs/novelfetch/internal/config"

	"github.com/spf13/cobra"
)

var flagSearchPage int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search novels by keyword",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, config.Options{})
		if err != nil {
			return err
		}

		items, err := a.provider.SearchNovels(commandContext(cmd), strings.Join(args, " "), flagSearchPage)
		if err != nil {
			return err
		}

		return printNovels(a.out, items)
	},
}

func init() {
	searchCmd.Flags().IntVar(&flagSearchPage, "page", 1, "results page")
	rootCmd.AddCommand(searchCmd)
}
