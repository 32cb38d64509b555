package cmd

import (
	"github.com/brogergvhs/novelfetch/internal/chapters"
	"github.com/brogergvhs/novelfetch/internal/config"

	"github.com/spf13/cobra"
)

var (
	flagChaptersPage int
	flagChaptersAll  bool
)

var chaptersCmd = &cobra.Command{
	Use:   "chapters <path|url>",
	Short: "List a novel's chapters, one listing page at a time or --all",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, config.Options{})
		if err != nil {
			return err
		}

		ctx := commandContext(cmd)
		path := a.sitePath(args[0])

		if !flagChaptersAll {
			items, err := a.provider.ParsePage(ctx, path, flagChaptersPage)
			if err != nil {
				return err
			}
			return printChapters(a.out, chapters.FromItems(items))
		}

		novel, err := a.provider.ParseNovel(ctx, path)
		if err != nil {
			return err
		}

		all, err := chapters.Collect(ctx, a.provider, novel)
		if err != nil {
			return err
		}

		return printChapters(a.out, all)
	},
}

func init() {
	chaptersCmd.Flags().IntVar(&flagChaptersPage, "page", 1, "chapter listing page")
	chaptersCmd.Flags().BoolVar(&flagChaptersAll, "all", false, "walk every listing page")
	rootCmd.AddCommand(chaptersCmd)
}
