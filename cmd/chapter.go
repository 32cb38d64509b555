package cmd

import (
	"fmt"
	"os"

	"github.com/brogergvhs/novelfetch/internal/config"

	"github.com/spf13/cobra"
)

var flagChapterOut string

var chapterCmd = &cobra.Command{
	Use:   "chapter <path|url>",
	Short: "Print a chapter's body HTML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, config.Options{})
		if err != nil {
			return err
		}

		body, err := a.provider.ParseChapter(commandContext(cmd), a.sitePath(args[0]))
		if err != nil {
			return err
		}
		if body == "" {
			return fmt.Errorf("no chapter content at %s", a.provider.ResolveURL(a.sitePath(args[0])))
		}

		if flagChapterOut != "" {
			return os.WriteFile(flagChapterOut, []byte(body+"\n"), 0o644)
		}

		_, err = fmt.Fprintln(a.out, body)
		return err
	},
}

func init() {
	chapterCmd.Flags().StringVarP(&flagChapterOut, "output", "o", "", "write the body to a file instead of stdout")
	rootCmd.AddCommand(chapterCmd)
}
