package cmd

import (
	"encoding/base64"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/brogergvhs/novelfetch/internal/chapters"
	"github.com/brogergvhs/novelfetch/internal/config"
	"github.com/brogergvhs/novelfetch/internal/fetch"

	"github.com/spf13/cobra"
)

var flagCoverOut string

var coverCmd = &cobra.Command{
	Use:   "cover <path|url>",
	Short: "Download a novel's cover image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, config.Options{})
		if err != nil {
			return err
		}

		ctx := commandContext(cmd)
		novel, err := a.provider.ParseNovel(ctx, a.sitePath(args[0]))
		if err != nil {
			return err
		}
		if novel.Cover == "" {
			return fmt.Errorf("novel %q has no cover", args[0])
		}

		payload := a.fetch.FetchFile(ctx, novel.Cover, &fetch.Init{
			Headers: a.provider.Metadata().ImageHeaders,
		})
		if payload.Empty() {
			return fmt.Errorf("cover download failed: %s", novel.Cover)
		}

		data, err := base64.StdEncoding.DecodeString(payload.String())
		if err != nil {
			return fmt.Errorf("cover decode: %w", err)
		}

		out := flagCoverOut
		if out == "" {
			out = filepath.Join(a.cfg.Output, coverFileName(novel.Name, novel.Cover))
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return err
		}

		fmt.Fprintf(a.out, "Saved cover: %s\n", out)
		return nil
	},
}

func coverFileName(name, coverURL string) string {
	ext := path.Ext(coverURL)
	if ext == "" || len(ext) > 5 {
		ext = ".jpg"
	}
	return chapters.BaseName(name) + "_cover" + ext
}

func init() {
	coverCmd.Flags().StringVarP(&flagCoverOut, "output", "o", "", "cover file path (default <output>/<novel>_cover.<ext>)")
	rootCmd.AddCommand(coverCmd)
}
