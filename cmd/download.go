package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/brogergvhs/novelfetch/internal/chapters"
	"github.com/brogergvhs/novelfetch/internal/config"
	"github.com/brogergvhs/novelfetch/internal/downloader"
	"github.com/brogergvhs/novelfetch/internal/ui"
	"github.com/brogergvhs/novelfetch/internal/util"

	"github.com/spf13/cobra"
)

var (
	// selection
	flagChapter string
	flagRange   string
	flagList    string

	// runtime
	flagOutput         string
	flagChapterWorkers int
	flagKeepFolders    bool
	flagDryRun         bool
	flagSkipBroken     bool
)

func init() {
	downloadCmd := &cobra.Command{
		Use:   "download <path|url>...",
		Short: "Download novel chapters into a zip archive. Uses the defaults from the selected config, overwritten by CLI flags",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runDownload,
	}

	// selection
	downloadCmd.Flags().StringVar(&flagChapter, "chapter", "", "download single chapter by label or index (e.g. 28.5 or 5)")
	downloadCmd.Flags().StringVar(&flagRange, "range", "", "download range of chapters by index (e.g. 5-12)")
	downloadCmd.Flags().StringVar(&flagList, "list", "", "download specific chapter indices (e.g. 1,3,5)")

	// runtime
	downloadCmd.Flags().StringVar(&flagOutput, "output", "", "output folder for archives")
	downloadCmd.Flags().IntVar(&flagChapterWorkers, "chapter-workers", 0, "parallel chapter downloads (default 4)")
	downloadCmd.Flags().BoolVar(&flagKeepFolders, "keep-folders", false, "keep the chapter HTML folder next to the archive")
	downloadCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "show what would be downloaded, don't download")
	downloadCmd.Flags().BoolVar(&flagSkipBroken, "skip-broken", false, "skip empty chapters instead of failing the whole novel")

	rootCmd.AddCommand(downloadCmd)
}

func runDownload(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd, config.Options{
		Output:         flagOutput,
		ChapterWorkers: flagChapterWorkers,
		KeepFolders:    flagKeepFolders,
		DefaultRange:   flagRange,
		DefaultList:    flagList,
		SkipBroken:     flagSkipBroken,
	})
	if err != nil {
		return err
	}
	cfg := a.cfg
	out := a.out

	fmt.Fprintf(out, "Config file: %s\n", a.used)
	fmt.Fprintln(out, "Full config:")
	cfg.Print(out)
	fmt.Fprintln(out)

	if !flagDryRun {
		if err := os.MkdirAll(cfg.Output, 0o755); err != nil {
			return fmt.Errorf("cannot create output folder: %w", err)
		}
		util.SetupInterruptHandler(cfg.Output, cmd.ErrOrStderr())
	}

	ctx := commandContext(cmd)
	stats := &ui.Stats{}
	start := time.Now()
	dl := downloader.New(a.provider, cfg.SkipBroken, a.log)

	var failed int
	for _, arg := range args {
		path := a.sitePath(arg)

		novel, err := a.provider.ParseNovel(ctx, path)
		if err != nil {
			return err
		}
		if novel.Name == "" && len(novel.Chapters) == 0 {
			a.log.Errorf("Nothing found at %s", a.provider.ResolveURL(path))
			failed++
			continue
		}

		all, err := chapters.Collect(ctx, a.provider, novel)
		if err != nil {
			return err
		}

		selected := chapters.Filter(all, flagChapter, cfg.DefaultRange, cfg.DefaultList)
		if len(selected) == 0 {
			a.log.Errorf("%s: no chapters selected out of %d", novel.Name, len(all))
			failed++
			continue
		}

		if flagDryRun {
			fmt.Fprintf(out, "Dry-run: %s, %d of %d chapters selected.\n\n", novel.Name, len(selected), len(all))
			for _, ch := range selected {
				fmt.Fprintf(out, "%4d) %s  [%s]\n      %s\n", ch.Index, ch.Name, ch.Label, a.provider.ResolveURL(ch.Path))
			}
			fmt.Fprintln(out)
			continue
		}

		if err := downloadNovel(cmd, a, dl, novel.Name, selected, stats); err != nil {
			a.log.Errorf("%s: %v", novel.Name, err)
			failed++
		}
	}

	if flagDryRun {
		return nil
	}

	stats.Print(out, time.Since(start))
	if failed > 0 {
		return fmt.Errorf("%d of %d novels failed", failed, len(args))
	}

	fmt.Fprintln(out, "\nAll done.")
	return nil
}

var errNothingDownloaded = errors.New("no chapters downloaded")

func downloadNovel(cmd *cobra.Command, a *app, dl *downloader.Downloader, name string, selected []chapters.Chapter, stats *ui.Stats) error {
	cfg := a.cfg
	tmpFolder := filepath.Join(cfg.Output, chapters.FolderName(name))
	archive := chapters.ArchivePath(cfg.Output, name)

	pm := ui.NewProgressManager(a.out)
	handle := pm.Register(name)
	handle.SetTotal(len(selected))

	res, err := dl.DownloadChaptersConcurrently(commandContext(cmd), selected, tmpFolder, cfg.ChapterWorkers, handle)
	pm.Close()

	if res != nil {
		stats.Failed.Add(int64(len(res.Failed)))
	}
	if err != nil {
		_ = os.RemoveAll(tmpFolder)
		return err
	}
	if len(res.Files) == 0 {
		_ = os.RemoveAll(tmpFolder)
		return errNothingDownloaded
	}

	if err := util.CreateArchive(res.Files, archive); err != nil {
		_ = os.RemoveAll(tmpFolder)
		return err
	}

	if cfg.KeepFolders {
		kept := filepath.Join(cfg.Output, chapters.BaseName(name))
		if err := os.Rename(tmpFolder, kept); err != nil {
			a.log.Errorf("keep folder %s: %v", kept, err)
		}
	} else {
		util.CleanupFolder(tmpFolder)
	}

	stats.TotalNovels.Add(1)
	stats.TotalChapters.Add(int64(len(res.Files)))
	stats.TotalBytes.Add(res.Bytes)

	fmt.Fprintf(a.out, "Saved %s\n", archive)
	return nil
}
