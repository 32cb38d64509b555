package downloader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/brogergvhs/novelfetch/internal/chapters"
	"github.com/brogergvhs/novelfetch/internal/providers"
	"github.com/brogergvhs/novelfetch/internal/util"
)

// ErrBrokenChapters is returned when some chapters came back empty and broken
// chapters are not skipped.
var ErrBrokenChapters = errors.New("broken chapters")

// Progress receives chapter counts as the download advances.
type Progress interface {
	Update(done, total int, bytes int64)
	MarkDone()
}

type Downloader struct {
	provider   providers.Provider
	skipBroken bool
	log        interface {
		Debugf(string, ...any)
		Errorf(string, ...any)
	}
}

func New(p providers.Provider, skipBroken bool, log interface {
	Debugf(string, ...any)
	Errorf(string, ...any)
}) *Downloader {
	return &Downloader{
		provider:   p,
		skipBroken: skipBroken,
		log:        log,
	}
}

// Result lists the written chapter files in selection order.
type Result struct {
	Files  []string
	Failed []chapters.Chapter
	Bytes  int64
}

type state struct {
	mu    sync.Mutex
	done  int
	total int
	bytes int64
}

// DownloadChaptersConcurrently fetches every chapter body with at most
// maxParallel requests in flight and writes each one to folder.
func (d *Downloader) DownloadChaptersConcurrently(
	ctx context.Context,
	list []chapters.Chapter,
	folder string,
	maxParallel int,
	ph Progress,
) (*Result, error) {
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return nil, err
	}

	total := len(list)
	if maxParallel < 1 {
		maxParallel = 1
	}
	if maxParallel > total && total > 0 {
		maxParallel = total
	}

	st := &state{total: total}
	files := make([]string, total)
	failed := make([]bool, total)
	report(ph, 0, total, 0)

	advance := func(n int64) {
		st.mu.Lock()
		st.done++
		st.bytes += n
		report(ph, st.done, st.total, st.bytes)
		st.mu.Unlock()
	}

	jobs := make(chan int)
	var wg sync.WaitGroup

	worker := func() {
		defer wg.Done()
		for i := range jobs {
			ch := list[i]

			n, err := d.fetchChapter(ctx, ch, folder)
			if err != nil {
				d.errorf("chapter %d (%s): %v", ch.Index, ch.Name, err)
				failed[i] = true
				advance(0)
				continue
			}

			files[i] = ch.FilePath(folder)
			advance(n)
		}
	}

	wg.Add(maxParallel)
	for w := 0; w < maxParallel; w++ {
		go worker()
	}

	var ctxErr error
dispatch:
	for i := range list {
		if ctxErr = ctx.Err(); ctxErr != nil {
			break
		}
		select {
		case <-ctx.Done():
			ctxErr = ctx.Err()
			break dispatch
		case jobs <- i:
		}
	}

	close(jobs)
	wg.Wait()
	if ph != nil {
		ph.MarkDone()
	}

	res := &Result{Bytes: st.bytes}
	for i, f := range files {
		switch {
		case f != "":
			res.Files = append(res.Files, f)
		case failed[i]:
			res.Failed = append(res.Failed, list[i])
		}
	}

	if ctxErr != nil {
		return res, ctxErr
	}

	if len(res.Failed) > 0 && !d.skipBroken {
		return res, fmt.Errorf("%w: failed %d/%d chapters (use --skip-broken to continue)", ErrBrokenChapters, len(res.Failed), total)
	}

	return res, nil
}

func (d *Downloader) fetchChapter(ctx context.Context, ch chapters.Chapter, folder string) (int64, error) {
	body, err := d.provider.ParseChapter(ctx, ch.Path)
	if err != nil {
		return 0, err
	}
	if body == "" {
		return 0, fmt.Errorf("empty chapter body")
	}

	page := renderChapter(ch.Name, body)
	if err := util.WriteFileAtomic(ch.FilePath(folder), page); err != nil {
		return 0, err
	}

	d.debugf("saved %s (%d bytes)", ch.FileName(), len(page))
	return int64(len(page)), nil
}

func report(ph Progress, done, total int, bytes int64) {
	if ph != nil {
		ph.Update(done, total, bytes)
	}
}

func (d *Downloader) debugf(format string, args ...any) {
	if d.log != nil {
		d.log.Debugf(format, args...)
	}
}

func (d *Downloader) errorf(format string, args ...any) {
	if d.log != nil {
		d.log.Errorf(format, args...)
	}
}
