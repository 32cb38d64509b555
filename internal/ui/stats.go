package ui

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/brogergvhs/novelfetch/internal/util"
)

// Stats accumulates totals across every novel in one download run.
type Stats struct {
	TotalNovels   atomic.Int64
	TotalChapters atomic.Int64
	Failed        atomic.Int64
	TotalBytes    atomic.Int64
}

func (s *Stats) Print(w io.Writer, elapsed time.Duration) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Download Summary:")
	fmt.Fprintf(w, "Novels:   %d\n", s.TotalNovels.Load())
	fmt.Fprintf(w, "Chapters: %s\n", util.Plural(s.TotalChapters.Load(), "chapter", "chapters"))
	if f := s.Failed.Load(); f > 0 {
		fmt.Fprintf(w, "Failed:   %d\n", f)
	}
	fmt.Fprintf(w, "Data:     %s\n", util.Human(s.TotalBytes.Load()))
	fmt.Fprintf(w, "Time:     %s\n", elapsed.Round(time.Second))
}
