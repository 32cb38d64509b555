package chapters

import (
	"context"
	"fmt"

	"github.com/brogergvhs/novelfetch/internal/providers"
)

// Collect returns the novel's full chapter list: the rows already on the
// detail page followed by pages 2..TotalPages. Rows seen before are dropped.
func Collect(ctx context.Context, p providers.Provider, novel *providers.SourceNovel) ([]Chapter, error) {
	seen := make(map[string]bool, len(novel.Chapters))
	var items []providers.ChapterItem

	add := func(list []providers.ChapterItem) {
		for _, it := range list {
			if seen[it.Path] {
				continue
			}
			seen[it.Path] = true
			items = append(items, it)
		}
	}

	add(novel.Chapters)
	for page := 2; page <= novel.TotalPages; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		list, err := p.ParsePage(ctx, novel.Path, page)
		if err != nil {
			return nil, fmt.Errorf("chapter page %d: %w", page, err)
		}
		add(list)
	}

	return FromItems(items), nil
}
