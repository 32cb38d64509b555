package providers

import (
	"context"
	"net/http"
)

// NovelItem is one entry of a listing or search page.
type NovelItem struct {
	Path  string `json:"path"`
	Name  string `json:"name"`
	Cover string `json:"cover,omitempty"`
}

// SourceNovel is a novel detail page with its first page of chapters.
type SourceNovel struct {
	NovelItem
	Author     string        `json:"author,omitempty"`
	Status     string        `json:"status,omitempty"`
	Genres     string        `json:"genres,omitempty"`
	Summary    string        `json:"summary,omitempty"`
	TotalPages int           `json:"totalPages"`
	Chapters   []ChapterItem `json:"chapters"`
}

// ChapterItem references a chapter before its body is fetched.
type ChapterItem struct {
	Name string `json:"name"`
	Path string `json:"path"`

	// Label is the chapter number as written in the name ("12", "12.5").
	Label  string `json:"label,omitempty"`
	Number int    `json:"chapterNumber,omitempty"`
}

type Metadata struct {
	ID      string
	Name    string
	Site    string
	Version string
	Lang    string
	Icon    string

	// ImageHeaders must accompany cover and inline image requests.
	ImageHeaders http.Header
}

type Provider interface {
	Metadata() Metadata
	Filters() Filters

	PopularNovels(ctx context.Context, page int, values FilterValues) ([]NovelItem, error)
	ParseNovel(ctx context.Context, path string) (*SourceNovel, error)
	ParsePage(ctx context.Context, path string, page int) ([]ChapterItem, error)
	ParseChapter(ctx context.Context, path string) (string, error)
	SearchNovels(ctx context.Context, query string, page int) ([]NovelItem, error)

	// ResolveURL joins a site-relative path with the site base.
	ResolveURL(path string) string
}
