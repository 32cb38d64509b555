package novelfull

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/brogergvhs/novelfetch/internal/fetch"
	"github.com/brogergvhs/novelfetch/internal/providers"
)

const (
	DefaultSite = "https://novelfull.net/"
	version     = "1.0.0"
)

type Scraper struct {
	fetch    *fetch.Client
	site     string
	encoding string
	log      interface{ Debugf(string, ...any) }
}

var _ providers.Provider = (*Scraper)(nil)

// NewScraper builds a scraper for site. An empty site selects DefaultSite;
// encoding is the page charset label, "" for UTF-8.
func NewScraper(f *fetch.Client, site, encoding string, log interface{ Debugf(string, ...any) }) *Scraper {
	if strings.TrimSpace(site) == "" {
		site = DefaultSite
	}
	if !strings.HasSuffix(site, "/") {
		site += "/"
	}

	return &Scraper{
		fetch:    f,
		site:     site,
		encoding: encoding,
		log:      log,
	}
}

func (s *Scraper) debugf(format string, args ...any) {
	if s.log != nil {
		s.log.Debugf(format, args...)
	}
}

func (s *Scraper) Metadata() providers.Metadata {
	return providers.Metadata{
		ID:      "novelfull",
		Name:    "NovelFull",
		Site:    s.site,
		Version: version,
		Lang:    "English",
		Icon:    s.site + "favicon.ico",
		ImageHeaders: http.Header{
			"Referer": {s.site},
		},
	}
}

func (s *Scraper) Filters() providers.Filters {
	return siteFilters
}

func (s *Scraper) ResolveURL(path string) string {
	return s.site + strings.TrimPrefix(path, "/")
}

// fetchDOM never fails on network errors: an empty payload parses into an
// empty document and every extraction then yields nothing.
func (s *Scraper) fetchDOM(ctx context.Context, target string) (*goquery.Document, error) {
	body := s.fetch.FetchText(ctx, target, nil, s.encoding)
	if body.Empty() {
		s.debugf("empty page: %s", target)
	}

	return goquery.NewDocumentFromReader(strings.NewReader(body.String()))
}

func (s *Scraper) PopularNovels(ctx context.Context, page int, values providers.FilterValues) ([]providers.NovelItem, error) {
	doc, err := s.fetchDOM(ctx, s.listingURL(page, values))
	if err != nil {
		return nil, err
	}

	return parseNovelList(doc, s.site), nil
}

func (s *Scraper) ParseNovel(ctx context.Context, path string) (*providers.SourceNovel, error) {
	path = trimPath(path)

	doc, err := s.fetchDOM(ctx, s.ResolveURL(path))
	if err != nil {
		return nil, err
	}

	novel := parseNovelDetail(doc, s.site)
	novel.Path = path

	return novel, nil
}

func (s *Scraper) ParsePage(ctx context.Context, path string, page int) ([]providers.ChapterItem, error) {
	doc, err := s.fetchDOM(ctx, s.ResolveURL(trimPath(path))+"?page="+strconv.Itoa(max(1, page)))
	if err != nil {
		return nil, err
	}

	return parseChapterList(doc), nil
}

func (s *Scraper) ParseChapter(ctx context.Context, path string) (string, error) {
	doc, err := s.fetchDOM(ctx, s.ResolveURL(trimPath(path)))
	if err != nil {
		return "", err
	}

	return parseChapterBody(doc), nil
}

func (s *Scraper) SearchNovels(ctx context.Context, query string, page int) ([]providers.NovelItem, error) {
	doc, err := s.fetchDOM(ctx, s.searchURL(query, page))
	if err != nil {
		return nil, err
	}

	return parseNovelList(doc, s.site), nil
}

// listingURL picks the genre path when one is selected, otherwise the sort
// order.
func (s *Scraper) listingURL(page int, values providers.FilterValues) string {
	path := siteFilters.Value(values, "genre")
	if path == "" {
		path = siteFilters.Value(values, "sort")
	}

	return s.site + path + "?page=" + strconv.Itoa(max(1, page))
}

func (s *Scraper) searchURL(query string, page int) string {
	u := s.site + "search?keyword=" + url.QueryEscape(strings.TrimSpace(query))
	if page > 1 {
		u += "&page=" + strconv.Itoa(page)
	}

	return u
}

func trimPath(p string) string {
	return strings.TrimLeft(strings.TrimSpace(p), "/")
}
