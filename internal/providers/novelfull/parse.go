package novelfull

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/brogergvhs/novelfetch/internal/providers"
)

var reDigits = regexp.MustCompile(`\d+`)

// metaFields maps the heading of a detail-page info row to the field it sets.
var metaFields = map[string]func(n *providers.SourceNovel, v string){
	"Author:": func(n *providers.SourceNovel, v string) { n.Author = v },
	"Status:": func(n *providers.SourceNovel, v string) { n.Status = v },
	"Genre:":  func(n *providers.SourceNovel, v string) { n.Genres = v },
}

func parseNovelList(doc *goquery.Document, site string) []providers.NovelItem {
	out := []providers.NovelItem{}

	doc.Find(".list-truyen .row").Each(func(_ int, row *goquery.Selection) {
		a := row.Find("h3.truyen-title > a").First()
		href := strings.TrimSpace(a.AttrOr("href", ""))
		if href == "" {
			return
		}

		name := strings.TrimSpace(a.AttrOr("title", ""))
		if name == "" {
			name = strings.TrimSpace(a.Text())
		}
		if name == "" {
			return
		}

		out = append(out, providers.NovelItem{
			Path:  trimPath(href),
			Name:  name,
			Cover: resolveURL(site, lazyImage(row.Find("img").First())),
		})
	})

	return out
}

func parseNovelDetail(doc *goquery.Document, site string) *providers.SourceNovel {
	novel := &providers.SourceNovel{}

	novel.Name = strings.TrimSpace(doc.Find("h3.title").First().Text())
	novel.Cover = resolveURL(site, lazyImage(doc.Find(".book img").First()))
	novel.Summary = strings.TrimSpace(doc.Find(".desc-text").First().Text())

	doc.Find(".info > div").Each(func(_ int, row *goquery.Selection) {
		heading := strings.TrimSpace(row.Find("h3").First().Text())
		set, ok := metaFields[heading]
		if !ok {
			return
		}

		set(novel, siblingText(row.Find("h3").First()))
	})

	novel.TotalPages = parseTotalPages(doc)
	novel.Chapters = parseChapterList(doc)

	return novel
}

// parseTotalPages reads the page count from the title of the last pagination
// link. The "next" arrow is dropped first so it is never taken for the last
// page.
func parseTotalPages(doc *goquery.Document) int {
	pagination := doc.Find("#list-chapter ul.pagination")
	pagination.Find("li.next").Remove()

	title := pagination.Find("li a[title]").Last().AttrOr("title", "")
	m := reDigits.FindString(title)
	if m == "" {
		return 0
	}

	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}

	return n
}

func parseChapterList(doc *goquery.Document) []providers.ChapterItem {
	out := []providers.ChapterItem{}

	doc.Find("#list-chapter ul.list-chapter li a").Each(func(_ int, a *goquery.Selection) {
		href := strings.TrimSpace(a.AttrOr("href", ""))
		if href == "" {
			return
		}

		name := strings.TrimSpace(a.AttrOr("title", ""))
		if name == "" {
			name = strings.TrimSpace(a.Text())
		}

		ch := providers.ChapterItem{
			Name: name,
			Path: trimPath(href),
		}
		if label, n, ok := providers.ParseChapterLabel(name); ok {
			ch.Label = label
			ch.Number = n
		}

		out = append(out, ch)
	})

	return out
}

func parseChapterBody(doc *goquery.Document) string {
	content := doc.Find("#chapter-content").First()
	if content.Length() == 0 {
		return ""
	}

	content.Find("script, ins, .ads, .adsbygoogle").Remove()

	html, err := content.Html()
	if err != nil {
		return ""
	}

	return strings.TrimSpace(html)
}

func siblingText(heading *goquery.Selection) string {
	var parts []string
	heading.Siblings().Each(func(_ int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			parts = append(parts, t)
		}
	})

	return strings.Join(parts, ", ")
}

func lazyImage(img *goquery.Selection) string {
	for _, k := range []string{"data-src", "data-lazy-src", "src"} {
		if v := strings.TrimSpace(img.AttrOr(k, "")); v != "" {
			return v
		}
	}

	return ""
}

func resolveURL(baseURL, href string) string {
	if href == "" {
		return ""
	}

	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if u.IsAbs() {
		return u.String()
	}

	b, err := url.Parse(baseURL)
	if err != nil {
		return href
	}

	return b.ResolveReference(u).String()
}
