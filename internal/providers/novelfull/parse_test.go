package novelfull

import (
	"fmt"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSite = "https://novelfull.test/"

func mustDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func listFixture(n int) string {
	var b strings.Builder
	b.WriteString(`<div class="col-truyen-main"><div class="list list-truyen">`)
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, `
			<div class="row">
				<div class="col-xs-3"><div><img data-src="/uploads/thumbs/novel-%d.jpg" src="/img/lazy.gif" class="cover"></div></div>
				<div class="col-xs-7"><h3 class="truyen-title"><a href="/novel-%d.html" title="Novel %d">Novel %d</a></h3></div>
			</div>`, i, i, i, i)
	}
	b.WriteString(`</div></div>`)
	return b.String()
}

func TestParseNovelListCountsRows(t *testing.T) {
	for _, n := range []int{0, 1, 7, 20} {
		items := parseNovelList(mustDoc(t, listFixture(n)), testSite)

		require.Len(t, items, n)
		for i, it := range items {
			assert.NotEmpty(t, it.Path)
			assert.NotEmpty(t, it.Name)
			assert.Equal(t, fmt.Sprintf("novel-%d.html", i+1), it.Path)
			assert.Equal(t, fmt.Sprintf("https://novelfull.test/uploads/thumbs/novel-%d.jpg", i+1), it.Cover)
		}
	}
}

func TestParseNovelListSkipsRowsWithoutTitleLink(t *testing.T) {
	html := `<div class="list-truyen">
		<div class="row"><h3 class="truyen-title"><a href="/a.html">A</a></h3></div>
		<div class="row"><span>advert</span></div>
		<div class="row"><h3 class="truyen-title"><a href="/b.html"><span>B</span></a></h3><img src="https://cdn.test/b.jpg"></div>
	</div>`

	items := parseNovelList(mustDoc(t, html), testSite)

	require.Len(t, items, 2)
	assert.Equal(t, "A", items[0].Name)
	assert.Equal(t, "", items[0].Cover)
	assert.Equal(t, "b.html", items[1].Path)
	assert.Equal(t, "https://cdn.test/b.jpg", items[1].Cover)
}

const detailFixture = `
<div class="col-info-desc">
	<div class="book"><img src="/uploads/thumbs/martial-peak.jpg" alt="Martial Peak"></div>
	<div class="info">
		<div><h3>Author:</h3><a href="/author/Momo">Momo</a></div>
		<div><h3>Alternative names:</h3>Wu Lian Dian Feng</div>
		<div><h3>Genre:</h3><a href="/genre/Action">Action</a>, <a href="/genre/Martial+Arts">Martial Arts</a>, <a href="/genre/Xuanhuan">Xuanhuan</a></div>
		<div><h3>Status:</h3><a href="/status/Completed">Completed</a></div>
	</div>
	<h3 class="title">Martial Peak</h3>
	<div class="desc-text"><p>The journey to the martial peak is a lonely one.</p></div>
</div>
<div id="list-chapter">
	<div class="row">
		<div class="col-xs-12 col-sm-6"><ul class="list-chapter">
			<li><span class="glyphicon"></span><a href="/martial-peak/chapter-1.html" title="Chapter 1: Sweep the Floor">Chapter 1</a></li>
			<li><a href="/martial-peak/chapter-2.html" title="Chapter 2: Black Book">Chapter 2</a></li>
		</ul></div>
		<div class="col-xs-12 col-sm-6"><ul class="list-chapter">
			<li><a href="martial-peak/chapter-3.html">Chapter 3.5: Interlude</a></li>
		</ul></div>
	</div>
	<ul class="pagination pagination-sm">
		<li class="active"><a href="javascript:void(0)">1</a></li>
		<li><a href="/martial-peak.html?page=2" data-page="2" title="2">2</a></li>
		<li class="last"><a href="/martial-peak.html?page=128" data-page="128" title="Last page 128">Last</a></li>
		<li class="next"><a href="/martial-peak.html?page=2" title="Next page 2"><span class="glyphicon-menu-right"></span></a></li>
	</ul>
</div>`

func TestParseNovelDetail(t *testing.T) {
	novel := parseNovelDetail(mustDoc(t, detailFixture), testSite)

	assert.Equal(t, "Martial Peak", novel.Name)
	assert.Equal(t, "https://novelfull.test/uploads/thumbs/martial-peak.jpg", novel.Cover)
	assert.Equal(t, "Momo", novel.Author)
	assert.Equal(t, "Completed", novel.Status)
	assert.Equal(t, "Action, Martial Arts, Xuanhuan", novel.Genres)
	assert.Equal(t, "The journey to the martial peak is a lonely one.", novel.Summary)
	assert.Equal(t, 128, novel.TotalPages)
	require.Len(t, novel.Chapters, 3)
}

func TestParseNovelDetailMissingHeadings(t *testing.T) {
	html := `<div class="info"><div><h3>Author:</h3><a>Someone</a> <a>Else</a></div><div><h3>Source:</h3><a>Web</a></div></div>`

	novel := parseNovelDetail(mustDoc(t, html), testSite)

	assert.Equal(t, "Someone, Else", novel.Author)
	assert.Empty(t, novel.Status)
	assert.Empty(t, novel.Genres)
	assert.Empty(t, novel.Name)
	assert.Empty(t, novel.Cover)
	assert.Equal(t, 0, novel.TotalPages)
	assert.Empty(t, novel.Chapters)
}

func TestParseTotalPages(t *testing.T) {
	cases := []struct {
		name string
		html string
		want int
	}{
		{
			name: "last link with digits",
			html: `<div id="list-chapter"><ul class="pagination"><li><a title="2">2</a></li><li class="last"><a title="Page 42">Last</a></li></ul></div>`,
			want: 42,
		},
		{
			name: "next link is ignored",
			html: `<div id="list-chapter"><ul class="pagination"><li><a title="3">3</a></li><li class="next"><a title="Next 9">&gt;</a></li></ul></div>`,
			want: 3,
		},
		{
			name: "title without digits",
			html: `<div id="list-chapter"><ul class="pagination"><li class="last"><a title="Last">Last</a></li></ul></div>`,
			want: 0,
		},
		{
			name: "no pagination",
			html: `<div id="list-chapter"></div>`,
			want: 0,
		},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, parseTotalPages(mustDoc(t, tc.html)), tc.name)
	}
}

func TestParseChapterList(t *testing.T) {
	chapters := parseChapterList(mustDoc(t, detailFixture))

	require.Len(t, chapters, 3)
	assert.Equal(t, "martial-peak/chapter-1.html", chapters[0].Path)
	assert.Equal(t, "Chapter 1: Sweep the Floor", chapters[0].Name)
	assert.Equal(t, "1", chapters[0].Label)
	assert.Equal(t, "martial-peak/chapter-3.html", chapters[2].Path)
	assert.Equal(t, "Chapter 3.5: Interlude", chapters[2].Name)
	assert.Equal(t, "3.5", chapters[2].Label)
	assert.Equal(t, 3, chapters[2].Number)
}

func TestParseChapterListCountsRows(t *testing.T) {
	const m = 50
	var b strings.Builder
	b.WriteString(`<div id="list-chapter"><ul class="list-chapter">`)
	for i := 1; i <= m; i++ {
		fmt.Fprintf(&b, `<li><a href="/novel/c-%d.html">Chapter %d</a></li>`, i, i)
	}
	b.WriteString(`</ul></div>`)

	chapters := parseChapterList(mustDoc(t, b.String()))

	require.Len(t, chapters, m)
	for i, ch := range chapters {
		assert.Equal(t, fmt.Sprintf("novel/c-%d.html", i+1), ch.Path)
		assert.False(t, strings.HasPrefix(ch.Path, "/"))
	}
}

func TestParseChapterBody(t *testing.T) {
	html := `<div id="chapter"><div id="chapter-content">
		<p>First line.</p>
		<script>window.ads = 1;</script>
		<div class="ads">buy now</div>
		<p>Second line.</p>
	</div></div>`

	body := parseChapterBody(mustDoc(t, html))

	assert.Contains(t, body, "<p>First line.</p>")
	assert.Contains(t, body, "<p>Second line.</p>")
	assert.NotContains(t, body, "script")
	assert.NotContains(t, body, "buy now")
}

func TestParseChapterBodyMissing(t *testing.T) {
	assert.Equal(t, "", parseChapterBody(mustDoc(t, `<div id="other">x</div>`)))
	assert.Equal(t, "", parseChapterBody(mustDoc(t, "")))
}
