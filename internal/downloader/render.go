package downloader

import (
	"bytes"
	"html/template"
)

var chapterTmpl = template.Must(template.New("chapter").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<h1>{{.Title}}</h1>
{{.Body}}
</body>
</html>
`))

// renderChapter wraps an extracted chapter body in a standalone page. The
// body is already sanitized markup from the site and is emitted as is.
func renderChapter(title, body string) []byte {
	var buf bytes.Buffer
	_ = chapterTmpl.Execute(&buf, struct {
		Title string
		Body  template.HTML
	}{title, template.HTML(body)})
	return buf.Bytes()
}
