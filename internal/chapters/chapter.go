package chapters

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/brogergvhs/novelfetch/internal/providers"
)

var reUnderscore = regexp.MustCompile(`_+`)

const minIndexWidth = 4

// Chapter is a chapter stub plus its 1-based position in the novel's full
// chapter list. Width is the digit count of the list length.
type Chapter struct {
	providers.ChapterItem
	Index int
	Width int
}

func FromItems(items []providers.ChapterItem) []Chapter {
	width := len(strconv.Itoa(len(items)))
	out := make([]Chapter, len(items))
	for i, it := range items {
		out[i] = Chapter{ChapterItem: it, Index: i + 1, Width: width}
	}
	return out
}

func sanitize(s string) string {
	s = strings.ToLower(s)

	repl := strings.NewReplacer(
		"•", "_",
		"-", "_",
		"—", "_",
		"–", "_",
		"/", "_",
		"\\", "_",
		".", "_",
		":", "_",
		" ", "_",
		"(", "",
		")", "",
	)
	s = repl.Replace(s)

	clean := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			clean = append(clean, r)
		}
	}
	s = reUnderscore.ReplaceAllString(string(clean), "_")

	return strings.Trim(s, "_")
}

// baseName is the zero padded index followed by the sanitized chapter name,
// so files sort in reading order.
func (c Chapter) baseName() string {
	idx := fmt.Sprintf("%0*d", max(c.Width, minIndexWidth), c.Index)

	if title := sanitize(c.Name); title != "" {
		return idx + "_" + title
	}
	return idx
}

func (c Chapter) FileName() string {
	return c.baseName() + ".html"
}

func (c Chapter) FilePath(folder string) string {
	return filepath.Join(folder, c.FileName())
}

// BaseName is the sanitized file stem for a novel title.
func BaseName(novel string) string {
	if name := sanitize(novel); name != "" {
		return name
	}
	return "novel"
}

// FolderName is the working folder a novel's chapters are written to before
// archiving.
func FolderName(novel string) string {
	return BaseName(novel) + "_tmp"
}

func ArchiveName(novel string) string {
	return BaseName(novel) + ".zip"
}

func ArchivePath(out, novel string) string {
	return filepath.Join(out, ArchiveName(novel))
}
