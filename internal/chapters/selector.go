package chapters

import (
	"strconv"
	"strings"
)

// Filter narrows all down to one chapter, a range "a-b" or a list "1,3,5".
// A single chapter is matched by label first and by 1-based position second.
// Only the first non-empty selector applies.
func Filter(all []Chapter, chapter string, rng string, list string) []Chapter {
	switch {
	case chapter != "":
		return filterOne(all, strings.TrimSpace(chapter))
	case rng != "":
		return FilterChapterRange(all, rng)
	case list != "":
		return FilterChapterList(all, list)
	}
	return all
}

func filterOne(all []Chapter, chapter string) []Chapter {
	if byLabel := FilterChaptersByLabel(all, chapter); len(byLabel) > 0 {
		return byLabel
	}
	if idx, err := atoi(chapter); err == nil && inBounds(idx, all) {
		return []Chapter{all[idx-1]}
	}
	return []Chapter{}
}

func FilterChaptersByLabel(all []Chapter, label string) []Chapter {
	var out []Chapter
	for _, ch := range all {
		if ch.Label != "" && ch.Label == label {
			out = append(out, ch)
		}
	}
	return out
}

func FilterChapterRange(all []Chapter, rng string) []Chapter {
	start, end, ok := parseRange(rng)
	if !ok || !inBounds(start, all) || !inBounds(end, all) || start > end {
		return nil
	}
	return all[start-1 : end]
}

func FilterChapterList(all []Chapter, list string) []Chapter {
	out := []Chapter{}
	for _, n := range strings.Split(list, ",") {
		idx, err := atoi(n)
		if err != nil || !inBounds(idx, all) {
			continue
		}
		out = append(out, all[idx-1])
	}
	return out
}

func parseRange(rng string) (int, int, bool) {
	a, b, found := strings.Cut(rng, "-")
	if !found {
		return 0, 0, false
	}
	start, err1 := atoi(a)
	end, err2 := atoi(b)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return start, end, true
}

func inBounds(idx int, all []Chapter) bool {
	return idx > 0 && idx <= len(all)
}

func atoi(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}
