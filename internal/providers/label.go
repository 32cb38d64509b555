package providers

import (
	"regexp"
	"strconv"
)

var (
	chapRe      = regexp.MustCompile(`(?i)\b(?:vol(?:ume)?[_\-\s.]*\d+[_\-\s,:]*)?\b(?:chapter|ch\.?)[_\-\s]*0*([0-9]+)(?:\s*([.\-])\s*([0-9]+))?`)
	titlePrefix = regexp.MustCompile(`^\s*0*(\d+)(?:\.(\d+))?\s*[.:\- ]`)
)

// ParseChapterLabel reads the chapter number out of a chapter name such as
// "Chapter 12.5: Homecoming". ok is false when the name carries no number.
func ParseChapterLabel(name string) (label string, number int, ok bool) {
	if m := chapRe.FindStringSubmatch(name); m != nil {
		number, _ = strconv.Atoi(m[1])
		label = strconv.Itoa(number)
		if m[2] != "" {
			label += m[2] + m[3]
		}
		return label, number, true
	}

	if m := titlePrefix.FindStringSubmatch(name); m != nil {
		number, _ = strconv.Atoi(m[1])
		label = strconv.Itoa(number)
		if m[2] != "" {
			label += "." + m[2]
		}
		return label, number, true
	}

	return "", 0, false
}
