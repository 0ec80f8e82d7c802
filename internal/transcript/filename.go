package transcript

import (
	"strings"
	"time"
	"unicode"
)

// StampLayout gives fixed-width, zero-padded names so that lexical sort
// order of filenames equals chronological order.
const StampLayout = "2006-01-02_15-04-05"

// slugMax caps the slug length in runes so pathological titles cannot
// push paths past filesystem limits.
const slugMax = 50

// Name builds the transcript filename for a timestamp and optional
// title: YYYY-MM-DD_HH-MM-SS[_<slug>].md. A title that sanitizes to
// nothing yields the bare timestamp name.
func Name(ts time.Time, title string) string {
	stamp := ts.Format(StampLayout)
	if slug := Slug(title); slug != "" {
		return stamp + "_" + slug + ".md"
	}
	return stamp + ".md"
}

// Slug normalizes a title for use in a filename: letters and digits are
// kept (lowercased, Unicode included), every other run of characters
// collapses to a single hyphen, and the result is trimmed of hyphens
// and truncated to slugMax runes. No path separators or other reserved
// characters can survive.
func Slug(title string) string {
	var b strings.Builder
	pendingHyphen := false
	n := 0
	for _, r := range title {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			if b.Len() > 0 {
				pendingHyphen = true
			}
			continue
		}
		if pendingHyphen {
			if n+1 > slugMax {
				break
			}
			b.WriteRune('-')
			n++
			pendingHyphen = false
		}
		if n+1 > slugMax {
			break
		}
		b.WriteRune(unicode.ToLower(r))
		n++
	}
	return strings.TrimRight(b.String(), "-")
}

// ParseStamp recovers the timestamp from a filename's fixed prefix.
func ParseStamp(filename string) (time.Time, bool) {
	if len(filename) < len(StampLayout) {
		return time.Time{}, false
	}
	t, err := time.Parse(StampLayout, filename[:len(StampLayout)])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
