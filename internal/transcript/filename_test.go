package transcript

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "My Walk", "my-walk"},
		{"punctuation runs", "Hello...  World!!", "hello-world"},
		{"leading trailing junk", "  --Walk-- ", "walk"},
		{"empty", "", ""},
		{"only junk", "!!! ???", ""},
		{"unicode kept", "Spaziergang über München", "spaziergang-über-münchen"},
		{"mixed case digits", "Day 3: Review", "day-3-review"},
		{"path separators", "a/b\\c", "a-b-c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slug(tt.title))
		})
	}
}

func TestSlugTruncation(t *testing.T) {
	long := strings.Repeat("word ", 40)
	slug := Slug(long)
	assert.LessOrEqual(t, len([]rune(slug)), slugMax)
	assert.False(t, strings.HasSuffix(slug, "-"))
	assert.False(t, strings.HasPrefix(slug, "-"))
}

func TestName(t *testing.T) {
	ts := time.Date(2025, 12, 6, 10, 15, 33, 0, time.UTC)

	assert.Equal(t, "2025-12-06_10-15-33_my-walk.md", Name(ts, "My Walk"))
	assert.Equal(t, "2025-12-06_10-15-33.md", Name(ts, ""))
	assert.Equal(t, "2025-12-06_10-15-33.md", Name(ts, "???"))
}

func TestNameSortsChronologically(t *testing.T) {
	earlier := Name(time.Date(2025, 9, 30, 23, 59, 59, 0, time.UTC), "zzz")
	later := Name(time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), "aaa")
	assert.Less(t, earlier, later)
}

func TestParseStamp(t *testing.T) {
	ts, ok := ParseStamp("2025-12-06_10-15-33_my-walk.md")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 12, 6, 10, 15, 33, 0, time.UTC), ts)

	_, ok = ParseStamp("notes.md")
	assert.False(t, ok)
}
