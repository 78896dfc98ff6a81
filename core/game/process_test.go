package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToProcessedView_URLPath(t *testing.T) {
	record := validRecord("polytrack")

	main := ToProcessedView(record, true)
	assert.Equal(t, "/", main.URLPath)
	assert.True(t, main.IsMainGame)

	secondary := ToProcessedView(record, false)
	assert.Equal(t, "/game/polytrack", secondary.URLPath)
	assert.False(t, secondary.IsMainGame)
}

func TestToProcessedView_DerivedFields(t *testing.T) {
	record := validRecord("polytrack")
	record.LongDescriptionHTML = `<p onclick="steal()">Race <strong>fast</strong>.</p><script>alert(1)</script>`

	view := ToProcessedView(record, false)

	assert.Equal(t, record, view.GameRecord)
	assert.NotContains(t, view.SanitizedContentHTML, "<script")
	assert.NotContains(t, view.SanitizedContentHTML, "onclick")
	assert.Contains(t, view.SanitizedContentHTML, "<strong>fast</strong>")
	assert.Equal(t, 1, view.ReadingTimeMinutes)
}

func TestToProcessedView_Excerpt(t *testing.T) {
	record := validRecord("polytrack")
	record.LongDescriptionHTML = "<h2>About</h2>\n<p>Race   <strong>fast</strong>.</p>"

	view := ToProcessedView(record, false)

	assert.Equal(t, "About Race fast.", view.Excerpt)
}

func TestToProcessedView_ExcerptBounded(t *testing.T) {
	record := validRecord("polytrack")
	record.LongDescriptionHTML = "<p>" + strings.Repeat("speed ", 100) + "</p>"

	view := ToProcessedView(record, false)

	assert.True(t, strings.HasSuffix(view.Excerpt, "..."))
	assert.LessOrEqual(t, len([]rune(view.Excerpt)), 163)
}

func TestToProcessedView_ContentCapped(t *testing.T) {
	record := validRecord("polytrack")
	record.LongDescriptionHTML = "<p>" + strings.Repeat("a", MaxContentLength*2) + "</p>"

	view := ToProcessedView(record, false)

	assert.LessOrEqual(t, len([]rune(view.SanitizedContentHTML)), MaxContentLength+3)
}

func TestToProcessedView_EmptyContent(t *testing.T) {
	record := validRecord("polytrack")
	record.LongDescriptionHTML = ""

	view := ToProcessedView(record, false)

	assert.Empty(t, view.SanitizedContentHTML)
	assert.Empty(t, view.Excerpt)
	assert.Equal(t, 1, view.ReadingTimeMinutes)
}

func TestReadingTime(t *testing.T) {
	tests := []struct {
		name  string
		words int
		want  int
	}{
		{"empty", 0, 1},
		{"one word", 1, 1},
		{"exactly one minute", 200, 1},
		{"just over", 201, 2},
		{"long read", 1000, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := strings.TrimSpace(strings.Repeat("word ", tt.words))
			assert.Equal(t, tt.want, ReadingTime(text))
		})
	}
}

func TestReadingTime_Monotonic(t *testing.T) {
	prev := 0
	for words := 0; words <= 2000; words += 37 {
		got := ReadingTime(strings.Repeat("w ", words))
		assert.GreaterOrEqual(t, got, prev)
		assert.GreaterOrEqual(t, got, 1)
		prev = got
	}
}
