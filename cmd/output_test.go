package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/mediashelf/content"
	"github.com/s0up4200/mediashelf/mediaapi"
)

func TestMediaFromDocument(t *testing.T) {
	item := map[string]any{"_id": map[string]any{"$oid": "64f1"}, "title": "Alien", "type": "Movie"}

	tests := []struct {
		name    string
		doc     any
		wantOK  bool
		wantLen int
	}{
		{name: "list envelope", doc: map[string]any{"status": "success", "media": []any{item, item}}, wantOK: true, wantLen: 2},
		{name: "detail envelope", doc: map[string]any{"data": map[string]any{"media": item}}, wantOK: true, wantLen: 1},
		{name: "bare list", doc: []any{item}, wantOK: true, wantLen: 1},
		{name: "single object", doc: item, wantOK: true, wantLen: 1},
		{name: "empty list", doc: []any{}, wantOK: true, wantLen: 0},
		{name: "status message", doc: map[string]any{"status": "success", "message": "deleted"}},
		{name: "list of scalars", doc: []any{1, 2}},
		{name: "nil", doc: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			media, ok := mediaFromDocument(tt.doc)
			assert.Equal(t, tt.wantOK, ok)
			assert.Len(t, media, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, "64f1", media[0].IDString())
			}
		})
	}
}

func TestPrinterMediaTable(t *testing.T) {
	var buf bytes.Buffer
	p := newPrinter(&buf, formatTable)

	require.NoError(t, p.media([]mediaapi.Media{
		{ID: "a1", Title: "Alien", Rating: 4.5, Status: mediaapi.StatusWatched, Type: mediaapi.TypeMovie},
		{ID: "b2", Title: "Untitled"},
	}))

	out := buf.String()
	assert.Contains(t, out, "ID  ")
	assert.Contains(t, out, "4.5")
	assert.Contains(t, out, "Watched")
	assert.Contains(t, out, "2 items")
	assert.NotContains(t, out, "\x1b[", "output to a buffer must not be styled")
}

func TestPrinterEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newPrinter(&buf, formatTable).media(nil))
	assert.Equal(t, "No media found.\n", buf.String())
}

func TestPrinterYAML(t *testing.T) {
	var buf bytes.Buffer
	p := newPrinter(&buf, formatYAML)

	require.NoError(t, p.media([]mediaapi.Media{{ID: "a1", Title: "Alien", Genres: []string{"Horror"}}}))
	assert.Contains(t, buf.String(), "_id: a1")
	assert.Contains(t, buf.String(), "title: Alien")
	assert.Contains(t, buf.String(), "- Horror")
}

func TestPrinterSections(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newPrinter(&buf, formatTable).sections(content.Sections()))

	for _, s := range content.Sections() {
		assert.Contains(t, buf.String(), s.Heading)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ééééééé...", truncate("éééééééééééé", 10))
}
