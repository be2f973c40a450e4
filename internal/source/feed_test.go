package source

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFeedFile(t *testing.T) {
	cards, err := Load(filepath.Join("testdata", "feed.xml"), FormatAuto, nil)
	require.NoError(t, err)

	// the undated item is skipped and ids stay contiguous
	require.Len(t, cards, 2)

	first := cards[0]
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, "Lena Vogel", first.Author)
	assert.Equal(t, "Go & Rust im Vergleich", first.Title)
	assert.Equal(t, "2026-03-14T09:12:00Z", first.DateAdded)
	assert.Equal(t, []string{"https://blog.example.com/go-rust.jpg"}, first.Images.Landscape)
	assert.Equal(t, []string{"https://blog.example.com/logo.png"}, first.Images.Portrait)
	assert.Zero(t, first.Likes)

	second := cards[1]
	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, unknownAuthor, second.Author)
	assert.Equal(t, "Podcast Folge 12", second.Title)
	assert.Equal(t, "2025-01-08T16:45:00Z", second.DateAdded)
	assert.Empty(t, second.Images.Landscape, "audio enclosures are not images")
}

func TestFeedReaderAtom(t *testing.T) {
	doc := `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Atom Blog</title>
  <author><name>Feed Author</name></author>
  <updated>2025-05-01T00:00:00Z</updated>
  <entry>
    <title type="html">&lt;b&gt;Bold&lt;/b&gt; move</title>
    <id>urn:1</id>
    <updated>2025-04-30T12:00:00Z</updated>
  </entry>
</feed>`

	cards, err := NewFeedReader().Read(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "Feed Author", cards[0].Author)
	assert.Equal(t, "Bold move", cards[0].Title)
	assert.Equal(t, "2025-04-30T12:00:00Z", cards[0].DateAdded)
}

func TestFeedReaderInvalidDocument(t *testing.T) {
	_, err := NewFeedReader().Read(strings.NewReader("not a feed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing feed")
}
