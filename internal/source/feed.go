package source

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"
	"strings"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/mmcdole/gofeed"

	"github.com/thomaskoefod/devarticles/pkg/models"
)

const unknownAuthor = "Unbekannt"

// FeedReader turns a local RSS or Atom document into cards.
type FeedReader struct {
	parser    *gofeed.Parser
	converter *md.Converter
}

func NewFeedReader() *FeedReader {
	return &FeedReader{
		parser:    gofeed.NewParser(),
		converter: md.NewConverter("", true, &md.Options{
			EmDelimiter:     "*",
			StrongDelimiter: "**",
		}),
	}
}

// LoadFeedFile reads a feed snapshot from disk
func LoadFeedFile(path string) ([]models.Card, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("opening feed: %w", err)
	}
	defer f.Close()

	return NewFeedReader().Read(f)
}

// Read parses a feed. IDs are assigned in document order starting at 1;
// items without any date are skipped.
func (r *FeedReader) Read(in io.Reader) ([]models.Card, error) {
	feed, err := r.parser.Parse(in)
	if err != nil {
		return nil, fmt.Errorf("parsing feed: %w", err)
	}

	cards := []models.Card{}
	for _, item := range feed.Items {
		card, ok := r.convertToCard(item, feed)
		if !ok {
			continue
		}
		card.ID = int64(len(cards) + 1)
		cards = append(cards, card)
	}

	return cards, nil
}

// convertToCard converts a gofeed.Item to our Card model
func (r *FeedReader) convertToCard(item *gofeed.Item, feed *gofeed.Feed) (models.Card, bool) {
	var addedAt time.Time
	if item.PublishedParsed != nil {
		addedAt = *item.PublishedParsed
	} else if item.UpdatedParsed != nil {
		addedAt = *item.UpdatedParsed
	} else {
		return models.Card{}, false
	}

	card := models.Card{
		Author:    itemAuthor(item, feed),
		Title:     r.plainText(item.Title),
		DateAdded: addedAt.UTC().Format(time.RFC3339),
		Images: models.Images{
			Portrait:  []string{},
			Landscape: []string{},
		},
	}

	if item.Image != nil && item.Image.URL != "" {
		card.Images.Landscape = append(card.Images.Landscape, item.Image.URL)
	}
	for _, enc := range item.Enclosures {
		if enc == nil || !strings.HasPrefix(enc.Type, "image/") || enc.URL == "" {
			continue
		}
		if !slices.Contains(card.Images.Landscape, enc.URL) {
			card.Images.Landscape = append(card.Images.Landscape, enc.URL)
		}
	}
	if feed.Image != nil && feed.Image.URL != "" {
		card.Images.Portrait = append(card.Images.Portrait, feed.Image.URL)
	}

	return card, true
}

func itemAuthor(item *gofeed.Item, feed *gofeed.Feed) string {
	for _, p := range item.Authors {
		if p != nil && strings.TrimSpace(p.Name) != "" {
			return strings.TrimSpace(p.Name)
		}
	}
	for _, p := range feed.Authors {
		if p != nil && strings.TrimSpace(p.Name) != "" {
			return strings.TrimSpace(p.Name)
		}
	}
	return unknownAuthor
}

// plainText strips markup from feed titles, which some publishers send as HTML.
func (r *FeedReader) plainText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.Join(strings.Fields(s), " ")
	}

	text, err := r.converter.ConvertString(s)
	if err != nil {
		text = s
	}
	text = strings.NewReplacer("*", "", "`", "", "\\", "").Replace(text)
	return strings.Join(strings.Fields(text), " ")
}
