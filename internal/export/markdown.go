// Package export writes a card out as markdown or PDF and reads the
// markdown form back in.
package export

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/mithrel/cardstock/internal/transform"
	"github.com/mithrel/cardstock/pkg/models"
)

// backSideRe matches the section divider between front and back in an
// exported markdown file.
var backSideRe = regexp.MustCompile(`(?m)^## Back Side$`)

// ComposeMarkdown renders a card in the exchange format: front title,
// front body, front tags line, and, when back content exists, a
// "## Back Side" section carrying the back's own title, body and tags.
func ComposeMarkdown(c models.Card) string {
	front := transform.Extract(c.Front)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", front.Title)
	if front.Body != "" {
		b.WriteString("\n" + front.Body + "\n")
	}
	if front.Tags != "" {
		fmt.Fprintf(&b, "\nTags: %s\n", front.Tags)
	}

	if !c.HasBack() {
		return b.String()
	}

	back := transform.Extract(c.Back)
	b.WriteString("\n## Back Side\n")
	if back.Title != models.DefaultTitle {
		fmt.Fprintf(&b, "\n# %s\n", back.Title)
	}
	if back.Body != "" {
		b.WriteString("\n" + back.Body + "\n")
	}
	if back.Tags != "" {
		fmt.Fprintf(&b, "\nTags: %s\n", back.Tags)
	}
	return b.String()
}

// ParseMarkdown reads the exchange format back into a card. The text
// before the "## Back Side" divider becomes the front, the text after
// it the back; both are already valid raw card text, so title and tags
// survive a compose/parse round trip exactly.
func ParseMarkdown(data string) models.Card {
	front := data
	back := ""
	if loc := backSideRe.FindStringIndex(data); loc != nil {
		front = data[:loc[0]]
		back = data[loc[1]:]
	}

	c := models.Card{
		Front: strings.TrimSpace(front),
		Back:  strings.TrimSpace(back),
	}
	c.Title = transform.Title(c.Front)
	return c
}

// WriteMarkdown exports the card to path.
func WriteMarkdown(path string, c models.Card) error {
	if err := os.WriteFile(path, []byte(ComposeMarkdown(c)), 0o644); err != nil {
		return fmt.Errorf("failed to save markdown: %w", err)
	}
	return nil
}

// ReadMarkdown loads an exported card file.
func ReadMarkdown(path string) (models.Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Card{}, fmt.Errorf("failed to read card file: %w", err)
	}
	return ParseMarkdown(string(data)), nil
}
