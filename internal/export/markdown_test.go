package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mithrel/cardstock/internal/transform"
	"github.com/mithrel/cardstock/pkg/models"
)

func sampleCard() models.Card {
	return models.Card{
		Front: "# Sample Card\n\nFront body with **bold**.\n\n- a bullet\n\nTags: #sample #cards",
		Back:  "# Answer\n\nBack body.\n\nTags: #answers",
		Title: "Sample Card",
	}
}

func TestComposeMarkdownLayout(t *testing.T) {
	out := ComposeMarkdown(sampleCard())

	for _, want := range []string{
		"# Sample Card\n",
		"Front body with **bold**.",
		"- a bullet",
		"Tags: #sample #cards\n",
		"## Back Side\n",
		"# Answer\n",
		"Back body.",
		"Tags: #answers\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("export missing %q:\n%s", want, out)
		}
	}

	// Front comes before the divider, back after it.
	div := strings.Index(out, "## Back Side")
	if strings.Index(out, "Front body") > div {
		t.Fatalf("front body after divider:\n%s", out)
	}
	if strings.Index(out, "Back body") < div {
		t.Fatalf("back body before divider:\n%s", out)
	}
}

func TestComposeMarkdownFrontOnly(t *testing.T) {
	c := models.Card{Front: "# Solo\n\nJust a front.", Title: "Solo"}
	out := ComposeMarkdown(c)
	if strings.Contains(out, "## Back Side") {
		t.Fatalf("empty back produced a back section:\n%s", out)
	}
	if strings.Contains(out, "Tags:") {
		t.Fatalf("empty tags produced a tags line:\n%s", out)
	}
}

func TestRoundTripPreservesTitleAndTags(t *testing.T) {
	orig := sampleCard()
	got := ParseMarkdown(ComposeMarkdown(orig))

	if got.Title != "Sample Card" {
		t.Fatalf("title = %q", got.Title)
	}

	front := transform.Extract(got.Front)
	if front.Title != "Sample Card" || front.Tags != "#sample #cards" {
		t.Fatalf("front extraction after round trip: %+v", front)
	}

	back := transform.Extract(got.Back)
	if back.Title != "Answer" || back.Tags != "#answers" {
		t.Fatalf("back extraction after round trip: %+v", back)
	}

	// A second round trip is stable.
	again := ParseMarkdown(ComposeMarkdown(got))
	if again != got {
		t.Fatalf("round trip not stable:\n%+v\nvs\n%+v", again, got)
	}
}

func TestParseMarkdownWithoutBack(t *testing.T) {
	c := ParseMarkdown("# Only Front\n\nbody\n\nTags: #t\n")
	if c.Title != "Only Front" {
		t.Fatalf("title = %q", c.Title)
	}
	if c.Back != "" {
		t.Fatalf("back = %q, want empty", c.Back)
	}
}

func TestWriteReadMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.md")
	if err := WriteMarkdown(path, sampleCard()); err != nil {
		t.Fatalf("WriteMarkdown: %v", err)
	}
	got, err := ReadMarkdown(path)
	if err != nil {
		t.Fatalf("ReadMarkdown: %v", err)
	}
	if got.Title != "Sample Card" {
		t.Fatalf("title = %q", got.Title)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal(err)
	}
}

func TestReadMarkdownMissingFile(t *testing.T) {
	if _, err := ReadMarkdown(filepath.Join(t.TempDir(), "nope.md")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
