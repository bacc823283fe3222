package transform

import (
	"reflect"
	"testing"

	"github.com/mithrel/cardstock/pkg/models"
)

func TestTitleExtraction(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		want string
	}{
		{"heading first line", "# Heading\nbody", "Heading"},
		{"heading mid-text", "intro\n\n# Heading\n\nmore", "Heading"},
		{"first heading wins", "# One\n# Two", "One"},
		{"no heading", "just text", models.DefaultTitle},
		{"h2 is not a title", "## Sub\ntext", models.DefaultTitle},
		{"hash without space", "#nope", models.DefaultTitle},
		{"empty", "", models.DefaultTitle},
		{"trailing spaces trimmed", "# Heading  \n", "Heading"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := Title(tc.in); got != tc.want {
				t.Fatalf("Title(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestExtract(t *testing.T) {
	c := Extract("# Hi\n\nBody\n\nTags: #x")
	if c.Title != "Hi" {
		t.Fatalf("title = %q, want Hi", c.Title)
	}
	if c.Tags != "#x" {
		t.Fatalf("tags = %q, want #x", c.Tags)
	}
	if c.Body != "Body" {
		t.Fatalf("body = %q, want Body", c.Body)
	}
}

func TestExtractDefaults(t *testing.T) {
	c := Extract("plain text, nothing else")
	if c.Title != models.DefaultTitle || c.Tags != "" {
		t.Fatalf("unexpected extraction: %+v", c)
	}
	if c.Body != "plain text, nothing else" {
		t.Fatalf("body = %q", c.Body)
	}
}

func TestExtractCollapsesBlankRuns(t *testing.T) {
	c := Extract("# T\n\n\n\nfirst\n\n\n\n\nsecond")
	if c.Body != "first\n\nsecond" {
		t.Fatalf("body = %q", c.Body)
	}
}

func TestExtractRemovesOnlyFirstMatches(t *testing.T) {
	c := Extract("# One\n\n# Two\n\nTags: a\n\nTags: b")
	if c.Title != "One" || c.Tags != "a" {
		t.Fatalf("extraction: %+v", c)
	}
	// The second heading and tags line stay in the body.
	if c.Body != "# Two\n\nTags: b" {
		t.Fatalf("body = %q", c.Body)
	}
}

func TestPlain(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want string
	}{
		{"**bold** text", "bold text"},
		{"*italic* text", "italic text"},
		{"`code` text", "code text"},
		{"- item one\n- item two", "• item one\n• item two"},
		{"not - a bullet", "not - a bullet"},
		{"no markup at all", "no markup at all"},
		{"**mixed** and *styles* and `code`", "mixed and styles and code"},
	} {
		if got := Plain(tc.in); got != tc.want {
			t.Fatalf("Plain(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSpans(t *testing.T) {
	got := Spans("a **b** c *d* e `f` g")
	want := []Span{
		{Text: "a "},
		{Text: "b", Style: StyleBold},
		{Text: " c "},
		{Text: "d", Style: StyleItalic},
		{Text: " e "},
		{Text: "f", Style: StyleCode},
		{Text: " g"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Spans = %#v", got)
	}
}

func TestSpansUnterminatedMarkerIsLiteral(t *testing.T) {
	got := Spans("dangling **marker")
	want := []Span{{Text: "dangling **marker"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Spans = %#v", got)
	}
}

func TestParagraphs(t *testing.T) {
	got := Paragraphs("First para.\n\n- one\n- two\n\nSecond **para**.")
	if len(got) != 4 {
		t.Fatalf("got %d paragraphs: %#v", len(got), got)
	}
	if got[0].Bullet || got[0].Spans[0].Text != "First para." {
		t.Fatalf("para 0 = %#v", got[0])
	}
	if !got[1].Bullet || got[1].Spans[0].Text != "one" {
		t.Fatalf("para 1 = %#v", got[1])
	}
	if !got[2].Bullet || got[2].Spans[0].Text != "two" {
		t.Fatalf("para 2 = %#v", got[2])
	}
	if got[3].Bullet {
		t.Fatalf("para 3 should not be a bullet")
	}
	if got[3].Spans[1].Style != StyleBold || got[3].Spans[1].Text != "para" {
		t.Fatalf("para 3 spans = %#v", got[3].Spans)
	}
}

func TestParagraphsEmptyBody(t *testing.T) {
	if got := Paragraphs("   \n\n  "); got != nil {
		t.Fatalf("expected no paragraphs, got %#v", got)
	}
}
