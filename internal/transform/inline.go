package transform

import (
	"regexp"
	"strings"
)

// Bullet is the glyph substituted for a leading "- " in rendered output.
const Bullet = "• "

var (
	boldRe   = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRe = regexp.MustCompile(`\*(.*?)\*`)
	codeRe   = regexp.MustCompile("`(.*?)`")

	// Alternation order matters: "**" must win over "*" at the same offset.
	inlineRe = regexp.MustCompile("\\*\\*(.*?)\\*\\*|\\*(.*?)\\*|`(.*?)`")
)

// Plain strips the inline markers and swaps bullet dashes for the
// bullet glyph. This is the preview-canvas rendering.
func Plain(body string) string {
	s := boldRe.ReplaceAllString(body, "$1")
	s = italicRe.ReplaceAllString(s, "$1")
	s = codeRe.ReplaceAllString(s, "$1")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "- ") {
			lines[i] = Bullet + line[2:]
		}
	}
	return strings.Join(lines, "\n")
}

// Style classifies an inline span for the PDF paragraph engine.
type Style int

const (
	StyleRegular Style = iota
	StyleBold
	StyleItalic
	StyleCode
)

// Span is a run of text in a single style.
type Span struct {
	Text  string
	Style Style
}

// Paragraph is one layout unit of body text: either a bullet line or a
// free paragraph of styled spans.
type Paragraph struct {
	Bullet bool
	Spans  []Span
}

// Paragraphs splits body text into layout units. Paragraph breaks are
// blank lines; a paragraph whose first line starts with "- " becomes a
// sequence of bullet lines. Bullet text is rendered plain, matching the
// preview path.
func Paragraphs(body string) []Paragraph {
	var out []Paragraph
	for _, block := range strings.Split(strings.TrimSpace(body), "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		if strings.HasPrefix(block, "- ") {
			for _, line := range strings.Split(block, "\n") {
				if strings.HasPrefix(line, "- ") {
					out = append(out, Paragraph{
						Bullet: true,
						Spans:  []Span{{Text: strings.TrimSpace(line[2:])}},
					})
				}
			}
			continue
		}
		out = append(out, Paragraph{Spans: Spans(block)})
	}
	return out
}

// Spans tokenizes one paragraph into styled runs using the three
// inline patterns. Unterminated markers are left as literal text.
func Spans(text string) []Span {
	var spans []Span
	rest := text
	for {
		loc := inlineRe.FindStringSubmatchIndex(rest)
		if loc == nil {
			break
		}
		if loc[0] > 0 {
			spans = append(spans, Span{Text: rest[:loc[0]]})
		}
		switch {
		case loc[2] >= 0:
			spans = append(spans, Span{Text: rest[loc[2]:loc[3]], Style: StyleBold})
		case loc[4] >= 0:
			spans = append(spans, Span{Text: rest[loc[4]:loc[5]], Style: StyleItalic})
		default:
			spans = append(spans, Span{Text: rest[loc[6]:loc[7]], Style: StyleCode})
		}
		rest = rest[loc[1]:]
	}
	if rest != "" {
		spans = append(spans, Span{Text: rest})
	}
	return spans
}
