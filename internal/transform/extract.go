// Package transform turns raw card text into renderer-ready content.
// It extracts the title and tags lines and converts a constrained
// markdown subset (bold, italic, inline code, "- " bullets) into either
// plain text for the terminal preview or styled spans for the PDF
// layout. Substitution is regex-based and non-recursive; nested or
// escaped markdown is out of scope and non-matching input passes
// through untouched.
package transform

import (
	"regexp"
	"strings"

	"github.com/mithrel/cardstock/pkg/models"
)

var (
	titleRe  = regexp.MustCompile(`(?m)^# (.+)$`)
	tagsRe   = regexp.MustCompile(`(?m)^Tags: (.+)$`)
	blanksRe = regexp.MustCompile(`\n{3,}`)
)

// Content is the extracted form of one card side.
type Content struct {
	Title string // first "# " heading, or models.DefaultTitle
	Tags  string // first "Tags: " line, or empty
	Body  string // remaining text, blank runs collapsed
}

// Title returns the content of the first "# " heading line, or the
// default title when none exists. Used as the deck's title function.
func Title(raw string) string {
	if m := titleRe.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	return models.DefaultTitle
}

// Tags returns the content of the first "Tags: " line, or "".
func Tags(raw string) string {
	if m := tagsRe.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// Extract splits raw card text into title, tags and body. The matched
// title and tags lines are removed from the body and runs of three or
// more newlines collapse to a single blank line.
func Extract(raw string) Content {
	c := Content{Title: models.DefaultTitle}

	body := raw
	if m := titleRe.FindStringSubmatch(body); m != nil {
		c.Title = strings.TrimSpace(m[1])
		body = removeFirstMatch(body, titleRe)
	}
	if m := tagsRe.FindStringSubmatch(body); m != nil {
		c.Tags = strings.TrimSpace(m[1])
		body = removeFirstMatch(body, tagsRe)
	}

	body = blanksRe.ReplaceAllString(body, "\n\n")
	c.Body = strings.TrimSpace(body)
	return c
}

// removeFirstMatch deletes the first line matching re.
func removeFirstMatch(s string, re *regexp.Regexp) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + s[loc[1]:]
}
