package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/mithrel/cardstock/internal/export"
	"github.com/mithrel/cardstock/internal/transform"
	"github.com/mithrel/cardstock/pkg/models"
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <card.md>",
		Short: "Render a card file in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			card, err := export.ReadMarkdown(args[0])
			if err != nil {
				return err
			}
			return writePrettyCard(cmd.OutOrStdout(), card)
		},
	}
	return cmd
}

// writePrettyCard renders both card sides with glamour.
func writePrettyCard(w io.Writer, c models.Card) error {
	front := transform.Extract(c.Front)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", front.Title)
	if front.Tags != "" {
		fmt.Fprintf(&b, "> **Tags:** %s\n\n", front.Tags)
	}
	fmt.Fprintf(&b, "---\n\n%s\n", strings.TrimSpace(front.Body))

	if c.HasBack() {
		back := transform.Extract(c.Back)
		b.WriteString("\n## Back Side\n\n")
		if back.Title != models.DefaultTitle {
			fmt.Fprintf(&b, "**%s**\n\n", back.Title)
		}
		if back.Tags != "" {
			fmt.Fprintf(&b, "> **Tags:** %s\n\n", back.Tags)
		}
		fmt.Fprintf(&b, "%s\n", strings.TrimSpace(back.Body))
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dracula"),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	out, err := r.Render(b.String())
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}

	_, err = io.WriteString(w, out)
	return err
}
