package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mithrel/cardstock/internal/export"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a saved card file without opening the editor",
	}
	cmd.AddCommand(newExportPDFCmd())
	cmd.AddCommand(newExportMarkdownCmd())
	return cmd
}

func newExportPDFCmd() *cobra.Command {
	var out string
	var open bool
	cmd := &cobra.Command{
		Use:   "pdf <card.md>",
		Short: "Render a card file to PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp(cmd)
			card, err := export.ReadMarkdown(args[0])
			if err != nil {
				return err
			}
			if out == "" {
				out = replaceExt(args[0], ".pdf")
			}
			if err := export.WritePDF(out, card, a.settings); err != nil {
				a.log.ExportError("pdf", out, err)
				return err
			}
			if open {
				// Viewer problems should not fail the export.
				_ = export.OpenInViewer(out)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output path (defaults to <card>.pdf)")
	cmd.Flags().BoolVar(&open, "open", false, "open the PDF in the platform viewer")
	return cmd
}

func newExportMarkdownCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "markdown <card.md>",
		Short: "Rewrite a card file in the canonical layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp(cmd)
			card, err := export.ReadMarkdown(args[0])
			if err != nil {
				return err
			}
			if out == "" {
				out = replaceExt(args[0], ".out.md")
			}
			if err := export.WriteMarkdown(out, card); err != nil {
				a.log.ExportError("markdown", out, err)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output path (defaults to <card>.out.md)")
	return cmd
}

func replaceExt(path, ext string) string {
	if i := strings.LastIndex(path, "."); i > strings.LastIndexByte(path, '/') {
		return path[:i] + ext
	}
	return path + ext
}
