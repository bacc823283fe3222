package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mithrel/cardstock/internal/config"
	"github.com/mithrel/cardstock/pkg/models"
)

func TestWritePDFFrontAndBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.pdf")
	require.NoError(t, WritePDF(path, sampleCard(), config.DefaultSettings()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "%PDF-"), "not a PDF header")

	// Two pages: front plus non-empty back.
	require.Contains(t, string(data), "/Count 2")
}

func TestWritePDFFrontOnlyHasOnePage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.pdf")
	c := models.Card{Front: "# Solo\n\nfront only", Title: "Solo"}
	require.NoError(t, WritePDF(path, c, config.DefaultSettings()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "/Count 1")
}

func TestWritePDFPageSizeFollowsOrientation(t *testing.T) {
	s := config.DefaultSettings() // 3x5 portrait: 3in wide, 5in tall

	portrait := filepath.Join(t.TempDir(), "p.pdf")
	require.NoError(t, WritePDF(portrait, sampleCard(), s))
	data, err := os.ReadFile(portrait)
	require.NoError(t, err)
	// 3in x 5in in points.
	require.Contains(t, string(data), "216.00 360.00")

	s.Orientation = models.Landscape
	landscape := filepath.Join(t.TempDir(), "l.pdf")
	require.NoError(t, WritePDF(landscape, sampleCard(), s))
	data, err = os.ReadFile(landscape)
	require.NoError(t, err)
	require.Contains(t, string(data), "360.00 216.00")
}

func TestWritePDFDarkTheme(t *testing.T) {
	s := config.DefaultSettings()
	s.Theme = models.ThemeDark
	s.ShowSideIndicator = true

	path := filepath.Join(t.TempDir(), "dark.pdf")
	require.NoError(t, WritePDF(path, sampleCard(), s))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}

func TestWritePDFBadPath(t *testing.T) {
	err := WritePDF(filepath.Join(t.TempDir(), "missing", "card.pdf"), sampleCard(), config.DefaultSettings())
	require.Error(t, err)
}
