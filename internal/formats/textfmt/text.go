// Package textfmt writes colors as aligned text columns with optional
// terminal swatches.
package textfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/namedcolors/internal/colors"
	"github.com/vovakirdan/namedcolors/internal/registry"
)

func init() {
	registry.Register("text", New)
}

// Formatter implements registry.Formatter for terminal text.
type Formatter struct{}

// New creates a text formatter.
func New() registry.Formatter {
	return Formatter{}
}

func (Formatter) ID() string    { return "text" }
func (Formatter) Title() string { return "Aligned columns with color swatches" }

// Format writes one line per color:
//
//	<swatch>  Name  #HEX  rgb(r, g, b)  hsl(h, s%, l%)  CSS n  (alias)
//
// The swatch is only drawn when opts.Color is set and the writer supports
// colors; lipgloss strips styling for plain writers.
func (Formatter) Format(w io.Writer, cs []colors.Color, opts registry.Options) error {
	renderer := lipgloss.NewRenderer(w)

	nameWidth := 0
	for _, c := range cs {
		nameWidth = max(nameWidth, runewidth.StringWidth(c.Name()))
	}

	for _, c := range cs {
		var b strings.Builder
		if opts.Color && opts.SwatchWidth > 0 {
			b.WriteString(Swatch(renderer, c, opts.SwatchWidth))
			b.WriteString("  ")
		}
		b.WriteString(runewidth.FillRight(c.Name(), nameWidth))
		fmt.Fprintf(&b, "  %s  %-18s  %-20s  CSS %d", c.Hex(), RGBString(c), HSLString(c), c.MinCSSLevel())
		if opts.ShowAliases && c.HasAlias() {
			fmt.Fprintf(&b, "  (%s)", c.Alias())
		}
		b.WriteByte('\n')

		if _, err := io.WriteString(w, b.String()); err != nil {
			return fmt.Errorf("textfmt: %w", err)
		}
	}
	return nil
}

// Swatch renders width cells filled with the color.
func Swatch(r *lipgloss.Renderer, c colors.Color, width int) string {
	return r.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Render(strings.Repeat(" ", width))
}

// RGBString formats the channels as a CSS rgb() value.
func RGBString(c colors.Color) string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.Red(), c.Green(), c.Blue())
}

// HSLString formats the components as a CSS hsl() value.
func HSLString(c colors.Color) string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.Hue(), c.Saturation(), c.Lightness())
}
