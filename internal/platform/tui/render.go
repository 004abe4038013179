package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/namedcolors/internal/colors"
)

// swatchLabelThreshold is the lightness above which swatch labels are dark.
const swatchLabelThreshold = 60

// swatchStyle returns a style that fills cells with the color and picks a
// readable label color from its lightness.
func swatchStyle(c colors.Color) lipgloss.Style {
	fg := lipgloss.Color("#FFFFFF")
	if c.Lightness() > swatchLabelThreshold {
		fg = lipgloss.Color("#000000")
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(fg)
}

// renderSwatch draws a width x height block of the color with its hex
// value centered on the middle line.
func renderSwatch(c colors.Color, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := make([]string, height)
	for i := range lines {
		text := ""
		if i == height/2 {
			text = c.Hex()
		}
		lines[i] = centerText(text, width)
		lines[i] = runewidth.FillRight(lines[i], width)
	}
	return swatchStyle(c).Render(strings.Join(lines, "\n"))
}

// rgbText formats the RGB channels for the table.
func rgbText(c colors.Color) string {
	return fmt.Sprintf("%3d %3d %3d", c.Red(), c.Green(), c.Blue())
}

// hslText formats the HSL components for the table.
func hslText(c colors.Color) string {
	return fmt.Sprintf("%3d° %3d%% %3d%%", c.Hue(), c.Saturation(), c.Lightness())
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := runewidth.StringWidth(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// truncate shortens text to width cells, marking the cut with ".".
func truncate(text string, width int) string {
	if runewidth.StringWidth(text) <= width {
		return text
	}
	return runewidth.Truncate(text, width, ".")
}
