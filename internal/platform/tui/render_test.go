package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/namedcolors/internal/colors"
)

func TestCenterText(t *testing.T) {
	tests := []struct {
		text     string
		width    int
		expected string
	}{
		{"ab", 6, "  ab"},
		{"abc", 6, " abc"},
		{"toolong", 4, "toolong"},
	}

	for _, tc := range tests {
		if got := centerText(tc.text, tc.width); got != tc.expected {
			t.Errorf("centerText(%q, %d) = %q, expected %q", tc.text, tc.width, got, tc.expected)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("Purples & Pinks", 10); got != "Purples &." {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("Grays", 10); got != "Grays" {
		t.Errorf("truncate = %q", got)
	}
}

func TestRenderSwatch(t *testing.T) {
	c, _ := colors.Lookup("Navy")
	out := renderSwatch(c, 10, 3)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for _, l := range lines {
		if lipgloss.Width(l) != 10 {
			t.Errorf("line width = %d, expected 10", lipgloss.Width(l))
		}
	}
	if !strings.Contains(lines[1], "#000080") {
		t.Errorf("middle line should carry the hex value: %q", lines[1])
	}
	if renderSwatch(c, 0, 3) != "" {
		t.Error("zero width swatch should be empty")
	}
}

func TestTableText(t *testing.T) {
	c := colors.MustNew("Test", "Test", "#ff0b21")
	if got := rgbText(c); got != "255  11  33" {
		t.Errorf("rgbText = %q", got)
	}
	if got := hslText(c); got != "355° 100%  52%" {
		t.Errorf("hslText = %q", got)
	}
}

func TestThemeByName(t *testing.T) {
	if !ThemeByName("monochrome").TableSelected.GetReverse() {
		t.Error("monochrome theme should use reverse video for the selection")
	}
	for _, name := range []string{"", "default"} {
		if ThemeByName(name).TableSelected.GetReverse() {
			t.Errorf("ThemeByName(%q) returned the monochrome theme", name)
		}
	}
}
