package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// PickerTheme contains all configurable visual styles for the picker.
type PickerTheme struct {
	// Frame styles
	Title  lipgloss.Style
	Border lipgloss.Color

	// Section sidebar and tabs
	SectionItem   lipgloss.Style
	SectionActive lipgloss.Style
	SectionTab    lipgloss.Style

	// Color table
	TableHeader   lipgloss.Style
	TableSelected lipgloss.Style

	// Detail pane
	DetailName  lipgloss.Style
	DetailLabel lipgloss.Style
	DetailValue lipgloss.Style

	// Footer
	Status lipgloss.Style
	Help   lipgloss.Style
	Empty  lipgloss.Style
}

// DefaultPickerTheme returns the default visual theme.
func DefaultPickerTheme() PickerTheme {
	return PickerTheme{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		Border: lipgloss.Color("240"),

		SectionItem:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		SectionActive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		SectionTab: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1),

		TableHeader: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true).
			Padding(0, 1),
		TableSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")),

		DetailName:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		DetailLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		DetailValue: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),

		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Empty:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4),
	}
}

// MonochromePickerTheme returns a grayscale theme. Swatches keep their
// real colors; only the chrome around them is gray.
func MonochromePickerTheme() PickerTheme {
	theme := DefaultPickerTheme()
	theme.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	theme.SectionActive = lipgloss.NewStyle().Bold(true).Underline(true)
	theme.SectionTab = lipgloss.NewStyle().Bold(true).Reverse(true).Padding(0, 1)
	theme.TableSelected = lipgloss.NewStyle().Reverse(true)
	theme.Status = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	return theme
}

// ThemeByName returns a theme by its config name. Names are checked when
// the config is validated, so anything else gets the default theme.
func ThemeByName(name string) PickerTheme {
	if name == "monochrome" {
		return MonochromePickerTheme()
	}
	return DefaultPickerTheme()
}
