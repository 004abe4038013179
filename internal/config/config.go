// Package config provides YAML-based configuration loading for the colors
// CLI and picker, with embedded defaults and named sort presets.
package config

import (
	"fmt"

	"github.com/vovakirdan/namedcolors/internal/colors"
)

// Config contains all configuration for the colors tool.
type Config struct {
	Picker PickerConfig `yaml:"picker"`
	Output OutputConfig `yaml:"output"`
}

// PickerConfig defines the initial state of the interactive picker and
// the default query used by the list command.
type PickerConfig struct {
	Section     string   `yaml:"section"`       // Initial section, empty = first
	Preset      string   `yaml:"preset"`        // Sort preset name, used when Sort is empty
	Sort        []string `yaml:"sort"`          // Explicit sort keys
	MinCSSLevel int      `yaml:"min_css_level"` // 0 or 1 = all colors
	ShowAliases bool     `yaml:"show_aliases"`
	Theme       string   `yaml:"theme"` // "default" or "monochrome"
}

// OutputConfig defines how the list command writes colors.
type OutputConfig struct {
	Format      string `yaml:"format"` // Registered formatter ID
	Color       bool   `yaml:"color"`  // Render swatches with ANSI colors
	SwatchWidth int    `yaml:"swatch_width"`
}

// Themes known to the picker.
var Themes = []string{"default", "monochrome"}

// SortKeys resolves the configured sort order.
// Explicit keys win over the preset; with neither set the catalog order
// is kept and nil is returned.
func (c PickerConfig) SortKeys() ([]colors.SortKey, error) {
	if len(c.Sort) > 0 {
		keys, err := colors.ParseSortKeys(c.Sort)
		if err != nil {
			return nil, fmt.Errorf("config: picker.sort: %w", err)
		}
		return keys, nil
	}
	if c.Preset == "" {
		return nil, nil
	}
	keys, ok := KeysForPreset(SortPreset(c.Preset))
	if !ok {
		return nil, fmt.Errorf("config: picker.preset: unknown preset %q", c.Preset)
	}
	return keys, nil
}

// Validate checks the configuration for values the tool cannot use.
func (c Config) Validate() error {
	if _, err := c.Picker.SortKeys(); err != nil {
		return err
	}
	if c.Picker.MinCSSLevel < 0 || c.Picker.MinCSSLevel > 4 {
		return fmt.Errorf("config: picker.min_css_level must be 0-4, got %d", c.Picker.MinCSSLevel)
	}
	if c.Picker.Section != "" {
		if _, ok := colors.AllByCategory().Get(c.Picker.Section); !ok {
			return fmt.Errorf("config: picker.section: unknown section %q", c.Picker.Section)
		}
	}
	if c.Picker.Theme != "" && !validTheme(c.Picker.Theme) {
		return fmt.Errorf("config: picker.theme: unknown theme %q", c.Picker.Theme)
	}
	if c.Output.SwatchWidth < 0 || c.Output.SwatchWidth > 16 {
		return fmt.Errorf("config: output.swatch_width must be 0-16, got %d", c.Output.SwatchWidth)
	}
	return nil
}

func validTheme(name string) bool {
	for _, t := range Themes {
		if t == name {
			return true
		}
	}
	return false
}
