package config

import (
	_ "embed"
)

//go:embed defaults/colors.yaml
var defaultYAML []byte

// Default returns the default configuration.
func Default() Config {
	return Config{
		Picker: PickerConfig{
			Preset:      string(PresetCatalog),
			ShowAliases: true,
			Theme:       "default",
		},
		Output: OutputConfig{
			Format:      "text",
			Color:       true,
			SwatchWidth: 4,
		},
	}
}
