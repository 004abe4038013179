package config

import "github.com/vovakirdan/namedcolors/internal/colors"

// SortPreset represents a named sort order.
type SortPreset string

const (
	PresetCatalog      SortPreset = "catalog"
	PresetRainbow      SortPreset = "rainbow"
	PresetAlphabetical SortPreset = "alphabetical"
	PresetRGB          SortPreset = "rgb"
	PresetLightness    SortPreset = "lightness"
)

// Presets lists the presets in cycling order.
var Presets = []SortPreset{
	PresetCatalog,
	PresetRainbow,
	PresetAlphabetical,
	PresetRGB,
	PresetLightness,
}

// KeysForPreset returns the sort keys for a preset.
// PresetCatalog keeps catalog order and returns no keys.
func KeysForPreset(preset SortPreset) ([]colors.SortKey, bool) {
	switch preset {
	case PresetCatalog:
		return nil, true
	case PresetRainbow:
		return []colors.SortKey{colors.KeyHue, colors.KeySaturation, colors.KeyLightness}, true
	case PresetAlphabetical:
		return []colors.SortKey{colors.KeyName}, true
	case PresetRGB:
		return []colors.SortKey{colors.KeyRed, colors.KeyGreen, colors.KeyBlue}, true
	case PresetLightness:
		return []colors.SortKey{colors.KeyLightness, colors.KeyHue}, true
	default:
		return nil, false
	}
}

// NextPreset returns the preset after p, wrapping around.
// Unknown presets restart the cycle.
func NextPreset(p SortPreset) SortPreset {
	for i, preset := range Presets {
		if preset == p {
			return Presets[(i+1)%len(Presets)]
		}
	}
	return Presets[0]
}
