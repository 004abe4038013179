// Package formats holds the record shape shared by the structured output
// formatters. Formatters live in subpackages and register themselves with
// the registry package in init().
package formats

import "github.com/vovakirdan/namedcolors/internal/colors"

// Record is the serialized form of a color.
type Record struct {
	Name        string `json:"name" yaml:"name"`
	Alias       string `json:"alias,omitempty" yaml:"alias,omitempty"`
	Section     string `json:"section" yaml:"section"`
	Hex         string `json:"hex" yaml:"hex"`
	MinCSSLevel int    `json:"minCssLevel" yaml:"min_css_level"`
	RGB         RGB    `json:"rgb" yaml:"rgb"`
	HSL         HSL    `json:"hsl" yaml:"hsl"`
}

// RGB holds 8-bit channels.
type RGB struct {
	Red   int `json:"red" yaml:"red"`
	Green int `json:"green" yaml:"green"`
	Blue  int `json:"blue" yaml:"blue"`
}

// HSL holds hue in degrees and saturation and lightness in percent.
type HSL struct {
	Hue        int `json:"hue" yaml:"hue"`
	Saturation int `json:"saturation" yaml:"saturation"`
	Lightness  int `json:"lightness" yaml:"lightness"`
}

// NewRecord converts a color. The alias is dropped unless withAlias is set.
func NewRecord(c colors.Color, withAlias bool) Record {
	r := Record{
		Name:        c.Name(),
		Section:     c.Section(),
		Hex:         c.Hex(),
		MinCSSLevel: c.MinCSSLevel(),
		RGB:         RGB{Red: c.Red(), Green: c.Green(), Blue: c.Blue()},
		HSL:         HSL{Hue: c.Hue(), Saturation: c.Saturation(), Lightness: c.Lightness()},
	}
	if withAlias {
		r.Alias = c.Alias()
	}
	return r
}

// Records converts a list of colors in order.
func Records(cs []colors.Color, withAlias bool) []Record {
	out := make([]Record, len(cs))
	for i, c := range cs {
		out[i] = NewRecord(c, withAlias)
	}
	return out
}
