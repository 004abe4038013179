// Package colors provides the catalog of CSS named colors together with
// their derived RGB and HSL components, and helpers to group, sort and
// filter color lists.
//
// The catalog is built once at package init and never modified afterwards,
// so it is safe to read from multiple goroutines without locking.
package colors

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// DefaultMinCSSLevel is the CSS level assigned when none is given.
const DefaultMinCSSLevel = 3

var (
	// ErrInvalidColorFormat is returned when a hex value is not #RRGGBB.
	ErrInvalidColorFormat = errors.New("invalid color format")

	// ErrInvalidCSSLevel is returned for a CSS level outside 1..4.
	ErrInvalidCSSLevel = errors.New("invalid CSS level")
)

// Color is a named color. All derived components are computed from the hex
// value at construction time; a Color has no setters.
type Color struct {
	name        string
	alias       string
	section     string
	minCSSLevel int
	hex         string

	red, green, blue           int
	hue, saturation, lightness int
}

// Option configures optional Color attributes.
type Option func(*options)

type options struct {
	minCSSLevel int
	hasLevel    bool
	alias       string
}

// WithMinCSSLevel sets the minimum CSS level (1-4) that defines the color.
func WithMinCSSLevel(level int) Option {
	return func(o *options) {
		o.minCSSLevel = level
		o.hasLevel = true
	}
}

// WithAlias sets an alternate accepted name, e.g. "Cyan" for "Aqua".
func WithAlias(alias string) Option {
	return func(o *options) {
		o.alias = alias
	}
}

// New creates a color from a #RRGGBB hex value.
func New(name, section, hex string, opts ...Option) (Color, error) {
	o := options{minCSSLevel: DefaultMinCSSLevel}
	for _, opt := range opts {
		opt(&o)
	}
	if o.hasLevel && (o.minCSSLevel < 1 || o.minCSSLevel > 4) {
		return Color{}, fmt.Errorf("colors: %s: level %d: %w", name, o.minCSSLevel, ErrInvalidCSSLevel)
	}

	rgb, err := parseHex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("colors: %s: %q: %w", name, hex, err)
	}

	c := Color{
		name:        name,
		alias:       o.alias,
		section:     section,
		minCSSLevel: o.minCSSLevel,
		hex:         hex,
		red:         int(rgb>>16) & 0xff,
		green:       int(rgb>>8) & 0xff,
		blue:        int(rgb) & 0xff,
	}
	c.hue, c.saturation, c.lightness = rgbToHSL(c.red, c.green, c.blue)
	return c, nil
}

// MustNew is like New but panics on error.
// Intended for package-level color tables.
func MustNew(name, section, hex string, opts ...Option) Color {
	c, err := New(name, section, hex, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// parseHex converts "#RRGGBB" to a 24-bit integer.
func parseHex(hex string) (uint32, error) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, ErrInvalidColorFormat
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 0, ErrInvalidColorFormat
	}
	return uint32(v), nil
}

// rgbToHSL converts 8-bit channels to hue in degrees and saturation and
// lightness in percent, each rounded to the nearest integer.
func rgbToHSL(red, green, blue int) (hue, saturation, lightness int) {
	r := float64(red) / 255
	g := float64(green) / 255
	b := float64(blue) / 255

	maxC := max(r, g, b)
	minC := min(r, g, b)
	l := (maxC + minC) / 2

	var h, s float64
	if maxC != minC {
		d := maxC - minC
		if l > 0.5 {
			s = d / (2 - maxC - minC)
		} else {
			s = d / (maxC + minC)
		}

		switch maxC {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		case b:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	hue = roundHalfUp(h * 360)
	if hue == 360 {
		hue = 0
	}
	return hue, roundHalfUp(s * 100), roundHalfUp(l * 100)
}

// roundHalfUp rounds x.5 towards positive infinity.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// Name returns the display name, e.g. "Coral".
func (c Color) Name() string { return c.name }

// Alias returns the alternate name, or "" if the color has none.
func (c Color) Alias() string { return c.alias }

// HasAlias reports whether the color has an alternate name.
func (c Color) HasAlias() bool { return c.alias != "" }

// Section returns the category the color belongs to.
func (c Color) Section() string { return c.section }

// MinCSSLevel returns the first CSS level that defines the color name.
func (c Color) MinCSSLevel() int { return c.minCSSLevel }

// Hex returns the #RRGGBB value the color was built from.
func (c Color) Hex() string { return c.hex }

func (c Color) Red() int        { return c.red }
func (c Color) Green() int      { return c.green }
func (c Color) Blue() int       { return c.blue }
func (c Color) Hue() int        { return c.hue }
func (c Color) Saturation() int { return c.saturation }
func (c Color) Lightness() int  { return c.lightness }

// RGB returns the red, green and blue channels (0-255).
func (c Color) RGB() (r, g, b int) {
	return c.red, c.green, c.blue
}

// HSL returns hue (0-359), saturation (0-100) and lightness (0-100).
func (c Color) HSL() (h, s, l int) {
	return c.hue, c.saturation, c.lightness
}

// String returns the color name.
func (c Color) String() string {
	return c.name
}
