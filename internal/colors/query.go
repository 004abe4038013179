package colors

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidSortKey is returned for an unknown sort key or an empty key list.
var ErrInvalidSortKey = errors.New("invalid sort key")

// Group is the list of colors belonging to one section.
type Group struct {
	Section string
	Colors  []Color
}

// Groups is an ordered list of sections, in order of first appearance.
type Groups []Group

// Get returns the colors of the named section.
func (gs Groups) Get(section string) ([]Color, bool) {
	for _, g := range gs {
		if g.Section == section {
			return g.Colors, true
		}
	}
	return nil, false
}

// Sections returns the section names in order.
func (gs Groups) Sections() []string {
	names := make([]string, len(gs))
	for i, g := range gs {
		names[i] = g.Section
	}
	return names
}

// Map returns the grouping as a map keyed by section name.
// The map loses section order; use Sections for that.
func (gs Groups) Map() map[string][]Color {
	m := make(map[string][]Color, len(gs))
	for _, g := range gs {
		m[g.Section] = g.Colors
	}
	return m
}

// AllByCategory groups the catalog by section.
// Every call returns fresh slices that the caller may modify.
func AllByCategory() Groups {
	return GroupBySection(catalog)
}

// GroupBySection groups colors by section, keeping the order in which
// sections first appear and the input order within each section.
func GroupBySection(colors []Color) Groups {
	var groups Groups
	index := make(map[string]int)
	for _, c := range colors {
		i, ok := index[c.section]
		if !ok {
			i = len(groups)
			index[c.section] = i
			groups = append(groups, Group{Section: c.section})
		}
		groups[i].Colors = append(groups[i].Colors, c)
	}
	return groups
}

// SortKey selects the color attribute used for sorting.
type SortKey uint8

const (
	KeyName SortKey = iota
	KeyHue
	KeySaturation
	KeyLightness
	KeyRed
	KeyGreen
	KeyBlue
	keyCount // Sentinel value for iteration
)

// String returns the string representation of a sort key.
func (k SortKey) String() string {
	switch k {
	case KeyName:
		return "name"
	case KeyHue:
		return "hue"
	case KeySaturation:
		return "saturation"
	case KeyLightness:
		return "lightness"
	case KeyRed:
		return "red"
	case KeyGreen:
		return "green"
	case KeyBlue:
		return "blue"
	default:
		return "unknown"
	}
}

// Valid reports whether k is a known key.
func (k SortKey) Valid() bool {
	return k < keyCount
}

// AllSortKeys returns every valid sort key.
func AllSortKeys() []SortKey {
	keys := make([]SortKey, 0, keyCount)
	for k := SortKey(0); k < keyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}

// ParseSortKey converts a key name such as "hue" to a SortKey.
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name":
		return KeyName, nil
	case "hue", "h":
		return KeyHue, nil
	case "saturation", "s":
		return KeySaturation, nil
	case "lightness", "l":
		return KeyLightness, nil
	case "red", "r":
		return KeyRed, nil
	case "green", "g":
		return KeyGreen, nil
	case "blue", "b":
		return KeyBlue, nil
	default:
		return 0, fmt.Errorf("colors: %q: %w", s, ErrInvalidSortKey)
	}
}

// ParseSortKeys converts a list of key names. An empty list is an error.
func ParseSortKeys(names []string) ([]SortKey, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("colors: no sort keys: %w", ErrInvalidSortKey)
	}
	keys := make([]SortKey, len(names))
	for i, n := range names {
		k, err := ParseSortKey(n)
		if err != nil {
			return nil, err
		}
		keys[i] = k
	}
	return keys, nil
}

// compareBy orders a and b on a single key.
func compareBy(k SortKey, a, b Color) int {
	switch k {
	case KeyName:
		return strings.Compare(a.name, b.name)
	case KeyHue:
		return cmp.Compare(a.hue, b.hue)
	case KeySaturation:
		return cmp.Compare(a.saturation, b.saturation)
	case KeyLightness:
		return cmp.Compare(a.lightness, b.lightness)
	case KeyRed:
		return cmp.Compare(a.red, b.red)
	case KeyGreen:
		return cmp.Compare(a.green, b.green)
	case KeyBlue:
		return cmp.Compare(a.blue, b.blue)
	}
	return 0
}

// SortBy returns a copy of colors sorted ascending by key, then by each of
// keys in turn. The sort is stable and the input slice is left untouched.
//
// Names compare byte-wise (case-sensitive), not locale-aware.
func SortBy(colors []Color, key SortKey, keys ...SortKey) ([]Color, error) {
	all := append([]SortKey{key}, keys...)
	for _, k := range all {
		if !k.Valid() {
			return nil, fmt.Errorf("colors: key %d: %w", k, ErrInvalidSortKey)
		}
	}

	out := slices.Clone(colors)
	slices.SortStableFunc(out, func(a, b Color) int {
		for _, k := range all {
			if c := compareBy(k, a, b); c != 0 {
				return c
			}
		}
		return 0
	})
	return out, nil
}

// SortByKeys is SortBy with the keys given as a slice.
func SortByKeys(colors []Color, keys []SortKey) ([]Color, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("colors: no sort keys: %w", ErrInvalidSortKey)
	}
	return SortBy(colors, keys[0], keys[1:]...)
}

// FilterByMinCSSLevel returns the colors whose minimum CSS level is at
// least level, in input order.
func FilterByMinCSSLevel(colors []Color, level int) []Color {
	out := make([]Color, 0, len(colors))
	for _, c := range colors {
		if c.minCSSLevel >= level {
			out = append(out, c)
		}
	}
	return out
}
