package colors

import "strings"

// Section names, in catalog order.
const (
	SectionRedsOranges  = "Reds & Oranges"
	SectionYellows      = "Yellows"
	SectionGreens       = "Greens"
	SectionCyans        = "Cyans"
	SectionBlues        = "Blues"
	SectionPurplesPinks = "Purples & Pinks"
	SectionGrays        = "Grays"
	SectionWhites       = "Whites"
	SectionBrowns       = "Browns"
)

// catalog holds every named color, grouped contiguously by section.
// It is never modified after initialization.
var catalog = []Color{
	// Reds & Oranges
	MustNew("LightSalmon", SectionRedsOranges, "#FFA07A"),
	MustNew("DarkSalmon", SectionRedsOranges, "#E9967A"),
	MustNew("Salmon", SectionRedsOranges, "#FA8072"),
	MustNew("LightCoral", SectionRedsOranges, "#F08080"),
	MustNew("IndianRed", SectionRedsOranges, "#CD5C5C"),
	MustNew("Coral", SectionRedsOranges, "#FF7F50"),
	MustNew("Orange", SectionRedsOranges, "#FFA500", WithMinCSSLevel(2)),
	MustNew("DarkOrange", SectionRedsOranges, "#FF8C00"),
	MustNew("Tomato", SectionRedsOranges, "#FF6347"),
	MustNew("OrangeRed", SectionRedsOranges, "#FF4500"),
	MustNew("Red", SectionRedsOranges, "#FF0000", WithMinCSSLevel(1)),
	MustNew("Crimson", SectionRedsOranges, "#DC143C"),
	MustNew("Firebrick", SectionRedsOranges, "#B22222"),
	MustNew("DarkRed", SectionRedsOranges, "#8B0000"),
	MustNew("Maroon", SectionRedsOranges, "#800000", WithMinCSSLevel(1)),

	// Yellows
	MustNew("LightYellow", SectionYellows, "#FFFFE0"),
	MustNew("LemonChiffon", SectionYellows, "#FFFACD"),
	MustNew("LightGoldenrodYellow", SectionYellows, "#FAFAD2"),
	MustNew("PapayaWhip", SectionYellows, "#FFEFD5"),
	MustNew("Moccasin", SectionYellows, "#FFE4B5"),
	MustNew("PaleGoldenrod", SectionYellows, "#EEE8AA"),
	MustNew("Yellow", SectionYellows, "#FFFF00", WithMinCSSLevel(1)),
	MustNew("PeachPuff", SectionYellows, "#FFDAB9"),
	MustNew("Khaki", SectionYellows, "#F0E68C"),
	MustNew("DarkKhaki", SectionYellows, "#BDB76B"),
	MustNew("Gold", SectionYellows, "#FFD700"),

	// Greens
	MustNew("PaleGreen", SectionGreens, "#98FB98"),
	MustNew("GreenYellow", SectionGreens, "#ADFF2F"),
	MustNew("LightGreen", SectionGreens, "#90EE90"),
	MustNew("Chartreuse", SectionGreens, "#7FFF00"),
	MustNew("LawnGreen", SectionGreens, "#7CFC00"),
	MustNew("YellowGreen", SectionGreens, "#9ACD32"),
	MustNew("MediumAquamarine", SectionGreens, "#66CDAA"),
	MustNew("DarkSeaGreen", SectionGreens, "#8FBC8F"),
	MustNew("MediumSpringGreen", SectionGreens, "#00FA9A"),
	MustNew("SpringGreen", SectionGreens, "#00FF7F"),
	MustNew("Lime", SectionGreens, "#00FF00", WithMinCSSLevel(1)),
	MustNew("LimeGreen", SectionGreens, "#32CD32"),
	MustNew("MediumSeaGreen", SectionGreens, "#3CB371"),
	MustNew("OliveDrab", SectionGreens, "#6B8E23"),
	MustNew("Olive", SectionGreens, "#808000", WithMinCSSLevel(1)),
	MustNew("SeaGreen", SectionGreens, "#2E8B57"),
	MustNew("ForestGreen", SectionGreens, "#228B22"),
	MustNew("DarkOliveGreen", SectionGreens, "#556B2F"),
	MustNew("Green", SectionGreens, "#008000", WithMinCSSLevel(1)),
	MustNew("DarkGreen", SectionGreens, "#006400"),

	// Cyans
	MustNew("LightCyan", SectionCyans, "#E0FFFF"),
	MustNew("PaleTurquoise", SectionCyans, "#AFEEEE"),
	MustNew("Aquamarine", SectionCyans, "#7FFFD4"),
	MustNew("Aqua", SectionCyans, "#00FFFF", WithMinCSSLevel(1), WithAlias("Cyan")),
	MustNew("Turquoise", SectionCyans, "#40E0D0"),
	MustNew("MediumTurquoise", SectionCyans, "#48D1CC"),
	MustNew("DarkTurquoise", SectionCyans, "#00CED1"),
	MustNew("CadetBlue", SectionCyans, "#5F9EA0"),
	MustNew("LightSeaGreen", SectionCyans, "#20B2AA"),
	MustNew("DarkCyan", SectionCyans, "#008B8B"),
	MustNew("Teal", SectionCyans, "#008080", WithMinCSSLevel(1)),

	// Blues
	MustNew("PowderBlue", SectionBlues, "#B0E0E6"),
	MustNew("LightBlue", SectionBlues, "#ADD8E6"),
	MustNew("LightSteelBlue", SectionBlues, "#B0C4DE"),
	MustNew("LightSkyBlue", SectionBlues, "#87CEFA"),
	MustNew("SkyBlue", SectionBlues, "#87CEEB"),
	MustNew("CornflowerBlue", SectionBlues, "#6495ED"),
	MustNew("DeepSkyBlue", SectionBlues, "#00BFFF"),
	MustNew("DodgerBlue", SectionBlues, "#1E90FF"),
	MustNew("SteelBlue", SectionBlues, "#4682B4"),
	MustNew("RoyalBlue", SectionBlues, "#4169E1"),
	MustNew("Blue", SectionBlues, "#0000FF", WithMinCSSLevel(1)),
	MustNew("MediumBlue", SectionBlues, "#0000CD"),
	MustNew("DarkBlue", SectionBlues, "#00008B"),
	MustNew("Navy", SectionBlues, "#000080", WithMinCSSLevel(1)),
	MustNew("MidnightBlue", SectionBlues, "#191970"),

	// Purples & Pinks
	MustNew("Lavender", SectionPurplesPinks, "#E6E6FA"),
	MustNew("Thistle", SectionPurplesPinks, "#D8BFD8"),
	MustNew("Pink", SectionPurplesPinks, "#FFC0CB"),
	MustNew("LightPink", SectionPurplesPinks, "#FFB6C1"),
	MustNew("Plum", SectionPurplesPinks, "#DDA0DD"),
	MustNew("Violet", SectionPurplesPinks, "#EE82EE"),
	MustNew("Orchid", SectionPurplesPinks, "#DA70D6"),
	MustNew("HotPink", SectionPurplesPinks, "#FF69B4"),
	MustNew("MediumOrchid", SectionPurplesPinks, "#BA55D3"),
	MustNew("PaleVioletRed", SectionPurplesPinks, "#DB7093"),
	MustNew("MediumPurple", SectionPurplesPinks, "#9370DB"),
	MustNew("MediumSlateBlue", SectionPurplesPinks, "#7B68EE"),
	MustNew("SlateBlue", SectionPurplesPinks, "#6A5ACD"),
	MustNew("DeepPink", SectionPurplesPinks, "#FF1493"),
	MustNew("Fuchsia", SectionPurplesPinks, "#FF00FF", WithMinCSSLevel(1), WithAlias("Magenta")),
	MustNew("DarkOrchid", SectionPurplesPinks, "#9932CC"),
	MustNew("BlueViolet", SectionPurplesPinks, "#8A2BE2"),
	MustNew("RebeccaPurple", SectionPurplesPinks, "#663399", WithMinCSSLevel(4)),
	MustNew("DarkViolet", SectionPurplesPinks, "#9400D3"),
	MustNew("MediumVioletRed", SectionPurplesPinks, "#C71585"),
	MustNew("DarkMagenta", SectionPurplesPinks, "#8B008B"),
	MustNew("Purple", SectionPurplesPinks, "#800080", WithMinCSSLevel(1)),
	MustNew("DarkSlateBlue", SectionPurplesPinks, "#483D8B"),
	MustNew("Indigo", SectionPurplesPinks, "#4B0082"),

	// Grays
	MustNew("Gainsboro", SectionGrays, "#DCDCDC"),
	MustNew("LightGray", SectionGrays, "#D3D3D3", WithAlias("LightGrey")),
	MustNew("Silver", SectionGrays, "#C0C0C0", WithMinCSSLevel(1)),
	MustNew("DarkGray", SectionGrays, "#A9A9A9", WithAlias("DarkGrey")),
	MustNew("LightSlateGray", SectionGrays, "#778899", WithAlias("LightSlateGrey")),
	MustNew("Gray", SectionGrays, "#808080", WithMinCSSLevel(1), WithAlias("Grey")),
	MustNew("SlateGray", SectionGrays, "#708090", WithAlias("SlateGrey")),
	MustNew("DimGray", SectionGrays, "#696969", WithAlias("DimGrey")),
	MustNew("DarkSlateGray", SectionGrays, "#2F4F4F", WithAlias("DarkSlateGrey")),
	MustNew("Black", SectionGrays, "#000000", WithMinCSSLevel(1)),

	// Whites
	MustNew("White", SectionWhites, "#FFFFFF", WithMinCSSLevel(1)),
	MustNew("Ivory", SectionWhites, "#FFFFF0"),
	MustNew("Snow", SectionWhites, "#FFFAFA"),
	MustNew("MintCream", SectionWhites, "#F5FFFA"),
	MustNew("Azure", SectionWhites, "#F0FFFF"),
	MustNew("FloralWhite", SectionWhites, "#FFFAF0"),
	MustNew("Honeydew", SectionWhites, "#F0FFF0"),
	MustNew("GhostWhite", SectionWhites, "#F8F8FF"),
	MustNew("Seashell", SectionWhites, "#FFF5EE"),
	MustNew("AliceBlue", SectionWhites, "#F0F8FF"),
	MustNew("OldLace", SectionWhites, "#FDF5E6"),
	MustNew("LavenderBlush", SectionWhites, "#FFF0F5"),
	MustNew("WhiteSmoke", SectionWhites, "#F5F5F5"),
	MustNew("Beige", SectionWhites, "#F5F5DC"),
	MustNew("Linen", SectionWhites, "#FAF0E6"),
	MustNew("AntiqueWhite", SectionWhites, "#FAEBD7"),
	MustNew("MistyRose", SectionWhites, "#FFE4E1"),

	// Browns
	MustNew("Cornsilk", SectionBrowns, "#FFF8DC"),
	MustNew("BlanchedAlmond", SectionBrowns, "#FFEBCD"),
	MustNew("Bisque", SectionBrowns, "#FFE4C4"),
	MustNew("NavajoWhite", SectionBrowns, "#FFDEAD"),
	MustNew("Wheat", SectionBrowns, "#F5DEB3"),
	MustNew("Burlywood", SectionBrowns, "#DEB887"),
	MustNew("Tan", SectionBrowns, "#D2B48C"),
	MustNew("RosyBrown", SectionBrowns, "#BC8F8F"),
	MustNew("SandyBrown", SectionBrowns, "#F4A460"),
	MustNew("Goldenrod", SectionBrowns, "#DAA520"),
	MustNew("Peru", SectionBrowns, "#CD853F"),
	MustNew("DarkGoldenrod", SectionBrowns, "#B8860B"),
	MustNew("Chocolate", SectionBrowns, "#D2691E"),
	MustNew("Sienna", SectionBrowns, "#A0522D"),
	MustNew("SaddleBrown", SectionBrowns, "#8B4513"),
	MustNew("Brown", SectionBrowns, "#A52A2A"),
}

// byName indexes lower-cased names and aliases into catalog.
var byName = func() map[string]int {
	m := make(map[string]int, len(catalog)*2)
	for i, c := range catalog {
		m[strings.ToLower(c.name)] = i
		if c.alias != "" {
			m[strings.ToLower(c.alias)] = i
		}
	}
	return m
}()

// Catalog returns a copy of the named color catalog in catalog order.
func Catalog() []Color {
	out := make([]Color, len(catalog))
	copy(out, catalog)
	return out
}

// Len returns the number of colors in the catalog.
func Len() int {
	return len(catalog)
}

// Sections returns the section names in the order they appear in the catalog.
func Sections() []string {
	return AllByCategory().Sections()
}

// Lookup finds a catalog color by name or alias, ignoring case.
func Lookup(name string) (Color, bool) {
	i, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Color{}, false
	}
	return catalog[i], true
}
