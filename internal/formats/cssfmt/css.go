// Package cssfmt writes colors as CSS custom properties.
package cssfmt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/vovakirdan/namedcolors/internal/colors"
	"github.com/vovakirdan/namedcolors/internal/registry"
)

func init() {
	registry.Register("css", New)
}

// Formatter implements registry.Formatter for CSS.
type Formatter struct{}

// New creates a CSS formatter.
func New() registry.Formatter {
	return Formatter{}
}

func (Formatter) ID() string    { return "css" }
func (Formatter) Title() string { return "CSS custom properties in a :root block" }

// Format writes a :root block with one --color-<name> property per color.
// Aliases get their own property pointing at the canonical one.
func (Formatter) Format(w io.Writer, cs []colors.Color, opts registry.Options) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, ":root {")
	for _, c := range cs {
		prop := PropertyName(c.Name())
		fmt.Fprintf(bw, "  %s: %s;\n", prop, c.Hex())
		if opts.ShowAliases && c.HasAlias() {
			fmt.Fprintf(bw, "  %s: var(%s);\n", PropertyName(c.Alias()), prop)
		}
	}
	fmt.Fprintln(bw, "}")
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("cssfmt: %w", err)
	}
	return nil
}

// PropertyName converts a CamelCase color name to a kebab-case custom
// property, e.g. "LightSeaGreen" -> "--color-light-sea-green".
func PropertyName(name string) string {
	var b strings.Builder
	b.WriteString("--color-")
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
