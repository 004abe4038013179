// Package jsonfmt writes colors as an indented JSON array.
package jsonfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vovakirdan/namedcolors/internal/colors"
	"github.com/vovakirdan/namedcolors/internal/formats"
	"github.com/vovakirdan/namedcolors/internal/registry"
)

func init() {
	registry.Register("json", New)
}

// Formatter implements registry.Formatter for JSON.
type Formatter struct{}

// New creates a JSON formatter.
func New() registry.Formatter {
	return Formatter{}
}

func (Formatter) ID() string    { return "json" }
func (Formatter) Title() string { return "JSON array of color records" }

// Format writes colors as a JSON array.
func (Formatter) Format(w io.Writer, cs []colors.Color, opts registry.Options) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(formats.Records(cs, opts.ShowAliases)); err != nil {
		return fmt.Errorf("jsonfmt: %w", err)
	}
	return nil
}
