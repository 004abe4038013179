// Package yamlfmt writes colors as a YAML sequence.
package yamlfmt

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/namedcolors/internal/colors"
	"github.com/vovakirdan/namedcolors/internal/formats"
	"github.com/vovakirdan/namedcolors/internal/registry"
)

func init() {
	registry.Register("yaml", New)
}

// Formatter implements registry.Formatter for YAML.
type Formatter struct{}

// New creates a YAML formatter.
func New() registry.Formatter {
	return Formatter{}
}

func (Formatter) ID() string    { return "yaml" }
func (Formatter) Title() string { return "YAML sequence of color records" }

// Format writes colors as a YAML sequence.
func (Formatter) Format(w io.Writer, cs []colors.Color, opts registry.Options) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(formats.Records(cs, opts.ShowAliases)); err != nil {
		return fmt.Errorf("yamlfmt: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("yamlfmt: %w", err)
	}
	return nil
}
