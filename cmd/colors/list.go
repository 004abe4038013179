package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/namedcolors/internal/colors"
	"github.com/vovakirdan/namedcolors/internal/config"
	"github.com/vovakirdan/namedcolors/internal/registry"
)

var (
	flagSection  string
	flagSort     []string
	flagPreset   string
	flagMinLevel int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List named colors",
	Long: `Lists the catalog in catalog order, or filtered and sorted.

Sort keys: name, hue, saturation, lightness, red, green, blue.
Several keys sort lexicographically: the second breaks ties of the first.
Names sort byte-wise (uppercase before lowercase), not by locale.

Presets: catalog, rainbow, alphabetical, rgb, lightness.

Examples:
  colors list
  colors list --section Grays
  colors list --sort red,green,blue
  colors list --preset rainbow --min-level 3
  colors list --format json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&flagSection, "section", "", "Only list colors of this section")
	listCmd.Flags().StringSliceVar(&flagSort, "sort", nil, "Sort keys, comma separated: "+sortKeyNames())
	listCmd.Flags().StringVar(&flagPreset, "preset", "", "Sort preset: "+presetNames())
	listCmd.Flags().IntVar(&flagMinLevel, "min-level", 0, "Only colors whose minimum CSS level is at least this")
}

// sortKeyNames lists the accepted --sort values.
func sortKeyNames() string {
	names := make([]string, 0, len(colors.AllSortKeys()))
	for _, k := range colors.AllSortKeys() {
		names = append(names, k.String())
	}
	return strings.Join(names, ", ")
}

// presetNames lists the accepted --preset values.
func presetNames() string {
	names := make([]string, len(config.Presets))
	for i, p := range config.Presets {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}

func runList(cmd *cobra.Command, _ []string) error {
	picker := appConfig.Picker
	if cmd.Flags().Changed("section") {
		picker.Section = flagSection
	}
	if cmd.Flags().Changed("sort") {
		picker.Sort = flagSort
	}
	if cmd.Flags().Changed("preset") {
		picker.Preset = flagPreset
		if !cmd.Flags().Changed("sort") {
			picker.Sort = nil
		}
	}
	if cmd.Flags().Changed("min-level") {
		picker.MinCSSLevel = flagMinLevel
	}

	list, err := query(picker)
	if err != nil {
		return err
	}
	logger.Debug("listing colors", "count", len(list), "format", appConfig.Output.Format)

	return writeColors(cmd.OutOrStdout(), list)
}

// query applies the section, level and sort settings to the catalog.
func query(p config.PickerConfig) ([]colors.Color, error) {
	list := colors.Catalog()
	if p.Section != "" {
		section, ok := colors.AllByCategory().Get(p.Section)
		if !ok {
			return nil, fmt.Errorf("unknown section %q (run 'colors sections')", p.Section)
		}
		list = section
	}

	list = colors.FilterByMinCSSLevel(list, p.MinCSSLevel)

	keys, err := p.SortKeys()
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return list, nil
	}
	return colors.SortByKeys(list, keys)
}

// writeColors renders colors with the configured formatter.
func writeColors(w io.Writer, list []colors.Color) error {
	out := appConfig.Output
	f, err := registry.Create(out.Format)
	if err != nil {
		return fmt.Errorf("%w (run 'colors formats')", err)
	}

	useColor := out.Color
	if file, ok := w.(*os.File); !ok || !isTerminal(file) {
		useColor = false
	}

	return f.Format(w, list, registry.Options{
		Color:       useColor,
		ShowAliases: appConfig.Picker.ShowAliases,
		SwatchWidth: out.SwatchWidth,
	})
}
