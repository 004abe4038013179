package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/namedcolors/internal/colors"
	"github.com/vovakirdan/namedcolors/internal/config"
	"github.com/vovakirdan/namedcolors/internal/platform/tui"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick a color interactively",
	Long: `Opens an interactive picker over the catalog. The chosen color is
printed with the configured output format.

Controls:
  Up/Down/j/k       - Move
  Tab/Shift+Tab     - Next/previous section
  S                 - Cycle sort preset
  C                 - Cycle minimum CSS level
  A                 - Toggle aliases
  Y                 - Copy hex to clipboard
  Enter             - Select and exit
  ?                 - More help
  Q/Esc             - Quit

Examples:
  colors pick
  colors pick --format css
  colors pick --config ./colors.yaml`,
	Args: cobra.NoArgs,
	Run:  runPick,
}

func runPick(cmd *cobra.Command, _ []string) {
	if !isTerminal(os.Stdin) {
		fmt.Fprintln(os.Stderr, "Error: pick needs an interactive terminal")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	picker := appConfig.Picker
	keys, err := picker.SortKeys()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := tui.PickerOptions{
		Section:     picker.Section,
		Preset:      config.SortPreset(picker.Preset),
		SortKeys:    keys,
		MinCSSLevel: picker.MinCSSLevel,
		ShowAliases: picker.ShowAliases,
		Theme:       tui.ThemeByName(picker.Theme),
	}
	logger.Debug("starting picker", "width", width, "height", height, "section", opts.Section)

	c, selected, err := tui.RunPicker(opts, width, height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !selected {
		return
	}

	if err := writeColors(cmd.OutOrStdout(), []colors.Color{c}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
