// colors is a terminal tool for browsing the CSS named color catalog.
//
// Usage:
//
//	colors list              - List colors, optionally filtered and sorted
//	colors sections          - List sections with color counts
//	colors show <name>       - Show one color (aliases accepted)
//	colors formats           - List output formats
//	colors pick              - Pick a color interactively
//
// Global flags:
//
//	--config <path>  - Config file (default: search ~/.namedcolors, ./configs)
//	--format <id>    - Output format: text, json, yaml, css
//	--no-color       - Disable swatches
//	--verbose        - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/namedcolors/internal/config"
	"github.com/vovakirdan/namedcolors/internal/registry"

	// Import formatters to register them
	_ "github.com/vovakirdan/namedcolors/internal/formats/cssfmt"
	_ "github.com/vovakirdan/namedcolors/internal/formats/jsonfmt"
	_ "github.com/vovakirdan/namedcolors/internal/formats/textfmt"
	_ "github.com/vovakirdan/namedcolors/internal/formats/yamlfmt"
)

var (
	// Global flags
	flagConfigPath string
	flagFormat     string
	flagNoColor    bool
	flagVerbose    bool

	// Set by the root command before any subcommand runs
	appConfig = config.Default()
	logger    = log.New(os.Stderr)
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "colors",
	Short: "Browse the CSS named color catalog",
	Long: `colors lists, inspects and exports the CSS named colors, with their
RGB and HSL values and the CSS level that introduced each name.

Available commands:
  list      - List colors (filter by section and CSS level, sort by any key)
  sections  - Show the sections and their color counts
  show      - Show a single color
  formats   - Show output formats
  pick      - Interactive color picker

Examples:
  colors list --section Blues --sort lightness
  colors list --preset rainbow --format css
  colors show cyan
  colors pick`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "", "Output format (see 'colors formats')")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable color swatches")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(sectionsCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(formatsCmd)
	rootCmd.AddCommand(pickCmd)
}

// setup creates the logger and loads the configuration.
func setup(cmd *cobra.Command, _ []string) error {
	logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		ReportTimestamp: true,
		Prefix:          "colors",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	res, err := config.Load(flagConfigPath)
	if err != nil {
		return err
	}
	for _, skipErr := range res.Skipped {
		logger.Warn("skipping config file", "err", skipErr)
	}
	logger.Debug("loaded config", "source", res.Source)

	cfg := res.Config
	if flagFormat != "" {
		cfg.Output.Format = flagFormat
	}
	if flagNoColor {
		cfg.Output.Color = false
	}

	// The formats command must keep working to show the valid choices.
	if cmd != formatsCmd && !registry.Exists(cfg.Output.Format) {
		return fmt.Errorf("unknown format %q (run 'colors formats')", cfg.Output.Format)
	}
	appConfig = cfg
	return nil
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
