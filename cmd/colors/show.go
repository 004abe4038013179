package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/namedcolors/internal/colors"
)

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a named color",
	Long: `Shows a single color. Names are matched ignoring case, and aliases
such as "cyan" or "grey" are accepted.

Examples:
  colors show coral
  colors show grey --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	c, ok := colors.Lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown color %q (run 'colors list' to see all)", args[0])
	}
	logger.Debug("found color", "query", args[0], "name", c.Name(), "section", c.Section())

	return writeColors(cmd.OutOrStdout(), []colors.Color{c})
}
