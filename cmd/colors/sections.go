package main

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/namedcolors/internal/colors"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List color sections",
	Long:  `Shows every section in catalog order with its number of colors.`,
	Args:  cobra.NoArgs,
	Run:   runSections,
}

func runSections(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	groups := colors.AllByCategory()

	// Calculate column widths
	maxLen := len("Section")
	for _, g := range groups {
		maxLen = max(maxLen, runewidth.StringWidth(g.Section))
	}

	// Print header
	fmt.Fprintf(out, "  %s  %s\n", runewidth.FillRight("Section", maxLen), "Colors")
	fmt.Fprintf(out, "  %s  %s\n", runewidth.FillRight("-------", maxLen), "------")

	for _, g := range groups {
		fmt.Fprintf(out, "  %s  %d\n", runewidth.FillRight(g.Section, maxLen), len(g.Colors))
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%d colors in total. Run 'colors list --section <name>' to list one.\n", colors.Len())
}
