package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/namedcolors/internal/registry"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List all output formats",
	Long:  `Shows the output formats accepted by --format.`,
	Args:  cobra.NoArgs,
	Run:   runFormats,
}

func runFormats(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	formats := registry.List()

	if len(formats) == 0 {
		fmt.Fprintln(out, "No formats available.")
		return
	}

	fmt.Fprintln(out, "Available formats:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, f := range formats {
		if len(f.ID) > maxIDLen {
			maxIDLen = len(f.ID)
		}
	}

	// Print header
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Description")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----------")

	// Print formats
	for _, f := range formats {
		marker := ""
		if f.ID == appConfig.Output.Format {
			marker = " (default)"
		}
		fmt.Fprintf(out, "  %-*s  %s%s\n", maxIDLen, f.ID, f.Title, marker)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'colors list --format <id>' to use one.")
}
