package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/galaxy-gen/internal/galaxy"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "List galaxy shapes",
	Long:  `Shows every galaxy shape, its numeric value and how density changes it.`,
	Args:  cobra.NoArgs,
	Run:   runShapes,
}

func runShapes(_ *cobra.Command, _ []string) {
	shapes := galaxy.Shapes()

	// Calculate column widths
	maxNameLen := len("Shape")
	for _, s := range shapes {
		maxNameLen = max(maxNameLen, len(s.String()))
	}

	fmt.Println("Available shapes:")
	fmt.Println()
	fmt.Printf("  %-3s  %-*s  %s\n", "ID", maxNameLen, "Shape", "Description")
	fmt.Printf("  %-3s  %-*s  %s\n", "--", maxNameLen, "-----", "-----------")
	for _, s := range shapes {
		info := s.Info()
		fmt.Printf("  %-3d  %-*s  %s\n", int(s), maxNameLen, s, info.Title)
		fmt.Printf("  %-3s  %-*s  density %s\n", "", maxNameLen, "", info.Density)
	}

	fmt.Println()
	fmt.Println("Run 'galaxy generate --shape <shape>' to generate one.")
}
