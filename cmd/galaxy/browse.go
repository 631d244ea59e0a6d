package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/galaxy-gen/internal/platform/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Generate a galaxy and browse it in the terminal",
	Long: `Generate a galaxy and show its planets in a scrollable table.

Controls:
  Up/Down, j/k - Scroll
  g/G          - Jump to top/bottom
  Tab          - Show home planets only
  q/Esc        - Quit

Examples:
  galaxy browse --shape spiral --players 6 --names
  galaxy browse --planets 500 --preset sparse --seed 7`,
	Args: cobra.NoArgs,
	Run:  runBrowse,
}

func init() {
	addLayoutFlags(browseCmd)
}

func runBrowse(cmd *cobra.Command, _ []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fail("browse needs a terminal; use 'galaxy generate' for piped output")
	}

	gen, err := generateFromFlags(cmd)
	if err != nil {
		fail("%v", err)
	}

	// Get terminal size for the initial layout
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunBrowser(gen.req, gen.layout, width, height); err != nil {
		fail("%v", err)
	}
}
