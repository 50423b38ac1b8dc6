package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "dcad",
	Short: "DraftCad - 2D CAD scene tools",
	Long: `DraftCad (dcad) works with 2D CAD scene files:
  - Scene inspection (primitive counts, bounding boxes)
  - Snap and hit-test queries against a scene
  - Sketch script evaluation
  - KiCad board graphics import/export

Examples:
  dcad scene info drawing.json            # Summarize a scene file
  dcad query snap drawing.json 0.2 0.3    # Find the nearest snap anchor
  dcad sketch run plan.sketch -o out.json # Evaluate a sketch script
  dcad kicad import board.kicad_pcb       # Convert board graphics to a scene`,
	Version: "0.1.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
