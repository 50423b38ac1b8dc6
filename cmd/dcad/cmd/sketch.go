package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/draftlab/draftcad/pkg/sketch"
)

var sketchOutput string

var sketchCmd = &cobra.Command{
	Use:   "sketch",
	Short: "Sketch script operations",
	Long:  `Commands for evaluating sketch scripts (one drawing command per line)`,
}

var sketchRunCmd = &cobra.Command{
	Use:   "run <script_file>",
	Short: "Evaluate a sketch script into a scene",
	Long: `Parse and evaluate a sketch script, writing the resulting scene as
JSON to stdout or to the file given with --output.

Script example:
  style dashed-secondary
  line 0,0 10,0
  circle 5,5 r 3
  polygon 0,0 r 10 sides 6 circumscribed`,
	Args: cobra.ExactArgs(1),
	RunE: runSketchRun,
}

func init() {
	rootCmd.AddCommand(sketchCmd)
	sketchCmd.AddCommand(sketchRunCmd)

	sketchRunCmd.Flags().StringVarP(&sketchOutput, "output", "o", "", "scene output file (default stdout)")
}

func runSketchRun(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	s, err := sketch.Run(string(data))
	if err != nil {
		return fmt.Errorf("evaluating %s: %w", args[0], err)
	}
	if verbose {
		log.Printf("built %d primitives from %s", s.Len(), args[0])
	}

	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	out = append(out, '\n')

	if sketchOutput == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	return os.WriteFile(sketchOutput, out, 0644)
}
