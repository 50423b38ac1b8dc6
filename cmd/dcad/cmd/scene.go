package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/draftlab/draftcad/pkg/scene"
)

var sceneCmd = &cobra.Command{
	Use:   "scene",
	Short: "Scene file operations",
	Long:  `Commands for inspecting scene files (JSON primitive documents)`,
}

var sceneInfoCmd = &cobra.Command{
	Use:   "info <scene_file>",
	Short: "Show scene summary",
	Long:  `Display the primitive counts and overall bounding box of a scene file.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSceneInfo,
}

var sceneBBoxCmd = &cobra.Command{
	Use:   "bbox <scene_file>",
	Short: "Show the scene bounding box",
	Args:  cobra.ExactArgs(1),
	RunE:  runSceneBBox,
}

func init() {
	rootCmd.AddCommand(sceneCmd)
	sceneCmd.AddCommand(sceneInfoCmd)
	sceneCmd.AddCommand(sceneBBoxCmd)
}

// loadScene reads and decodes a scene file.
func loadScene(path string) (*scene.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	s := scene.New()
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	if verbose {
		log.Printf("loaded %d primitives from %s", s.Len(), path)
	}
	return s, nil
}

func runSceneInfo(cmd *cobra.Command, args []string) error {
	s, err := loadScene(args[0])
	if err != nil {
		return err
	}

	counts := make(map[string]int)
	for _, p := range s.Primitives() {
		counts[p.Kind().String()]++
	}
	kinds := make([]string, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	fmt.Printf("Primitives: %d\n", s.Len())
	for _, k := range kinds {
		fmt.Printf("  %-10s %d\n", k, counts[k])
	}

	if bb := s.BoundingBox(); !bb.IsEmpty() {
		fmt.Printf("Bounds: (%.4g, %.4g) to (%.4g, %.4g)\n",
			bb.Min.X, bb.Min.Y, bb.Max.X, bb.Max.Y)
		fmt.Printf("Size: %.4g x %.4g\n", bb.Width(), bb.Height())
	}
	return nil
}

func runSceneBBox(cmd *cobra.Command, args []string) error {
	s, err := loadScene(args[0])
	if err != nil {
		return err
	}
	bb := s.BoundingBox()
	if bb.IsEmpty() {
		fmt.Println("empty scene")
		return nil
	}
	fmt.Printf("min: (%.6g, %.6g)\nmax: (%.6g, %.6g)\n",
		bb.Min.X, bb.Min.Y, bb.Max.X, bb.Max.Y)
	return nil
}
