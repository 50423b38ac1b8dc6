package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/draftlab/draftcad/pkg/kicadio"
)

var (
	kicadOutput string
	kicadLayer  string
)

var kicadCmd = &cobra.Command{
	Use:   "kicad",
	Short: "KiCad board graphics interchange",
	Long:  `Convert between scene files and the graphic items of KiCad board files`,
}

var kicadImportCmd = &cobra.Command{
	Use:   "import <board_file>",
	Short: "Import board graphics as a scene",
	Long: `Read the gr_line/gr_circle/gr_arc/gr_rect/gr_poly items of a KiCad
board file and write them as a scene JSON document.`,
	Args: cobra.ExactArgs(1),
	RunE: runKicadImport,
}

var kicadExportCmd = &cobra.Command{
	Use:   "export <scene_file>",
	Short: "Export a scene as board graphics",
	Long:  `Write a scene file as a minimal KiCad board containing one graphic item per primitive.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runKicadExport,
}

func init() {
	rootCmd.AddCommand(kicadCmd)
	kicadCmd.AddCommand(kicadImportCmd)
	kicadCmd.AddCommand(kicadExportCmd)

	kicadCmd.PersistentFlags().StringVarP(&kicadOutput, "output", "o", "", "output file (default stdout)")
	kicadExportCmd.Flags().StringVarP(&kicadLayer, "layer", "l", "Dwgs.User", "board layer for exported items")
}

func runKicadImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening %s: %w", args[0], err)
	}
	defer f.Close()

	s, err := kicadio.Import(f)
	if err != nil {
		return fmt.Errorf("importing %s: %w", args[0], err)
	}
	if verbose {
		log.Printf("imported %d primitives from %s", s.Len(), args[0])
	}

	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	out = append(out, '\n')

	if kicadOutput == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	return os.WriteFile(kicadOutput, out, 0644)
}

func runKicadExport(cmd *cobra.Command, args []string) error {
	s, err := loadScene(args[0])
	if err != nil {
		return err
	}

	var b strings.Builder
	if err := kicadio.Export(&b, s, kicadLayer); err != nil {
		return fmt.Errorf("exporting %s: %w", args[0], err)
	}

	if kicadOutput == "" {
		_, err = os.Stdout.WriteString(b.String())
		return err
	}
	return os.WriteFile(kicadOutput, []byte(b.String()), 0644)
}
