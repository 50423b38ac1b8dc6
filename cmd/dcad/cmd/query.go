package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/draftlab/draftcad/pkg/primitive"
	"github.com/draftlab/draftcad/pkg/snap"
)

var (
	queryTolerance float64
	queryZoom      float64
	querySnapKinds []string
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Snap and hit-test queries",
	Long:  `Resolve a scene-space cursor position against a scene file.`,
}

var querySnapCmd = &cobra.Command{
	Use:   "snap <scene_file> <x> <y>",
	Short: "Find the nearest snap anchor",
	Long: `Find the nearest enabled snap anchor within tolerance of a scene
position. The tolerance is given in screen pixels and divided by --zoom
to get the scene-space search radius.`,
	Args: cobra.ExactArgs(3),
	RunE: runQuerySnap,
}

var queryHitCmd = &cobra.Command{
	Use:   "hit <scene_file> <x> <y>",
	Short: "Find the nearest primitive",
	Long:  `Find the primitive whose outline is nearest to a scene position.`,
	Args:  cobra.ExactArgs(3),
	RunE:  runQueryHit,
}

func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.AddCommand(querySnapCmd)
	queryCmd.AddCommand(queryHitCmd)

	queryCmd.PersistentFlags().Float64VarP(&queryTolerance, "tolerance", "t", 10, "pick radius in screen pixels")
	queryCmd.PersistentFlags().Float64VarP(&queryZoom, "zoom", "z", 1, "view zoom used to convert the tolerance to scene units")
	querySnapCmd.Flags().StringSliceVarP(&querySnapKinds, "kinds", "k", nil,
		"snap kinds to enable (endpoint,midpoint,center,quadrant,node); all when unset")
}

func parseCoord(arg string) (float64, error) {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("bad coordinate %q: %w", arg, err)
	}
	return v, nil
}

func snapConfig() (snap.Config, error) {
	if len(querySnapKinds) == 0 {
		return snap.DefaultConfig(), nil
	}
	byName := map[string]primitive.SnapKind{
		"endpoint": primitive.SnapEndpoint,
		"midpoint": primitive.SnapMidpoint,
		"center":   primitive.SnapCenter,
		"quadrant": primitive.SnapQuadrant,
		"node":     primitive.SnapNode,
	}
	cfg := snap.Config{Enabled: true, Kinds: make(map[primitive.SnapKind]bool)}
	for _, name := range querySnapKinds {
		kind, ok := byName[strings.ToLower(name)]
		if !ok {
			return snap.Config{}, fmt.Errorf("unknown snap kind %q", name)
		}
		cfg.Kinds[kind] = true
	}
	return cfg, nil
}

func runQuerySnap(cmd *cobra.Command, args []string) error {
	s, err := loadScene(args[0])
	if err != nil {
		return err
	}
	x, err := parseCoord(args[1])
	if err != nil {
		return err
	}
	y, err := parseCoord(args[2])
	if err != nil {
		return err
	}
	cfg, err := snapConfig()
	if err != nil {
		return err
	}
	if queryZoom <= 0 {
		return fmt.Errorf("zoom must be positive")
	}

	engine := snap.NewEngine(cfg)
	sp, ok := engine.FindSnap(x, y, s.Primitives(), queryTolerance/queryZoom, nil)
	if !ok {
		fmt.Println("no snap within tolerance")
		return nil
	}
	fmt.Printf("%s snap at (%.6g, %.6g) on %s\n", sp.Kind, sp.X, sp.Y, sp.Source.Kind())
	return nil
}

func runQueryHit(cmd *cobra.Command, args []string) error {
	s, err := loadScene(args[0])
	if err != nil {
		return err
	}
	x, err := parseCoord(args[1])
	if err != nil {
		return err
	}
	y, err := parseCoord(args[2])
	if err != nil {
		return err
	}
	if queryZoom <= 0 {
		return fmt.Errorf("zoom must be positive")
	}

	tester := snap.NewHitTester(queryTolerance / queryZoom)
	p := tester.HitTest(x, y, s.Primitives())
	if p == nil {
		fmt.Println("no primitive within tolerance")
		return nil
	}
	bb := p.BoundingBox()
	fmt.Printf("%s (style %s) at distance %.6g, bounds (%.4g, %.4g)-(%.4g, %.4g)\n",
		p.Kind(), p.Style(), p.DistanceTo(x, y), bb.Min.X, bb.Min.Y, bb.Max.X, bb.Max.Y)
	return nil
}
