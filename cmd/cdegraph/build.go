package main

import (
	"fmt"
	"os"
	"time"

	"github.com/healcde/cdegraph/internal/graph"
	"github.com/healcde/cdegraph/internal/viz"
	"github.com/spf13/cobra"
)

var (
	buildOutput  string
	buildTitle   string
	buildOffline bool
	buildNoGuide bool
	buildPhysics viz.Physics
)

func init() {
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "Output HTML path (default from config)")
	buildCmd.Flags().StringVar(&buildTitle, "title", "", "Page title")
	buildCmd.Flags().BoolVar(&buildOffline, "offline", false, "Reference a local vis-network.min.js instead of the CDN")
	buildCmd.Flags().BoolVar(&buildNoGuide, "no-guide", false, "Omit the selection-guide tables")

	buildCmd.Flags().Float64Var(&buildPhysics.GravitationalConstant, "gravitational-constant", 0, "Node repulsion strength")
	buildCmd.Flags().Float64Var(&buildPhysics.CentralGravity, "central-gravity", 0, "Pull toward the layout center")
	buildCmd.Flags().Float64Var(&buildPhysics.SpringLength, "spring-length", 0, "Edge rest length")
	buildCmd.Flags().Float64Var(&buildPhysics.SpringConstant, "spring-constant", 0, "Edge spring stiffness")
	buildCmd.Flags().Float64Var(&buildPhysics.SpringStrength, "spring-strength", 0, "Edge spring strength")
	buildCmd.Flags().Float64Var(&buildPhysics.Damping, "damping", 0, "Velocity damping factor")
	buildCmd.Flags().IntVar(&buildPhysics.StabilizationIterations, "stabilization-iterations", 0, "Layout stabilization iteration count")

	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build <csv>",
	Short: "Build the knowledge graph and write the HTML artifact",
	Long: `Build the knowledge graph from a study-descriptor CSV and write a
self-contained interactive HTML document.

Examples:
  cdegraph build core_measures.csv
  cdegraph build core_measures.csv -o graph.html --offline
  cdegraph build core_measures.csv --spring-length 600 --damping 0.5`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

// BuildResult is the response for the build command.
type BuildResult struct {
	Status string `json:"status"`
	Path   string `json:"path"`
	Nodes  int    `json:"nodes"`
	Edges  int    `json:"edges"`
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	ds := mustLoadDataset(args[0])

	start := time.Now()
	g, err := graph.Build(ds)
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}
	logger.Debug("graph built", "nodes", len(g.Nodes), "edges", len(g.Edges), "elapsed", time.Since(start))

	opts := cfg.HTMLOptions()
	if buildTitle != "" {
		opts.Title = buildTitle
	}
	if buildOffline {
		opts.Offline = true
	}
	if buildNoGuide {
		opts.IncludeGuide = false
	}
	applyPhysicsFlags(cmd, &opts.Physics)

	var guide []viz.GuideTable
	if opts.IncludeGuide {
		guide = buildGuide(ds)
	}

	html, err := viz.GenerateHTML(g, guide, opts)
	if err != nil {
		exitWithError(ExitError, "rendering graph: %v", err)
	}

	output := cfg.Output
	if buildOutput != "" {
		output = buildOutput
	}
	if err := os.WriteFile(output, []byte(html), 0644); err != nil {
		exitWithError(ExitError, "writing artifact: %v", err)
	}
	logger.Info("artifact written", "path", output)

	if humanOutput {
		fmt.Printf("Wrote %s (%d nodes, %d edges)\n", output, len(g.Nodes), len(g.Edges))
	} else {
		outputJSON(BuildResult{
			Status: "built",
			Path:   output,
			Nodes:  len(g.Nodes),
			Edges:  len(g.Edges),
		})
	}

	return nil
}

// applyPhysicsFlags overrides physics options with any flag the user set
// explicitly, leaving configured values intact otherwise.
func applyPhysicsFlags(cmd *cobra.Command, p *viz.Physics) {
	flags := cmd.Flags()
	if flags.Changed("gravitational-constant") {
		p.GravitationalConstant = buildPhysics.GravitationalConstant
	}
	if flags.Changed("central-gravity") {
		p.CentralGravity = buildPhysics.CentralGravity
	}
	if flags.Changed("spring-length") {
		p.SpringLength = buildPhysics.SpringLength
	}
	if flags.Changed("spring-constant") {
		p.SpringConstant = buildPhysics.SpringConstant
	}
	if flags.Changed("spring-strength") {
		p.SpringStrength = buildPhysics.SpringStrength
	}
	if flags.Changed("damping") {
		p.Damping = buildPhysics.Damping
	}
	if flags.Changed("stabilization-iterations") {
		p.StabilizationIterations = buildPhysics.StabilizationIterations
	}
}
