package main

import (
	"fmt"

	"github.com/healcde/cdegraph/internal/dataset"
	"github.com/healcde/cdegraph/internal/graph"
	"github.com/healcde/cdegraph/internal/storage"
	"github.com/spf13/cobra"
)

var statsTop int

func init() {
	statsCmd.Flags().IntVar(&statsTop, "top", 10, "Number of top labels by frequency to include")
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats <csv>",
	Short: "Summarize the dataset and the graph it would produce",
	Long: `Summarize the dataset: rows, distinct descriptors per category,
node/edge counts of the resulting graph, and the most frequent labels.

Examples:
  cdegraph stats core_measures.csv
  cdegraph stats core_measures.csv --top 25 --human`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

// StatsResult is the response for the stats command.
type StatsResult struct {
	Rows       int                  `json:"rows"`
	Nodes      int                  `json:"nodes"`
	Edges      int                  `json:"edges"`
	Categories map[string]int       `json:"categories"` // distinct descriptors per category
	TopLabels  []storage.LabelCount `json:"top_labels"`
}

func runStats(cmd *cobra.Command, args []string) error {
	ds := mustLoadDataset(args[0])

	g, err := graph.Build(ds)
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	db, err := storage.OpenMemory()
	if err != nil {
		exitWithError(ExitError, "opening value index: %v", err)
	}
	defer db.Close()

	if err := db.LoadDataset(ds); err != nil {
		exitWithError(ExitError, "indexing dataset: %v", err)
	}

	categories := make(map[string]int, len(dataset.Categories))
	for _, cat := range dataset.Categories {
		n, err := db.CountDescriptors(cat)
		if err != nil {
			exitWithError(ExitError, "counting %s descriptors: %v", cat, err)
		}
		categories[string(cat)] = n
	}

	top, err := db.LabelFrequencies(statsTop)
	if err != nil {
		exitWithError(ExitError, "ranking labels: %v", err)
	}
	if top == nil {
		top = []storage.LabelCount{}
	}

	result := StatsResult{
		Rows:       len(ds.Rows),
		Nodes:      len(g.Nodes),
		Edges:      len(g.Edges),
		Categories: categories,
		TopLabels:  top,
	}

	if humanOutput {
		fmt.Printf("%d rows, %d nodes, %d edges\n\n", result.Rows, result.Nodes, result.Edges)
		fmt.Println("Distinct descriptors per category:")
		for _, cat := range dataset.Categories {
			fmt.Printf("  %-22s %d\n", cat, categories[string(cat)])
		}
		fmt.Printf("\nTop %d labels by frequency:\n", len(top))
		for _, lc := range top {
			fmt.Printf("  %4d  %s\n", lc.Count, truncateString(lc.Label, ValueMaxLen))
		}
	} else {
		outputJSON(result)
	}

	return nil
}
