package main

import (
	"fmt"

	"github.com/healcde/cdegraph/internal/dataset"
	"github.com/healcde/cdegraph/internal/storage"
	"github.com/healcde/cdegraph/internal/viz"
	"github.com/spf13/cobra"
)

var valuesCategory string

func init() {
	valuesCmd.Flags().StringVar(&valuesCategory, "category", "", "Limit output to one category")
	rootCmd.AddCommand(valuesCmd)
}

var valuesCmd = &cobra.Command{
	Use:   "values <csv>",
	Short: "List distinct selectable values per category",
	Long: `List the distinct descriptor values per category, with comma-packed
cells pre-split. This is the reference table for the graph's selection
menus.

Examples:
  cdegraph values core_measures.csv
  cdegraph values core_measures.csv --category Domain --human`,
	Args: cobra.ExactArgs(1),
	RunE: runValues,
}

// CategoryValues is one category's entry in the values response.
type CategoryValues struct {
	Category string   `json:"category"`
	Values   []string `json:"values"`
}

func runValues(cmd *cobra.Command, args []string) error {
	ds := mustLoadDataset(args[0])

	categories := dataset.Categories
	if valuesCategory != "" {
		cat, ok := resolveCategory(valuesCategory)
		if !ok {
			exitWithError(ExitError, "unknown category: %s", valuesCategory)
		}
		categories = []dataset.Category{cat}
	}

	db, err := storage.OpenMemory()
	if err != nil {
		exitWithError(ExitError, "opening value index: %v", err)
	}
	defer db.Close()

	if err := db.LoadDataset(ds); err != nil {
		exitWithError(ExitError, "indexing dataset: %v", err)
	}

	var result []CategoryValues
	for _, cat := range categories {
		values, err := db.DistinctValues(cat)
		if err != nil {
			exitWithError(ExitError, "listing %s values: %v", cat, err)
		}
		if values == nil {
			values = []string{}
		}
		result = append(result, CategoryValues{Category: string(cat), Values: values})
	}

	if humanOutput {
		for _, cv := range result {
			fmt.Printf("%s (%d values):\n", cv.Category, len(cv.Values))
			for _, v := range cv.Values {
				fmt.Printf("  %s\n", truncateString(v, ValueMaxLen))
			}
			fmt.Println()
		}
	} else {
		outputJSON(result)
	}

	return nil
}

// resolveCategory matches a category name case-sensitively against the
// fixed column set.
func resolveCategory(name string) (dataset.Category, bool) {
	for _, cat := range dataset.Categories {
		if string(cat) == name {
			return cat, true
		}
	}
	return "", false
}

// buildGuide projects the per-category distinct values for the HTML
// selection guide. Independent of the graph build.
func buildGuide(ds *dataset.Dataset) []viz.GuideTable {
	guide := make([]viz.GuideTable, 0, len(dataset.Categories))
	for _, cat := range dataset.Categories {
		guide = append(guide, viz.GuideTable{
			Category: string(cat),
			Values:   ds.DistinctValues(cat),
		})
	}
	return guide
}
