package graph

import (
	"fmt"

	"github.com/healcde/cdegraph/internal/dataset"
)

// Node sizing constants. Core CDE Measure nodes scale with global descriptor
// frequency; every other category uses the fixed minimum.
const (
	BaseScale   = 30.0
	MinNodeSize = 15.0
)

// Build constructs the knowledge graph from the dataset in a single pass.
//
// Per row: the Core CDE Measure value becomes a frequency-sized node and is
// connected to every other descriptor in the row; descriptors from different
// non-measure categories are pairwise connected; descriptors within the same
// category are not. A missing measure cell skips the measure node and its
// edges but other categories' nodes are still created.
func Build(ds *dataset.Dataset) (*Graph, error) {
	maxFreq, err := ds.MaxFrequency()
	if err != nil {
		return nil, fmt.Errorf("building graph: %w", err)
	}
	freq := ds.Frequencies()

	g := NewGraph()
	for _, row := range ds.Rows {
		buildRow(g, row, freq, maxFreq)
	}
	return g, nil
}

// buildRow adds one row's nodes and edges to the graph.
func buildRow(g *Graph, row dataset.Row, freq map[string]int, maxFreq int) {
	measure := row[dataset.CategoryCoreMeasure]
	hasMeasure := !dataset.IsMissing(measure)
	if hasMeasure {
		style := StyleFor(dataset.CategoryCoreMeasure)
		g.addNode(Node{
			Label:    measure,
			Category: dataset.CategoryCoreMeasure,
			Color:    style.Color,
			Shape:    style.Shape,
			Size:     BaseScale * float64(freq[measure]) / float64(maxFreq),
		})
	}

	// Per-category entry lists for this row, in canonical category order.
	entries := make([][]string, len(dataset.LinkCategories))
	for i, cat := range dataset.LinkCategories {
		entries[i] = addCategoryNodes(g, cat, row[cat])
	}

	// Measure connects to every entry of every category.
	if hasMeasure {
		for _, labels := range entries {
			for _, label := range labels {
				g.addEdge(measure, label)
			}
		}
	}

	// Entries from different categories are pairwise connected. Same-category
	// pairs are excluded.
	for i := range entries {
		for j := range entries {
			if i == j {
				continue
			}
			for _, from := range entries[i] {
				for _, to := range entries[j] {
					g.addEdge(from, to)
				}
			}
		}
	}
}

// addCategoryNodes splits a cell into descriptor values, inserts any unseen
// ones as fixed-size nodes, and returns the row's entry list for the
// category. Already-known labels still appear in the entry list so their
// edges are generated.
func addCategoryNodes(g *Graph, cat dataset.Category, cell string) []string {
	values := dataset.SplitValues(cell)
	if len(values) == 0 {
		return nil
	}

	style := StyleFor(cat)
	for _, value := range values {
		g.addNode(Node{
			Label:    value,
			Category: cat,
			Color:    style.Color,
			Shape:    style.Shape,
			Size:     MinNodeSize,
		})
	}
	return values
}
