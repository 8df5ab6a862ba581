package graph

import "github.com/healcde/cdegraph/internal/dataset"

// Style holds the visual encoding for one category.
type Style struct {
	Color string // Hex color applied to the node and inherited by its edges
	Shape string // vis-network shape name
}

// styles maps each category to its fixed visual encoding.
var styles = map[dataset.Category]Style{
	dataset.CategoryCoreMeasure:   {Color: "#4b0082", Shape: "dot"},      // Dark purple circle
	dataset.CategoryDomain:        {Color: "#dda0dd", Shape: "ellipse"},  // Light purple ellipse
	dataset.CategoryQuestionnaire: {Color: "#ff1493", Shape: "square"},   // Dark pink square
	dataset.CategoryProgram:       {Color: "#ffb6c1", Shape: "triangle"}, // Light pink triangle
	dataset.CategoryStudy:         {Color: "#1f77b4", Shape: "text"},     // Blue text
	dataset.CategoryPI:            {Color: "#2ca02c", Shape: "text"},     // Green text
}

// StyleFor returns the visual encoding for a category.
func StyleFor(cat dataset.Category) Style {
	return styles[cat]
}
