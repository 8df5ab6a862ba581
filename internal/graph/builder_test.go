package graph

import (
	"errors"
	"testing"

	"github.com/healcde/cdegraph/internal/dataset"
)

// row builds a full Row with missing markers for unset categories.
func row(measure, domain, questionnaire, program, study, pi string) dataset.Row {
	return dataset.Row{
		dataset.CategoryCoreMeasure:   measure,
		dataset.CategoryDomain:        domain,
		dataset.CategoryQuestionnaire: questionnaire,
		dataset.CategoryProgram:       program,
		dataset.CategoryStudy:         study,
		dataset.CategoryPI:            pi,
	}
}

// hasEdge reports whether an edge exists between two labels in either
// direction.
func hasEdge(g *Graph, a, b string) bool {
	for _, e := range g.Edges {
		if (e.From == a && e.To == b) || (e.From == b && e.To == a) {
			return true
		}
	}
	return false
}

func TestBuild_RowConnectivity(t *testing.T) {
	ds := &dataset.Dataset{Rows: []dataset.Row{
		row("M", "D1, D2", "Q", "nan", "nan", "nan"),
	}}

	g, err := Build(ds)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	wantEdges := [][2]string{
		{"M", "D1"}, {"M", "D2"}, {"M", "Q"},
		{"D1", "Q"}, {"D2", "Q"},
	}
	for _, pair := range wantEdges {
		if !hasEdge(g, pair[0], pair[1]) {
			t.Errorf("missing edge %s-%s", pair[0], pair[1])
		}
	}

	// Same-category values are never connected.
	if hasEdge(g, "D1", "D2") {
		t.Error("same-category edge D1-D2 must not exist")
	}
}

func TestBuild_IdempotentNodeInsertion(t *testing.T) {
	ds := &dataset.Dataset{Rows: []dataset.Row{
		row("M", "D1", "nan", "nan", "nan", "nan"),
		row("M", "D2", "nan", "nan", "nan", "nan"),
	}}

	g, err := Build(ds)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	seen := make(map[string]int)
	for _, n := range g.Nodes {
		seen[n.Label]++
	}
	for label, count := range seen {
		if count != 1 {
			t.Errorf("node %q appears %d times, want 1", label, count)
		}
	}

	// Both rows' edges survive the shared measure node.
	if !hasEdge(g, "M", "D1") || !hasEdge(g, "M", "D2") {
		t.Error("edges from both rows must be present")
	}
}

func TestBuild_EdgesNotDeduplicated(t *testing.T) {
	ds := &dataset.Dataset{Rows: []dataset.Row{
		row("M", "D", "nan", "nan", "nan", "nan"),
		row("M", "D", "nan", "nan", "nan", "nan"),
	}}

	g, err := Build(ds)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	count := 0
	for _, e := range g.Edges {
		if e.From == "M" && e.To == "D" {
			count++
		}
	}
	if count != 2 {
		t.Errorf("got %d M-D edges, want 2 (one per row, no dedup)", count)
	}
}

func TestBuild_MeasureSizing(t *testing.T) {
	// "M" occurs 3 times globally (twice as measure, once as questionnaire),
	// "Rare" once. Max frequency is 3.
	ds := &dataset.Dataset{Rows: []dataset.Row{
		row("M", "D", "nan", "nan", "nan", "nan"),
		row("M", "nan", "M", "nan", "nan", "nan"),
		row("Rare", "nan", "nan", "nan", "nan", "nan"),
	}}

	g, err := Build(ds)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	m := g.NodeByLabel("M")
	if m == nil {
		t.Fatal("node M not found")
	}
	if want := BaseScale * 3.0 / 3.0; m.Size != want {
		t.Errorf("size(M) = %v, want %v", m.Size, want)
	}

	rare := g.NodeByLabel("Rare")
	if rare == nil {
		t.Fatal("node Rare not found")
	}
	if want := BaseScale * 1.0 / 3.0; rare.Size != want {
		t.Errorf("size(Rare) = %v, want %v", rare.Size, want)
	}
}

func TestBuild_NonMeasureFixedSize(t *testing.T) {
	ds := &dataset.Dataset{Rows: []dataset.Row{
		row("M", "D", "nan", "nan", "nan", "nan"),
		row("M", "D", "nan", "nan", "nan", "nan"),
		row("M", "D", "nan", "nan", "nan", "nan"),
	}}

	g, err := Build(ds)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	d := g.NodeByLabel("D")
	if d == nil {
		t.Fatal("node D not found")
	}
	if d.Size != MinNodeSize {
		t.Errorf("size(D) = %v, want fixed %v regardless of frequency", d.Size, MinNodeSize)
	}
}

func TestBuild_MissingMeasure(t *testing.T) {
	ds := &dataset.Dataset{Rows: []dataset.Row{
		row("nan", "D", "Q", "nan", "nan", "nan"),
	}}

	g, err := Build(ds)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if g.HasNode("nan") {
		t.Error("missing measure must not become a node")
	}
	if !g.HasNode("D") || !g.HasNode("Q") {
		t.Error("other categories' nodes must still be created")
	}
	if !hasEdge(g, "D", "Q") {
		t.Error("cross-category edge D-Q must still be created")
	}
	for _, e := range g.Edges {
		if e.From == "nan" || e.To == "nan" {
			t.Errorf("edge %v touches the missing measure", e)
		}
	}
}

func TestBuild_AllMissing(t *testing.T) {
	ds := &dataset.Dataset{Rows: []dataset.Row{
		row("nan", "", "nan", "", "nan", ""),
	}}

	_, err := Build(ds)
	if !errors.Is(err, dataset.ErrNoDescriptors) {
		t.Errorf("Build() error = %v, want ErrNoDescriptors", err)
	}
}

func TestBuild_LabelCollisionKeepsFirstStyle(t *testing.T) {
	// "PROMIS" appears first as a measure, later as a questionnaire. One
	// node results, styled as the measure.
	ds := &dataset.Dataset{Rows: []dataset.Row{
		row("PROMIS", "nan", "nan", "nan", "nan", "nan"),
		row("M2", "nan", "PROMIS", "nan", "nan", "nan"),
	}}

	g, err := Build(ds)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	n := g.NodeByLabel("PROMIS")
	if n == nil {
		t.Fatal("node PROMIS not found")
	}
	if n.Category != dataset.CategoryCoreMeasure {
		t.Errorf("collided node category = %q, want first-applied %q", n.Category, dataset.CategoryCoreMeasure)
	}
	if n.Shape != "dot" {
		t.Errorf("collided node shape = %q, want first-applied %q", n.Shape, "dot")
	}
}

func TestBuild_CategoryStyles(t *testing.T) {
	ds := &dataset.Dataset{Rows: []dataset.Row{
		row("M", "D", "Q", "P", "S", "PI"),
	}}

	g, err := Build(ds)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	tests := []struct {
		label string
		color string
		shape string
	}{
		{"M", "#4b0082", "dot"},
		{"D", "#dda0dd", "ellipse"},
		{"Q", "#ff1493", "square"},
		{"P", "#ffb6c1", "triangle"},
		{"S", "#1f77b4", "text"},
		{"PI", "#2ca02c", "text"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			n := g.NodeByLabel(tt.label)
			if n == nil {
				t.Fatalf("node %q not found", tt.label)
			}
			if n.Color != tt.color {
				t.Errorf("color = %q, want %q", n.Color, tt.color)
			}
			if n.Shape != tt.shape {
				t.Errorf("shape = %q, want %q", n.Shape, tt.shape)
			}
		})
	}
}
