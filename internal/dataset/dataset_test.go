package dataset

import (
	"reflect"
	"strings"
	"testing"
)

func TestIsMissing(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"nan", true},
		{"NaN", false}, // Marker is the exact lowercase text the export writes
		{"Pain Intensity", false},
		{" ", false}, // Cells are trimmed at load; a stray space is caller error
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsMissing(tt.input); got != tt.want {
				t.Errorf("IsMissing(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitValues(t *testing.T) {
	tests := []struct {
		name string
		cell string
		want []string
	}{
		{"single value", "Sleep", []string{"Sleep"}},
		{"comma-packed", "Sleep, Pain, Mood", []string{"Sleep", "Pain", "Mood"}},
		{"unpadded commas", "Sleep,Pain", []string{"Sleep", "Pain"}},
		{"trailing comma", "Sleep,", []string{"Sleep"}},
		{"missing marker", "nan", nil},
		{"empty cell", "", nil},
		{"only commas", ",,", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitValues(tt.cell)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitValues(%q) = %v, want %v", tt.cell, got, tt.want)
			}
		})
	}
}

func TestSplitValues_RoundTrip(t *testing.T) {
	// Splitting then rejoining with ", " reproduces the cell modulo whitespace.
	cells := []string{
		"Sleep, Pain, Mood",
		"Sleep,Pain ,  Mood",
		"Physical Function",
	}

	for _, cell := range cells {
		t.Run(cell, func(t *testing.T) {
			got := strings.Join(SplitValues(cell), ", ")
			want := strings.Join(SplitValues(strings.Join(SplitValues(cell), ", ")), ", ")
			if got != want {
				t.Errorf("round trip changed value: %q -> %q", got, want)
			}
		})
	}
}

func TestFrequencies_WholeCellGlobalCounting(t *testing.T) {
	ds := &Dataset{Rows: []Row{
		{
			CategoryCoreMeasure:   "PROMIS",
			CategoryDomain:        "Sleep, Pain",
			CategoryQuestionnaire: "PROMIS", // Same label in another category counts too
			CategoryProgram:       "nan",
			CategoryStudy:         "",
			CategoryPI:            "Smith",
		},
		{
			CategoryCoreMeasure:   "PROMIS",
			CategoryDomain:        "Sleep, Pain",
			CategoryQuestionnaire: "nan",
			CategoryProgram:       "HOPE",
			CategoryStudy:         "Study A",
			CategoryPI:            "Smith",
		},
	}}

	freq := ds.Frequencies()

	want := map[string]int{
		"PROMIS":      3, // Two measure cells plus one questionnaire cell
		"Sleep, Pain": 2, // Packed cell counts whole, not split
		"Smith":       2,
		"HOPE":        1,
		"Study A":     1,
	}
	if !reflect.DeepEqual(freq, want) {
		t.Errorf("Frequencies() = %v, want %v", freq, want)
	}
}

func TestMaxFrequency(t *testing.T) {
	ds := &Dataset{Rows: []Row{
		{CategoryCoreMeasure: "PROMIS", CategoryDomain: "Sleep"},
		{CategoryCoreMeasure: "PROMIS"},
	}}

	max, err := ds.MaxFrequency()
	if err != nil {
		t.Fatalf("MaxFrequency() error: %v", err)
	}
	if max != 2 {
		t.Errorf("MaxFrequency() = %d, want 2", max)
	}
}

func TestMaxFrequency_AllMissing(t *testing.T) {
	ds := &Dataset{Rows: []Row{
		{CategoryCoreMeasure: "nan", CategoryDomain: "", CategoryQuestionnaire: "nan"},
		{},
	}}

	if _, err := ds.MaxFrequency(); err != ErrNoDescriptors {
		t.Errorf("MaxFrequency() error = %v, want ErrNoDescriptors", err)
	}
}

func TestDistinctValues(t *testing.T) {
	ds := &Dataset{Rows: []Row{
		{CategoryDomain: "Sleep, Pain"},
		{CategoryDomain: "Pain, Mood"},
		{CategoryDomain: "nan"},
		{CategoryDomain: "Sleep"},
	}}

	got := ds.DistinctValues(CategoryDomain)
	want := []string{"Sleep", "Pain", "Mood"} // First-seen order, pre-split
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DistinctValues() = %v, want %v", got, want)
	}
}

func TestDistinctValues_EmptyCategory(t *testing.T) {
	ds := &Dataset{Rows: []Row{{CategoryDomain: "Sleep"}}}

	if got := ds.DistinctValues(CategoryPI); got != nil {
		t.Errorf("DistinctValues() = %v, want nil", got)
	}
}
