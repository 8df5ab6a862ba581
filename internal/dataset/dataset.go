// Package dataset defines the core domain types for the study-descriptor table.
package dataset

import (
	"errors"
	"strings"
)

// Category identifies one of the six fixed descriptor columns.
type Category string

// The six descriptor categories, in canonical column order.
const (
	CategoryCoreMeasure   Category = "Core CDE Measures"
	CategoryDomain        Category = "Domain"
	CategoryQuestionnaire Category = "Questionnaire"
	CategoryProgram       Category = "HEAL Research Program"
	CategoryStudy         Category = "Study Name"
	CategoryPI            Category = "PI Name"
)

// Categories lists all categories in canonical order. The Core CDE Measure
// column comes first; edge generation treats it specially.
var Categories = []Category{
	CategoryCoreMeasure,
	CategoryDomain,
	CategoryQuestionnaire,
	CategoryProgram,
	CategoryStudy,
	CategoryPI,
}

// LinkCategories lists the non-measure categories, in the order their
// per-row entries are generated.
var LinkCategories = []Category{
	CategoryDomain,
	CategoryQuestionnaire,
	CategoryProgram,
	CategoryStudy,
	CategoryPI,
}

// MissingMarker is the textual marker the upstream export writes for
// absent values.
const MissingMarker = "nan"

// Row holds one record's raw cell per category. Cells may be empty, the
// missing marker, or a comma-packed list of values.
type Row map[Category]string

// Dataset is the fully loaded study-descriptor table.
type Dataset struct {
	Rows []Row
}

// ErrNoDescriptors is returned when every cell in the dataset is missing,
// leaving nothing to count or render.
var ErrNoDescriptors = errors.New("dataset contains no non-missing descriptor values")

// IsMissing reports whether a cell value represents an absent descriptor.
func IsMissing(s string) bool {
	return s == "" || s == MissingMarker
}

// SplitValues splits a comma-packed cell into individual trimmed values,
// dropping empty tokens. A missing cell yields nil.
func SplitValues(cell string) []string {
	if IsMissing(cell) {
		return nil
	}

	var values []string
	for _, token := range strings.Split(cell, ",") {
		token = strings.TrimSpace(token)
		if token != "" {
			values = append(values, token)
		}
	}
	return values
}

// Frequencies counts every non-missing raw cell value across all rows and
// all categories. Counting is whole-cell: a comma-packed cell counts once
// under its packed string, matching the sizing rule's global counter.
func (d *Dataset) Frequencies() map[string]int {
	freq := make(map[string]int)
	for _, row := range d.Rows {
		for _, cat := range Categories {
			if cell := row[cat]; !IsMissing(cell) {
				freq[cell]++
			}
		}
	}
	return freq
}

// MaxFrequency returns the highest frequency of any descriptor value.
// Returns ErrNoDescriptors if the dataset has no non-missing values.
func (d *Dataset) MaxFrequency() (int, error) {
	max := 0
	for _, count := range d.Frequencies() {
		if count > max {
			max = count
		}
	}
	if max == 0 {
		return 0, ErrNoDescriptors
	}
	return max, nil
}

// DistinctValues returns the distinct non-missing values of a category in
// first-seen order, with comma-packed cells pre-split. This is the
// reference-table projection and is independent of the graph build.
func (d *Dataset) DistinctValues(cat Category) []string {
	seen := make(map[string]bool)
	var values []string

	for _, row := range d.Rows {
		for _, v := range SplitValues(row[cat]) {
			if !seen[v] {
				seen[v] = true
				values = append(values, v)
			}
		}
	}
	return values
}
