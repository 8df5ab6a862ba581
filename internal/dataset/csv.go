package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// LoadCSV reads a study-descriptor table from a CSV file. The header must
// contain every required category column; extra columns are ignored.
func LoadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	ds, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ds, nil
}

// ReadCSV parses a study-descriptor table from a reader.
func ReadCSV(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Row shape is validated against the header below

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty input: missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("parsing header: %w", err)
	}

	columns, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	ds := &Dataset{}
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("parsing row at line %d: %w", line, err)
		}
		if len(record) != len(header) {
			return nil, fmt.Errorf("malformed row at line %d: got %d fields, header has %d", line, len(record), len(header))
		}

		row := make(Row, len(Categories))
		for cat, idx := range columns {
			row[cat] = strings.TrimSpace(record[idx])
		}
		ds.Rows = append(ds.Rows, row)
	}

	return ds, nil
}

// mapColumns resolves each required category to its header index.
// Header names are matched after whitespace trimming.
func mapColumns(header []string) (map[Category]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	columns := make(map[Category]int, len(Categories))
	var missing []string
	for _, cat := range Categories {
		idx, ok := index[string(cat)]
		if !ok {
			missing = append(missing, string(cat))
			continue
		}
		columns[cat] = idx
	}

	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return columns, nil
}
