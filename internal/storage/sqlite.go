// Package storage provides an ephemeral SQLite index over the loaded
// dataset. The database lives in memory only and is rebuilt from the source
// table on every invocation; nothing is persisted.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/healcde/cdegraph/internal/dataset"
	_ "modernc.org/sqlite"
)

// DB wraps the in-memory SQLite connection.
type DB struct {
	db *sql.DB
}

// LabelCount pairs a descriptor value with its global occurrence count.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// OpenMemory opens a fresh in-memory database with the descriptor schema.
func OpenMemory() (*DB, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(1) // A second conn would see a different :memory: db

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// createSchema creates the descriptor tables.
func createSchema(db *sql.DB) error {
	schema := `
		-- One row per individual descriptor value (comma-packed cells pre-split).
		-- rowid preserves first-seen order for ordered DISTINCT projections.
		CREATE TABLE descriptors (
			row_num  INTEGER NOT NULL,
			category TEXT NOT NULL,
			value    TEXT NOT NULL
		);

		-- One row per raw non-missing cell, for whole-cell frequency counting.
		CREATE TABLE cells (
			row_num  INTEGER NOT NULL,
			category TEXT NOT NULL,
			value    TEXT NOT NULL
		);

		CREATE INDEX idx_descriptors_category ON descriptors(category);
		CREATE INDEX idx_cells_value ON cells(value);
	`

	_, err := db.Exec(schema)
	return err
}

// LoadDataset populates the index from the dataset, replacing any prior
// contents.
func (d *DB) LoadDataset(ds *dataset.Dataset) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"descriptors", "cells"} {
		if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	insertCell, err := tx.Prepare(`INSERT INTO cells (row_num, category, value) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing cell insert: %w", err)
	}
	defer insertCell.Close()

	insertDescriptor, err := tx.Prepare(`INSERT INTO descriptors (row_num, category, value) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing descriptor insert: %w", err)
	}
	defer insertDescriptor.Close()

	for i, row := range ds.Rows {
		for _, cat := range dataset.Categories {
			cell := row[cat]
			if dataset.IsMissing(cell) {
				continue
			}
			if _, err := insertCell.Exec(i, string(cat), cell); err != nil {
				return fmt.Errorf("inserting cell: %w", err)
			}
			for _, value := range dataset.SplitValues(cell) {
				if _, err := insertDescriptor.Exec(i, string(cat), value); err != nil {
					return fmt.Errorf("inserting descriptor: %w", err)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing load: %w", err)
	}
	return nil
}

// DistinctValues returns the distinct descriptor values for a category in
// first-seen order.
func (d *DB) DistinctValues(cat dataset.Category) ([]string, error) {
	rows, err := d.db.Query(`
		SELECT value FROM descriptors
		WHERE category = ?
		GROUP BY value
		ORDER BY MIN(rowid)`, string(cat))
	if err != nil {
		return nil, fmt.Errorf("querying distinct values: %w", err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scanning value: %w", err)
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

// LabelFrequencies returns whole-cell occurrence counts across all
// categories, most frequent first, limited to the given count (0 = all).
func (d *DB) LabelFrequencies(limit int) ([]LabelCount, error) {
	query := `
		SELECT value, COUNT(*) AS n FROM cells
		GROUP BY value
		ORDER BY n DESC, MIN(rowid)`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying frequencies: %w", err)
	}
	defer rows.Close()

	var counts []LabelCount
	for rows.Next() {
		var lc LabelCount
		if err := rows.Scan(&lc.Label, &lc.Count); err != nil {
			return nil, fmt.Errorf("scanning frequency: %w", err)
		}
		counts = append(counts, lc)
	}
	return counts, rows.Err()
}

// CountDescriptors returns the number of distinct descriptor values per
// category.
func (d *DB) CountDescriptors(cat dataset.Category) (int, error) {
	var n int
	err := d.db.QueryRow(`
		SELECT COUNT(DISTINCT value) FROM descriptors WHERE category = ?`,
		string(cat)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting descriptors: %w", err)
	}
	return n, nil
}
