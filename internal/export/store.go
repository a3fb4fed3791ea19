// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/recat-extract/pkg/types"
)

// Store manages the SQLite export database. Consumers that join the
// reference data against live traffic (e.g. an ADS-B feed keyed by type
// designator) read from this table rather than re-parsing the CSV.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the export database at path and bootstraps
// the schema.
// Per prd002-export R3.2.
func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS aircraft (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			manufacturer TEXT NOT NULL,
			model TEXT NOT NULL,
			designator TEXT NOT NULL,
			legacy_wtc TEXT,
			recat_wtc TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_aircraft_designator ON aircraft(designator)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Replace clears the aircraft table and inserts the given records in one
// transaction, preserving their order. Re-running an export against the
// same database therefore yields the same contents.
// Per prd002-export R3.3.
func (s *Store) Replace(records []types.AircraftRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM aircraft`); err != nil {
		return fmt.Errorf("clearing aircraft table: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO aircraft
		(manufacturer, model, designator, legacy_wtc, recat_wtc)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.Exec(r.Manufacturer, r.Model, r.Designator, r.LegacyWTC, r.RecatWTC); err != nil {
			return fmt.Errorf("inserting %s: %w", r.Designator, err)
		}
	}
	return tx.Commit()
}

// Count returns the number of aircraft rows in the database.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM aircraft`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting aircraft: %w", err)
	}
	return n, nil
}

// ByDesignator returns the records matching an ICAO type designator, in
// insertion order.
func (s *Store) ByDesignator(designator string) ([]types.AircraftRecord, error) {
	rows, err := s.db.Query(`SELECT manufacturer, model, designator, legacy_wtc, recat_wtc
		FROM aircraft WHERE designator = ? ORDER BY rowid`, designator)
	if err != nil {
		return nil, fmt.Errorf("querying designator %s: %w", designator, err)
	}
	defer rows.Close()

	var records []types.AircraftRecord
	for rows.Next() {
		var r types.AircraftRecord
		if err := rows.Scan(&r.Manufacturer, &r.Model, &r.Designator, &r.LegacyWTC, &r.RecatWTC); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
