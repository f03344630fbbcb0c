package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres schema for shared deployments (dbtool path).
// Mirrors the SQLite schema with Postgres upsert syntax.
func InitPostgresSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init postgres schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init postgres schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	statements := []string{
		`CREATE TABLE IF NOT EXISTS campuses (
			code TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			lat DOUBLE PRECISION NOT NULL,
			lng DOUBLE PRECISION NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS buildings (
			code TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			campus TEXT NOT NULL,
			address TEXT NOT NULL,
			lat DOUBLE PRECISION NOT NULL,
			lng DOUBLE PRECISION NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_buildings_campus
		ON buildings(campus);`,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init postgres schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init postgres schema: commit tx: %w", err)
	}

	return nil
}

// Populate the Postgres database with the campus dataset from a JSON file.
func SeedPostgresFromJSON(db *sql.DB, jsonPath string) error {
	data, err := readSeed(jsonPath)
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed campus data: begin tx: %w", err)
	}
	defer tx.Rollback()

	campusStmt, err := tx.Prepare(`
	INSERT INTO campuses (code, name, lat, lng)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (code) DO UPDATE
	SET name = EXCLUDED.name, lat = EXCLUDED.lat, lng = EXCLUDED.lng;
	`)
	if err != nil {
		return fmt.Errorf("seed campus data: prepare campus upsert: %w", err)
	}
	defer campusStmt.Close()

	for _, c := range data.Campuses {
		if _, err := campusStmt.Exec(c.Code, c.Name, c.Lat, c.Lng); err != nil {
			return fmt.Errorf("seed campus data: upsert campus %q: %w", c.Code, err)
		}
	}

	buildingStmt, err := tx.Prepare(`
	INSERT INTO buildings (code, name, campus, address, lat, lng)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (code) DO UPDATE
	SET name = EXCLUDED.name, campus = EXCLUDED.campus,
	    address = EXCLUDED.address, lat = EXCLUDED.lat, lng = EXCLUDED.lng;
	`)
	if err != nil {
		return fmt.Errorf("seed campus data: prepare building upsert: %w", err)
	}
	defer buildingStmt.Close()

	for _, b := range data.Buildings {
		if _, err := buildingStmt.Exec(b.Code, b.Name, b.Campus, b.Address, b.Lat, b.Lng); err != nil {
			return fmt.Errorf("seed campus data: upsert building %q: %w", b.Code, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed campus data: commit tx: %w", err)
	}

	return nil
}
