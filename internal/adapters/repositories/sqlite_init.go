package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createCampusesQuery := `
	CREATE TABLE IF NOT EXISTS campuses (
		code TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		lat REAL NOT NULL,
		lng REAL NOT NULL
	);
	`

	createBuildingsQuery := `
	CREATE TABLE IF NOT EXISTS buildings (
		code TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		campus TEXT NOT NULL,
		address TEXT NOT NULL,
		lat REAL NOT NULL,
		lng REAL NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_buildings_campus
	ON buildings(campus);
	`

	statements := []string{
		createCampusesQuery,
		createBuildingsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type CampusSeed struct {
	Code string  `json:"code"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

type BuildingSeed struct {
	Code    string  `json:"code"`
	Name    string  `json:"name"`
	Campus  string  `json:"campus"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

type CampusDataSeed struct {
	Campuses  []CampusSeed   `json:"campuses"`
	Buildings []BuildingSeed `json:"buildings"`
}

// readSeed loads and validates the campus dataset file.
func readSeed(jsonPath string) (CampusDataSeed, error) {
	var data CampusDataSeed

	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		return data, fmt.Errorf("seed campus data: read %q: %w", jsonPath, err)
	}

	if err := json.Unmarshal(raw, &data); err != nil {
		return data, fmt.Errorf("seed campus data: parse json: %w", err)
	}

	for i, c := range data.Campuses {
		if strings.TrimSpace(c.Code) == "" {
			return data, fmt.Errorf("seed campus data: campus at index %d has empty code", i)
		}
	}
	for i, b := range data.Buildings {
		if strings.TrimSpace(b.Code) == "" {
			return data, fmt.Errorf("seed campus data: building at index %d has empty code", i)
		}
		if strings.TrimSpace(b.Campus) == "" {
			return data, fmt.Errorf("seed campus data: building %q has empty campus", b.Code)
		}
	}

	return data, nil
}

// Populate the SQLite database with the campus dataset from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
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
	INSERT OR REPLACE INTO campuses (
		code,
		name,
		lat,
		lng
	)
	VALUES (?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed campus data: prepare campus insert: %w", err)
	}
	defer campusStmt.Close()

	for _, c := range data.Campuses {
		if _, err := campusStmt.Exec(c.Code, c.Name, c.Lat, c.Lng); err != nil {
			return fmt.Errorf("seed campus data: insert campus %q: %w", c.Code, err)
		}
	}

	buildingStmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO buildings (
		code,
		name,
		campus,
		address,
		lat,
		lng
	)
	VALUES (?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed campus data: prepare building insert: %w", err)
	}
	defer buildingStmt.Close()

	for _, b := range data.Buildings {
		if _, err := buildingStmt.Exec(b.Code, b.Name, b.Campus, b.Address, b.Lat, b.Lng); err != nil {
			return fmt.Errorf("seed campus data: insert building %q: %w", b.Code, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed campus data: commit tx: %w", err)
	}

	return nil
}
