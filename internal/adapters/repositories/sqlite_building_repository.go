package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"campus-transit-service/internal/domain"
)

// SQLite-backed implementation of the BuildingRepository port.
type SqliteBuildingRepository struct{ DB *sql.DB }

func NewSqliteBuildingRepository(db *sql.DB) *SqliteBuildingRepository {
	return &SqliteBuildingRepository{DB: db}
}

// Return all buildings stored in the database, ordered by code.
func (s *SqliteBuildingRepository) ListBuildings(ctx context.Context) ([]*domain.Building, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite building repository: DB is nil")
	}

	query := `
	SELECT
		code,
		name,
		campus,
		address,
		lat,
		lng
	FROM buildings
	ORDER BY code;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list buildings: query buildings table: %w", err)
	}
	defer rows.Close()

	buildings := make([]*domain.Building, 0, 64)
	for rows.Next() {
		var b domain.Building
		if err := rows.Scan(&b.Code, &b.Name, &b.Campus, &b.Address, &b.Location.Lat, &b.Location.Lng); err != nil {
			return nil, fmt.Errorf("list buildings: scan row: %w", err)
		}
		buildings = append(buildings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list buildings: row iteration: %w", err)
	}

	return buildings, nil
}

// Return the campus reference points, ordered by code.
func (s *SqliteBuildingRepository) ListCampuses(ctx context.Context) ([]*domain.Campus, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite building repository: DB is nil")
	}

	query := `
	SELECT
		code,
		name,
		lat,
		lng
	FROM campuses
	ORDER BY code;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list campuses: query campuses table: %w", err)
	}
	defer rows.Close()

	campuses := make([]*domain.Campus, 0, 2)
	for rows.Next() {
		var c domain.Campus
		if err := rows.Scan(&c.Code, &c.Name, &c.Location.Lat, &c.Location.Lng); err != nil {
			return nil, fmt.Errorf("list campuses: scan row: %w", err)
		}
		campuses = append(campuses, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list campuses: row iteration: %w", err)
	}

	return campuses, nil
}
