package ports

import (
	"context"

	"campus-transit-service/internal/domain"
)

// Port: a boundary for retrieving the static campus dataset.
type BuildingRepository interface {
	// Retrieve all buildings, ordered by code.
	ListBuildings(ctx context.Context) ([]*domain.Building, error)
	// Retrieve the campus reference points.
	ListCampuses(ctx context.Context) ([]*domain.Campus, error)
}
