package ports

import (
	"context"

	"campus-transit-service/internal/domain"
)

// LegMetric is a duration or distance field as the provider sends it.
// Pointer fields let the normalizer distinguish "absent" from zero and
// apply its own defaults; the external schema is not assumed stable
// beyond the fields read here.
type LegMetric struct {
	Value *int    `json:"value"`
	Text  *string `json:"text"`
}

// ProviderLeg is one continuous segment of a provider route.
type ProviderLeg struct {
	Duration LegMetric `json:"duration"`
	Distance LegMetric `json:"distance"`
}

// ProviderRoute is a single raw route from the directions provider.
type ProviderRoute struct {
	Legs             []ProviderLeg `json:"legs"`
	OverviewPolyline struct {
		Points string `json:"points"`
	} `json:"overview_polyline"`
}

// DirectionsPayload is the decoded provider response body.
type DirectionsPayload struct {
	Status string          `json:"status"`
	Routes []ProviderRoute `json:"routes"`
}

// Contract for fetching raw directions between two coordinates.
//
// Implementations return (nil, nil) when the provider was reachable but
// produced nothing usable (non-OK status, zero routes, malformed body).
// A non-nil error means the provider could not be reached at all; it is
// never returned for API-level "no results" conditions.
type DirectionsProvider interface {
	FetchDirections(ctx context.Context, origin, destination domain.Coordinate, mode domain.TravelMode) (*DirectionsPayload, error)
}
