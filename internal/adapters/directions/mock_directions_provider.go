package directions

import (
	"context"

	"campus-transit-service/internal/domain"
	"campus-transit-service/internal/ports"
)

type mockEntry struct {
	payload *ports.DirectionsPayload
	err     error
}

// MockDirectionsProvider serves canned payloads keyed by
// "origin|destination|mode". Keys with no entry resolve to an empty
// result, the same shape a ZERO_RESULTS response takes.
type MockDirectionsProvider struct {
	m map[string]mockEntry
}

func NewMockDirectionsProvider() *MockDirectionsProvider {
	return &MockDirectionsProvider{m: make(map[string]mockEntry)}
}

func mockKey(origin, destination domain.Coordinate, mode domain.TravelMode) string {
	return origin.String() + "|" + destination.String() + "|" + string(mode)
}

// Stub a successful payload for the given triple.
func (p *MockDirectionsProvider) Stub(origin, destination domain.Coordinate, mode domain.TravelMode, payload *ports.DirectionsPayload) {
	p.m[mockKey(origin, destination, mode)] = mockEntry{payload: payload}
}

// StubError makes the given triple fail at the transport level.
func (p *MockDirectionsProvider) StubError(origin, destination domain.Coordinate, mode domain.TravelMode, err error) {
	p.m[mockKey(origin, destination, mode)] = mockEntry{err: err}
}

func (p *MockDirectionsProvider) FetchDirections(
	ctx context.Context,
	origin domain.Coordinate,
	destination domain.Coordinate,
	mode domain.TravelMode,
) (*ports.DirectionsPayload, error) {
	e, ok := p.m[mockKey(origin, destination, mode)]
	if !ok {
		return nil, nil
	}
	if e.err != nil {
		return nil, e.err
	}
	return e.payload, nil
}
