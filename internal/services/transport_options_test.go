package services

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"campus-transit-service/internal/adapters/directions"
	"campus-transit-service/internal/domain"
	"campus-transit-service/internal/ports"
)

func payloadWith(durVal int, durText string, distVal int, distText, polyline string) *ports.DirectionsPayload {
	route := ports.ProviderRoute{
		Legs: []ports.ProviderLeg{
			{
				Duration: ports.LegMetric{Value: intPtr(durVal), Text: strPtr(durText)},
				Distance: ports.LegMetric{Value: intPtr(distVal), Text: strPtr(distText)},
			},
		},
	}
	route.OverviewPolyline.Points = polyline
	return &ports.DirectionsPayload{Status: "OK", Routes: []ports.ProviderRoute{route}}
}

func TestTransportOptionsMergesAllThreeModes(t *testing.T) {
	provider := directions.NewMockDirectionsProvider()
	provider.Stub(SGWAnchor, LoyolaAnchor, domain.ModeWalking, payloadWith(5400, "1 hour 30 mins", 7000, "7.0 km", "walkline"))
	provider.Stub(SGWAnchor, LoyolaAnchor, domain.ModeTransit, payloadWith(1260, "21 mins", 7400, "7.4 km", "transitline"))

	schedule := NewShuttleSchedule(time.UTC, false)
	req := TransportOptionsRequest{
		Origin:      SGWAnchor,
		Destination: LoyolaAnchor,
		ClientTime:  "2026-02-11T09:47:00Z",
	}

	result := GetTransportOptionsResult(context.Background(), req, provider, schedule)

	if result.Meta.Reason != "" {
		t.Fatalf("unexpected reason %q", result.Meta.Reason)
	}
	if len(result.Routes) != 3 {
		t.Fatalf("expected 3 routes, got %d", len(result.Routes))
	}

	if result.Routes[0].Mode != domain.ModeWalking {
		t.Errorf("routes[0].Mode = %q, want walking", result.Routes[0].Mode)
	}
	if result.Routes[1].Mode != domain.ModeTransit {
		t.Errorf("routes[1].Mode = %q, want transit", result.Routes[1].Mode)
	}
	if result.Routes[2].Mode != domain.ModeShuttle {
		t.Errorf("routes[2].Mode = %q, want concordia_shuttle", result.Routes[2].Mode)
	}

	// The shuttle reuses the transit leg's measured metrics.
	shuttle := result.Routes[2]
	if shuttle.Duration.Value != 1260 || shuttle.Distance.Value != 7400 {
		t.Errorf("shuttle metrics = %+v/%+v, want transit leg values", shuttle.Duration, shuttle.Distance)
	}
	if shuttle.Polyline != "" {
		t.Errorf("shuttle polyline = %q, want empty", shuttle.Polyline)
	}
	if shuttle.NextDeparture == nil {
		t.Fatal("shuttle next departure not set")
	}
	want := time.Date(2026, time.February, 11, 10, 0, 0, 0, time.UTC)
	if !shuttle.NextDeparture.Equal(want) {
		t.Errorf("next departure = %v, want %v", shuttle.NextDeparture, want)
	}
}

func TestTransportOptionsShuttleSkippedOnWeekend(t *testing.T) {
	provider := directions.NewMockDirectionsProvider()
	provider.Stub(SGWAnchor, LoyolaAnchor, domain.ModeWalking, payloadWith(5400, "1 hour 30 mins", 7000, "7.0 km", ""))
	provider.Stub(SGWAnchor, LoyolaAnchor, domain.ModeTransit, payloadWith(1260, "21 mins", 7400, "7.4 km", ""))

	schedule := NewShuttleSchedule(time.UTC, false)
	req := TransportOptionsRequest{
		Origin:      SGWAnchor,
		Destination: LoyolaAnchor,
		ClientTime:  "2026-02-14T10:00:00Z",
	}

	result := GetTransportOptionsResult(context.Background(), req, provider, schedule)

	if len(result.Routes) != 2 {
		t.Fatalf("expected 2 routes, got %d", len(result.Routes))
	}
	for _, r := range result.Routes {
		if r.Mode == domain.ModeShuttle {
			t.Error("shuttle must not appear on a weekend")
		}
	}
}

func TestTransportOptionsShuttleOnlyWhenProvidersEmpty(t *testing.T) {
	// Both modes return ZERO_RESULTS, but the shuttle still runs: the
	// record is offered with zero-default metrics.
	provider := directions.NewMockDirectionsProvider()

	schedule := NewShuttleSchedule(time.UTC, false)
	req := TransportOptionsRequest{
		Origin:      LoyolaAnchor,
		Destination: SGWAnchor,
		ClientTime:  "2026-02-11T08:05:00Z",
	}

	result := GetTransportOptionsResult(context.Background(), req, provider, schedule)

	if result.Meta.Reason != "" {
		t.Fatalf("unexpected reason %q", result.Meta.Reason)
	}
	if len(result.Routes) != 1 || result.Routes[0].Mode != domain.ModeShuttle {
		t.Fatalf("expected only the shuttle route, got %+v", result.Routes)
	}
	if result.Routes[0].Duration.Value != 0 || result.Routes[0].Distance.Value != 0 {
		t.Errorf("expected zero-default metrics, got %+v", result.Routes[0])
	}
}

func TestTransportOptionsNoRoutes(t *testing.T) {
	provider := directions.NewMockDirectionsProvider()

	schedule := NewShuttleSchedule(time.UTC, false)
	req := TransportOptionsRequest{
		Origin:      domain.Coordinate{Lat: 45.5087, Lng: -73.554},
		Destination: domain.Coordinate{Lat: 45.5017, Lng: -73.5673},
		ClientTime:  "2026-02-11T10:00:00Z",
	}

	result := GetTransportOptionsResult(context.Background(), req, provider, schedule)

	if len(result.Routes) != 0 {
		t.Fatalf("expected no routes, got %+v", result.Routes)
	}
	if result.Meta.Reason != domain.ReasonNoRoutes {
		t.Errorf("reason = %q, want %q", result.Meta.Reason, domain.ReasonNoRoutes)
	}
}

func TestTransportOptionsCollapsesOnTransportFailure(t *testing.T) {
	// One failed mode discards the other mode's successful result.
	provider := directions.NewMockDirectionsProvider()
	provider.Stub(SGWAnchor, LoyolaAnchor, domain.ModeWalking, payloadWith(5400, "1 hour 30 mins", 7000, "7.0 km", ""))
	provider.StubError(SGWAnchor, LoyolaAnchor, domain.ModeTransit, errors.New("connection refused"))

	schedule := NewShuttleSchedule(time.UTC, false)
	req := TransportOptionsRequest{
		Origin:      SGWAnchor,
		Destination: LoyolaAnchor,
		ClientTime:  "2026-02-11T10:00:00Z",
	}

	result := GetTransportOptionsResult(context.Background(), req, provider, schedule)

	if len(result.Routes) != 0 {
		t.Fatalf("expected no routes, got %+v", result.Routes)
	}
	if result.Meta.Reason != domain.ReasonRequestFailed {
		t.Errorf("reason = %q, want %q", result.Meta.Reason, domain.ReasonRequestFailed)
	}
}

func TestTransportOptionsGarbageClientTimeFallsBack(t *testing.T) {
	// An unparseable clientTime must not fail the aggregation: evaluation
	// falls back to server time. The off-campus pair keeps the shuttle out
	// regardless of what "now" happens to be.
	origin := domain.Coordinate{Lat: 45.5087, Lng: -73.554}
	destination := domain.Coordinate{Lat: 45.5017, Lng: -73.5673}

	provider := directions.NewMockDirectionsProvider()
	provider.Stub(origin, destination, domain.ModeWalking, payloadWith(600, "10 mins", 800, "0.8 km", ""))
	provider.Stub(origin, destination, domain.ModeTransit, payloadWith(300, "5 mins", 900, "0.9 km", ""))

	schedule := NewShuttleSchedule(time.UTC, false)
	req := TransportOptionsRequest{
		Origin:      origin,
		Destination: destination,
		ClientTime:  "not-a-time",
	}

	result := GetTransportOptionsResult(context.Background(), req, provider, schedule)

	if result.Meta.Reason != "" {
		t.Fatalf("unexpected reason %q", result.Meta.Reason)
	}
	if len(result.Routes) != 2 {
		t.Fatalf("expected 2 routes, got %+v", result.Routes)
	}
	if result.Routes[0].Mode != domain.ModeWalking || result.Routes[1].Mode != domain.ModeTransit {
		t.Errorf("route order = %q/%q", result.Routes[0].Mode, result.Routes[1].Mode)
	}
}

func TestTransportOptionsZonelessClientTime(t *testing.T) {
	// A zone-less ISO-8601 clientTime is read in the schedule's location.
	provider := directions.NewMockDirectionsProvider()
	provider.Stub(SGWAnchor, LoyolaAnchor, domain.ModeTransit, payloadWith(1260, "21 mins", 7400, "7.4 km", ""))

	schedule := NewShuttleSchedule(time.UTC, false)
	req := TransportOptionsRequest{
		Origin:      SGWAnchor,
		Destination: LoyolaAnchor,
		ClientTime:  "2026-02-11T09:47:00",
	}

	result := GetTransportOptionsResult(context.Background(), req, provider, schedule)

	if len(result.Routes) != 2 {
		t.Fatalf("expected transit + shuttle, got %+v", result.Routes)
	}
	shuttle := result.Routes[1]
	if shuttle.Mode != domain.ModeShuttle || shuttle.NextDeparture == nil {
		t.Fatalf("expected an active shuttle, got %+v", shuttle)
	}
	want := time.Date(2026, time.February, 11, 10, 0, 0, 0, time.UTC)
	if !shuttle.NextDeparture.Equal(want) {
		t.Errorf("next departure = %v, want %v", shuttle.NextDeparture, want)
	}
}

func TestTransportOptionsDeterministicForFixedTime(t *testing.T) {
	provider := directions.NewMockDirectionsProvider()
	provider.Stub(SGWAnchor, LoyolaAnchor, domain.ModeWalking, payloadWith(5400, "1 hour 30 mins", 7000, "7.0 km", "w"))
	provider.Stub(SGWAnchor, LoyolaAnchor, domain.ModeTransit, payloadWith(1260, "21 mins", 7400, "7.4 km", "t"))

	schedule := NewShuttleSchedule(time.UTC, false)
	req := TransportOptionsRequest{
		Origin:      SGWAnchor,
		Destination: LoyolaAnchor,
		ClientTime:  "2026-02-11T09:47:00Z",
	}

	first := GetTransportOptionsResult(context.Background(), req, provider, schedule)
	second := GetTransportOptionsResult(context.Background(), req, provider, schedule)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated calls differ:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestGetTransportOptionsWrapperDropsMeta(t *testing.T) {
	provider := directions.NewMockDirectionsProvider()
	provider.Stub(SGWAnchor, LoyolaAnchor, domain.ModeWalking, payloadWith(5400, "1 hour 30 mins", 7000, "7.0 km", ""))

	schedule := NewShuttleSchedule(time.UTC, false)
	req := TransportOptionsRequest{
		Origin:      SGWAnchor,
		Destination: LoyolaAnchor,
		ClientTime:  "2026-02-14T10:00:00Z",
	}

	routes := GetTransportOptions(context.Background(), req, provider, schedule)
	if len(routes) != 1 || routes[0].Mode != domain.ModeWalking {
		t.Errorf("wrapper routes = %+v, want single walking route", routes)
	}
}
