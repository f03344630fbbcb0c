package services

import (
	"context"
	"log"
	"sync"
	"time"

	"campus-transit-service/internal/domain"
	"campus-transit-service/internal/ports"
)

type fetchResult struct {
	mode    domain.TravelMode
	payload *ports.DirectionsPayload
	err     error
}

type TransportOptionsRequest struct {
	Origin      domain.Coordinate
	Destination domain.Coordinate
	// Optional client timestamp: RFC 3339, or zone-less ISO-8601 taken in
	// the schedule's location. Absent or unparseable values fall back to
	// server time.
	ClientTime string
}

// Zone-less ISO-8601 timestamps are interpreted in the schedule's location.
const clientTimeLocalLayout = "2006-01-02T15:04:05"

// evaluationTime resolves the instant the shuttle schedule is judged at.
// Accepts RFC 3339 or a zone-less ISO-8601 timestamp; anything else falls
// back to server time.
func evaluationTime(clientTime string, loc *time.Location) time.Time {
	if clientTime != "" {
		if t, err := time.Parse(time.RFC3339, clientTime); err == nil {
			return t
		}
		if t, err := time.ParseInLocation(clientTimeLocalLayout, clientTime, loc); err == nil {
			return t
		}
	}
	return time.Now()
}

// GetTransportOptionsResult resolves the route options between two points.
//
// Walking and transit are fetched from the provider concurrently and both
// are always attempted; the shuttle is merged in afterwards when its
// schedule says it runs. The result order is fixed: walking, transit,
// shuttle. The function never panics or leaks provider errors: a
// transport-level failure on either mode collapses the whole result to an
// empty list with reason REQUEST_FAILED, and "provider had nothing" is an
// empty list with reason NO_ROUTES.
func GetTransportOptionsResult(
	ctx context.Context,
	req TransportOptionsRequest,
	provider ports.DirectionsProvider,
	schedule *ShuttleSchedule,
) domain.AggregationResult {
	modes := []domain.TravelMode{domain.ModeWalking, domain.ModeTransit}

	resultsCh := make(chan fetchResult, len(modes))
	var wg sync.WaitGroup

	for _, m := range modes {
		wg.Add(1)
		go func(mode domain.TravelMode) {
			defer wg.Done()
			payload, err := provider.FetchDirections(ctx, req.Origin, req.Destination, mode)
			resultsCh <- fetchResult{mode: mode, payload: payload, err: err}
		}(m)
	}

	wg.Wait()
	close(resultsCh)

	byMode := make(map[domain.TravelMode]*ports.DirectionsPayload, len(modes))
	var fetchErr error
	for r := range resultsCh {
		if r.err != nil {
			if fetchErr == nil {
				fetchErr = r.err
			}
			continue
		}
		byMode[r.mode] = r.payload
	}

	// All-or-nothing: one failed mode discards the other mode's result.
	if fetchErr != nil {
		log.Printf("transport options: provider failure: %v", fetchErr)
		return domain.AggregationResult{
			Routes: []domain.RouteRecord{},
			Meta:   domain.ResultMeta{Reason: domain.ReasonRequestFailed},
		}
	}

	routes := make([]domain.RouteRecord, 0, len(modes)+1)
	var transitRecord *domain.RouteRecord

	for _, mode := range modes {
		payload := byMode[mode]
		if payload == nil || len(payload.Routes) == 0 {
			continue
		}
		rec := NormalizeRoute(&payload.Routes[0], mode)
		if rec == nil {
			continue
		}
		if mode == domain.ModeTransit {
			transitRecord = rec
		}
		routes = append(routes, *rec)
	}

	decision := schedule.Evaluate(req.Origin, req.Destination, evaluationTime(req.ClientTime, schedule.Location))
	if decision.Active {
		shuttle := domain.RouteRecord{Mode: domain.ModeShuttle}
		// The shuttle reuses the measured transit leg metrics when the
		// provider produced them.
		if transitRecord != nil {
			shuttle.Duration = transitRecord.Duration
			shuttle.Distance = transitRecord.Distance
		}
		dep := decision.NextDeparture
		shuttle.NextDeparture = &dep
		shuttle.ScheduleNote = "Next shuttle departs at " + dep.Format("15:04")
		routes = append(routes, shuttle)
	}

	if len(routes) == 0 {
		return domain.AggregationResult{
			Routes: routes,
			Meta:   domain.ResultMeta{Reason: domain.ReasonNoRoutes},
		}
	}

	return domain.AggregationResult{Routes: routes}
}

// GetTransportOptions is a convenience wrapper that discards the meta
// block and returns only the route list.
func GetTransportOptions(
	ctx context.Context,
	req TransportOptionsRequest,
	provider ports.DirectionsProvider,
	schedule *ShuttleSchedule,
) []domain.RouteRecord {
	return GetTransportOptionsResult(ctx, req, provider, schedule).Routes
}
