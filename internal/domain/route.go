package domain

import "time"

// Travel mode of a route option. The set is open: the directions provider
// mode strings pass through unchanged, and the shuttle uses its own tag.
type TravelMode string

const (
	ModeWalking TravelMode = "walking"
	ModeTransit TravelMode = "transit"
	ModeShuttle TravelMode = "concordia_shuttle"
)

// A duration or distance reading: the numeric value (seconds or meters)
// plus the provider's display text.
type Metric struct {
	Value int
	Text  string
}

// RouteRecord is one normalized route option between an origin and a
// destination. It is immutable result data: built once per request and
// never mutated after construction.
//
// Polyline is empty for the shuttle. NextDeparture and ScheduleNote are
// set only on shuttle records.
type RouteRecord struct {
	Mode          TravelMode
	Duration      Metric
	Distance      Metric
	Polyline      string
	NextDeparture *time.Time
	ScheduleNote  string
}

// ReasonCode explains an empty route list.
type ReasonCode string

const (
	// Providers were reachable but produced no usable route.
	ReasonNoRoutes ReasonCode = "NO_ROUTES"
	// A provider call failed at the transport level.
	ReasonRequestFailed ReasonCode = "REQUEST_FAILED"
)

type ResultMeta struct {
	Reason ReasonCode
}

// AggregationResult is the aggregator's full output. Meta.Reason is
// populated only when Routes is empty.
type AggregationResult struct {
	Routes []RouteRecord
	Meta   ResultMeta
}
