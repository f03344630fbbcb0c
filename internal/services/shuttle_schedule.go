package services

import (
	"time"

	"campus-transit-service/internal/domain"
)

// Coordinates within this many degrees of an anchor count as that campus.
// The anchors are fixed constants the client echoes back, so the tolerance
// only absorbs float round-tripping (~11 m).
const anchorTolerance = 1e-4

// Campus anchor points used for shuttle eligibility.
var (
	SGWAnchor    = domain.Coordinate{Lat: 45.4972159, Lng: -73.5789731}
	LoyolaAnchor = domain.Coordinate{Lat: 45.4581281, Lng: -73.6391205}
)

// One academic-term operating window. Start and End are midnight-anchored
// dates in the schedule's time zone; End is inclusive through that day.
type TermWindow struct {
	Start time.Time
	End   time.Time
}

// A scheduled weekday departure, local time.
type DepartureSlot struct {
	Hour   int
	Minute int
}

// ShuttleDecision is the evaluator's verdict for one request.
// NextDeparture is meaningful only when Active is true.
type ShuttleDecision struct {
	Active        bool
	NextDeparture time.Time
}

// ShuttleSchedule holds the campus shuttle's static operating tables.
// It is read-only after construction and stateless per evaluation:
// the outcome is a pure function of (origin, destination, at, Override).
type ShuttleSchedule struct {
	SGW    domain.Coordinate
	Loyola domain.Coordinate

	// Operating windows keyed by calendar year. A year with no entry is
	// ineligible entirely.
	Terms map[int][]TermWindow

	// Weekday departures in ascending order.
	Departures []DepartureSlot

	// Campus-local time zone for all cutoff arithmetic.
	Location *time.Location

	// Override relaxes the season and weekday checks (staging/test use).
	// It never relaxes the last-departure cutoff.
	Override bool
}

// NewShuttleSchedule returns the production schedule tables.
func NewShuttleSchedule(loc *time.Location, override bool) *ShuttleSchedule {
	if loc == nil {
		loc = time.UTC
	}

	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, loc)
	}

	slots := make([]DepartureSlot, 0, 23)
	for h := 7; h <= 18; h++ {
		slots = append(slots, DepartureSlot{Hour: h, Minute: 30})
		if h < 18 {
			slots = append(slots, DepartureSlot{Hour: h + 1, Minute: 0})
		}
	}

	return &ShuttleSchedule{
		SGW:    SGWAnchor,
		Loyola: LoyolaAnchor,
		Terms: map[int][]TermWindow{
			2025: {
				{Start: date(2025, time.January, 13), End: date(2025, time.April, 16)},
				{Start: date(2025, time.September, 3), End: date(2025, time.December, 2)},
			},
			2026: {
				{Start: date(2026, time.January, 14), End: date(2026, time.April, 15)},
				{Start: date(2026, time.September, 8), End: date(2026, time.December, 7)},
			},
		},
		Departures: slots,
		Location:   loc,
		Override:   override,
	}
}

// servesPair reports whether the endpoints are the two campus anchors,
// in either direction. Same-campus and off-campus pairs never qualify.
func (s *ShuttleSchedule) servesPair(origin, destination domain.Coordinate) bool {
	if origin.CloseTo(s.SGW, anchorTolerance) && destination.CloseTo(s.Loyola, anchorTolerance) {
		return true
	}
	return origin.CloseTo(s.Loyola, anchorTolerance) && destination.CloseTo(s.SGW, anchorTolerance)
}

func (s *ShuttleSchedule) inSeason(local time.Time) bool {
	for _, w := range s.Terms[local.Year()] {
		if !local.Before(w.Start) && local.Before(w.End.AddDate(0, 0, 1)) {
			return true
		}
	}
	return false
}

// Evaluate decides whether the shuttle is offered for this trip at this
// instant and, if so, when it next departs.
func (s *ShuttleSchedule) Evaluate(origin, destination domain.Coordinate, at time.Time) ShuttleDecision {
	if !s.servesPair(origin, destination) {
		return ShuttleDecision{}
	}

	local := at.In(s.Location)

	if !s.Override {
		switch local.Weekday() {
		case time.Saturday, time.Sunday:
			return ShuttleDecision{}
		}
		if !s.inSeason(local) {
			return ShuttleDecision{}
		}
	}

	// Earliest departure at or after the evaluation time, same day.
	// Past the last slot the shuttle is simply not offered.
	for _, slot := range s.Departures {
		candidate := time.Date(local.Year(), local.Month(), local.Day(), slot.Hour, slot.Minute, 0, 0, s.Location)
		if !candidate.Before(local) {
			return ShuttleDecision{Active: true, NextDeparture: candidate}
		}
	}

	return ShuttleDecision{}
}
