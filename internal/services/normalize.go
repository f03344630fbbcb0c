package services

import (
	"campus-transit-service/internal/domain"
	"campus-transit-service/internal/ports"
)

// metricOrDefault applies the normalizer's defaulting rule: a missing
// numeric value becomes 0, missing text becomes "".
func metricOrDefault(m ports.LegMetric) domain.Metric {
	out := domain.Metric{}
	if m.Value != nil {
		out.Value = *m.Value
	}
	if m.Text != nil {
		out.Text = *m.Text
	}
	return out
}

// NormalizeRoute converts a raw provider route into a RouteRecord under
// the given mode tag. Only the first leg is read. Returns nil when the
// route carries no legs. Pure; no validation beyond field presence.
func NormalizeRoute(raw *ports.ProviderRoute, mode domain.TravelMode) *domain.RouteRecord {
	if raw == nil || len(raw.Legs) == 0 {
		return nil
	}

	leg := raw.Legs[0]

	return &domain.RouteRecord{
		Mode:     mode,
		Duration: metricOrDefault(leg.Duration),
		Distance: metricOrDefault(leg.Distance),
		Polyline: raw.OverviewPolyline.Points,
	}
}
