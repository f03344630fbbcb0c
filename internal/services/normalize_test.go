package services

import (
	"testing"

	"campus-transit-service/internal/domain"
	"campus-transit-service/internal/ports"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestNormalizeRouteMapsFirstLeg(t *testing.T) {
	raw := &ports.ProviderRoute{
		Legs: []ports.ProviderLeg{
			{
				Duration: ports.LegMetric{Value: intPtr(1260), Text: strPtr("21 mins")},
				Distance: ports.LegMetric{Value: intPtr(7400), Text: strPtr("7.4 km")},
			},
			{
				Duration: ports.LegMetric{Value: intPtr(99), Text: strPtr("ignored")},
				Distance: ports.LegMetric{Value: intPtr(99), Text: strPtr("ignored")},
			},
		},
	}
	raw.OverviewPolyline.Points = "abc123"

	rec := NormalizeRoute(raw, domain.ModeTransit)
	if rec == nil {
		t.Fatal("expected a record, got nil")
	}

	if rec.Mode != domain.ModeTransit {
		t.Errorf("mode = %q, want %q", rec.Mode, domain.ModeTransit)
	}
	if rec.Duration.Value != 1260 || rec.Duration.Text != "21 mins" {
		t.Errorf("duration = %+v, want {1260 21 mins}", rec.Duration)
	}
	if rec.Distance.Value != 7400 || rec.Distance.Text != "7.4 km" {
		t.Errorf("distance = %+v, want {7400 7.4 km}", rec.Distance)
	}
	if rec.Polyline != "abc123" {
		t.Errorf("polyline = %q, want %q", rec.Polyline, "abc123")
	}
}

func TestNormalizeRouteMissingFieldsDefault(t *testing.T) {
	raw := &ports.ProviderRoute{
		Legs: []ports.ProviderLeg{{}},
	}

	rec := NormalizeRoute(raw, domain.ModeWalking)
	if rec == nil {
		t.Fatal("expected a record, got nil")
	}

	if rec.Duration.Value != 0 || rec.Duration.Text != "" {
		t.Errorf("duration = %+v, want zero defaults", rec.Duration)
	}
	if rec.Distance.Value != 0 || rec.Distance.Text != "" {
		t.Errorf("distance = %+v, want zero defaults", rec.Distance)
	}
	if rec.Polyline != "" {
		t.Errorf("polyline = %q, want empty", rec.Polyline)
	}
}

func TestNormalizeRouteNoLegs(t *testing.T) {
	if rec := NormalizeRoute(&ports.ProviderRoute{Legs: []ports.ProviderLeg{}}, domain.ModeWalking); rec != nil {
		t.Errorf("empty legs: expected nil, got %+v", rec)
	}
	if rec := NormalizeRoute(&ports.ProviderRoute{}, domain.ModeWalking); rec != nil {
		t.Errorf("absent legs: expected nil, got %+v", rec)
	}
	if rec := NormalizeRoute(nil, domain.ModeWalking); rec != nil {
		t.Errorf("nil route: expected nil, got %+v", rec)
	}
}
