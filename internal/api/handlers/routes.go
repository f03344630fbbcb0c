package handlers

import (
	"net/http"
	"strconv"

	"campus-transit-service/internal/api/dto"
	"campus-transit-service/internal/domain"
	"campus-transit-service/internal/ports"
	"campus-transit-service/internal/services"
)

const (
	errInvalidCoordinates = "Invalid origin/destination coordinates"
	errFetchFailed        = "Failed to fetch directions"
)

// RouteHandler exposes the transit-options resolution endpoint.
type RouteHandler struct {
	Provider ports.DirectionsProvider
	Schedule *services.ShuttleSchedule
}

// parseCoordinate reads one lat/lng pair from the query string.
// Missing or non-numeric values are rejected before the aggregator runs.
func parseCoordinate(r *http.Request, latKey, lngKey string) (domain.Coordinate, bool) {
	lat, err := strconv.ParseFloat(r.URL.Query().Get(latKey), 64)
	if err != nil {
		return domain.Coordinate{}, false
	}
	lng, err := strconv.ParseFloat(r.URL.Query().Get(lngKey), 64)
	if err != nil {
		return domain.Coordinate{}, false
	}
	return domain.Coordinate{Lat: lat, Lng: lng}, true
}

// Options resolves the route options between origin and destination.
func (h *RouteHandler) Options(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	origin, ok := parseCoordinate(r, "originLat", "originLng")
	if !ok {
		writeError(w, r, http.StatusBadRequest, errInvalidCoordinates)
		return
	}

	destination, ok := parseCoordinate(r, "destLat", "destLng")
	if !ok {
		writeError(w, r, http.StatusBadRequest, errInvalidCoordinates)
		return
	}

	req := services.TransportOptionsRequest{
		Origin:      origin,
		Destination: destination,
		ClientTime:  r.URL.Query().Get("clientTime"),
	}

	result := services.GetTransportOptionsResult(r.Context(), req, h.Provider, h.Schedule)
	if result.Meta.Reason == domain.ReasonRequestFailed {
		writeError(w, r, http.StatusInternalServerError, errFetchFailed)
		return
	}

	res := dto.ListRoutesResponse{Routes: make([]dto.RouteResponse, 0, len(result.Routes))}
	for _, rec := range result.Routes {
		res.Routes = append(res.Routes, dto.RouteResponse{
			Mode:          string(rec.Mode),
			Duration:      dto.MetricResponse{Value: rec.Duration.Value, Text: rec.Duration.Text},
			Distance:      dto.MetricResponse{Value: rec.Distance.Value, Text: rec.Distance.Text},
			Polyline:      rec.Polyline,
			NextDeparture: rec.NextDeparture,
			ScheduleNote:  rec.ScheduleNote,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
