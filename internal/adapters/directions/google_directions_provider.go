package directions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"campus-transit-service/internal/domain"
	"campus-transit-service/internal/platform/obs"
	"campus-transit-service/internal/ports"
)

const statusOK = "OK"

// GoogleDirectionsProvider implements DirectionsProvider against the
// Google Maps Directions API.
//
// Each call issues exactly one GET. API-level anomalies (ZERO_RESULTS,
// any non-OK status, a body that does not decode) collapse to a nil
// payload; only transport failures surface as errors. The provider is
// safe for concurrent use.
type GoogleDirectionsProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
}

func NewGoogleDirectionsProvider(apiKey string) (*GoogleDirectionsProvider, error) {
	if apiKey == "" {
		return nil, errors.New("directions api key is empty")
	}

	provider := &GoogleDirectionsProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://maps.googleapis.com",
	}

	return provider, nil
}

// FetchDirections requests routes for one origin/destination/mode triple.
func (g *GoogleDirectionsProvider) FetchDirections(
	ctx context.Context,
	origin domain.Coordinate,
	destination domain.Coordinate,
	mode domain.TravelMode,
) (_ *ports.DirectionsPayload, err error) {
	defer obs.Time(ctx, "google.FetchDirections")(&err)

	endpoint := g.baseURL + "/maps/api/directions/json"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create directions request: %w", err)
	}

	q := url.Values{}
	q.Set("origin", origin.String())
	q.Set("destination", destination.String())
	q.Set("mode", string(mode))
	q.Set("key", g.apiKey)
	req.URL.RawQuery = q.Encode()

	resp, err := g.session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("directions request %s: %w", mode, err)
	}
	defer resp.Body.Close()

	// A failure while reading the body is a transport failure; only a
	// fully received body that fails to decode counts as garbage.
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read directions response %s: %w", mode, err)
	}

	var payload ports.DirectionsPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		// A reachable provider that sends garbage is an empty result,
		// not a failure.
		return nil, nil
	}

	if payload.Status != statusOK || len(payload.Routes) == 0 {
		return nil, nil
	}

	return &payload, nil
}
