package directions

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/merapruthvi/greenpulse/backend/internal/domain/providers"
)

const (
	googleDirectionsURL = "https://maps.googleapis.com/maps/api/directions/json"
	defaultHTTPTimeout  = 8 * time.Second
)

// GoogleDirectionsProvider implements the DirectionsProvider using the
// Google Directions JSON API.
type GoogleDirectionsProvider struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
}

// NewGoogleDirectionsProvider creates a new Google directions provider.
func NewGoogleDirectionsProvider(apiKey string) providers.DirectionsProvider {
	return NewGoogleDirectionsProviderWithOptions(apiKey, googleDirectionsURL, nil)
}

// NewGoogleDirectionsProviderWithOptions allows overriding base URL and HTTP client (used for tests).
func NewGoogleDirectionsProviderWithOptions(apiKey, baseURL string, httpClient *http.Client) providers.DirectionsProvider {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = googleDirectionsURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &GoogleDirectionsProvider{
		apiKey:     apiKey,
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}

// GetDirections resolves a route between two addresses for a travel mode.
func (g *GoogleDirectionsProvider) GetDirections(ctx context.Context, origin, destination, mode string) (*providers.Directions, error) {
	if g.apiKey == "" {
		return nil, fmt.Errorf("google maps api key is required")
	}
	if strings.TrimSpace(origin) == "" || strings.TrimSpace(destination) == "" {
		return nil, fmt.Errorf("origin and destination are required")
	}

	params := url.Values{}
	params.Set("origin", origin)
	params.Set("destination", destination)
	params.Set("mode", strings.ToLower(mode))
	params.Set("key", g.apiKey)

	reqURL := fmt.Sprintf("%s?%s", g.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build directions request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("directions request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("directions request returned status %d", resp.StatusCode)
	}

	var payload googleDirectionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode directions response: %w", err)
	}

	if payload.Status != "OK" {
		if payload.ErrorMessage != "" {
			return nil, fmt.Errorf("directions request failed: %s - %s", payload.Status, payload.ErrorMessage)
		}
		return nil, fmt.Errorf("directions request failed: %s", payload.Status)
	}

	if len(payload.Routes) == 0 || len(payload.Routes[0].Legs) == 0 {
		return nil, fmt.Errorf("no route found")
	}

	route := payload.Routes[0]
	leg := route.Legs[0]

	steps := make([]providers.RouteStep, 0, len(leg.Steps))
	for _, step := range leg.Steps {
		steps = append(steps, providers.RouteStep{
			Instruction: step.HTMLInstructions,
			Distance:    step.Distance.Text,
			Duration:    step.Duration.Text,
		})
	}

	return &providers.Directions{
		Polyline:        route.OverviewPolyline.Points,
		DistanceMeters:  leg.Distance.Value,
		DurationSeconds: leg.Duration.Value,
		Steps:           steps,
		StartAddress:    leg.StartAddress,
		EndAddress:      leg.EndAddress,
	}, nil
}

type googleDirectionsResponse struct {
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message,omitempty"`
	Routes       []googleRoute `json:"routes"`
}

type googleRoute struct {
	OverviewPolyline googlePolyline `json:"overview_polyline"`
	Legs             []googleLeg    `json:"legs"`
}

type googlePolyline struct {
	Points string `json:"points"`
}

type googleLeg struct {
	Distance     googleTextValue `json:"distance"`
	Duration     googleTextValue `json:"duration"`
	StartAddress string          `json:"start_address"`
	EndAddress   string          `json:"end_address"`
	Steps        []googleStep    `json:"steps"`
}

type googleTextValue struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

type googleStep struct {
	HTMLInstructions string          `json:"html_instructions"`
	Distance         googleTextValue `json:"distance"`
	Duration         googleTextValue `json:"duration"`
}
