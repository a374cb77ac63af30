package directions

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoogleDirectionsProvider_GetDirections(t *testing.T) {
	t.Run("parses a successful response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Lagos", r.URL.Query().Get("origin"))
			assert.Equal(t, "Abuja", r.URL.Query().Get("destination"))
			assert.Equal(t, "driving", r.URL.Query().Get("mode"))
			assert.Equal(t, "test-key", r.URL.Query().Get("key"))

			payload := map[string]interface{}{
				"status": "OK",
				"routes": []map[string]interface{}{
					{
						"overview_polyline": map[string]string{"points": "abc123"},
						"legs": []map[string]interface{}{
							{
								"distance":      map[string]interface{}{"text": "12 km", "value": 12000},
								"duration":      map[string]interface{}{"text": "20 mins", "value": 1200},
								"start_address": "Lagos, Nigeria",
								"end_address":   "Abuja, Nigeria",
								"steps": []map[string]interface{}{
									{
										"html_instructions": "Head north",
										"distance":          map[string]interface{}{"text": "12 km", "value": 12000},
										"duration":          map[string]interface{}{"text": "20 mins", "value": 1200},
									},
								},
							},
						},
					},
				},
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(payload)
		}))
		defer server.Close()

		provider := NewGoogleDirectionsProviderWithOptions("test-key", server.URL, server.Client())

		directions, err := provider.GetDirections(context.Background(), "Lagos", "Abuja", "DRIVING")

		assert.NoError(t, err)
		assert.Equal(t, "abc123", directions.Polyline)
		assert.Equal(t, 12000, directions.DistanceMeters)
		assert.Equal(t, 1200, directions.DurationSeconds)
		assert.Len(t, directions.Steps, 1)
		assert.Equal(t, "Head north", directions.Steps[0].Instruction)
		assert.Equal(t, "Lagos, Nigeria", directions.StartAddress)
		assert.Equal(t, "Abuja, Nigeria", directions.EndAddress)
	})

	t.Run("returns error on non-OK status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status":"ZERO_RESULTS","routes":[]}`))
		}))
		defer server.Close()

		provider := NewGoogleDirectionsProviderWithOptions("test-key", server.URL, server.Client())

		_, err := provider.GetDirections(context.Background(), "Nowhere", "Elsewhere", "DRIVING")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "ZERO_RESULTS")
	})

	t.Run("requires api key", func(t *testing.T) {
		provider := NewGoogleDirectionsProviderWithOptions("", "http://example.invalid", nil)

		_, err := provider.GetDirections(context.Background(), "Lagos", "Abuja", "DRIVING")

		assert.Error(t, err)
	})

	t.Run("requires origin and destination", func(t *testing.T) {
		provider := NewGoogleDirectionsProviderWithOptions("test-key", "http://example.invalid", nil)

		_, err := provider.GetDirections(context.Background(), "", "Abuja", "DRIVING")

		assert.Error(t, err)
	})
}
