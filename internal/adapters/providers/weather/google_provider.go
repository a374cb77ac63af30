package weather

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
	googleWeatherURL       = "https://weather.googleapis.com/v1/currentConditions:lookup"
	defaultWeatherCacheTTL = 600
	defaultHTTPTimeout     = 8 * time.Second
)

// GoogleWeatherProvider implements the WeatherProvider using the Google
// Weather API with a Redis cache-aside layer.
type GoogleWeatherProvider struct {
	apiKey     string
	httpClient *http.Client
	cache      providers.CacheProvider
	baseURL    string
}

// NewGoogleWeatherProvider creates a new Google weather provider.
func NewGoogleWeatherProvider(apiKey string, cache providers.CacheProvider) providers.WeatherProvider {
	return NewGoogleWeatherProviderWithOptions(apiKey, cache, googleWeatherURL, nil)
}

// NewGoogleWeatherProviderWithOptions allows overriding base URL and HTTP client (used for tests).
func NewGoogleWeatherProviderWithOptions(apiKey string, cache providers.CacheProvider, baseURL string, httpClient *http.Client) providers.WeatherProvider {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = googleWeatherURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &GoogleWeatherProvider{
		apiKey:     apiKey,
		httpClient: httpClient,
		cache:      cache,
		baseURL:    baseURL,
	}
}

// CurrentConditions fetches and maps current weather for a coordinate.
func (g *GoogleWeatherProvider) CurrentConditions(ctx context.Context, latitude, longitude float64) (*providers.Weather, error) {
	if g.apiKey == "" {
		return nil, fmt.Errorf("weather api key is required")
	}

	cacheKey := fmt.Sprintf("weather:v1:%.4f,%.4f", latitude, longitude)
	if g.cache != nil {
		if cached, err := g.cache.Get(ctx, cacheKey); err == nil && len(cached) > 0 {
			var weather providers.Weather
			if err := json.Unmarshal(cached, &weather); err == nil {
				return &weather, nil
			}
		}
	}

	params := url.Values{}
	params.Set("key", g.apiKey)
	params.Set("location.latitude", fmt.Sprintf("%f", latitude))
	params.Set("location.longitude", fmt.Sprintf("%f", longitude))

	reqURL := fmt.Sprintf("%s?%s", g.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build weather request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("weather request returned status %d", resp.StatusCode)
	}

	var payload googleWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode weather response: %w", err)
	}

	weather := mapWeather(&payload)

	if g.cache != nil {
		if data, err := json.Marshal(weather); err == nil {
			_ = g.cache.Set(ctx, cacheKey, data, defaultWeatherCacheTTL)
		}
	}

	return weather, nil
}

// mapWeather converts the raw API payload to the domain snapshot, filling
// sane defaults for fields the API omits.
func mapWeather(payload *googleWeatherResponse) *providers.Weather {
	temperature := 25.0
	if payload.Temperature != nil {
		temperature = payload.Temperature.Degrees
	}

	humidity := 60.0
	if payload.RelativeHumidity != nil {
		humidity = *payload.RelativeHumidity
	}

	windSpeed := 0.0
	if payload.Wind != nil && payload.Wind.Speed != nil {
		windSpeed = payload.Wind.Speed.Value
	}

	// Current conditions carry no precipitation amount, only a
	// probability; treat >50% as a 5mm estimate.
	precipitation := 0.0
	if payload.Precipitation != nil && payload.Precipitation.Probability != nil &&
		payload.Precipitation.Probability.Percent > 50 {
		precipitation = 5
	}

	weatherType := "CLEAR"
	description := ""
	if payload.WeatherCondition != nil {
		if payload.WeatherCondition.Type != "" {
			weatherType = payload.WeatherCondition.Type
		}
		if payload.WeatherCondition.Description != nil {
			description = payload.WeatherCondition.Description.Text
		}
	}

	condition, icon := mapCondition(weatherType)
	if description == "" {
		description = condition
	}

	return &providers.Weather{
		Temperature:   temperature,
		Humidity:      humidity,
		Precipitation: precipitation,
		WindSpeed:     windSpeed,
		Condition:     condition,
		Icon:          icon,
		Description:   description,
	}
}

func mapCondition(weatherType string) (condition, icon string) {
	switch weatherType {
	case "CLEAR", "SUNNY":
		return "Clear", "Sun"
	case "CLOUDY", "PARTLY_CLOUDY", "OVERCAST":
		return "Partly Cloudy", "Cloud"
	case "RAINY", "RAIN", "DRIZZLE":
		return "Rain", "CloudRain"
	case "SNOWY", "SNOW":
		return "Snow", "CloudRain"
	case "FOGGY", "FOG", "MIST":
		return "Fog", "Cloud"
	case "THUNDERSTORM", "STORMY":
		return "Thunderstorm", "CloudRain"
	default:
		return "Clear", "Sun"
	}
}

type googleWeatherResponse struct {
	Temperature      *googleDegrees          `json:"temperature"`
	RelativeHumidity *float64                `json:"relativeHumidity"`
	Wind             *googleWind             `json:"wind"`
	Precipitation    *googlePrecipitation    `json:"precipitation"`
	WeatherCondition *googleWeatherCondition `json:"weatherCondition"`
}

type googleDegrees struct {
	Degrees float64 `json:"degrees"`
}

type googleWind struct {
	Speed *googleSpeed `json:"speed"`
}

type googleSpeed struct {
	Value float64 `json:"value"`
}

type googlePrecipitation struct {
	Probability *googleProbability `json:"probability"`
}

type googleProbability struct {
	Percent float64 `json:"percent"`
}

type googleWeatherCondition struct {
	Type        string             `json:"type"`
	Description *googleDescription `json:"description"`
}

type googleDescription struct {
	Text string `json:"text"`
}
