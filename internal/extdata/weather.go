// Package extdata holds thin HTTP clients for the auxiliary context
// feeds. The signal core never talks to these directly; it sees them
// through the client interfaces consumed by the aux providers.
package extdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// WeatherConditions is the normalized weather state for one location.
type WeatherConditions struct {
	Condition string  // e.g. "Clear", "Rain", "Thunderstorm"
	TempC     float64
	WindKph   float64
}

// WeatherClient fetches current conditions for a location.
type WeatherClient interface {
	Current(ctx context.Context, location string) (*WeatherConditions, error)
}

// WeatherAPI is a WeatherClient backed by an OpenWeather-compatible API.
type WeatherAPI struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// NewWeatherAPI creates a weather client for the given endpoint.
func NewWeatherAPI(apiKey, endpoint string) *WeatherAPI {
	return &WeatherAPI{
		apiKey:   apiKey,
		endpoint: endpoint,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type weatherResponse struct {
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// Current fetches current conditions for the given location.
func (w *WeatherAPI) Current(ctx context.Context, location string) (*WeatherConditions, error) {
	q := url.Values{}
	q.Set("q", location)
	q.Set("appid", w.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching weather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var result weatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	cond := &WeatherConditions{
		TempC:   result.Main.Temp,
		WindKph: result.Wind.Speed * 3.6, // m/s to km/h
	}
	if len(result.Weather) > 0 {
		cond.Condition = result.Weather[0].Main
	}

	return cond, nil
}
