// Package weather fetches current conditions from the Open-Meteo API.
// Lookups never fail from the caller's perspective: any error yields the
// zero-valued record, which downstream formatting treats as usable data.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"trailbuddy/pkg/model"
	"trailbuddy/pkg/request"
)

// DefaultEndpoint is the public Open-Meteo forecast endpoint.
const DefaultEndpoint = "https://api.open-meteo.com/v1/forecast"

// Client looks up current weather.
type Client struct {
	request  *request.Client
	endpoint string
}

// NewClient creates a weather client. An empty endpoint uses the public API.
func NewClient(r *request.Client, endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{request: r, endpoint: endpoint}
}

type forecastResponse struct {
	CurrentWeather struct {
		Temperature float64 `json:"temperature"`
		Windspeed   float64 `json:"windspeed"`
		WeatherCode int     `json:"weathercode"`
	} `json:"current_weather"`
}

// Current returns the conditions at the given coordinates, or the zero
// record on any failure.
func (c *Client) Current(ctx context.Context, lat, lon float64) model.Weather {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		slog.Warn("weather lookup failed", "error", err)
		return model.Weather{}
	}
	q := u.Query()
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("current_weather", "true")
	u.RawQuery = q.Encode()

	body, err := c.request.Get(ctx, u.String())
	if err != nil {
		slog.Warn("weather lookup failed", "error", err)
		return model.Weather{}
	}

	var resp forecastResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		slog.Warn("weather lookup failed", "error", fmt.Errorf("bad response: %w", err))
		return model.Weather{}
	}

	return model.Weather{
		Temperature: resp.CurrentWeather.Temperature,
		Windspeed:   resp.CurrentWeather.Windspeed,
		WeatherCode: resp.CurrentWeather.WeatherCode,
	}
}
