package model

import "strings"

// Trail is one row of the catalog. Records are immutable after load;
// per-request annotations live on Candidate, never here.
type Trail struct {
	Name        string   `json:"name"`
	Difficulty  string   `json:"difficulty"`
	DistanceKm  float64  `json:"distance_km"`
	Route       string   `json:"route"`         // loop, out-and-back, ridge, ...
	FellHeightM float64  `json:"fell_height_m"` // elevation gain
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
	Lat         float64  `json:"lat"`
	Lon         float64  `json:"lon"`
	Region      string   `json:"region"`
}

// SearchText returns the lowercase blob of tags and description used for
// scenery keyword matching.
func (t *Trail) SearchText() string {
	parts := make([]string, 0, len(t.Tags)+1)
	parts = append(parts, t.Tags...)
	if t.Description != "" {
		parts = append(parts, t.Description)
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// Candidate wraps a Trail with the ephemeral filtering annotations of one
// request. The embedded Trail is a copy; nothing written here reaches the
// shared catalog.
type Candidate struct {
	Trail

	// DistanceSlack is trail distance minus the requested maximum,
	// populated only in soft-distance mode. Negative or zero means the
	// trail is within budget.
	DistanceSlack float64 `json:"distance_slack"`
	HasSlack      bool    `json:"-"`
}

// Slack returns the ranking slack, treating unannotated candidates as
// exactly on budget.
func (c *Candidate) Slack() float64 {
	if !c.HasSlack {
		return 0
	}
	return c.DistanceSlack
}

// Weather is a current-conditions snapshot at a trail head.
// A zero value is the documented failure result.
type Weather struct {
	Temperature float64 `json:"temperature"` // °C
	Windspeed   float64 `json:"windspeed"`   // km/h
	WeatherCode int     `json:"weather_code"`
}

// Place is one nearby amenity hit, sorted by distance from the trail head.
type Place struct {
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	DistanceKm  float64 `json:"distance_km"`
	Description string  `json:"description"`
}
