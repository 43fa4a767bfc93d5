// Package places finds post-hike amenities (pubs, cafes) around a trail
// head via the OpenStreetMap Overpass API. Lookups never fail from the
// caller's perspective: any error yields an empty list.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"trailbuddy/pkg/model"
	"trailbuddy/pkg/request"
)

// DefaultEndpoint is the public Overpass interpreter.
const DefaultEndpoint = "https://overpass-api.de/api/interpreter"

// maxResults bounds the amenity list presented to the user.
const maxResults = 3

// Client looks up nearby amenities.
type Client struct {
	request  *request.Client
	endpoint string
}

// NewClient creates a places client. An empty endpoint uses the public API.
func NewClient(r *request.Client, endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{request: r, endpoint: endpoint}
}

type overpassResponse struct {
	Elements []struct {
		Lat  float64           `json:"lat"`
		Lon  float64           `json:"lon"`
		Tags map[string]string `json:"tags"`
	} `json:"elements"`
}

// Nearby returns the closest amenities of the given categories around the
// coordinates, sorted ascending by distance and truncated to 3 entries.
// Any failure returns an empty list.
func (c *Client) Nearby(ctx context.Context, lat, lon float64, radiusM int, categories []string) []model.Place {
	if len(categories) == 0 {
		categories = []string{"cafe", "pub"}
	}

	query := buildQuery(lat, lon, radiusM, categories)
	body, err := c.request.Post(ctx, c.endpoint, []byte(query), "text/plain")
	if err != nil {
		slog.Warn("amenity lookup failed", "error", err)
		return nil
	}

	var resp overpassResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		slog.Warn("amenity lookup failed", "error", fmt.Errorf("bad response: %w", err))
		return nil
	}

	origin := orb.Point{lon, lat}
	places := make([]model.Place, 0, len(resp.Elements))
	for _, el := range resp.Elements {
		name := el.Tags["name"]
		if name == "" {
			name = "Unknown"
		}
		distKm := geo.Distance(origin, orb.Point{el.Lon, el.Lat}) / 1000
		places = append(places, model.Place{
			Name:        name,
			Lat:         el.Lat,
			Lon:         el.Lon,
			DistanceKm:  math.Round(distKm*100) / 100,
			Description: describeTags(el.Tags),
		})
	}

	sort.SliceStable(places, func(i, j int) bool {
		return places[i].DistanceKm < places[j].DistanceKm
	})
	if len(places) > maxResults {
		places = places[:maxResults]
	}
	return places
}

// buildQuery constructs an Overpass QL query for the given amenities.
func buildQuery(lat, lon float64, radiusM int, categories []string) string {
	var sb strings.Builder
	sb.WriteString("[out:json][timeout:25];\n(")
	for _, a := range categories {
		fmt.Fprintf(&sb, `node["amenity"=%q](around:%d,%f,%f);`, a, radiusM, lat, lon)
	}
	sb.WriteString(");\nout;")
	return sb.String()
}

// describeTags flattens OSM tags into a short "key: value" summary with a
// stable key order.
func describeTags(tags map[string]string) string {
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+tags[k])
	}
	return strings.Join(parts, ", ")
}
