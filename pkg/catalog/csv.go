package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"trailbuddy/pkg/model"
)

// LoadCSV reads the catalog from a CSV file with a header row. Required
// columns: Trail, Difficulty, Distance_km, Fell_Height_m, Lat, Lng.
// Optional columns (Route, Tags, Description, Region) default to empty.
func LoadCSV(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	if len(records) == 0 {
		return NewStore(nil), nil
	}

	col := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		col[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"Trail", "Difficulty", "Distance_km", "Fell_Height_m", "Lat", "Lng"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("catalog is missing required column %q", required)
		}
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	trails := make([]model.Trail, 0, len(records)-1)
	for n, row := range records[1:] {
		t := model.Trail{
			Name:        field(row, "Trail"),
			Difficulty:  field(row, "Difficulty"),
			Route:       field(row, "Route"),
			Tags:        splitTags(field(row, "Tags")),
			Description: field(row, "Description"),
			Region:      field(row, "Region"),
		}
		if t.Name == "" {
			return nil, fmt.Errorf("catalog row %d: empty trail name", n+2)
		}
		if t.DistanceKm, err = strconv.ParseFloat(field(row, "Distance_km"), 64); err != nil {
			return nil, fmt.Errorf("catalog row %d: bad Distance_km: %w", n+2, err)
		}
		if t.FellHeightM, err = strconv.ParseFloat(field(row, "Fell_Height_m"), 64); err != nil {
			return nil, fmt.Errorf("catalog row %d: bad Fell_Height_m: %w", n+2, err)
		}
		if t.Lat, err = strconv.ParseFloat(field(row, "Lat"), 64); err != nil {
			return nil, fmt.Errorf("catalog row %d: bad Lat: %w", n+2, err)
		}
		if t.Lon, err = strconv.ParseFloat(field(row, "Lng"), 64); err != nil {
			return nil, fmt.Errorf("catalog row %d: bad Lng: %w", n+2, err)
		}
		trails = append(trails, t)
	}

	return NewStore(trails), nil
}
