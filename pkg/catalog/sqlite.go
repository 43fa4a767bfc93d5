package catalog

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // Register driver

	"trailbuddy/pkg/model"
)

// LoadSQLite reads the catalog from a SQLite database containing a
// `trails` table with the same columns as the CSV schema. Row order
// follows rowid, matching the order trails were inserted.
func LoadSQLite(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(
		`SELECT trail, difficulty, distance_km, fell_height_m,
		        COALESCE(route, ''), COALESCE(tags, ''),
		        COALESCE(description, ''), lat, lng, COALESCE(region, '')
		 FROM trails ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query trails: %w", err)
	}
	defer rows.Close()

	var trails []model.Trail
	for rows.Next() {
		var t model.Trail
		var tags string
		if err := rows.Scan(&t.Name, &t.Difficulty, &t.DistanceKm, &t.FellHeightM,
			&t.Route, &tags, &t.Description, &t.Lat, &t.Lon, &t.Region); err != nil {
			return nil, fmt.Errorf("failed to scan trail: %w", err)
		}
		t.Tags = splitTags(tags)
		trails = append(trails, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trails: %w", err)
	}

	return NewStore(trails), nil
}
