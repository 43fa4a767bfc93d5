package catalog

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedSQLite(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trails.db")

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE trails (
		trail TEXT NOT NULL,
		difficulty TEXT NOT NULL,
		distance_km REAL NOT NULL,
		fell_height_m REAL NOT NULL,
		route TEXT,
		tags TEXT,
		description TEXT,
		lat REAL NOT NULL,
		lng REAL NOT NULL,
		region TEXT
	)`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO trails
		(trail, difficulty, distance_km, fell_height_m, route, tags, description, lat, lng, region) VALUES
		('Lakeside Loop', 'Moderate', 8, 120, 'Loop', 'lake, forest', 'A gentle loop.', 54.46, -3.09, 'Lake District'),
		('Ridge Scramble', 'Hard', 20, 950, NULL, NULL, NULL, 54.45, -3.21, NULL)`)
	require.NoError(t, err)

	return path
}

func TestLoadSQLite(t *testing.T) {
	store, err := LoadSQLite(seedSQLite(t))
	require.NoError(t, err)
	require.Equal(t, 2, store.Len())

	first := store.Trails()[0]
	assert.Equal(t, "Lakeside Loop", first.Name)
	assert.Equal(t, []string{"lake", "forest"}, first.Tags)
	assert.Equal(t, "Loop", first.Route)

	// NULL optional columns come back as empty values, not errors.
	second := store.Trails()[1]
	assert.Equal(t, "Ridge Scramble", second.Name)
	assert.Empty(t, second.Route)
	assert.Empty(t, second.Tags)
	assert.Empty(t, second.Region)
}

func TestLoadSQLite_PreservesInsertionOrder(t *testing.T) {
	store, err := LoadSQLite(seedSQLite(t))
	require.NoError(t, err)

	names := []string{store.Trails()[0].Name, store.Trails()[1].Name}
	assert.Equal(t, []string{"Lakeside Loop", "Ridge Scramble"}, names)
}
