// Package catalog holds the in-memory trail catalog. The catalog is loaded
// once at startup, is immutable afterwards, and preserves source order:
// filtering contracts depend on insertion order being stable.
package catalog

import (
	"fmt"
	"strings"

	"trailbuddy/pkg/config"
	"trailbuddy/pkg/model"
)

// Store is the read-only trail catalog.
type Store struct {
	trails []model.Trail
}

// NewStore creates a Store over the given trails, keeping their order.
func NewStore(trails []model.Trail) *Store {
	return &Store{trails: trails}
}

// Load reads the catalog from the configured source.
func Load(cfg config.CatalogConfig) (*Store, error) {
	switch strings.ToLower(cfg.Format) {
	case "", "csv":
		return LoadCSV(cfg.Path)
	case "sqlite":
		return LoadSQLite(cfg.Path)
	}
	return nil, fmt.Errorf("unknown catalog format %q", cfg.Format)
}

// Trails returns the trails in insertion order. Callers must not mutate
// the returned slice or its elements.
func (s *Store) Trails() []model.Trail {
	return s.trails
}

// Len returns the number of trails.
func (s *Store) Len() int {
	return len(s.trails)
}

// Get looks up a trail by its unique name.
func (s *Store) Get(name string) (model.Trail, bool) {
	for _, t := range s.trails {
		if t.Name == name {
			return t, true
		}
	}
	return model.Trail{}, false
}

// splitTags splits a comma-separated tag field into trimmed, non-empty tags.
func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}
