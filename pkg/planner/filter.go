// Package planner narrows the trail catalog using the preferences the
// dialogue has collected: hard constraints exclude trails outright, the
// soft distance constraint only annotates them for ranking.
package planner

import (
	"strings"

	"trailbuddy/pkg/model"
)

// Result caps. These bound the candidate set handed to the reasoner; they
// are not a quality ranking, catalog order is preserved.
const (
	maxHardCandidates = 5
	maxSoftCandidates = 10
)

// Query holds the filter constraints. Empty strings and a nil MaxDistance
// mean "not constrained".
type Query struct {
	Difficulty  string
	MaxDistance *float64
	RouteType   string

	// SoftDistance keeps trails over the distance budget and annotates
	// them with their slack instead of excluding them.
	SoftDistance bool
}

// Filter applies the constraints over the catalog in insertion order and
// returns at most 5 candidates (hard distance) or 10 (soft distance).
// An empty result is valid, not an error.
func Filter(trails []model.Trail, q Query) []model.Candidate {
	limit := maxHardCandidates
	if q.SoftDistance {
		limit = maxSoftCandidates
	}

	candidates := make([]model.Candidate, 0, limit)
	for _, t := range trails {
		if q.Difficulty != "" && !strings.EqualFold(t.Difficulty, q.Difficulty) {
			continue
		}
		if q.RouteType != "" && !strings.EqualFold(t.Route, q.RouteType) {
			continue
		}

		c := model.Candidate{Trail: t}
		if q.MaxDistance != nil {
			if q.SoftDistance {
				c.DistanceSlack = t.DistanceKm - *q.MaxDistance
				c.HasSlack = true
			} else if t.DistanceKm > *q.MaxDistance {
				continue
			}
		}

		candidates = append(candidates, c)
		if len(candidates) == limit {
			break
		}
	}

	return candidates
}
