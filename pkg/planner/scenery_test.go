package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trailbuddy/pkg/model"
)

func candidates(trails ...model.Trail) []model.Candidate {
	out := make([]model.Candidate, 0, len(trails))
	for _, t := range trails {
		out = append(out, model.Candidate{Trail: t})
	}
	return out
}

func TestSceneryKeywords_ExpandsSynonyms(t *testing.T) {
	got := SceneryKeywords("scenic")

	assert.ElementsMatch(t, []string{"panoramic", "lake", "forest", "view", "fell", "mountain", "scenic"}, got)
}

func TestSceneryKeywords_UnknownTokenExpandsToItself(t *testing.T) {
	assert.Equal(t, []string{"waterfalls"}, SceneryKeywords("Waterfalls"))
}

func TestSceneryKeywords_UnionsMultipleTokens(t *testing.T) {
	got := SceneryKeywords("water and forest")

	for _, want := range []string{"lake", "river", "stream", "waterfall", "pond", "and", "woodland", "forest", "trees"} {
		assert.Contains(t, got, want)
	}
}

func TestMatchScenery_EmptyPreferenceIsPassThrough(t *testing.T) {
	in := candidates(
		model.Trail{Name: "A", Tags: []string{"lake"}},
		model.Trail{Name: "B", Tags: []string{"mountain"}},
	)

	assert.Equal(t, in, MatchScenery(in, ""))
	assert.Equal(t, in, MatchScenery(in, "   "))
}

func TestMatchScenery_FiltersByTagAndDescription(t *testing.T) {
	in := candidates(
		model.Trail{Name: "Tagged", Tags: []string{"lake", "forest"}},
		model.Trail{Name: "Described", Description: "A gentle walk past a quiet pond."},
		model.Trail{Name: "Neither", Tags: []string{"scree"}},
	)

	got := MatchScenery(in, "water")

	require.Len(t, got, 2)
	assert.Equal(t, "Tagged", got[0].Name)
	assert.Equal(t, "Described", got[1].Name)
}

func TestMatchScenery_FallbackWhenNothingMatches(t *testing.T) {
	in := candidates(
		model.Trail{Name: "A", Tags: []string{"scree"}},
		model.Trail{Name: "B", Tags: []string{"bog"}},
	)

	got := MatchScenery(in, "lake")

	// Scenery is advisory: a filter that would empty the set returns the
	// original candidates instead.
	assert.Equal(t, in, got)
}

func TestMatchScenery_IdempotentOnFilteredResult(t *testing.T) {
	in := candidates(
		model.Trail{Name: "A", Tags: []string{"lake"}},
		model.Trail{Name: "B", Tags: []string{"mountain"}},
		model.Trail{Name: "C", Description: "forest track"},
	)

	once := MatchScenery(in, "scenic")
	twice := MatchScenery(once, "scenic")

	assert.Equal(t, once, twice)
	assert.LessOrEqual(t, len(twice), len(once))
}
