package reasoner

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trailbuddy/pkg/model"
)

// scriptedProvider returns a fixed reply or error for every call.
type scriptedProvider struct {
	reply string
	err   error

	prompts []string
}

func (p *scriptedProvider) GenerateText(ctx context.Context, name, prompt string) (string, error) {
	p.prompts = append(p.prompts, prompt)
	return p.reply, p.err
}

func (p *scriptedProvider) HealthCheck(ctx context.Context) error { return nil }

func slackCandidate(name string, slack float64, tags ...string) model.Candidate {
	return model.Candidate{
		Trail:         model.Trail{Name: name, Difficulty: "Moderate", DistanceKm: 10, Tags: tags},
		DistanceSlack: slack,
		HasSlack:      true,
	}
}

func TestSelect_EmptyCandidatesReturnsNil(t *testing.T) {
	r := New(nil)

	trail, expl := r.Select(context.Background(), nil, model.Preferences{}, model.FilterCounts{})

	assert.Nil(t, trail)
	assert.Nil(t, expl)
}

func TestSelect_FallbackPrefersSmallestSlack(t *testing.T) {
	r := New(nil)
	cands := []model.Candidate{
		slackCandidate("Over Budget", 2.0, "lake"),
		slackCandidate("Under Budget", -1.0, "forest"),
	}

	trail, expl := r.Select(context.Background(), cands, model.Preferences{}, model.FilterCounts{})

	require.NotNil(t, trail)
	assert.Equal(t, "Under Budget", trail.Name)
	assert.Equal(t, model.SourceFallback, expl.Source)
	assert.Equal(t, FallbackReasoning, expl.Reasoning)
}

func TestSelect_FallbackTreatsMissingSlackAsZero(t *testing.T) {
	r := New(nil)
	cands := []model.Candidate{
		slackCandidate("Slightly Over", 0.5),
		{Trail: model.Trail{Name: "Unannotated"}},
	}

	trail, _ := r.Select(context.Background(), cands, model.Preferences{}, model.FilterCounts{})

	assert.Equal(t, "Unannotated", trail.Name)
}

func TestSelect_FallbackBreaksTiesByTagCount(t *testing.T) {
	r := New(nil)
	cands := []model.Candidate{
		slackCandidate("Sparse", 0, "lake"),
		slackCandidate("Rich", 0, "lake", "forest", "panoramic"),
	}

	trail, _ := r.Select(context.Background(), cands, model.Preferences{}, model.FilterCounts{})

	assert.Equal(t, "Rich", trail.Name)
}

func TestSelect_ModelChoiceIsUsed(t *testing.T) {
	p := &scriptedProvider{reply: `Sure! {"best_trail": "Beta", "reasoning": "Shorter and prettier."} Hope that helps.`}
	r := New(p)
	cands := []model.Candidate{
		slackCandidate("Alpha", -2.0),
		slackCandidate("Beta", 1.0),
	}
	prefs := model.Preferences{Difficulty: "moderate"}
	counts := model.FilterCounts{AfterConstraints: 4, AfterScenery: 2}

	trail, expl := r.Select(context.Background(), cands, prefs, counts)

	require.NotNil(t, trail)
	assert.Equal(t, "Beta", trail.Name)
	assert.Equal(t, model.SourceModel, expl.Source)
	assert.Equal(t, "Shorter and prettier.", expl.Reasoning)
	assert.Equal(t, prefs, expl.Inputs)
	assert.Equal(t, counts, expl.Counts)
	assert.Equal(t, "Beta", expl.TrailName)
}

func TestSelect_HallucinatedNameDefaultsToFirstCandidate(t *testing.T) {
	p := &scriptedProvider{reply: `{"best_trail": "Imaginary Peak", "reasoning": "Sounds nice."}`}
	r := New(p)
	cands := []model.Candidate{
		slackCandidate("Real One", 0),
		slackCandidate("Real Two", 0),
	}

	trail, expl := r.Select(context.Background(), cands, model.Preferences{}, model.FilterCounts{})

	require.NotNil(t, trail)
	assert.Equal(t, "Real One", trail.Name)
	assert.Equal(t, model.SourceModel, expl.Source)
}

func TestSelect_NameMatchIsCaseSensitive(t *testing.T) {
	p := &scriptedProvider{reply: `{"best_trail": "beta", "reasoning": "ok"}`}
	r := New(p)
	cands := []model.Candidate{
		slackCandidate("Alpha", 0),
		slackCandidate("Beta", 0),
	}

	trail, _ := r.Select(context.Background(), cands, model.Preferences{}, model.FilterCounts{})

	assert.Equal(t, "Alpha", trail.Name)
}

func TestSelect_ProviderErrorFallsBack(t *testing.T) {
	p := &scriptedProvider{err: fmt.Errorf("timeout")}
	r := New(p)
	cands := []model.Candidate{slackCandidate("Only", 0)}

	trail, expl := r.Select(context.Background(), cands, model.Preferences{}, model.FilterCounts{})

	require.NotNil(t, trail)
	assert.Equal(t, model.SourceFallback, expl.Source)
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		name    string
		reply   string
		want    *choice
		wantErr bool
	}{
		{
			name:  "bare json",
			reply: `{"best_trail": "A", "reasoning": "because"}`,
			want:  &choice{BestTrail: "A", Reasoning: "because"},
		},
		{
			name:  "json wrapped in prose",
			reply: "Here you go:\n```json\n{\"best_trail\": \"A\", \"reasoning\": \"because\"}\n```\nEnjoy!",
			want:  &choice{BestTrail: "A", Reasoning: "because"},
		},
		{
			name:    "no braces",
			reply:   "I would pick the first trail.",
			wantErr: true,
		},
		{
			name:    "malformed json",
			reply:   `{"best_trail": }`,
			wantErr: true,
		},
		{
			name:    "missing reasoning",
			reply:   `{"best_trail": "A"}`,
			wantErr: true,
		},
		{
			name:    "missing best_trail",
			reply:   `{"reasoning": "because"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseChoice(tt.reply)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildPrompt_MentionsCandidatesAndPreferences(t *testing.T) {
	max := 12.0
	prompt := buildPrompt(
		[]model.Candidate{slackCandidate("Lakeside Loop", -4.0, "lake", "forest")},
		model.Preferences{Difficulty: "moderate", MaxDistance: &max, Scenery: "lake", RouteType: "loop"},
	)

	assert.Contains(t, prompt, "Lakeside Loop")
	assert.Contains(t, prompt, "moderate")
	assert.Contains(t, prompt, "12.0 km")
	assert.Contains(t, prompt, "loop")
	assert.Contains(t, prompt, "best_trail")
}
