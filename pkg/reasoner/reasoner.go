// Package reasoner chooses one trail from the filtered candidate set and
// explains the choice. The LLM call is the primary path; a deterministic
// slack-ranked heuristic takes over whenever the call fails or its reply
// does not parse, so a selection is always available offline.
package reasoner

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"trailbuddy/pkg/llm"
	"trailbuddy/pkg/model"
)

// FallbackReasoning is the fixed narrative attached to selections made by
// the deterministic heuristic.
const FallbackReasoning = "Selected without the reasoning service: this trail is the closest fit to your distance budget among the matching candidates."

// Reasoner selects one trail from a candidate set.
type Reasoner struct {
	provider llm.Provider
}

// New creates a Reasoner. A nil provider forces the deterministic path,
// which is also how tests exercise the fallback in isolation.
func New(p llm.Provider) *Reasoner {
	return &Reasoner{provider: p}
}

// choice mirrors the JSON reply requested from the reasoning call.
type choice struct {
	BestTrail string `json:"best_trail"`
	Reasoning string `json:"reasoning"`
}

// Select picks one candidate and builds the explanation record.
// An empty candidate set yields (nil, nil); the caller ends the attempt.
// The returned trail is always a member of candidates.
func (r *Reasoner) Select(ctx context.Context, candidates []model.Candidate, inputs model.Preferences, counts model.FilterCounts) (*model.Trail, *model.SelectionExplanation) {
	if len(candidates) == 0 {
		return nil, nil
	}

	name, reasoning, source := r.choose(ctx, candidates, inputs)

	selected := resolveName(candidates, name)
	expl := &model.SelectionExplanation{
		Inputs:    inputs,
		Counts:    counts,
		Reasoning: reasoning,
		Source:    source,
		TrailName: selected.Name,
	}
	return selected, expl
}

// choose runs the primary path and falls back on any failure.
func (r *Reasoner) choose(ctx context.Context, candidates []model.Candidate, inputs model.Preferences) (name, reasoning string, source model.SelectionSource) {
	if r.provider != nil {
		if c, err := r.ask(ctx, candidates, inputs); err == nil {
			return c.BestTrail, c.Reasoning, model.SourceModel
		} else {
			slog.Warn("reasoning call failed, using deterministic fallback", "error", err)
		}
	}

	best := fallbackPick(candidates)
	return best.Name, FallbackReasoning, model.SourceFallback
}

// ask delegates the choice to the reasoning service and parses its reply.
// Any deviation from the expected shape is an error, never a partial result.
func (r *Reasoner) ask(ctx context.Context, candidates []model.Candidate, inputs model.Preferences) (*choice, error) {
	reply, err := r.provider.GenerateText(ctx, "selection", buildPrompt(candidates, inputs))
	if err != nil {
		return nil, err
	}
	return parseChoice(reply)
}

// parseChoice extracts the JSON object between the first '{' and the last
// '}' of the raw reply. Both fields must be present and non-empty.
func parseChoice(reply string) (*choice, error) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in reply")
	}

	var c choice
	if err := json.Unmarshal([]byte(reply[start:end+1]), &c); err != nil {
		return nil, fmt.Errorf("failed to parse reasoning reply: %w", err)
	}
	if c.BestTrail == "" || c.Reasoning == "" {
		return nil, fmt.Errorf("reasoning reply missing best_trail or reasoning")
	}
	return &c, nil
}

// fallbackPick orders candidates by ascending distance slack (unannotated
// candidates count as exactly on budget), breaking ties by descending tag
// count, and picks the first.
func fallbackPick(candidates []model.Candidate) *model.Candidate {
	ranked := make([]model.Candidate, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		si, sj := ranked[i].Slack(), ranked[j].Slack()
		if si != sj {
			return si < sj
		}
		return len(ranked[i].Tags) > len(ranked[j].Tags)
	})

	return &ranked[0]
}

// resolveName maps the chosen name back onto the candidate set. The match
// is case-sensitive; an unknown name (a hallucinated trail, say) silently
// defaults to the first candidate so the contract that the result is a
// member of the input always holds.
func resolveName(candidates []model.Candidate, name string) *model.Trail {
	for i := range candidates {
		if candidates[i].Name == name {
			t := candidates[i].Trail
			return &t
		}
	}
	t := candidates[0].Trail
	return &t
}

// buildPrompt enumerates the candidates for the reasoning service and asks
// for a machine-parseable answer.
func buildPrompt(candidates []model.Candidate, inputs model.Preferences) string {
	var sb strings.Builder
	sb.WriteString("You are helping pick the single best hiking trail for a user.\n")
	sb.WriteString("The user asked for")
	if inputs.Difficulty != "" {
		sb.WriteString(" difficulty " + inputs.Difficulty + ",")
	}
	if inputs.MaxDistance != nil {
		sb.WriteString(fmt.Sprintf(" at most %.1f km,", *inputs.MaxDistance))
	}
	if inputs.Scenery != "" {
		sb.WriteString(" scenery like " + inputs.Scenery + ",")
	}
	if inputs.RouteType != "" {
		sb.WriteString(" a " + inputs.RouteType + " route,")
	}
	sb.WriteString("\nCandidate trails:\n")
	for i, c := range candidates {
		sb.WriteString(fmt.Sprintf("%d. %s — difficulty %s, %.1f km", i+1, c.Name, c.Difficulty, c.DistanceKm))
		if c.HasSlack {
			sb.WriteString(fmt.Sprintf(", %+.1f km versus the distance budget", c.DistanceSlack))
		}
		if c.Route != "" {
			sb.WriteString(", route: " + c.Route)
		}
		if len(c.Tags) > 0 {
			sb.WriteString(", tags: " + strings.Join(c.Tags, ", "))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\nAnswer with only a JSON object of the form ")
	sb.WriteString(`{"best_trail": "<exact trail name>", "reasoning": "<one or two sentences>"}.`)
	return sb.String()
}
