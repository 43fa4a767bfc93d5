// Package dialogue drives the turn-by-turn trail conversation. The
// controller owns one session's mutable state and exposes a single turn
// function: one user utterance in, one assistant utterance out. It is not
// safe for concurrent use; callers serialize turns.
package dialogue

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"trailbuddy/pkg/catalog"
	"trailbuddy/pkg/model"
	"trailbuddy/pkg/planner"
	"trailbuddy/pkg/weather"
)

// WeatherService looks up current conditions at a trail head.
type WeatherService interface {
	Current(ctx context.Context, lat, lon float64) model.Weather
}

// PlaceFinder looks up nearby amenities.
type PlaceFinder interface {
	Nearby(ctx context.Context, lat, lon float64, radiusM int, categories []string) []model.Place
}

// TextGenerator produces conversational prose, returning "" on failure.
type TextGenerator interface {
	Generate(ctx context.Context, intent, prompt string) string
}

// Selector picks one trail from the filtered candidates.
type Selector interface {
	Select(ctx context.Context, candidates []model.Candidate, inputs model.Preferences, counts model.FilterCounts) (*model.Trail, *model.SelectionExplanation)
}

// Controller is the finite state machine for one conversation session.
type Controller struct {
	catalog   *catalog.Store
	selector  Selector
	weather   WeatherService
	places    PlaceFinder
	generator TextGenerator
	radiusM   int

	sessionID string
	state     *model.ConversationState
}

// NewController creates a session at the first stage.
func NewController(cat *catalog.Store, sel Selector, w WeatherService, p PlaceFinder, g TextGenerator, radiusM int) *Controller {
	if radiusM <= 0 {
		radiusM = 20000
	}
	return &Controller{
		catalog:   cat,
		selector:  sel,
		weather:   w,
		places:    p,
		generator: g,
		radiusM:   radiusM,
		sessionID: uuid.NewString(),
		state:     model.NewConversationState(),
	}
}

// State exposes the session record for inspection; callers must not
// mutate it.
func (c *Controller) State() *model.ConversationState {
	return c.state
}

// HandleMessage processes one user utterance and returns the assistant
// reply. All recovery is local: no input ever produces an error.
func (c *Controller) HandleMessage(ctx context.Context, msg string) string {
	stage := c.state.Stage
	reply := c.dispatch(ctx, msg)
	slog.Info("turn handled",
		"session", c.sessionID,
		"stage", stage.String(),
		"next_stage", c.state.Stage.String())
	return reply
}

func (c *Controller) dispatch(ctx context.Context, msg string) string {
	switch c.state.Stage {
	case model.StageDifficulty:
		return c.handleDifficulty(msg)
	case model.StageMaxDistance:
		return c.handleMaxDistance(msg)
	case model.StageScenery:
		return c.handleScenery(msg)
	case model.StageRouteType:
		return c.handleRouteType(ctx, msg)
	case model.StageConfirmSelection:
		return c.handleConfirmSelection(ctx, msg)
	case model.StageConfirmAmenities:
		return c.handleConfirmAmenities(ctx, msg)
	}
	return msgNotSure
}

func (c *Controller) handleDifficulty(msg string) string {
	msgLower := strings.ToLower(strings.TrimSpace(msg))

	// Two-word levels are checked before their single-word suffixes so
	// "very hard" never resolves to "hard".
	for _, level := range []string{"very easy", "very hard", "easy", "moderate", "hard"} {
		if strings.Contains(msgLower, level) {
			c.state.Prefs.Difficulty = level
			c.state.Stage = model.StageMaxDistance
			return msgAskDistance
		}
	}
	return msgChooseDifficulty
}

func (c *Controller) handleMaxDistance(msg string) string {
	dist, err := strconv.ParseFloat(strings.TrimSpace(msg), 64)
	if err != nil {
		return msgAskNumber
	}
	c.state.Prefs.MaxDistance = &dist
	c.state.Stage = model.StageScenery
	return msgAskScenery
}

func (c *Controller) handleScenery(msg string) string {
	c.state.Prefs.Scenery = strings.TrimSpace(msg)
	c.state.Stage = model.StageRouteType
	return msgAskRouteType
}

// handleRouteType records the final preference and runs the selection
// pipeline: constraint filter (distance always soft here, so no trail is
// dropped purely on distance), scenery matcher, then the reasoner.
func (c *Controller) handleRouteType(ctx context.Context, msg string) string {
	c.state.Prefs.RouteType = strings.TrimSpace(msg)

	candidates := planner.Filter(c.catalog.Trails(), planner.Query{
		Difficulty:   c.state.Prefs.Difficulty,
		MaxDistance:  c.state.Prefs.MaxDistance,
		RouteType:    c.state.Prefs.RouteType,
		SoftDistance: true,
	})
	afterConstraints := len(candidates)

	candidates = planner.MatchScenery(candidates, c.state.Prefs.Scenery)
	counts := model.FilterCounts{
		AfterConstraints: afterConstraints,
		AfterScenery:     len(candidates),
	}

	selected, explanation := c.selector.Select(ctx, candidates, c.state.Prefs, counts)
	if selected == nil {
		c.state.Stage = model.StageDone
		return msgNoTrails
	}

	c.state.SelectedTrail = selected
	c.state.SelectionReason = explanation
	c.state.Stage = model.StageConfirmSelection

	description := c.generator.Generate(ctx, "narration", descriptionPrompt(selected))
	if description == "" {
		description = describeTrail(selected)
	}

	return fmt.Sprintf("%s\n\nReason for selection: %s\n\nWould you like the current weather for this trail?",
		description, explanation.Reasoning)
}

func (c *Controller) handleConfirmSelection(ctx context.Context, msg string) string {
	if !isAffirmative(msg) {
		c.state.Stage = model.StageDone
		return msgDeclineSelection
	}

	trail := c.state.SelectedTrail
	current := c.weather.Current(ctx, trail.Lat, trail.Lon)
	condition := weather.DescribeCode(current.WeatherCode)

	report := c.generator.Generate(ctx, "narration", weatherPrompt(trail, current, condition))
	if report == "" {
		report = fmt.Sprintf("The weather at %s is %s, with a temperature of %.1f°C and winds at %.1f km/h.",
			trail.Name, condition, current.Temperature, current.Windspeed)
	}

	c.state.Stage = model.StageConfirmAmenities
	return report + "\n\nWould you like me to find cafes or pubs nearby for a post-hike re-fuel?"
}

func (c *Controller) handleConfirmAmenities(ctx context.Context, msg string) string {
	c.state.Stage = model.StageDone

	categories, label, ok := amenityRequest(msg)
	if !ok {
		return msgDeclineAmenities
	}

	trail := c.state.SelectedTrail
	found := c.places.Nearby(ctx, trail.Lat, trail.Lon, c.radiusM, categories)
	if len(found) == 0 {
		return fmt.Sprintf("Sorry, no nearby %s were found within %d km.", label, c.radiusM/1000)
	}

	listing := formatPlaces(found)
	summary := c.generator.Generate(ctx, "narration", placesPrompt(listing))
	if summary == "" {
		summary = "Here are some nearby places:\n" + listing
	}
	return summary
}

// amenityRequest maps the utterance onto the requested amenity categories.
// A plain affirmative means both; anything unrecognized is a decline.
func amenityRequest(msg string) (categories []string, label string, ok bool) {
	switch strings.ToLower(strings.TrimSpace(msg)) {
	case "pub", "pubs":
		return []string{"pub"}, "pubs", true
	case "cafe", "cafes":
		return []string{"cafe"}, "cafes", true
	case "yes", "y":
		return []string{"cafe", "pub"}, "pubs or cafes", true
	}
	return nil, "", false
}

func isAffirmative(msg string) bool {
	switch strings.ToLower(strings.TrimSpace(msg)) {
	case "yes", "y":
		return true
	}
	return false
}

func formatPlaces(found []model.Place) string {
	lines := make([]string, 0, len(found))
	for i, p := range found {
		lines = append(lines, fmt.Sprintf("%d. %s - %.2f km away - %s", i+1, p.Name, p.DistanceKm, p.Description))
	}
	return strings.Join(lines, "\n")
}

// describeTrail is the templated fallback for the trail description.
func describeTrail(t *model.Trail) string {
	return fmt.Sprintf("%s is a %s trail, %.1f km long, with tags: %s.",
		t.Name, t.Difficulty, t.DistanceKm, strings.Join(t.Tags, ", "))
}
