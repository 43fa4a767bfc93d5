package dialogue

import (
	"fmt"
	"strings"

	"trailbuddy/pkg/model"
)

// descriptionPrompt asks for a cheerful recommendation of the selected trail.
func descriptionPrompt(t *model.Trail) string {
	route := t.Route
	if route == "" {
		route = "N/A"
	}
	return fmt.Sprintf(
		"You are a friendly hiking guide. Write a cheerful, natural paragraph recommending this trail:\n\n"+
			"Name: %s\nDifficulty: %s\nDistance: %.1f km\nRoute type: %s\nTags: %s\n\n"+
			"Include the tags naturally and make it engaging.",
		t.Name, t.Difficulty, t.DistanceKm, route, strings.Join(t.Tags, ", "))
}

// weatherPrompt asks for a short weather message with packing advice.
func weatherPrompt(t *model.Trail, w model.Weather, condition string) string {
	return fmt.Sprintf(
		"You are a friendly hiking assistant. Here is the current weather at %s:\n"+
			"Temperature: %.1f°C\nWind speed: %.1f km/h\nCondition: %s\n\n"+
			"Write a short, cheerful message including packing advice.",
		t.Name, w.Temperature, w.Windspeed, condition)
}

// placesPrompt asks for a friendly introduction of the nearby amenities.
func placesPrompt(listing string) string {
	return fmt.Sprintf(
		"You are a friendly local guide. Recommend these places naturally to hikers:\n%s\n\n"+
			"Write a cheerful paragraph introducing these places as post-hike options.",
		listing)
}
