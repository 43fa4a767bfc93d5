package planner

import (
	"regexp"
	"strings"

	"trailbuddy/pkg/model"
)

// scenerySynonyms expands a scenery keyword into the terms that may appear
// in trail tags or descriptions. Many-to-many thesaurus, not a taxonomy.
var scenerySynonyms = map[string][]string{
	"scenic":    {"panoramic", "lake", "forest", "view", "fell", "mountain", "scenic"},
	"water":     {"lake", "river", "stream", "waterfall", "pond"},
	"mountain":  {"fell", "peak", "ridge", "mountain"},
	"forest":    {"woodland", "forest", "trees"},
	"lake":      {"lake", "water", "pond"},
	"panoramic": {"panoramic", "view", "scenic"},
	"relaxing":  {"peaceful", "quiet", "relaxing"},
}

var wordPattern = regexp.MustCompile(`\w+`)

// SceneryKeywords tokenizes a free-text scenery preference and expands each
// token through the synonym table. Tokens without synonyms expand to
// themselves only.
func SceneryKeywords(sceneryText string) []string {
	tokens := wordPattern.FindAllString(strings.ToLower(sceneryText), -1)

	seen := make(map[string]bool)
	var keywords []string
	add := func(k string) {
		if !seen[k] {
			seen[k] = true
			keywords = append(keywords, k)
		}
	}

	for _, tok := range tokens {
		if synonyms, ok := scenerySynonyms[tok]; ok {
			for _, s := range synonyms {
				add(s)
			}
		} else {
			add(tok)
		}
	}

	return keywords
}

// MatchScenery keeps candidates whose tags or description contain any of
// the expanded scenery keywords. Scenery is advisory: an empty preference
// passes candidates through unchanged, and if the keyword filter would
// eliminate everything the original set is returned instead.
func MatchScenery(candidates []model.Candidate, sceneryText string) []model.Candidate {
	if strings.TrimSpace(sceneryText) == "" {
		return candidates
	}

	keywords := SceneryKeywords(sceneryText)

	var filtered []model.Candidate
	for _, c := range candidates {
		blob := c.SearchText()
		for _, k := range keywords {
			if strings.Contains(blob, k) {
				filtered = append(filtered, c)
				break
			}
		}
	}

	if len(filtered) == 0 {
		return candidates
	}
	return filtered
}
