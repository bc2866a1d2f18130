package agents

import "strings"

const (
	maxReviewSuggestions = 5
	noReviewSuggestions  = "No specific suggestions found in analysis"
)

var reviewKeywords = []string{"suggest", "recommend", "should", "consider"}

// pulls advice lines out of a free-form review
func extractReviewSuggestions(analysis string) []string {
	var suggestions []string

	lower := strings.ToLower(analysis)
	if strings.Contains(lower, "suggestion") || strings.Contains(lower, "recommend") {
		for _, line := range strings.Split(analysis, "\n") {
			if !containsKeyword(strings.ToLower(line)) {
				continue
			}

			suggestions = append(suggestions, strings.TrimSpace(line))
			if len(suggestions) == maxReviewSuggestions {
				break
			}
		}
	}

	if len(suggestions) == 0 {
		return []string{noReviewSuggestions}
	}

	return suggestions
}

func containsKeyword(line string) bool {
	for _, kw := range reviewKeywords {
		if strings.Contains(line, kw) {
			return true
		}
	}

	return false
}

// returns a copy of a fixed list so callers cannot mutate the shared one
func fixed(list ...string) func(string) []string {
	return func(string) []string {
		out := make([]string, len(list))
		copy(out, list)

		return out
	}
}
