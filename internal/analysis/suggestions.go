package analysis

import (
	"regexp"
	"strings"
)

type SuggestionType string

const (
	SuggestionError        SuggestionType = "error"
	SuggestionWarning      SuggestionType = "warning"
	SuggestionOptimization SuggestionType = "optimization"
)

// one finding parsed from model output
type Suggestion struct {
	Type        SuggestionType `json:"type"`
	Line        int            `json:"line"`
	Description string         `json:"description"`
	Confidence  float64        `json:"confidence"`
}

type suggestionRule struct {
	markers    []string
	prefix     *regexp.Regexp
	kind       SuggestionType
	confidence float64
}

// checked in order, the first matching rule wins
var suggestionRules = []suggestionRule{
	{
		markers:    []string{"Error:", "Bug:"},
		prefix:     regexp.MustCompile(`(?i)^.*?(Error|Bug):\s*`),
		kind:       SuggestionError,
		confidence: 0.9,
	},
	{
		markers:    []string{"Warning:", "Issue:"},
		prefix:     regexp.MustCompile(`(?i)^.*?(Warning|Issue):\s*`),
		kind:       SuggestionWarning,
		confidence: 0.8,
	},
	{
		markers:    []string{"Suggestion:", "Improvement:"},
		prefix:     regexp.MustCompile(`(?i)^.*?(Suggestion|Improvement):\s*`),
		kind:       SuggestionOptimization,
		confidence: 0.7,
	},
}

// extracts typed suggestions from marker lines such as "Bug: off by one"
func ParseSuggestions(output string) []Suggestion {
	suggestions := []Suggestion{}

	for i, line := range strings.Split(output, "\n") {
		for _, rule := range suggestionRules {
			if !containsAny(line, rule.markers) {
				continue
			}

			suggestions = append(suggestions, Suggestion{
				Type:        rule.kind,
				Line:        i + 1,
				Description: rule.prefix.ReplaceAllString(line, ""),
				Confidence:  rule.confidence,
			})

			break
		}
	}

	return suggestions
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}

	return false
}
