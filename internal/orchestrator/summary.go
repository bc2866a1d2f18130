package orchestrator

import (
	"fmt"
	"time"

	"codeberg.org/swarmworks/server/internal/agents"
)

const (
	highConfidence     = 0.8
	moderateConfidence = 0.6
)

// arithmetic mean of the confidences, 0 for no responses
func meanConfidence(responses []agents.Response) float64 {
	if len(responses) == 0 {
		return 0
	}

	var sum float64
	for _, r := range responses {
		sum += r.Confidence
	}

	return sum / float64(len(responses))
}

// one line describing how many agents succeeded, the confidence band and the wall time
func Summarize(succeeded int, confidence float64, took time.Duration) string {
	band := "Low confidence - consider manual review."

	switch {
	case confidence > highConfidence:
		band = "High confidence in analysis results."
	case confidence > moderateConfidence:
		band = "Moderate confidence in analysis results."
	}

	return fmt.Sprintf("Analysis completed with %d agents. %s Total execution time: %.2fs", succeeded, band, took.Seconds())
}
