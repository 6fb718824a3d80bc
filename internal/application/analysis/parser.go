package analysis

import (
	"strings"

	"github.com/doeshing/cosmo-health/internal/domain"
)

// Parse splits a model reply into recommendations and condition estimates.
//
// Text without the recommendations marker is returned whole, untrimmed, with
// no states. Otherwise everything after the first marker is split at the first
// states marker; without one the trimmed remainder is the recommendation.
// State lines must start with "-" and contain an em dash; other lines are
// skipped.
func Parse(text string) domain.ParsedResult {
	_, rest, found := strings.Cut(text, domain.MarkerRecommendations)
	if !found {
		return domain.ParsedResult{Recommendations: text}
	}

	recs, block, found := strings.Cut(rest, domain.MarkerStates)
	if !found {
		return domain.ParsedResult{Recommendations: strings.TrimSpace(rest)}
	}

	return domain.ParsedResult{
		Recommendations: strings.TrimSpace(recs),
		States:          parseStates(block),
	}
}

func parseStates(block string) []domain.ConditionEstimate {
	var states []domain.ConditionEstimate
	for _, line := range strings.Split(strings.TrimSpace(block), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, domain.StateBullet) || !strings.Contains(line, domain.StateSeparator) {
			continue
		}
		content := strings.TrimSpace(strings.TrimPrefix(line, domain.StateBullet))
		name, percent, ok := strings.Cut(content, domain.StateSeparator)
		if !ok {
			continue
		}
		states = append(states, domain.ConditionEstimate{
			Name:    strings.TrimSpace(name),
			Percent: strings.TrimSpace(percent),
		})
	}
	return states
}
