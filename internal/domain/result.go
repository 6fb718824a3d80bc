package domain

// ConditionEstimate is one "name — percent" line from the model reply.
// Percent is kept exactly as written, e.g. "45%".
type ConditionEstimate struct {
	Name    string `json:"name"`
	Percent string `json:"percent"`
}

// ParsedResult is what the form renders after an analysis.
type ParsedResult struct {
	Recommendations string              `json:"recommendations"`
	States          []ConditionEstimate `json:"states"`
}

// RecommendationsOrPlaceholder returns the text shown in the recommendations area.
func (r ParsedResult) RecommendationsOrPlaceholder() string {
	if r.Recommendations == "" {
		return MsgNoRecommendations
	}
	return r.Recommendations
}

// HasStates reports whether any condition line was recognised.
func (r ParsedResult) HasStates() bool {
	return len(r.States) > 0
}
