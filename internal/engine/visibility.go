package engine

import (
	"strings"

	"talentflow-service/internal/models"
)

// IsVisible decides whether a question is currently shown, given the raw
// response map. Pure function of its inputs: no caching, no side effects.
// Visibility is recomputed from scratch on every response change, and each
// question is judged independently (a hidden question's stale answer still
// satisfies conditions that reference it).
func IsVisible(q *models.Question, responses models.ResponseMap) bool {
	cond := q.ShowIf
	if cond == nil || cond.QuestionID == "" {
		return true
	}

	target := responses[cond.QuestionID]
	accepted := splitEquals(cond.Equals)

	// Multi-choice style answer: any overlap with the accepted values is
	// enough. With no accepted values the question shows as soon as
	// anything is selected.
	if arr, ok := asStringSlice(target); ok {
		if len(accepted) == 0 {
			return len(arr) > 0
		}
		for _, want := range accepted {
			for _, got := range arr {
				if got == want {
					return true
				}
			}
		}
		return false
	}

	// No expected value: plain truthy check on the scalar.
	if cond.Equals == "" {
		return truthy(target)
	}

	got := stringify(target)
	if len(accepted) > 1 {
		for _, want := range accepted {
			if got == want {
				return true
			}
		}
		return false
	}
	// Single-value compare keeps the raw equals string, untrimmed.
	return got == cond.Equals
}

// splitEquals breaks a comma-separated equals string into trimmed,
// non-empty tokens.
func splitEquals(equals string) []string {
	if equals == "" {
		return nil
	}
	parts := strings.Split(equals, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
