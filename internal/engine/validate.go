package engine

import (
	"fmt"
	"strconv"
	"strings"

	"talentflow-service/internal/models"
)

// Validation messages shown inline next to a question.
const (
	MsgRequired     = "This question is required"
	MsgMustBeNumber = "Must be a number"
)

// ValidateQuestion checks one answer against a question's rules and returns
// the error message, or "" when the answer is acceptable. Callers only
// invoke it for visible questions; a hidden question never fails validation
// even when required.
//
// Later rules overwrite earlier ones, which mostly cannot co-fire. The one
// observable case is a numeric answer violating both bounds, where the max
// message wins over the min message.
func ValidateQuestion(q *models.Question, value any) string {
	msg := ""

	if q.Required {
		if q.Type == models.TypeMultiChoice {
			arr, ok := asStringSlice(value)
			if !ok || len(arr) == 0 {
				msg = MsgRequired
			}
		} else if value == nil || strings.TrimSpace(stringify(value)) == "" {
			msg = MsgRequired
		}
	}

	if q.Type == models.TypeNumeric && value != nil && stringify(value) != "" {
		num, err := strconv.ParseFloat(strings.TrimSpace(stringify(value)), 64)
		if err != nil {
			msg = MsgMustBeNumber
		} else {
			if v := q.Validation; v != nil {
				if v.Min != nil && num < *v.Min {
					msg = fmt.Sprintf("Min %s", formatBound(*v.Min))
				}
				if v.Max != nil && num > *v.Max {
					msg = fmt.Sprintf("Max %s", formatBound(*v.Max))
				}
			}
		}
	}

	if q.IsText() && q.Validation != nil && q.Validation.MaxLength != nil && *q.Validation.MaxLength > 0 {
		if s := stringify(value); truthy(value) && len([]rune(s)) > *q.Validation.MaxLength {
			msg = fmt.Sprintf("Max length %d", *q.Validation.MaxLength)
		}
	}

	return msg
}

// ValidateDocument runs every visible question through ValidateQuestion and
// aggregates the failures into an error map keyed by question id. An empty
// map means the document is submittable.
func ValidateDocument(doc *models.Assessment, responses models.ResponseMap) map[string]string {
	errs := make(map[string]string)
	if doc == nil {
		return errs
	}
	for si := range doc.Sections {
		questions := doc.Sections[si].Questions
		for qi := range questions {
			q := &questions[qi]
			if !IsVisible(q, responses) {
				continue
			}
			if msg := ValidateQuestion(q, responses[q.ID]); msg != "" {
				errs[q.ID] = msg
			}
		}
	}
	return errs
}

// formatBound renders a numeric bound without a trailing ".0" for whole
// numbers, matching how the builder displays them.
func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
