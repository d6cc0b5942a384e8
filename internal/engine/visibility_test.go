package engine

import (
	"testing"

	"talentflow-service/internal/models"
)

func TestIsVisibleNoCondition(t *testing.T) {
	q := &models.Question{ID: "q2", Type: models.TypeShortText}

	responseSets := []models.ResponseMap{
		{},
		{"q1": "anything"},
		{"q1": []string{"a", "b"}},
		nil,
	}
	for _, responses := range responseSets {
		if !IsVisible(q, responses) {
			t.Errorf("question without condition should always be visible, responses=%v", responses)
		}
	}
}

func TestIsVisibleTruthyCheck(t *testing.T) {
	q := &models.Question{
		ID:     "q2",
		Type:   models.TypeShortText,
		ShowIf: &models.ShowIf{QuestionID: "q1"},
	}

	testCases := []struct {
		name    string
		value   any
		present bool
		want    bool
	}{
		{"absent", nil, false, false},
		{"nil value", nil, true, false},
		{"empty string", "", true, false},
		{"non-empty string", "Yes", true, true},
		{"zero number", float64(0), true, false},
		{"non-zero number", float64(3), true, true},
		{"false", false, true, false},
		{"true", true, true, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			responses := models.ResponseMap{}
			if tc.present {
				responses["q1"] = tc.value
			}
			if got := IsVisible(q, responses); got != tc.want {
				t.Errorf("IsVisible = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsVisibleScalarEquals(t *testing.T) {
	testCases := []struct {
		name   string
		equals string
		value  any
		want   bool
	}{
		{"single match", "Yes", "Yes", true},
		{"single mismatch", "Yes", "No", false},
		{"case sensitive", "Yes", "yes", false},
		{"multi match first", "A,B", "A", true},
		{"multi match second", "A,B", "B", true},
		{"multi mismatch", "A,B", "C", false},
		{"multi with spaces", "A, B", "B", true},
		{"numeric answer", "5", float64(5), true},
		{"absent answer", "Yes", nil, false},
		{"single token keeps raw equals", " Yes ", "Yes", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := &models.Question{
				ID:     "q2",
				Type:   models.TypeShortText,
				ShowIf: &models.ShowIf{QuestionID: "q1", Equals: tc.equals},
			}
			responses := models.ResponseMap{}
			if tc.value != nil {
				responses["q1"] = tc.value
			}
			if got := IsVisible(q, responses); got != tc.want {
				t.Errorf("equals=%q value=%v: IsVisible = %v, want %v", tc.equals, tc.value, got, tc.want)
			}
		})
	}
}

func TestIsVisibleArrayTarget(t *testing.T) {
	testCases := []struct {
		name   string
		equals string
		value  any
		want   bool
	}{
		{"overlap", "A,B", []string{"B", "Z"}, true},
		{"no overlap", "A,B", []string{"Z"}, false},
		{"empty array no equals", "", []string{}, false},
		{"non-empty array no equals", "", []string{"anything"}, true},
		{"empty array with equals", "A", []string{}, false},
		{"json decoded array", "Go", []any{"Go", "Python"}, true},
		{"json decoded array miss", "Rust", []any{"Go", "Python"}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := &models.Question{
				ID:     "q2",
				Type:   models.TypeShortText,
				ShowIf: &models.ShowIf{QuestionID: "q1", Equals: tc.equals},
			}
			responses := models.ResponseMap{"q1": tc.value}
			if got := IsVisible(q, responses); got != tc.want {
				t.Errorf("equals=%q value=%v: IsVisible = %v, want %v", tc.equals, tc.value, got, tc.want)
			}
		})
	}
}

func TestIsVisiblePure(t *testing.T) {
	q := &models.Question{
		ID:     "q2",
		Type:   models.TypeShortText,
		ShowIf: &models.ShowIf{QuestionID: "q1", Equals: "A,B"},
	}
	responses := models.ResponseMap{"q1": []string{"B"}}

	first := IsVisible(q, responses)
	second := IsVisible(q, responses)
	if first != second {
		t.Errorf("repeated evaluation diverged: %v then %v", first, second)
	}
	if len(responses) != 1 {
		t.Errorf("evaluation mutated responses: %v", responses)
	}
	if q.ShowIf.Equals != "A,B" {
		t.Errorf("evaluation mutated the condition: %q", q.ShowIf.Equals)
	}
}

func TestSplitEquals(t *testing.T) {
	testCases := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"A", []string{"A"}},
		{"A,B", []string{"A", "B"}},
		{" A , B ", []string{"A", "B"}},
		{",,", []string{}},
		{"A,,B", []string{"A", "B"}},
	}

	for _, tc := range testCases {
		got := splitEquals(tc.input)
		if len(got) != len(tc.want) {
			t.Errorf("splitEquals(%q) = %v, want %v", tc.input, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("splitEquals(%q)[%d] = %q, want %q", tc.input, i, got[i], tc.want[i])
			}
		}
	}
}
