package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNormalizeSectionedPassThrough(t *testing.T) {
	stored := &StoredAssessment{
		JobID: "job-1",
		Title: "Frontend Screen",
		Sections: []Section{
			{ID: "s1", Title: "Basics", Questions: []Question{{ID: "q1", Type: TypeShortText, Label: "Name"}}},
			{ID: "s2", Title: "Experience"},
		},
	}

	doc := stored.Normalize()
	if len(doc.Sections) != 2 {
		t.Fatalf("sections = %d, want 2", len(doc.Sections))
	}
	if doc.Sections[0].ID != "s1" || doc.Sections[1].ID != "s2" {
		t.Errorf("section ids = %q, %q", doc.Sections[0].ID, doc.Sections[1].ID)
	}
	if doc.JobID != "job-1" || doc.Title != "Frontend Screen" {
		t.Errorf("header fields not carried: %+v", doc)
	}
}

func TestNormalizeLegacyFlatQuestions(t *testing.T) {
	stored := &StoredAssessment{
		JobID: "job-2",
		Title: "T",
		Questions: []Question{
			{ID: "q1", Type: TypeShortText, Label: "Name"},
			{ID: "q2", Type: TypeNumeric, Label: "Years"},
		},
	}

	doc := stored.Normalize()
	if len(doc.Sections) != 1 {
		t.Fatalf("sections = %d, want 1", len(doc.Sections))
	}
	sec := doc.Sections[0]
	if sec.Title != "T" {
		t.Errorf("section title = %q, want the document title", sec.Title)
	}
	if !strings.HasPrefix(sec.ID, "section-") {
		t.Errorf("synthetic section id = %q", sec.ID)
	}
	if len(sec.Questions) != 2 || sec.Questions[0].ID != "q1" || sec.Questions[1].ID != "q2" {
		t.Errorf("questions = %+v", sec.Questions)
	}
}

func TestNormalizeLegacyUntitledFallsBackToSection(t *testing.T) {
	stored := &StoredAssessment{
		Questions: []Question{{ID: "q1", Type: TypeShortText}},
	}
	doc := stored.Normalize()
	if len(doc.Sections) != 1 || doc.Sections[0].Title != "Section" {
		t.Errorf("sections = %+v", doc.Sections)
	}
}

func TestNormalizeNeitherShape(t *testing.T) {
	doc := (&StoredAssessment{JobID: "job-3", Title: "Empty"}).Normalize()
	if doc.Sections == nil {
		t.Fatal("sections must be non-nil")
	}
	if len(doc.Sections) != 0 {
		t.Errorf("sections = %d, want 0", len(doc.Sections))
	}
	if !doc.Empty() {
		t.Error("document with no sections should report empty")
	}
}

func TestNormalizeFromJSON(t *testing.T) {
	raw := `{"title":"T","questions":[{"id":"q1","type":"short-text","label":"Name"}]}`
	var stored StoredAssessment
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		t.Fatal(err)
	}
	doc := stored.Normalize()
	if len(doc.Sections) != 1 || doc.Sections[0].Title != "T" {
		t.Fatalf("sections = %+v", doc.Sections)
	}
	if doc.Sections[0].Questions[0].Type != TypeShortText {
		t.Errorf("question type = %q", doc.Sections[0].Questions[0].Type)
	}
}

func TestQuestionByID(t *testing.T) {
	doc := &Assessment{Sections: []Section{
		{ID: "s1", Questions: []Question{{ID: "q1"}}},
		{ID: "s2", Questions: []Question{{ID: "q2"}, {ID: "q3"}}},
	}}

	if q := doc.QuestionByID("q3"); q == nil || q.ID != "q3" {
		t.Errorf("QuestionByID(q3) = %+v", q)
	}
	if q := doc.QuestionByID("missing"); q != nil {
		t.Errorf("QuestionByID(missing) = %+v, want nil", q)
	}
}
