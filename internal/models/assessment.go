package models

import "github.com/google/uuid"

type Section struct {
	ID          string     `bson:"id" json:"id"`
	Title       string     `bson:"title" json:"title"`
	Description string     `bson:"description" json:"description"`
	Questions   []Question `bson:"questions" json:"questions"`
}

// Assessment is the full form definition for one job. One assessment per
// job; keyed by JobID in the store.
type Assessment struct {
	JobID       string    `bson:"_id,omitempty" json:"jobId,omitempty"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Sections    []Section `bson:"sections" json:"sections"`
}

// StoredAssessment is the loosely-shaped document as persisted. Older
// builder versions saved a flat questions list with no sections; both
// shapes decode into this struct and Normalize picks the right branch.
type StoredAssessment struct {
	JobID       string     `bson:"_id,omitempty" json:"jobId,omitempty"`
	Title       string     `bson:"title" json:"title"`
	Description string     `bson:"description" json:"description"`
	Sections    []Section  `bson:"sections,omitempty" json:"sections,omitempty"`
	Questions   []Question `bson:"questions,omitempty" json:"questions,omitempty"`
}

// Normalize brings a stored document into the sectioned shape. A legacy
// flat questions list is wrapped into one synthetic section titled from the
// document title. Runs on every load; the normalized form is never written
// back unless the builder saves explicitly.
func (s *StoredAssessment) Normalize() *Assessment {
	out := &Assessment{
		JobID:       s.JobID,
		Title:       s.Title,
		Description: s.Description,
		Sections:    []Section{},
	}
	if s.Sections != nil {
		out.Sections = s.Sections
		return out
	}
	if s.Questions != nil {
		title := s.Title
		if title == "" {
			title = "Section"
		}
		out.Sections = []Section{{
			ID:          "section-" + uuid.New().String(),
			Title:       title,
			Description: s.Description,
			Questions:   s.Questions,
		}}
	}
	return out
}

// QuestionByID finds a question anywhere in the document.
func (a *Assessment) QuestionByID(id string) *Question {
	for si := range a.Sections {
		for qi := range a.Sections[si].Questions {
			if a.Sections[si].Questions[qi].ID == id {
				return &a.Sections[si].Questions[qi]
			}
		}
	}
	return nil
}

// Empty reports whether the document has nothing to render.
func (a *Assessment) Empty() bool {
	return a == nil || len(a.Sections) == 0
}
