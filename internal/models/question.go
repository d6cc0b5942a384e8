package models

// Question types supported by the assessment builder. Documents may carry
// types this service does not know yet; those render as no-ops instead of
// failing the whole document.
const (
	TypeSingleChoice = "single-choice"
	TypeMultiChoice  = "multi-choice"
	TypeShortText    = "short-text"
	TypeLongText     = "long-text"
	TypeNumeric      = "numeric"
	TypeFileUpload   = "file-upload"
)

type Option struct {
	ID    string `bson:"id" json:"id"`
	Label string `bson:"label" json:"label"`
	Value string `bson:"value" json:"value"`
}

// ValidationRules holds the type-dependent constraints of a question.
// Nil fields mean "no constraint".
type ValidationRules struct {
	Min       *float64 `bson:"min,omitempty" json:"min,omitempty"`
	Max       *float64 `bson:"max,omitempty" json:"max,omitempty"`
	MaxLength *int     `bson:"maxLength,omitempty" json:"maxLength,omitempty"`
}

// ShowIf makes a question visible only when another question's answer
// matches. Equals may list several acceptable values separated by commas;
// an empty Equals means "any truthy answer".
type ShowIf struct {
	QuestionID string `bson:"questionId" json:"questionId"`
	Equals     string `bson:"equals,omitempty" json:"equals,omitempty"`
}

type Question struct {
	ID         string           `bson:"id" json:"id"`
	Type       string           `bson:"type" json:"type"`
	Label      string           `bson:"label" json:"label"`
	Required   bool             `bson:"required" json:"required"`
	Options    []Option         `bson:"options,omitempty" json:"options,omitempty"`
	Validation *ValidationRules `bson:"validation,omitempty" json:"validation,omitempty"`
	ShowIf     *ShowIf          `bson:"showIf,omitempty" json:"showIf,omitempty"`
}

// IsChoice reports whether the question carries an options list.
func (q *Question) IsChoice() bool {
	return q.Type == TypeSingleChoice || q.Type == TypeMultiChoice
}

// IsText reports whether the question is a free-text type.
func (q *Question) IsText() bool {
	return q.Type == TypeShortText || q.Type == TypeLongText
}

// KnownType reports whether the question type is one this service renders
// and validates.
func (q *Question) KnownType() bool {
	switch q.Type {
	case TypeSingleChoice, TypeMultiChoice, TypeShortText, TypeLongText, TypeNumeric, TypeFileUpload:
		return true
	}
	return false
}
