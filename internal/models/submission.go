package models

import "time"

// ResponseMap holds a candidate's in-progress answers keyed by question id.
// Values are strings for text, numeric, single-choice and file-upload
// questions (file name only) and string slices for multi-choice. Unanswered
// questions are simply absent.
type ResponseMap map[string]any

// Submission is one completed, validated response set for a job. A
// candidate may submit more than once; the store keeps them all.
type Submission struct {
	ID          string      `bson:"_id,omitempty" json:"id"`
	JobID       string      `bson:"job_id" json:"jobId"`
	CandidateID string      `bson:"candidate_id,omitempty" json:"candidateId,omitempty"`
	Responses   ResponseMap `bson:"responses" json:"responses"`
	At          time.Time   `bson:"at" json:"at"`
}
