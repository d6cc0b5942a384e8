package models

import "time"

// Timeline event types.
const (
	TimelineCreated    = "created"
	TimelineSeed       = "seed"
	TimelineStage      = "stage"
	TimelineSubmission = "submission"
	TimelineAssignment = "assignment"
)

// TimelineEvent records one thing that happened to a candidate: creation,
// a stage move, an assessment assignment or a submission.
type TimelineEvent struct {
	ID          string    `bson:"_id,omitempty" json:"id,omitempty"`
	CandidateID string    `bson:"candidate_id" json:"candidateId"`
	Type        string    `bson:"type" json:"type"`
	Stage       string    `bson:"stage,omitempty" json:"stage,omitempty"`
	From        string    `bson:"from,omitempty" json:"from,omitempty"`
	To          string    `bson:"to,omitempty" json:"to,omitempty"`
	JobID       string    `bson:"job_id,omitempty" json:"jobId,omitempty"`
	At          time.Time `bson:"at" json:"at"`
}
