package engine

import (
	"context"
	"errors"
	"time"

	"talentflow-service/internal/models"
)

// State is the runner lifecycle position.
type State string

const (
	StateLoading    State = "loading"
	StateReady      State = "ready"
	StateSubmitting State = "submitting"
	StateSubmitted  State = "submitted"
)

var (
	// ErrAssessmentNotFound is returned by an AssessmentStore when no
	// document is saved for the job.
	ErrAssessmentNotFound = errors.New("assessment not found")

	// ErrNotReady rejects edits and submits outside the Ready state.
	ErrNotReady = errors.New("runner is not accepting input")

	// ErrValidation signals that submit was aborted because one or more
	// visible questions failed validation. The per-question messages are
	// available via Errors.
	ErrValidation = errors.New("assessment has validation errors")
)

// AssessmentStore reads the assessment document for a job.
type AssessmentStore interface {
	FetchAssessment(ctx context.Context, jobID string) (*models.Assessment, error)
}

// SubmissionStore persists one completed response set.
type SubmissionStore interface {
	SubmitAssessment(ctx context.Context, jobID string, sub *models.Submission) (*models.Submission, error)
}

// SessionResolver looks up the current candidate when the caller did not
// supply one explicitly.
type SessionResolver interface {
	ResolveCurrentCandidateID(ctx context.Context) (string, bool)
}

// Runner drives one candidate's pass through an assessment:
// load the document, collect answers, re-evaluate visibility on every
// change, validate visible questions on submit, and write exactly one
// submission on success.
//
// A Runner is scoped to a single session and must not be shared across
// goroutines; nothing here is process-global.
type Runner struct {
	jobID       string
	candidateID string

	assessments AssessmentStore
	submissions SubmissionStore
	sessions    SessionResolver

	state        State
	doc          *models.Assessment
	responses    models.ResponseMap
	errs         map[string]string
	submitFailed bool
}

// NewRunner creates a runner in the Loading state. candidateID may be
// empty; it is then resolved from the session at submit time.
func NewRunner(jobID, candidateID string, assessments AssessmentStore, submissions SubmissionStore, sessions SessionResolver) *Runner {
	return &Runner{
		jobID:       jobID,
		candidateID: candidateID,
		assessments: assessments,
		submissions: submissions,
		sessions:    sessions,
		state:       StateLoading,
		responses:   models.ResponseMap{},
		errs:        map[string]string{},
	}
}

// Load fetches the document and moves the runner to Ready. Fetch failures
// of any kind, including a missing document, degrade to an empty document;
// the runner never surfaces a load error, only the no-assessment state.
func (r *Runner) Load(ctx context.Context) {
	if r.state != StateLoading {
		return
	}
	doc, err := r.assessments.FetchAssessment(ctx, r.jobID)
	if err != nil || doc == nil {
		doc = &models.Assessment{Title: "Assessment", Sections: []models.Section{}}
	}
	if doc.Sections == nil {
		doc.Sections = []models.Section{}
	}
	r.doc = doc
	r.state = StateReady
}

func (r *Runner) State() State { return r.state }

// Document returns the loaded document. Read-only to the runner.
func (r *Runner) Document() *models.Assessment { return r.doc }

// NoAssessment reports whether the job has nothing configured, either
// because no document was saved or because the fetch failed.
func (r *Runner) NoAssessment() bool { return r.doc.Empty() }

// SubmitFailed reports whether the last submit attempt failed in transport.
// Cleared on the next attempt; the candidate may simply resubmit.
func (r *Runner) SubmitFailed() bool { return r.submitFailed }

// SetAnswer records the answer for one question and clears any existing
// error for it. The cleared question is not re-validated until the next
// submit attempt.
func (r *Runner) SetAnswer(questionID string, value any) error {
	if r.state != StateReady {
		return ErrNotReady
	}
	r.responses[questionID] = value
	delete(r.errs, questionID)
	return nil
}

// Answer returns the current answer for a question, if any.
func (r *Runner) Answer(questionID string) (any, bool) {
	v, ok := r.responses[questionID]
	return v, ok
}

// Responses returns a copy of the current response map.
func (r *Runner) Responses() models.ResponseMap {
	out := make(models.ResponseMap, len(r.responses))
	for k, v := range r.responses {
		out[k] = v
	}
	return out
}

// Errors returns the validation error map from the last submit attempt.
func (r *Runner) Errors() map[string]string {
	out := make(map[string]string, len(r.errs))
	for k, v := range r.errs {
		out[k] = v
	}
	return out
}

// Visibility recomputes the visibility of every question in the document
// from the current responses.
func (r *Runner) Visibility() map[string]bool {
	vis := make(map[string]bool)
	if r.doc == nil {
		return vis
	}
	for si := range r.doc.Sections {
		questions := r.doc.Sections[si].Questions
		for qi := range questions {
			q := &questions[qi]
			vis[q.ID] = IsVisible(q, r.responses)
		}
	}
	return vis
}

// Submit validates every visible question and, when clean, writes exactly
// one submission. On validation failure the runner stays Ready with the
// error map populated and no write happens. On transport failure it
// returns to Ready with SubmitFailed set; nothing is retried.
func (r *Runner) Submit(ctx context.Context) (*models.Submission, error) {
	if r.state != StateReady {
		return nil, ErrNotReady
	}

	errs := ValidateDocument(r.doc, r.responses)
	r.errs = errs
	if len(errs) > 0 {
		return nil, ErrValidation
	}

	r.state = StateSubmitting
	r.submitFailed = false

	candidateID := r.candidateID
	if candidateID == "" && r.sessions != nil {
		if id, ok := r.sessions.ResolveCurrentCandidateID(ctx); ok {
			candidateID = id
		}
	}

	sub := &models.Submission{
		JobID:       r.jobID,
		CandidateID: candidateID,
		Responses:   r.Responses(),
		At:          time.Now(),
	}
	saved, err := r.submissions.SubmitAssessment(ctx, r.jobID, sub)
	if err != nil {
		r.state = StateReady
		r.submitFailed = true
		return nil, err
	}

	r.state = StateSubmitted
	r.responses = models.ResponseMap{}
	r.errs = map[string]string{}
	return saved, nil
}
