package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"talentflow-service/internal/engine"
	"talentflow-service/internal/models"
	"talentflow-service/internal/repository"
)

// AssessmentService is the store behind the runner: it owns document
// fetch+normalize, builder saves, and submission capture.
type AssessmentService struct {
	Repo     *repository.AssessmentRepository
	Subs     *repository.SubmissionRepository
	Timeline *repository.TimelineRepository
}

func NewAssessmentService(repo *repository.AssessmentRepository, subs *repository.SubmissionRepository, timeline *repository.TimelineRepository) *AssessmentService {
	return &AssessmentService{Repo: repo, Subs: subs, Timeline: timeline}
}

// FetchAssessment implements engine.AssessmentStore. Every load passes
// through normalization; the normalized form is not written back.
func (s *AssessmentService) FetchAssessment(ctx context.Context, jobID string) (*models.Assessment, error) {
	stored, err := s.Repo.FindByJobID(ctx, jobID)
	if err == mongo.ErrNoDocuments {
		return nil, engine.ErrAssessmentNotFound
	}
	if err != nil {
		return nil, err
	}
	return stored.Normalize(), nil
}

// SaveAssessment persists the builder's document for a job as given.
func (s *AssessmentService) SaveAssessment(ctx context.Context, jobID string, a *models.Assessment) (*models.Assessment, error) {
	if a.Sections == nil {
		a.Sections = []models.Section{}
	}
	if err := s.Repo.Save(ctx, jobID, a); err != nil {
		return nil, err
	}
	return a, nil
}

// SubmitAssessment implements engine.SubmissionStore. The timeline entry
// is best-effort; a submission never fails because history could not be
// written.
func (s *AssessmentService) SubmitAssessment(ctx context.Context, jobID string, sub *models.Submission) (*models.Submission, error) {
	sub.ID = uuid.New().String()
	sub.JobID = jobID
	if sub.At.IsZero() {
		sub.At = time.Now()
	}
	if err := s.Subs.Create(ctx, sub); err != nil {
		return nil, err
	}
	if sub.CandidateID != "" {
		_ = s.Timeline.Append(ctx, &models.TimelineEvent{
			CandidateID: sub.CandidateID,
			Type:        models.TimelineSubmission,
			JobID:       jobID,
			At:          time.Now(),
		})
	}
	return sub, nil
}

// ListSubmissions returns every submission captured for a job.
func (s *AssessmentService) ListSubmissions(ctx context.Context, jobID string) ([]models.Submission, error) {
	return s.Subs.FindByJobID(ctx, jobID)
}

// RunSubmission drives one full runner pass for an already-collected
// response set: load, replay answers, submit. On validation failure the
// error map is returned and nothing is written.
func (s *AssessmentService) RunSubmission(ctx context.Context, jobID, candidateID string, responses models.ResponseMap, sessions engine.SessionResolver) (*models.Submission, map[string]string, error) {
	runner := engine.NewRunner(jobID, candidateID, s, s, sessions)
	runner.Load(ctx)
	for id, value := range responses {
		if err := runner.SetAnswer(id, value); err != nil {
			return nil, nil, err
		}
	}
	sub, err := runner.Submit(ctx)
	if err == engine.ErrValidation {
		return nil, runner.Errors(), err
	}
	if err != nil {
		return nil, nil, err
	}
	return sub, nil, nil
}
