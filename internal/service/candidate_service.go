package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"talentflow-service/internal/models"
	"talentflow-service/internal/repository"
)

var (
	ErrDuplicateEmail = errors.New("a candidate with this email already exists")
	ErrInvalidStage   = errors.New("unknown pipeline stage")
)

type CandidateService struct {
	Repo        *repository.CandidateRepository
	Timeline    *repository.TimelineRepository
	Assignments *repository.AssignmentRepository
}

func NewCandidateService(repo *repository.CandidateRepository, timeline *repository.TimelineRepository, assignments *repository.AssignmentRepository) *CandidateService {
	return &CandidateService{Repo: repo, Timeline: timeline, Assignments: assignments}
}

func (s *CandidateService) ListCandidates(ctx context.Context, q models.CandidateQuery) ([]models.Candidate, int, error) {
	all, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, 0, err
	}
	page, total := FilterCandidates(all, q)
	return page, total, nil
}

// FilterCandidates narrows and paginates a candidate list. Pure; total is
// the match count before pagination.
func FilterCandidates(candidates []models.Candidate, q models.CandidateQuery) ([]models.Candidate, int) {
	list := make([]models.Candidate, 0, len(candidates))
	needle := strings.ToLower(q.Search)
	for _, c := range candidates {
		if needle != "" &&
			!strings.Contains(strings.ToLower(c.Name), needle) &&
			!strings.Contains(strings.ToLower(c.Email), needle) {
			continue
		}
		if q.Stage != "" && q.Stage != "all" && defaultStr(c.Stage, "Applied") != q.Stage {
			continue
		}
		list = append(list, c)
	}

	total := len(list)
	page := q.Page
	if page < 1 {
		page = 1
	}
	size := q.PageSize
	if size < 1 {
		size = 1000
	}
	start := (page - 1) * size
	if start >= total {
		return []models.Candidate{}, total
	}
	end := start + size
	if end > total {
		end = total
	}
	return list[start:end], total
}

func (s *CandidateService) GetCandidate(ctx context.Context, id string) (*models.Candidate, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *CandidateService) CreateCandidate(ctx context.Context, c *models.Candidate) error {
	if err := checkEmailFree(ctx, s.Repo, c.Email, ""); err != nil {
		return err
	}
	if c.ID == "" {
		c.ID = "cand-" + uuid.New().String()
	}
	if c.Stage == "" {
		c.Stage = "Applied"
	}
	if !models.ValidStage(c.Stage) {
		return ErrInvalidStage
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		return err
	}
	return s.Timeline.Append(ctx, &models.TimelineEvent{
		CandidateID: c.ID,
		Type:        models.TimelineCreated,
		Stage:       c.Stage,
		At:          time.Now(),
	})
}

// UpdateCandidate applies a partial update. A stage change is the kanban
// board's drag side effect and lands as a timeline event.
func (s *CandidateService) UpdateCandidate(ctx context.Context, id string, update map[string]any) (*models.Candidate, error) {
	prev, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if email, ok := update["email"].(string); ok {
		if err := checkEmailFree(ctx, s.Repo, email, id); err != nil {
			return nil, err
		}
	}
	if stage, ok := update["stage"].(string); ok && stage != "" && !models.ValidStage(stage) {
		return nil, ErrInvalidStage
	}

	if err := s.Repo.Update(ctx, id, bson.M(update)); err != nil {
		return nil, err
	}
	curr, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if stage, ok := update["stage"].(string); ok && stage != "" && stage != prev.Stage {
		if err := s.Timeline.Append(ctx, &models.TimelineEvent{
			CandidateID: id,
			Type:        models.TimelineStage,
			From:        prev.Stage,
			To:          stage,
			At:          time.Now(),
		}); err != nil {
			return nil, err
		}
	}
	return curr, nil
}

func (s *CandidateService) DeleteCandidate(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	return s.Timeline.DeleteByCandidate(ctx, id)
}

func (s *CandidateService) GetTimeline(ctx context.Context, candidateID string) ([]models.TimelineEvent, error) {
	return s.Timeline.FindByCandidate(ctx, candidateID)
}

// AssignAssessment points the candidate at a job's assessment, replacing
// any previous assignment.
func (s *CandidateService) AssignAssessment(ctx context.Context, candidateID, jobID string) ([]string, error) {
	list, err := s.Assignments.Assign(ctx, candidateID, jobID)
	if err != nil {
		return nil, err
	}
	_ = s.Timeline.Append(ctx, &models.TimelineEvent{
		CandidateID: candidateID,
		Type:        models.TimelineAssignment,
		JobID:       jobID,
		At:          time.Now(),
	})
	return list, nil
}

func (s *CandidateService) GetAssignments(ctx context.Context, candidateID string) ([]string, error) {
	return s.Assignments.FindByCandidate(ctx, candidateID)
}

// emailLookup is the slice of the candidate store the uniqueness check
// needs; *repository.CandidateRepository satisfies it.
type emailLookup interface {
	FindByEmail(ctx context.Context, email string) (*models.Candidate, error)
}

// checkEmailFree rejects an email already claimed by another candidate.
// The key is lowercased and trimmed before lookup; a candidate keeping
// its own email on update passes, and a blank email is always free.
func checkEmailFree(ctx context.Context, lookup emailLookup, email, selfID string) error {
	key := strings.ToLower(strings.TrimSpace(email))
	if key == "" {
		return nil
	}
	existing, err := lookup.FindByEmail(ctx, key)
	if err == mongo.ErrNoDocuments {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != selfID {
		return ErrDuplicateEmail
	}
	return nil
}
