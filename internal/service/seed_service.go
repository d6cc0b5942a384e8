package service

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"talentflow-service/internal/models"
	"talentflow-service/internal/repository"
)

// SeedService populates empty collections with development data: 20 jobs,
// 100 candidates and 3 assessments. Collections that already hold data are
// left alone.
type SeedService struct {
	Jobs        *repository.JobRepository
	Candidates  *repository.CandidateRepository
	Assessments *repository.AssessmentRepository
	Timeline    *repository.TimelineRepository
}

func NewSeedService(jobs *repository.JobRepository, candidates *repository.CandidateRepository, assessments *repository.AssessmentRepository, timeline *repository.TimelineRepository) *SeedService {
	return &SeedService{Jobs: jobs, Candidates: candidates, Assessments: assessments, Timeline: timeline}
}

func (s *SeedService) SeedIfEmpty(ctx context.Context) error {
	jobs := seedJobs()

	if n, err := s.Jobs.Count(ctx); err != nil {
		return err
	} else if n == 0 {
		for i := range jobs {
			if err := s.Jobs.Create(ctx, &jobs[i]); err != nil {
				return err
			}
		}
		log.Printf("Seeded %d jobs", len(jobs))
	}

	if n, err := s.Candidates.Count(ctx); err != nil {
		return err
	} else if n == 0 {
		candidates := seedCandidates(jobs)
		for i := range candidates {
			if err := s.Candidates.Create(ctx, &candidates[i]); err != nil {
				return err
			}
			if err := s.Timeline.Append(ctx, &models.TimelineEvent{
				CandidateID: candidates[i].ID,
				Type:        models.TimelineSeed,
				Stage:       candidates[i].Stage,
				At:          time.Now(),
			}); err != nil {
				return err
			}
		}
		log.Printf("Seeded %d candidates", len(candidates))
	}

	if n, err := s.Assessments.Count(ctx); err != nil {
		return err
	} else if n == 0 {
		for _, a := range seedAssessments(jobs[:3]) {
			if err := s.Assessments.Save(ctx, a.JobID, a); err != nil {
				return err
			}
		}
		log.Println("Seeded 3 assessments")
	}

	return nil
}

func seedJobs() []models.Job {
	type seed struct {
		title, company, location, jobType string
		tags                              []string
	}
	seeds := []seed{
		{"Senior Frontend Engineer", "TechCorp", "San Francisco, CA", "Full-time", []string{"engineering", "frontend", "react"}},
		{"Backend Developer", "InnovateLabs", "Remote", "Full-time", []string{"engineering", "backend", "node"}},
		{"Full Stack Engineer", "DataSystems", "New York, NY", "Full-time", []string{"engineering", "fullstack"}},
		{"DevOps Engineer", "CloudNine", "Seattle, WA", "Full-time", []string{"engineering", "devops", "aws"}},
		{"Product Manager", "TechCorp", "San Francisco, CA", "Full-time", []string{"product", "management"}},
		{"UX/UI Designer", "DevStudio", "Austin, TX", "Full-time", []string{"design", "ux"}},
		{"Data Scientist", "DataSystems", "Boston, MA", "Full-time", []string{"data", "ml", "python"}},
		{"Mobile Developer (iOS)", "AgileWorks", "Remote", "Full-time", []string{"engineering", "mobile", "ios"}},
		{"QA Engineer", "CodeCraft", "Denver, CO", "Full-time", []string{"engineering", "qa", "testing"}},
		{"Security Engineer", "CloudNine", "Seattle, WA", "Full-time", []string{"engineering", "security"}},
		{"Frontend Developer (React)", "ByteForge", "Remote", "Contract", []string{"engineering", "frontend", "react"}},
		{"Machine Learning Engineer", "InnovateLabs", "San Francisco, CA", "Full-time", []string{"engineering", "ml", "ai"}},
		{"Technical Writer", "TechCorp", "Remote", "Part-time", []string{"documentation", "writing"}},
		{"Solutions Architect", "CloudNine", "Chicago, IL", "Full-time", []string{"engineering", "architecture"}},
		{"Customer Success Manager", "AgileWorks", "New York, NY", "Full-time", []string{"customer", "support"}},
		{"Marketing Manager", "DevStudio", "Austin, TX", "Full-time", []string{"marketing", "growth"}},
		{"Sales Engineer", "DataSystems", "Boston, MA", "Full-time", []string{"sales", "engineering"}},
		{"Site Reliability Engineer", "ByteForge", "Remote", "Full-time", []string{"engineering", "sre", "devops"}},
		{"Engineering Manager", "TechCorp", "San Francisco, CA", "Full-time", []string{"engineering", "management", "leadership"}},
		{"Junior Backend Developer", "CodeCraft", "Denver, CO", "Full-time", []string{"engineering", "backend", "junior"}},
	}

	jobs := make([]models.Job, len(seeds))
	for i, sp := range seeds {
		status := "open"
		if i >= 18 {
			status = "filled"
		}
		jobs[i] = models.Job{
			ID:       fmt.Sprintf("job-%d", i+1),
			Title:    sp.title,
			Company:  sp.company,
			Location: sp.location,
			Type:     sp.jobType,
			Slug:     Slugify(sp.title),
			Status:   status,
			Tags:     sp.tags,
			Order:    i + 1,
			Archived: i == 19,
		}
	}
	return jobs
}

func seedCandidates(jobs []models.Job) []models.Candidate {
	firstNames := []string{"Alex", "Jordan", "Taylor", "Morgan", "Casey", "Riley", "Avery", "Quinn", "Sage", "Rowan",
		"Cameron", "Dakota", "Emerson", "Finley", "Harper", "Hayden", "Jamie", "Jesse", "Kai", "Logan",
		"Marley", "Parker", "Peyton", "Reese", "River", "Sawyer", "Skyler", "Spencer", "Sydney", "Tatum"}
	lastNames := []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez",
		"Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
		"Lee", "Perez", "Thompson", "White", "Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson"}

	candidates := make([]models.Candidate, 0, 100)
	for i := 1; i <= 100; i++ {
		first := firstNames[i%len(firstNames)]
		last := lastNames[(i/3)%len(lastNames)]
		job := jobs[((i-1)/5)%len(jobs)]

		// Weight candidates toward the early stages.
		var stage string
		switch r := rand.Float64(); {
		case r < 0.35:
			stage = "Applied"
		case r < 0.55:
			stage = "Phone Screen"
		case r < 0.70:
			stage = "Onsite"
		case r < 0.80:
			stage = "Offer"
		case r < 0.90:
			stage = "Hired"
		default:
			stage = "Rejected"
		}

		candidates = append(candidates, models.Candidate{
			ID:    fmt.Sprintf("cand-%d", i),
			Name:  first + " " + last,
			Email: fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(first), strings.ToLower(last), i),
			Stage: stage,
			JobID: job.ID,
		})
	}
	return candidates
}

func seedAssessments(jobs []models.Job) []*models.Assessment {
	out := make([]*models.Assessment, 0, len(jobs))
	for _, job := range jobs {
		qid := func(n int) string { return fmt.Sprintf("q%d-%s", n, job.ID) }
		oid := func(n, o int) string { return fmt.Sprintf("q%do%d-%s", n, o, job.ID) }

		out = append(out, &models.Assessment{
			JobID:       job.ID,
			Title:       "Assessment for " + job.Title,
			Description: "Seeded assessment",
			Sections: []models.Section{
				{
					ID:          "sec-1-" + job.ID,
					Title:       "General",
					Description: "Basic information",
					Questions: []models.Question{
						{ID: qid(1), Type: models.TypeShortText, Label: "Full name", Required: true,
							Validation: &models.ValidationRules{MaxLength: intPtr(120)}},
						{ID: qid(2), Type: models.TypeLongText, Label: "Tell us about yourself",
							Validation: &models.ValidationRules{MaxLength: intPtr(1000)}},
						{ID: qid(3), Type: models.TypeNumeric, Label: "Years of experience", Required: true,
							Validation: &models.ValidationRules{Min: floatPtr(0), Max: floatPtr(50)}},
						{ID: qid(4), Type: models.TypeSingleChoice, Label: "Open to relocation?", Required: true,
							Options: []models.Option{
								{ID: oid(4, 1), Label: "Yes", Value: "Yes"},
								{ID: oid(4, 2), Label: "No", Value: "No"},
							}},
						{ID: qid(5), Type: models.TypeShortText, Label: "Preferred cities (if yes)",
							ShowIf: &models.ShowIf{QuestionID: qid(4), Equals: "Yes"}},
						{ID: qid(6), Type: models.TypeFileUpload, Label: "Upload resume (PDF name will be stored only)"},
					},
				},
				{
					ID:          "sec-2-" + job.ID,
					Title:       "Technical",
					Description: "Role-specific questions",
					Questions: []models.Question{
						{ID: qid(7), Type: models.TypeMultiChoice, Label: "Tech stack familiarity", Required: true,
							Options: []models.Option{
								{ID: oid(7, 1), Label: "React", Value: "React"},
								{ID: oid(7, 2), Label: "Node", Value: "Node"},
								{ID: oid(7, 3), Label: "Python", Value: "Python"},
								{ID: oid(7, 4), Label: "Go", Value: "Go"},
							}},
						{ID: qid(8), Type: models.TypeSingleChoice, Label: "Have you led a team before?",
							Options: []models.Option{
								{ID: oid(8, 1), Label: "Yes", Value: "Yes"},
								{ID: oid(8, 2), Label: "No", Value: "No"},
							}},
						{ID: qid(9), Type: models.TypeLongText, Label: "Describe your leadership experience",
							Validation: &models.ValidationRules{MaxLength: intPtr(800)},
							ShowIf:     &models.ShowIf{QuestionID: qid(8), Equals: "Yes"}},
						{ID: qid(10), Type: models.TypeSingleChoice, Label: "Preferred work setup", Required: true,
							Options: []models.Option{
								{ID: oid(10, 1), Label: "Remote", Value: "Remote"},
								{ID: oid(10, 2), Label: "Hybrid", Value: "Hybrid"},
								{ID: oid(10, 3), Label: "Onsite", Value: "Onsite"},
							}},
						{ID: qid(11), Type: models.TypeShortText, Label: "Which days can you work onsite? (if Onsite/Hybrid)",
							ShowIf: &models.ShowIf{QuestionID: qid(10), Equals: "Hybrid,Onsite"}},
					},
				},
			},
		})
	}
	return out
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
