package service

import (
	"context"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"talentflow-service/internal/models"
	"talentflow-service/internal/repository"
)

type JobService struct {
	Repo *repository.JobRepository
}

func NewJobService(repo *repository.JobRepository) *JobService {
	return &JobService{Repo: repo}
}

// ListJobs applies the board filters in memory over the full job list.
// The dataset is a hiring pipeline, not a warehouse; tens of jobs.
func (s *JobService) ListJobs(ctx context.Context, q models.JobQuery) ([]models.Job, int, error) {
	all, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, 0, err
	}
	page, total := FilterJobs(all, q)
	return page, total, nil
}

// FilterJobs narrows, sorts and paginates a job list. Pure; total is the
// match count before pagination.
func FilterJobs(jobs []models.Job, q models.JobQuery) ([]models.Job, int) {
	list := make([]models.Job, len(jobs))
	copy(list, jobs)

	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		list = keepJobs(list, func(j models.Job) bool {
			return strings.Contains(strings.ToLower(j.Title), needle) ||
				strings.Contains(strings.ToLower(j.Slug), needle)
		})
	}

	if q.Status != "" && q.Status != "all" {
		switch status := strings.ToLower(q.Status); status {
		case "active":
			list = keepJobs(list, func(j models.Job) bool {
				st := strings.ToLower(defaultStr(j.Status, "active"))
				return !j.Archived && st != "archived" && strings.ToLower(j.Status) != "filled"
			})
		case "archived":
			list = keepJobs(list, func(j models.Job) bool {
				return j.Archived || strings.ToLower(j.Status) == "archived"
			})
		case "filled":
			list = keepJobs(list, func(j models.Job) bool {
				return strings.ToLower(j.Status) == "filled" && !j.Archived
			})
		default:
			list = keepJobs(list, func(j models.Job) bool {
				return strings.ToLower(defaultStr(j.Status, "active")) == status
			})
		}
	}

	if q.Type != "" && !strings.EqualFold(q.Type, "all") {
		want := strings.ToLower(q.Type)
		list = keepJobs(list, func(j models.Job) bool {
			return strings.ToLower(defaultStr(j.Type, "Full-time")) == want
		})
	}

	if len(q.Tags) > 0 {
		list = keepJobs(list, func(j models.Job) bool {
			for _, t := range q.Tags {
				if !containsStr(j.Tags, t) {
					return false
				}
			}
			return true
		})
	}

	switch q.Sort {
	case "title":
		sort.SliceStable(list, func(i, k int) bool { return list[i].Title < list[k].Title })
	case "order":
		sort.SliceStable(list, func(i, k int) bool { return list[i].Order < list[k].Order })
	}

	total := len(list)
	page := q.Page
	if page < 1 {
		page = 1
	}
	size := q.PageSize
	if size < 1 {
		size = 25
	}
	start := (page - 1) * size
	if start >= total {
		return []models.Job{}, total
	}
	end := start + size
	if end > total {
		end = total
	}
	return list[start:end], total
}

func (s *JobService) GetJob(ctx context.Context, id string) (*models.Job, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *JobService) CreateJob(ctx context.Context, job *models.Job) error {
	if job.Status == "" {
		job.Status = "open"
	}
	if job.Slug == "" {
		job.Slug = Slugify(job.Title)
	}
	return s.Repo.Create(ctx, job)
}

func (s *JobService) UpdateJob(ctx context.Context, id string, update map[string]any) (*models.Job, error) {
	if err := s.Repo.Update(ctx, id, bson.M(update)); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(ctx, id)
}

func (s *JobService) DeleteJob(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func (s *JobService) ArchiveJob(ctx context.Context, id string, archived bool) (*models.Job, error) {
	if err := s.Repo.Update(ctx, id, bson.M{"archived": archived}); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(ctx, id)
}

// ReorderJobs rewrites board positions to match the given id order. Jobs
// missing from the order keep their relative position after the listed
// ones; unknown ids are ignored.
func (s *JobService) ReorderJobs(ctx context.Context, order []string) ([]models.Job, error) {
	all, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	reordered := ApplyOrder(all, order)
	for i := range reordered {
		reordered[i].Order = i + 1
		if err := s.Repo.SetOrder(ctx, reordered[i].ID, i+1); err != nil {
			return nil, err
		}
	}
	return reordered, nil
}

// ApplyOrder rearranges jobs to follow the id list, appending any job not
// named and dropping ids that match nothing. Pure.
func ApplyOrder(jobs []models.Job, order []string) []models.Job {
	byID := make(map[string]models.Job, len(jobs))
	for _, j := range jobs {
		byID[j.ID] = j
	}
	listed := make(map[string]bool, len(order))
	out := make([]models.Job, 0, len(jobs))
	for _, id := range order {
		if j, ok := byID[id]; ok {
			out = append(out, j)
			listed[id] = true
		}
	}
	for _, j := range jobs {
		if !listed[j.ID] {
			out = append(out, j)
		}
	}
	return out
}

func (s *JobService) BulkUnarchive(ctx context.Context, ids []string) ([]models.Job, error) {
	var out []models.Job
	for _, id := range ids {
		job, err := s.ArchiveJob(ctx, id, false)
		if err != nil {
			return nil, err
		}
		out = append(out, *job)
	}
	return out, nil
}

// Slugify lowercases a title and collapses non-alphanumeric runs to
// hyphens.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := false
	for _, ch := range strings.ToLower(title) {
		if (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9') {
			b.WriteRune(ch)
			lastHyphen = false
		} else if !lastHyphen && b.Len() > 0 {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}

func keepJobs(jobs []models.Job, keep func(models.Job) bool) []models.Job {
	out := jobs[:0]
	for _, j := range jobs {
		if keep(j) {
			out = append(out, j)
		}
	}
	return out
}

func defaultStr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func containsStr(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
