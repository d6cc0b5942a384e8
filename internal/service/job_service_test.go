package service

import (
	"testing"

	"talentflow-service/internal/models"
)

func boardJobs() []models.Job {
	return []models.Job{
		{ID: "job-1", Title: "Senior Frontend Engineer", Slug: "senior-frontend-engineer", Status: "open", Type: "Full-time", Tags: []string{"react", "remote"}, Order: 3},
		{ID: "job-2", Title: "Backend Engineer", Slug: "backend-engineer", Status: "open", Type: "Full-time", Tags: []string{"go"}, Order: 1},
		{ID: "job-3", Title: "Data Analyst", Slug: "data-analyst", Status: "filled", Type: "Contract", Tags: []string{"sql", "remote"}, Order: 2},
		{ID: "job-4", Title: "Old Designer Role", Slug: "old-designer-role", Status: "open", Archived: true, Order: 4},
	}
}

func jobIDs(jobs []models.Job) []string {
	ids := make([]string, len(jobs))
	for i, j := range jobs {
		ids[i] = j.ID
	}
	return ids
}

func sameIDs(got []models.Job, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i].ID != want[i] {
			return false
		}
	}
	return true
}

func TestFilterJobsSearch(t *testing.T) {
	page, total := FilterJobs(boardJobs(), models.JobQuery{Search: "engineer"})
	if total != 2 {
		t.Fatalf("total = %d, want 2", total)
	}
	if !sameIDs(page, []string{"job-1", "job-2"}) {
		t.Errorf("ids = %v", jobIDs(page))
	}

	// Slug matches count too.
	page, total = FilterJobs(boardJobs(), models.JobQuery{Search: "DATA-analyst"})
	if total != 1 || page[0].ID != "job-3" {
		t.Errorf("slug search: total=%d ids=%v", total, jobIDs(page))
	}
}

func TestFilterJobsStatus(t *testing.T) {
	testCases := []struct {
		status string
		want   []string
	}{
		{"all", []string{"job-1", "job-2", "job-3", "job-4"}},
		{"active", []string{"job-1", "job-2"}},
		{"archived", []string{"job-4"}},
		{"filled", []string{"job-3"}},
		{"open", []string{"job-1", "job-2", "job-4"}},
	}
	for _, tc := range testCases {
		t.Run(tc.status, func(t *testing.T) {
			page, total := FilterJobs(boardJobs(), models.JobQuery{Status: tc.status})
			if total != len(tc.want) || !sameIDs(page, tc.want) {
				t.Errorf("status %q: total=%d ids=%v, want %v", tc.status, total, jobIDs(page), tc.want)
			}
		})
	}
}

func TestFilterJobsType(t *testing.T) {
	page, total := FilterJobs(boardJobs(), models.JobQuery{Type: "contract"})
	if total != 1 || page[0].ID != "job-3" {
		t.Errorf("contract: total=%d ids=%v", total, jobIDs(page))
	}

	// Jobs without an explicit type count as Full-time.
	page, total = FilterJobs(boardJobs(), models.JobQuery{Type: "Full-time"})
	if total != 3 || !sameIDs(page, []string{"job-1", "job-2", "job-4"}) {
		t.Errorf("full-time: total=%d ids=%v", total, jobIDs(page))
	}
}

func TestFilterJobsTagsRequireAll(t *testing.T) {
	page, total := FilterJobs(boardJobs(), models.JobQuery{Tags: []string{"remote"}})
	if total != 2 || !sameIDs(page, []string{"job-1", "job-3"}) {
		t.Errorf("remote: total=%d ids=%v", total, jobIDs(page))
	}

	page, total = FilterJobs(boardJobs(), models.JobQuery{Tags: []string{"remote", "react"}})
	if total != 1 || page[0].ID != "job-1" {
		t.Errorf("remote+react: total=%d ids=%v", total, jobIDs(page))
	}
}

func TestFilterJobsSort(t *testing.T) {
	page, _ := FilterJobs(boardJobs(), models.JobQuery{Sort: "order"})
	if !sameIDs(page, []string{"job-2", "job-3", "job-1", "job-4"}) {
		t.Errorf("order sort: %v", jobIDs(page))
	}

	page, _ = FilterJobs(boardJobs(), models.JobQuery{Sort: "title"})
	if !sameIDs(page, []string{"job-2", "job-3", "job-4", "job-1"}) {
		t.Errorf("title sort: %v", jobIDs(page))
	}
}

func TestFilterJobsPagination(t *testing.T) {
	page, total := FilterJobs(boardJobs(), models.JobQuery{Page: 1, PageSize: 3})
	if total != 4 || len(page) != 3 {
		t.Errorf("page 1: total=%d len=%d", total, len(page))
	}
	page, _ = FilterJobs(boardJobs(), models.JobQuery{Page: 2, PageSize: 3})
	if len(page) != 1 || page[0].ID != "job-4" {
		t.Errorf("page 2: %v", jobIDs(page))
	}

	// Past the end returns an empty page, not an error.
	page, total = FilterJobs(boardJobs(), models.JobQuery{Page: 5, PageSize: 3})
	if total != 4 || len(page) != 0 {
		t.Errorf("page 5: total=%d len=%d", total, len(page))
	}
}

func TestFilterJobsDoesNotMutateInput(t *testing.T) {
	jobs := boardJobs()
	FilterJobs(jobs, models.JobQuery{Search: "engineer", Sort: "title"})
	if !sameIDs(jobs, []string{"job-1", "job-2", "job-3", "job-4"}) {
		t.Errorf("input reordered: %v", jobIDs(jobs))
	}
}

func TestApplyOrder(t *testing.T) {
	jobs := boardJobs()

	out := ApplyOrder(jobs, []string{"job-3", "job-1"})
	if !sameIDs(out, []string{"job-3", "job-1", "job-2", "job-4"}) {
		t.Errorf("partial order: %v", jobIDs(out))
	}

	// Unknown ids are dropped, unnamed jobs keep their relative position.
	out = ApplyOrder(jobs, []string{"job-9", "job-2"})
	if !sameIDs(out, []string{"job-2", "job-1", "job-3", "job-4"}) {
		t.Errorf("unknown id: %v", jobIDs(out))
	}

	out = ApplyOrder(jobs, nil)
	if !sameIDs(out, []string{"job-1", "job-2", "job-3", "job-4"}) {
		t.Errorf("empty order: %v", jobIDs(out))
	}
}

func TestSlugify(t *testing.T) {
	testCases := []struct {
		in, want string
	}{
		{"Senior Frontend Engineer", "senior-frontend-engineer"},
		{"C++ Developer (Remote)", "c-developer-remote"},
		{"  Spaced   Out  ", "spaced-out"},
		{"already-a-slug", "already-a-slug"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tc := range testCases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
