package service

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	"talentflow-service/internal/models"
)

func pipelineCandidates() []models.Candidate {
	return []models.Candidate{
		{ID: "cand-1", Name: "Ada Lovelace", Email: "ada@example.com", Stage: "Applied"},
		{ID: "cand-2", Name: "Grace Hopper", Email: "grace@example.com", Stage: "Phone Screen"},
		{ID: "cand-3", Name: "Alan Turing", Email: "alan@example.com", Stage: "Onsite"},
		{ID: "cand-4", Name: "Radia Perlman", Email: "radia@example.com"},
	}
}

func candidateIDs(list []models.Candidate) []string {
	ids := make([]string, len(list))
	for i, c := range list {
		ids[i] = c.ID
	}
	return ids
}

func TestFilterCandidatesSearch(t *testing.T) {
	page, total := FilterCandidates(pipelineCandidates(), models.CandidateQuery{Search: "ada"})
	if total != 2 {
		t.Fatalf("total = %d, want 2", total)
	}
	if page[0].ID != "cand-1" || page[1].ID != "cand-4" {
		t.Errorf("ids = %v", candidateIDs(page))
	}

	// Email matches too, case-insensitive.
	page, total = FilterCandidates(pipelineCandidates(), models.CandidateQuery{Search: "GRACE@"})
	if total != 1 || page[0].ID != "cand-2" {
		t.Errorf("email search: total=%d ids=%v", total, candidateIDs(page))
	}
}

func TestFilterCandidatesStage(t *testing.T) {
	// A candidate with no stage counts as Applied.
	page, total := FilterCandidates(pipelineCandidates(), models.CandidateQuery{Stage: "Applied"})
	if total != 2 {
		t.Fatalf("total = %d, want 2", total)
	}
	if page[0].ID != "cand-1" || page[1].ID != "cand-4" {
		t.Errorf("ids = %v", candidateIDs(page))
	}

	_, total = FilterCandidates(pipelineCandidates(), models.CandidateQuery{Stage: "all"})
	if total != 4 {
		t.Errorf("stage=all total = %d, want 4", total)
	}

	_, total = FilterCandidates(pipelineCandidates(), models.CandidateQuery{Stage: "Offer"})
	if total != 0 {
		t.Errorf("stage=Offer total = %d, want 0", total)
	}
}

func TestFilterCandidatesCombined(t *testing.T) {
	page, total := FilterCandidates(pipelineCandidates(), models.CandidateQuery{Search: "a", Stage: "Onsite"})
	if total != 1 || page[0].ID != "cand-3" {
		t.Errorf("total=%d ids=%v", total, candidateIDs(page))
	}
}

func TestFilterCandidatesPagination(t *testing.T) {
	page, total := FilterCandidates(pipelineCandidates(), models.CandidateQuery{Page: 2, PageSize: 3})
	if total != 4 || len(page) != 1 || page[0].ID != "cand-4" {
		t.Errorf("total=%d ids=%v", total, candidateIDs(page))
	}

	page, total = FilterCandidates(pipelineCandidates(), models.CandidateQuery{Page: 9, PageSize: 3})
	if total != 4 || len(page) != 0 {
		t.Errorf("past end: total=%d len=%d", total, len(page))
	}
}

// fakeEmailLookup indexes candidates by their stored lowercase email, the
// way the repository's case-insensitive query behaves.
type fakeEmailLookup struct {
	byEmail map[string]*models.Candidate
	err     error
}

func (f *fakeEmailLookup) FindByEmail(ctx context.Context, email string) (*models.Candidate, error) {
	if f.err != nil {
		return nil, f.err
	}
	if c, ok := f.byEmail[email]; ok {
		return c, nil
	}
	return nil, mongo.ErrNoDocuments
}

func TestCheckEmailFree(t *testing.T) {
	lookup := &fakeEmailLookup{byEmail: map[string]*models.Candidate{
		"ada@example.com": {ID: "cand-1", Name: "Ada Lovelace", Email: "ada@example.com"},
	}}

	testCases := []struct {
		name   string
		email  string
		selfID string
		want   error
	}{
		{"duplicate on create", "ada@example.com", "", ErrDuplicateEmail},
		{"case-insensitive duplicate", "  Ada@Example.COM ", "", ErrDuplicateEmail},
		{"other candidate taking the email", "ada@example.com", "cand-2", ErrDuplicateEmail},
		{"update keeping own email", "ada@example.com", "cand-1", nil},
		{"free email", "grace@example.com", "", nil},
		{"blank email", "   ", "", nil},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := checkEmailFree(context.Background(), lookup, tc.email, tc.selfID); got != tc.want {
				t.Errorf("checkEmailFree(%q, self=%q) = %v, want %v", tc.email, tc.selfID, got, tc.want)
			}
		})
	}
}

func TestCheckEmailFreePropagatesLookupFailure(t *testing.T) {
	boom := errors.New("connection reset")
	err := checkEmailFree(context.Background(), &fakeEmailLookup{err: boom}, "ada@example.com", "")
	if err != boom {
		t.Errorf("err = %v, want the lookup failure", err)
	}
}
