package models

// CandidateStages is the kanban pipeline, in board order.
var CandidateStages = []string{
	"Applied",
	"Phone Screen",
	"Onsite",
	"Offer",
	"Hired",
	"Rejected",
}

// ValidStage reports whether s is a known pipeline stage.
func ValidStage(s string) bool {
	for _, stage := range CandidateStages {
		if stage == s {
			return true
		}
	}
	return false
}

type Candidate struct {
	ID    string `bson:"_id,omitempty" json:"id"`
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Stage string `bson:"stage" json:"stage"`
	JobID string `bson:"job_id" json:"jobId"`
}

// CandidateQuery carries the list filters accepted by the candidates endpoint.
type CandidateQuery struct {
	Search   string
	Stage    string
	Page     int
	PageSize int
}
