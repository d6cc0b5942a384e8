package models

type Job struct {
	ID       string   `bson:"_id,omitempty" json:"id"`
	Title    string   `bson:"title" json:"title"`
	Company  string   `bson:"company" json:"company"`
	Location string   `bson:"location" json:"location"`
	Type     string   `bson:"type" json:"type"`
	Slug     string   `bson:"slug" json:"slug"`
	Status   string   `bson:"status" json:"status"`
	Tags     []string `bson:"tags" json:"tags"`
	Order    int      `bson:"order" json:"order"`
	Archived bool     `bson:"archived" json:"archived"`
}

// JobQuery carries the list filters accepted by the jobs endpoint.
type JobQuery struct {
	Search   string
	Status   string
	Type     string
	Tags     []string
	Sort     string
	Page     int
	PageSize int
}
