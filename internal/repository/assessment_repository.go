package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"talentflow-service/internal/models"
)

type AssessmentRepository struct {
	Col *mongo.Collection
}

func NewAssessmentRepository(db *mongo.Database) *AssessmentRepository {
	return &AssessmentRepository{Col: db.Collection("assessments")}
}

// FindByJobID returns the stored document as-is, legacy shapes included.
// Callers normalize before rendering.
func (r *AssessmentRepository) FindByJobID(ctx context.Context, jobID string) (*models.StoredAssessment, error) {
	var stored models.StoredAssessment
	err := r.Col.FindOne(ctx, bson.M{"_id": jobID}).Decode(&stored)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// Save upserts the document for a job. One assessment per job.
func (r *AssessmentRepository) Save(ctx context.Context, jobID string, a *models.Assessment) error {
	a.JobID = jobID
	opts := options.Replace().SetUpsert(true)
	_, err := r.Col.ReplaceOne(ctx, bson.M{"_id": jobID}, a, opts)
	return err
}

func (r *AssessmentRepository) Count(ctx context.Context) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{})
}
