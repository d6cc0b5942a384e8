package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type assignmentDoc struct {
	CandidateID string   `bson:"_id"`
	JobIDs      []string `bson:"job_ids"`
}

// AssignmentRepository tracks which assessment a candidate was asked to
// take. One active assignment per candidate; a new assignment overwrites
// the previous one.
type AssignmentRepository struct {
	Col *mongo.Collection
}

func NewAssignmentRepository(db *mongo.Database) *AssignmentRepository {
	return &AssignmentRepository{Col: db.Collection("assignments")}
}

func (r *AssignmentRepository) Assign(ctx context.Context, candidateID, jobID string) ([]string, error) {
	doc := assignmentDoc{CandidateID: candidateID, JobIDs: []string{jobID}}
	opts := options.Replace().SetUpsert(true)
	_, err := r.Col.ReplaceOne(ctx, bson.M{"_id": candidateID}, doc, opts)
	if err != nil {
		return nil, err
	}
	return doc.JobIDs, nil
}

func (r *AssignmentRepository) FindByCandidate(ctx context.Context, candidateID string) ([]string, error) {
	var doc assignmentDoc
	err := r.Col.FindOne(ctx, bson.M{"_id": candidateID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}
	return doc.JobIDs, nil
}
