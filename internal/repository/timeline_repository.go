package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"talentflow-service/internal/models"
)

type TimelineRepository struct {
	Col *mongo.Collection
}

func NewTimelineRepository(db *mongo.Database) *TimelineRepository {
	return &TimelineRepository{Col: db.Collection("timelines")}
}

func (r *TimelineRepository) Append(ctx context.Context, event *models.TimelineEvent) error {
	_, err := r.Col.InsertOne(ctx, event)
	return err
}

// FindByCandidate lists a candidate's history, oldest first.
func (r *TimelineRepository) FindByCandidate(ctx context.Context, candidateID string) ([]models.TimelineEvent, error) {
	opts := options.Find().SetSort(bson.D{{Key: "at", Value: 1}})
	cur, err := r.Col.Find(ctx, bson.M{"candidate_id": candidateID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var events []models.TimelineEvent
	for cur.Next(ctx) {
		var e models.TimelineEvent
		if err := cur.Decode(&e); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}

func (r *TimelineRepository) DeleteByCandidate(ctx context.Context, candidateID string) error {
	_, err := r.Col.DeleteMany(ctx, bson.M{"candidate_id": candidateID})
	return err
}
