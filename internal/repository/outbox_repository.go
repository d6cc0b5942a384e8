package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"talentflow-service/internal/models"
)

type OutboxRepository struct {
	Col *mongo.Collection
}

func NewOutboxRepository(db *mongo.Database) *OutboxRepository {
	return &OutboxRepository{Col: db.Collection("outbox")}
}

func (r *OutboxRepository) Append(ctx context.Context, msg *models.OutboxMessage) error {
	_, err := r.Col.InsertOne(ctx, msg)
	return err
}

func (r *OutboxRepository) FindAll(ctx context.Context) ([]models.OutboxMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "at", Value: 1}})
	cur, err := r.Col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var messages []models.OutboxMessage
	for cur.Next(ctx) {
		var m models.OutboxMessage
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, nil
}
