package repository

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"talentflow-service/internal/models"
)

type AuthRepository struct {
	Col *mongo.Collection
}

func NewAuthRepository(db *mongo.Database) *AuthRepository {
	return &AuthRepository{Col: db.Collection("candidate_auth")}
}

// Upsert stores the login record keyed by lowercased email. Re-inviting a
// candidate replaces the previous password.
func (r *AuthRepository) Upsert(ctx context.Context, auth *models.CandidateAuth) error {
	auth.Email = strings.ToLower(strings.TrimSpace(auth.Email))
	opts := options.Replace().SetUpsert(true)
	_, err := r.Col.ReplaceOne(ctx, bson.M{"_id": auth.Email}, auth, opts)
	return err
}

func (r *AuthRepository) FindByEmail(ctx context.Context, email string) (*models.CandidateAuth, error) {
	key := strings.ToLower(strings.TrimSpace(email))
	var auth models.CandidateAuth
	err := r.Col.FindOne(ctx, bson.M{"_id": key}).Decode(&auth)
	if err != nil {
		return nil, err
	}
	return &auth, nil
}
