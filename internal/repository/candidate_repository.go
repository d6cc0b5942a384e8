package repository

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"talentflow-service/internal/models"
)

type CandidateRepository struct {
	Col *mongo.Collection
}

func NewCandidateRepository(db *mongo.Database) *CandidateRepository {
	return &CandidateRepository{Col: db.Collection("candidates")}
}

func (r *CandidateRepository) FindAll(ctx context.Context) ([]models.Candidate, error) {
	cur, err := r.Col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var candidates []models.Candidate
	for cur.Next(ctx) {
		var c models.Candidate
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}

func (r *CandidateRepository) FindByID(ctx context.Context, id string) (*models.Candidate, error) {
	var candidate models.Candidate
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&candidate)
	if err != nil {
		return nil, err
	}
	return &candidate, nil
}

// FindByEmail matches case-insensitively; emails are compared lowercased
// everywhere.
func (r *CandidateRepository) FindByEmail(ctx context.Context, email string) (*models.Candidate, error) {
	var candidate models.Candidate
	filter := bson.M{"email": bson.M{"$regex": "^" + escapeRegex(strings.TrimSpace(email)) + "$", "$options": "i"}}
	err := r.Col.FindOne(ctx, filter).Decode(&candidate)
	if err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (r *CandidateRepository) Create(ctx context.Context, candidate *models.Candidate) error {
	_, err := r.Col.InsertOne(ctx, candidate)
	return err
}

func (r *CandidateRepository) Update(ctx context.Context, id string, update bson.M) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	return err
}

func (r *CandidateRepository) Delete(ctx context.Context, id string) error {
	_, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *CandidateRepository) Count(ctx context.Context) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{})
}

// escapeRegex quotes regex metacharacters so an email is matched literally.
func escapeRegex(s string) string {
	special := `\.+*?()|[]{}^$`
	var b strings.Builder
	for _, ch := range s {
		if strings.ContainsRune(special, ch) {
			b.WriteByte('\\')
		}
		b.WriteRune(ch)
	}
	return b.String()
}
