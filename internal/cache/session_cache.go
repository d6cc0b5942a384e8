package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"talentflow-service/internal/models"
)

const sessionTTL = 24 * time.Hour

type SessionCache interface {
	Set(ctx context.Context, session *models.CandidateSession) error
	Get(ctx context.Context, id string) (*models.CandidateSession, error)
	Delete(ctx context.Context, id string) error
}

type sessionCache struct {
	client *redis.Client
}

func NewSessionCache(client *redis.Client) SessionCache {
	return &sessionCache{client: client}
}

func (c *sessionCache) Set(ctx context.Context, session *models.CandidateSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "candidate_session:"+session.ID, data, sessionTTL).Err()
}

func (c *sessionCache) Get(ctx context.Context, id string) (*models.CandidateSession, error) {
	data, err := c.client.Get(ctx, "candidate_session:"+id).Result()
	if err != nil {
		return nil, err
	}
	var session models.CandidateSession
	err = json.Unmarshal([]byte(data), &session)
	return &session, err
}

func (c *sessionCache) Delete(ctx context.Context, id string) error {
	return c.client.Del(ctx, "candidate_session:"+id).Err()
}
