package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CandidateAuth is one invited candidate's login record, keyed by
// lowercased email. Passwords are short-lived invite codes, not a real
// security boundary.
type CandidateAuth struct {
	Email       string    `bson:"_id" json:"email"`
	CandidateID string    `bson:"candidate_id" json:"candidateId"`
	Password    string    `bson:"password" json:"-"`
	InvitedAt   time.Time `bson:"invited_at" json:"invitedAt"`
}

// CandidateClaims is the JWT payload for a candidate session.
type CandidateClaims struct {
	CandidateID string `json:"candidate_id"`
	Email       string `json:"email"`
	jwt.RegisteredClaims
}

// CandidateSession is the cached session record behind a token.
type CandidateSession struct {
	ID          string    `json:"id"`
	CandidateID string    `json:"candidateId"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"createdAt"`
}

type LoginResponse struct {
	Token       string `json:"token"`
	CandidateID string `json:"candidateId"`
	Email       string `json:"email"`
}
