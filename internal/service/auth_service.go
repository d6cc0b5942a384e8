package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"talentflow-service/internal/cache"
	"talentflow-service/internal/models"
	"talentflow-service/internal/repository"
)

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrInvalidMasterPassword = errors.New("invalid master password")
	ErrInvalidToken          = errors.New("invalid or expired token")
)

// AuthService handles candidate invites and logins. This is a convenience
// gate for the candidate portal, not a hardened security boundary.
type AuthService struct {
	Auth       *repository.AuthRepository
	Candidates *repository.CandidateRepository
	Outbox     *repository.OutboxRepository
	Sessions   cache.SessionCache
	jwtSecret  []byte
	hrPassword string
}

func NewAuthService(auth *repository.AuthRepository, candidates *repository.CandidateRepository, outbox *repository.OutboxRepository, sessions cache.SessionCache, jwtSecret, hrPassword string) *AuthService {
	return &AuthService{
		Auth:       auth,
		Candidates: candidates,
		Outbox:     outbox,
		Sessions:   sessions,
		jwtSecret:  []byte(jwtSecret),
		hrPassword: hrPassword,
	}
}

// Invite issues a temporary password for a candidate and drops the notice
// into the outbox. Re-inviting replaces the previous password.
func (s *AuthService) Invite(ctx context.Context, candidateID, email string) (string, error) {
	password := uuid.New().String()[:6]
	auth := &models.CandidateAuth{
		Email:       email,
		CandidateID: candidateID,
		Password:    password,
		InvitedAt:   time.Now(),
	}
	if err := s.Auth.Upsert(ctx, auth); err != nil {
		return "", err
	}
	_ = s.Outbox.Append(ctx, &models.OutboxMessage{
		ID:      uuid.New().String(),
		To:      auth.Email,
		Subject: "Your TalentFlow access",
		Body:    "Hello, your temporary password is: " + password,
		At:      time.Now(),
	})
	return password, nil
}

// Login checks the invite credentials, makes sure the candidate still
// exists, caches a session record and signs a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	emailKey := strings.ToLower(strings.TrimSpace(email))
	pass := strings.TrimSpace(password)
	if emailKey == "" || pass == "" {
		return nil, ErrInvalidCredentials
	}

	auth, err := s.Auth.FindByEmail(ctx, emailKey)
	if err == mongo.ErrNoDocuments {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if auth.Password != pass {
		return nil, ErrInvalidCredentials
	}
	if _, err := s.Candidates.FindByID(ctx, auth.CandidateID); err != nil {
		return nil, ErrInvalidCredentials
	}

	session := &models.CandidateSession{
		ID:          uuid.New().String(),
		CandidateID: auth.CandidateID,
		Email:       auth.Email,
		CreatedAt:   time.Now(),
	}
	if err := s.Sessions.Set(ctx, session); err != nil {
		return nil, err
	}

	claims := &models.CandidateClaims{
		CandidateID: auth.CandidateID,
		Email:       auth.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.ID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Token:       signed,
		CandidateID: auth.CandidateID,
		Email:       auth.Email,
	}, nil
}

// HRLogin checks the shared master password and signs an HR session
// token. One password for the whole HR console; there are no per-user
// HR accounts.
func (s *AuthService) HRLogin(password string) (string, error) {
	if s.hrPassword == "" || strings.TrimSpace(password) != s.hrPassword {
		return "", ErrInvalidMasterPassword
	}
	claims := jwt.RegisteredClaims{
		Subject:   "hr",
		ID:        uuid.New().String(),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateToken parses a session token and returns its claims.
func (s *AuthService) ValidateToken(tokenString string) (*models.CandidateClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.CandidateClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*models.CandidateClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// TokenResolver adapts a bearer token into the runner's session lookup.
// The token's session must still be live in the cache.
func (s *AuthService) TokenResolver(token string) *TokenResolver {
	return &TokenResolver{auth: s, token: token}
}

type TokenResolver struct {
	auth  *AuthService
	token string
}

// ResolveCurrentCandidateID implements engine.SessionResolver.
func (r *TokenResolver) ResolveCurrentCandidateID(ctx context.Context) (string, bool) {
	if r.token == "" {
		return "", false
	}
	claims, err := r.auth.ValidateToken(r.token)
	if err != nil {
		return "", false
	}
	session, err := r.auth.Sessions.Get(ctx, claims.ID)
	if err != nil || session == nil {
		return "", false
	}
	return session.CandidateID, true
}
