package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"talentflow-service/internal/models"
	"talentflow-service/internal/repository"
	"talentflow-service/internal/service"
)

type AuthHandler struct {
	Service *service.AuthService
	Outbox  *repository.OutboxRepository
}

func NewAuthHandler(s *service.AuthService, outbox *repository.OutboxRepository) *AuthHandler {
	return &AuthHandler{Service: s, Outbox: outbox}
}

type inviteRequest struct {
	CandidateID string `json:"candidateId"`
	Email       string `json:"email"`
}

// Invite issues a temporary password and returns it in the response (the
// "email" only reaches the outbox; nothing is really sent).
func (h *AuthHandler) Invite(c *gin.Context) {
	var req inviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.CandidateID == "" || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "candidateId and email are required"})
		return
	}
	password, err := h.Service.Invite(context.Background(), req.CandidateID, req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"auth": gin.H{"email": req.Email}, "password": password})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}
	resp, err := h.Service.Login(context.Background(), req.Email, req.Password)
	if err == service.ErrInvalidCredentials {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": resp})
}

type hrLoginRequest struct {
	Password string `json:"password"`
}

// HRLogin gates the HR console behind the shared master password.
func (h *AuthHandler) HRLogin(c *gin.Context) {
	var req hrLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	token, err := h.Service.HRLogin(req.Password)
	if err == service.ErrInvalidMasterPassword {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid master password"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// GetOutbox exposes the simulated email outbox for development.
func (h *AuthHandler) GetOutbox(c *gin.Context) {
	list, err := h.Outbox.FindAll(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if list == nil {
		list = []models.OutboxMessage{}
	}
	c.JSON(http.StatusOK, gin.H{"outbox": list})
}
