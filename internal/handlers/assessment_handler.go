package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"talentflow-service/internal/engine"
	"talentflow-service/internal/models"
	"talentflow-service/internal/service"
)

type AssessmentHandler struct {
	Service *service.AssessmentService
	Auth    *service.AuthService
}

func NewAssessmentHandler(s *service.AssessmentService, auth *service.AuthService) *AssessmentHandler {
	return &AssessmentHandler{Service: s, Auth: auth}
}

// GetAssessment returns the normalized document for a job, or a null
// assessment when nothing is configured yet. Not an error; the runner
// renders an empty state.
func (h *AssessmentHandler) GetAssessment(c *gin.Context) {
	jobID := c.Param("jobId")
	doc, err := h.Service.FetchAssessment(context.Background(), jobID)
	if err == engine.ErrAssessmentNotFound {
		c.JSON(http.StatusOK, gin.H{"assessment": nil})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"assessment": doc})
}

// SaveAssessment persists the builder's document.
func (h *AssessmentHandler) SaveAssessment(c *gin.Context) {
	jobID := c.Param("jobId")
	var doc models.Assessment
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	saved, err := h.Service.SaveAssessment(context.Background(), jobID, &doc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"assessment": saved})
}

type submitRequest struct {
	Responses   models.ResponseMap `json:"responses"`
	CandidateID string             `json:"candidateId"`
}

// Submit runs the full runner pass server-side: load, replay answers,
// validate visible questions, persist one submission. A candidate id may
// come in the body or be resolved from the bearer token session.
func (h *AssessmentHandler) Submit(c *gin.Context) {
	jobID := c.Param("jobId")
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Responses == nil {
		req.Responses = models.ResponseMap{}
	}

	sub, errs, err := h.Service.RunSubmission(
		context.Background(),
		jobID,
		req.CandidateID,
		req.Responses,
		h.Auth.TokenResolver(bearerToken(c)),
	)
	if err == engine.ErrValidation {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"submission": sub})
}

// ListSubmissions is the HR view over everything captured for a job.
func (h *AssessmentHandler) ListSubmissions(c *gin.Context) {
	jobID := c.Param("jobId")
	subs, err := h.Service.ListSubmissions(context.Background(), jobID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if subs == nil {
		subs = []models.Submission{}
	}
	c.JSON(http.StatusOK, gin.H{"submissions": subs})
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
