package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"talentflow-service/internal/models"
	"talentflow-service/internal/service"
)

type CandidateHandler struct {
	Service *service.CandidateService
}

func NewCandidateHandler(s *service.CandidateService) *CandidateHandler {
	return &CandidateHandler{Service: s}
}

func (h *CandidateHandler) ListCandidates(c *gin.Context) {
	q := models.CandidateQuery{
		Search:   c.Query("search"),
		Stage:    c.DefaultQuery("stage", "all"),
		Page:     atoiDefault(c.Query("page"), 1),
		PageSize: atoiDefault(c.Query("pageSize"), 1000),
	}
	candidates, total, err := h.Service.ListCandidates(context.Background(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"candidates": candidates, "total": total})
}

func (h *CandidateHandler) GetCandidate(c *gin.Context) {
	id := c.Param("id")
	candidate, err := h.Service.GetCandidate(context.Background(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Candidate not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"candidate": candidate})
}

func (h *CandidateHandler) CreateCandidate(c *gin.Context) {
	var candidate models.Candidate
	if err := c.ShouldBindJSON(&candidate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	err := h.Service.CreateCandidate(context.Background(), &candidate)
	if err == service.ErrDuplicateEmail {
		c.JSON(http.StatusConflict, gin.H{"error": "A candidate with this email already exists"})
		return
	}
	if err == service.ErrInvalidStage {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown pipeline stage"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"candidate": candidate})
}

func (h *CandidateHandler) UpdateCandidate(c *gin.Context) {
	id := c.Param("id")
	var update map[string]interface{}
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	candidate, err := h.Service.UpdateCandidate(context.Background(), id, update)
	if err == service.ErrDuplicateEmail {
		c.JSON(http.StatusConflict, gin.H{"error": "A candidate with this email already exists"})
		return
	}
	if err == service.ErrInvalidStage {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown pipeline stage"})
		return
	}
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Candidate not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"candidate": candidate})
}

func (h *CandidateHandler) DeleteCandidate(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.DeleteCandidate(context.Background(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *CandidateHandler) GetTimeline(c *gin.Context) {
	id := c.Param("id")
	timeline, err := h.Service.GetTimeline(context.Background(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if timeline == nil {
		timeline = []models.TimelineEvent{}
	}
	c.JSON(http.StatusOK, gin.H{"timeline": timeline})
}

type assignRequest struct {
	JobID string `json:"jobId"`
}

func (h *CandidateHandler) AssignAssessment(c *gin.Context) {
	id := c.Param("id")
	var req assignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	assignments, err := h.Service.AssignAssessment(context.Background(), id, req.JobID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"assignments": assignments})
}

func (h *CandidateHandler) GetAssignments(c *gin.Context) {
	id := c.Param("id")
	assignments, err := h.Service.GetAssignments(context.Background(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"assignments": assignments})
}
