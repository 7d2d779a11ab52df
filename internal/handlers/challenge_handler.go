package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/greenloop/ewaste-rewards-backend/internal/models"
	"github.com/greenloop/ewaste-rewards-backend/internal/services"
	"github.com/sirupsen/logrus"
)

// ChallengeHandler handles challenge HTTP requests
type ChallengeHandler struct {
	challengeService *services.ChallengeService
	log              *logrus.Logger
}

// NewChallengeHandler creates a new ChallengeHandler
func NewChallengeHandler(challengeService *services.ChallengeService, log *logrus.Logger) *ChallengeHandler {
	return &ChallengeHandler{
		challengeService: challengeService,
		log:              log,
	}
}

// GetActiveChallenges handles GET /challenges
func (h *ChallengeHandler) GetActiveChallenges(c *gin.Context) {
	page, limit := pagination(c)

	challenges, err := h.challengeService.GetActiveChallenges(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, challenges)
}

// Participate handles POST /challenges/:id/participate
func (h *ChallengeHandler) Participate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Evidence string `json:"evidence" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	participation, err := h.challengeService.Participate(c.Request.Context(), id, userID, req.Evidence)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, participation)
}

// GetMyParticipations handles GET /challenges/participations/my
func (h *ChallengeHandler) GetMyParticipations(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	participations, err := h.challengeService.GetParticipationsByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, participations)
}

// GetAllChallenges handles GET /admin/challenges
func (h *ChallengeHandler) GetAllChallenges(c *gin.Context) {
	page, limit := pagination(c)

	challenges, err := h.challengeService.GetAllChallenges(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, challenges)
}

// CreateChallenge handles POST /admin/challenges
func (h *ChallengeHandler) CreateChallenge(c *gin.Context) {
	var challenge models.Challenge
	if err := c.ShouldBindJSON(&challenge); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.challengeService.CreateChallenge(c.Request.Context(), &challenge); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, challenge)
}

// UpdateChallenge handles PUT /admin/challenges/:id
func (h *ChallengeHandler) UpdateChallenge(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var challenge models.Challenge
	if err := c.ShouldBindJSON(&challenge); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	challenge.ID = id

	if err := h.challengeService.UpdateChallenge(c.Request.Context(), &challenge); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, challenge)
}

// DeleteChallenge handles DELETE /admin/challenges/:id
func (h *ChallengeHandler) DeleteChallenge(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.challengeService.DeleteChallenge(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Challenge deleted successfully"})
}

// GetParticipations handles GET /admin/participations
func (h *ChallengeHandler) GetParticipations(c *gin.Context) {
	page, limit := pagination(c)
	status := c.Query("status")

	participations, err := h.challengeService.GetParticipations(c.Request.Context(), status, page, limit)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, participations)
}

// ReviewParticipation handles PATCH /admin/participations/:id/status
func (h *ChallengeHandler) ReviewParticipation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status != models.ParticipationStatusApproved && req.Status != models.ParticipationStatusRejected {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be approved or rejected"})
		return
	}

	participation, err := h.challengeService.ReviewParticipation(c.Request.Context(), id, req.Status == models.ParticipationStatusApproved)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, participation)
}
