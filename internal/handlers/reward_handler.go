package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/greenloop/ewaste-rewards-backend/internal/models"
	"github.com/greenloop/ewaste-rewards-backend/internal/services"
	"github.com/sirupsen/logrus"
)

// RewardHandler handles reward and redemption HTTP requests
type RewardHandler struct {
	rewardService *services.RewardService
	log           *logrus.Logger
}

// NewRewardHandler creates a new RewardHandler
func NewRewardHandler(rewardService *services.RewardService, log *logrus.Logger) *RewardHandler {
	return &RewardHandler{
		rewardService: rewardService,
		log:           log,
	}
}

// GetActiveRewards handles GET /rewards
func (h *RewardHandler) GetActiveRewards(c *gin.Context) {
	page, limit := pagination(c)

	rewards, err := h.rewardService.GetActiveRewards(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, rewards)
}

// Redeem handles POST /rewards/:id/redeem
func (h *RewardHandler) Redeem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	redemption, err := h.rewardService.Redeem(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, redemption)
}

// GetMyRedemptions handles GET /redemptions/my
func (h *RewardHandler) GetMyRedemptions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	redemptions, err := h.rewardService.GetRedemptionsByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, redemptions)
}

// GetAllRewards handles GET /admin/rewards
func (h *RewardHandler) GetAllRewards(c *gin.Context) {
	page, limit := pagination(c)

	rewards, err := h.rewardService.GetAllRewards(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, rewards)
}

// CreateReward handles POST /admin/rewards
func (h *RewardHandler) CreateReward(c *gin.Context) {
	var reward models.Reward
	if err := c.ShouldBindJSON(&reward); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.rewardService.CreateReward(c.Request.Context(), &reward); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, reward)
}

// UpdateReward handles PUT /admin/rewards/:id
func (h *RewardHandler) UpdateReward(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var reward models.Reward
	if err := c.ShouldBindJSON(&reward); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	reward.ID = id

	if err := h.rewardService.UpdateReward(c.Request.Context(), &reward); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, reward)
}

// DeleteReward handles DELETE /admin/rewards/:id
func (h *RewardHandler) DeleteReward(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.rewardService.DeleteReward(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reward deleted successfully"})
}

// GetAllRedemptions handles GET /admin/redemptions
func (h *RewardHandler) GetAllRedemptions(c *gin.Context) {
	page, limit := pagination(c)
	status := c.Query("status")

	redemptions, err := h.rewardService.GetAllRedemptions(c.Request.Context(), status, page, limit)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, redemptions)
}

// UpdateRedemptionStatus handles PATCH /admin/redemptions/:id/status
func (h *RewardHandler) UpdateRedemptionStatus(c *gin.Context) {
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

	if err := h.rewardService.UpdateRedemptionStatus(c.Request.Context(), id, req.Status); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Redemption status updated"})
}
