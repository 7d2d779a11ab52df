package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/greenloop/ewaste-rewards-backend/internal/services"
	"github.com/sirupsen/logrus"
)

// LeaderboardHandler handles leaderboard HTTP requests
type LeaderboardHandler struct {
	leaderboardService *services.LeaderboardService
	log                *logrus.Logger
}

// NewLeaderboardHandler creates a new LeaderboardHandler
func NewLeaderboardHandler(leaderboardService *services.LeaderboardService, log *logrus.Logger) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: leaderboardService,
		log:                log,
	}
}

// GetCurrentWeek handles GET /leaderboard
func (h *LeaderboardHandler) GetCurrentWeek(c *gin.Context) {
	entries, err := h.leaderboardService.GetCurrentWeek(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// GetWeek handles GET /leaderboard/:week
func (h *LeaderboardHandler) GetWeek(c *gin.Context) {
	entries, err := h.leaderboardService.GetWeek(c.Request.Context(), c.Param("week"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// Rebuild handles POST /admin/leaderboard/rebuild
func (h *LeaderboardHandler) Rebuild(c *gin.Context) {
	entries, err := h.leaderboardService.Rebuild(c.Request.Context(), time.Now())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}
