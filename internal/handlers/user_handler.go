package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/greenloop/ewaste-rewards-backend/internal/models"
	"github.com/greenloop/ewaste-rewards-backend/internal/services"
	"github.com/sirupsen/logrus"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userService *services.UserService
	ledger      *services.LedgerService
	log         *logrus.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *services.UserService, ledger *services.LedgerService, log *logrus.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		ledger:      ledger,
		log:         log,
	}
}

// GetMe handles GET /users/me
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetMyPointHistory handles GET /points/history
func (h *UserHandler) GetMyPointHistory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	page, limit := pagination(c)

	history, err := h.ledger.History(c.Request.Context(), userID, page, limit)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, history)
}

// GetUserByID handles GET /admin/users/:id
func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetAllUsers handles GET /admin/users
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	page, limit := pagination(c)

	users, err := h.userService.GetAllUsers(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// CreateUser handles POST /admin/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required,min=8"`
		Name     string `json:"name" binding:"required"`
		Role     string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := &models.User{
		Email:  req.Email,
		Name:   req.Name,
		Role:   req.Role,
		Status: models.UserStatusActive,
	}
	if err := h.userService.CreateUser(c.Request.Context(), user, req.Password); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// UpdateUser handles PUT /admin/users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user.ID = id

	if err := h.userService.UpdateUser(c.Request.Context(), &user); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /admin/users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// GetUserCount handles GET /admin/users/count
func (h *UserHandler) GetUserCount(c *gin.Context) {
	count, err := h.userService.GetUserCount(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}
