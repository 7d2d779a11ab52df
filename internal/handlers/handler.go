package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/greenloop/ewaste-rewards-backend/internal/services"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// respondError translates service errors into HTTP responses. Validation
// failures carry their field list, business-rule violations get a specific
// message and store failures come back as a generic retry prompt.
func respondError(c *gin.Context, log *logrus.Logger, err error) {
	var vErr *services.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "validation failed",
			"fields": vErr.Result.Errors,
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrAccountSuspended):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrDuplicateEmail),
		errors.Is(err, services.ErrAlreadySubmitted),
		errors.Is(err, services.ErrAlreadyParticipating),
		errors.Is(err, services.ErrInsufficientPoints),
		errors.Is(err, services.ErrOutOfStock),
		errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrQuizNotActive),
		errors.Is(err, services.ErrChallengeNotActive),
		errors.Is(err, services.ErrRewardInactive):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.WithField("path", c.Request.URL.Path).WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong, please try again"})
	}
}

// currentUserID reads the authenticated user's ID set by the JWT middleware
func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid session"})
		return primitive.NilObjectID, false
	}
	return id, true
}

// pathID parses the :id path parameter as an ObjectID
func pathID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return primitive.NilObjectID, false
	}
	return id, true
}

// pagination parses page/limit query parameters with defaults
func pagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	return page, limit
}
