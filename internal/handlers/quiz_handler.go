package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/greenloop/ewaste-rewards-backend/internal/models"
	"github.com/greenloop/ewaste-rewards-backend/internal/services"
	"github.com/sirupsen/logrus"
)

// QuizHandler handles quiz HTTP requests
type QuizHandler struct {
	quizService *services.QuizService
	log         *logrus.Logger
}

// NewQuizHandler creates a new QuizHandler
func NewQuizHandler(quizService *services.QuizService, log *logrus.Logger) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
		log:         log,
	}
}

// GetActiveQuizzes handles GET /quizzes
func (h *QuizHandler) GetActiveQuizzes(c *gin.Context) {
	page, limit := pagination(c)

	quizzes, err := h.quizService.GetActiveQuizzes(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	// Correct answers stay server-side
	public := make([]map[string]interface{}, 0, len(quizzes))
	for _, quiz := range quizzes {
		public = append(public, quiz.Public())
	}
	c.JSON(http.StatusOK, public)
}

// GetQuiz handles GET /quizzes/:id
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	quiz, err := h.quizService.GetQuizByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, quiz.Public())
}

// Submit handles POST /quizzes/:id/submit
func (h *QuizHandler) Submit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Answers []int `json:"answers" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	submission, err := h.quizService.Submit(c.Request.Context(), id, userID, req.Answers)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, submission)
}

// GetMySubmissions handles GET /quizzes/submissions/my
func (h *QuizHandler) GetMySubmissions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	submissions, err := h.quizService.GetSubmissionsByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, submissions)
}

// GetAllQuizzes handles GET /admin/quizzes
func (h *QuizHandler) GetAllQuizzes(c *gin.Context) {
	page, limit := pagination(c)

	quizzes, err := h.quizService.GetAllQuizzes(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, quizzes)
}

// CreateQuiz handles POST /admin/quizzes
func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	var quiz models.Quiz
	if err := c.ShouldBindJSON(&quiz); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.quizService.CreateQuiz(c.Request.Context(), &quiz); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, quiz)
}

// UpdateQuiz handles PUT /admin/quizzes/:id
func (h *QuizHandler) UpdateQuiz(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var quiz models.Quiz
	if err := c.ShouldBindJSON(&quiz); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	quiz.ID = id

	if err := h.quizService.UpdateQuiz(c.Request.Context(), &quiz); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, quiz)
}

// DeleteQuiz handles DELETE /admin/quizzes/:id
func (h *QuizHandler) DeleteQuiz(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.quizService.DeleteQuiz(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Quiz deleted successfully"})
}
