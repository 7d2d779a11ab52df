package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/greenloop/ewaste-rewards-backend/internal/config"
	"github.com/greenloop/ewaste-rewards-backend/internal/handlers"
	"github.com/greenloop/ewaste-rewards-backend/internal/middleware"
	"github.com/sirupsen/logrus"
)

// HandlerDependencies bundles the handlers the router wires up
type HandlerDependencies struct {
	AuthHandler        *handlers.AuthHandler
	UserHandler        *handlers.UserHandler
	ReportHandler      *handlers.ReportHandler
	QuizHandler        *handlers.QuizHandler
	ChallengeHandler   *handlers.ChallengeHandler
	RewardHandler      *handlers.RewardHandler
	LeaderboardHandler *handlers.LeaderboardHandler
}

// SetupRouter builds the router with all middleware and routes
func SetupRouter(cfg *config.Config, log *logrus.Logger, deps HandlerDependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware(log))

	public := router.Group("/api/v1")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok"})
		})

		auth := public.Group("/auth")
		{
			auth.POST("/register", deps.AuthHandler.Register)
			auth.POST("/login", deps.AuthHandler.Login)
		}
	}

	authed := router.Group("/api/v1")
	authed.Use(middleware.JWTAuthMiddleware(cfg))
	{
		authed.GET("/users/me", deps.UserHandler.GetMe)
		authed.GET("/points/history", deps.UserHandler.GetMyPointHistory)

		authed.POST("/reports", deps.ReportHandler.CreateReport)
		authed.GET("/reports/my", deps.ReportHandler.GetMyReports)

		authed.GET("/quizzes", deps.QuizHandler.GetActiveQuizzes)
		authed.GET("/quizzes/submissions/my", deps.QuizHandler.GetMySubmissions)
		authed.GET("/quizzes/:id", deps.QuizHandler.GetQuiz)
		authed.POST("/quizzes/:id/submit", deps.QuizHandler.Submit)

		authed.GET("/challenges", deps.ChallengeHandler.GetActiveChallenges)
		authed.GET("/challenges/participations/my", deps.ChallengeHandler.GetMyParticipations)
		authed.POST("/challenges/:id/participate", deps.ChallengeHandler.Participate)

		authed.GET("/rewards", deps.RewardHandler.GetActiveRewards)
		authed.POST("/rewards/:id/redeem", deps.RewardHandler.Redeem)
		authed.GET("/redemptions/my", deps.RewardHandler.GetMyRedemptions)

		authed.GET("/leaderboard", deps.LeaderboardHandler.GetCurrentWeek)
		authed.GET("/leaderboard/:week", deps.LeaderboardHandler.GetWeek)
	}

	admin := router.Group("/api/v1/admin")
	admin.Use(middleware.JWTAuthMiddleware(cfg), middleware.AdminOnly())
	{
		admin.GET("/users", deps.UserHandler.GetAllUsers)
		admin.GET("/users/count", deps.UserHandler.GetUserCount)
		admin.POST("/users", deps.UserHandler.CreateUser)
		admin.GET("/users/:id", deps.UserHandler.GetUserByID)
		admin.PUT("/users/:id", deps.UserHandler.UpdateUser)
		admin.DELETE("/users/:id", deps.UserHandler.DeleteUser)

		admin.GET("/reports", deps.ReportHandler.GetAllReports)
		admin.GET("/reports/:id", deps.ReportHandler.GetReportByID)
		admin.PATCH("/reports/:id/status", deps.ReportHandler.UpdateStatus)
		admin.DELETE("/reports/:id", deps.ReportHandler.DeleteReport)

		admin.GET("/quizzes", deps.QuizHandler.GetAllQuizzes)
		admin.POST("/quizzes", deps.QuizHandler.CreateQuiz)
		admin.PUT("/quizzes/:id", deps.QuizHandler.UpdateQuiz)
		admin.DELETE("/quizzes/:id", deps.QuizHandler.DeleteQuiz)

		admin.GET("/challenges", deps.ChallengeHandler.GetAllChallenges)
		admin.POST("/challenges", deps.ChallengeHandler.CreateChallenge)
		admin.PUT("/challenges/:id", deps.ChallengeHandler.UpdateChallenge)
		admin.DELETE("/challenges/:id", deps.ChallengeHandler.DeleteChallenge)

		admin.GET("/participations", deps.ChallengeHandler.GetParticipations)
		admin.PATCH("/participations/:id/status", deps.ChallengeHandler.ReviewParticipation)

		admin.GET("/rewards", deps.RewardHandler.GetAllRewards)
		admin.POST("/rewards", deps.RewardHandler.CreateReward)
		admin.PUT("/rewards/:id", deps.RewardHandler.UpdateReward)
		admin.DELETE("/rewards/:id", deps.RewardHandler.DeleteReward)

		admin.GET("/redemptions", deps.RewardHandler.GetAllRedemptions)
		admin.PATCH("/redemptions/:id/status", deps.RewardHandler.UpdateRedemptionStatus)

		admin.POST("/leaderboard/rebuild", deps.LeaderboardHandler.Rebuild)
	}

	return router
}
