package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/greenloop/ewaste-rewards-backend/api/routes"
	"github.com/greenloop/ewaste-rewards-backend/internal/config"
	"github.com/greenloop/ewaste-rewards-backend/internal/handlers"
	mongorepo "github.com/greenloop/ewaste-rewards-backend/internal/repositories/mongodb"
	"github.com/greenloop/ewaste-rewards-backend/internal/services"
	"github.com/greenloop/ewaste-rewards-backend/pkg/mongodb"
)

func main() {
	// .env is optional; real deployments set environment variables directly
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}
	if cfg.JWT.Secret == "" {
		log.Fatal("JWT secret is not configured")
	}

	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to MongoDB")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.WithError(err).Error("error disconnecting from MongoDB")
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)
	if err := mongorepo.EnsureIndexes(context.Background(), db); err != nil {
		log.WithError(err).Fatal("failed to create indexes")
	}

	userRepo := mongorepo.NewUserRepository(db)
	reportRepo := mongorepo.NewReportRepository(db)
	quizRepo := mongorepo.NewQuizRepository(db)
	submissionRepo := mongorepo.NewQuizSubmissionRepository(db)
	challengeRepo := mongorepo.NewChallengeRepository(db)
	participationRepo := mongorepo.NewParticipationRepository(db)
	rewardRepo := mongorepo.NewRewardRepository(db)
	redemptionRepo := mongorepo.NewRedemptionRepository(db)
	txRepo := mongorepo.NewPointTransactionRepository(db)
	leaderboardRepo := mongorepo.NewLeaderboardRepository(db)

	ledger := services.NewLedgerService(userRepo, txRepo, log)
	authService := services.NewAuthService(userRepo, cfg)
	userService := services.NewUserService(userRepo)
	reportService := services.NewReportService(reportRepo, ledger, log)
	quizService := services.NewQuizService(quizRepo, submissionRepo, ledger)
	challengeService := services.NewChallengeService(challengeRepo, participationRepo, ledger, log)
	rewardService := services.NewRewardService(rewardRepo, redemptionRepo, ledger, log)
	leaderboardService := services.NewLeaderboardService(leaderboardRepo, txRepo, reportRepo, userRepo, cfg, log)

	deps := routes.HandlerDependencies{
		AuthHandler:        handlers.NewAuthHandler(authService, log),
		UserHandler:        handlers.NewUserHandler(userService, ledger, log),
		ReportHandler:      handlers.NewReportHandler(reportService, log),
		QuizHandler:        handlers.NewQuizHandler(quizService, log),
		ChallengeHandler:   handlers.NewChallengeHandler(challengeService, log),
		RewardHandler:      handlers.NewRewardHandler(rewardService, log),
		LeaderboardHandler: handlers.NewLeaderboardHandler(leaderboardService, log),
	}

	router := routes.SetupRouter(cfg, log, deps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.WithField("port", cfg.Server.Port).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("listen failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Fatal("server forced to shutdown")
	}

	log.Info("server exiting")
}
