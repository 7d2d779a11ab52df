package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/greenloop/ewaste-rewards-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sentinel errors shared by all repository implementations. Services map
// these onto business errors, handlers map those onto HTTP statuses.
var (
	// ErrNotFound is returned when a document does not exist
	ErrNotFound = errors.New("document not found")
	// ErrConditionFailed is returned when a guarded update matched no
	// document, i.e. the guard predicate did not hold at write time
	ErrConditionFailed = errors.New("conditional update matched no document")
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context, page, limit int) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
	// IncrementPoints adds points (which may be negative) to the user's
	// balance. When minBalance >= 0 the update only applies if the current
	// balance is at least minBalance; otherwise ErrConditionFailed.
	IncrementPoints(ctx context.Context, userID primitive.ObjectID, points int, minBalance int) error
}

// ReportRepository defines the interface for e-waste report operations
type ReportRepository interface {
	Create(ctx context.Context, report *models.EWasteReport) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.EWasteReport, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID, page, limit int) ([]*models.EWasteReport, error)
	FindAll(ctx context.Context, status string, page, limit int) ([]*models.EWasteReport, error)
	Update(ctx context.Context, report *models.EWasteReport) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	// TransitionStatus flips the report from fromStatus to toStatus and adds
	// awardDelta to its pointsAwarded tally in one conditional update. It
	// returns ErrConditionFailed if the report is no longer in fromStatus,
	// which makes a duplicate transition request a no-op.
	TransitionStatus(ctx context.Context, id primitive.ObjectID, fromStatus, toStatus string, awardDelta int) error
	// CountProcessedByUserBetween counts processed reports per user whose
	// last update fell inside [start, end), for the leaderboard rebuild
	CountProcessedByUserBetween(ctx context.Context, start, end time.Time) (map[primitive.ObjectID]int, error)
}

// QuizRepository defines the interface for quiz data operations
type QuizRepository interface {
	Create(ctx context.Context, quiz *models.Quiz) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Quiz, error)
	FindByStatus(ctx context.Context, status string, page, limit int) ([]*models.Quiz, error)
	FindAll(ctx context.Context, page, limit int) ([]*models.Quiz, error)
	Update(ctx context.Context, quiz *models.Quiz) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// QuizSubmissionRepository defines the interface for quiz submission records
type QuizSubmissionRepository interface {
	Create(ctx context.Context, submission *models.QuizSubmission) error
	FindByQuizAndUser(ctx context.Context, quizID, userID primitive.ObjectID) (*models.QuizSubmission, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.QuizSubmission, error)
}

// ChallengeRepository defines the interface for challenge data operations
type ChallengeRepository interface {
	Create(ctx context.Context, challenge *models.Challenge) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Challenge, error)
	FindByStatus(ctx context.Context, status string, page, limit int) ([]*models.Challenge, error)
	FindAll(ctx context.Context, page, limit int) ([]*models.Challenge, error)
	Update(ctx context.Context, challenge *models.Challenge) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ParticipationRepository defines the interface for challenge participations
type ParticipationRepository interface {
	Create(ctx context.Context, participation *models.ChallengeParticipation) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.ChallengeParticipation, error)
	FindByChallengeAndUser(ctx context.Context, challengeID, userID primitive.ObjectID) (*models.ChallengeParticipation, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.ChallengeParticipation, error)
	FindByStatus(ctx context.Context, status string, page, limit int) ([]*models.ChallengeParticipation, error)
	// TransitionStatus flips the participation from fromStatus to toStatus,
	// returning ErrConditionFailed if it is no longer in fromStatus
	TransitionStatus(ctx context.Context, id primitive.ObjectID, fromStatus, toStatus string) error
}

// RewardRepository defines the interface for reward data operations
type RewardRepository interface {
	Create(ctx context.Context, reward *models.Reward) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Reward, error)
	FindByStatus(ctx context.Context, status string, page, limit int) ([]*models.Reward, error)
	FindAll(ctx context.Context, page, limit int) ([]*models.Reward, error)
	Update(ctx context.Context, reward *models.Reward) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	// DecrementStock takes one unit of stock, guarded by stock > 0 and the
	// reward being active; ErrConditionFailed means no stock to take
	DecrementStock(ctx context.Context, id primitive.ObjectID) error
	// IncrementStock returns one unit, used to compensate a failed redemption
	IncrementStock(ctx context.Context, id primitive.ObjectID) error
}

// RedemptionRepository defines the interface for reward redemptions
type RedemptionRepository interface {
	Create(ctx context.Context, redemption *models.RewardRedemption) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.RewardRedemption, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.RewardRedemption, error)
	FindAll(ctx context.Context, status string, page, limit int) ([]*models.RewardRedemption, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error
}

// PointTransactionRepository defines the interface for the points ledger
type PointTransactionRepository interface {
	Create(ctx context.Context, transaction *models.PointTransaction) error
	FindByUserID(ctx context.Context, userID primitive.ObjectID, page, limit int) ([]*models.PointTransaction, error)
	// SumEarnedByUserBetween sums positive ledger deltas per user inside
	// [start, end), feeding the weekly leaderboard rebuild
	SumEarnedByUserBetween(ctx context.Context, start, end time.Time) (map[primitive.ObjectID]int, error)
}

// LeaderboardRepository defines the interface for the weekly projection
type LeaderboardRepository interface {
	FindByWeek(ctx context.Context, week string) ([]*models.LeaderboardEntry, error)
	ReplaceWeek(ctx context.Context, week string, entries []*models.LeaderboardEntry) error
}
