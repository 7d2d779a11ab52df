package services

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/greenloop/ewaste-rewards-backend/internal/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errNotImplemented = errors.New("not implemented")

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// Mock repositories in the func-field style: tests set only the behavior
// they exercise.

type mockUserRepo struct {
	createFunc          func(ctx context.Context, user *models.User) error
	findByIDFunc        func(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	findByEmailFunc     func(ctx context.Context, email string) (*models.User, error)
	updateFunc          func(ctx context.Context, user *models.User) error
	incrementPointsFunc func(ctx context.Context, userID primitive.ObjectID, points int, minBalance int) error
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return errNotImplemented
}

func (m *mockUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, errNotImplemented
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.findByEmailFunc != nil {
		return m.findByEmailFunc(ctx, email)
	}
	return nil, errNotImplemented
}

func (m *mockUserRepo) FindAll(ctx context.Context, page, limit int) ([]*models.User, error) {
	return nil, errNotImplemented
}

func (m *mockUserRepo) Update(ctx context.Context, user *models.User) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, user)
	}
	return errNotImplemented
}

func (m *mockUserRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return errNotImplemented
}

func (m *mockUserRepo) Count(ctx context.Context) (int64, error) {
	return 0, errNotImplemented
}

func (m *mockUserRepo) IncrementPoints(ctx context.Context, userID primitive.ObjectID, points int, minBalance int) error {
	if m.incrementPointsFunc != nil {
		return m.incrementPointsFunc(ctx, userID, points, minBalance)
	}
	return errNotImplemented
}

type mockTxRepo struct {
	createFunc func(ctx context.Context, tx *models.PointTransaction) error
	sumFunc    func(ctx context.Context, start, end time.Time) (map[primitive.ObjectID]int, error)
}

func (m *mockTxRepo) Create(ctx context.Context, tx *models.PointTransaction) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, tx)
	}
	return nil
}

func (m *mockTxRepo) FindByUserID(ctx context.Context, userID primitive.ObjectID, page, limit int) ([]*models.PointTransaction, error) {
	return nil, errNotImplemented
}

func (m *mockTxRepo) SumEarnedByUserBetween(ctx context.Context, start, end time.Time) (map[primitive.ObjectID]int, error) {
	if m.sumFunc != nil {
		return m.sumFunc(ctx, start, end)
	}
	return nil, errNotImplemented
}

type mockReportRepo struct {
	createFunc           func(ctx context.Context, report *models.EWasteReport) error
	findByIDFunc         func(ctx context.Context, id primitive.ObjectID) (*models.EWasteReport, error)
	transitionStatusFunc func(ctx context.Context, id primitive.ObjectID, fromStatus, toStatus string, awardDelta int) error
	countProcessedFunc   func(ctx context.Context, start, end time.Time) (map[primitive.ObjectID]int, error)
}

func (m *mockReportRepo) Create(ctx context.Context, report *models.EWasteReport) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, report)
	}
	return errNotImplemented
}

func (m *mockReportRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.EWasteReport, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, errNotImplemented
}

func (m *mockReportRepo) FindByUserID(ctx context.Context, userID primitive.ObjectID, page, limit int) ([]*models.EWasteReport, error) {
	return nil, errNotImplemented
}

func (m *mockReportRepo) FindAll(ctx context.Context, status string, page, limit int) ([]*models.EWasteReport, error) {
	return nil, errNotImplemented
}

func (m *mockReportRepo) Update(ctx context.Context, report *models.EWasteReport) error {
	return errNotImplemented
}

func (m *mockReportRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return errNotImplemented
}

func (m *mockReportRepo) TransitionStatus(ctx context.Context, id primitive.ObjectID, fromStatus, toStatus string, awardDelta int) error {
	if m.transitionStatusFunc != nil {
		return m.transitionStatusFunc(ctx, id, fromStatus, toStatus, awardDelta)
	}
	return errNotImplemented
}

func (m *mockReportRepo) CountProcessedByUserBetween(ctx context.Context, start, end time.Time) (map[primitive.ObjectID]int, error) {
	if m.countProcessedFunc != nil {
		return m.countProcessedFunc(ctx, start, end)
	}
	return nil, errNotImplemented
}

type mockQuizRepo struct {
	findByIDFunc func(ctx context.Context, id primitive.ObjectID) (*models.Quiz, error)
	createFunc   func(ctx context.Context, quiz *models.Quiz) error
}

func (m *mockQuizRepo) Create(ctx context.Context, quiz *models.Quiz) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, quiz)
	}
	return errNotImplemented
}

func (m *mockQuizRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Quiz, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, errNotImplemented
}

func (m *mockQuizRepo) FindByStatus(ctx context.Context, status string, page, limit int) ([]*models.Quiz, error) {
	return nil, errNotImplemented
}

func (m *mockQuizRepo) FindAll(ctx context.Context, page, limit int) ([]*models.Quiz, error) {
	return nil, errNotImplemented
}

func (m *mockQuizRepo) Update(ctx context.Context, quiz *models.Quiz) error {
	return errNotImplemented
}

func (m *mockQuizRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return errNotImplemented
}

type mockSubmissionRepo struct {
	createFunc            func(ctx context.Context, submission *models.QuizSubmission) error
	findByQuizAndUserFunc func(ctx context.Context, quizID, userID primitive.ObjectID) (*models.QuizSubmission, error)
}

func (m *mockSubmissionRepo) Create(ctx context.Context, submission *models.QuizSubmission) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, submission)
	}
	return errNotImplemented
}

func (m *mockSubmissionRepo) FindByQuizAndUser(ctx context.Context, quizID, userID primitive.ObjectID) (*models.QuizSubmission, error) {
	if m.findByQuizAndUserFunc != nil {
		return m.findByQuizAndUserFunc(ctx, quizID, userID)
	}
	return nil, errNotImplemented
}

func (m *mockSubmissionRepo) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.QuizSubmission, error) {
	return nil, errNotImplemented
}

type mockChallengeRepo struct {
	findByIDFunc func(ctx context.Context, id primitive.ObjectID) (*models.Challenge, error)
}

func (m *mockChallengeRepo) Create(ctx context.Context, challenge *models.Challenge) error {
	return errNotImplemented
}

func (m *mockChallengeRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Challenge, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, errNotImplemented
}

func (m *mockChallengeRepo) FindByStatus(ctx context.Context, status string, page, limit int) ([]*models.Challenge, error) {
	return nil, errNotImplemented
}

func (m *mockChallengeRepo) FindAll(ctx context.Context, page, limit int) ([]*models.Challenge, error) {
	return nil, errNotImplemented
}

func (m *mockChallengeRepo) Update(ctx context.Context, challenge *models.Challenge) error {
	return errNotImplemented
}

func (m *mockChallengeRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return errNotImplemented
}

type mockParticipationRepo struct {
	createFunc             func(ctx context.Context, participation *models.ChallengeParticipation) error
	findByIDFunc           func(ctx context.Context, id primitive.ObjectID) (*models.ChallengeParticipation, error)
	findByChallengeAndUser func(ctx context.Context, challengeID, userID primitive.ObjectID) (*models.ChallengeParticipation, error)
	findByStatusFunc       func(ctx context.Context, status string, page, limit int) ([]*models.ChallengeParticipation, error)
	transitionStatusFunc   func(ctx context.Context, id primitive.ObjectID, fromStatus, toStatus string) error
}

func (m *mockParticipationRepo) Create(ctx context.Context, participation *models.ChallengeParticipation) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, participation)
	}
	return errNotImplemented
}

func (m *mockParticipationRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.ChallengeParticipation, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, errNotImplemented
}

func (m *mockParticipationRepo) FindByChallengeAndUser(ctx context.Context, challengeID, userID primitive.ObjectID) (*models.ChallengeParticipation, error) {
	if m.findByChallengeAndUser != nil {
		return m.findByChallengeAndUser(ctx, challengeID, userID)
	}
	return nil, errNotImplemented
}

func (m *mockParticipationRepo) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.ChallengeParticipation, error) {
	return nil, errNotImplemented
}

func (m *mockParticipationRepo) FindByStatus(ctx context.Context, status string, page, limit int) ([]*models.ChallengeParticipation, error) {
	if m.findByStatusFunc != nil {
		return m.findByStatusFunc(ctx, status, page, limit)
	}
	return nil, errNotImplemented
}

func (m *mockParticipationRepo) TransitionStatus(ctx context.Context, id primitive.ObjectID, fromStatus, toStatus string) error {
	if m.transitionStatusFunc != nil {
		return m.transitionStatusFunc(ctx, id, fromStatus, toStatus)
	}
	return errNotImplemented
}

type mockRewardRepo struct {
	findByIDFunc       func(ctx context.Context, id primitive.ObjectID) (*models.Reward, error)
	decrementStockFunc func(ctx context.Context, id primitive.ObjectID) error
	incrementStockFunc func(ctx context.Context, id primitive.ObjectID) error
}

func (m *mockRewardRepo) Create(ctx context.Context, reward *models.Reward) error {
	return errNotImplemented
}

func (m *mockRewardRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Reward, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, errNotImplemented
}

func (m *mockRewardRepo) FindByStatus(ctx context.Context, status string, page, limit int) ([]*models.Reward, error) {
	return nil, errNotImplemented
}

func (m *mockRewardRepo) FindAll(ctx context.Context, page, limit int) ([]*models.Reward, error) {
	return nil, errNotImplemented
}

func (m *mockRewardRepo) Update(ctx context.Context, reward *models.Reward) error {
	return errNotImplemented
}

func (m *mockRewardRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return errNotImplemented
}

func (m *mockRewardRepo) DecrementStock(ctx context.Context, id primitive.ObjectID) error {
	if m.decrementStockFunc != nil {
		return m.decrementStockFunc(ctx, id)
	}
	return errNotImplemented
}

func (m *mockRewardRepo) IncrementStock(ctx context.Context, id primitive.ObjectID) error {
	if m.incrementStockFunc != nil {
		return m.incrementStockFunc(ctx, id)
	}
	return errNotImplemented
}

type mockLeaderboardRepo struct {
	findByWeekFunc  func(ctx context.Context, week string) ([]*models.LeaderboardEntry, error)
	replaceWeekFunc func(ctx context.Context, week string, entries []*models.LeaderboardEntry) error
}

func (m *mockLeaderboardRepo) FindByWeek(ctx context.Context, week string) ([]*models.LeaderboardEntry, error) {
	if m.findByWeekFunc != nil {
		return m.findByWeekFunc(ctx, week)
	}
	return nil, errNotImplemented
}

func (m *mockLeaderboardRepo) ReplaceWeek(ctx context.Context, week string, entries []*models.LeaderboardEntry) error {
	if m.replaceWeekFunc != nil {
		return m.replaceWeekFunc(ctx, week, entries)
	}
	return errNotImplemented
}

type mockRedemptionRepo struct {
	createFunc func(ctx context.Context, redemption *models.RewardRedemption) error
}

func (m *mockRedemptionRepo) Create(ctx context.Context, redemption *models.RewardRedemption) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, redemption)
	}
	return errNotImplemented
}

func (m *mockRedemptionRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.RewardRedemption, error) {
	return nil, errNotImplemented
}

func (m *mockRedemptionRepo) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.RewardRedemption, error) {
	return nil, errNotImplemented
}

func (m *mockRedemptionRepo) FindAll(ctx context.Context, status string, page, limit int) ([]*models.RewardRedemption, error) {
	return nil, errNotImplemented
}

func (m *mockRedemptionRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	return errNotImplemented
}
