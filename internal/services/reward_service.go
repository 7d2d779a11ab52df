package services

import (
	"context"
	"errors"
	"time"

	"github.com/greenloop/ewaste-rewards-backend/internal/models"
	"github.com/greenloop/ewaste-rewards-backend/internal/repositories"
	"github.com/greenloop/ewaste-rewards-backend/internal/utils"
	"github.com/greenloop/ewaste-rewards-backend/internal/validation"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CouponCodeLength is the length of generated redemption coupon codes
const CouponCodeLength = 10

// RewardService handles the reward catalogue and redemption
type RewardService struct {
	rewardRepo     repositories.RewardRepository
	redemptionRepo repositories.RedemptionRepository
	ledger         *LedgerService
	log            *logrus.Logger
}

// NewRewardService creates a new RewardService
func NewRewardService(rewardRepo repositories.RewardRepository, redemptionRepo repositories.RedemptionRepository, ledger *LedgerService, log *logrus.Logger) *RewardService {
	return &RewardService{
		rewardRepo:     rewardRepo,
		redemptionRepo: redemptionRepo,
		ledger:         ledger,
		log:            log,
	}
}

// CreateReward validates and stores a new reward
func (s *RewardService) CreateReward(ctx context.Context, reward *models.Reward) error {
	if res := validation.ValidateReward(reward); !res.IsValid {
		return NewValidationError(res)
	}
	return s.rewardRepo.Create(ctx, reward)
}

// GetRewardByID retrieves a reward by ID
func (s *RewardService) GetRewardByID(ctx context.Context, id primitive.ObjectID) (*models.Reward, error) {
	reward, err := s.rewardRepo.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrNotFound
	}
	return reward, err
}

// GetActiveRewards retrieves active rewards
func (s *RewardService) GetActiveRewards(ctx context.Context, page, limit int) ([]*models.Reward, error) {
	return s.rewardRepo.FindByStatus(ctx, models.RewardStatusActive, page, limit)
}

// GetAllRewards retrieves all rewards with pagination
func (s *RewardService) GetAllRewards(ctx context.Context, page, limit int) ([]*models.Reward, error) {
	return s.rewardRepo.FindAll(ctx, page, limit)
}

// UpdateReward validates and updates an existing reward
func (s *RewardService) UpdateReward(ctx context.Context, reward *models.Reward) error {
	if res := validation.ValidateReward(reward); !res.IsValid {
		return NewValidationError(res)
	}
	err := s.rewardRepo.Update(ctx, reward)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// DeleteReward removes a reward
func (s *RewardService) DeleteReward(ctx context.Context, id primitive.ObjectID) error {
	err := s.rewardRepo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// Redeem exchanges a user's points for one unit of a reward. The flow is
// two guarded atomic updates: the points debit (guarded by balance >= cost)
// and the stock decrement (guarded by stock > 0). Insufficient points are
// reported before stock problems. If the stock guard fails after the debit
// succeeded, the debit is compensated with a refund credit, so concurrent
// redemptions of the last unit leave exactly one winner and no lost points.
func (s *RewardService) Redeem(ctx context.Context, rewardID, userID primitive.ObjectID) (*models.RewardRedemption, error) {
	reward, err := s.rewardRepo.FindByID(ctx, rewardID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if reward.Status != models.RewardStatusActive {
		return nil, ErrRewardInactive
	}
	if reward.ExpiryDate != nil && reward.ExpiryDate.Before(time.Now()) {
		return nil, ErrRewardInactive
	}

	if err := s.ledger.Debit(ctx, userID, reward.PointsCost, models.PointReasonRewardRedeemed, rewardID); err != nil {
		return nil, err
	}

	if err := s.rewardRepo.DecrementStock(ctx, rewardID); err != nil {
		refundErr := s.ledger.Credit(ctx, userID, reward.PointsCost, models.PointReasonRedemptionRefund, rewardID)
		if refundErr != nil {
			s.log.WithFields(logrus.Fields{
				"rewardId": rewardID.Hex(),
				"userId":   userID.Hex(),
				"points":   reward.PointsCost,
			}).WithError(refundErr).Error("stock decrement failed and refund failed; balance out of sync with ledger")
		}
		if errors.Is(err, repositories.ErrConditionFailed) {
			return nil, ErrOutOfStock
		}
		return nil, err
	}

	code, err := utils.GenerateCouponCode(CouponCodeLength)
	if err != nil {
		return nil, err
	}
	redemption := &models.RewardRedemption{
		RewardID:    rewardID,
		UserID:      userID,
		PointsSpent: reward.PointsCost,
		CouponCode:  code,
		Status:      models.RedemptionStatusPending,
	}
	if err := s.redemptionRepo.Create(ctx, redemption); err != nil {
		return nil, err
	}
	return redemption, nil
}

// GetRedemptionsByUser retrieves a user's redemptions
func (s *RewardService) GetRedemptionsByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.RewardRedemption, error) {
	return s.redemptionRepo.FindByUserID(ctx, userID)
}

// GetAllRedemptions retrieves redemptions, optionally filtered by status
func (s *RewardService) GetAllRedemptions(ctx context.Context, status string, page, limit int) ([]*models.RewardRedemption, error) {
	if status != "" && !models.ValidRedemptionStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.redemptionRepo.FindAll(ctx, status, page, limit)
}

// UpdateRedemptionStatus sets a redemption's status (admin review)
func (s *RewardService) UpdateRedemptionStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	if !models.ValidRedemptionStatus(status) {
		return ErrInvalidStatus
	}
	err := s.redemptionRepo.UpdateStatus(ctx, id, status)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
