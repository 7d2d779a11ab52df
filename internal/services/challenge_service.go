package services

import (
	"context"
	"errors"

	"github.com/greenloop/ewaste-rewards-backend/internal/models"
	"github.com/greenloop/ewaste-rewards-backend/internal/repositories"
	"github.com/greenloop/ewaste-rewards-backend/internal/validation"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChallengeService handles challenges and participation review
type ChallengeService struct {
	challengeRepo     repositories.ChallengeRepository
	participationRepo repositories.ParticipationRepository
	ledger            *LedgerService
	log               *logrus.Logger
}

// NewChallengeService creates a new ChallengeService
func NewChallengeService(challengeRepo repositories.ChallengeRepository, participationRepo repositories.ParticipationRepository, ledger *LedgerService, log *logrus.Logger) *ChallengeService {
	return &ChallengeService{
		challengeRepo:     challengeRepo,
		participationRepo: participationRepo,
		ledger:            ledger,
		log:               log,
	}
}

// CreateChallenge validates and stores a new challenge
func (s *ChallengeService) CreateChallenge(ctx context.Context, challenge *models.Challenge) error {
	if res := validation.ValidateChallenge(challenge); !res.IsValid {
		return NewValidationError(res)
	}
	return s.challengeRepo.Create(ctx, challenge)
}

// GetChallengeByID retrieves a challenge by ID
func (s *ChallengeService) GetChallengeByID(ctx context.Context, id primitive.ObjectID) (*models.Challenge, error) {
	challenge, err := s.challengeRepo.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrNotFound
	}
	return challenge, err
}

// GetActiveChallenges retrieves active challenges
func (s *ChallengeService) GetActiveChallenges(ctx context.Context, page, limit int) ([]*models.Challenge, error) {
	return s.challengeRepo.FindByStatus(ctx, models.ChallengeStatusActive, page, limit)
}

// GetAllChallenges retrieves all challenges with pagination
func (s *ChallengeService) GetAllChallenges(ctx context.Context, page, limit int) ([]*models.Challenge, error) {
	return s.challengeRepo.FindAll(ctx, page, limit)
}

// UpdateChallenge validates and updates an existing challenge
func (s *ChallengeService) UpdateChallenge(ctx context.Context, challenge *models.Challenge) error {
	if res := validation.ValidateChallenge(challenge); !res.IsValid {
		return NewValidationError(res)
	}
	err := s.challengeRepo.Update(ctx, challenge)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// DeleteChallenge removes a challenge
func (s *ChallengeService) DeleteChallenge(ctx context.Context, id primitive.ObjectID) error {
	err := s.challengeRepo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// Participate records a user's claim of having completed a challenge.
// The claim starts pending and is reviewed by an admin.
func (s *ChallengeService) Participate(ctx context.Context, challengeID, userID primitive.ObjectID, evidence string) (*models.ChallengeParticipation, error) {
	challenge, err := s.challengeRepo.FindByID(ctx, challengeID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if challenge.Status != models.ChallengeStatusActive {
		return nil, ErrChallengeNotActive
	}

	if _, err := s.participationRepo.FindByChallengeAndUser(ctx, challengeID, userID); err == nil {
		return nil, ErrAlreadyParticipating
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	participation := &models.ChallengeParticipation{
		ChallengeID: challengeID,
		UserID:      userID,
		Evidence:    evidence,
		Status:      models.ParticipationStatusPending,
	}
	if err := s.participationRepo.Create(ctx, participation); err != nil {
		return nil, err
	}
	return participation, nil
}

// GetParticipationsByUser retrieves a user's participations
func (s *ChallengeService) GetParticipationsByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.ChallengeParticipation, error) {
	return s.participationRepo.FindByUserID(ctx, userID)
}

// GetParticipations retrieves participations, optionally filtered by status
func (s *ChallengeService) GetParticipations(ctx context.Context, status string, page, limit int) ([]*models.ChallengeParticipation, error) {
	if status != "" && !models.ValidParticipationStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.participationRepo.FindByStatus(ctx, status, page, limit)
}

// ReviewParticipation resolves a pending claim. Approval credits the
// challenge's points; the pending -> approved flip is a guarded update, so
// approving the same claim twice credits only once.
func (s *ChallengeService) ReviewParticipation(ctx context.Context, id primitive.ObjectID, approve bool) (*models.ChallengeParticipation, error) {
	participation, err := s.participationRepo.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	target := models.ParticipationStatusRejected
	var challenge *models.Challenge
	if approve {
		target = models.ParticipationStatusApproved
		// Resolve the points before the status flip; a missing challenge
		// must fail the review while the claim is still pending.
		challenge, err = s.challengeRepo.FindByID(ctx, participation.ChallengeID)
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		if err != nil {
			return nil, err
		}
	}

	err = s.participationRepo.TransitionStatus(ctx, id, models.ParticipationStatusPending, target)
	if errors.Is(err, repositories.ErrConditionFailed) {
		return nil, ErrConflict
	}
	if err != nil {
		return nil, err
	}

	if approve && challenge.Points > 0 {
		if err := s.ledger.Credit(ctx, participation.UserID, challenge.Points, models.PointReasonChallengeApproved, participation.ID); err != nil {
			s.log.WithFields(logrus.Fields{
				"participationId": participation.ID.Hex(),
				"userId":          participation.UserID.Hex(),
				"points":          challenge.Points,
			}).WithError(err).Error("approval committed but points credit failed")
			return nil, err
		}
	}

	participation.Status = target
	return participation, nil
}
