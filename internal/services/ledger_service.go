package services

import (
	"context"
	"errors"

	"github.com/greenloop/ewaste-rewards-backend/internal/models"
	"github.com/greenloop/ewaste-rewards-backend/internal/repositories"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LedgerService is the single entry point for mutating user point balances.
// Every credit and debit goes through a guarded atomic increment on the user
// document and writes one entry to the point_transactions ledger, so the
// balance can never go negative and every change is auditable.
type LedgerService struct {
	userRepo repositories.UserRepository
	txRepo   repositories.PointTransactionRepository
	log      *logrus.Logger
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(userRepo repositories.UserRepository, txRepo repositories.PointTransactionRepository, log *logrus.Logger) *LedgerService {
	return &LedgerService{
		userRepo: userRepo,
		txRepo:   txRepo,
		log:      log,
	}
}

// Credit adds points to a user's balance and records the ledger entry
func (s *LedgerService) Credit(ctx context.Context, userID primitive.ObjectID, points int, reason string, referenceID primitive.ObjectID) error {
	if points <= 0 {
		return errors.New("credit must be positive")
	}
	if err := s.userRepo.IncrementPoints(ctx, userID, points, -1); err != nil {
		if errors.Is(err, repositories.ErrConditionFailed) {
			return ErrNotFound
		}
		return err
	}
	s.record(ctx, userID, points, reason, referenceID)
	return nil
}

// Debit removes points from a user's balance, guarded so the balance cannot
// drop below zero. Returns ErrInsufficientPoints when the guard fails.
func (s *LedgerService) Debit(ctx context.Context, userID primitive.ObjectID, points int, reason string, referenceID primitive.ObjectID) error {
	if points <= 0 {
		return errors.New("debit must be positive")
	}
	if err := s.userRepo.IncrementPoints(ctx, userID, -points, points); err != nil {
		if errors.Is(err, repositories.ErrConditionFailed) {
			return ErrInsufficientPoints
		}
		return err
	}
	s.record(ctx, userID, -points, reason, referenceID)
	return nil
}

// record writes the ledger entry. The balance update has already been
// applied at this point, so a failed write costs the audit trail one entry
// but never the balance itself; it is logged rather than propagated.
func (s *LedgerService) record(ctx context.Context, userID primitive.ObjectID, points int, reason string, referenceID primitive.ObjectID) {
	tx := &models.PointTransaction{
		UserID:      userID,
		Points:      points,
		Reason:      reason,
		ReferenceID: referenceID,
	}
	if err := s.txRepo.Create(ctx, tx); err != nil {
		s.log.WithFields(logrus.Fields{
			"userId": userID.Hex(),
			"points": points,
			"reason": reason,
		}).WithError(err).Error("failed to record point transaction")
	}
}

// History returns a user's ledger entries with pagination
func (s *LedgerService) History(ctx context.Context, userID primitive.ObjectID, page, limit int) ([]*models.PointTransaction, error) {
	return s.txRepo.FindByUserID(ctx, userID, page, limit)
}
