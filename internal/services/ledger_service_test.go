package services

import (
	"context"
	"errors"
	"testing"

	"github.com/greenloop/ewaste-rewards-backend/internal/models"
	"github.com/greenloop/ewaste-rewards-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreditRecordsLedgerEntry(t *testing.T) {
	var increments []int
	var entries []*models.PointTransaction
	userRepo := &mockUserRepo{
		incrementPointsFunc: func(ctx context.Context, userID primitive.ObjectID, points int, minBalance int) error {
			increments = append(increments, points)
			if minBalance != -1 {
				t.Errorf("credit minBalance = %d, want -1 (unguarded)", minBalance)
			}
			return nil
		},
	}
	txRepo := &mockTxRepo{
		createFunc: func(ctx context.Context, tx *models.PointTransaction) error {
			entries = append(entries, tx)
			return nil
		},
	}
	ledger := NewLedgerService(userRepo, txRepo, testLogger())

	userID := primitive.NewObjectID()
	refID := primitive.NewObjectID()
	if err := ledger.Credit(context.Background(), userID, 50, models.PointReasonReportCollected, refID); err != nil {
		t.Fatalf("Credit: %v", err)
	}
	if len(increments) != 1 || increments[0] != 50 {
		t.Errorf("increments = %v, want [50]", increments)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d ledger entries, want 1", len(entries))
	}
	if entries[0].Points != 50 || entries[0].Reason != models.PointReasonReportCollected || entries[0].ReferenceID != refID {
		t.Errorf("ledger entry = %+v", entries[0])
	}
}

func TestDebitRecordsNegativeEntry(t *testing.T) {
	var entries []*models.PointTransaction
	userRepo := &mockUserRepo{
		incrementPointsFunc: func(ctx context.Context, userID primitive.ObjectID, points int, minBalance int) error {
			if points != -30 || minBalance != 30 {
				t.Errorf("increment(%d, minBalance=%d), want (-30, 30)", points, minBalance)
			}
			return nil
		},
	}
	txRepo := &mockTxRepo{
		createFunc: func(ctx context.Context, tx *models.PointTransaction) error {
			entries = append(entries, tx)
			return nil
		},
	}
	ledger := NewLedgerService(userRepo, txRepo, testLogger())

	if err := ledger.Debit(context.Background(), primitive.NewObjectID(), 30, models.PointReasonRewardRedeemed, primitive.NewObjectID()); err != nil {
		t.Fatalf("Debit: %v", err)
	}
	if len(entries) != 1 || entries[0].Points != -30 {
		t.Errorf("ledger entries = %+v, want one entry of -30", entries)
	}
}

func TestDebitGuardFailure(t *testing.T) {
	userRepo := &mockUserRepo{
		incrementPointsFunc: func(ctx context.Context, userID primitive.ObjectID, points int, minBalance int) error {
			return repositories.ErrConditionFailed
		},
	}
	recorded := false
	txRepo := &mockTxRepo{
		createFunc: func(ctx context.Context, tx *models.PointTransaction) error {
			recorded = true
			return nil
		},
	}
	ledger := NewLedgerService(userRepo, txRepo, testLogger())

	err := ledger.Debit(context.Background(), primitive.NewObjectID(), 30, models.PointReasonRewardRedeemed, primitive.NewObjectID())
	if !errors.Is(err, ErrInsufficientPoints) {
		t.Fatalf("err = %v, want ErrInsufficientPoints", err)
	}
	if recorded {
		t.Error("ledger entry written for a failed debit")
	}
}

func TestCreditRejectsNonPositiveAmounts(t *testing.T) {
	ledger := NewLedgerService(&mockUserRepo{}, &mockTxRepo{}, testLogger())

	for _, points := range []int{0, -5} {
		if err := ledger.Credit(context.Background(), primitive.NewObjectID(), points, models.PointReasonQuizCompleted, primitive.NewObjectID()); err == nil {
			t.Errorf("Credit(%d) succeeded, want error", points)
		}
		if err := ledger.Debit(context.Background(), primitive.NewObjectID(), points, models.PointReasonRewardRedeemed, primitive.NewObjectID()); err == nil {
			t.Errorf("Debit(%d) succeeded, want error", points)
		}
	}
}

func TestCreditLedgerWriteFailureDoesNotFailCredit(t *testing.T) {
	userRepo := &mockUserRepo{
		incrementPointsFunc: func(ctx context.Context, userID primitive.ObjectID, points int, minBalance int) error {
			return nil
		},
	}
	txRepo := &mockTxRepo{
		createFunc: func(ctx context.Context, tx *models.PointTransaction) error {
			return errors.New("write concern timeout")
		},
	}
	ledger := NewLedgerService(userRepo, txRepo, testLogger())

	if err := ledger.Credit(context.Background(), primitive.NewObjectID(), 10, models.PointReasonQuizCompleted, primitive.NewObjectID()); err != nil {
		t.Fatalf("Credit: %v, want success despite ledger write failure", err)
	}
}
