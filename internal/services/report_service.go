package services

import (
	"context"
	"errors"

	"github.com/greenloop/ewaste-rewards-backend/internal/models"
	"github.com/greenloop/ewaste-rewards-backend/internal/repositories"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReportService handles e-waste reports and the points awarded as they move
// through collection and processing
type ReportService struct {
	reportRepo repositories.ReportRepository
	ledger     *LedgerService
	log        *logrus.Logger
}

// NewReportService creates a new ReportService
func NewReportService(reportRepo repositories.ReportRepository, ledger *LedgerService, log *logrus.Logger) *ReportService {
	return &ReportService{
		reportRepo: reportRepo,
		ledger:     ledger,
		log:        log,
	}
}

// CreateReport files a new report in pending status for the given user
func (s *ReportService) CreateReport(ctx context.Context, report *models.EWasteReport, userID primitive.ObjectID) error {
	report.UserID = userID
	report.Status = models.ReportStatusPending
	report.PointsAwarded = 0
	return s.reportRepo.Create(ctx, report)
}

// GetReportByID retrieves a report by ID
func (s *ReportService) GetReportByID(ctx context.Context, id primitive.ObjectID) (*models.EWasteReport, error) {
	report, err := s.reportRepo.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrNotFound
	}
	return report, err
}

// GetReportsByUser retrieves a user's reports
func (s *ReportService) GetReportsByUser(ctx context.Context, userID primitive.ObjectID, page, limit int) ([]*models.EWasteReport, error) {
	return s.reportRepo.FindByUserID(ctx, userID, page, limit)
}

// GetAllReports retrieves reports, optionally filtered by status
func (s *ReportService) GetAllReports(ctx context.Context, status string, page, limit int) ([]*models.EWasteReport, error) {
	if status != "" && !models.ValidReportStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.reportRepo.FindAll(ctx, status, page, limit)
}

// awardCap returns the total points a report in the given status should have
// accumulated. A fully processed report caps at FullReportPoints however it
// got there, which also makes correction round-trips
// (collected -> pending -> processed) land on the same total.
func awardCap(status string) int {
	switch status {
	case models.ReportStatusCollected:
		return models.CollectionPoints
	case models.ReportStatusProcessed:
		return models.FullReportPoints
	default:
		return 0
	}
}

// UpdateStatus moves a report to target and credits the owner the point
// delta for the transition. The status change, the pointsAwarded top-up and
// the guard against concurrent requests are one conditional write, so a
// duplicate request (double click, retry) can never double-award: the
// second request either no-ops on an equal status or fails the guard.
// Backward transitions are allowed for correction and deduct nothing.
func (s *ReportService) UpdateStatus(ctx context.Context, id primitive.ObjectID, target string) (*models.EWasteReport, error) {
	if !models.ValidReportStatus(target) {
		return nil, ErrInvalidStatus
	}

	report, err := s.reportRepo.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if report.Status == target {
		return report, nil
	}

	delta := awardCap(target) - report.PointsAwarded
	if delta < 0 {
		delta = 0
	}

	err = s.reportRepo.TransitionStatus(ctx, id, report.Status, target, delta)
	if errors.Is(err, repositories.ErrConditionFailed) {
		return nil, ErrConflict
	}
	if err != nil {
		return nil, err
	}

	if delta > 0 {
		reason := models.PointReasonReportCollected
		if target == models.ReportStatusProcessed {
			reason = models.PointReasonReportProcessed
		}
		if err := s.ledger.Credit(ctx, report.UserID, delta, reason, report.ID); err != nil {
			// The transition is already committed; the credit failing here
			// leaves an under-award that the logs make visible.
			s.log.WithFields(logrus.Fields{
				"reportId": report.ID.Hex(),
				"userId":   report.UserID.Hex(),
				"points":   delta,
			}).WithError(err).Error("status transition committed but points credit failed")
			return nil, err
		}
	}

	report.Status = target
	report.PointsAwarded += delta
	return report, nil
}

// DeleteReport removes a report
func (s *ReportService) DeleteReport(ctx context.Context, id primitive.ObjectID) error {
	err := s.reportRepo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
