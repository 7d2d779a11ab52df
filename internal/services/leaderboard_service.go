package services

import (
	"context"
	"regexp"
	"sort"
	"time"

	"github.com/greenloop/ewaste-rewards-backend/internal/config"
	"github.com/greenloop/ewaste-rewards-backend/internal/models"
	"github.com/greenloop/ewaste-rewards-backend/internal/repositories"
	"github.com/sirupsen/logrus"
)

var weekPattern = regexp.MustCompile(`^\d{4}-W\d{2}$`)

// LeaderboardService serves the weekly projection and runs the batch that
// recomputes it from the points ledger and processed reports
type LeaderboardService struct {
	leaderboardRepo repositories.LeaderboardRepository
	txRepo          repositories.PointTransactionRepository
	reportRepo      repositories.ReportRepository
	userRepo        repositories.UserRepository
	cfg             *config.Config
	log             *logrus.Logger
}

// NewLeaderboardService creates a new LeaderboardService
func NewLeaderboardService(
	leaderboardRepo repositories.LeaderboardRepository,
	txRepo repositories.PointTransactionRepository,
	reportRepo repositories.ReportRepository,
	userRepo repositories.UserRepository,
	cfg *config.Config,
	log *logrus.Logger,
) *LeaderboardService {
	return &LeaderboardService{
		leaderboardRepo: leaderboardRepo,
		txRepo:          txRepo,
		reportRepo:      reportRepo,
		userRepo:        userRepo,
		cfg:             cfg,
		log:             log,
	}
}

// GetWeek returns the entries for an ISO week key such as 2026-W35
func (s *LeaderboardService) GetWeek(ctx context.Context, week string) ([]*models.LeaderboardEntry, error) {
	if !weekPattern.MatchString(week) {
		return nil, ErrInvalidStatus
	}
	return s.leaderboardRepo.FindByWeek(ctx, week)
}

// GetCurrentWeek returns the entries for the week containing now
func (s *LeaderboardService) GetCurrentWeek(ctx context.Context) ([]*models.LeaderboardEntry, error) {
	return s.leaderboardRepo.FindByWeek(ctx, models.WeekOf(time.Now()))
}

// weekBounds returns the [start, end) UTC range of the ISO week containing t
func weekBounds(t time.Time) (time.Time, time.Time) {
	t = t.UTC()
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday
	}
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, -(weekday - 1))
	return start, start.AddDate(0, 0, 7)
}

// Rebuild recomputes the projection for the week containing now: points
// earned from the ledger, device counts from processed reports, ranked by
// points with cash prizes for the top positions. Replaces the week's
// entries wholesale.
func (s *LeaderboardService) Rebuild(ctx context.Context, now time.Time) ([]*models.LeaderboardEntry, error) {
	start, end := weekBounds(now)
	week := models.WeekOf(now)

	earned, err := s.txRepo.SumEarnedByUserBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	devices, err := s.reportRepo.CountProcessedByUserBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	entries := make([]*models.LeaderboardEntry, 0, len(earned))
	for userID, points := range earned {
		user, err := s.userRepo.FindByID(ctx, userID)
		if err != nil {
			// A deleted user still has ledger entries; skip rather than fail
			// the whole rebuild.
			s.log.WithField("userId", userID.Hex()).WithError(err).Warn("skipping ledger entries for unknown user")
			continue
		}
		entries = append(entries, &models.LeaderboardEntry{
			UserID:      userID,
			Name:        user.Name,
			Points:      points,
			DeviceCount: devices[userID],
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		return entries[i].DeviceCount > entries[j].DeviceCount
	})
	for i, entry := range entries {
		entry.Rank = i + 1
		if i < len(s.cfg.Leaderboard.CashPrizes) {
			entry.CashPrize = s.cfg.Leaderboard.CashPrizes[i]
		}
	}

	if err := s.leaderboardRepo.ReplaceWeek(ctx, week, entries); err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"week": week, "entries": len(entries)}).Info("leaderboard rebuilt")
	return entries, nil
}
