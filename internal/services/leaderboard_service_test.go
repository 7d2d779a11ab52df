package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/greenloop/ewaste-rewards-backend/internal/config"
	"github.com/greenloop/ewaste-rewards-backend/internal/models"
	"github.com/greenloop/ewaste-rewards-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRebuildRanksByPointsThenDevices(t *testing.T) {
	alice := primitive.NewObjectID()
	bob := primitive.NewObjectID()
	carol := primitive.NewObjectID()
	ghost := primitive.NewObjectID() // deleted user with ledger entries

	users := map[primitive.ObjectID]*models.User{
		alice: {ID: alice, Name: "Alice"},
		bob:   {ID: bob, Name: "Bob"},
		carol: {ID: carol, Name: "Carol"},
	}

	txRepo := &mockTxRepo{
		sumFunc: func(ctx context.Context, start, end time.Time) (map[primitive.ObjectID]int, error) {
			return map[primitive.ObjectID]int{alice: 150, bob: 150, carol: 40, ghost: 500}, nil
		},
	}
	reportRepo := &mockReportRepo{
		countProcessedFunc: func(ctx context.Context, start, end time.Time) (map[primitive.ObjectID]int, error) {
			return map[primitive.ObjectID]int{alice: 1, bob: 3}, nil
		},
	}
	userRepo := &mockUserRepo{
		findByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
			if user, ok := users[id]; ok {
				return user, nil
			}
			return nil, repositories.ErrNotFound
		},
	}

	var replacedWeek string
	leaderboardRepo := &mockLeaderboardRepo{
		replaceWeekFunc: func(ctx context.Context, week string, entries []*models.LeaderboardEntry) error {
			replacedWeek = week
			return nil
		},
	}

	cfg := &config.Config{}
	cfg.Leaderboard.CashPrizes = []float64{100, 50, 25}
	service := NewLeaderboardService(leaderboardRepo, txRepo, reportRepo, userRepo, cfg, testLogger())

	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	entries, err := service.Rebuild(context.Background(), now)
	if err != nil {
		t.Fatalf("Rebuild: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3 (deleted user skipped)", len(entries))
	}
	// Bob wins the 150-point tie on device count.
	if entries[0].UserID != bob || entries[0].Rank != 1 {
		t.Errorf("first entry = %s rank %d, want Bob rank 1", entries[0].Name, entries[0].Rank)
	}
	if entries[1].UserID != alice || entries[1].Rank != 2 {
		t.Errorf("second entry = %s rank %d, want Alice rank 2", entries[1].Name, entries[1].Rank)
	}
	if entries[2].UserID != carol || entries[2].Rank != 3 {
		t.Errorf("third entry = %s rank %d, want Carol rank 3", entries[2].Name, entries[2].Rank)
	}
	if entries[0].CashPrize != 100 || entries[1].CashPrize != 50 || entries[2].CashPrize != 25 {
		t.Errorf("prizes = %v %v %v, want 100 50 25", entries[0].CashPrize, entries[1].CashPrize, entries[2].CashPrize)
	}
	if entries[2].DeviceCount != 0 {
		t.Errorf("Carol deviceCount = %d, want 0", entries[2].DeviceCount)
	}
	if replacedWeek != "2026-W35" {
		t.Errorf("replaced week = %q, want 2026-W35", replacedWeek)
	}
}

func TestRebuildPrizesOnlyCoverConfiguredRanks(t *testing.T) {
	alice := primitive.NewObjectID()
	bob := primitive.NewObjectID()

	txRepo := &mockTxRepo{
		sumFunc: func(ctx context.Context, start, end time.Time) (map[primitive.ObjectID]int, error) {
			return map[primitive.ObjectID]int{alice: 100, bob: 50}, nil
		},
	}
	reportRepo := &mockReportRepo{
		countProcessedFunc: func(ctx context.Context, start, end time.Time) (map[primitive.ObjectID]int, error) {
			return map[primitive.ObjectID]int{}, nil
		},
	}
	userRepo := &mockUserRepo{
		findByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
			return &models.User{ID: id, Name: "someone"}, nil
		},
	}
	leaderboardRepo := &mockLeaderboardRepo{
		replaceWeekFunc: func(ctx context.Context, week string, entries []*models.LeaderboardEntry) error {
			return nil
		},
	}

	cfg := &config.Config{}
	cfg.Leaderboard.CashPrizes = []float64{100}
	service := NewLeaderboardService(leaderboardRepo, txRepo, reportRepo, userRepo, cfg, testLogger())

	entries, err := service.Rebuild(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	if entries[0].CashPrize != 100 {
		t.Errorf("rank 1 prize = %v, want 100", entries[0].CashPrize)
	}
	if entries[1].CashPrize != 0 {
		t.Errorf("rank 2 prize = %v, want none", entries[1].CashPrize)
	}
}

func TestGetWeekRejectsMalformedKey(t *testing.T) {
	service := NewLeaderboardService(&mockLeaderboardRepo{}, &mockTxRepo{}, &mockReportRepo{}, &mockUserRepo{}, &config.Config{}, testLogger())

	for _, week := range []string{"2026-35", "W35", "2026-W5", "garbage", ""} {
		if _, err := service.GetWeek(context.Background(), week); !errors.Is(err, ErrInvalidStatus) {
			t.Errorf("GetWeek(%q) err = %v, want ErrInvalidStatus", week, err)
		}
	}
}

func TestWeekBounds(t *testing.T) {
	// A Wednesday maps to the Monday..Monday window around it.
	wednesday := time.Date(2026, 8, 26, 15, 30, 0, 0, time.UTC)
	start, end := weekBounds(wednesday)
	if want := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC); !start.Equal(want) {
		t.Errorf("start = %v, want %v", start, want)
	}
	if want := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC); !end.Equal(want) {
		t.Errorf("end = %v, want %v", end, want)
	}

	// Sunday belongs to the week that started the previous Monday.
	sunday := time.Date(2026, 8, 30, 23, 59, 0, 0, time.UTC)
	start, _ = weekBounds(sunday)
	if want := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC); !start.Equal(want) {
		t.Errorf("sunday start = %v, want %v", start, want)
	}
}
