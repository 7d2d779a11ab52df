package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LeaderboardEntry is a weekly, read-only projection of a user's point total
// and device count. Entries are recomputed as a batch, never mutated by
// request handlers.
type LeaderboardEntry struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Week        string             `bson:"week" json:"week"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	Name        string             `bson:"name" json:"name"`
	Rank        int                `bson:"rank" json:"rank"`
	Points      int                `bson:"points" json:"points"`
	DeviceCount int                `bson:"deviceCount" json:"deviceCount"`
	CashPrize   float64            `bson:"cashPrize,omitempty" json:"cashPrize,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// WeekOf formats t as the ISO year-week key used by leaderboard entries
func WeekOf(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}
