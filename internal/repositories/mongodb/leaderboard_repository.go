package mongodb

import (
	"context"
	"time"

	"github.com/greenloop/ewaste-rewards-backend/internal/models"
	"github.com/greenloop/ewaste-rewards-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Compile-time check to ensure LeaderboardRepository implements the interface
var _ repositories.LeaderboardRepository = (*LeaderboardRepository)(nil)

// LeaderboardRepository handles MongoDB operations for the weekly projection
type LeaderboardRepository struct {
	collection *mongo.Collection
}

// NewLeaderboardRepository creates a new LeaderboardRepository
func NewLeaderboardRepository(db *mongo.Database) *LeaderboardRepository {
	return &LeaderboardRepository{
		collection: db.Collection("leaderboard_entries"),
	}
}

// FindByWeek retrieves a week's entries ordered by rank
func (r *LeaderboardRepository) FindByWeek(ctx context.Context, week string) ([]*models.LeaderboardEntry, error) {
	opts := paginate(1, 100).SetSort(bson.D{{Key: "rank", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"week": week}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := []*models.LeaderboardEntry{}
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// ReplaceWeek swaps out a week's entries for a freshly computed set. The
// projection is read-only for request handlers, so a delete-then-insert is
// acceptable here: a reader during the swap sees a partial board, never a
// corrupted one.
func (r *LeaderboardRepository) ReplaceWeek(ctx context.Context, week string, entries []*models.LeaderboardEntry) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{"week": week}); err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(entries))
	for _, entry := range entries {
		entry.ID = primitive.NewObjectID()
		entry.Week = week
		entry.CreatedAt = time.Now()
		docs = append(docs, entry)
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}
