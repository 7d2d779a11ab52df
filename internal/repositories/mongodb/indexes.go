package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the guarded writes rely on. The unique
// index on quiz_submissions is what turns a service-level duplicate check
// into a hard guarantee under concurrent submits.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create users email index: %w", err)
	}

	_, err = db.Collection("quiz_submissions").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "quizId", Value: 1}, {Key: "userId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create quiz_submissions index: %w", err)
	}

	_, err = db.Collection("ewaste_reports").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create ewaste_reports index: %w", err)
	}

	_, err = db.Collection("point_transactions").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create point_transactions index: %w", err)
	}

	_, err = db.Collection("leaderboard_entries").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "week", Value: 1}, {Key: "rank", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create leaderboard_entries index: %w", err)
	}

	return nil
}
