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

// Compile-time check to ensure PointTransactionRepository implements the interface
var _ repositories.PointTransactionRepository = (*PointTransactionRepository)(nil)

// PointTransactionRepository handles MongoDB operations for the points ledger
type PointTransactionRepository struct {
	collection *mongo.Collection
}

// NewPointTransactionRepository creates a new PointTransactionRepository
func NewPointTransactionRepository(db *mongo.Database) *PointTransactionRepository {
	return &PointTransactionRepository{
		collection: db.Collection("point_transactions"),
	}
}

// Create inserts a new ledger entry
func (r *PointTransactionRepository) Create(ctx context.Context, transaction *models.PointTransaction) error {
	transaction.ID = primitive.NewObjectID()
	transaction.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, transaction)
	return err
}

// FindByUserID retrieves a user's ledger entries, newest first
func (r *PointTransactionRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID, page, limit int) ([]*models.PointTransaction, error) {
	opts := paginate(page, limit).SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	transactions := []*models.PointTransaction{}
	if err = cursor.All(ctx, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

// SumEarnedByUserBetween aggregates positive deltas per user inside [start, end)
func (r *PointTransactionRepository) SumEarnedByUserBetween(ctx context.Context, start, end time.Time) (map[primitive.ObjectID]int, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"points":    bson.M{"$gt": 0},
			"createdAt": bson.M{"$gte": start, "$lt": end},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":    "$userId",
			"points": bson.M{"$sum": "$points"},
		}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		UserID primitive.ObjectID `bson:"_id"`
		Points int                `bson:"points"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	totals := make(map[primitive.ObjectID]int, len(rows))
	for _, row := range rows {
		totals[row.UserID] = row.Points
	}
	return totals, nil
}
