package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/greenloop/ewaste-rewards-backend/internal/models"
	"github.com/greenloop/ewaste-rewards-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Compile-time check to ensure RewardRepository implements the interface
var _ repositories.RewardRepository = (*RewardRepository)(nil)

// RewardRepository handles MongoDB operations for Reward
type RewardRepository struct {
	collection *mongo.Collection
}

// NewRewardRepository creates a new RewardRepository
func NewRewardRepository(db *mongo.Database) *RewardRepository {
	return &RewardRepository{
		collection: db.Collection("rewards"),
	}
}

// Create inserts a new reward
func (r *RewardRepository) Create(ctx context.Context, reward *models.Reward) error {
	reward.ID = primitive.NewObjectID()
	reward.CreatedAt = time.Now()
	reward.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, reward)
	return err
}

// FindByID finds a reward by ID
func (r *RewardRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Reward, error) {
	var reward models.Reward
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&reward)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &reward, nil
}

// FindByStatus retrieves rewards with the given status
func (r *RewardRepository) FindByStatus(ctx context.Context, status string, page, limit int) ([]*models.Reward, error) {
	return r.find(ctx, bson.M{"status": status}, page, limit)
}

// FindAll retrieves all rewards with pagination
func (r *RewardRepository) FindAll(ctx context.Context, page, limit int) ([]*models.Reward, error) {
	return r.find(ctx, bson.M{}, page, limit)
}

func (r *RewardRepository) find(ctx context.Context, filter bson.M, page, limit int) ([]*models.Reward, error) {
	opts := paginate(page, limit).SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	rewards := []*models.Reward{}
	if err = cursor.All(ctx, &rewards); err != nil {
		return nil, err
	}
	return rewards, nil
}

// Update updates an existing reward
func (r *RewardRepository) Update(ctx context.Context, reward *models.Reward) error {
	reward.UpdatedAt = time.Now()
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": reward.ID}, bson.M{"$set": reward})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// Delete deletes a reward by ID
func (r *RewardRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// DecrementStock takes one unit of stock. The filter guards stock > 0 and
// active status, so concurrent redemptions of the last unit resolve to
// exactly one winner; the loser gets ErrConditionFailed.
func (r *RewardRepository) DecrementStock(ctx context.Context, id primitive.ObjectID) error {
	filter := bson.M{
		"_id":    id,
		"stock":  bson.M{"$gt": 0},
		"status": models.RewardStatusActive,
	}
	update := bson.M{
		"$inc": bson.M{"stock": -1},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repositories.ErrConditionFailed
	}
	return nil
}

// IncrementStock returns one unit of stock
func (r *RewardRepository) IncrementStock(ctx context.Context, id primitive.ObjectID) error {
	update := bson.M{
		"$inc": bson.M{"stock": 1},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
