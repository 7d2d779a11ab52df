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

// Compile-time check to ensure RedemptionRepository implements the interface
var _ repositories.RedemptionRepository = (*RedemptionRepository)(nil)

// RedemptionRepository handles MongoDB operations for RewardRedemption
type RedemptionRepository struct {
	collection *mongo.Collection
}

// NewRedemptionRepository creates a new RedemptionRepository
func NewRedemptionRepository(db *mongo.Database) *RedemptionRepository {
	return &RedemptionRepository{
		collection: db.Collection("reward_redemptions"),
	}
}

// Create inserts a new redemption record
func (r *RedemptionRepository) Create(ctx context.Context, redemption *models.RewardRedemption) error {
	redemption.ID = primitive.NewObjectID()
	redemption.CreatedAt = time.Now()
	redemption.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, redemption)
	return err
}

// FindByID finds a redemption by ID
func (r *RedemptionRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.RewardRedemption, error) {
	var redemption models.RewardRedemption
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&redemption)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &redemption, nil
}

// FindByUserID retrieves a user's redemptions, newest first
func (r *RedemptionRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.RewardRedemption, error) {
	opts := paginate(1, 100).SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	redemptions := []*models.RewardRedemption{}
	if err = cursor.All(ctx, &redemptions); err != nil {
		return nil, err
	}
	return redemptions, nil
}

// FindAll retrieves redemptions, optionally filtered by status
func (r *RedemptionRepository) FindAll(ctx context.Context, status string, page, limit int) ([]*models.RewardRedemption, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	opts := paginate(page, limit).SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	redemptions := []*models.RewardRedemption{}
	if err = cursor.All(ctx, &redemptions); err != nil {
		return nil, err
	}
	return redemptions, nil
}

// UpdateStatus sets the redemption status
func (r *RedemptionRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
