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

// Compile-time check to ensure ChallengeRepository implements the interface
var _ repositories.ChallengeRepository = (*ChallengeRepository)(nil)

// ChallengeRepository handles MongoDB operations for Challenge
type ChallengeRepository struct {
	collection *mongo.Collection
}

// NewChallengeRepository creates a new ChallengeRepository
func NewChallengeRepository(db *mongo.Database) *ChallengeRepository {
	return &ChallengeRepository{
		collection: db.Collection("challenges"),
	}
}

// Create inserts a new challenge
func (r *ChallengeRepository) Create(ctx context.Context, challenge *models.Challenge) error {
	challenge.ID = primitive.NewObjectID()
	challenge.CreatedAt = time.Now()
	challenge.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, challenge)
	return err
}

// FindByID finds a challenge by ID
func (r *ChallengeRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Challenge, error) {
	var challenge models.Challenge
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&challenge)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &challenge, nil
}

// FindByStatus retrieves challenges with the given status
func (r *ChallengeRepository) FindByStatus(ctx context.Context, status string, page, limit int) ([]*models.Challenge, error) {
	return r.find(ctx, bson.M{"status": status}, page, limit)
}

// FindAll retrieves all challenges with pagination
func (r *ChallengeRepository) FindAll(ctx context.Context, page, limit int) ([]*models.Challenge, error) {
	return r.find(ctx, bson.M{}, page, limit)
}

func (r *ChallengeRepository) find(ctx context.Context, filter bson.M, page, limit int) ([]*models.Challenge, error) {
	opts := paginate(page, limit).SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	challenges := []*models.Challenge{}
	if err = cursor.All(ctx, &challenges); err != nil {
		return nil, err
	}
	return challenges, nil
}

// Update updates an existing challenge
func (r *ChallengeRepository) Update(ctx context.Context, challenge *models.Challenge) error {
	challenge.UpdatedAt = time.Now()
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": challenge.ID}, bson.M{"$set": challenge})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// Delete deletes a challenge by ID
func (r *ChallengeRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
