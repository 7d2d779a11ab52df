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

// Compile-time check to ensure ParticipationRepository implements the interface
var _ repositories.ParticipationRepository = (*ParticipationRepository)(nil)

// ParticipationRepository handles MongoDB operations for ChallengeParticipation
type ParticipationRepository struct {
	collection *mongo.Collection
}

// NewParticipationRepository creates a new ParticipationRepository
func NewParticipationRepository(db *mongo.Database) *ParticipationRepository {
	return &ParticipationRepository{
		collection: db.Collection("challenge_participations"),
	}
}

// Create inserts a new participation
func (r *ParticipationRepository) Create(ctx context.Context, participation *models.ChallengeParticipation) error {
	participation.ID = primitive.NewObjectID()
	participation.CreatedAt = time.Now()
	participation.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, participation)
	return err
}

// FindByID finds a participation by ID
func (r *ParticipationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.ChallengeParticipation, error) {
	var participation models.ChallengeParticipation
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&participation)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &participation, nil
}

// FindByChallengeAndUser finds a user's participation in a challenge, if any
func (r *ParticipationRepository) FindByChallengeAndUser(ctx context.Context, challengeID, userID primitive.ObjectID) (*models.ChallengeParticipation, error) {
	var participation models.ChallengeParticipation
	filter := bson.M{"challengeId": challengeID, "userId": userID}
	err := r.collection.FindOne(ctx, filter).Decode(&participation)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &participation, nil
}

// FindByUserID retrieves all of a user's participations, newest first
func (r *ParticipationRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.ChallengeParticipation, error) {
	opts := paginate(1, 100).SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	participations := []*models.ChallengeParticipation{}
	if err = cursor.All(ctx, &participations); err != nil {
		return nil, err
	}
	return participations, nil
}

// FindByStatus retrieves participations with the given status
func (r *ParticipationRepository) FindByStatus(ctx context.Context, status string, page, limit int) ([]*models.ChallengeParticipation, error) {
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

	participations := []*models.ChallengeParticipation{}
	if err = cursor.All(ctx, &participations); err != nil {
		return nil, err
	}
	return participations, nil
}

// TransitionStatus flips the participation status with a guard on the
// current one, so a repeated approval matches nothing the second time
func (r *ParticipationRepository) TransitionStatus(ctx context.Context, id primitive.ObjectID, fromStatus, toStatus string) error {
	filter := bson.M{"_id": id, "status": fromStatus}
	update := bson.M{"$set": bson.M{"status": toStatus, "updatedAt": time.Now()}}
	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repositories.ErrConditionFailed
	}
	return nil
}
