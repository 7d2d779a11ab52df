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

// Compile-time check to ensure QuizSubmissionRepository implements the interface
var _ repositories.QuizSubmissionRepository = (*QuizSubmissionRepository)(nil)

// QuizSubmissionRepository handles MongoDB operations for QuizSubmission
type QuizSubmissionRepository struct {
	collection *mongo.Collection
}

// NewQuizSubmissionRepository creates a new QuizSubmissionRepository.
// The quiz_submissions collection carries a unique index on
// (quizId, userId) so a duplicate submission fails at insert time even if
// two requests pass the service-level existence check together.
func NewQuizSubmissionRepository(db *mongo.Database) *QuizSubmissionRepository {
	return &QuizSubmissionRepository{
		collection: db.Collection("quiz_submissions"),
	}
}

// Create inserts a new submission
func (r *QuizSubmissionRepository) Create(ctx context.Context, submission *models.QuizSubmission) error {
	submission.ID = primitive.NewObjectID()
	submission.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, submission)
	if mongo.IsDuplicateKeyError(err) {
		return repositories.ErrConditionFailed
	}
	return err
}

// FindByQuizAndUser finds a user's submission for a quiz, if any
func (r *QuizSubmissionRepository) FindByQuizAndUser(ctx context.Context, quizID, userID primitive.ObjectID) (*models.QuizSubmission, error) {
	var submission models.QuizSubmission
	filter := bson.M{"quizId": quizID, "userId": userID}
	err := r.collection.FindOne(ctx, filter).Decode(&submission)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

// FindByUserID retrieves all of a user's submissions, newest first
func (r *QuizSubmissionRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.QuizSubmission, error) {
	opts := paginate(1, 100).SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	submissions := []*models.QuizSubmission{}
	if err = cursor.All(ctx, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}
