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

// Compile-time check to ensure QuizRepository implements the interface
var _ repositories.QuizRepository = (*QuizRepository)(nil)

// QuizRepository handles MongoDB operations for Quiz
type QuizRepository struct {
	collection *mongo.Collection
}

// NewQuizRepository creates a new QuizRepository
func NewQuizRepository(db *mongo.Database) *QuizRepository {
	return &QuizRepository{
		collection: db.Collection("quizzes"),
	}
}

// Create inserts a new quiz
func (r *QuizRepository) Create(ctx context.Context, quiz *models.Quiz) error {
	quiz.ID = primitive.NewObjectID()
	quiz.CreatedAt = time.Now()
	quiz.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, quiz)
	return err
}

// FindByID finds a quiz by ID
func (r *QuizRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Quiz, error) {
	var quiz models.Quiz
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&quiz)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

// FindByStatus retrieves quizzes with the given status
func (r *QuizRepository) FindByStatus(ctx context.Context, status string, page, limit int) ([]*models.Quiz, error) {
	return r.find(ctx, bson.M{"status": status}, page, limit)
}

// FindAll retrieves all quizzes with pagination
func (r *QuizRepository) FindAll(ctx context.Context, page, limit int) ([]*models.Quiz, error) {
	return r.find(ctx, bson.M{}, page, limit)
}

func (r *QuizRepository) find(ctx context.Context, filter bson.M, page, limit int) ([]*models.Quiz, error) {
	opts := paginate(page, limit).SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	quizzes := []*models.Quiz{}
	if err = cursor.All(ctx, &quizzes); err != nil {
		return nil, err
	}
	return quizzes, nil
}

// Update updates an existing quiz
func (r *QuizRepository) Update(ctx context.Context, quiz *models.Quiz) error {
	quiz.UpdatedAt = time.Now()
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": quiz.ID}, bson.M{"$set": quiz})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// Delete deletes a quiz by ID
func (r *QuizRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
