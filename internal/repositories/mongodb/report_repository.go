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

// Compile-time check to ensure ReportRepository implements the interface
var _ repositories.ReportRepository = (*ReportRepository)(nil)

// ReportRepository handles MongoDB operations for EWasteReport
type ReportRepository struct {
	collection *mongo.Collection
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db *mongo.Database) *ReportRepository {
	return &ReportRepository{
		collection: db.Collection("ewaste_reports"),
	}
}

// Create inserts a new report
func (r *ReportRepository) Create(ctx context.Context, report *models.EWasteReport) error {
	report.ID = primitive.NewObjectID()
	report.CreatedAt = time.Now()
	report.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, report)
	return err
}

// FindByID finds a report by ID
func (r *ReportRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.EWasteReport, error) {
	var report models.EWasteReport
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&report)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// FindByUserID retrieves a user's reports, newest first
func (r *ReportRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID, page, limit int) ([]*models.EWasteReport, error) {
	opts := paginate(page, limit).SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reports := []*models.EWasteReport{}
	if err = cursor.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// FindAll retrieves reports, optionally filtered by status
func (r *ReportRepository) FindAll(ctx context.Context, status string, page, limit int) ([]*models.EWasteReport, error) {
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

	reports := []*models.EWasteReport{}
	if err = cursor.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// Update updates an existing report
func (r *ReportRepository) Update(ctx context.Context, report *models.EWasteReport) error {
	report.UpdatedAt = time.Now()
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": report.ID}, bson.M{"$set": report})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// Delete deletes a report by ID
func (r *ReportRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// TransitionStatus performs the status change and the pointsAwarded top-up
// as one conditional update keyed on the current status. Two concurrent
// requests for the same transition race on the status field; only the one
// whose filter still matches takes effect, the other sees ErrConditionFailed.
func (r *ReportRepository) TransitionStatus(ctx context.Context, id primitive.ObjectID, fromStatus, toStatus string, awardDelta int) error {
	filter := bson.M{"_id": id, "status": fromStatus}
	update := bson.M{
		"$set": bson.M{"status": toStatus, "updatedAt": time.Now()},
	}
	if awardDelta != 0 {
		update["$inc"] = bson.M{"pointsAwarded": awardDelta}
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

// CountProcessedByUserBetween aggregates processed-report counts per user
// whose last update fell inside [start, end)
func (r *ReportRepository) CountProcessedByUserBetween(ctx context.Context, start, end time.Time) (map[primitive.ObjectID]int, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"status":    models.ReportStatusProcessed,
			"updatedAt": bson.M{"$gte": start, "$lt": end},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$userId",
			"count": bson.M{"$sum": 1},
		}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		UserID primitive.ObjectID `bson:"_id"`
		Count  int                `bson:"count"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	counts := make(map[primitive.ObjectID]int, len(rows))
	for _, row := range rows {
		counts[row.UserID] = row.Count
	}
	return counts, nil
}
