package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EWasteReport statuses
const (
	ReportStatusPending   = "pending"
	ReportStatusCollected = "collected"
	ReportStatusProcessed = "processed"
)

// Points awarded per forward status transition. A fully processed report is
// worth FullReportPoints in total regardless of the path taken.
const (
	CollectionPoints = 50
	FullReportPoints = 100
)

// EWasteReport represents a discarded device reported by a user
type EWasteReport struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID        primitive.ObjectID `bson:"userId" json:"userId"`
	DeviceType    string             `bson:"deviceType" json:"deviceType"`
	Brand         string             `bson:"brand" json:"brand"`
	Model         string             `bson:"model" json:"model"`
	Condition     string             `bson:"condition" json:"condition"`
	Location      string             `bson:"location" json:"location"`
	Status        string             `bson:"status" json:"status"`
	PointsAwarded int                `bson:"pointsAwarded" json:"pointsAwarded"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ValidReportStatus reports whether s is a known report status
func ValidReportStatus(s string) bool {
	switch s {
	case ReportStatusPending, ReportStatusCollected, ReportStatusProcessed:
		return true
	}
	return false
}
