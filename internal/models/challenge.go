package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Challenge statuses
const (
	ChallengeStatusPending  = "pending"
	ChallengeStatusActive   = "active"
	ChallengeStatusInactive = "inactive"
)

// ChallengeParticipation statuses
const (
	ParticipationStatusPending  = "pending"
	ParticipationStatusApproved = "approved"
	ParticipationStatusRejected = "rejected"
)

// ValidParticipationStatus reports whether s is a known participation status
func ValidParticipationStatus(s string) bool {
	switch s {
	case ParticipationStatusPending, ParticipationStatusApproved, ParticipationStatusRejected:
		return true
	}
	return false
}

// Challenge represents a point-bearing task users can complete
type Challenge struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title         string             `bson:"title" json:"title"`
	Description   string             `bson:"description" json:"description"`
	Creator       string             `bson:"creator" json:"creator"`
	Requirements  []string           `bson:"requirements" json:"requirements"`
	Points        int                `bson:"points" json:"points"`
	Difficulty    string             `bson:"difficulty" json:"difficulty"`
	EstimatedTime int                `bson:"estimatedTime" json:"estimatedTime"`
	Status        string             `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ChallengeParticipation is a user's claim of having completed a challenge
type ChallengeParticipation struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ChallengeID primitive.ObjectID `bson:"challengeId" json:"challengeId"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	Evidence    string             `bson:"evidence" json:"evidence"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
