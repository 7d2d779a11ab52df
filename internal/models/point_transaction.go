package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Point transaction reasons
const (
	PointReasonReportCollected   = "report_collected"
	PointReasonReportProcessed   = "report_processed"
	PointReasonQuizCompleted     = "quiz_completed"
	PointReasonChallengeApproved = "challenge_approved"
	PointReasonRewardRedeemed    = "reward_redeemed"
	PointReasonRedemptionRefund  = "redemption_refund"
)

// PointTransaction is one entry in the points ledger. Every mutation of a
// user's balance writes exactly one entry, so the ledger is the audit trail
// the leaderboard projection is rebuilt from.
type PointTransaction struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	Points      int                `bson:"points" json:"points"`
	Reason      string             `bson:"reason" json:"reason"`
	ReferenceID primitive.ObjectID `bson:"referenceId" json:"referenceId"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
