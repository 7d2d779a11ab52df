package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Reward statuses
const (
	RewardStatusActive   = "active"
	RewardStatusInactive = "inactive"
)

// Reward types
const (
	RewardTypeCoupon   = "coupon"
	RewardTypeDiscount = "discount"
	RewardTypeCashback = "cashback"
	RewardTypeVoucher  = "voucher"
)

// Reward value types
const (
	ValueTypeFixed      = "fixed"
	ValueTypePercentage = "percentage"
)

// RewardRedemption statuses
const (
	RedemptionStatusPending  = "pending"
	RedemptionStatusApproved = "approved"
	RedemptionStatusUsed     = "used"
	RedemptionStatusExpired  = "expired"
)

// Reward is a redeemable item with a point cost and finite stock
type Reward struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Type        string             `bson:"type" json:"type"`
	ValueType   string             `bson:"valueType" json:"valueType"`
	Value       float64            `bson:"value" json:"value"`
	PointsCost  int                `bson:"pointsCost" json:"pointsCost"`
	Stock       int                `bson:"stock" json:"stock"`
	Status      string             `bson:"status" json:"status"`
	ExpiryDate  *time.Time         `bson:"expiryDate,omitempty" json:"expiryDate,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// RewardRedemption records a user exchanging points for a reward
type RewardRedemption struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	RewardID    primitive.ObjectID `bson:"rewardId" json:"rewardId"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	PointsSpent int                `bson:"pointsSpent" json:"pointsSpent"`
	CouponCode  string             `bson:"couponCode" json:"couponCode"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ValidRedemptionStatus reports whether s is a known redemption status
func ValidRedemptionStatus(s string) bool {
	switch s {
	case RedemptionStatusPending, RedemptionStatusApproved, RedemptionStatusUsed, RedemptionStatusExpired:
		return true
	}
	return false
}
