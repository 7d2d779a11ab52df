package services

import (
	"errors"

	"github.com/greenloop/ewaste-rewards-backend/internal/validation"
)

// Business-rule errors surfaced to users with a specific message. Handlers
// map these onto HTTP statuses; anything else is a store failure and comes
// back as a generic 500.
var (
	ErrNotFound             = errors.New("resource not found")
	ErrDuplicateEmail       = errors.New("a user with this email already exists")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrAccountSuspended     = errors.New("account is suspended")
	ErrInsufficientPoints   = errors.New("insufficient points for this reward")
	ErrOutOfStock           = errors.New("reward is out of stock")
	ErrRewardInactive       = errors.New("reward is not active")
	ErrQuizNotActive        = errors.New("quiz is not active")
	ErrAlreadySubmitted     = errors.New("quiz already submitted")
	ErrChallengeNotActive   = errors.New("challenge is not active")
	ErrAlreadyParticipating = errors.New("challenge already claimed")
	ErrInvalidStatus        = errors.New("unknown status value")
	ErrConflict             = errors.New("resource was modified concurrently, try again")
)

// ValidationError carries the structured field errors of a failed entity
// validation through the error return path
type ValidationError struct {
	Result validation.Result
}

func (e *ValidationError) Error() string {
	if len(e.Result.Errors) == 1 {
		return "validation failed: " + e.Result.Errors[0].Field
	}
	return "validation failed"
}

// NewValidationError wraps a validation result in an error
func NewValidationError(result validation.Result) error {
	return &ValidationError{Result: result}
}
