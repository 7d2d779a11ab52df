// Package validation holds the pure, stateless entity validators applied
// before every create or update. Validators return a structured list of
// field errors instead of failing on the first problem.
package validation

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/greenloop/ewaste-rewards-backend/internal/models"
)

// FieldError describes a single invalid field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result is the outcome of validating one entity
type Result struct {
	IsValid bool         `json:"isValid"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func (r *Result) add(field, message string) {
	r.IsValid = false
	r.Errors = append(r.Errors, FieldError{Field: field, Message: message})
}

func newResult() Result {
	return Result{IsValid: true}
}

func oneOf(value string, allowed ...string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}

// ValidateQuiz checks a quiz and all of its questions
func ValidateQuiz(q *models.Quiz) Result {
	res := newResult()
	if strings.TrimSpace(q.Title) == "" {
		res.add("title", "title is required")
	}
	if strings.TrimSpace(q.Description) == "" {
		res.add("description", "description is required")
	}
	if len(q.Questions) == 0 {
		res.add("questions", "quiz must have at least one question")
	}
	for i, question := range q.Questions {
		for _, fe := range validateQuestion(&question) {
			res.add(fmt.Sprintf("questions[%d].%s", i, fe.Field), fe.Message)
		}
	}
	if !oneOf(q.Status, models.QuizStatusActive, models.QuizStatusDraft, models.QuizStatusInactive) {
		res.add("status", "status must be one of active, draft, inactive")
	}
	if !oneOf(q.Difficulty, models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard) {
		res.add("difficulty", "difficulty must be one of easy, medium, hard")
	}
	if q.TimeLimit <= 0 {
		res.add("timeLimit", "time limit must be greater than zero")
	}
	if q.Points < 0 {
		res.add("points", "points must be zero or greater")
	}
	return res
}

func validateQuestion(q *models.Question) []FieldError {
	var errs []FieldError
	if strings.TrimSpace(q.Text) == "" {
		errs = append(errs, FieldError{Field: "text", Message: "question text is required"})
	}
	if len(q.Options) < 2 {
		errs = append(errs, FieldError{Field: "options", Message: "question must have at least two options"})
	}
	for i, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			errs = append(errs, FieldError{Field: fmt.Sprintf("options[%d]", i), Message: "option text is required"})
		}
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		errs = append(errs, FieldError{Field: "correctAnswer", Message: "correct answer index is out of range"})
	}
	return errs
}

// ValidateChallenge checks a challenge
func ValidateChallenge(c *models.Challenge) Result {
	res := newResult()
	if strings.TrimSpace(c.Title) == "" {
		res.add("title", "title is required")
	}
	if strings.TrimSpace(c.Description) == "" {
		res.add("description", "description is required")
	}
	if strings.TrimSpace(c.Creator) == "" {
		res.add("creator", "creator is required")
	}
	if len(c.Requirements) == 0 {
		res.add("requirements", "challenge must have at least one requirement")
	}
	if !oneOf(c.Status, models.ChallengeStatusActive, models.ChallengeStatusPending, models.ChallengeStatusInactive) {
		res.add("status", "status must be one of active, pending, inactive")
	}
	if !oneOf(c.Difficulty, models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard) {
		res.add("difficulty", "difficulty must be one of easy, medium, hard")
	}
	if c.EstimatedTime <= 0 {
		res.add("estimatedTime", "estimated time must be greater than zero")
	}
	if c.Points < 0 {
		res.add("points", "points must be zero or greater")
	}
	return res
}

// ValidateReward checks a reward
func ValidateReward(r *models.Reward) Result {
	res := newResult()
	if strings.TrimSpace(r.Title) == "" {
		res.add("title", "title is required")
	}
	if strings.TrimSpace(r.Description) == "" {
		res.add("description", "description is required")
	}
	if !oneOf(r.Type, models.RewardTypeCoupon, models.RewardTypeDiscount, models.RewardTypeCashback, models.RewardTypeVoucher) {
		res.add("type", "type must be one of coupon, discount, cashback, voucher")
	}
	if !oneOf(r.ValueType, models.ValueTypeFixed, models.ValueTypePercentage) {
		res.add("valueType", "value type must be fixed or percentage")
	}
	if r.Value <= 0 {
		res.add("value", "value must be greater than zero")
	}
	if r.Stock < 0 {
		res.add("stock", "stock must be zero or greater")
	}
	if r.PointsCost < 0 {
		res.add("pointsCost", "points cost must be zero or greater")
	}
	if r.ExpiryDate != nil && !r.ExpiryDate.After(time.Now()) {
		res.add("expiryDate", "expiry date must be in the future")
	}
	return res
}

// ValidateUser checks a user
func ValidateUser(u *models.User) Result {
	res := newResult()
	if !ValidEmail(u.Email) {
		res.add("email", "email address is not valid")
	}
	if !oneOf(u.Role, models.RoleAdmin, models.RoleCustomer) {
		res.add("role", "role must be admin or customer")
	}
	if u.Points < 0 {
		res.add("points", "points must be zero or greater")
	}
	if !oneOf(u.Status, models.UserStatusActive, models.UserStatusSuspended) {
		res.add("status", "status must be active or suspended")
	}
	return res
}

// ValidateSubmission checks that answers line up with the quiz's questions.
// Each answer is an option index or models.Unanswered.
func ValidateSubmission(quiz *models.Quiz, answers []int) Result {
	res := newResult()
	if len(answers) != len(quiz.Questions) {
		res.add("answers", fmt.Sprintf("expected %d answers, got %d", len(quiz.Questions), len(answers)))
		return res
	}
	for i, a := range answers {
		if a == models.Unanswered {
			continue
		}
		if a < 0 || a >= len(quiz.Questions[i].Options) {
			res.add(fmt.Sprintf("answers[%d]", i), "selected option is out of range")
		}
	}
	return res
}

// ValidEmail reports whether addr parses as a bare RFC 5322 address
func ValidEmail(addr string) bool {
	parsed, err := mail.ParseAddress(addr)
	return err == nil && parsed.Address == addr
}
