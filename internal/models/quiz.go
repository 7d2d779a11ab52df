package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Quiz statuses
const (
	QuizStatusDraft    = "draft"
	QuizStatusActive   = "active"
	QuizStatusInactive = "inactive"
)

// Difficulty levels shared by quizzes and challenges
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Question is a single multiple-choice question owned by a quiz
type Question struct {
	Text          string   `bson:"text" json:"text"`
	Options       []string `bson:"options" json:"options"`
	CorrectAnswer int      `bson:"correctAnswer" json:"correctAnswer"`
}

// Quiz represents an educational quiz with a point budget
type Quiz struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Questions   []Question         `bson:"questions" json:"questions"`
	Points      int                `bson:"points" json:"points"`
	TimeLimit   int                `bson:"timeLimit" json:"timeLimit"`
	Difficulty  string             `bson:"difficulty" json:"difficulty"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Unanswered marks a question the user skipped in a submission
const Unanswered = -1

// QuizSubmission records a user's answers to a quiz and the score earned
type QuizSubmission struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	QuizID    primitive.ObjectID `bson:"quizId" json:"quizId"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Answers   []int              `bson:"answers" json:"answers"`
	Correct   int                `bson:"correct" json:"correct"`
	Score     int                `bson:"score" json:"score"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// PublicQuestion is a question with the correct answer stripped,
// safe to return to quiz takers.
type PublicQuestion struct {
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

// Public returns a copy of the quiz without correct-answer indices
func (q *Quiz) Public() map[string]interface{} {
	questions := make([]PublicQuestion, 0, len(q.Questions))
	for _, question := range q.Questions {
		questions = append(questions, PublicQuestion{Text: question.Text, Options: question.Options})
	}
	return map[string]interface{}{
		"id":          q.ID,
		"title":       q.Title,
		"description": q.Description,
		"questions":   questions,
		"points":      q.Points,
		"timeLimit":   q.TimeLimit,
		"difficulty":  q.Difficulty,
		"status":      q.Status,
	}
}
