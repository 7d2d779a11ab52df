package services

import (
	"context"
	"errors"
	"testing"

	"github.com/greenloop/ewaste-rewards-backend/internal/models"
	"github.com/greenloop/ewaste-rewards-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name       string
		correct    int
		total      int
		quizPoints int
		want       int
	}{
		{"all correct", 5, 5, 100, 100},
		{"none correct", 0, 5, 100, 0},
		{"half correct", 1, 2, 100, 50},
		{"rounds up", 2, 3, 100, 67},
		{"rounds down", 1, 3, 100, 33},
		{"zero budget", 3, 5, 0, 0},
		{"zero total", 3, 0, 100, 0},
		{"negative correct", -1, 5, 100, 0},
		{"correct above total clamps", 7, 5, 100, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.correct, tt.total, tt.quizPoints)
			if got != tt.want {
				t.Errorf("Score(%d, %d, %d) = %d, want %d", tt.correct, tt.total, tt.quizPoints, got, tt.want)
			}
			if got < 0 || got > tt.quizPoints {
				t.Errorf("Score(%d, %d, %d) = %d, outside [0, %d]", tt.correct, tt.total, tt.quizPoints, got, tt.quizPoints)
			}
		})
	}
}

func activeQuiz() *models.Quiz {
	return &models.Quiz{
		ID:    primitive.NewObjectID(),
		Title: "Recycling basics",
		Questions: []models.Question{
			{Text: "Where do old batteries go?", Options: []string{"trash", "collection point", "drain"}, CorrectAnswer: 1},
			{Text: "What does WEEE stand for?", Options: []string{"waste electrical and electronic equipment", "wide energy emission estimate"}, CorrectAnswer: 0},
		},
		Points: 20,
		Status: models.QuizStatusActive,
	}
}

// quizFixture wires a QuizService against mocks recording the submission
// and any point credits.
type quizFixture struct {
	service   *QuizService
	submitted *models.QuizSubmission
	credited  []int
}

func newQuizFixture(t *testing.T, quiz *models.Quiz, existing *models.QuizSubmission, createErr error) *quizFixture {
	t.Helper()
	f := &quizFixture{}

	quizRepo := &mockQuizRepo{
		findByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.Quiz, error) {
			if quiz == nil {
				return nil, repositories.ErrNotFound
			}
			return quiz, nil
		},
	}
	submissionRepo := &mockSubmissionRepo{
		findByQuizAndUserFunc: func(ctx context.Context, quizID, userID primitive.ObjectID) (*models.QuizSubmission, error) {
			if existing == nil {
				return nil, repositories.ErrNotFound
			}
			return existing, nil
		},
		createFunc: func(ctx context.Context, submission *models.QuizSubmission) error {
			if createErr != nil {
				return createErr
			}
			f.submitted = submission
			return nil
		},
	}
	userRepo := &mockUserRepo{
		incrementPointsFunc: func(ctx context.Context, userID primitive.ObjectID, points int, minBalance int) error {
			f.credited = append(f.credited, points)
			return nil
		},
	}

	ledger := NewLedgerService(userRepo, &mockTxRepo{}, testLogger())
	f.service = NewQuizService(quizRepo, submissionRepo, ledger)
	return f
}

func TestSubmitScoresAndCredits(t *testing.T) {
	quiz := activeQuiz()
	f := newQuizFixture(t, quiz, nil, nil)

	submission, err := f.service.Submit(context.Background(), quiz.ID, primitive.NewObjectID(), []int{1, 1})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if submission.Correct != 1 {
		t.Errorf("correct = %d, want 1", submission.Correct)
	}
	if submission.Score != 10 {
		t.Errorf("score = %d, want 10", submission.Score)
	}
	if len(f.credited) != 1 || f.credited[0] != 10 {
		t.Errorf("credits = %v, want one credit of 10", f.credited)
	}
}

func TestSubmitUnansweredEarnsNothing(t *testing.T) {
	quiz := activeQuiz()
	f := newQuizFixture(t, quiz, nil, nil)

	submission, err := f.service.Submit(context.Background(), quiz.ID, primitive.NewObjectID(), []int{models.Unanswered, models.Unanswered})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if submission.Score != 0 {
		t.Errorf("score = %d, want 0", submission.Score)
	}
	if len(f.credited) != 0 {
		t.Errorf("credits = %v, want none for a zero score", f.credited)
	}
}

func TestSubmitInactiveQuiz(t *testing.T) {
	quiz := activeQuiz()
	quiz.Status = models.QuizStatusDraft
	f := newQuizFixture(t, quiz, nil, nil)

	_, err := f.service.Submit(context.Background(), quiz.ID, primitive.NewObjectID(), []int{1, 0})
	if !errors.Is(err, ErrQuizNotActive) {
		t.Fatalf("err = %v, want ErrQuizNotActive", err)
	}
}

func TestSubmitTwiceRejected(t *testing.T) {
	quiz := activeQuiz()
	existing := &models.QuizSubmission{QuizID: quiz.ID}
	f := newQuizFixture(t, quiz, existing, nil)

	_, err := f.service.Submit(context.Background(), quiz.ID, primitive.NewObjectID(), []int{1, 0})
	if !errors.Is(err, ErrAlreadySubmitted) {
		t.Fatalf("err = %v, want ErrAlreadySubmitted", err)
	}
	if len(f.credited) != 0 {
		t.Errorf("credits = %v, want none for a duplicate", f.credited)
	}
}

func TestSubmitRacingDuplicateLosesWithoutCredit(t *testing.T) {
	// The duplicate pre-check passed but the unique index rejected the
	// insert: the racing submit must not credit anything.
	quiz := activeQuiz()
	f := newQuizFixture(t, quiz, nil, repositories.ErrConditionFailed)

	_, err := f.service.Submit(context.Background(), quiz.ID, primitive.NewObjectID(), []int{1, 0})
	if !errors.Is(err, ErrAlreadySubmitted) {
		t.Fatalf("err = %v, want ErrAlreadySubmitted", err)
	}
	if len(f.credited) != 0 {
		t.Errorf("credits = %v, want none when the insert lost the race", f.credited)
	}
}

func TestSubmitWrongAnswerCount(t *testing.T) {
	quiz := activeQuiz()
	f := newQuizFixture(t, quiz, nil, nil)

	_, err := f.service.Submit(context.Background(), quiz.ID, primitive.NewObjectID(), []int{1})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}
