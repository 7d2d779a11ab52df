package services

import (
	"context"
	"errors"
	"math"

	"github.com/greenloop/ewaste-rewards-backend/internal/models"
	"github.com/greenloop/ewaste-rewards-backend/internal/repositories"
	"github.com/greenloop/ewaste-rewards-backend/internal/validation"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuizService handles quiz management, scoring and point crediting
type QuizService struct {
	quizRepo       repositories.QuizRepository
	submissionRepo repositories.QuizSubmissionRepository
	ledger         *LedgerService
}

// NewQuizService creates a new QuizService
func NewQuizService(quizRepo repositories.QuizRepository, submissionRepo repositories.QuizSubmissionRepository, ledger *LedgerService) *QuizService {
	return &QuizService{
		quizRepo:       quizRepo,
		submissionRepo: submissionRepo,
		ledger:         ledger,
	}
}

// Score computes the points earned for correct answers out of total
// questions against a quiz's point budget. Pure; result is always within
// [0, quizPoints].
func Score(correct, total, quizPoints int) int {
	if total <= 0 || correct <= 0 {
		return 0
	}
	if correct > total {
		correct = total
	}
	return int(math.Round(float64(correct) / float64(total) * float64(quizPoints)))
}

// CreateQuiz validates and stores a new quiz
func (s *QuizService) CreateQuiz(ctx context.Context, quiz *models.Quiz) error {
	if res := validation.ValidateQuiz(quiz); !res.IsValid {
		return NewValidationError(res)
	}
	return s.quizRepo.Create(ctx, quiz)
}

// GetQuizByID retrieves a quiz by ID
func (s *QuizService) GetQuizByID(ctx context.Context, id primitive.ObjectID) (*models.Quiz, error) {
	quiz, err := s.quizRepo.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrNotFound
	}
	return quiz, err
}

// GetActiveQuizzes retrieves active quizzes
func (s *QuizService) GetActiveQuizzes(ctx context.Context, page, limit int) ([]*models.Quiz, error) {
	return s.quizRepo.FindByStatus(ctx, models.QuizStatusActive, page, limit)
}

// GetAllQuizzes retrieves all quizzes with pagination
func (s *QuizService) GetAllQuizzes(ctx context.Context, page, limit int) ([]*models.Quiz, error) {
	return s.quizRepo.FindAll(ctx, page, limit)
}

// UpdateQuiz validates and updates an existing quiz
func (s *QuizService) UpdateQuiz(ctx context.Context, quiz *models.Quiz) error {
	if res := validation.ValidateQuiz(quiz); !res.IsValid {
		return NewValidationError(res)
	}
	err := s.quizRepo.Update(ctx, quiz)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// DeleteQuiz removes a quiz
func (s *QuizService) DeleteQuiz(ctx context.Context, id primitive.ObjectID) error {
	err := s.quizRepo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// Submit scores a user's answers against an active quiz, records the
// submission and credits the score. One submission per user per quiz: the
// unique index behind the submission repository turns the duplicate check
// into a guarantee, so a racing second submit cannot double-credit.
func (s *QuizService) Submit(ctx context.Context, quizID, userID primitive.ObjectID, answers []int) (*models.QuizSubmission, error) {
	quiz, err := s.quizRepo.FindByID(ctx, quizID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if quiz.Status != models.QuizStatusActive {
		return nil, ErrQuizNotActive
	}

	if res := validation.ValidateSubmission(quiz, answers); !res.IsValid {
		return nil, NewValidationError(res)
	}

	if _, err := s.submissionRepo.FindByQuizAndUser(ctx, quizID, userID); err == nil {
		return nil, ErrAlreadySubmitted
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	correct := 0
	for i, answer := range answers {
		if answer != models.Unanswered && answer == quiz.Questions[i].CorrectAnswer {
			correct++
		}
	}

	submission := &models.QuizSubmission{
		QuizID:  quizID,
		UserID:  userID,
		Answers: answers,
		Correct: correct,
		Score:   Score(correct, len(quiz.Questions), quiz.Points),
	}
	if err := s.submissionRepo.Create(ctx, submission); err != nil {
		if errors.Is(err, repositories.ErrConditionFailed) {
			return nil, ErrAlreadySubmitted
		}
		return nil, err
	}

	if submission.Score > 0 {
		if err := s.ledger.Credit(ctx, userID, submission.Score, models.PointReasonQuizCompleted, quizID); err != nil {
			return nil, err
		}
	}
	return submission, nil
}

// GetSubmissionsByUser retrieves a user's submissions
func (s *QuizService) GetSubmissionsByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.QuizSubmission, error) {
	return s.submissionRepo.FindByUserID(ctx, userID)
}
