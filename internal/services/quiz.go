package services

import (
	"context"
	"fmt"
	"math/rand"

	"trivia-api/internal/models"
)

// AllCategories is the quiz_category type the client sends to play across
// every category.
const AllCategories = "click"

// CategoryIndexOffset maps the zero-based category index used by clients to
// the stored category id.
const CategoryIndexOffset = 1

type QuizCategory struct {
	Type string
	ID   int
}

func (c QuizCategory) All() bool { return c.Type == AllCategories }

// QuestionPool is the part of the store the quiz draws from.
type QuestionPool interface {
	QuestionsExcluding(ctx context.Context, ids []uint) ([]models.Question, error)
	QuestionsByCategoryExcluding(ctx context.Context, categoryID int, ids []uint) ([]models.Question, error)
}

type QuizService struct {
	pool QuestionPool
	intn func(n int) int
}

func NewQuizService(pool QuestionPool) *QuizService {
	return &QuizService{pool: pool, intn: rand.Intn}
}

// WithRand replaces the random source; intn must return a value in [0, n).
func (s *QuizService) WithRand(intn func(n int) int) *QuizService {
	s.intn = intn
	return s
}

// NextQuestion picks a random question not in previous. It returns nil, nil
// once every eligible question has been asked.
func (s *QuizService) NextQuestion(ctx context.Context, category QuizCategory, previous []uint) (*models.Question, error) {
	var (
		eligible []models.Question
		err      error
	)
	if category.All() {
		eligible, err = s.pool.QuestionsExcluding(ctx, previous)
	} else {
		eligible, err = s.pool.QuestionsByCategoryExcluding(ctx, category.ID+CategoryIndexOffset, previous)
	}
	if err != nil {
		return nil, fmt.Errorf("quiz candidates: %w", err)
	}

	return pick(eligible, s.intn), nil
}

func pick(questions []models.Question, intn func(n int) int) *models.Question {
	if len(questions) == 0 {
		return nil
	}
	q := questions[intn(len(questions))]
	return &q
}
