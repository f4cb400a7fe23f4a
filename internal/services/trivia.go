package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"trivia-api/internal/models"

	"gorm.io/gorm"
)

var ErrQuestionNotFound = errors.New("question not found")

// TriviaService is the gorm-backed store for categories and questions.
type TriviaService struct {
	db *gorm.DB
}

func NewTriviaService(db *gorm.DB) *TriviaService {
	return &TriviaService{db: db}
}

type NewQuestion struct {
	Question   string
	Answer     string
	Category   string
	Difficulty int
}

func (s *TriviaService) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).Order("type ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// ListCategoriesByID returns categories in insertion order.
func (s *TriviaService) ListCategoriesByID(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (s *TriviaService) ListQuestions(ctx context.Context) ([]models.Question, error) {
	var questions []models.Question
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return questions, nil
}

func (s *TriviaService) GetQuestion(ctx context.Context, id uint) (*models.Question, error) {
	var question models.Question
	err := s.db.WithContext(ctx).First(&question, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrQuestionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get question %d: %w", id, err)
	}
	return &question, nil
}

func (s *TriviaService) DeleteQuestion(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Question{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete question %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrQuestionNotFound
	}
	return nil
}

func (s *TriviaService) CreateQuestion(ctx context.Context, in NewQuestion) (uint, error) {
	question := models.Question{
		Question:   in.Question,
		Answer:     in.Answer,
		Category:   in.Category,
		Difficulty: in.Difficulty,
	}
	if err := s.db.WithContext(ctx).Create(&question).Error; err != nil {
		return 0, fmt.Errorf("create question: %w", err)
	}
	return question.ID, nil
}

// SearchQuestions matches term case-insensitively anywhere in the question
// text. LIKE wildcards in term are matched literally. Postgres folds case with
// ILIKE; SQLite's LOWER only folds ASCII, so other drivers filter in Go.
func (s *TriviaService) SearchQuestions(ctx context.Context, term string) ([]models.Question, error) {
	postgres := s.db.Dialector.Name() == "postgres"

	var questions []models.Question
	query := s.db.WithContext(ctx).Order("id ASC")
	if postgres {
		query = query.Where(`question ILIKE ? ESCAPE '\'`, "%"+escapeLike(term)+"%")
	}
	if err := query.Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	if postgres {
		return questions, nil
	}

	needle := strings.ToLower(term)
	matched := questions[:0]
	for _, q := range questions {
		if strings.Contains(strings.ToLower(q.Question), needle) {
			matched = append(matched, q)
		}
	}
	return matched, nil
}

func (s *TriviaService) QuestionsExcluding(ctx context.Context, ids []uint) ([]models.Question, error) {
	var questions []models.Question
	if err := excludeIDs(s.db.WithContext(ctx), ids).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("list questions excluding %v: %w", ids, err)
	}
	return questions, nil
}

func (s *TriviaService) QuestionsByCategoryExcluding(ctx context.Context, categoryID int, ids []uint) ([]models.Question, error) {
	var questions []models.Question
	err := excludeIDs(s.db.WithContext(ctx), ids).
		Where("category = ?", models.CategoryRef(categoryID)).
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("list questions of category %d: %w", categoryID, err)
	}
	return questions, nil
}

// excludeIDs skips the filter for an empty set: NOT IN () would match nothing.
func excludeIDs(db *gorm.DB, ids []uint) *gorm.DB {
	if len(ids) == 0 {
		return db
	}
	return db.Where("id NOT IN ?", ids)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
