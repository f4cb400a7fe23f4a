package database

import (
	"encoding/json"
	"fmt"
	"os"

	"trivia-api/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultCategories are inserted, in this order, into an empty categories table.
var DefaultCategories = []string{"Science", "Art", "Geography", "History", "Entertainment", "Sports"}

type SeedData struct {
	Categories []string       `json:"categories"`
	Questions  []SeedQuestion `json:"questions"`
}

type SeedQuestion struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   string `json:"category"`
	Difficulty int    `json:"difficulty"`
}

func LoadSeedFile(path string) (*SeedData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var data SeedData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return &data, nil
}

// Seed fills empty tables. Categories come from data when it has any,
// otherwise from DefaultCategories. Questions are only inserted when the
// questions table is empty. data may be nil.
func Seed(db *gorm.DB, data *SeedData, log *zap.Logger) error {
	categories := DefaultCategories
	if data != nil && len(data.Categories) > 0 {
		categories = data.Categories
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Category{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			rows := make([]models.Category, 0, len(categories))
			for _, t := range categories {
				rows = append(rows, models.Category{Type: t})
			}
			if err := tx.Create(&rows).Error; err != nil {
				return fmt.Errorf("seed categories: %w", err)
			}
			log.Info("seeded categories", zap.Int("count", len(rows)))
		}

		if data == nil || len(data.Questions) == 0 {
			return nil
		}
		if err := tx.Model(&models.Question{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		rows := make([]models.Question, 0, len(data.Questions))
		for _, q := range data.Questions {
			rows = append(rows, models.Question{
				Question:   q.Question,
				Answer:     q.Answer,
				Category:   q.Category,
				Difficulty: q.Difficulty,
			})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("seed questions: %w", err)
		}
		log.Info("seeded questions", zap.Int("count", len(rows)))
		return nil
	})
}
