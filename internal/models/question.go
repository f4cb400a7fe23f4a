package models

import "strconv"

// Question.Category holds the string form of a Category ID. It is a loose
// reference: nothing enforces that the category exists.
type Question struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Question   string `gorm:"type:text;not null" json:"question"`
	Answer     string `gorm:"type:text;not null" json:"answer"`
	Category   string `gorm:"type:text;not null;index" json:"category"`
	Difficulty int    `gorm:"not null" json:"difficulty"`
}

func (Question) TableName() string { return "questions" }

// QuestionView is the public JSON shape of a question.
type QuestionView struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   string `json:"category"`
	Difficulty int    `json:"difficulty"`
}

func (q Question) Format() QuestionView {
	return QuestionView{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

func FormatQuestions(questions []Question) []QuestionView {
	out := make([]QuestionView, 0, len(questions))
	for _, q := range questions {
		out = append(out, q.Format())
	}
	return out
}

// CategoryRef renders a category id the way Question.Category stores it.
func CategoryRef(id int) string {
	return strconv.Itoa(id)
}
