package handlers

import (
	"context"
	"errors"
	"net/http"

	"trivia-api/internal/models"
	"trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

// QuizPicker chooses the next quiz question. *services.QuizService implements it.
type QuizPicker interface {
	NextQuestion(ctx context.Context, category services.QuizCategory, previous []uint) (*models.Question, error)
}

type QuizHandler struct {
	picker QuizPicker
}

func NewQuizHandler(picker QuizPicker) *QuizHandler {
	return &QuizHandler{picker: picker}
}

type QuizCategoryPayload struct {
	Type *string     `json:"type" binding:"required" example:"click"`
	ID   *FlexibleID `json:"id" swaggertype:"integer" example:"0"`
}

type PlayQuizRequest struct {
	QuizCategory      *QuizCategoryPayload `json:"quiz_category" binding:"required"`
	PreviousQuestions []uint               `json:"previous_questions" binding:"required"`
}

type PlayQuizResponse struct {
	Success  bool          `json:"success" example:"true"`
	Question *QuestionView `json:"question" extensions:"x-nullable"`
}

var errMissingCategoryID = errors.New("quiz_category.id is required unless type is " + services.AllCategories)

// PlayQuiz godoc
// @Summary      Next quiz question
// @Description  Random question not in previous_questions, from every category when quiz_category.type is "click", otherwise from category id+1. question is null once all are used.
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Param        request body PlayQuizRequest true "Quiz state"
// @Success      200 {object} PlayQuizResponse
// @Failure      422 {object} ErrorResponse
// @Router       /quizzes [post]
func (h *QuizHandler) PlayQuiz(c *gin.Context) {
	var req PlayQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Abort(c, http.StatusUnprocessableEntity, err)
		return
	}

	category := services.QuizCategory{Type: *req.QuizCategory.Type}
	if !category.All() {
		if req.QuizCategory.ID == nil {
			Abort(c, http.StatusUnprocessableEntity, errMissingCategoryID)
			return
		}
		category.ID = int(*req.QuizCategory.ID)
	}

	question, err := h.picker.NextQuestion(c.Request.Context(), category, req.PreviousQuestions)
	if err != nil {
		Abort(c, http.StatusUnprocessableEntity, err)
		return
	}

	resp := PlayQuizResponse{Success: true}
	if question != nil {
		view := question.Format()
		resp.Question = &view
	}
	c.JSON(http.StatusOK, resp)
}
