package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"trivia-api/internal/models"
	"trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

// TriviaStore is the persistence the HTTP layer needs. *services.TriviaService
// implements it.
type TriviaStore interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListCategoriesByID(ctx context.Context) ([]models.Category, error)
	ListQuestions(ctx context.Context) ([]models.Question, error)
	GetQuestion(ctx context.Context, id uint) (*models.Question, error)
	DeleteQuestion(ctx context.Context, id uint) error
	CreateQuestion(ctx context.Context, in services.NewQuestion) (uint, error)
	SearchQuestions(ctx context.Context, term string) ([]models.Question, error)
	QuestionsByCategoryExcluding(ctx context.Context, categoryID int, ids []uint) ([]models.Question, error)
}

type QuestionHandler struct {
	store TriviaStore
}

func NewQuestionHandler(store TriviaStore) *QuestionHandler {
	return &QuestionHandler{store: store}
}

// CreateQuestionRequest fields are pointers so that a missing key and a null
// value are both rejected while zero values stay legal.
type CreateQuestionRequest struct {
	Question   *string     `json:"question" binding:"required" example:"What is H2O?"`
	Answer     *string     `json:"answer" binding:"required" example:"Water"`
	Difficulty *int        `json:"difficulty" binding:"required" example:"1"`
	Category   *FlexibleID `json:"category" binding:"required" swaggertype:"string" example:"1"`
}

type SearchQuestionsRequest struct {
	SearchTerm *string `json:"searchTerm" example:"title"`
}

type QuestionListResponse struct {
	Success         bool           `json:"success" example:"true"`
	Questions       []QuestionView `json:"questions"`
	TotalQuestions  int            `json:"total_questions" example:"19"`
	Categories      []string       `json:"categories" example:"Science,Art"`
	CurrentCategory *int           `json:"current_category" swaggertype:"integer" extensions:"x-nullable"`
}

type SearchQuestionsResponse struct {
	Success         bool           `json:"success" example:"true"`
	Questions       []QuestionView `json:"questions"`
	TotalQuestions  int            `json:"total_questions" example:"2"`
	CurrentCategory *int           `json:"current_category" swaggertype:"integer" extensions:"x-nullable"`
}

type DeleteQuestionResponse struct {
	Success bool `json:"success" example:"true"`
	Deleted uint `json:"deleted" example:"5"`
}

type CreateQuestionResponse struct {
	Success bool `json:"success" example:"true"`
	Created uint `json:"created" example:"24"`
}

// ListQuestions godoc
// @Summary      List questions
// @Description  Questions ordered by id, five per page
// @Tags         questions
// @Produce      json
// @Param        page query int false "Page number (1-based)"
// @Success      200 {object} QuestionListResponse
// @Failure      404 {object} ErrorResponse
// @Router       /questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	ctx := c.Request.Context()
	page := services.ParsePage(c.Query("page"))

	questions, err := h.store.ListQuestions(ctx)
	if err != nil {
		Abort(c, http.StatusInternalServerError, err)
		return
	}
	current := services.Paginate(questions, page)
	if len(current) == 0 {
		Abort(c, http.StatusNotFound, nil)
		return
	}

	categories, err := h.store.ListCategoriesByID(ctx)
	if err != nil {
		Abort(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, QuestionListResponse{
		Success:        true,
		Questions:      models.FormatQuestions(current),
		TotalQuestions: len(questions),
		Categories:     categoryTypes(categories),
	})
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Tags         questions
// @Produce      json
// @Param        id path int true "Question ID"
// @Success      200 {object} DeleteQuestionResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	ctx := c.Request.Context()
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		Abort(c, http.StatusUnprocessableEntity, nil)
		return
	}

	if _, err := h.store.GetQuestion(ctx, uint(id)); err != nil {
		Abort(c, http.StatusUnprocessableEntity, ignoreNotFound(err))
		return
	}
	if err := h.store.DeleteQuestion(ctx, uint(id)); err != nil {
		Abort(c, http.StatusUnprocessableEntity, ignoreNotFound(err))
		return
	}

	c.JSON(http.StatusOK, DeleteQuestionResponse{Success: true, Deleted: uint(id)})
}

// CreateQuestion godoc
// @Summary      Create a question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body CreateQuestionRequest true "Question data"
// @Success      200 {object} CreateQuestionResponse
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions [post]
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Abort(c, bindStatus(err), err)
		return
	}

	id, err := h.store.CreateQuestion(c.Request.Context(), services.NewQuestion{
		Question:   *req.Question,
		Answer:     *req.Answer,
		Category:   models.CategoryRef(int(*req.Category)),
		Difficulty: *req.Difficulty,
	})
	if err != nil {
		Abort(c, http.StatusUnprocessableEntity, err)
		return
	}

	c.JSON(http.StatusOK, CreateQuestionResponse{Success: true, Created: id})
}

// SearchQuestions godoc
// @Summary      Search questions
// @Description  Case-insensitive substring match on the question text
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body SearchQuestionsRequest true "Search term"
// @Success      200 {object} SearchQuestionsResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /questions/search [post]
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req SearchQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Abort(c, bindStatus(err), err)
		return
	}
	if req.SearchTerm == nil || *req.SearchTerm == "" {
		Abort(c, http.StatusNotFound, nil)
		return
	}

	results, err := h.store.SearchQuestions(c.Request.Context(), *req.SearchTerm)
	if err != nil {
		Abort(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, SearchQuestionsResponse{
		Success:        true,
		Questions:      models.FormatQuestions(results),
		TotalQuestions: len(results),
	})
}

// ignoreNotFound drops the expected "no such question" error so only real
// storage faults reach the log.
func ignoreNotFound(err error) error {
	if errors.Is(err, services.ErrQuestionNotFound) {
		return nil
	}
	return err
}
