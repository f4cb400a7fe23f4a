package handlers

import (
	"net/http"
	"strconv"

	"trivia-api/internal/models"
	"trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	store TriviaStore
}

func NewCategoryHandler(store TriviaStore) *CategoryHandler {
	return &CategoryHandler{store: store}
}

type CategoriesResponse struct {
	Success    bool     `json:"success" example:"true"`
	Categories []string `json:"categories" example:"Art,Science"`
}

type CategoryQuestionsResponse struct {
	Success         bool           `json:"success" example:"true"`
	Questions       []QuestionView `json:"questions"`
	TotalQuestions  int            `json:"total_questions" example:"3"`
	CurrentCategory int            `json:"current_category" example:"2"`
}

// ListCategories godoc
// @Summary      List categories
// @Description  Category types ordered alphabetically
// @Tags         categories
// @Produce      json
// @Success      200 {object} CategoriesResponse
// @Failure      404 {object} ErrorResponse
// @Router       /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.store.ListCategories(c.Request.Context())
	if err != nil {
		Abort(c, http.StatusInternalServerError, err)
		return
	}
	if len(categories) == 0 {
		Abort(c, http.StatusNotFound, nil)
		return
	}

	c.JSON(http.StatusOK, CategoriesResponse{
		Success:    true,
		Categories: categoryTypes(categories),
	})
}

// ListCategoryQuestions godoc
// @Summary      List questions of a category
// @Description  The path takes the zero-based category index; questions are matched against index+1.
// @Tags         categories
// @Produce      json
// @Param        id path int true "Category index"
// @Success      200 {object} CategoryQuestionsResponse
// @Failure      404 {object} ErrorResponse
// @Router       /categories/{id}/questions [get]
func (h *CategoryHandler) ListCategoryQuestions(c *gin.Context) {
	index, err := strconv.ParseUint(c.Param("id"), 10, 31)
	if err != nil {
		Abort(c, http.StatusNotFound, nil)
		return
	}
	categoryID := int(index) + services.CategoryIndexOffset

	questions, err := h.store.QuestionsByCategoryExcluding(c.Request.Context(), categoryID, nil)
	if err != nil {
		Abort(c, http.StatusInternalServerError, err)
		return
	}
	if len(questions) == 0 {
		Abort(c, http.StatusNotFound, nil)
		return
	}

	c.JSON(http.StatusOK, CategoryQuestionsResponse{
		Success:         true,
		Questions:       models.FormatQuestions(questions),
		TotalQuestions:  len(questions),
		CurrentCategory: categoryID,
	})
}

func categoryTypes(categories []models.Category) []string {
	types := make([]string, 0, len(categories))
	for _, c := range categories {
		types = append(types, c.Type)
	}
	return types
}
