package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"trivia-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the envelope every failed request gets.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   int    `json:"error" example:"404"`
	Message string `json:"message" example:"resource not found"`
}

var errorMessages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusNotFound:            "resource not found",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusUnprocessableEntity: "unprocessable",
	http.StatusInternalServerError: "internal server error",
}

func NewErrorResponse(status int) ErrorResponse {
	msg, ok := errorMessages[status]
	if !ok {
		msg = strings.ToLower(http.StatusText(status))
	}
	return ErrorResponse{Success: false, Error: status, Message: msg}
}

// Abort stops the chain and writes the error envelope for status. err, when
// given, is attached to the context so the access log can report it.
func Abort(c *gin.Context, status int, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, NewErrorResponse(status))
}

// NotFound answers unknown routes.
func NotFound(c *gin.Context) { Abort(c, http.StatusNotFound, nil) }

// MethodNotAllowed answers known routes hit with the wrong method.
func MethodNotAllowed(c *gin.Context) { Abort(c, http.StatusMethodNotAllowed, nil) }

// bindStatus classifies a ShouldBindJSON error: unreadable JSON is a bad
// request, JSON of the wrong shape is unprocessable.
func bindStatus(err error) int {
	var (
		syntaxErr *json.SyntaxError
		verrs     validator.ValidationErrors
		typeErr   *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &verrs), errors.As(err, &typeErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &syntaxErr),
		errors.Is(err, io.EOF),
		errors.Is(err, io.ErrUnexpectedEOF):
		return http.StatusBadRequest
	default:
		return http.StatusUnprocessableEntity
	}
}

// Type aliases so swag can resolve models in annotations.
type QuestionView = models.QuestionView

var flexibleIDType = reflect.TypeOf(0)

// FlexibleID accepts a JSON number or a string holding one. Clients send
// category ids both ways.
type FlexibleID int

func (f *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return &json.UnmarshalTypeError{Value: "string " + strconv.Quote(s), Type: flexibleIDType}
		}
		*f = FlexibleID(n)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexibleID(n)
	return nil
}
