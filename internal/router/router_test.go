package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/handlers"
	"trivia-api/internal/middleware"
	"trivia-api/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T, questions int) *gin.Engine {
	t.Helper()
	log := zap.NewNop()
	cfg := &config.Config{DBDriver: config.DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "trivia.db")}

	db, err := database.Connect(cfg, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.AutoMigrate(db, log))

	seed := &database.SeedData{}
	for i := 1; i <= questions; i++ {
		seed.Questions = append(seed.Questions, database.SeedQuestion{
			Question:   fmt.Sprintf("Question number %d", i),
			Answer:     fmt.Sprintf("answer %d", i),
			Category:   fmt.Sprint(i%6 + 1),
			Difficulty: i%5 + 1,
		})
	}
	require.NoError(t, database.Seed(db, seed, log))

	trivia := services.NewTriviaService(db)
	return New(Deps{
		Categories: handlers.NewCategoryHandler(trivia),
		Questions:  handlers.NewQuestionHandler(trivia),
		Quizzes:    handlers.NewQuizHandler(services.NewQuizService(trivia)),
		Logger:     log,
	})
}

func request(t *testing.T, r http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	}
	return w, out
}

func TestCORSHeadersOnEveryResponse(t *testing.T) {
	r := newTestRouter(t, 3)

	for _, path := range []string{"/categories", "/does-not-exist"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"), path)
		assert.Equal(t, "Content-Type,Authorization", w.Header().Get("Access-Control-Allow-Headers"), path)
		assert.Equal(t, "GET,PUT,POST,DELETE,OPTIONS", w.Header().Get("Access-Control-Allow-Methods"), path)
	}
}

func TestCORSPreflight(t *testing.T) {
	r := newTestRouter(t, 0)

	req := httptest.NewRequest(http.MethodOptions, "/questions", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestRequestIDEchoed(t *testing.T) {
	r := newTestRouter(t, 0)

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(middleware.RequestIDHeader))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/categories", nil))
	assert.Len(t, w.Header().Get(middleware.RequestIDHeader), 36)
}

func TestPanicBecomesEnvelope(t *testing.T) {
	r := newTestRouter(t, 0)
	r.GET("/boom", func(*gin.Context) { panic("boom") })

	w, body := request(t, r, http.MethodGet, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, false, body["success"])
	assert.EqualValues(t, 500, body["error"])
}

func TestTriviaFlow(t *testing.T) {
	r := newTestRouter(t, 19)

	w, body := request(t, r, http.MethodGet, "/categories", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{"Art", "Entertainment", "Geography", "History", "Science", "Sports"}, body["categories"])

	w, body = request(t, r, http.MethodGet, "/questions?page=4", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["questions"], 4)
	assert.EqualValues(t, 19, body["total_questions"])
	assert.Equal(t, []any{"Science", "Art", "Geography", "History", "Entertainment", "Sports"}, body["categories"])

	w, _ = request(t, r, http.MethodGet, "/questions?page=5", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, body = request(t, r, http.MethodPost, "/questions", `{"question":"Q?","answer":"A","difficulty":3,"category":"1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	created := body["created"]
	assert.EqualValues(t, 20, created)

	_, body = request(t, r, http.MethodGet, "/questions?page=4", "")
	assert.EqualValues(t, 20, body["total_questions"])
	assert.Len(t, body["questions"], 5)

	w, body = request(t, r, http.MethodPost, "/questions/search", `{"searchTerm":"NUMBER 1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	// 1, 10..19
	assert.EqualValues(t, 11, body["total_questions"])

	w, body = request(t, r, http.MethodGet, "/categories/0/questions", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, body["current_category"])
	for _, q := range body["questions"].([]any) {
		assert.Equal(t, "1", q.(map[string]any)["category"])
	}

	w, _ = request(t, r, http.MethodDelete, fmt.Sprintf("/questions/%v", created), "")
	assert.Equal(t, http.StatusOK, w.Code)
	w, body = request(t, r, http.MethodDelete, fmt.Sprintf("/questions/%v", created), "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "unprocessable", body["message"])

	w, body = request(t, r, http.MethodPost, "/quizzes", `{"quiz_category":{"type":"click","id":0},"previous_questions":[]}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotNil(t, body["question"])
}

func TestQuizExhaustsCategory(t *testing.T) {
	r := newTestRouter(t, 19)

	seen := map[float64]bool{}
	var previous []string
	for {
		payload := fmt.Sprintf(`{"quiz_category":{"type":"Art","id":1},"previous_questions":[%s]}`, strings.Join(previous, ","))
		w, body := request(t, r, http.MethodPost, "/quizzes", payload)
		require.Equal(t, http.StatusOK, w.Code)
		if body["question"] == nil {
			break
		}
		q := body["question"].(map[string]any)
		assert.Equal(t, "2", q["category"])
		id := q["id"].(float64)
		require.False(t, seen[id], "question %v repeated", id)
		seen[id] = true
		previous = append(previous, fmt.Sprint(id))
	}
	// questions with i%6+1 == 2 for i in 1..19: 1, 7, 13, 19
	assert.Len(t, seen, 4)
}

func TestEmptyQuestionListNotFound(t *testing.T) {
	r := newTestRouter(t, 0)
	w, body := request(t, r, http.MethodGet, "/questions", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, map[string]any{"success": false, "error": float64(404), "message": "resource not found"}, body)
}

func TestHugePageNotFound(t *testing.T) {
	r := newTestRouter(t, 7)
	for _, page := range []string{"1844674407370955163", "99999999999999999999"} {
		w, body := request(t, r, http.MethodGet, "/questions?page="+page, "")
		assert.Equal(t, http.StatusNotFound, w.Code, page)
		assert.Equal(t, "resource not found", body["message"], page)
	}
}

func TestPanicLoggedOnlyThroughZap(t *testing.T) {
	var stderr bytes.Buffer
	prev := gin.DefaultErrorWriter
	gin.DefaultErrorWriter = &stderr
	t.Cleanup(func() { gin.DefaultErrorWriter = prev })

	r := newTestRouter(t, 0)
	r.GET("/boom", func(*gin.Context) { panic("boom") })

	w, _ := request(t, r, http.MethodGet, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, stderr.String())
}
