package router

import (
	"trivia-api/internal/handlers"
	"trivia-api/internal/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Deps struct {
	Categories *handlers.CategoryHandler
	Questions  *handlers.QuestionHandler
	Quizzes    *handlers.QuizHandler
	Logger     *zap.Logger
	// Swagger mounts the API docs at /swagger/*any.
	Swagger bool
}

func New(d Deps) *gin.Engine {
	log := d.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(log))
	r.Use(middleware.Recovery(log, func(status int) any { return handlers.NewErrorResponse(status) }))
	r.Use(middleware.CORS()...)

	r.NoRoute(handlers.NotFound)
	r.NoMethod(handlers.MethodNotAllowed)

	if d.Swagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.GET("/categories", d.Categories.ListCategories)
	r.GET("/categories/:id/questions", d.Categories.ListCategoryQuestions)

	r.GET("/questions", d.Questions.ListQuestions)
	r.POST("/questions", d.Questions.CreateQuestion)
	r.POST("/questions/search", d.Questions.SearchQuestions)
	r.DELETE("/questions/:id", d.Questions.DeleteQuestion)

	r.POST("/quizzes", d.Quizzes.PlayQuiz)

	return r
}
