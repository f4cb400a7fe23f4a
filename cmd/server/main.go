package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/handlers"
	"trivia-api/internal/logger"
	"trivia-api/internal/router"
	"trivia-api/internal/services"

	_ "trivia-api/docs"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title           Trivia API
// @version         1.0
// @description     Categories, paginated and searchable questions, and a play-quiz endpoint.
// @host            localhost:8080
// @BasePath        /

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if !cfg.EnvFileLoaded {
		log.Info("no .env file found, using process environment")
	}

	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.AutoMigrate(db, log); err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}

	var seed *database.SeedData
	if cfg.SeedFile != "" {
		if seed, err = database.LoadSeedFile(cfg.SeedFile); err != nil {
			log.Fatal("failed to load seed file", zap.Error(err))
		}
	}
	if err := database.Seed(db, seed, log); err != nil {
		log.Fatal("failed to seed database", zap.Error(err))
	}

	triviaService := services.NewTriviaService(db)
	quizService := services.NewQuizService(triviaService)

	r := router.New(router.Deps{
		Categories: handlers.NewCategoryHandler(triviaService),
		Questions:  handlers.NewQuestionHandler(triviaService),
		Quizzes:    handlers.NewQuizHandler(quizService),
		Logger:     log,
		Swagger:    true,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown", zap.Error(err))
	}
	if err := database.Close(db); err != nil {
		log.Error("close database", zap.Error(err))
	}
}
