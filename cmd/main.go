package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/trivia/config"
	"github.com/lshigami/trivia/database"
	_ "github.com/lshigami/trivia/docs" // Swagger docs - auto-generated
	"github.com/lshigami/trivia/internal/controller"
	"github.com/lshigami/trivia/internal/logger"
	"github.com/lshigami/trivia/internal/random"
	"github.com/lshigami/trivia/internal/repository"
	"github.com/lshigami/trivia/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

// @title Trivia API
// @version 1.0
// @description Trivia questions and categories with pagination, search and random quiz play.
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	app := fx.New(
		// Core Application Components
		fx.Provide(
			NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			random.NewSource,
			NewGinEngine,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewCategoryRepository,
			repository.NewQuestionRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewCategoryService,
			service.NewQuestionService,
			service.NewQuizService,
		),

		// API Controllers Layer
		fx.Provide(controller.NewController),

		fx.Invoke(SeedCategories),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	// Wait for a shutdown signal
	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Failed to stop application cleanly")
	}
}

// NewConfig loads config and initializes the global logger from it.
func NewConfig() (*config.Config, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}
	logger.Init(cfg.Log.Level, cfg.Log.Pretty)
	return cfg, nil
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.GinMode)

	r := gin.New()

	r.Use(controller.RequestID())
	r.Use(controller.RequestLogger())
	r.Use(controller.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length", controller.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))

	// Swagger UI
	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func SeedCategories(cfg *config.Config, categorySvc service.CategoryService) error {
	if !cfg.SeedCategories {
		return nil
	}
	_, err := categorySvc.SeedDefaults()
	return err
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	ctrl *controller.Controller,
) {
	ctrl.RegisterRoutes(router)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Trivia API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}
