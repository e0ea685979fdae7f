package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/skillchain/skillchain-api/config"
	"github.com/skillchain/skillchain-api/database"
	_ "github.com/skillchain/skillchain-api/docs" // Swagger docs - auto-generated
	"github.com/skillchain/skillchain-api/internal/controller"
	"github.com/skillchain/skillchain-api/internal/logger"
	"github.com/skillchain/skillchain-api/internal/model"
	"github.com/skillchain/skillchain-api/internal/repository"
	"github.com/skillchain/skillchain-api/internal/service"
	"github.com/skillchain/skillchain-api/internal/solana"
)

// @title SkillChain API
// @version 1.0
// @description Crypto-paid AI skill testing platform on Solana. Pay in SOL, take an AI-generated test, earn certificates and rewards.
// @contact.name API Support
// @contact.email support@skillchain.app
// @host localhost:8080
// @BasePath /api
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // *gorm.DB
			NewGinEngine,
		),

		// Repositories
		fx.Provide(
			repository.NewPaymentRecordRepository,
			repository.NewTestRepository,
			repository.NewTestResultRepository,
			repository.NewCertificateRepository,
			repository.NewUserStatsRepository,
		),

		// External collaborators
		fx.Provide(
			solana.NewClient,
			service.NewGeminiQuestionGenerator,
			service.NewDevnetMinter,
		),

		// Services
		fx.Provide(
			service.NewPaymentVerifier,
			service.NewTestGenerationService,
			service.NewScoringService,
		),

		// API controller
		fx.Provide(
			controller.NewController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
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
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("SkillChain API server starting on port %s", cfg.Server.Port)
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
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.PaymentRecord{},
		&model.Test{},
		&model.Question{},
		&model.TestResult{},
		&model.Certificate{},
		&model.UserStats{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
