package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/assessflow/config"
	"github.com/lshigami/assessflow/database"
	"github.com/lshigami/assessflow/docs"
	"github.com/lshigami/assessflow/internal/auth"
	"github.com/lshigami/assessflow/internal/cache"
	adminctrl "github.com/lshigami/assessflow/internal/controller/admin"
	userctrl "github.com/lshigami/assessflow/internal/controller/user"
	"github.com/lshigami/assessflow/internal/events"
	"github.com/lshigami/assessflow/internal/logger"
	"github.com/lshigami/assessflow/internal/model"
	"github.com/lshigami/assessflow/internal/repository"
	"github.com/lshigami/assessflow/internal/server"
	"github.com/lshigami/assessflow/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Gradebook API
// @version 1.0
// @description Assessments, questions and recorded attempts.
// @host localhost:8081
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	logger.Init(cfg.Log.Level, cfg.Log.Pretty)

	app := fx.New(
		fx.Supply(cfg),
		fx.Provide(
			database.NewDatabase,
			func(cfg *config.Config) *gin.Engine {
				return server.NewGinEngine(cfg, docs.SwaggerInfogradebook.InstanceName())
			},
			auth.NewAuthenticator,
			cache.NewRedisClient,
			cache.NewQuestionCache,
			events.NewPublisher,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewAssessmentRepository,
			repository.NewQuestionRepository,
			repository.NewSubmissionRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewAssessmentService,
			service.NewAdminAssessmentService,
			service.NewSubmissionService,
		),

		// API Controllers Layer
		fx.Provide(
			adminctrl.NewAdminAssessmentController,
			userctrl.NewUserAssessmentController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(CloseOnStop),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
	if err := app.Stop(context.Background()); err != nil {
		log.Error().Err(err).Msg("Shutdown failed")
	}
}

func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authn *auth.Authenticator,
	adminCtrl *adminctrl.AdminAssessmentController,
	userCtrl *userctrl.UserAssessmentController,
) {
	adminCtrl.RegisterRoutes(router, authn)
	userCtrl.RegisterRoutes(router, authn)
	server.Start(lc, router, cfg, "gradebook")
}

// CloseOnStop releases the broker and cache connections.
func CloseOnStop(lc fx.Lifecycle, publisher events.Publisher, rdb *redis.Client) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if err := publisher.Close(); err != nil {
				log.Warn().Err(err).Msg("Failed to close event publisher")
			}
			if rdb != nil {
				return rdb.Close()
			}
			return nil
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Assessment{},
		&model.Question{},
		&model.Submission{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
