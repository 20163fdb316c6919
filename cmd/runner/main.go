package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/assessflow/config"
	"github.com/lshigami/assessflow/docs"
	"github.com/lshigami/assessflow/internal/auth"
	runnerctrl "github.com/lshigami/assessflow/internal/controller/runner"
	"github.com/lshigami/assessflow/internal/gradebook"
	"github.com/lshigami/assessflow/internal/logger"
	"github.com/lshigami/assessflow/internal/server"
	"github.com/lshigami/assessflow/internal/service"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
)

// @title Assessment Runner API
// @version 1.0
// @description Timed assessment flow: launcher, instructions, active quiz and results.
// @host localhost:8080
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
			func(cfg *config.Config) *gin.Engine {
				return server.NewGinEngine(cfg, docs.SwaggerInforunner.InstanceName())
			},
			auth.NewAuthenticator,
		),

		// Gradebook collaborator
		fx.Provide(
			gradebook.NewClient,
			service.NewGradebookAPI,
			service.NewGradebookCollaborator,
		),

		fx.Provide(
			service.NewFlowService,
			runnerctrl.NewFlowController,
		),

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
	flows service.FlowService,
	flowCtrl *runnerctrl.FlowController,
) {
	flowCtrl.RegisterRoutes(router)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			flows.Shutdown()
			return nil
		},
	})
	server.Start(lc, router, cfg, "runner")
}
