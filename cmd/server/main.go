package main

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Sulav-subedi/BNKS-Student-voice/internal/router"
	"github.com/Sulav-subedi/BNKS-Student-voice/pkg/config"
	"github.com/Sulav-subedi/BNKS-Student-voice/validators"
)

func main() {
	cfg := config.Load()

	logger, err := newLogger(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	client, err := config.InitDB(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer config.CloseDB(client, logger)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validators.NewValidator()

	router.SetupMiddleware(e, cfg)
	router.SetupRoutes(e, client.Database(cfg.DBName), cfg, logger)

	logger.Info("starting server", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
	if err := e.Start(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
