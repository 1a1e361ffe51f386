package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"hr-payroll/config"
	"hr-payroll/internal/routes"
	"hr-payroll/internal/usecase"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	config.NewLogger(cfg.LogLevel, os.Stdout)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}

	auth, err := usecase.NewAuthUsecase(cfg.HRUsername, cfg.HRPassword, cfg.SessionSecret, time.Duration(cfg.SessionHours)*time.Hour)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to prepare HR credentials")
	}

	app := routes.NewApp(db, auth, routes.Options{
		StaticDir: cfg.StaticDir,
		AccessLog: true,
		AppName:   "hr-payroll",
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info().Msg("shutting down")
		if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}()

	log.Info().Str("addr", cfg.Addr).Msg("server ready")
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
