package main

import (
	"os"

	"github.com/vibe-gaming/verify/internal/config"
	"github.com/vibe-gaming/verify/internal/queue/asynqserver"
	"github.com/vibe-gaming/verify/internal/worker"
	"github.com/vibe-gaming/verify/pkg/email/smtp"
	"github.com/vibe-gaming/verify/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	cfg := config.MustLoad()

	logger.SetupLogger(cfg.Env, cfg.LogLevel)
	defer logger.Sync()

	emailSender, err := smtp.NewSMTPSender(cfg.SMTP.From, cfg.SMTP.FromName, cfg.SMTP.Pass, cfg.SMTP.Host, cfg.SMTP.Port)
	if err != nil {
		logger.Error("smtp sender creation failed", zap.Error(err))
		os.Exit(1)
	}

	workers := worker.NewWorkers(worker.Deps{
		EmailProvider: emailSender,
		Config:        cfg,
	})

	srv, mux := asynqserver.New(cfg.Cache, workers)

	logger.Info("mail worker started")

	// Run blocks until SIGTERM or SIGINT.
	if err := srv.Run(mux); err != nil {
		logger.Error("asynq server stopped with error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("mail worker stopped")
}
