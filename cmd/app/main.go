package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	apiHttp "github.com/vibe-gaming/verify/internal/api/http"
	"github.com/vibe-gaming/verify/internal/cache"
	"github.com/vibe-gaming/verify/internal/config"
	"github.com/vibe-gaming/verify/internal/db"
	queueClient "github.com/vibe-gaming/verify/internal/queue/client"
	"github.com/vibe-gaming/verify/internal/repository"
	"github.com/vibe-gaming/verify/internal/server"
	"github.com/vibe-gaming/verify/internal/service"
	"github.com/vibe-gaming/verify/internal/worker"
	"github.com/vibe-gaming/verify/pkg/email/smtp"
	"github.com/vibe-gaming/verify/pkg/hash"
	"github.com/vibe-gaming/verify/pkg/logger"
	"github.com/vibe-gaming/verify/pkg/otp"
	"go.uber.org/zap"
)

func main() {
	// Init cfg from environment variables
	cfg := config.MustLoad()

	logger.SetupLogger(cfg.Env, cfg.LogLevel)
	defer logger.Sync()

	logger.Info("starting verification api", zap.String("env", cfg.Env))
	logger.Debug("debug messages are enabled")

	// Init database
	dbMySQL, err := db.New(cfg.Database)
	if err != nil {
		logger.Error("mysql connect problem", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		err = dbMySQL.Close()
		if err != nil {
			logger.Error("error when closing", zap.Error(err))
		}
	}()
	logger.Info("mysql connection done")

	emailSender, err := smtp.NewSMTPSender(cfg.SMTP.From, cfg.SMTP.FromName, cfg.SMTP.Pass, cfg.SMTP.Host, cfg.SMTP.Port)
	if err != nil {
		logger.Error("smtp sender creation failed", zap.Error(err))
		return
	}

	workers := worker.NewWorkers(worker.Deps{
		EmailProvider: emailSender,
		Config:        cfg,
	})

	var mailer service.CodeMailer = workers.EmailSender
	if cfg.Email.Async {
		redisClient, err := cache.NewRedis(cfg.Cache)
		if err != nil {
			logger.Error("redis connect problem", zap.Error(err))
			return
		}
		asynqClient := asynq.NewClientFromRedisClient(redisClient)
		defer asynqClient.Close()

		queueClient.SetClient(asynqClient)
		mailer = queueClient.NewMailer()
		logger.Info("verification emails are delivered through the queue")
	}

	// Services, Repos & API Handlers
	repos := repository.NewRepositories(dbMySQL)
	services := service.NewServices(service.Deps{
		Config:       cfg,
		Hasher:       hash.NewBcryptHasher(cfg.Auth.BcryptCost),
		OtpGenerator: otp.NewRandGenerator(),
		Mailer:       mailer,
		Repos:        repos,
	})
	handlers := apiHttp.NewHandlers(services, cfg)

	// HTTP Server
	srv := server.NewServer(cfg, handlers.Init(cfg))
	go func() {
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("error occurred while running http server", zap.Error(err))
		}
	}()
	logger.Info("server started", zap.String("port", cfg.HttpServer.Port))

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	const timeout = 5 * time.Second

	ctx, shutdown := context.WithTimeout(context.Background(), timeout)
	defer shutdown()

	if err := srv.Stop(ctx); err != nil {
		logger.Error("failed to stop server", zap.Error(err))
	}

	logger.Info("app stopped")
}
