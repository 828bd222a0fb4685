package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	apiHttp "github.com/genaicorelab/iam-backend/internal/api/http"
	"github.com/genaicorelab/iam-backend/internal/cache"
	"github.com/genaicorelab/iam-backend/internal/config"
	"github.com/genaicorelab/iam-backend/internal/db"
	"github.com/genaicorelab/iam-backend/internal/queue/asynqserver"
	"github.com/genaicorelab/iam-backend/internal/queue/client"
	"github.com/genaicorelab/iam-backend/internal/queue/processor"
	"github.com/genaicorelab/iam-backend/internal/queue/task"
	"github.com/genaicorelab/iam-backend/internal/repository"
	"github.com/genaicorelab/iam-backend/internal/server"
	"github.com/genaicorelab/iam-backend/internal/service"
	"github.com/genaicorelab/iam-backend/internal/worker"
	"github.com/genaicorelab/iam-backend/pkg/auth"
	"github.com/genaicorelab/iam-backend/pkg/email/smtp"
	"github.com/genaicorelab/iam-backend/pkg/hash"
	"github.com/genaicorelab/iam-backend/pkg/logger"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	// Init cfg from environment variables
	cfg := config.MustLoad()

	appLogger, err := logger.SetupLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("starting iam backend", zap.String("env", cfg.Env), zap.String("db_driver", cfg.Database.Driver))
	appLogger.Debug("debug messages are enabled")

	// Init database
	conn, err := db.New(cfg.Database)
	if err != nil {
		appLogger.Fatal("database connect problem", zap.Error(err))
	}
	defer func() {
		if err := conn.Close(); err != nil {
			appLogger.Error("error when closing", zap.Error(err))
		}
	}()
	appLogger.Info("database connection done")

	if cfg.Database.AutoMigrate {
		if err := db.Migrate(context.Background(), conn); err != nil {
			appLogger.Fatal("database migrate failed", zap.Error(err))
		}
		appLogger.Info("database schema is up to date")
	}

	hasher := hash.NewBcryptHasher(cfg.Auth.BcryptCost)

	tokenManager, err := auth.NewManager(cfg.Auth.JWT)
	if err != nil {
		appLogger.Fatal("auth manager creation err", zap.Error(err))
	}

	deps := service.Deps{
		Logger:       appLogger,
		Config:       cfg,
		Hasher:       hasher,
		TokenManager: tokenManager,
		Repos:        repository.NewRepositories(conn),
	}

	var queueServer *asynq.Server
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedis(cfg.Cache)
		if err != nil {
			appLogger.Fatal("redis connect problem", zap.Error(err))
		}
		defer redisClient.Close()
		deps.Cache = cache.NewRedisCache(redisClient)
		appLogger.Info("redis connection done")

		if cfg.Email.Enabled {
			queueClient := client.New(cfg.Cache)
			defer queueClient.Close()
			deps.Notifier = service.NewQueueNotifier(queueClient)

			queueServer = startMailQueue(cfg, appLogger)
		}
	}

	// Services, Repos & API Handlers
	services := service.NewServices(deps)
	handlers := apiHttp.NewHandlers(services, cfg, appLogger)

	// HTTP Server
	srv := server.NewServer(cfg.HttpServer, handlers.Init(cfg))
	go func() {
		if err := srv.Run(); err != nil {
			appLogger.Fatal("error occurred while running http server", zap.Error(err))
		}
	}()
	appLogger.Info("server started", zap.String("port", cfg.HttpServer.Port))

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	const timeout = 5 * time.Second

	ctx, shutdown := context.WithTimeout(context.Background(), timeout)
	defer shutdown()

	if err := srv.Stop(ctx); err != nil {
		appLogger.Error("failed to stop server", zap.Error(err))
	}

	if queueServer != nil {
		queueServer.Shutdown()
	}

	appLogger.Info("app stopped")
}

func startMailQueue(cfg *config.Config, appLogger *zap.Logger) *asynq.Server {
	emailSender, err := smtp.NewSMTPSender(cfg.SMTP.From, cfg.SMTP.Pass, cfg.SMTP.Host, cfg.SMTP.Port)
	if err != nil {
		appLogger.Fatal("smtp sender creation failed", zap.Error(err))
	}

	workers := worker.NewWorkers(worker.Deps{
		Logger:        appLogger,
		EmailProvider: emailSender,
		Config:        cfg,
	})

	mux := asynq.NewServeMux()
	mux.Handle(task.SendWelcomeEmailTaskName, processor.NewSendWelcomeEmailProcessor(workers))

	queueServer := asynqserver.New(cfg.Cache, map[string]int{task.SendEmailQueueName: 1})
	if err := queueServer.Start(mux); err != nil {
		appLogger.Fatal("mail queue start failed", zap.Error(err))
	}
	appLogger.Info("mail queue started")

	return queueServer
}
