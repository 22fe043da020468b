package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apiHttp "github.com/grab-simulator/backend/internal/api/http"
	"github.com/grab-simulator/backend/internal/cache"
	"github.com/grab-simulator/backend/internal/config"
	"github.com/grab-simulator/backend/internal/db"
	"github.com/grab-simulator/backend/internal/domain"
	"github.com/grab-simulator/backend/internal/queue/asynqserver"
	queueClient "github.com/grab-simulator/backend/internal/queue/client"
	"github.com/grab-simulator/backend/internal/repository"
	"github.com/grab-simulator/backend/internal/server"
	"github.com/grab-simulator/backend/internal/service"
	"github.com/grab-simulator/backend/internal/worker"
	"github.com/grab-simulator/backend/pkg/auth"
	emailProvider "github.com/grab-simulator/backend/pkg/email"
	"github.com/grab-simulator/backend/pkg/email/console"
	"github.com/grab-simulator/backend/pkg/email/sendgrid"
	"github.com/grab-simulator/backend/pkg/email/smtp"
	"github.com/grab-simulator/backend/pkg/hash"
	"github.com/grab-simulator/backend/pkg/logger"
	"github.com/grab-simulator/backend/pkg/otp"

	"github.com/bwmarrin/snowflake"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	emailProviderSMTP     = "smtp"
	emailProviderSendGrid = "sendgrid"
	emailProviderConsole  = "console"
)

func main() {
	// Init cfg from environment variables
	cfg := config.MustLoad()

	// Dependencies
	appLogger, err := logger.SetupLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger setup failed: %s\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger.Info("starting backend api", zap.String("env", cfg.Env))
	appLogger.Debug("debug messages are enabled")

	// Init database
	dbMySQL, err := db.New(cfg.Database)
	if err != nil {
		appLogger.Fatal("mysql connect problem", zap.Error(err))
	}
	defer func() {
		err = dbMySQL.Close()
		if err != nil {
			appLogger.Error("error when closing", zap.Error(err))
		}
	}()
	appLogger.Info("mysql connection done")

	if cfg.Database.AutoMigrate {
		if err := db.Migrate(context.Background(), dbMySQL); err != nil {
			appLogger.Fatal("mysql migration failed", zap.Error(err))
		}
		appLogger.Info("mysql migration done")
	}

	// Init redis when something needs it
	var redisClient redis.UniversalClient
	if cfg.Auth.Lock.Provider == cache.LockProviderRedis || cfg.Email.Async {
		redisClient, err = cache.NewRedis(cfg.Cache)
		if err != nil {
			appLogger.Fatal("redis connect problem", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				appLogger.Error("error when closing redis", zap.Error(err))
			}
		}()
		appLogger.Info("redis connection done")
	}

	var locker cache.Locker
	switch cfg.Auth.Lock.Provider {
	case cache.LockProviderRedis:
		locker = cache.NewRedisLocker(redisClient, cfg.Auth.Lock.TTL, cfg.Auth.Lock.Wait)
	case cache.LockProviderLocal:
		locker = cache.NewLocalLocker(cfg.Auth.Lock.Wait)
	default:
		appLogger.Fatal("unknown lock provider", zap.String("provider", cfg.Auth.Lock.Provider))
	}

	idNode, err := snowflake.NewNode(cfg.Snowflake.NodeID)
	if err != nil {
		appLogger.Fatal("snowflake node creation failed", zap.Error(err))
	}

	leaderboardMetric, err := domain.ParseLeaderboardMetric(cfg.Leaderboard.Metric)
	if err != nil {
		appLogger.Fatal("leaderboard metric is invalid", zap.Error(err))
	}

	hasher := hash.NewHMACHasher(cfg.Auth.CodeSalt)

	emailSender, err := newEmailSender(cfg)
	if err != nil {
		appLogger.Fatal("email sender creation failed", zap.Error(err))
	}

	tokenManager, err := auth.NewManager(cfg.Auth.JWT)
	if err != nil {
		appLogger.Fatal("auth manager creation err", zap.Error(err))
	}

	otpGenerator := otp.NewGOTPGenerator()

	workers := worker.NewWorkers(worker.Deps{
		EmailProvider: emailSender,
		Config:        cfg,
	})

	// Queue
	var asynqSrv *asynq.Server
	if cfg.Email.Async {
		asynqClient := asynq.NewClient(asynqserver.RedisOptions(cfg.Cache))
		defer asynqClient.Close()
		restore := queueClient.SetClient(asynqClient)
		defer restore()

		srv, mux := asynqserver.New(cfg.Cache, workers)
		if err := srv.Start(mux); err != nil {
			appLogger.Fatal("asynq server start failed", zap.Error(err))
		}
		asynqSrv = srv
		appLogger.Info("asynq server started")
	}

	// Services, Repos & API Handlers
	repos := repository.NewRepositories(dbMySQL)
	services := service.NewServices(service.Deps{
		Config:            cfg,
		Hasher:            hasher,
		TokenManager:      tokenManager,
		OtpGenerator:      otpGenerator,
		Locker:            locker,
		IDNode:            idNode,
		LeaderboardMetric: leaderboardMetric,
		Workers:           workers,
		Repos:             repos,
	})
	handlers := apiHttp.NewHandlers(services, tokenManager, cfg)

	// HTTP Server
	srv := server.NewServer(cfg, handlers.Init(cfg))
	go func() {
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("error occurred while running http server", zap.Error(err))
		}
	}()
	appLogger.Info("server started", zap.String("addr", srv.Addr()))

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

	if asynqSrv != nil {
		asynqSrv.Shutdown()
	}

	appLogger.Info("app stopped")
}

func newEmailSender(cfg *config.Config) (emailProvider.Sender, error) {
	switch cfg.Email.Provider {
	case emailProviderSMTP:
		return smtp.NewSMTPSender(cfg.SMTP.From, cfg.Email.FromName, cfg.SMTP.Pass, cfg.SMTP.Host, cfg.SMTP.Port)
	case emailProviderSendGrid:
		return sendgrid.NewSender(cfg.SendGrid.APIKey, cfg.SendGrid.From, cfg.Email.FromName, cfg.SendGrid.Sandbox)
	case emailProviderConsole:
		return console.NewSender(), nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.Email.Provider)
	}
}
