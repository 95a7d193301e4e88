package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	"car_subscriptions/internal/config"
	"car_subscriptions/internal/gateways/carapi"
	httpGateway "car_subscriptions/internal/gateways/http"
	mongoRepository "car_subscriptions/internal/repository/subscription/mongo"
	pgRepository "car_subscriptions/internal/repository/subscription/postgres"
	"car_subscriptions/internal/usecase"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	log := setupLogger(cfg.Env)

	log.Info("starting car subscriptions", slog.String("env", cfg.Env), slog.String("storage", cfg.Storage.Driver))
	log.Debug("debug messages are enabled")

	repo, closeRepo, err := setupRepository(ctx, cfg, log)
	if err != nil {
		log.Error("failed to init storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeRepo()

	if cfg.Gateway.URL == "" {
		log.Warn("admin gateway url is empty, car availability pushes will fail")
	}
	cars := carapi.NewClient(carapi.Config{
		BaseURL:    cfg.Gateway.URL,
		Email:      cfg.Gateway.Email,
		Password:   cfg.Gateway.Password,
		AuthCookie: cfg.Gateway.AuthCookie,
		Timeout:    cfg.Gateway.Timeout,
	}, log)

	useCases := httpGateway.UseCases{
		Sub:  usecase.NewSubscription(repo),
		Cars: usecase.NewCarAvailability(cars, log),
	}

	server := httpGateway.New(useCases,
		*cfg,
		log,
		httpGateway.WithHost(cfg.Server.Host),
		httpGateway.WithPort(uint16(cfg.Server.Port)),
		httpGateway.WithTimeout(cfg.Server.Timeout),
	)

	if err := server.Run(ctx); err != nil {
		log.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func setupRepository(ctx context.Context, cfg *config.Config, log *slog.Logger) (usecase.SubscriptionRepository, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverMongo:
		client, err := mongoRepository.Connect(ctx, mongoRepository.Config{
			URL:            cfg.Mongo.URL,
			Database:       cfg.Mongo.Database,
			ConnectTimeout: cfg.Mongo.ConnectTimeout,
			RetryAttempts:  cfg.Mongo.RetryAttempts,
			RetryInterval:  cfg.Mongo.RetryInterval,
		})
		if err != nil {
			return nil, nil, err
		}
		repo := mongoRepository.NewSubRepository(client.Database(cfg.Mongo.Database))
		if err := repo.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, err
		}
		log.Debug("init mongo", slog.String("database", cfg.Mongo.Database))
		return repo, func() { _ = client.Disconnect(context.Background()) }, nil

	default:
		dsn := cfg.Pg.DSN()
		if cfg.Pg.AutoMigrate {
			src := "file://" + filepath.ToSlash(cfg.Pg.MigrationsPath)
			if err := pgRepository.Migrate(dsn, src); err != nil {
				return nil, nil, err
			}
			log.Debug("migrations applied", slog.String("source", src))
		}
		pool, err := pgxpool.New(ctx, dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("create pool: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("ping postgres: %w", err)
		}
		log.Debug("init postgres", slog.String("host", cfg.Pg.Host), slog.String("db", cfg.Pg.Db))
		return pgRepository.NewSubRepository(pool), pool.Close, nil
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger
	switch strings.ToLower(env) {
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return log
}
