package app

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/config"
	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/internal/store"
	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/pkg/database"
	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/pkg/email"
	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/pkg/gemini"
	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/pkg/logs"
	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/pkg/observability"
	redispkg "github.com/ADITYATHUNGAK/Ai-For-Healthcare/pkg/redis"
)

// InfraModule provides all infrastructure dependencies.
var InfraModule = fx.Module("infra",
	fx.Provide(ProvideLogger),
	fx.Provide(ProvideDB),
	fx.Provide(ProvideStore),
	fx.Provide(ProvideRedis),
	fx.Provide(ProvideEmailClient),
	fx.Provide(ProvideAssistantClient),
	fx.Provide(ProvideOTel),
)

func ProvideLogger(cfg *config.Config) *slog.Logger {
	logger := logs.New(cfg)
	slog.SetDefault(logger)
	return logger
}

func ProvideDB(lc fx.Lifecycle, cfg *config.Config) (*gorm.DB, error) {
	db, err := database.NewFromCentral(cfg.Database)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing main database connection")
			return database.Close(db)
		},
	})
	return db, nil
}

func ProvideStore(db *gorm.DB) *store.Store {
	return store.New(db)
}

func ProvideRedis(lc fx.Lifecycle, cfg *config.Config) (*redis.Client, error) {
	rdb, err := redispkg.NewRedisFromCentral(cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing Redis connection")
			return rdb.Close()
		},
	})
	return rdb, nil
}

func ProvideEmailClient(cfg *config.Config) (*email.Client, error) {
	return email.NewFromCentral(cfg.Email)
}

func ProvideAssistantClient(cfg *config.Config) *gemini.Client {
	return gemini.NewFromConfig(cfg.Assistant)
}

func ProvideOTel(lc fx.Lifecycle, cfg *config.Config) (*observability.Provider, error) {
	if !cfg.Observability.Enabled {
		return nil, nil
	}
	provider, err := observability.InitTelemetry(context.Background(), observability.FromCentralConfig(cfg))
	if err != nil {
		return nil, err
	}
	slog.Info("observability initialized",
		"tracing", cfg.Observability.Tracing.Enabled,
		"metrics", cfg.Observability.Metrics.Enabled,
	)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("shutting down observability providers")
			return provider.Shutdown(ctx)
		},
	})
	return provider, nil
}
