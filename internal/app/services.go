package app

import (
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/config"
	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/internal/service/auth"
	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/internal/service/chat"
	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/internal/service/dashboard"
	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/internal/service/report"
	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/internal/store"
	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/pkg/email"
	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/pkg/gemini"
	pasetotoken "github.com/ADITYATHUNGAK/Ai-For-Healthcare/pkg/paseto"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAuthService,
		ProvideReportService,
		ProvideDashboardService,
		ProvideChatService,
		ProvidePasetoManager,
	),
)

func ProvideAuthService(
	db *store.Store,
	rdb *redis.Client,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
	log *slog.Logger,
) auth.Service {
	return auth.New(db, rdb, paseto, cfg, log)
}

func ProvideReportService(db *store.Store, mail *email.Client, log *slog.Logger) report.Service {
	return report.New(db, mail, log)
}

func ProvideDashboardService(db *store.Store) dashboard.Service {
	return dashboard.New(db)
}

func ProvideChatService(rdb *redis.Client, model *gemini.Client, cfg *config.Config, log *slog.Logger) chat.Service {
	history := chat.NewRedisHistory(rdb, cfg)
	return chat.New(history, model, log)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
