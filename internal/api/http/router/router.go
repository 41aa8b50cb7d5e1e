package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/config"
	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/internal/api/http/handler"
	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/internal/api/http/middleware"
	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/internal/service/auth"
	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/internal/service/chat"
	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/internal/service/dashboard"
	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/internal/service/report"
	pasetotoken "github.com/ADITYATHUNGAK/Ai-For-Healthcare/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg          *config.Config
	Redis        *redis.Client
	AuthSvc      auth.Service
	ReportSvc    report.Service
	DashboardSvc dashboard.Service
	ChatSvc      chat.Service
	PasetoMgr    *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)

	authH := handler.NewAuthHandler(r.p.AuthSvc)
	reportH := handler.NewReportHandler(r.p.ReportSvc)
	dashboardH := handler.NewDashboardHandler(r.p.DashboardSvc)
	chatH := handler.NewChatHandler(r.p.ChatSvc)

	api := app.Group("/api/v1")

	r.registerAuthRoutes(api, authH, authRequired)
	r.registerReportRoutes(api, reportH)
	r.registerDashboardRoutes(api, dashboardH, authRequired)
	r.registerChatRoutes(api, chatH)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New())
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
