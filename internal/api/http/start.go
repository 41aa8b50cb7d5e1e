package http

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"

	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/config"
	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/internal/api/http/router"
	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/internal/app"
)

func Start(cfg *config.Config, timeout time.Duration) {
	fx.New(
		fx.Supply(cfg),
		app.InfraModule,
		app.ServiceModule,
		router.Module,
		Module,

		// Invoking *fiber.App forces its construction, which registers the
		// OnStart hook that actually listens.
		fx.Invoke(func(*fiber.App) {}),

		fx.StopTimeout(timeout),
	).Run()
}
