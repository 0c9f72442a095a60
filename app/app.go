// Package app builds the Fiber application: services, middleware and routes.
package app

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/minibank/ledger/config"
	authsvc "github.com/minibank/ledger/pkg/service/auth"
	registrysvc "github.com/minibank/ledger/pkg/service/registry"
	transfersvc "github.com/minibank/ledger/pkg/service/transfer"
	authapi "github.com/minibank/ledger/webapi/auth"
	clientapi "github.com/minibank/ledger/webapi/client"
	"github.com/minibank/ledger/webapi/common"
	transferapi "github.com/minibank/ledger/webapi/transfer"
)

// New builds all request-facing services and returns the Fiber app. The
// interest scheduler is not part of the app; cmd/server owns its goroutine.
func New(deps config.Deps) *fiber.App {
	registrySvc := registrysvc.New(deps.Uow, deps.Logger)
	transferSvc := transfersvc.New(deps.Uow, deps.Logger)
	authSvc := authsvc.New(deps.Uow, deps.Config.Jwt, deps.Logger)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ProblemDetailsJSON(c, fiber.StatusInternalServerError, "Internal Server Error", err.Error())
		},
	})

	app.Use(limiter.New(limiter.Config{
		Max:        deps.Config.RateLimit.MaxRequests,
		Expiration: deps.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			// Honor proxy headers so the limit applies per caller, not per
			// load balancer.
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(c, fiber.StatusTooManyRequests, "Too Many Requests", "rate limit exceeded")
		},
	}))
	app.Use(recover.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Ledger is up")
	})

	clientapi.Routes(app, registrySvc, deps.Config)
	transferapi.Routes(app, transferSvc, deps.Config)
	authapi.Routes(app, authSvc)
	return app
}
