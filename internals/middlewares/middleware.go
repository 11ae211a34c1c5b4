package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"fitzone_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the base middleware chain. Order matters:
// recovery must wrap everything, the limiter should see raw traffic
// before any handler work happens.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
