// file: internals/features/users/auth/route/auth_route.go
package route

import (
	controller "fitzone_backend/internals/features/users/auth/controller"
	rateLimiter "fitzone_backend/internals/middlewares"
	authMiddleware "fitzone_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	// ==========================
	// PUBLIC
	// Base: /api/auth
	// ==========================
	baseAuth := app.Group("/api/auth")

	// 🔓 Public: login & self-registration (always customer role)
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)

	// ==========================
	// PROTECTED
	// Base: /api/auth
	// ==========================
	protectedAuth := app.Group("/api/auth", authMiddleware.AuthMiddleware(db))

	protectedAuth.Post("/logout", authController.Logout)
	protectedAuth.Get("/me", authController.Me)
}
