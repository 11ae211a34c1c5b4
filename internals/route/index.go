// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	routeDetails "fitzone_backend/internals/route/details"

	authMiddleware "fitzone_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== AUTH BASE =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== WEBHOOK (PUBLIC) =====================
	// The payment gateway cannot carry our JWT; this path is also on the
	// auth middleware skip list.
	log.Println("[INFO] Setting up Membership webhook route...")
	routeDetails.MembershipWebhookRoutes(app, db)

	// ===================== GROUPS =====================

	// PRIVATE (USER) → any authenticated member
	log.Println("[INFO] Setting up PRIVATE (user) group...")
	user := app.Group("/api/u", authMiddleware.AuthMiddleware(db))

	// ADMIN → staff surfaces; per-route role checks sit on each subgroup
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a", authMiddleware.AuthMiddleware(db))

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Class routes...")
	routeDetails.ClassUserRoutes(user, db)
	routeDetails.ClassAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Booking routes...")
	routeDetails.BookingUserRoutes(user, db)
	routeDetails.BookingAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Membership routes...")
	routeDetails.MembershipUserRoutes(user, db)

	log.Println("[INFO] Mounting User routes...")
	routeDetails.UserAdminRoutes(admin, db)
}
