// file: internals/features/memberships/memberships/route/membership_route.go
package route

import (
	"fitzone_backend/internals/constants"
	controller "fitzone_backend/internals/features/memberships/memberships/controller"
	authMiddleware "fitzone_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// MembershipUserRoutes: plan catalog, the caller's membership state, and
// checkout. Base: /api/u
func MembershipUserRoutes(user fiber.Router, db *gorm.DB) {
	membershipController := controller.NewMembershipController(db)

	memberships := user.Group("/memberships")
	memberships.Get("/plans", membershipController.ListPlans)
	memberships.Get("/me", membershipController.GetMyMembership)
	memberships.Get("/history", membershipController.GetMyHistory)

	// purchasing a plan is a customer action; staff accounts have no
	// membership to buy
	memberships.Post("/checkout",
		authMiddleware.OnlyRoles(constants.RoleErrorCustomer("membership checkout"), constants.CustomerOnly...),
		membershipController.Checkout)
}

// MembershipWebhookRoutes: the payment gateway callback. Mounted outside
// the auth groups; the auth middleware also skips this path explicitly.
func MembershipWebhookRoutes(app *fiber.App, db *gorm.DB) {
	membershipController := controller.NewMembershipController(db)

	app.Post("/api/memberships/notification", membershipController.HandlePaymentNotification)
}
