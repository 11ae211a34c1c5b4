package details

import (
	membershipRoute "fitzone_backend/internals/features/memberships/memberships/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func MembershipUserRoutes(user fiber.Router, db *gorm.DB) {
	membershipRoute.MembershipUserRoutes(user, db)
}

func MembershipWebhookRoutes(app *fiber.App, db *gorm.DB) {
	membershipRoute.MembershipWebhookRoutes(app, db)
}
