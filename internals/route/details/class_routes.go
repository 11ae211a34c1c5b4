package details

import (
	classRoute "fitzone_backend/internals/features/classes/classes/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ClassUserRoutes(user fiber.Router, db *gorm.DB) {
	classRoute.ClassUserRoutes(user, db)
}

func ClassAdminRoutes(admin fiber.Router, db *gorm.DB) {
	classRoute.ClassAdminRoutes(admin, db)
}
