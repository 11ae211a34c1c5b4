package details

import (
	userRoute "fitzone_backend/internals/features/users/user/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	userRoute.UserAdminRoutes(admin, db)
}
