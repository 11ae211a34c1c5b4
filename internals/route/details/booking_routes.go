package details

import (
	bookingRoute "fitzone_backend/internals/features/bookings/bookings/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func BookingUserRoutes(user fiber.Router, db *gorm.DB) {
	bookingRoute.BookingUserRoutes(user, db)
}

func BookingAdminRoutes(admin fiber.Router, db *gorm.DB) {
	bookingRoute.BookingAdminRoutes(admin, db)
}
