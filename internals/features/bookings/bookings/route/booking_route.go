// file: internals/features/bookings/bookings/route/booking_route.go
package route

import (
	"fitzone_backend/internals/constants"
	controller "fitzone_backend/internals/features/bookings/bookings/controller"
	authMiddleware "fitzone_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// BookingUserRoutes: members create and manage their own bookings.
// Base: /api/u
func BookingUserRoutes(user fiber.Router, db *gorm.DB) {
	bookingController := controller.NewBookingController(db)

	bookings := user.Group("/bookings",
		authMiddleware.OnlyRoles(constants.RoleErrorCustomer("bookings"), constants.CustomerOnly...),
	)
	bookings.Post("/", bookingController.CreateBooking)
	bookings.Get("/my", bookingController.ListMyBookings)
	bookings.Delete("/:id", bookingController.CancelBooking)
}

// BookingAdminRoutes: staff review and decide pending requests.
// Base: /api/a
func BookingAdminRoutes(admin fiber.Router, db *gorm.DB) {
	bookingController := controller.NewBookingController(db)

	bookings := admin.Group("/bookings",
		authMiddleware.OnlyRoles(constants.RoleErrorStaff("booking approval"), constants.StaffRoles...),
	)

	bookings.Get("/requests", bookingController.ListRequests)
	bookings.Patch("/:id/status", bookingController.TransitionBooking)
}
