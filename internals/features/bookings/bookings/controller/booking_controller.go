package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitzone_backend/internals/features/bookings/bookings/dto"
	"fitzone_backend/internals/features/bookings/bookings/service"
	helper "fitzone_backend/internals/helpers"
)

type BookingController struct {
	DB *gorm.DB
}

func NewBookingController(db *gorm.DB) *BookingController {
	return &BookingController{DB: db}
}

// =======================
// POST /api/u/bookings
// =======================
func (ctrl *BookingController) CreateBooking(c *fiber.Ctx) error {
	p, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"class_id": {"class_id is required"},
		})
	}

	booking, err := service.CreateBooking(ctrl.DB, p, req.ClassID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "Booking submitted", dto.ToBookingResponse(booking))
}

// =======================
// DELETE /api/u/bookings/:id
// =======================
func (ctrl *BookingController) CancelBooking(c *fiber.Ctx) error {
	p, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	bookingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid booking ID")
	}

	if err := service.CancelBooking(ctrl.DB, p, bookingID); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonDeleted(c, "Booking cancelled", fiber.Map{"booking_id": bookingID})
}

// =======================
// GET /api/u/bookings/my
// =======================
func (ctrl *BookingController) ListMyBookings(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	bookings, err := service.ListMyBookings(ctrl.DB, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch bookings")
	}

	return helper.JsonOK(c, "My bookings fetched successfully", dto.ToBookingResponseList(bookings))
}

// =======================
// GET /api/a/bookings/requests?status=
// =======================
func (ctrl *BookingController) ListRequests(c *fiber.Ctx) error {
	p, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	bookings, err := service.ListRequests(ctrl.DB, p, c.Query("status"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonOK(c, "Booking requests fetched successfully", dto.ToBookingResponseList(bookings))
}

// =======================
// PATCH /api/a/bookings/:id/status
// =======================
func (ctrl *BookingController) TransitionBooking(c *fiber.Ctx) error {
	p, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	bookingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid booking ID")
	}

	var req dto.TransitionBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"status": {"status must be approved or rejected"},
		})
	}

	booking, err := service.TransitionBooking(ctrl.DB, p, bookingID, req.Status)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonUpdated(c, "Booking "+booking.BookingStatus, dto.ToBookingResponse(booking))
}
