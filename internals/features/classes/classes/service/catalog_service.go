package service

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fitzone_backend/internals/constants"
	bookingModel "fitzone_backend/internals/features/bookings/bookings/model"
)

// ResolveCreateRegion normalizes the region written onto a new class.
// Historically the admin and manager creation paths assigned region with
// different rules; this is the single code path now:
//   - manager: own region always wins, whatever the request said
//   - admin:   explicit region honored, empty defaults to "all"
func ResolveCreateRegion(role, principalRegion, requested string) (string, error) {
	requested = strings.TrimSpace(requested)

	switch role {
	case constants.RoleManager:
		if principalRegion == "" {
			return "", fiber.NewError(fiber.StatusForbidden, "Manager account has no region")
		}
		return principalRegion, nil
	case constants.RoleAdmin:
		if requested == "" {
			return constants.RegionAll, nil
		}
		return requested, nil
	default:
		return "", fiber.NewError(fiber.StatusForbidden, "Only staff can create classes")
	}
}

// EnsureCanDelete forbids deleting a class while live bookings still point
// at it. Rejected bookings do not block removal. This replaces the old
// unconditional delete that left orphaned bookings behind.
func EnsureCanDelete(db *gorm.DB, classID string) error {
	var count int64
	err := db.Model(&bookingModel.BookingModel{}).
		Where("booking_class_id = ? AND booking_status IN ?", classID,
			[]string{bookingModel.BookingStatusPending, bookingModel.BookingStatusApproved}).
		Count(&count).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check bookings for this class")
	}
	if count > 0 {
		return fiber.NewError(fiber.StatusConflict, "Class still has pending or approved bookings")
	}
	return nil
}
