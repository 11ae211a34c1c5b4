package service

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitzone_backend/internals/constants"
	bookingModel "fitzone_backend/internals/features/bookings/bookings/model"
	classModel "fitzone_backend/internals/features/classes/classes/model"
	membershipService "fitzone_backend/internals/features/memberships/memberships/service"
	helper "fitzone_backend/internals/helpers"
)

// Workflow errors. Controllers map these straight onto the response
// envelope, so every one carries its HTTP status.
var (
	ErrOnlyCustomers   = fiber.NewError(fiber.StatusForbidden, "Only customer accounts can book classes")
	ErrClassNotFound   = fiber.NewError(fiber.StatusNotFound, "Class is no longer available")
	ErrBookingNotFound = fiber.NewError(fiber.StatusNotFound, "Booking not found")
	ErrNotYourRegion   = fiber.NewError(fiber.StatusForbidden, "Class is not available in your region")
	ErrAlreadyBooked   = fiber.NewError(fiber.StatusConflict, "You already have a booking for this class")
	ErrClassFull       = fiber.NewError(fiber.StatusConflict, "Class is fully booked")
	ErrNotOwner        = fiber.NewError(fiber.StatusForbidden, "This booking does not belong to you")
	ErrNotPending      = fiber.NewError(fiber.StatusConflict, "Only pending bookings can be changed")
	ErrBadTargetStatus = fiber.NewError(fiber.StatusBadRequest, "Target status must be approved or rejected")
	ErrBadStatusFilter = fiber.NewError(fiber.StatusBadRequest, "Unknown booking status filter")
	ErrRegionMismatch  = fiber.NewError(fiber.StatusForbidden, "Booking belongs to another region")
)

/* ==========================
   Create (customer)
========================== */

// CreateBooking records a booking request for the caller.
//
// Premium members are approved on the spot; everyone else starts pending
// and waits for staff. The capacity precondition and the insert run in
// one transaction with a recount after the write: two concurrent requests
// racing for the last slot can both pass the precheck, but the loser's
// recount comes back over capacity and its insert is rolled back.
func CreateBooking(db *gorm.DB, p helper.Principal, classID uuid.UUID) (*bookingModel.BookingModel, error) {
	// booking is a customer action; the check lives here, not only on the
	// route, so no caller can reach the ledger with a staff principal
	if p.Role != constants.RoleCustomer {
		return nil, ErrOnlyCustomers
	}

	var class classModel.ClassSessionModel
	if err := db.Where("class_session_id = ?", classID).First(&class).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}

	if !helper.RegionVisible(p.Role, p.Region, class.ClassSessionRegion) {
		return nil, ErrNotYourRegion
	}

	// one live booking per user per class; a rejected booking does not
	// block a fresh request
	var dup int64
	if err := db.Model(&bookingModel.BookingModel{}).
		Where("booking_user_id = ? AND booking_class_id = ? AND booking_status IN ?",
			p.ID, classID,
			[]string{bookingModel.BookingStatusPending, bookingModel.BookingStatusApproved}).
		Count(&dup).Error; err != nil {
		return nil, err
	}
	if dup > 0 {
		return nil, ErrAlreadyBooked
	}

	premium, err := membershipService.IsPremium(db, p.ID)
	if err != nil {
		return nil, err
	}
	status := bookingModel.BookingStatusPending
	if premium {
		status = bookingModel.BookingStatusApproved
	}

	capacity := class.ClassSessionCapacity
	if capacity <= 0 {
		capacity = classModel.DefaultCapacity
	}

	booking := &bookingModel.BookingModel{
		BookingUserID:     p.ID,
		BookingMemberName: p.Name,
		BookingClassID:    class.ClassSessionID,
		BookingClassName:  class.ClassSessionName,
		BookingDate:       class.ClassSessionDate,
		BookingTime:       class.ClassSessionTime,
		BookingRegion:     class.ClassSessionRegion,
		BookingStatus:     status,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		approved, err := CountApproved(tx, classID)
		if err != nil {
			return err
		}
		if approved >= capacity {
			return ErrClassFull
		}

		if err := tx.Create(booking).Error; err != nil {
			return err
		}

		// premium bookings consume a slot immediately; verify the slot
		// was still there after the write
		if status == bookingModel.BookingStatusApproved {
			approved, err := CountApproved(tx, classID)
			if err != nil {
				return err
			}
			if approved > capacity {
				return ErrClassFull
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return booking, nil
}

/* ==========================
   Cancel (customer)
========================== */

// CancelBooking hard-deletes the caller's pending booking.
//
// A missing id is an idempotent no-op: cancelling twice succeeds twice.
// Cancelling someone else's booking, or one already approved/rejected,
// is an explicit error rather than the old silent refusal.
func CancelBooking(db *gorm.DB, p helper.Principal, bookingID uuid.UUID) error {
	if p.Role != constants.RoleCustomer {
		return ErrOnlyCustomers
	}

	var booking bookingModel.BookingModel
	if err := db.Where("booking_id = ?", bookingID).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if booking.BookingUserID != p.ID {
		return ErrNotOwner
	}
	if !booking.IsPending() {
		return ErrNotPending
	}

	return db.Delete(&booking).Error
}

/* ==========================
   Approve / Reject (staff)
========================== */

// TransitionBooking moves a pending booking to approved or rejected.
//
// The manager's region is re-checked here, not only in the listing that
// showed them the request. Approval recounts capacity inside the same
// transaction and refuses to overfill the class.
func TransitionBooking(db *gorm.DB, p helper.Principal, bookingID uuid.UUID, targetStatus string) (*bookingModel.BookingModel, error) {
	if targetStatus != bookingModel.BookingStatusApproved && targetStatus != bookingModel.BookingStatusRejected {
		return nil, ErrBadTargetStatus
	}

	var booking bookingModel.BookingModel
	if err := db.Where("booking_id = ?", bookingID).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if !helper.RegionVisible(p.Role, p.Region, booking.BookingRegion) {
		return nil, ErrRegionMismatch
	}
	if !booking.IsPending() {
		return nil, ErrNotPending
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&booking).Update("booking_status", targetStatus).Error; err != nil {
			return err
		}

		if targetStatus == bookingModel.BookingStatusApproved {
			var class classModel.ClassSessionModel
			if err := tx.Where("class_session_id = ?", booking.BookingClassID).First(&class).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrClassNotFound
				}
				return err
			}
			capacity := class.ClassSessionCapacity
			if capacity <= 0 {
				capacity = classModel.DefaultCapacity
			}
			approved, err := CountApproved(tx, booking.BookingClassID)
			if err != nil {
				return err
			}
			if approved > capacity {
				log.Printf("[WARN] Approval would overfill class %s (%d/%d)", booking.BookingClassID, approved, capacity)
				return ErrClassFull
			}
		}
		return nil
	})
	if err != nil {
		// the in-memory struct already carries the target status after
		// Update; reset so callers never see the rolled-back value
		booking.BookingStatus = bookingModel.BookingStatusPending
		return nil, err
	}

	return &booking, nil
}

/* ==========================
   Listings
========================== */

// ListMyBookings returns the caller's own bookings, newest first.
func ListMyBookings(db *gorm.DB, userID uuid.UUID) ([]bookingModel.BookingModel, error) {
	var bookings []bookingModel.BookingModel
	err := db.Where("booking_user_id = ?", userID).
		Order("booking_created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

// ListRequests returns the booking requests a staff member may act on:
// admin sees every region, a manager their own region plus "all"-region
// classes. Same scope rule as every other listing.
func ListRequests(db *gorm.DB, p helper.Principal, statusFilter string) ([]bookingModel.BookingModel, error) {
	q := db.Model(&bookingModel.BookingModel{})
	q = helper.ScopeByRegion(q, p.Role, p.Region, "booking_region", true)
	if statusFilter != "" {
		if !bookingModel.IsValidStatus(statusFilter) {
			return nil, ErrBadStatusFilter
		}
		q = q.Where("booking_status = ?", statusFilter)
	}

	var bookings []bookingModel.BookingModel
	err := q.Order("booking_created_at DESC").Find(&bookings).Error
	return bookings, err
}
