package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	bookingModel "fitzone_backend/internals/features/bookings/bookings/model"
	classModel "fitzone_backend/internals/features/classes/classes/model"
)

// Availability tiers shown next to each class. Thresholds are fixed:
// >= 90% of capacity is AlmostFull, >= 70% is Limited, else Available.
const (
	TierAvailable  = "Available"
	TierLimited    = "Limited"
	TierAlmostFull = "Almost Full"

	almostFullThreshold = 90
	limitedThreshold    = 70
)

type Availability struct {
	ApprovedCount int    `json:"approved_count"`
	Capacity      int    `json:"capacity"`
	Tier          string `json:"tier"`
}

// TierFor derives the availability tier from an approved count and capacity.
// Only approved bookings consume capacity; pending and rejected never count.
func TierFor(approvedCount, capacity int) string {
	if capacity <= 0 {
		capacity = classModel.DefaultCapacity
	}
	percentage := approvedCount * 100 / capacity
	switch {
	case percentage >= almostFullThreshold:
		return TierAlmostFull
	case percentage >= limitedThreshold:
		return TierLimited
	default:
		return TierAvailable
	}
}

// CountApproved recomputes the approved-booking count for a class from the
// ledger. There is no cached aggregate to invalidate: every decision that
// depends on availability re-runs this query first.
func CountApproved(db *gorm.DB, classID uuid.UUID) (int, error) {
	var count int64
	err := db.Model(&bookingModel.BookingModel{}).
		Where("booking_class_id = ? AND booking_status = ?", classID, bookingModel.BookingStatusApproved).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// ComputeAvailability returns the current enrollment state of a class.
func ComputeAvailability(db *gorm.DB, class *classModel.ClassSessionModel) (Availability, error) {
	approved, err := CountApproved(db, class.ClassSessionID)
	if err != nil {
		return Availability{}, err
	}
	capacity := class.ClassSessionCapacity
	if capacity <= 0 {
		capacity = classModel.DefaultCapacity
	}
	return Availability{
		ApprovedCount: approved,
		Capacity:      capacity,
		Tier:          TierFor(approved, capacity),
	}, nil
}
