package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking status is a closed set. pending is the only state that can
// move (to approved or rejected) or be cancelled; approved and rejected
// are terminal.
const (
	BookingStatusPending  = "pending"
	BookingStatusApproved = "approved"
	BookingStatusRejected = "rejected"
)

// BookingModel represents the bookings table. Class name/date/time/region
// are denormalized onto the row at creation so staff request listings do
// not need a join, matching how the booking documents were stored before.
// Everything except booking_status is immutable after creation.
type BookingModel struct {
	BookingID         uuid.UUID `gorm:"column:booking_id;type:uuid;default:gen_random_uuid();primaryKey" json:"booking_id"`
	BookingUserID     uuid.UUID `gorm:"column:booking_user_id;type:uuid;not null;index:idx_bookings_user_id" json:"booking_user_id"`
	BookingMemberName string    `gorm:"column:booking_member_name;type:varchar(255);not null"            json:"booking_member_name"`
	BookingClassID    uuid.UUID `gorm:"column:booking_class_id;type:uuid;not null;index:idx_bookings_class_id" json:"booking_class_id"`
	BookingClassName  string    `gorm:"column:booking_class_name;type:varchar(255);not null"             json:"booking_class_name"`
	BookingDate       string    `gorm:"column:booking_date;type:varchar(50);not null"                    json:"booking_date"`
	BookingTime       string    `gorm:"column:booking_time;type:varchar(50);not null"                    json:"booking_time"`
	BookingRegion     string    `gorm:"column:booking_region;type:varchar(50);not null;index:idx_bookings_region" json:"booking_region"`
	BookingStatus     string    `gorm:"column:booking_status;type:varchar(20);not null;default:'pending'" json:"booking_status"`

	BookingCreatedAt time.Time `gorm:"column:booking_created_at;autoCreateTime" json:"booking_created_at"`
}

func (BookingModel) TableName() string {
	return "bookings"
}

// BeforeCreate generates the id client-side so callers get it back
// regardless of the database driver.
func (b *BookingModel) BeforeCreate(tx *gorm.DB) error {
	if b.BookingID == uuid.Nil {
		b.BookingID = uuid.New()
	}
	return nil
}

// IsPending reports whether the booking can still be cancelled or transitioned.
func (b *BookingModel) IsPending() bool {
	return b.BookingStatus == BookingStatusPending
}

// IsValidStatus reports whether s is one of the closed status set.
func IsValidStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusApproved, BookingStatusRejected:
		return true
	}
	return false
}
