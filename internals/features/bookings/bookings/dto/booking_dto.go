package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"fitzone_backend/internals/features/bookings/bookings/model"
)

var validate = validator.New()

// ========================= REQUEST DTO =========================

// 🔹 CreateBookingRequest: customer books a class by id. Everything else
// on the booking row is copied from the class and the caller's token.
type CreateBookingRequest struct {
	ClassID uuid.UUID `json:"class_id" validate:"required"`
}

func (r *CreateBookingRequest) Validate() error {
	return validate.Struct(r)
}

// 🔹 TransitionBookingRequest: staff decision on a pending booking.
type TransitionBookingRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

func (r *TransitionBookingRequest) Validate() error {
	return validate.Struct(r)
}

// ========================= RESPONSE DTO =========================

type BookingResponse struct {
	BookingID  uuid.UUID `json:"booking_id"`
	UserID     uuid.UUID `json:"user_id"`
	MemberName string    `json:"member_name"`
	ClassID    uuid.UUID `json:"class_id"`
	ClassName  string    `json:"class_name"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	Region     string    `json:"region"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// ========================= CONVERTER =========================

func ToBookingResponse(m *model.BookingModel) BookingResponse {
	return BookingResponse{
		BookingID:  m.BookingID,
		UserID:     m.BookingUserID,
		MemberName: m.BookingMemberName,
		ClassID:    m.BookingClassID,
		ClassName:  m.BookingClassName,
		Date:       m.BookingDate,
		Time:       m.BookingTime,
		Region:     m.BookingRegion,
		Status:     m.BookingStatus,
		CreatedAt:  m.BookingCreatedAt,
	}
}

func ToBookingResponseList(ms []model.BookingModel) []BookingResponse {
	out := make([]BookingResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToBookingResponse(&ms[i]))
	}
	return out
}
