package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"fitzone_backend/internals/features/classes/classes/model"
)

var validate = validator.New()

// 🔹 Request to create a class session
type ClassSessionRequest struct {
	ClassSessionName       string `json:"class_session_name" validate:"required"`
	ClassSessionInstructor string `json:"class_session_instructor" validate:"required"`
	ClassSessionDate       string `json:"class_session_date" validate:"required"`
	ClassSessionTime       string `json:"class_session_time" validate:"required"`
	ClassSessionRegion     string `json:"class_session_region"`
	ClassSessionCapacity   int    `json:"class_session_capacity" validate:"omitempty,gt=0"`
}

// 🔹 Partial update (PATCH)
type ClassSessionUpdateRequest struct {
	ClassSessionName       *string `json:"class_session_name"`
	ClassSessionInstructor *string `json:"class_session_instructor"`
	ClassSessionDate       *string `json:"class_session_date"`
	ClassSessionTime       *string `json:"class_session_time"`
	ClassSessionRegion     *string `json:"class_session_region"`
	ClassSessionCapacity   *int    `json:"class_session_capacity"`
}

// 🔹 Response, optionally enriched with availability
type ClassSessionResponse struct {
	ClassSessionID         uuid.UUID `json:"class_session_id"`
	ClassSessionName       string    `json:"class_session_name"`
	ClassSessionInstructor string    `json:"class_session_instructor"`
	ClassSessionDate       string    `json:"class_session_date"`
	ClassSessionTime       string    `json:"class_session_time"`
	ClassSessionRegion     string    `json:"class_session_region"`
	ClassSessionCapacity   int       `json:"class_session_capacity"`
	ClassSessionCreatedAt  string    `json:"class_session_created_at"`

	ApprovedCount *int    `json:"approved_count,omitempty"`
	Availability  *string `json:"availability,omitempty"`
}

func (r *ClassSessionRequest) Validate() error {
	return validate.Struct(r)
}

// 🔄 request → model
func (r *ClassSessionRequest) ToModel(createdBy uuid.UUID) *model.ClassSessionModel {
	capacity := r.ClassSessionCapacity
	if capacity <= 0 {
		capacity = model.DefaultCapacity
	}
	return &model.ClassSessionModel{
		ClassSessionName:       strings.TrimSpace(r.ClassSessionName),
		ClassSessionInstructor: strings.TrimSpace(r.ClassSessionInstructor),
		ClassSessionDate:       strings.TrimSpace(r.ClassSessionDate),
		ClassSessionTime:       strings.TrimSpace(r.ClassSessionTime),
		ClassSessionRegion:     strings.TrimSpace(r.ClassSessionRegion),
		ClassSessionCapacity:   capacity,
		ClassSessionCreatedBy:  createdBy,
	}
}

// 🔄 model → response
func ToClassSessionResponse(m *model.ClassSessionModel) *ClassSessionResponse {
	return &ClassSessionResponse{
		ClassSessionID:         m.ClassSessionID,
		ClassSessionName:       m.ClassSessionName,
		ClassSessionInstructor: m.ClassSessionInstructor,
		ClassSessionDate:       m.ClassSessionDate,
		ClassSessionTime:       m.ClassSessionTime,
		ClassSessionRegion:     m.ClassSessionRegion,
		ClassSessionCapacity:   m.ClassSessionCapacity,
		ClassSessionCreatedAt:  m.ClassSessionCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToClassSessionResponseList(models []model.ClassSessionModel) []ClassSessionResponse {
	var result []ClassSessionResponse
	for _, m := range models {
		result = append(result, *ToClassSessionResponse(&m))
	}
	return result
}
