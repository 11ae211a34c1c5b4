package dto

import (
	"time"

	"github.com/google/uuid"

	"fitzone_backend/internals/features/users/user/model"
)

// 🔹 Request for admin-created staff accounts
type CreateUserRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=admin manager customer"`
	Region   string `json:"region" validate:"required"`
}

// 🔹 Response shape shared by auth and user listings
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Region    string    `json:"region"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *CreateUserRequest) ToModel() *model.UserModel {
	return &model.UserModel{
		UserName: r.UserName,
		Email:    r.Email,
		Password: r.Password,
		Role:     r.Role,
		Region:   r.Region,
		IsActive: true,
	}
}

func ToUserResponse(m *model.UserModel) *UserResponse {
	return &UserResponse{
		ID:        m.ID,
		UserName:  m.UserName,
		Email:     m.Email,
		Role:      m.Role,
		Region:    m.Region,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
}

func ToUserResponseList(models []model.UserModel) []UserResponse {
	var result []UserResponse
	for _, m := range models {
		result = append(result, *ToUserResponse(&m))
	}
	return result
}
