package model

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Validator instance
var validate = validator.New()

// UserModel represents the users table
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName string    `gorm:"size:50;not null" json:"user_name" validate:"required,min=3,max=50"`
	Email    string    `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password string    `gorm:"not null" json:"-" validate:"required,min=8"`

	// Role and region are fixed at creation. Self-registration always
	// produces a customer; staff accounts are created by an admin.
	Role   string `gorm:"type:varchar(20);not null;default:'customer'" json:"role" validate:"required,oneof=admin manager customer"`
	Region string `gorm:"type:varchar(50);not null" json:"region" validate:"required"`

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

// SetDefaultValues fills defaults before validation
func (u *UserModel) SetDefaultValues() {
	if u.Role == "" {
		u.Role = "customer"
	}
}

// Validate checks the input against the rules defined above
func (u *UserModel) Validate() error {
	u.SetDefaultValues()

	err := validate.Struct(u)
	if err != nil {
		return formatValidationError(err)
	}

	return nil
}

// formatValidationError turns validator errors into a readable message
func formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		errorMessages := make(map[string]string)
		for _, fieldErr := range validationErrs {
			switch fieldErr.Tag() {
			case "required":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + " is required."
			case "email":
				errorMessages[fieldErr.Field()] = "Invalid email format."
			case "min":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + " must be at least " + fieldErr.Param() + " characters."
			case "max":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + " must be under " + fieldErr.Param() + " characters."
			case "oneof":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + " must be one of " + fieldErr.Param() + "."
			default:
				errorMessages[fieldErr.Field()] = "Invalid format."
			}
		}
		return errors.New(formatErrorMessage(errorMessages))
	}

	return err
}

func formatErrorMessage(errors map[string]string) string {
	var msg string
	for field, errorMsg := range errors {
		msg += field + ": " + errorMsg + "\n"
	}
	return msg
}
