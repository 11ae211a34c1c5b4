package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fitzone_backend/internals/constants"
	authModel "fitzone_backend/internals/features/users/auth/model"
	authRepo "fitzone_backend/internals/features/users/auth/repository"
	authService "fitzone_backend/internals/features/users/auth/service"
	userDTO "fitzone_backend/internals/features/users/user/dto"
	userModel "fitzone_backend/internals/features/users/user/model"
	helper "fitzone_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

/* ==========================
   Register
========================== */

type RegisterRequest struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Region   string `json:"region"`
}

// 🟢 POST /api/auth/register
// Self-registration always produces a customer account. Role and region
// are fixed here and never change afterwards.
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	newUser := &userModel.UserModel{
		UserName: strings.TrimSpace(req.UserName),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: req.Password,
		Role:     constants.RoleCustomer,
		Region:   strings.TrimSpace(req.Region),
		IsActive: true,
	}
	if err := newUser.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	if _, err := authRepo.FindUserByEmail(ctrl.DB, newUser.Email); err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Email is already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[ERROR] Email lookup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check email")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}
	newUser.Password = string(hashed)

	if err := authRepo.CreateUser(ctrl.DB, newUser); err != nil {
		log.Printf("[ERROR] Create user: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register")
	}

	return helper.JsonCreated(c, "Registration successful", userDTO.ToUserResponse(newUser))
}

/* ==========================
   Login
========================== */

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// 🟢 POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email and password are required")
	}

	user, err := authRepo.FindUserByEmail(ctrl.DB, req.Email)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, expiresAt, err := authService.IssueAccessToken(user)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	// cookie for browser clients, token in body for everyone else
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  expiresAt,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
	})

	return helper.JsonOK(c, "Login successful", fiber.Map{
		"access_token": token,
		"expires_at":   expiresAt,
		"user":         userDTO.ToUserResponse(user),
	})
}

/* ==========================
   Logout
========================== */

// 🟢 POST /api/auth/logout
// The access token is blacklisted until its natural expiry.
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "No token provided")
	}

	entry := authModel.TokenBlacklist{
		Token:     raw,
		ExpiredAt: time.Now().Add(24 * time.Hour),
	}
	if err := ctrl.DB.Create(&entry).Error; err != nil {
		log.Printf("[ERROR] Blacklist insert: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to log out")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return helper.JsonOK(c, "Logged out", nil)
}

/* ==========================
   Me
========================== */

// 🟢 GET /api/auth/me
// Session-restore path: clients hydrate their local session from here
// on load instead of trusting any locally persisted user mirror.
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	user, err := authRepo.FindUserByID(ctrl.DB, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	return helper.JsonOK(c, "ok", userDTO.ToUserResponse(user))
}
