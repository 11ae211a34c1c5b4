package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fitzone_backend/internals/features/users/user/dto"
	"fitzone_backend/internals/features/users/user/model"
	helper "fitzone_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// 🟢 GET /api/a/users
// Admin sees every member; a manager only sees members of their own region.
// The "all" sentinel does not apply to users (a user always has a concrete region).
func (ctrl *UserController) ListUsers(c *fiber.Ctx) error {
	p, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.UserModel{})
	q = helper.ScopeByRegion(q, p.Role, p.Region, "region", false)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] Count users: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load users")
	}

	var users []model.UserModel
	if err := q.Order("created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&users).Error; err != nil {
		log.Printf("[ERROR] Find users: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load users")
	}

	return helper.JsonList(c, "Users loaded",
		dto.ToUserResponseList(users),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 POST /api/a/users (admin only, guarded by route middleware)
// Staff accounts get their role/region assigned here, once, at creation.
func (ctrl *UserController) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	newUser := req.ToModel()
	if err := newUser.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var existing model.UserModel
	if err := ctrl.DB.Where("email = ?", strings.ToLower(req.Email)).First(&existing).Error; err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Email is already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[ERROR] Email lookup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check email")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}
	newUser.Email = strings.ToLower(req.Email)
	newUser.Password = string(hashed)

	if err := ctrl.DB.Create(newUser).Error; err != nil {
		log.Printf("[ERROR] Create user: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.JsonCreated(c, "User created", dto.ToUserResponse(newUser))
}
