package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitzone_backend/internals/features/memberships/memberships/dto"
	"fitzone_backend/internals/features/memberships/memberships/model"
	"fitzone_backend/internals/features/memberships/memberships/service"
	userModel "fitzone_backend/internals/features/users/user/model"
	helper "fitzone_backend/internals/helpers"
)

type MembershipController struct {
	DB *gorm.DB
}

func NewMembershipController(db *gorm.DB) *MembershipController {
	return &MembershipController{DB: db}
}

// =======================
// GET /api/u/memberships/plans
// =======================
func (ctrl *MembershipController) ListPlans(c *fiber.Ctx) error {
	var plans []model.MembershipPlanModel
	if err := ctrl.DB.Order("membership_plan_priority ASC").Find(&plans).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch plans")
	}
	return helper.JsonOK(c, "Plans fetched successfully", dto.ToPlanResponseList(plans))
}

// =======================
// GET /api/u/memberships/me
// =======================
// The caller's membership snapshot. active is derived from expiry at
// request time; a user with no membership row gets data: null.
func (ctrl *MembershipController) GetMyMembership(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var membership model.MembershipModel
	if err := ctrl.DB.Where("membership_user_id = ?", userID).First(&membership).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonOK(c, "No membership yet", nil)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch membership")
	}

	resp := dto.ToMembershipResponse(&membership, time.Now())
	return helper.JsonOK(c, "Membership fetched successfully", resp)
}

// =======================
// GET /api/u/memberships/history
// =======================
func (ctrl *MembershipController) GetMyHistory(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var history []model.MembershipHistoryModel
	if err := ctrl.DB.Where("membership_history_user_id = ?", userID).
		Order("membership_history_created_at DESC").
		Find(&history).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch membership history")
	}

	return helper.JsonOK(c, "Membership history fetched successfully", dto.ToHistoryResponseList(history))
}

// =======================
// POST /api/u/memberships/checkout
// =======================
// Creates a pending order and returns the Snap token the frontend needs
// to open the payment popup. Activation only ever happens through the
// gateway webhook, never here.
func (ctrl *MembershipController) Checkout(c *fiber.Ctx) error {
	p, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"plan_code": {"plan_code must be one of basic, pro, elite"},
		})
	}

	premium, err := service.IsPremium(ctrl.DB, p.ID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check membership")
	}
	if premium {
		return helper.JsonError(c, fiber.StatusConflict, "You already have an active membership")
	}

	var plan model.MembershipPlanModel
	if err := ctrl.DB.Where("membership_plan_code = ?", req.PlanCode).First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Plan not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch plan")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", p.ID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	order := model.MembershipOrderModel{
		MembershipOrderID:       "MEMB-" + uuid.NewString(),
		MembershipOrderUserID:   p.ID,
		MembershipOrderPlanCode: plan.MembershipPlanCode,
		MembershipOrderAmount:   plan.MembershipPlanPrice,
		MembershipOrderStatus:   model.OrderStatusPending,
	}
	if err := ctrl.DB.Create(&order).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create order")
	}

	token, redirectURL, err := service.GenerateSnapToken(&order, plan.MembershipPlanName, user.UserName, user.Email)
	if err != nil {
		log.Println("[ERROR] Snap token generation failed:", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Payment gateway is unavailable")
	}

	order.MembershipOrderSnapToken = &token
	if err := ctrl.DB.Save(&order).Error; err != nil {
		log.Println("[ERROR] Failed to persist snap token:", err)
	}

	return helper.JsonCreated(c, "Checkout created", dto.CheckoutResponse{
		OrderID:     order.MembershipOrderID,
		PlanCode:    order.MembershipOrderPlanCode,
		Amount:      order.MembershipOrderAmount,
		SnapToken:   token,
		RedirectURL: redirectURL,
	})
}

// =======================
// POST /api/memberships/notification  (public, called by the gateway)
// =======================
func (ctrl *MembershipController) HandlePaymentNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification payload")
	}

	if err := service.HandleMembershipStatusWebhook(ctrl.DB, body); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "Notification processed", nil)
}
