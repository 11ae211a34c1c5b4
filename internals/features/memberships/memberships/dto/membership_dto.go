package dto

import (
	"time"

	"github.com/go-playground/validator/v10"

	"fitzone_backend/internals/features/memberships/memberships/model"
)

var validate = validator.New()

// ========================= REQUEST DTO =========================

// 🔹 CheckoutRequest: customer picks a plan by code.
type CheckoutRequest struct {
	PlanCode string `json:"plan_code" validate:"required,oneof=basic pro elite"`
}

func (r *CheckoutRequest) Validate() error {
	return validate.Struct(r)
}

// ========================= RESPONSE DTO =========================

type PlanResponse struct {
	Code           string   `json:"code"`
	Name           string   `json:"name"`
	Price          int      `json:"price"`
	DurationMonths int      `json:"duration_months"`
	Badge          *string  `json:"badge,omitempty"`
	Benefits       []string `json:"benefits"`
}

type MembershipResponse struct {
	Plan      string    `json:"plan"`
	Status    string    `json:"status"`
	Expiry    time.Time `json:"expiry"`
	PaymentID string    `json:"payment_id"`
	Active    bool      `json:"active"`
}

type CheckoutResponse struct {
	OrderID     string `json:"order_id"`
	PlanCode    string `json:"plan_code"`
	Amount      int    `json:"amount"`
	SnapToken   string `json:"snap_token"`
	RedirectURL string `json:"redirect_url"`
}

type HistoryResponse struct {
	Plan      string    `json:"plan"`
	Expiry    time.Time `json:"expiry"`
	PaymentID string    `json:"payment_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ========================= CONVERTER =========================

func ToPlanResponse(m *model.MembershipPlanModel) PlanResponse {
	return PlanResponse{
		Code:           m.MembershipPlanCode,
		Name:           m.MembershipPlanName,
		Price:          m.MembershipPlanPrice,
		DurationMonths: m.MembershipPlanDurationMonths,
		Badge:          m.MembershipPlanBadge,
		Benefits:       m.MembershipPlanBenefits,
	}
}

func ToPlanResponseList(ms []model.MembershipPlanModel) []PlanResponse {
	out := make([]PlanResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToPlanResponse(&ms[i]))
	}
	return out
}

func ToMembershipResponse(m *model.MembershipModel, at time.Time) MembershipResponse {
	return MembershipResponse{
		Plan:      m.MembershipPlan,
		Status:    m.MembershipStatus,
		Expiry:    m.MembershipExpiry,
		PaymentID: m.MembershipPaymentID,
		Active:    m.IsActiveAt(at),
	}
}

func ToHistoryResponseList(ms []model.MembershipHistoryModel) []HistoryResponse {
	out := make([]HistoryResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, HistoryResponse{
			Plan:      m.MembershipHistoryPlan,
			Expiry:    m.MembershipHistoryExpiry,
			PaymentID: m.MembershipHistoryPaymentID,
			CreatedAt: m.MembershipHistoryCreatedAt,
		})
	}
	return out
}
