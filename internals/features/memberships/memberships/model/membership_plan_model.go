package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MembershipPlanModel represents the membership_plans table. Plans are
// seeded at startup and edited in the database, not through the API.
type MembershipPlanModel struct {
	MembershipPlanID             uuid.UUID      `gorm:"column:membership_plan_id;type:uuid;default:gen_random_uuid();primaryKey" json:"membership_plan_id"`
	MembershipPlanCode           string         `gorm:"column:membership_plan_code;type:varchar(50);not null;uniqueIndex:ux_membership_plans_code" json:"membership_plan_code"`
	MembershipPlanName           string         `gorm:"column:membership_plan_name;type:varchar(100);not null" json:"membership_plan_name"`
	MembershipPlanPrice          int            `gorm:"column:membership_plan_price;not null"                  json:"membership_plan_price"`
	MembershipPlanDurationMonths int            `gorm:"column:membership_plan_duration_months;not null"        json:"membership_plan_duration_months"`
	MembershipPlanPriority       int            `gorm:"column:membership_plan_priority;not null"               json:"membership_plan_priority"`
	MembershipPlanBadge          *string        `gorm:"column:membership_plan_badge;type:varchar(50)"          json:"membership_plan_badge,omitempty"`
	MembershipPlanBenefits       pq.StringArray `gorm:"column:membership_plan_benefits;type:text[]"            json:"membership_plan_benefits"`

	MembershipPlanCreatedAt time.Time `gorm:"column:membership_plan_created_at;autoCreateTime" json:"membership_plan_created_at"`
}

func (MembershipPlanModel) TableName() string {
	return "membership_plans"
}

func strPtr(s string) *string { return &s }

// SeedDefaultPlans upserts the fixed plan catalog (idempotent on plan code).
func SeedDefaultPlans(db *gorm.DB) error {
	plans := []MembershipPlanModel{
		{
			MembershipPlanCode:           "basic",
			MembershipPlanName:           "Basic",
			MembershipPlanPrice:          499,
			MembershipPlanDurationMonths: 3,
			MembershipPlanPriority:       1,
			MembershipPlanBenefits: pq.StringArray{
				"Access to local gym region",
				"Book 5 classes/month",
				"Standard support",
			},
		},
		{
			MembershipPlanCode:           "pro",
			MembershipPlanName:           "Pro",
			MembershipPlanPrice:          1199,
			MembershipPlanDurationMonths: 6,
			MembershipPlanPriority:       2,
			MembershipPlanBadge:          strPtr("Most Popular"),
			MembershipPlanBenefits: pq.StringArray{
				"Access to all regions",
				"Book unlimited classes",
				"Priority support",
				"Progress tracking dashboard",
			},
		},
		{
			MembershipPlanCode:           "elite",
			MembershipPlanName:           "Elite",
			MembershipPlanPrice:          1999,
			MembershipPlanDurationMonths: 12,
			MembershipPlanPriority:       3,
			MembershipPlanBadge:          strPtr("Save 25%"),
			MembershipPlanBenefits: pq.StringArray{
				"All Pro benefits",
				"1-on-1 coaching sessions",
				"Exclusive diet plans",
				"Early access to events",
			},
		},
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "membership_plan_code"}},
		DoNothing: true,
	}).Create(&plans).Error
}
