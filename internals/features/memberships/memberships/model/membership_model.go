package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MembershipStatusActive = "active"
)

// MembershipModel represents the memberships table: at most one row per
// user, overwritten by each successful payment. There is no background
// expiry sweep; whether a membership is live is always derived at read
// time from membership_expiry vs the clock.
type MembershipModel struct {
	MembershipID        uuid.UUID `gorm:"column:membership_id;type:uuid;default:gen_random_uuid();primaryKey" json:"membership_id"`
	MembershipUserID    uuid.UUID `gorm:"column:membership_user_id;type:uuid;not null;uniqueIndex:ux_memberships_user_id" json:"membership_user_id"`
	MembershipPlan      string    `gorm:"column:membership_plan;type:varchar(50);not null"      json:"membership_plan"`
	MembershipStatus    string    `gorm:"column:membership_status;type:varchar(20);not null"    json:"membership_status"`
	MembershipExpiry    time.Time `gorm:"column:membership_expiry;not null"                     json:"membership_expiry"`
	MembershipPaymentID string    `gorm:"column:membership_payment_id;type:varchar(100);not null" json:"membership_payment_id"`

	MembershipCreatedAt time.Time `gorm:"column:membership_created_at;autoCreateTime" json:"membership_created_at"`
	MembershipUpdatedAt time.Time `gorm:"column:membership_updated_at;autoUpdateTime" json:"membership_updated_at"`
}

func (MembershipModel) TableName() string {
	return "memberships"
}

func (m *MembershipModel) BeforeCreate(tx *gorm.DB) error {
	if m.MembershipID == uuid.Nil {
		m.MembershipID = uuid.New()
	}
	return nil
}

// IsActiveAt reports whether the membership is live at the given instant.
func (m *MembershipModel) IsActiveAt(at time.Time) bool {
	return m.MembershipStatus == MembershipStatusActive && m.MembershipExpiry.After(at)
}
