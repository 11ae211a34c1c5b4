package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	OrderStatusPending  = "pending"
	OrderStatusPaid     = "paid"
	OrderStatusExpired  = "expired"
	OrderStatusCanceled = "canceled"
)

// MembershipOrderModel represents the membership_orders table: one row per
// checkout attempt, correlating the gateway order id back to the user and
// plan when the webhook arrives.
type MembershipOrderModel struct {
	MembershipOrderID       string    `gorm:"column:membership_order_id;type:varchar(100);primaryKey" json:"membership_order_id"`
	MembershipOrderUserID   uuid.UUID `gorm:"column:membership_order_user_id;type:uuid;not null;index:idx_membership_orders_user_id" json:"membership_order_user_id"`
	MembershipOrderPlanCode string    `gorm:"column:membership_order_plan_code;type:varchar(50);not null" json:"membership_order_plan_code"`
	MembershipOrderAmount   int       `gorm:"column:membership_order_amount;not null"                 json:"membership_order_amount"`
	MembershipOrderStatus   string    `gorm:"column:membership_order_status;type:varchar(20);not null;default:'pending'" json:"membership_order_status"`

	MembershipOrderSnapToken *string    `gorm:"column:membership_order_snap_token;type:text" json:"membership_order_snap_token,omitempty"`
	MembershipOrderPaidAt    *time.Time `gorm:"column:membership_order_paid_at"              json:"membership_order_paid_at,omitempty"`

	MembershipOrderCreatedAt time.Time `gorm:"column:membership_order_created_at;autoCreateTime" json:"membership_order_created_at"`
	MembershipOrderUpdatedAt time.Time `gorm:"column:membership_order_updated_at;autoUpdateTime" json:"membership_order_updated_at"`
}

func (MembershipOrderModel) TableName() string {
	return "membership_orders"
}

// MembershipHistoryModel keeps every activation ever applied for a user,
// where the membership row itself only holds the latest state.
type MembershipHistoryModel struct {
	MembershipHistoryID        uuid.UUID `gorm:"column:membership_history_id;type:uuid;default:gen_random_uuid();primaryKey" json:"membership_history_id"`
	MembershipHistoryUserID    uuid.UUID `gorm:"column:membership_history_user_id;type:uuid;not null;index:idx_membership_history_user_id" json:"membership_history_user_id"`
	MembershipHistoryPlan      string    `gorm:"column:membership_history_plan;type:varchar(50);not null"      json:"membership_history_plan"`
	MembershipHistoryExpiry    time.Time `gorm:"column:membership_history_expiry;not null"                     json:"membership_history_expiry"`
	MembershipHistoryPaymentID string    `gorm:"column:membership_history_payment_id;type:varchar(100);not null" json:"membership_history_payment_id"`
	MembershipHistoryCreatedAt time.Time `gorm:"column:membership_history_created_at;autoCreateTime"           json:"membership_history_created_at"`
}

func (MembershipHistoryModel) TableName() string {
	return "membership_history"
}

func (m *MembershipHistoryModel) BeforeCreate(tx *gorm.DB) error {
	if m.MembershipHistoryID == uuid.Nil {
		m.MembershipHistoryID = uuid.New()
	}
	return nil
}

// MembershipGatewayEventModel stores every raw webhook payload we receive,
// for reconciliation when the gateway and our ledger disagree.
type MembershipGatewayEventModel struct {
	MembershipGatewayEventID        uuid.UUID      `gorm:"column:membership_gateway_event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"membership_gateway_event_id"`
	MembershipGatewayEventOrderID   string         `gorm:"column:membership_gateway_event_order_id;type:varchar(100);not null;index:idx_membership_gateway_events_order_id" json:"membership_gateway_event_order_id"`
	MembershipGatewayEventPayload   datatypes.JSON `gorm:"column:membership_gateway_event_payload;type:jsonb" json:"membership_gateway_event_payload"`
	MembershipGatewayEventCreatedAt time.Time      `gorm:"column:membership_gateway_event_created_at;autoCreateTime" json:"membership_gateway_event_created_at"`
}

func (MembershipGatewayEventModel) TableName() string {
	return "membership_gateway_events"
}

func (m *MembershipGatewayEventModel) BeforeCreate(tx *gorm.DB) error {
	if m.MembershipGatewayEventID == uuid.Nil {
		m.MembershipGatewayEventID = uuid.New()
	}
	return nil
}
