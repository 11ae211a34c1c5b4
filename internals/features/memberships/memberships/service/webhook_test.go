package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"fitzone_backend/internals/features/memberships/memberships/model"
)

func seedPlanAndOrder(t *testing.T, db *gorm.DB, userID uuid.UUID) *model.MembershipOrderModel {
	t.Helper()

	plan := &model.MembershipPlanModel{
		MembershipPlanID:             uuid.New(),
		MembershipPlanCode:           "pro",
		MembershipPlanName:           "Pro",
		MembershipPlanPrice:          1199,
		MembershipPlanDurationMonths: 6,
		MembershipPlanPriority:       2,
		MembershipPlanBenefits:       pq.StringArray{"Access to all regions"},
	}
	if err := db.Create(plan).Error; err != nil {
		t.Fatalf("seed plan: %v", err)
	}

	order := &model.MembershipOrderModel{
		MembershipOrderID:       "MEMB-" + uuid.NewString(),
		MembershipOrderUserID:   userID,
		MembershipOrderPlanCode: "pro",
		MembershipOrderAmount:   1199,
		MembershipOrderStatus:   model.OrderStatusPending,
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return order
}

func TestWebhook_SettlementActivatesMembership(t *testing.T) {
	db := openMembershipTestDB(t)
	userID := uuid.New()
	order := seedPlanAndOrder(t, db, userID)

	body := map[string]interface{}{
		"order_id":           order.MembershipOrderID,
		"transaction_status": "settlement",
		"transaction_id":     "txn-123",
	}
	if err := HandleMembershipStatusWebhook(db, body); err != nil {
		t.Fatalf("handle webhook: %v", err)
	}

	var stored model.MembershipOrderModel
	if err := db.Where("membership_order_id = ?", order.MembershipOrderID).First(&stored).Error; err != nil {
		t.Fatalf("reload order: %v", err)
	}
	if stored.MembershipOrderStatus != model.OrderStatusPaid {
		t.Fatalf("want paid order, got %s", stored.MembershipOrderStatus)
	}
	if stored.MembershipOrderPaidAt == nil {
		t.Fatalf("paid_at not set")
	}

	var membership model.MembershipModel
	if err := db.Where("membership_user_id = ?", userID).First(&membership).Error; err != nil {
		t.Fatalf("membership not created: %v", err)
	}
	if membership.MembershipPlan != "Pro" {
		t.Fatalf("want Pro plan, got %s", membership.MembershipPlan)
	}
	if membership.MembershipPaymentID != "txn-123" {
		t.Fatalf("payment id not taken from transaction_id, got %s", membership.MembershipPaymentID)
	}
	if !membership.IsActiveAt(time.Now()) {
		t.Fatalf("freshly activated membership must be active")
	}
	if membership.MembershipExpiry.Before(time.Now().AddDate(0, 5, 0)) {
		t.Fatalf("6-month plan expiry too soon: %v", membership.MembershipExpiry)
	}

	var historyCount int64
	db.Model(&model.MembershipHistoryModel{}).
		Where("membership_history_user_id = ?", userID).
		Count(&historyCount)
	if historyCount != 1 {
		t.Fatalf("want 1 history row, got %d", historyCount)
	}

	var eventCount int64
	db.Model(&model.MembershipGatewayEventModel{}).
		Where("membership_gateway_event_order_id = ?", order.MembershipOrderID).
		Count(&eventCount)
	if eventCount != 1 {
		t.Fatalf("raw gateway payload not stored, got %d rows", eventCount)
	}
}

func TestWebhook_ReplayIsIdempotent(t *testing.T) {
	db := openMembershipTestDB(t)
	userID := uuid.New()
	order := seedPlanAndOrder(t, db, userID)

	body := map[string]interface{}{
		"order_id":           order.MembershipOrderID,
		"transaction_status": "settlement",
		"transaction_id":     "txn-123",
	}
	if err := HandleMembershipStatusWebhook(db, body); err != nil {
		t.Fatalf("first delivery: %v", err)
	}
	if err := HandleMembershipStatusWebhook(db, body); err != nil {
		t.Fatalf("replayed delivery: %v", err)
	}

	// the replay must not extend the membership or duplicate history
	var historyCount int64
	db.Model(&model.MembershipHistoryModel{}).
		Where("membership_history_user_id = ?", userID).
		Count(&historyCount)
	if historyCount != 1 {
		t.Fatalf("replay duplicated history: %d rows", historyCount)
	}
}

func TestWebhook_ExpireMarksOrder(t *testing.T) {
	db := openMembershipTestDB(t)
	userID := uuid.New()
	order := seedPlanAndOrder(t, db, userID)

	body := map[string]interface{}{
		"order_id":           order.MembershipOrderID,
		"transaction_status": "expire",
	}
	if err := HandleMembershipStatusWebhook(db, body); err != nil {
		t.Fatalf("handle webhook: %v", err)
	}

	var stored model.MembershipOrderModel
	if err := db.Where("membership_order_id = ?", order.MembershipOrderID).First(&stored).Error; err != nil {
		t.Fatalf("reload order: %v", err)
	}
	if stored.MembershipOrderStatus != model.OrderStatusExpired {
		t.Fatalf("want expired, got %s", stored.MembershipOrderStatus)
	}

	// no membership appears for an unpaid order
	var count int64
	db.Model(&model.MembershipModel{}).
		Where("membership_user_id = ?", userID).
		Count(&count)
	if count != 0 {
		t.Fatalf("expired order must not create a membership")
	}
}

func TestWebhook_UnknownOrderIsAnError(t *testing.T) {
	db := openMembershipTestDB(t)

	body := map[string]interface{}{
		"order_id":           "MEMB-missing",
		"transaction_status": "settlement",
	}
	if err := HandleMembershipStatusWebhook(db, body); err == nil {
		t.Fatalf("unknown order must be reported")
	}
}

func TestWebhook_IncompletePayload(t *testing.T) {
	db := openMembershipTestDB(t)

	if err := HandleMembershipStatusWebhook(db, map[string]interface{}{"foo": "bar"}); err == nil {
		t.Fatalf("payload without order_id must be rejected")
	}
}
