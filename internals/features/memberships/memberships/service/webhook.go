package service

import (
	"fmt"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fitzone_backend/internals/features/memberships/memberships/model"
	"fitzone_backend/internals/features/memberships/memberships/notifier"
)

var membershipNotifier notifier.Notifier = notifier.NewConsole()

// SetNotifier swaps the channel used for the membership-activated notice.
func SetNotifier(n notifier.Notifier) {
	if n != nil {
		membershipNotifier = n
	}
}

// HandleMembershipStatusWebhook is called for every notification the
// payment gateway sends us. The raw payload is stored first, so a bad
// order state can always be reconciled later.
func HandleMembershipStatusWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)

	if !ok1 || !ok2 {
		log.Println("[ERROR] Incomplete webhook payload:", body)
		return fmt.Errorf("invalid payload")
	}

	log.Println("📄 Order ID:", orderID)
	log.Println("📌 Transaction Status:", status)

	if raw, err := sonic.Marshal(body); err == nil {
		event := model.MembershipGatewayEventModel{
			MembershipGatewayEventOrderID: orderID,
			MembershipGatewayEventPayload: raw,
		}
		if err := db.Create(&event).Error; err != nil {
			log.Println("[ERROR] Failed to store gateway event:", err)
		}
	}

	var order model.MembershipOrderModel
	if err := db.Where("membership_order_id = ?", orderID).First(&order).Error; err != nil {
		log.Println("[ERROR] Order not found:", err)
		return fmt.Errorf("order with order_id %s not found", orderID)
	}

	switch status {
	case "capture", "settlement":
		paymentID, _ := body["transaction_id"].(string)
		if paymentID == "" {
			paymentID = orderID
		}
		return activateMembership(db, &order, paymentID)

	case "expire":
		order.MembershipOrderStatus = model.OrderStatusExpired
	case "cancel":
		order.MembershipOrderStatus = model.OrderStatusCanceled
	default:
		log.Println("[INFO] Status not processed:", status)
		return nil
	}

	if err := db.Save(&order).Error; err != nil {
		log.Println("[ERROR] Failed to save order status:", err)
		return err
	}

	return nil
}

// activateMembership marks the order paid and overwrites the user's
// membership with the freshly purchased plan, all in one transaction
// so a crash can never leave a paid order without a membership.
func activateMembership(db *gorm.DB, order *model.MembershipOrderModel, paymentID string) error {
	if order.MembershipOrderStatus == model.OrderStatusPaid {
		log.Println("[INFO] Order already paid, skipping:", order.MembershipOrderID)
		return nil
	}

	var plan model.MembershipPlanModel
	if err := db.Where("membership_plan_code = ?", order.MembershipOrderPlanCode).First(&plan).Error; err != nil {
		log.Println("[ERROR] Plan not found for order:", err)
		return err
	}

	now := time.Now()
	expiry := now.AddDate(0, plan.MembershipPlanDurationMonths, 0)

	err := db.Transaction(func(tx *gorm.DB) error {
		order.MembershipOrderStatus = model.OrderStatusPaid
		order.MembershipOrderPaidAt = &now
		if err := tx.Save(order).Error; err != nil {
			return err
		}

		membership := model.MembershipModel{
			MembershipUserID:    order.MembershipOrderUserID,
			MembershipPlan:      plan.MembershipPlanName,
			MembershipStatus:    model.MembershipStatusActive,
			MembershipExpiry:    expiry,
			MembershipPaymentID: paymentID,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "membership_user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"membership_plan", "membership_status", "membership_expiry", "membership_payment_id",
			}),
		}).Create(&membership).Error; err != nil {
			return err
		}

		history := model.MembershipHistoryModel{
			MembershipHistoryUserID:    order.MembershipOrderUserID,
			MembershipHistoryPlan:      plan.MembershipPlanName,
			MembershipHistoryExpiry:    expiry,
			MembershipHistoryPaymentID: paymentID,
		}
		return tx.Create(&history).Error
	})
	if err != nil {
		log.Println("[ERROR] Membership activation failed:", err)
		return err
	}

	_ = membershipNotifier.Notify(
		"Membership activated",
		fmt.Sprintf("user=%s plan=%s expires=%s payment=%s",
			order.MembershipOrderUserID, plan.MembershipPlanName,
			expiry.Format("2006-01-02"), paymentID),
	)

	return nil
}
