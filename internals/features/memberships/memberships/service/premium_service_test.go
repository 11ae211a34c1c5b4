package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fitzone_backend/internals/features/memberships/memberships/model"
)

func openMembershipTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	schema := []string{
		`CREATE TABLE memberships (
			membership_id TEXT PRIMARY KEY,
			membership_user_id TEXT NOT NULL UNIQUE,
			membership_plan TEXT NOT NULL,
			membership_status TEXT NOT NULL,
			membership_expiry DATETIME NOT NULL,
			membership_payment_id TEXT NOT NULL,
			membership_created_at DATETIME,
			membership_updated_at DATETIME
		);`,
		`CREATE TABLE membership_plans (
			membership_plan_id TEXT PRIMARY KEY,
			membership_plan_code TEXT NOT NULL UNIQUE,
			membership_plan_name TEXT NOT NULL,
			membership_plan_price INTEGER NOT NULL,
			membership_plan_duration_months INTEGER NOT NULL,
			membership_plan_priority INTEGER NOT NULL,
			membership_plan_badge TEXT,
			membership_plan_benefits TEXT,
			membership_plan_created_at DATETIME
		);`,
		`CREATE TABLE membership_orders (
			membership_order_id TEXT PRIMARY KEY,
			membership_order_user_id TEXT NOT NULL,
			membership_order_plan_code TEXT NOT NULL,
			membership_order_amount INTEGER NOT NULL,
			membership_order_status TEXT NOT NULL,
			membership_order_snap_token TEXT,
			membership_order_paid_at DATETIME,
			membership_order_created_at DATETIME,
			membership_order_updated_at DATETIME
		);`,
		`CREATE TABLE membership_history (
			membership_history_id TEXT PRIMARY KEY,
			membership_history_user_id TEXT NOT NULL,
			membership_history_plan TEXT NOT NULL,
			membership_history_expiry DATETIME NOT NULL,
			membership_history_payment_id TEXT NOT NULL,
			membership_history_created_at DATETIME
		);`,
		`CREATE TABLE membership_gateway_events (
			membership_gateway_event_id TEXT PRIMARY KEY,
			membership_gateway_event_order_id TEXT NOT NULL,
			membership_gateway_event_payload TEXT,
			membership_gateway_event_created_at DATETIME
		);`,
	}
	for _, stmt := range schema {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}

	return db
}

func TestIsPremiumAt(t *testing.T) {
	db := openMembershipTestDB(t)
	now := time.Now()

	userID := uuid.New()

	// no membership row at all
	premium, err := IsPremiumAt(db, userID, now)
	if err != nil {
		t.Fatalf("missing row must not error: %v", err)
	}
	if premium {
		t.Fatalf("user without membership must not be premium")
	}

	m := &model.MembershipModel{
		MembershipUserID:    userID,
		MembershipPlan:      "Pro",
		MembershipStatus:    model.MembershipStatusActive,
		MembershipExpiry:    now.AddDate(0, 6, 0),
		MembershipPaymentID: "pay-1",
	}
	if err := db.Create(m).Error; err != nil {
		t.Fatalf("seed membership: %v", err)
	}

	premium, err = IsPremiumAt(db, userID, now)
	if err != nil {
		t.Fatalf("is premium: %v", err)
	}
	if !premium {
		t.Fatalf("active unexpired membership must be premium")
	}

	// past the expiry instant the same row reads as not premium
	premium, err = IsPremiumAt(db, userID, now.AddDate(0, 7, 0))
	if err != nil {
		t.Fatalf("is premium after expiry: %v", err)
	}
	if premium {
		t.Fatalf("expired membership must not be premium")
	}
}
