package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	bookingModel "fitzone_backend/internals/features/bookings/bookings/model"
	classModel "fitzone_backend/internals/features/classes/classes/model"
	membershipModel "fitzone_backend/internals/features/memberships/memberships/model"
	helper "fitzone_backend/internals/helpers"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// Minimal schema for the workflow queries (sqlite-friendly).
	schema := []string{
		`CREATE TABLE class_sessions (
			class_session_id TEXT PRIMARY KEY,
			class_session_name TEXT NOT NULL,
			class_session_instructor TEXT NOT NULL,
			class_session_date TEXT NOT NULL,
			class_session_time TEXT NOT NULL,
			class_session_region TEXT NOT NULL,
			class_session_capacity INTEGER NOT NULL,
			class_session_created_by TEXT NOT NULL,
			class_session_created_at DATETIME,
			class_session_updated_at DATETIME
		);`,
		`CREATE TABLE bookings (
			booking_id TEXT PRIMARY KEY,
			booking_user_id TEXT NOT NULL,
			booking_member_name TEXT NOT NULL,
			booking_class_id TEXT NOT NULL,
			booking_class_name TEXT NOT NULL,
			booking_date TEXT NOT NULL,
			booking_time TEXT NOT NULL,
			booking_region TEXT NOT NULL,
			booking_status TEXT NOT NULL,
			booking_created_at DATETIME
		);`,
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
	}
	for _, stmt := range schema {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}

	return db
}

func seedClass(t *testing.T, db *gorm.DB, region string, capacity int) *classModel.ClassSessionModel {
	t.Helper()
	class := &classModel.ClassSessionModel{
		ClassSessionID:         uuid.New(),
		ClassSessionName:       "Morning Yoga",
		ClassSessionInstructor: "Priya",
		ClassSessionDate:       "2026-09-15",
		ClassSessionTime:       "07:00 AM",
		ClassSessionRegion:     region,
		ClassSessionCapacity:   capacity,
		ClassSessionCreatedBy:  uuid.New(),
	}
	if err := db.Create(class).Error; err != nil {
		t.Fatalf("seed class: %v", err)
	}
	return class
}

func seedActiveMembership(t *testing.T, db *gorm.DB, userID uuid.UUID) {
	t.Helper()
	m := &membershipModel.MembershipModel{
		MembershipUserID:    userID,
		MembershipPlan:      "Pro",
		MembershipStatus:    membershipModel.MembershipStatusActive,
		MembershipExpiry:    time.Now().AddDate(0, 6, 0),
		MembershipPaymentID: "pay-1",
	}
	if err := db.Create(m).Error; err != nil {
		t.Fatalf("seed membership: %v", err)
	}
}

func customer(region string) helper.Principal {
	return helper.Principal{ID: uuid.New(), Name: "Arjun", Role: "customer", Region: region}
}

func TestCreateBooking_NonPremiumStartsPending(t *testing.T) {
	db := openTestDB(t)
	class := seedClass(t, db, "north", 20)
	p := customer("north")

	booking, err := CreateBooking(db, p, class.ClassSessionID)
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	if booking.BookingStatus != bookingModel.BookingStatusPending {
		t.Fatalf("want pending, got %s", booking.BookingStatus)
	}
	if booking.BookingClassName != class.ClassSessionName {
		t.Fatalf("class name not denormalized onto booking")
	}

	// pending bookings never consume capacity
	approved, err := CountApproved(db, class.ClassSessionID)
	if err != nil {
		t.Fatalf("count approved: %v", err)
	}
	if approved != 0 {
		t.Fatalf("want 0 approved, got %d", approved)
	}
}

func TestCreateBooking_PremiumIsAutoApproved(t *testing.T) {
	db := openTestDB(t)
	class := seedClass(t, db, "north", 20)
	p := customer("north")
	seedActiveMembership(t, db, p.ID)

	booking, err := CreateBooking(db, p, class.ClassSessionID)
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	if booking.BookingStatus != bookingModel.BookingStatusApproved {
		t.Fatalf("want approved, got %s", booking.BookingStatus)
	}
}

func TestCreateBooking_ExpiredMembershipIsNotPremium(t *testing.T) {
	db := openTestDB(t)
	class := seedClass(t, db, "north", 20)
	p := customer("north")

	m := &membershipModel.MembershipModel{
		MembershipUserID:    p.ID,
		MembershipPlan:      "Basic",
		MembershipStatus:    membershipModel.MembershipStatusActive,
		MembershipExpiry:    time.Now().AddDate(0, -1, 0),
		MembershipPaymentID: "pay-old",
	}
	if err := db.Create(m).Error; err != nil {
		t.Fatalf("seed membership: %v", err)
	}

	booking, err := CreateBooking(db, p, class.ClassSessionID)
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	if booking.BookingStatus != bookingModel.BookingStatusPending {
		t.Fatalf("expired membership must not auto-approve, got %s", booking.BookingStatus)
	}
}

func TestCreateBooking_StaffAccountsAreRefused(t *testing.T) {
	db := openTestDB(t)
	class := seedClass(t, db, "south", 20)

	admin := helper.Principal{ID: uuid.New(), Name: "Root", Role: "admin", Region: ""}
	manager := helper.Principal{ID: uuid.New(), Name: "Meera", Role: "manager", Region: "south"}

	// the role check must run before any region or capacity logic, so
	// even the unscoped admin is turned away at the workflow boundary
	if _, err := CreateBooking(db, admin, class.ClassSessionID); !errors.Is(err, ErrOnlyCustomers) {
		t.Fatalf("admin create: want ErrOnlyCustomers, got %v", err)
	}
	if _, err := CreateBooking(db, manager, class.ClassSessionID); !errors.Is(err, ErrOnlyCustomers) {
		t.Fatalf("manager create: want ErrOnlyCustomers, got %v", err)
	}

	var count int64
	db.Model(&bookingModel.BookingModel{}).Count(&count)
	if count != 0 {
		t.Fatalf("staff attempt wrote %d ledger rows", count)
	}

	if err := CancelBooking(db, manager, uuid.New()); !errors.Is(err, ErrOnlyCustomers) {
		t.Fatalf("manager cancel: want ErrOnlyCustomers, got %v", err)
	}
}

func TestCreateBooking_RegionMismatchIsForbidden(t *testing.T) {
	db := openTestDB(t)
	class := seedClass(t, db, "south", 20)
	p := customer("north")

	_, err := CreateBooking(db, p, class.ClassSessionID)
	if !errors.Is(err, ErrNotYourRegion) {
		t.Fatalf("want ErrNotYourRegion, got %v", err)
	}
}

func TestCreateBooking_AllRegionIsVisibleToEveryone(t *testing.T) {
	db := openTestDB(t)
	class := seedClass(t, db, "all", 20)
	p := customer("north")

	if _, err := CreateBooking(db, p, class.ClassSessionID); err != nil {
		t.Fatalf("all-region class should be bookable: %v", err)
	}
}

func TestCreateBooking_MissingClass(t *testing.T) {
	db := openTestDB(t)
	p := customer("north")

	_, err := CreateBooking(db, p, uuid.New())
	if !errors.Is(err, ErrClassNotFound) {
		t.Fatalf("want ErrClassNotFound, got %v", err)
	}
}

func TestCreateBooking_DuplicateGuard(t *testing.T) {
	db := openTestDB(t)
	class := seedClass(t, db, "north", 20)
	p := customer("north")

	if _, err := CreateBooking(db, p, class.ClassSessionID); err != nil {
		t.Fatalf("first booking: %v", err)
	}
	_, err := CreateBooking(db, p, class.ClassSessionID)
	if !errors.Is(err, ErrAlreadyBooked) {
		t.Fatalf("want ErrAlreadyBooked, got %v", err)
	}
}

func TestCreateBooking_RejectedDoesNotBlockRebooking(t *testing.T) {
	db := openTestDB(t)
	class := seedClass(t, db, "north", 20)
	p := customer("north")

	rejected := &bookingModel.BookingModel{
		BookingUserID:     p.ID,
		BookingMemberName: p.Name,
		BookingClassID:    class.ClassSessionID,
		BookingClassName:  class.ClassSessionName,
		BookingDate:       class.ClassSessionDate,
		BookingTime:       class.ClassSessionTime,
		BookingRegion:     class.ClassSessionRegion,
		BookingStatus:     bookingModel.BookingStatusRejected,
	}
	if err := db.Create(rejected).Error; err != nil {
		t.Fatalf("seed rejected booking: %v", err)
	}

	if _, err := CreateBooking(db, p, class.ClassSessionID); err != nil {
		t.Fatalf("rejected booking must not block a new request: %v", err)
	}
}

func TestCreateBooking_PremiumBlockedWhenFull(t *testing.T) {
	db := openTestDB(t)
	class := seedClass(t, db, "north", 1)

	first := customer("north")
	seedActiveMembership(t, db, first.ID)
	if _, err := CreateBooking(db, first, class.ClassSessionID); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	second := customer("north")
	seedActiveMembership(t, db, second.ID)
	_, err := CreateBooking(db, second, class.ClassSessionID)
	if !errors.Is(err, ErrClassFull) {
		t.Fatalf("want ErrClassFull, got %v", err)
	}

	// the rolled-back booking must not linger in the ledger
	var count int64
	db.Model(&bookingModel.BookingModel{}).
		Where("booking_class_id = ?", class.ClassSessionID).
		Count(&count)
	if count != 1 {
		t.Fatalf("want 1 booking row after rollback, got %d", count)
	}
}

func TestCancelBooking_Semantics(t *testing.T) {
	db := openTestDB(t)
	class := seedClass(t, db, "north", 20)
	p := customer("north")

	booking, err := CreateBooking(db, p, class.ClassSessionID)
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	other := customer("north")
	if err := CancelBooking(db, other, booking.BookingID); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("want ErrNotOwner, got %v", err)
	}

	if err := CancelBooking(db, p, booking.BookingID); err != nil {
		t.Fatalf("cancel own pending booking: %v", err)
	}

	// second cancel of the same id is a no-op, not an error
	if err := CancelBooking(db, p, booking.BookingID); err != nil {
		t.Fatalf("repeat cancel must be idempotent: %v", err)
	}
}

func TestCancelBooking_ApprovedIsRefused(t *testing.T) {
	db := openTestDB(t)
	class := seedClass(t, db, "north", 20)
	p := customer("north")
	seedActiveMembership(t, db, p.ID)

	booking, err := CreateBooking(db, p, class.ClassSessionID)
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	if err := CancelBooking(db, p, booking.BookingID); !errors.Is(err, ErrNotPending) {
		t.Fatalf("want ErrNotPending, got %v", err)
	}
}

func TestTransitionBooking_ApproveAndReject(t *testing.T) {
	db := openTestDB(t)
	class := seedClass(t, db, "north", 20)
	p := customer("north")
	manager := helper.Principal{ID: uuid.New(), Name: "Meera", Role: "manager", Region: "north"}

	booking, err := CreateBooking(db, p, class.ClassSessionID)
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	updated, err := TransitionBooking(db, manager, booking.BookingID, bookingModel.BookingStatusApproved)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if updated.BookingStatus != bookingModel.BookingStatusApproved {
		t.Fatalf("want approved, got %s", updated.BookingStatus)
	}

	approved, err := CountApproved(db, class.ClassSessionID)
	if err != nil {
		t.Fatalf("count approved: %v", err)
	}
	if approved != 1 {
		t.Fatalf("approval must consume capacity, got %d", approved)
	}

	// approved is terminal
	if _, err := TransitionBooking(db, manager, booking.BookingID, bookingModel.BookingStatusRejected); !errors.Is(err, ErrNotPending) {
		t.Fatalf("want ErrNotPending on terminal booking, got %v", err)
	}
}

func TestTransitionBooking_ManagerRegionRecheck(t *testing.T) {
	db := openTestDB(t)
	class := seedClass(t, db, "south", 20)
	p := customer("south")
	northManager := helper.Principal{ID: uuid.New(), Name: "Meera", Role: "manager", Region: "north"}

	booking, err := CreateBooking(db, p, class.ClassSessionID)
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	if _, err := TransitionBooking(db, northManager, booking.BookingID, bookingModel.BookingStatusApproved); !errors.Is(err, ErrRegionMismatch) {
		t.Fatalf("want ErrRegionMismatch, got %v", err)
	}

	// admin is never region-scoped
	admin := helper.Principal{ID: uuid.New(), Name: "Root", Role: "admin", Region: ""}
	if _, err := TransitionBooking(db, admin, booking.BookingID, bookingModel.BookingStatusApproved); err != nil {
		t.Fatalf("admin approve: %v", err)
	}
}

func TestTransitionBooking_ApproveRefusedWhenFull(t *testing.T) {
	db := openTestDB(t)
	class := seedClass(t, db, "north", 1)
	manager := helper.Principal{ID: uuid.New(), Name: "Meera", Role: "manager", Region: "north"}

	premium := customer("north")
	seedActiveMembership(t, db, premium.ID)
	if _, err := CreateBooking(db, premium, class.ClassSessionID); err != nil {
		t.Fatalf("premium booking: %v", err)
	}

	regular := customer("north")
	pending, err := CreateBooking(db, regular, class.ClassSessionID)
	if err != nil {
		t.Fatalf("pending booking: %v", err)
	}

	if _, err := TransitionBooking(db, manager, pending.BookingID, bookingModel.BookingStatusApproved); !errors.Is(err, ErrClassFull) {
		t.Fatalf("want ErrClassFull, got %v", err)
	}

	// the refused approval must roll back to pending
	var stored bookingModel.BookingModel
	if err := db.Where("booking_id = ?", pending.BookingID).First(&stored).Error; err != nil {
		t.Fatalf("reload booking: %v", err)
	}
	if stored.BookingStatus != bookingModel.BookingStatusPending {
		t.Fatalf("want pending after rollback, got %s", stored.BookingStatus)
	}

	// rejecting it is still allowed
	if _, err := TransitionBooking(db, manager, pending.BookingID, bookingModel.BookingStatusRejected); err != nil {
		t.Fatalf("reject: %v", err)
	}
}

func TestTransitionBooking_InvalidTarget(t *testing.T) {
	db := openTestDB(t)
	manager := helper.Principal{ID: uuid.New(), Name: "Meera", Role: "manager", Region: "north"}

	if _, err := TransitionBooking(db, manager, uuid.New(), "pending"); !errors.Is(err, ErrBadTargetStatus) {
		t.Fatalf("want ErrBadTargetStatus, got %v", err)
	}
}

func TestListRequests_RegionScope(t *testing.T) {
	db := openTestDB(t)
	northClass := seedClass(t, db, "north", 20)
	southClass := seedClass(t, db, "south", 20)
	allClass := seedClass(t, db, "all", 20)

	if _, err := CreateBooking(db, customer("north"), northClass.ClassSessionID); err != nil {
		t.Fatalf("north booking: %v", err)
	}
	if _, err := CreateBooking(db, customer("south"), southClass.ClassSessionID); err != nil {
		t.Fatalf("south booking: %v", err)
	}
	if _, err := CreateBooking(db, customer("south"), allClass.ClassSessionID); err != nil {
		t.Fatalf("all-region booking: %v", err)
	}

	manager := helper.Principal{ID: uuid.New(), Name: "Meera", Role: "manager", Region: "north"}
	requests, err := ListRequests(db, manager, "")
	if err != nil {
		t.Fatalf("list requests: %v", err)
	}
	if len(requests) != 2 {
		t.Fatalf("manager should see north + all, got %d", len(requests))
	}
	for _, r := range requests {
		if r.BookingRegion == "south" {
			t.Fatalf("south booking leaked into north manager's queue")
		}
	}

	admin := helper.Principal{ID: uuid.New(), Name: "Root", Role: "admin", Region: ""}
	requests, err = ListRequests(db, admin, "")
	if err != nil {
		t.Fatalf("admin list requests: %v", err)
	}
	if len(requests) != 3 {
		t.Fatalf("admin should see every region, got %d", len(requests))
	}

	if _, err := ListRequests(db, admin, "paid"); !errors.Is(err, ErrBadStatusFilter) {
		t.Fatalf("want ErrBadStatusFilter, got %v", err)
	}
}
