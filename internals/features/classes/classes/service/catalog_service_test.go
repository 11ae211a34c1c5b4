package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fitzone_backend/internals/constants"
	bookingModel "fitzone_backend/internals/features/bookings/bookings/model"
)

func TestResolveCreateRegion(t *testing.T) {
	cases := []struct {
		name            string
		role            string
		principalRegion string
		requested       string
		want            string
		wantErr         bool
	}{
		{"manager own region wins", constants.RoleManager, "north", "", "north", false},
		{"manager cannot pick another region", constants.RoleManager, "north", "south", "north", false},
		{"manager without region refused", constants.RoleManager, "", "south", "", true},
		{"admin explicit region honored", constants.RoleAdmin, "", "south", "south", false},
		{"admin empty defaults to all", constants.RoleAdmin, "", "", constants.RegionAll, false},
		{"customer refused", constants.RoleCustomer, "north", "north", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolveCreateRegion(tc.role, tc.principalRegion, tc.requested)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("want error, got region %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("want %q, got %q", tc.want, got)
			}
		})
	}
}

func TestEnsureCanDelete(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.Exec(`CREATE TABLE bookings (
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
	);`).Error; err != nil {
		t.Fatalf("create schema: %v", err)
	}

	classID := uuid.New()
	seed := func(status string) {
		b := &bookingModel.BookingModel{
			BookingUserID:     uuid.New(),
			BookingMemberName: "member",
			BookingClassID:    classID,
			BookingClassName:  "Morning Yoga",
			BookingDate:       "2026-09-15",
			BookingTime:       "07:00 AM",
			BookingRegion:     "north",
			BookingStatus:     status,
		}
		if err := db.Create(b).Error; err != nil {
			t.Fatalf("seed booking: %v", err)
		}
	}

	// rejected bookings never block deletion
	seed(bookingModel.BookingStatusRejected)
	if err := EnsureCanDelete(db, classID.String()); err != nil {
		t.Fatalf("rejected-only class should be deletable: %v", err)
	}

	seed(bookingModel.BookingStatusPending)
	err = EnsureCanDelete(db, classID.String())
	if err == nil {
		t.Fatalf("pending booking must block deletion")
	}
	if fe, ok := err.(*fiber.Error); !ok || fe.Code != fiber.StatusConflict {
		t.Fatalf("want 409 conflict, got %v", err)
	}

	// a different class is unaffected
	if err := EnsureCanDelete(db, uuid.NewString()); err != nil {
		t.Fatalf("unrelated class should be deletable: %v", err)
	}
}
