package service

import (
	"testing"

	"github.com/google/uuid"

	bookingModel "fitzone_backend/internals/features/bookings/bookings/model"
)

func TestTierFor(t *testing.T) {
	cases := []struct {
		name     string
		approved int
		capacity int
		want     string
	}{
		{"empty class", 0, 20, TierAvailable},
		{"just under limited", 13, 20, TierAvailable},
		{"limited boundary", 14, 20, TierLimited},
		{"just under almost full", 17, 20, TierLimited},
		{"almost full boundary", 18, 20, TierAlmostFull},
		{"at capacity", 20, 20, TierAlmostFull},
		{"small class half full", 1, 2, TierAvailable},
		{"small class full", 2, 2, TierAlmostFull},
		{"zero capacity falls back to default", 0, 0, TierAvailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TierFor(tc.approved, tc.capacity); got != tc.want {
				t.Fatalf("TierFor(%d, %d) = %s, want %s", tc.approved, tc.capacity, got, tc.want)
			}
		})
	}
}

func TestComputeAvailability_CountsOnlyApproved(t *testing.T) {
	db := openTestDB(t)
	class := seedClass(t, db, "north", 2)

	statuses := []string{
		bookingModel.BookingStatusApproved,
		bookingModel.BookingStatusPending,
		bookingModel.BookingStatusRejected,
	}
	for _, status := range statuses {
		b := &bookingModel.BookingModel{
			BookingUserID:     uuid.New(),
			BookingMemberName: "member",
			BookingClassID:    class.ClassSessionID,
			BookingClassName:  class.ClassSessionName,
			BookingDate:       class.ClassSessionDate,
			BookingTime:       class.ClassSessionTime,
			BookingRegion:     class.ClassSessionRegion,
			BookingStatus:     status,
		}
		if err := db.Create(b).Error; err != nil {
			t.Fatalf("seed booking: %v", err)
		}
	}

	availability, err := ComputeAvailability(db, class)
	if err != nil {
		t.Fatalf("compute availability: %v", err)
	}
	if availability.ApprovedCount != 1 {
		t.Fatalf("want 1 approved, got %d", availability.ApprovedCount)
	}
	if availability.Capacity != 2 {
		t.Fatalf("want capacity 2, got %d", availability.Capacity)
	}
	if availability.Tier != TierAvailable {
		t.Fatalf("1/2 should be %s, got %s", TierAvailable, availability.Tier)
	}
}
