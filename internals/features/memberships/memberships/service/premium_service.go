package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitzone_backend/internals/features/memberships/memberships/model"
)

// IsPremiumAt reports whether the user holds an active, unexpired
// membership at the given instant. A missing row simply means "not
// premium". Expiry is a pure function of the clock: the moment
// membership_expiry passes, this flips to false with no transition
// event written anywhere.
func IsPremiumAt(db *gorm.DB, userID uuid.UUID, at time.Time) (bool, error) {
	var membership model.MembershipModel
	err := db.Where("membership_user_id = ?", userID).First(&membership).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return membership.IsActiveAt(at), nil
}

// IsPremium is the wall-clock form used on every booking attempt.
// The result is never cached across a session: each call re-reads the
// membership row.
func IsPremium(db *gorm.DB, userID uuid.UUID) (bool, error) {
	return IsPremiumAt(db, userID, time.Now())
}
