package database

import (
	"log"

	"gorm.io/gorm"

	bookingModel "fitzone_backend/internals/features/bookings/bookings/model"
	classModel "fitzone_backend/internals/features/classes/classes/model"
	membershipModel "fitzone_backend/internals/features/memberships/memberships/model"
	authModel "fitzone_backend/internals/features/users/auth/model"
	userModel "fitzone_backend/internals/features/users/user/model"
)

// MigrateAndSeed runs schema migration for every table and upserts the
// fixed membership plan catalog. Idempotent, called once at bootstrap.
func MigrateAndSeed(db *gorm.DB) error {
	log.Println("🔄 Running schema migration...")

	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&authModel.TokenBlacklist{},
		&classModel.ClassSessionModel{},
		&bookingModel.BookingModel{},
		&membershipModel.MembershipModel{},
		&membershipModel.MembershipPlanModel{},
		&membershipModel.MembershipOrderModel{},
		&membershipModel.MembershipHistoryModel{},
		&membershipModel.MembershipGatewayEventModel{},
	); err != nil {
		return err
	}

	if err := membershipModel.SeedDefaultPlans(db); err != nil {
		return err
	}

	log.Println("✅ Schema migration & plan seed done")
	return nil
}
