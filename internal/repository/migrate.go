package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the schema for every persisted model.
// Used by the seeder and the e2e suite; production schemas are managed the
// same way on first boot.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&listingModel{},
		&bookingModel{},
	)
}
