package repository

import (
	"travelbook/internal/domain"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates every table the repositories touch. Users
// migrate through the private mapping model so its column tags stay the
// single source of truth for that table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&domain.Destination{},
		&domain.TravelPackage{},
		&domain.Hotel{},
		&domain.Restaurant{},
		&domain.Booking{},
		&domain.Complaint{},
		&domain.Image{},
	)
}
