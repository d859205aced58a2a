package domain

import "time"

// Hotel belongs to exactly one travel package and optionally one destination.
type Hotel struct {
	ID            int64   `gorm:"column:id;primaryKey" json:"id"`
	Name          string  `gorm:"column:name" json:"name"`
	Location      string  `gorm:"column:location" json:"location"`
	PricePerNight float64 `gorm:"column:price_per_night" json:"price_per_night" validate:"gte=0"`
	Address       string  `gorm:"column:address" json:"address"`

	TravelPackageID int64  `gorm:"column:travel_package_id;not null" json:"travel_package_id"`
	DestinationID   *int64 `gorm:"column:destination_id" json:"destination_id,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Hotel) TableName() string { return "hotels" }
