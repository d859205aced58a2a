package domain

import "time"

type Restaurant struct {
	ID       int64  `gorm:"column:id;primaryKey" json:"id"`
	Name     string `gorm:"column:name" json:"name"`
	Location string `gorm:"column:location" json:"location"`
	Address  string `gorm:"column:address" json:"address"`

	// Both cuisine columns exist in the legacy schema; writes keep them in sync.
	Cuisine     string `gorm:"column:cuisine" json:"cuisine"`
	CuisineType string `gorm:"column:cuisine_type" json:"cuisine_type"`

	TravelPackageID int64  `gorm:"column:travel_package_id;not null" json:"travel_package_id"`
	DestinationID   *int64 `gorm:"column:destination_id" json:"destination_id,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Restaurant) TableName() string { return "restaurants" }
