package domain

import "time"

// TravelPackage is owned by exactly one user (a travel agency in the normal
// case). Packages created by destination-direct bookings carry
// IsPersonalBooking=true and are hidden from public listings.
type TravelPackage struct {
	ID          int64   `gorm:"column:id;primaryKey" json:"id"`
	Name        string  `gorm:"column:name" json:"name"`
	Description string  `gorm:"column:description;type:text" json:"description"`
	Price       float64 `gorm:"column:price" json:"price" validate:"required,gt=0"`

	UserID int64 `gorm:"column:user_id;not null" json:"user_id"`

	// Denormalized copy of the owning agency's name; non-null by schema.
	TravelAgencyName string `gorm:"column:travel_agency_name;not null" json:"travel_agency_name"`

	IsPersonalBooking bool `gorm:"column:is_personal_booking" json:"is_personal_booking"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`

	User        *User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Hotels      []Hotel      `gorm:"foreignKey:TravelPackageID;constraint:OnDelete:CASCADE" json:"hotels,omitempty"`
	Restaurants []Restaurant `gorm:"foreignKey:TravelPackageID;constraint:OnDelete:CASCADE" json:"restaurants,omitempty"`
}

func (TravelPackage) TableName() string { return "travel_packages" }
