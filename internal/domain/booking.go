package domain

import "time"

type Booking struct {
	ID int64 `gorm:"column:id;primaryKey" json:"id"`

	// BookingDate is server-assigned at creation, never client-supplied.
	BookingDate time.Time `gorm:"column:booking_date" json:"booking_date"`
	TravelDate  time.Time `gorm:"column:travel_date" json:"travel_date"`
	TotalPrice  float64   `gorm:"column:total_price" json:"total_price"`

	UserID          int64 `gorm:"column:user_id;not null" json:"user_id"`
	TravelPackageID int64 `gorm:"column:travel_package_id;not null" json:"travel_package_id"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`

	User          *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	TravelPackage *TravelPackage `gorm:"foreignKey:TravelPackageID" json:"travel_package,omitempty"`
}

func (Booking) TableName() string { return "bookings" }

// TravelDateLayout is the wire format for travel dates.
const TravelDateLayout = "2006-01-02"
