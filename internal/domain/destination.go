package domain

import "time"

// Destination owns hotels and restaurants independently of package ownership:
// a hotel can reference both a package and a destination. There is no schema
// cascade from destinations to children; deletion cleans them up explicitly.
type Destination struct {
	ID          int64  `gorm:"column:id;primaryKey" json:"id"`
	Name        string `gorm:"column:name" json:"name"`
	Country     string `gorm:"column:country" json:"country"`
	Description string `gorm:"column:description;type:text" json:"description"`
	ImagePath   string `gorm:"column:image_path" json:"image_path,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`

	Hotels      []Hotel      `gorm:"foreignKey:DestinationID" json:"hotels,omitempty"`
	Restaurants []Restaurant `gorm:"foreignKey:DestinationID" json:"restaurants,omitempty"`
}

func (Destination) TableName() string { return "destinations" }
