package domain

import "time"

// Image association entity types. EntityID is an untyped pointer validated by
// convention only; there is no FK.
const (
	ImageEntityDestination       = "destination"
	ImageEntityHotel             = "hotel"
	ImageEntityRestaurant        = "restaurant"
	ImageEntityPackageHotel      = "package_hotel"
	ImageEntityPackageRestaurant = "package_restaurant"
	ImageEntityGeneral           = "general"
)

type Image struct {
	ID       int64  `gorm:"column:id;primaryKey" json:"id"`
	FilePath string `gorm:"column:file_path" json:"file_path"`
	Filename string `gorm:"column:filename" json:"filename"`

	EntityType string `gorm:"column:entity_type" json:"entity_type"`
	EntityID   int64  `gorm:"column:entity_id" json:"entity_id"`

	// Legacy dual-field scheme; kept in sync with EntityType/EntityID so old
	// rows and new rows are both findable.
	Type            string `gorm:"column:type" json:"-"`
	RelatedEntityID int64  `gorm:"column:related_entity_id" json:"-"`

	UploaderID int64     `gorm:"column:uploader_id;not null" json:"uploader_id"`
	UploadDate time.Time `gorm:"column:upload_date;not null" json:"upload_date"`
}

func (Image) TableName() string { return "images" }
