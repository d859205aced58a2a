package domain

import "time"

type ComplaintType string

const (
	ComplaintRestaurant    ComplaintType = "RESTAURANT"
	ComplaintTravelPackage ComplaintType = "TRAVEL_PACKAGE"
	ComplaintTravelAgency  ComplaintType = "TRAVEL_AGENCY"
)

func (t ComplaintType) Valid() bool {
	switch t {
	case ComplaintRestaurant, ComplaintTravelPackage, ComplaintTravelAgency:
		return true
	}
	return false
}

type ComplaintStatus string

const (
	ComplaintPending    ComplaintStatus = "PENDING"
	ComplaintInProgress ComplaintStatus = "IN_PROGRESS"
	ComplaintResolved   ComplaintStatus = "RESOLVED"
	ComplaintRejected   ComplaintStatus = "REJECTED"
)

// Any status in the set may be set from any other; only membership is
// validated. See the complaint service for the resolvedAt stamping rule.
func (s ComplaintStatus) Valid() bool {
	switch s {
	case ComplaintPending, ComplaintInProgress, ComplaintResolved, ComplaintRejected:
		return true
	}
	return false
}

type Complaint struct {
	ID          int64         `gorm:"column:id;primaryKey" json:"id"`
	Subject     string        `gorm:"column:subject;not null" json:"subject"`
	Description string        `gorm:"column:description;not null;type:text" json:"description"`
	Type        ComplaintType `gorm:"column:complaint_type;not null" json:"complaint_type"`

	UserID   int64  `gorm:"column:user_id;not null" json:"user_id"`
	Username string `gorm:"column:username;not null" json:"username"`

	// Free-text name of the complained-about entity; no FK.
	EntityName string `gorm:"column:entity_name" json:"entity_name"`
	EntityID   int64  `gorm:"column:entity_id;not null;default:0" json:"entity_id"`

	Status   ComplaintStatus `gorm:"column:status" json:"status"`
	Response string          `gorm:"column:response;type:text" json:"response,omitempty"`

	CreatedAt      time.Time  `gorm:"column:created_at;not null" json:"created_at"`
	SubmissionDate time.Time  `gorm:"column:submission_date;not null" json:"submission_date"`
	ResolvedAt     *time.Time `gorm:"column:resolved_at" json:"resolved_at,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (Complaint) TableName() string { return "complaints" }
