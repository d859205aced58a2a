package domain

import (
	"strings"
	"time"
)

type UserRole string

const (
	RoleAdmin        UserRole = "ADMIN"
	RoleTraveller    UserRole = "TRAVELLER"
	RoleTravelAgency UserRole = "TRAVEL_AGENCY"
)

// NormalizeRole maps raw role strings from clients and legacy rows onto the
// closed role set. Legacy rows carry a "ROLE_" prefix ("ROLE_TRAVELLER").
func NormalizeRole(raw string) UserRole {
	s := strings.ToUpper(strings.TrimSpace(raw))
	s = strings.TrimPrefix(s, "ROLE_")
	return UserRole(s)
}

func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleTraveller, RoleTravelAgency:
		return true
	}
	return false
}

type User struct {
	ID           int64    `json:"id"`
	Username     string   `json:"username" validate:"required"`
	PasswordHash string   `json:"-"`
	Email        string   `json:"email" validate:"required,email"`
	Role         UserRole `json:"role"`

	// Required when Role == TRAVEL_AGENCY, empty otherwise.
	TravelAgencyName string `json:"travel_agency_name,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
