package admin

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrAdminOnly           = errors.New("admin access required")
	ErrDestinationNotFound = errors.New("destination not found")
	ErrHotelNotFound       = errors.New("hotel not found")
	ErrRestaurantNotFound  = errors.New("restaurant not found")
	ErrPackageNotFound     = errors.New("travel package not found")
	ErrNoDefaultPackage    = errors.New("no default package configured")
)
