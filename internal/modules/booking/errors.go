package booking

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrPackageNotFound     = errors.New("travel package not found")
	ErrDestinationNotFound = errors.New("destination not found")
	ErrHotelNotFound       = errors.New("hotel not found")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrOnlyTravellers      = errors.New("only travellers can book")
	ErrInvalidTravelDate   = errors.New("invalid travel date")
)
