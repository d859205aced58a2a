package booking

type CreateBookingRequest struct {
	UserID          int64  `json:"user_id"`
	Username        string `json:"username"`
	TravelPackageID int64  `json:"travel_package_id" binding:"required"`
	TravelDate      string `json:"travel_date" binding:"required"`
}

type DestinationBookingRequest struct {
	UserID        int64   `json:"user_id"`
	Username      string  `json:"username"`
	DestinationID int64   `json:"destination_id" binding:"required"`
	HotelID       int64   `json:"hotel_id" binding:"required"`
	TravelDate    string  `json:"travel_date" binding:"required"`
	TotalPrice    float64 `json:"total_price" binding:"required,gt=0"`
}
