package admin

type DestinationRequest struct {
	Name        string `json:"name" binding:"required"`
	Country     string `json:"country"`
	Description string `json:"description"`
}

// Update requests merge: empty fields keep the current value.
type UpdateDestinationRequest struct {
	Name        string `json:"name"`
	Country     string `json:"country"`
	Description string `json:"description"`
}

type HotelRequest struct {
	Name            string  `json:"name" binding:"required"`
	Location        string  `json:"location"`
	Address         string  `json:"address"`
	PricePerNight   float64 `json:"price_per_night"`
	DestinationID   *int64  `json:"destination_id"`
	TravelPackageID int64   `json:"travel_package_id"`
}

type UpdateHotelRequest struct {
	Name          string   `json:"name"`
	Location      string   `json:"location"`
	Address       string   `json:"address"`
	PricePerNight *float64 `json:"price_per_night"`
	DestinationID *int64   `json:"destination_id"`
}

type RestaurantRequest struct {
	Name            string `json:"name" binding:"required"`
	Location        string `json:"location"`
	Address         string `json:"address"`
	Cuisine         string `json:"cuisine"`
	DestinationID   *int64 `json:"destination_id"`
	TravelPackageID int64  `json:"travel_package_id"`
}

type UpdateRestaurantRequest struct {
	Name          string `json:"name"`
	Location      string `json:"location"`
	Address       string `json:"address"`
	Cuisine       string `json:"cuisine"`
	DestinationID *int64 `json:"destination_id"`
}
