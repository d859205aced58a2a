package travelpackage

type HotelInput struct {
	Name          string  `json:"name" binding:"required" validate:"required"`
	Location      string  `json:"location"`
	Address       string  `json:"address"`
	PricePerNight float64 `json:"price_per_night" validate:"gte=0"`
	DestinationID *int64  `json:"destination_id"`
}

type RestaurantInput struct {
	Name          string `json:"name" binding:"required" validate:"required"`
	Location      string `json:"location"`
	Address       string `json:"address"`
	Cuisine       string `json:"cuisine"`
	DestinationID *int64 `json:"destination_id"`
}

type CreatePackageRequest struct {
	Name        string            `json:"name" binding:"required" validate:"required"`
	Destination string            `json:"destination" binding:"required" validate:"required"`
	Price       float64           `json:"price" binding:"required,gt=0" validate:"required,gt=0"`
	Hotels      []HotelInput      `json:"hotels" validate:"dive"`
	Restaurants []RestaurantInput `json:"restaurants" validate:"dive"`
}

// UpdatePackageRequest overwrites scalar fields; a non-nil child list replaces
// every existing child of that kind.
type UpdatePackageRequest struct {
	Name        string             `json:"name" binding:"required"`
	Description string             `json:"description"`
	Price       float64            `json:"price" binding:"required,gt=0"`
	Hotels      *[]HotelInput      `json:"hotels"`
	Restaurants *[]RestaurantInput `json:"restaurants"`
}
