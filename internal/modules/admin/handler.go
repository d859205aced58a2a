package admin

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"travelbook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes exposes the read-only catalog.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/destinations", h.ListDestinations)
	rg.GET("/destinations/:id", h.GetDestination)
	rg.GET("/destinations/:id/hotels", h.ListHotelsByDestination)
	rg.GET("/destinations/:id/restaurants", h.ListRestaurantsByDestination)
	rg.GET("/hotels", h.ListHotels)
	rg.GET("/hotels/:id", h.GetHotel)
	rg.GET("/restaurants", h.ListRestaurants)
	rg.GET("/restaurants/:id", h.GetRestaurant)
}

// RegisterRoutes wires the mutating catalog endpoints; mount behind auth and
// the admin role check.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/destinations", h.CreateDestination)
	rg.PUT("/destinations/:id", h.UpdateDestination)
	rg.DELETE("/destinations/:id", h.DeleteDestination)

	rg.POST("/hotels", h.CreateHotel)
	rg.PUT("/hotels/:id", h.UpdateHotel)
	rg.DELETE("/hotels/:id", h.DeleteHotel)

	rg.POST("/restaurants", h.CreateRestaurant)
	rg.PUT("/restaurants/:id", h.UpdateRestaurant)
	rg.DELETE("/restaurants/:id", h.DeleteRestaurant)
}

func writeAdminError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
	case errors.Is(err, ErrAdminOnly):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Admin access required")
	case errors.Is(err, ErrDestinationNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Destination not found")
	case errors.Is(err, ErrHotelNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hotel not found")
	case errors.Is(err, ErrRestaurantNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Restaurant not found")
	case errors.Is(err, ErrPackageNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Travel package not found")
	case errors.Is(err, ErrNoDefaultPackage):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "No travel package given and no default configured")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Catalog operation failed")
	}
}

func parseID(c *gin.Context, label string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid "+label+" ID")
		return 0, false
	}
	return id, true
}

// CreateDestination accepts JSON, or a multipart form with a "data" JSON
// field and an optional "image" file.
func (h *Handler) CreateDestination(c *gin.Context) {
	var (
		req   DestinationRequest
		image *multipart.FileHeader
	)

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		form, err := c.MultipartForm()
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid multipart form")
			return
		}
		data := form.Value["data"]
		if len(data) == 0 || json.Unmarshal([]byte(data[0]), &req) != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid data payload")
			return
		}
		if files := form.File["image"]; len(files) > 0 {
			image = files[0]
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if req.Name == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "name is required")
		return
	}

	d, err := h.service.CreateDestination(c.Request.Context(), c.GetString("username"), req, image)
	if err != nil {
		if d != nil {
			response.Success(c, http.StatusCreated, gin.H{"destination": d, "warning": "image was not saved"})
			return
		}
		writeAdminError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"destination": d})
}

func (h *Handler) UpdateDestination(c *gin.Context) {
	id, ok := parseID(c, "destination")
	if !ok {
		return
	}

	var (
		req   UpdateDestinationRequest
		image *multipart.FileHeader
	)
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		form, err := c.MultipartForm()
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid multipart form")
			return
		}
		if data := form.Value["data"]; len(data) > 0 {
			if json.Unmarshal([]byte(data[0]), &req) != nil {
				response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid data payload")
				return
			}
		}
		if files := form.File["image"]; len(files) > 0 {
			image = files[0]
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	d, err := h.service.UpdateDestination(c.Request.Context(), c.GetString("username"), id, req, image)
	if err != nil {
		writeAdminError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"destination": d})
}

func (h *Handler) DeleteDestination(c *gin.Context) {
	id, ok := parseID(c, "destination")
	if !ok {
		return
	}

	if err := h.service.DeleteDestination(c.Request.Context(), c.GetString("username"), id); err != nil {
		writeAdminError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) GetDestination(c *gin.Context) {
	id, ok := parseID(c, "destination")
	if !ok {
		return
	}

	d, err := h.service.GetDestination(c.Request.Context(), id)
	if err != nil {
		writeAdminError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"destination": d})
}

func (h *Handler) ListDestinations(c *gin.Context) {
	destinations, err := h.service.ListDestinations(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list destinations")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"destinations": destinations})
}

func (h *Handler) ListHotelsByDestination(c *gin.Context) {
	id, ok := parseID(c, "destination")
	if !ok {
		return
	}

	hotels, err := h.service.ListHotelsByDestination(c.Request.Context(), id)
	if err != nil {
		writeAdminError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"hotels": hotels})
}

func (h *Handler) ListRestaurantsByDestination(c *gin.Context) {
	id, ok := parseID(c, "destination")
	if !ok {
		return
	}

	restaurants, err := h.service.ListRestaurantsByDestination(c.Request.Context(), id)
	if err != nil {
		writeAdminError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"restaurants": restaurants})
}

func (h *Handler) CreateHotel(c *gin.Context) {
	var req HotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	hotel, err := h.service.CreateHotel(c.Request.Context(), c.GetString("username"), req)
	if err != nil {
		writeAdminError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"hotel": hotel})
}

func (h *Handler) UpdateHotel(c *gin.Context) {
	id, ok := parseID(c, "hotel")
	if !ok {
		return
	}

	var req UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	hotel, err := h.service.UpdateHotel(c.Request.Context(), c.GetString("username"), id, req)
	if err != nil {
		writeAdminError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"hotel": hotel})
}

func (h *Handler) DeleteHotel(c *gin.Context) {
	id, ok := parseID(c, "hotel")
	if !ok {
		return
	}

	if err := h.service.DeleteHotel(c.Request.Context(), c.GetString("username"), id); err != nil {
		writeAdminError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) GetHotel(c *gin.Context) {
	id, ok := parseID(c, "hotel")
	if !ok {
		return
	}

	hotel, err := h.service.GetHotel(c.Request.Context(), id)
	if err != nil {
		writeAdminError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"hotel": hotel})
}

func (h *Handler) ListHotels(c *gin.Context) {
	hotels, err := h.service.ListHotels(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list hotels")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"hotels": hotels})
}

func (h *Handler) CreateRestaurant(c *gin.Context) {
	var req RestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	restaurant, err := h.service.CreateRestaurant(c.Request.Context(), c.GetString("username"), req)
	if err != nil {
		writeAdminError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"restaurant": restaurant})
}

func (h *Handler) UpdateRestaurant(c *gin.Context) {
	id, ok := parseID(c, "restaurant")
	if !ok {
		return
	}

	var req UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	restaurant, err := h.service.UpdateRestaurant(c.Request.Context(), c.GetString("username"), id, req)
	if err != nil {
		writeAdminError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"restaurant": restaurant})
}

func (h *Handler) DeleteRestaurant(c *gin.Context) {
	id, ok := parseID(c, "restaurant")
	if !ok {
		return
	}

	if err := h.service.DeleteRestaurant(c.Request.Context(), c.GetString("username"), id); err != nil {
		writeAdminError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) GetRestaurant(c *gin.Context) {
	id, ok := parseID(c, "restaurant")
	if !ok {
		return
	}

	restaurant, err := h.service.GetRestaurant(c.Request.Context(), id)
	if err != nil {
		writeAdminError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"restaurant": restaurant})
}

func (h *Handler) ListRestaurants(c *gin.Context) {
	restaurants, err := h.service.ListRestaurants(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list restaurants")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"restaurants": restaurants})
}
