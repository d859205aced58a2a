package booking

import (
	"errors"
	"net/http"
	"strconv"

	"travelbook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.Create)
	rg.POST("/bookings/destination", h.BookDestination)
	rg.GET("/bookings", h.List)
	rg.GET("/bookings/:id", h.Get)
	rg.DELETE("/bookings/:id", h.Cancel)
	rg.GET("/booking-packages", h.AvailablePackages)
	rg.GET("/booking-eligibility/:userId", h.ValidateRole)
}

func writeBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
	case errors.Is(err, ErrPackageNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Travel package not found")
	case errors.Is(err, ErrDestinationNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Destination not found")
	case errors.Is(err, ErrHotelNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hotel not found")
	case errors.Is(err, ErrBookingNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case errors.Is(err, ErrOnlyTravellers):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only travellers can book")
	case errors.Is(err, ErrInvalidTravelDate):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Travel date must be in YYYY-MM-DD format")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Booking operation failed")
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if req.UserID == 0 && req.Username == "" {
		req.Username = c.GetString("username")
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) BookDestination(c *gin.Context) {
	var req DestinationBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if req.UserID == 0 && req.Username == "" {
		req.Username = c.GetString("username")
	}

	b, err := h.service.BookDestination(c.Request.Context(), req)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	b, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) Cancel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	if err := h.service.Cancel(c.Request.Context(), id); err != nil {
		writeBookingError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"cancelled": true})
}

// List returns bookings for the user named by the user_id or username query
// parameter, defaulting to the authenticated user.
func (h *Handler) List(c *gin.Context) {
	if raw := c.Query("user_id"); raw != "" {
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
			return
		}
		bookings, err := h.service.ListByUserID(c.Request.Context(), userID)
		if err != nil {
			writeBookingError(c, err)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
		return
	}

	username := c.Query("username")
	if username == "" {
		username = c.GetString("username")
	}
	if username == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "user_id or username required")
		return
	}

	bookings, err := h.service.ListByUsername(c.Request.Context(), username)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) AvailablePackages(c *gin.Context) {
	packages, err := h.service.AvailablePackages(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list packages")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"packages": packages})
}

func (h *Handler) ValidateRole(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	ok, err := h.service.ValidateRole(c.Request.Context(), userID)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"can_book": ok})
}
