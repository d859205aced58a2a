package travelpackage

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"travelbook/internal/domain"
	"travelbook/internal/pkg/response"
	"travelbook/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/travel-packages", h.List)
	rg.GET("/travel-packages/:id", h.Get)
	rg.GET("/travel-agencies/:username/packages", h.ListByOwner)
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/travel-packages", h.Create)
	rg.PUT("/travel-packages/:id", h.Update)
	rg.DELETE("/travel-packages/:id", h.Delete)
}

func writePackageError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrPackageNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Travel package not found")
	case errors.Is(err, ErrOwnerNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
	case errors.Is(err, ErrNotAgency):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only travel agencies can publish packages")
	case errors.Is(err, ErrAgencyNameMissing):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Agency account has no agency name")
	case errors.Is(err, ErrNotOwner):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not the package owner")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Package operation failed")
	}
}

// Create accepts either a JSON body or a multipart form whose "data" field
// holds the JSON payload, with optional hotel_images and restaurant_images
// file lists mapped positionally onto the child lists.
func (h *Handler) Create(c *gin.Context) {
	var (
		req              CreatePackageRequest
		hotelImages      []*multipart.FileHeader
		restaurantImages []*multipart.FileHeader
	)

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		form, err := c.MultipartForm()
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid multipart form")
			return
		}
		data := form.Value["data"]
		if len(data) == 0 {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing data field")
			return
		}
		if err := json.Unmarshal([]byte(data[0]), &req); err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid data payload")
			return
		}
		hotelImages = form.File["hotel_images"]
		restaurantImages = form.File["restaurant_images"]
	} else if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if req.Name == "" || req.Destination == "" || req.Price <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "name, destination and a positive price are required")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid package payload", details)
		return
	}

	pkg, err := h.service.CreateWithDetails(c.Request.Context(), c.GetString("username"), req, hotelImages, restaurantImages)
	if err != nil {
		if pkg != nil {
			// Package exists; only image persistence failed
			response.Success(c, http.StatusCreated, gin.H{"package": pkg, "warning": "some images were not saved"})
			return
		}
		writePackageError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"package": pkg})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid package ID")
		return
	}

	pkg, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		writePackageError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"package": pkg})
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid package ID")
		return
	}

	var req UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	pkg, err := h.service.Update(c.Request.Context(), c.GetString("username"), id, req)
	if err != nil {
		writePackageError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"package": pkg})
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid package ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), c.GetString("username"), id); err != nil {
		writePackageError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// List returns public packages; with a q parameter it becomes a
// case-insensitive name search.
func (h *Handler) List(c *gin.Context) {
	var (
		packages []domain.TravelPackage
		err      error
	)
	if q := c.Query("q"); q != "" {
		packages, err = h.service.Search(c.Request.Context(), q)
	} else {
		packages, err = h.service.ListPublic(c.Request.Context())
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list packages")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"packages": packages})
}

func (h *Handler) ListByOwner(c *gin.Context) {
	packages, err := h.service.ListByOwner(c.Request.Context(), c.Param("username"))
	if err != nil {
		writePackageError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"packages": packages})
}
