package upload

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

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/images/entity/:type/:id", h.ListByEntity)
	rg.GET("/images/view/*filepath", h.ServeFile)
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/images/upload", h.Upload)
}

func (h *Handler) Upload(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing file field")
		return
	}

	img, err := h.service.UploadGeneral(c.Request.Context(), userID, fh)
	if err != nil {
		switch {
		case errors.Is(err, ErrUploaderNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Uploader not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only admin or travel agency can upload images")
		case errors.Is(err, ErrEmptyFile), errors.Is(err, ErrFileTooLarge), errors.Is(err, ErrInvalidMimeType):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to upload image")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"image": img})
}

func (h *Handler) ListByEntity(c *gin.Context) {
	entityID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid entity ID")
		return
	}

	images, err := h.service.ListByEntity(c.Request.Context(), c.Param("type"), entityID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list images")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"images": images})
}

func (h *Handler) ServeFile(c *gin.Context) {
	abs, err := h.service.ResolvePath(c.Param("filepath"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "File not found")
		return
	}
	c.File(abs)
}
