package complaint

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
	rg.POST("/complaints", h.Submit)
	rg.GET("/complaints/user/:username", h.ListByUsername)
}

// RegisterAdminRoutes wires the moderation endpoints; mount behind the admin
// role check.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/complaints", h.ListAll)
	rg.GET("/complaints/status/:status", h.ListByStatus)
	rg.PUT("/complaints/:id/status", h.UpdateStatus)
}

func writeComplaintError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
	case errors.Is(err, ErrComplaintNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Complaint not found")
	case errors.Is(err, ErrBlankFields):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Subject, description and entity name are required")
	case errors.Is(err, ErrInvalidType):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Complaint type must be RESTAURANT, TRAVEL_PACKAGE or TRAVEL_AGENCY")
	case errors.Is(err, ErrInvalidStatus):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Status must be PENDING, IN_PROGRESS, RESOLVED or REJECTED")
	case errors.Is(err, ErrAdminOnly):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Admin access required")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Complaint operation failed")
	}
}

func (h *Handler) Submit(c *gin.Context) {
	var req SubmitComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if req.UserID == 0 && req.Username == "" {
		req.Username = c.GetString("username")
	}

	complaint, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		writeComplaintError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"complaint": complaint})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid complaint ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	complaint, err := h.service.UpdateStatus(c.Request.Context(), c.GetString("username"), id, req)
	if err != nil {
		writeComplaintError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"complaint": complaint})
}

func (h *Handler) ListAll(c *gin.Context) {
	complaints, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list complaints")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"complaints": complaints})
}

func (h *Handler) ListByUsername(c *gin.Context) {
	complaints, err := h.service.ListByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		writeComplaintError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"complaints": complaints})
}

func (h *Handler) ListByStatus(c *gin.Context) {
	complaints, err := h.service.ListByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		writeComplaintError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"complaints": complaints})
}
