package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stayhub/internal/middleware"
	"stayhub/internal/pkg/response"
	"stayhub/internal/policy"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	bookings := protected.Group("/bookings")
	{
		bookings.POST("", h.Create)
		bookings.GET("", h.GetAll)
		bookings.GET("/my", h.GetMine)
		bookings.GET("/vendor", h.GetForVendor)
		bookings.GET("/:id", h.GetOne)
		bookings.PUT("/:id", h.UpdateStatus)
		bookings.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) Create(c *gin.Context) {
	p := middleware.Principal(c)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Create(c.Request.Context(), p, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) GetAll(c *gin.Context) {
	p := middleware.Principal(c)

	rows, err := h.service.GetAll(c.Request.Context(), p)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": rows})
}

func (h *Handler) GetMine(c *gin.Context) {
	p := middleware.Principal(c)

	rows, err := h.service.GetMine(c.Request.Context(), p)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": rows})
}

func (h *Handler) GetForVendor(c *gin.Context) {
	p := middleware.Principal(c)

	rows, err := h.service.GetForVendor(c.Request.Context(), p)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": rows})
}

func (h *Handler) GetOne(c *gin.Context) {
	p := middleware.Principal(c)

	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	row, err := h.service.GetOne(c.Request.Context(), p, id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": row})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	p := middleware.Principal(c)

	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	// An absent body means the same thing as an empty status, so only
	// bind when the client actually sent one.
	var req UpdateStatusRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
			return
		}
	}

	b, err := h.service.UpdateStatus(c.Request.Context(), p, id, req.Status)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) Delete(c *gin.Context) {
	p := middleware.Principal(c)

	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), p, id); err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	var forbiddenErr *policy.ForbiddenError
	switch {
	case errors.Is(err, ErrListingNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Listing not found")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case errors.Is(err, ErrInvalidStatus):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Status must be Pending, Confirmed or Cancelled")
	case errors.As(err, &forbiddenErr):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", forbiddenErr.Reason)
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}

func parseIDParam(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
