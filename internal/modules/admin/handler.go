package admin

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

// RegisterRoutes mounts the admin surface. The group is expected to carry
// JWTAuth plus the admin role check.
func (h *Handler) RegisterRoutes(adminGroup *gin.RouterGroup) {
	adminGroup.GET("/users", h.ListUsers)
	adminGroup.DELETE("/users/:id", h.DeleteUser)
	adminGroup.DELETE("/listings/:id", h.DeleteListing)
	adminGroup.GET("/stats", h.GetStats)
}

func (h *Handler) ListUsers(c *gin.Context) {
	p := middleware.Principal(c)

	users, err := h.service.ListUsers(c.Request.Context(), p)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"users": users})
}

func (h *Handler) DeleteUser(c *gin.Context) {
	p := middleware.Principal(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), p, id); err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "User deleted successfully"})
}

func (h *Handler) DeleteListing(c *gin.Context) {
	p := middleware.Principal(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid listing ID")
		return
	}

	if err := h.service.DeleteListing(c.Request.Context(), p, id); err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Listing deleted successfully"})
}

func (h *Handler) GetStats(c *gin.Context) {
	p := middleware.Principal(c)

	stats, err := h.service.GetStats(c.Request.Context(), p)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	var forbiddenErr *policy.ForbiddenError
	switch {
	case errors.Is(err, ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
	case errors.Is(err, ErrListingNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Listing not found")
	case errors.As(err, &forbiddenErr):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", forbiddenErr.Reason)
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}
