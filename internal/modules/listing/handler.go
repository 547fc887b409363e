package listing

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"stayhub/internal/domain"
	"stayhub/internal/middleware"
	"stayhub/internal/pkg/response"
	"stayhub/internal/policy"
	"stayhub/internal/repository"
)

const maxImagesPerListing = 5

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

type Handler struct {
	service   *Service
	uploadDir string
}

// NewHandler creates a listing handler; uploadDir is where image files land
// on disk, served back under /uploads.
func NewHandler(service *Service, uploadDir string) *Handler {
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	return &Handler{service: service, uploadDir: uploadDir}
}

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	api.GET("/listings", h.List)
	api.GET("/listings/:id", h.Get)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.POST("/listings", h.Create)
	protected.PUT("/listings/:id", h.Update)
	protected.DELETE("/listings/:id", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	p := middleware.Principal(c)

	// Gate before any file lands on disk; a denied request must leave no
	// trace in the upload dir.
	if err := policy.Decide(p, policy.ActionCreateListing, nil).Err(); err != nil {
		h.writeError(c, err)
		return
	}

	if err := c.Request.ParseMultipartForm(10 << 20); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_FORM", "Failed to parse form")
		return
	}

	pricing, err := strconv.ParseFloat(c.PostForm("pricing"), 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid pricing value")
		return
	}

	files := c.Request.MultipartForm.File["images"]
	if len(files) == 0 {
		response.Error(c, http.StatusBadRequest, "NO_IMAGES", "At least one image is required")
		return
	}
	if len(files) > maxImagesPerListing {
		response.Error(c, http.StatusBadRequest, "TOO_MANY_IMAGES",
			fmt.Sprintf("At most %d images are allowed", maxImagesPerListing))
		return
	}

	imageURLs, err := h.saveImages(c, files)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "SAVE_FAILED", err.Error())
		return
	}

	in := CreateListingInput{
		Type: domain.ListingType(c.PostForm("type")),
		Name: c.PostForm("name"),
		Address: domain.Address{
			Street: c.PostForm("street"),
			City:   c.PostForm("city"),
			State:  c.PostForm("state"),
			Zip:    c.PostForm("zip"),
		},
		Contact:     c.PostForm("contact"),
		Description: c.PostForm("description"),
		Facilities:  c.PostFormArray("facilities"),
		Pricing:     pricing,
		Images:      imageURLs,
	}

	l, err := h.service.Create(c.Request.Context(), p, in)
	if err != nil {
		h.removeImages(imageURLs)
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"listing": l})
}

func (h *Handler) List(c *gin.Context) {
	var f repository.ListingFilters
	if v := c.Query("vendor_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid vendor_id")
			return
		}
		f.VendorID = id
	}

	listings, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"listings": listings})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid listing ID")
		return
	}

	l, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"listing": l})
}

func (h *Handler) Update(c *gin.Context) {
	p := middleware.Principal(c)

	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid listing ID")
		return
	}

	var patch UpdateListingRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	l, err := h.service.Update(c.Request.Context(), p, id, patch)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"listing": l})
}

func (h *Handler) Delete(c *gin.Context) {
	p := middleware.Principal(c)

	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid listing ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), p, id); err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Listing deleted successfully"})
}

func (h *Handler) saveImages(c *gin.Context, files []*multipart.FileHeader) ([]string, error) {
	if err := os.MkdirAll(h.uploadDir, os.ModePerm); err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(files))
	for _, file := range files {
		ext := strings.ToLower(filepath.Ext(file.Filename))
		if !allowedImageExts[ext] {
			return nil, fmt.Errorf("unsupported image type %q", ext)
		}

		filename := uuid.NewString() + ext
		savePath := filepath.Join(h.uploadDir, filename)
		if err := c.SaveUploadedFile(file, savePath); err != nil {
			return nil, err
		}

		urls = append(urls, "/uploads/"+filename)
	}
	return urls, nil
}

// removeImages drops files saved for a request that did not end in a
// persisted listing, so failed creates leave no orphans behind.
func (h *Handler) removeImages(urls []string) {
	for _, u := range urls {
		name := strings.TrimPrefix(u, "/uploads/")
		_ = os.Remove(filepath.Join(h.uploadDir, name))
	}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	var (
		forbiddenErr  *policy.ForbiddenError
		validationErr *ValidationError
	)
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Listing not found")
	case errors.As(err, &forbiddenErr):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", forbiddenErr.Reason)
	case errors.As(err, &validationErr):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR",
			"Listing validation failed", validationErr.Fields)
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}

func parseIDParam(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
