package hotel

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hotelier/internal/domain"
	"hotelier/internal/media"
	"hotelier/internal/pkg/response"
	"hotelier/internal/pkg/validator"
	"hotelier/internal/repository"
)

const maxPhotoSizeMB = 10

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /hotels with filters, sorting and pagination.
func (h *Handler) List(c *gin.Context) {
	ownerID := c.GetInt64("user_id")

	page := 1
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}

	var perPage *int
	if v := c.Query("per_page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			perPage = &n
		}
	}

	result, err := h.service.List(c.Request.Context(), ownerID, c.Request.URL.Query(), page, perPage)
	if err != nil {
		log.Printf("hotel: list failed user_id=%d error=%v", ownerID, err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch hotels")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       result.Hotels,
		"pagination": result.Meta,
		"filters":    result.Filters,
		"meta": gin.H{
			"total":         result.Meta.Total,
			"current_count": len(result.Hotels),
			"has_more":      result.Meta.CurrentPage < result.Meta.LastPage,
		},
	})
}

// Create handles POST /hotels. Accepts JSON or multipart form; a
// photo file, when present, is uploaded before the record is written.
func (h *Handler) Create(c *gin.Context) {
	ownerID := c.GetInt64("user_id")

	var req CreateHotelRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	if fieldErrors := validator.Validate(req); fieldErrors != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", fieldErrors)
		return
	}

	var photoURL *string
	if header, err := c.FormFile("photo"); err == nil {
		if err := media.ValidateImage(header, maxPhotoSizeMB); err != nil {
			response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed",
				map[string]string{"photo": err.Error()})
			return
		}
		file, err := header.Open()
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Cannot read uploaded photo")
			return
		}
		defer file.Close()

		uploaded, err := h.service.UploadPhoto(c.Request.Context(), file, header.Filename)
		if err != nil {
			log.Printf("hotel: photo upload failed user_id=%d error=%v", ownerID, err)
			response.Error(c, http.StatusBadGateway, "UPLOAD_FAILED", "Photo upload failed")
			return
		}
		photoURL = &uploaded
	}

	hotel, err := h.service.Create(c.Request.Context(), ownerID, req, photoURL)
	if err != nil {
		h.handleError(c, err)
		return
	}

	log.Printf("hotel: created hotel_id=%d user_id=%d", hotel.ID, ownerID)
	response.SuccessWithMessage(c, http.StatusCreated, "Hotel created successfully", hotel)
}

// Show handles GET /hotels/:id, tombstoned hotels included.
func (h *Handler) Show(c *gin.Context) {
	id, ok := hotelID(c)
	if !ok {
		return
	}

	hotel, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, hotel)
}

// Update handles PUT /hotels/:id (owner only).
func (h *Handler) Update(c *gin.Context) {
	id, ok := hotelID(c)
	if !ok {
		return
	}

	var req UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	if fieldErrors := validator.Validate(req); fieldErrors != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", fieldErrors)
		return
	}

	ownerID := c.GetInt64("user_id")
	hotel, err := h.service.Update(c.Request.Context(), ownerID, id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	log.Printf("hotel: updated hotel_id=%d user_id=%d", id, ownerID)
	response.SuccessWithMessage(c, http.StatusOK, "Hotel updated successfully", hotel)
}

// UpdatePhoto handles POST /hotels/:id/update-photo (owner only).
func (h *Handler) UpdatePhoto(c *gin.Context) {
	id, ok := hotelID(c)
	if !ok {
		return
	}

	header, err := c.FormFile("photo")
	if err != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed",
			map[string]string{"photo": "required"})
		return
	}
	if err := media.ValidateImage(header, maxPhotoSizeMB); err != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed",
			map[string]string{"photo": err.Error()})
		return
	}

	file, err := header.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Cannot read uploaded photo")
		return
	}
	defer file.Close()

	ownerID := c.GetInt64("user_id")
	photoURL, err := h.service.UpdatePhoto(c.Request.Context(), ownerID, id, file, header.Filename)
	if err != nil {
		h.handleError(c, err)
		return
	}

	log.Printf("hotel: photo updated hotel_id=%d user_id=%d", id, ownerID)
	response.SuccessWithMessage(c, http.StatusOK, "Photo updated successfully", gin.H{"photo_url": photoURL})
}

// Delete handles DELETE /hotels/:id — soft delete only, hard
// deletion is never exposed.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := hotelID(c)
	if !ok {
		return
	}

	ownerID := c.GetInt64("user_id")
	if err := h.service.SoftDelete(c.Request.Context(), ownerID, id); err != nil {
		h.handleError(c, err)
		return
	}

	log.Printf("hotel: soft deleted hotel_id=%d user_id=%d", id, ownerID)
	response.SuccessWithMessage(c, http.StatusOK, "Hotel deleted successfully", nil)
}

// Restore handles PATCH /hotels/:id/restore.
func (h *Handler) Restore(c *gin.Context) {
	id, ok := hotelID(c)
	if !ok {
		return
	}

	ownerID := c.GetInt64("user_id")
	if err := h.service.Restore(c.Request.Context(), ownerID, id); err != nil {
		h.handleError(c, err)
		return
	}

	log.Printf("hotel: restored hotel_id=%d user_id=%d", id, ownerID)
	response.SuccessWithMessage(c, http.StatusOK, "Hotel restored successfully", nil)
}

// Statistics handles GET /hotels/statistics.
func (h *Handler) Statistics(c *gin.Context) {
	ownerID := c.GetInt64("user_id")

	stats, err := h.service.Statistics(c.Request.Context(), ownerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}

// MonthlyStatistics handles GET /hotels/statistics/monthly.
func (h *Handler) MonthlyStatistics(c *gin.Context) {
	ownerID := c.GetInt64("user_id")

	stats, err := h.service.MonthlyStatistics(c.Request.Context(), ownerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}

// Enums handles GET /enums.
func (h *Handler) Enums(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"hotel_status": domain.HotelStatusValues(),
		"currencies":   domain.CurrencyValues(),
	})
}

// FilterOptions handles GET /filter-options.
func (h *Handler) FilterOptions(c *gin.Context) {
	statuses := make([]gin.H, 0, 2)
	for _, v := range domain.HotelStatusValues() {
		statuses = append(statuses, gin.H{"value": v, "label": domain.HotelStatus(v).Label()})
	}

	currencies := make([]gin.H, 0, 3)
	for _, v := range domain.CurrencyValues() {
		currencies = append(currencies, gin.H{
			"value":  v,
			"label":  domain.Currency(v).Label(),
			"symbol": domain.Currency(v).Symbol(),
		})
	}

	response.Success(c, http.StatusOK, gin.H{
		"statuses":        statuses,
		"currencies":      currencies,
		"sort_fields":     repository.SortableHotelFields(),
		"sort_directions": []string{"asc", "desc"},
	})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	hotels := r.Group("/hotels")
	{
		hotels.GET("", h.List)
		hotels.POST("", h.Create)
		hotels.GET("/statistics", h.Statistics)
		hotels.GET("/statistics/monthly", h.MonthlyStatistics)
		hotels.GET("/:id", h.Show)
		hotels.PUT("/:id", h.Update)
		hotels.DELETE("/:id", h.Delete)
		hotels.PATCH("/:id/restore", h.Restore)
		hotels.POST("/:id/update-photo", h.UpdatePhoto)
	}

	r.GET("/enums", h.Enums)
	r.GET("/filter-options", h.FilterOptions)
}

func hotelID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid hotel ID")
		return 0, false
	}
	return id, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hotel not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't have permission to modify this hotel")
	case errors.Is(err, ErrInvalidCurrency):
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed",
			map[string]string{"currency": "must be one of: cfa, eur, usd"})
	case errors.Is(err, ErrInvalidStatus):
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed",
			map[string]string{"status": "must be one of: active, inactive"})
	case errors.Is(err, ErrUploadFailed):
		log.Printf("hotel: upload failed error=%v", err)
		response.Error(c, http.StatusBadGateway, "UPLOAD_FAILED", "Photo upload failed")
	default:
		log.Printf("hotel: unexpected error=%v", err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
