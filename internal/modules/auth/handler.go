package auth

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelier/internal/media"
	"hotelier/internal/pkg/response"
	"hotelier/internal/pkg/validator"
	"hotelier/internal/repository"
)

const maxAvatarSizeMB = 5

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register handles POST /auth/register. Accepts JSON or multipart
// form; an optional avatar file is uploaded before the account is
// created.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	if fieldErrors := validator.Validate(req); fieldErrors != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", fieldErrors)
		return
	}

	var avatarURL string
	if header, err := c.FormFile("avatar"); err == nil {
		if err := media.ValidateImage(header, maxAvatarSizeMB); err != nil {
			response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed",
				map[string]string{"avatar": err.Error()})
			return
		}
		file, err := header.Open()
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Cannot read uploaded avatar")
			return
		}
		defer file.Close()

		avatarURL, err = h.service.UploadAvatar(c.Request.Context(), file, header.Filename)
		if err != nil {
			log.Printf("auth: avatar upload failed error=%v", err)
			response.Error(c, http.StatusBadGateway, "UPLOAD_FAILED", "Avatar upload failed")
			return
		}
	}

	result, err := h.service.Register(c.Request.Context(), req, avatarURL)
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed",
				map[string]string{"email": "already registered"})
			return
		}
		h.handleError(c, err)
		return
	}

	log.Printf("auth: registered user_id=%d", result.User.ID)
	response.Success(c, http.StatusCreated, gin.H{
		"user":         result.User,
		"access_token": result.AccessToken,
		"token_type":   "Bearer",
	})
}

// Login handles POST /auth/login.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	if fieldErrors := validator.Validate(req); fieldErrors != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", fieldErrors)
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
			return
		}
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":         result.User,
		"access_token": result.AccessToken,
		"token_type":   "Bearer",
	})
}

// Logout handles POST /auth/logout. Tokens are stateless; the client
// discards its copy.
func (h *Handler) Logout(c *gin.Context) {
	response.SuccessWithMessage(c, http.StatusOK, "Logged out successfully", nil)
}

// Me handles GET /auth/user.
func (h *Handler) Me(c *gin.Context) {
	userID := c.GetInt64("user_id")

	user, err := h.service.Me(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, user)
}

// UpdateAvatar handles POST /auth/update-avatar.
func (h *Handler) UpdateAvatar(c *gin.Context) {
	header, err := c.FormFile("avatar")
	if err != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed",
			map[string]string{"avatar": "required"})
		return
	}
	if err := media.ValidateImage(header, maxAvatarSizeMB); err != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed",
			map[string]string{"avatar": err.Error()})
		return
	}

	file, err := header.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Cannot read uploaded avatar")
		return
	}
	defer file.Close()

	userID := c.GetInt64("user_id")
	avatarURL, err := h.service.UpdateAvatar(c.Request.Context(), userID, file, header.Filename)
	if err != nil {
		if errors.Is(err, ErrUploadFailed) {
			log.Printf("auth: avatar upload failed user_id=%d error=%v", userID, err)
			response.Error(c, http.StatusBadGateway, "UPLOAD_FAILED", "Avatar upload failed")
			return
		}
		h.handleError(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, "Avatar updated successfully", gin.H{"avatar_url": avatarURL})
}

// ForgotPassword handles POST /auth/forgot-password. The response is
// identical whether or not the email exists.
func (h *Handler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	if fieldErrors := validator.Validate(req); fieldErrors != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", fieldErrors)
		return
	}

	if err := h.service.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		h.handleError(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusOK,
		"If your email exists in our system, you will receive a reset link.", nil)
}

// ResetPassword handles POST /auth/reset-password.
func (h *Handler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	if fieldErrors := validator.Validate(req); fieldErrors != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", fieldErrors)
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), req); err != nil {
		if errors.Is(err, ErrInvalidResetToken) {
			response.Error(c, http.StatusBadRequest, "INVALID_RESET_TOKEN", "Invalid or expired reset token")
			return
		}
		h.handleError(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, "Password has been reset", nil)
}

// RegisterRoutes registers the public auth routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/forgot-password", h.ForgotPassword)
		auth.POST("/reset-password", h.ResetPassword)
	}
}

// RegisterProtectedRoutes registers the auth routes that require a
// valid token.
func (h *Handler) RegisterProtectedRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/logout", h.Logout)
		auth.GET("/user", h.Me)
		auth.POST("/update-avatar", h.UpdateAvatar)
	}
}

func (h *Handler) handleError(c *gin.Context, err error) {
	log.Printf("auth: unexpected error=%v", err)
	response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
}
