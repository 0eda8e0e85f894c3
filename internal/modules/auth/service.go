package auth

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hotelier/internal/domain"
	"hotelier/internal/media"
	"hotelier/internal/notification"
)

type Service struct {
	users         UserStore
	resets        PasswordResetStore
	jwt           tokenIssuer
	mailer        notification.Mailer
	media         media.Uploader
	appBaseURL    string
	resetTokenTTL time.Duration
}

func NewService(
	users UserStore,
	resets PasswordResetStore,
	jwt tokenIssuer,
	mailer notification.Mailer,
	uploader media.Uploader,
	appBaseURL string,
	resetTokenTTL time.Duration,
) *Service {
	return &Service{
		users:         users,
		resets:        resets,
		jwt:           jwt,
		mailer:        mailer,
		media:         uploader,
		appBaseURL:    appBaseURL,
		resetTokenTTL: resetTokenTTL,
	}
}

type AuthResult struct {
	User        *domain.User
	AccessToken string
}

// Register creates an account and returns it with a bearer token.
// The welcome mail is fire-and-forget.
func (s *Service) Register(ctx context.Context, req RegisterRequest, avatarURL string) (*AuthResult, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		AvatarURL:    avatarURL,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.mailer.SendWelcome(user.Email, user.FirstName); err != nil {
		log.Printf("auth: welcome mail failed user_id=%d error=%v", user.ID, err)
	}

	token, err := s.jwt.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, AccessToken: token}, nil
}

// Login returns a bearer token. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, AccessToken: token}, nil
}

func (s *Service) Me(ctx context.Context, userID int64) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}

// UploadAvatar pushes an avatar to the media host without touching
// any account, for register requests that carry a file.
func (s *Service) UploadAvatar(ctx context.Context, file io.Reader, filename string) (string, error) {
	avatarURL, err := s.media.UploadAvatar(ctx, file, filename)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	return avatarURL, nil
}

// UpdateAvatar uploads the new avatar first and persists only on
// upload success; the previous avatar is deleted best-effort.
func (s *Service) UpdateAvatar(ctx context.Context, userID int64, file io.Reader, filename string) (string, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}

	avatarURL, err := s.media.UploadAvatar(ctx, file, filename)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	if err := s.users.UpdateAvatar(ctx, userID, avatarURL); err != nil {
		return "", err
	}

	if user.AvatarURL != "" {
		if !s.media.Delete(ctx, user.AvatarURL) {
			log.Printf("auth: old avatar not deleted user_id=%d url=%s", userID, user.AvatarURL)
		}
	}

	return avatarURL, nil
}

// ForgotPassword issues a reset token when the account exists. It
// returns nil either way so callers cannot probe which emails are
// registered. Only a hash of the token is stored.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	token := newResetToken()
	if err := s.resets.Replace(ctx, user.Email, hashResetToken(token), time.Now().Add(s.resetTokenTTL)); err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s&email=%s",
		s.appBaseURL, token, url.QueryEscape(user.Email))

	if err := s.mailer.SendPasswordReset(user.Email, resetURL); err != nil {
		log.Printf("auth: reset mail failed user_id=%d error=%v", user.ID, err)
	}

	return nil
}

// ResetPassword redeems a reset token. Tokens are single-use and
// expire after the configured TTL.
func (s *Service) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	reset, err := s.resets.FindActive(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidResetToken
		}
		return err
	}

	submitted := hashResetToken(req.Token)
	if subtle.ConstantTimeCompare([]byte(submitted), []byte(reset.TokenHash)) != 1 {
		return ErrInvalidResetToken
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidResetToken
		}
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return err
	}

	return s.resets.MarkUsed(ctx, reset.ID)
}

func newResetToken() string {
	return strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
}

func hashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
