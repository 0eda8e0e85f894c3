package auth

import (
	"context"
	"time"

	"hotelier/internal/domain"
	"hotelier/internal/repository"
)

type UserStore interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateAvatar(ctx context.Context, id int64, avatarURL string) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

type PasswordResetStore interface {
	Replace(ctx context.Context, email, tokenHash string, expiresAt time.Time) error
	FindActive(ctx context.Context, email string) (*domain.PasswordReset, error)
	MarkUsed(ctx context.Context, id int64) error
}

type tokenIssuer interface {
	GenerateToken(userID int64) (string, error)
}

var (
	_ UserStore          = (*repository.UserRepository)(nil)
	_ PasswordResetStore = (*repository.PasswordResetRepository)(nil)
)
