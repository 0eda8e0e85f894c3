package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"hotelier/internal/domain"
)

type PasswordResetRepository struct {
	db *gorm.DB
}

func NewPasswordResetRepository(db *gorm.DB) *PasswordResetRepository {
	return &PasswordResetRepository{db: db}
}

// Replace drops any earlier reset rows for the email and stores a new
// one, so at most one token is redeemable per account.
func (r *PasswordResetRepository) Replace(ctx context.Context, email, tokenHash string, expiresAt time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("email = ?", email).Delete(&domain.PasswordReset{}).Error; err != nil {
			return err
		}
		return tx.Create(&domain.PasswordReset{
			Email:     email,
			TokenHash: tokenHash,
			ExpiresAt: expiresAt,
		}).Error
	})
}

// FindActive returns the newest unused, unexpired reset row for the
// email, or gorm.ErrRecordNotFound.
func (r *PasswordResetRepository) FindActive(ctx context.Context, email string) (*domain.PasswordReset, error) {
	var reset domain.PasswordReset
	err := r.db.WithContext(ctx).
		Where("email = ? AND used_at IS NULL AND expires_at > ?", email, time.Now()).
		Order("created_at DESC").
		First(&reset).Error
	if err != nil {
		return nil, err
	}
	return &reset, nil
}

func (r *PasswordResetRepository) MarkUsed(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Model(&domain.PasswordReset{}).
		Where("id = ?", id).
		Update("used_at", time.Now()).Error
}
