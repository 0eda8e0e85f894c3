package domain

import "time"

type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	FirstName    string    `json:"first_name" gorm:"not null"`
	LastName     string    `json:"last_name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PasswordReset keeps only a hash of the reset token at rest. A row
// is single-use: UsedAt is stamped when the token is redeemed.
type PasswordReset struct {
	ID        int64      `json:"id" gorm:"primaryKey"`
	Email     string     `json:"email" gorm:"index;not null"`
	TokenHash string     `json:"-" gorm:"not null"`
	ExpiresAt time.Time  `json:"expires_at"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
