package domain

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type HotelStatus string

const (
	StatusActive   HotelStatus = "active"
	StatusInactive HotelStatus = "inactive"
)

func HotelStatusValues() []string {
	return []string{string(StatusActive), string(StatusInactive)}
}

// ParseHotelStatus rejects anything outside the closed status set.
func ParseHotelStatus(s string) (HotelStatus, error) {
	switch HotelStatus(s) {
	case StatusActive, StatusInactive:
		return HotelStatus(s), nil
	}
	return "", fmt.Errorf("invalid hotel status: %q", s)
}

func (s HotelStatus) Label() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusInactive:
		return "Inactive"
	}
	return string(s)
}

type Currency string

const (
	CurrencyCFA Currency = "cfa"
	CurrencyEUR Currency = "eur"
	CurrencyUSD Currency = "usd"
)

func CurrencyValues() []string {
	return []string{string(CurrencyCFA), string(CurrencyEUR), string(CurrencyUSD)}
}

// ParseCurrency rejects anything outside the closed currency set.
func ParseCurrency(s string) (Currency, error) {
	switch Currency(s) {
	case CurrencyCFA, CurrencyEUR, CurrencyUSD:
		return Currency(s), nil
	}
	return "", fmt.Errorf("invalid currency: %q", s)
}

func (c Currency) Label() string {
	switch c {
	case CurrencyCFA:
		return "CFA Franc"
	case CurrencyEUR:
		return "Euro"
	case CurrencyUSD:
		return "Dollar"
	}
	return string(c)
}

func (c Currency) Symbol() string {
	switch c {
	case CurrencyCFA:
		return "FCFA"
	case CurrencyEUR:
		return "€"
	case CurrencyUSD:
		return "$"
	}
	return ""
}

// Hotel is owned by exactly one user. UserID never changes after
// creation. A non-zero DeletedAt marks a tombstone: the record stays
// addressable for restore but is excluded from non-trashed scopes.
type Hotel struct {
	ID            int64          `json:"id" gorm:"primaryKey"`
	UserID        int64          `json:"user_id" gorm:"index;not null"`
	Name          string         `json:"name" gorm:"not null"`
	Address       string         `json:"address"`
	Email         string         `json:"email"`
	Phone         string         `json:"phone"`
	PricePerNight float64        `json:"price_per_night" gorm:"not null"`
	Currency      Currency       `json:"currency" gorm:"type:varchar(8);not null"`
	PhotoURL      *string        `json:"photo_url,omitempty"`
	Status        HotelStatus    `json:"status" gorm:"type:varchar(16);default:active"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}
