package hotel

import (
	"context"
	"net/url"

	"hotelier/internal/domain"
	"hotelier/internal/repository"
)

// HotelStore is what the service needs from the datastore. The
// repository implements it; tests mock it.
type HotelStore interface {
	List(ctx context.Context, ownerID int64, values url.Values, page, perPage int) ([]domain.Hotel, int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
	GetByIDWithTrashed(ctx context.Context, id int64) (*domain.Hotel, error)
	Create(ctx context.Context, hotel *domain.Hotel) error
	Update(ctx context.Context, hotel *domain.Hotel) error
	UpdatePhoto(ctx context.Context, id int64, photoURL string) error
	SoftDelete(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) error
	CountTotal(ctx context.Context, ownerID int64) (int64, error)
	CountByStatus(ctx context.Context, ownerID int64, status domain.HotelStatus) (int64, error)
	CountTrashed(ctx context.Context, ownerID int64) (int64, error)
	CreatedPerMonth(ctx context.Context, ownerID int64) ([]repository.MonthlyCount, error)
}

var _ HotelStore = (*repository.HotelRepository)(nil)
