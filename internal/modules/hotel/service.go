package hotel

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/url"
	"time"

	"hotelier/internal/domain"
	"hotelier/internal/media"
	"hotelier/internal/repository"
)

type Service struct {
	hotels HotelStore
	media  media.Uploader
}

func NewService(hotels HotelStore, uploader media.Uploader) *Service {
	return &Service{hotels: hotels, media: uploader}
}

type ListResult struct {
	Hotels  []domain.Hotel
	Meta    repository.PageMeta
	Filters map[string]string
}

// List returns one page of the owner's hotels, tombstones included.
// Results are always scoped to ownerID; the requested page size is
// clamped before it reaches the datastore.
func (s *Service) List(ctx context.Context, ownerID int64, values url.Values, page int, perPage *int) (*ListResult, error) {
	size := repository.ClampPerPage(perPage)

	hotels, total, err := s.hotels.List(ctx, ownerID, values, page, size)
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Hotels:  hotels,
		Meta:    repository.NewPageMeta(page, size, total),
		Filters: repository.AppliedHotelFilters(values),
	}, nil
}

// Create stores a new hotel for the owner. Status defaults to active
// when the request leaves it out.
func (s *Service) Create(ctx context.Context, ownerID int64, req CreateHotelRequest, photoURL *string) (*domain.Hotel, error) {
	currency, err := domain.ParseCurrency(req.Currency)
	if err != nil {
		return nil, ErrInvalidCurrency
	}

	status := domain.StatusActive
	if req.Status != "" {
		status, err = domain.ParseHotelStatus(req.Status)
		if err != nil {
			return nil, ErrInvalidStatus
		}
	}

	hotel := &domain.Hotel{
		UserID:        ownerID,
		Name:          req.Name,
		Address:       req.Address,
		Email:         req.Email,
		Phone:         req.Phone,
		PricePerNight: req.PricePerNight,
		Currency:      currency,
		PhotoURL:      photoURL,
		Status:        status,
	}

	if err := s.hotels.Create(ctx, hotel); err != nil {
		return nil, err
	}
	return hotel, nil
}

// Get fetches a hotel by id, tombstoned or not.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Hotel, error) {
	return s.hotels.GetByIDWithTrashed(ctx, id)
}

// Update mutates the owner's hotel. Identity, owner and tombstone
// state are never touched here.
func (s *Service) Update(ctx context.Context, ownerID, id int64, req UpdateHotelRequest) (*domain.Hotel, error) {
	hotel, err := s.hotels.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if hotel.UserID != ownerID {
		return nil, ErrForbidden
	}

	if req.Name != nil {
		hotel.Name = *req.Name
	}
	if req.Address != nil {
		hotel.Address = *req.Address
	}
	if req.Email != nil {
		hotel.Email = *req.Email
	}
	if req.Phone != nil {
		hotel.Phone = *req.Phone
	}
	if req.PricePerNight != nil {
		hotel.PricePerNight = *req.PricePerNight
	}
	if req.Currency != nil {
		currency, err := domain.ParseCurrency(*req.Currency)
		if err != nil {
			return nil, ErrInvalidCurrency
		}
		hotel.Currency = currency
	}
	if req.Status != nil {
		status, err := domain.ParseHotelStatus(*req.Status)
		if err != nil {
			return nil, ErrInvalidStatus
		}
		hotel.Status = status
	}

	if err := s.hotels.Update(ctx, hotel); err != nil {
		return nil, err
	}
	return hotel, nil
}

// UploadPhoto pushes a photo to the media host without touching any
// record, for create requests that carry a file.
func (s *Service) UploadPhoto(ctx context.Context, file io.Reader, filename string) (string, error) {
	photoURL, err := s.media.UploadHotelPhoto(ctx, file, filename)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	return photoURL, nil
}

// UpdatePhoto uploads the new photo first and persists the record
// only on upload success, then deletes the previous photo
// best-effort.
func (s *Service) UpdatePhoto(ctx context.Context, ownerID, id int64, file io.Reader, filename string) (string, error) {
	hotel, err := s.hotels.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if hotel.UserID != ownerID {
		return "", ErrForbidden
	}

	photoURL, err := s.media.UploadHotelPhoto(ctx, file, filename)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	if err := s.hotels.UpdatePhoto(ctx, id, photoURL); err != nil {
		return "", err
	}

	if hotel.PhotoURL != nil && *hotel.PhotoURL != "" {
		if !s.media.Delete(ctx, *hotel.PhotoURL) {
			log.Printf("hotel: old photo not deleted hotel_id=%d url=%s", id, *hotel.PhotoURL)
		}
	}

	return photoURL, nil
}

// SoftDelete tombstones the owner's hotel and forces it inactive.
// Deleting an already tombstoned hotel is a no-op.
func (s *Service) SoftDelete(ctx context.Context, ownerID, id int64) error {
	hotel, err := s.hotels.GetByIDWithTrashed(ctx, id)
	if err != nil {
		return err
	}
	if hotel.UserID != ownerID {
		return ErrForbidden
	}
	if hotel.DeletedAt.Valid {
		return nil
	}
	return s.hotels.SoftDelete(ctx, id)
}

// Restore clears the tombstone and forces the hotel active. On a
// non-tombstoned hotel it still forces the status back to active.
func (s *Service) Restore(ctx context.Context, ownerID, id int64) error {
	hotel, err := s.hotels.GetByIDWithTrashed(ctx, id)
	if err != nil {
		return err
	}
	if hotel.UserID != ownerID {
		return ErrForbidden
	}
	return s.hotels.Restore(ctx, id)
}

func (s *Service) Statistics(ctx context.Context, ownerID int64) (*Statistics, error) {
	total, err := s.hotels.CountTotal(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	active, err := s.hotels.CountByStatus(ctx, ownerID, domain.StatusActive)
	if err != nil {
		return nil, err
	}
	inactive, err := s.hotels.CountByStatus(ctx, ownerID, domain.StatusInactive)
	if err != nil {
		return nil, err
	}
	trashed, err := s.hotels.CountTrashed(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return &Statistics{
		TotalHotels:    total,
		ActiveHotels:   active,
		InactiveHotels: inactive,
		TrashedHotels:  trashed,
	}, nil
}

// MonthlyStatistics returns creation counts per calendar month in
// chronological order, with human-readable month labels.
func (s *Service) MonthlyStatistics(ctx context.Context, ownerID int64) ([]MonthlyStat, error) {
	counts, err := s.hotels.CreatedPerMonth(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	stats := make([]MonthlyStat, 0, len(counts))
	for _, c := range counts {
		label := c.Month
		if month, err := time.Parse("2006-01", c.Month); err == nil {
			label = month.Format("January 2006")
		}
		stats = append(stats, MonthlyStat{Month: label, Total: c.Total})
	}
	return stats, nil
}
