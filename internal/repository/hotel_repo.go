package repository

import (
	"context"
	"net/url"
	"time"

	"gorm.io/gorm"

	"hotelier/internal/domain"
)

type HotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

// List returns one page of the owner's hotels, tombstones included,
// refined by the recognized filters in values and ordered per the
// sort allow-list. The second result is the total before paging.
func (r *HotelRepository) List(
	ctx context.Context,
	ownerID int64,
	values url.Values,
	page, perPage int,
) ([]domain.Hotel, int64, error) {

	var hotels []domain.Hotel
	var total int64

	if page < 1 {
		page = 1
	}

	q := r.db.WithContext(ctx).
		Unscoped().
		Model(&domain.Hotel{}).
		Where("user_id = ?", ownerID)

	q = ApplyHotelFilters(q, values)

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, direction := ResolveHotelSort(values.Get("sort_field"), values.Get("sort_direction"))

	err := q.
		Order(column + " " + direction).
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&hotels).Error

	return hotels, total, err
}

// GetByID fetches a non-tombstoned hotel.
func (r *HotelRepository) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	var hotel domain.Hotel
	err := r.db.WithContext(ctx).First(&hotel, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &hotel, nil
}

// GetByIDWithTrashed fetches a hotel even when it is tombstoned.
func (r *HotelRepository) GetByIDWithTrashed(ctx context.Context, id int64) (*domain.Hotel, error) {
	var hotel domain.Hotel
	err := r.db.WithContext(ctx).Unscoped().First(&hotel, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &hotel, nil
}

func (r *HotelRepository) Create(ctx context.Context, hotel *domain.Hotel) error {
	return r.db.WithContext(ctx).Create(hotel).Error
}

func (r *HotelRepository) Update(ctx context.Context, hotel *domain.Hotel) error {
	return r.db.WithContext(ctx).Save(hotel).Error
}

func (r *HotelRepository) UpdatePhoto(ctx context.Context, id int64, photoURL string) error {
	return r.db.WithContext(ctx).
		Model(&domain.Hotel{}).
		Where("id = ?", id).
		Update("photo_url", photoURL).Error
}

// SoftDelete tombstones the hotel and forces it inactive in a single
// UPDATE. The default scope excludes tombstoned rows, so deleting an
// already tombstoned hotel is a no-op and deleted_at keeps its
// original stamp.
func (r *HotelRepository) SoftDelete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Model(&domain.Hotel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     domain.StatusInactive,
			"deleted_at": time.Now(),
		}).Error
}

// Restore clears the tombstone and forces the hotel active in a
// single UPDATE. Restoring a non-tombstoned hotel still forces the
// status back to active.
func (r *HotelRepository) Restore(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Unscoped().
		Model(&domain.Hotel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     domain.StatusActive,
			"deleted_at": nil,
		}).Error
}

// CountTotal counts the owner's non-tombstoned hotels.
func (r *HotelRepository) CountTotal(ctx context.Context, ownerID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Hotel{}).
		Where("user_id = ?", ownerID).
		Count(&count).Error
	return count, err
}

func (r *HotelRepository) CountByStatus(ctx context.Context, ownerID int64, status domain.HotelStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Hotel{}).
		Where("user_id = ? AND status = ?", ownerID, status).
		Count(&count).Error
	return count, err
}

func (r *HotelRepository) CountTrashed(ctx context.Context, ownerID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Unscoped().
		Model(&domain.Hotel{}).
		Where("user_id = ? AND deleted_at IS NOT NULL", ownerID).
		Count(&count).Error
	return count, err
}

type MonthlyCount struct {
	Month string `gorm:"column:month" json:"month"`
	Total int64  `gorm:"column:total" json:"total"`
}

// CreatedPerMonth buckets the owner's non-tombstoned hotels by
// creation month ("YYYY-MM"), in chronological order.
func (r *HotelRepository) CreatedPerMonth(ctx context.Context, ownerID int64) ([]MonthlyCount, error) {
	// sqlite stores timestamps as text; substr avoids strftime's
	// stricter timestamp parsing.
	monthExpr := "substr(created_at, 1, 7)"
	if r.db.Dialector.Name() == "postgres" {
		monthExpr = "TO_CHAR(created_at, 'YYYY-MM')"
	}

	var counts []MonthlyCount
	err := r.db.WithContext(ctx).
		Model(&domain.Hotel{}).
		Select(monthExpr+" AS month, COUNT(*) AS total").
		Where("user_id = ?", ownerID).
		Group(monthExpr).
		Order("month").
		Scan(&counts).Error
	return counts, err
}
