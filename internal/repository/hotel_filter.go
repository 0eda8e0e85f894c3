package repository

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"hotelier/internal/domain"
)

const filterDateLayout = "2006-01-02"

type predicateBuilder func(q *gorm.DB, value string) *gorm.DB

// hotelFilterKeys fixes the order conjuncts are added in, so the
// generated SQL is deterministic for any given input.
var hotelFilterKeys = []string{
	"status",
	"currency",
	"price_min",
	"price_max",
	"search",
	"date_from",
	"date_to",
}

// Every recognized key maps to a statically enumerated builder. A
// builder that cannot coerce its value leaves the query untouched:
// malformed filter values are skipped, never fail the request. The
// same skip policy applies to malformed dates.
var hotelFilterBuilders = map[string]predicateBuilder{
	"status":    filterStatus,
	"currency":  filterCurrency,
	"price_min": filterPriceMin,
	"price_max": filterPriceMax,
	"search":    filterSearch,
	"date_from": filterDateFrom,
	"date_to":   filterDateTo,
}

// echoedKeys is what AppliedHotelFilters reports back: the filter
// keys plus the sort controls.
var echoedKeys = append(append([]string{}, hotelFilterKeys...), "sort_field", "sort_direction")

// ApplyHotelFilters refines q with the conjunction of every
// recognized, non-empty filter in values.
func ApplyHotelFilters(q *gorm.DB, values url.Values) *gorm.DB {
	for _, key := range hotelFilterKeys {
		value := strings.TrimSpace(values.Get(key))
		if value == "" {
			continue
		}
		q = hotelFilterBuilders[key](q, value)
	}
	return q
}

// AppliedHotelFilters returns the recognized keys present in values,
// with their values unmodified, for echoing back to the caller.
func AppliedHotelFilters(values url.Values) map[string]string {
	applied := make(map[string]string)
	for _, key := range echoedKeys {
		if value := values.Get(key); strings.TrimSpace(value) != "" {
			applied[key] = value
		}
	}
	return applied
}

func filterStatus(q *gorm.DB, value string) *gorm.DB {
	status, err := domain.ParseHotelStatus(value)
	if err != nil {
		return q
	}
	return q.Where("status = ?", status)
}

func filterCurrency(q *gorm.DB, value string) *gorm.DB {
	currency, err := domain.ParseCurrency(value)
	if err != nil {
		return q
	}
	return q.Where("currency = ?", currency)
}

func filterPriceMin(q *gorm.DB, value string) *gorm.DB {
	price, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return q
	}
	return q.Where("price_per_night >= ?", price)
}

func filterPriceMax(q *gorm.DB, value string) *gorm.DB {
	price, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return q
	}
	return q.Where("price_per_night <= ?", price)
}

// filterSearch matches the term case-insensitively across name,
// address, phone and email. LOWER/LIKE instead of ILIKE keeps the
// predicate portable between postgres and sqlite.
func filterSearch(q *gorm.DB, value string) *gorm.DB {
	pattern := "%" + strings.ToLower(value) + "%"
	return q.Where(
		"(LOWER(name) LIKE ? OR LOWER(address) LIKE ? OR LOWER(phone) LIKE ? OR LOWER(email) LIKE ?)",
		pattern, pattern, pattern, pattern,
	)
}

func filterDateFrom(q *gorm.DB, value string) *gorm.DB {
	day, err := time.Parse(filterDateLayout, value)
	if err != nil {
		return q
	}
	return q.Where("created_at >= ?", day)
}

func filterDateTo(q *gorm.DB, value string) *gorm.DB {
	day, err := time.Parse(filterDateLayout, value)
	if err != nil {
		return q
	}
	// inclusive until end of day
	return q.Where("created_at <= ?", day.Add(24*time.Hour-time.Second))
}

// hotelSortColumns is the sort allow-list; requested fields map to
// real column names.
var hotelSortColumns = map[string]string{
	"name":       "name",
	"price":      "price_per_night",
	"status":     "status",
	"currency":   "currency",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

// ResolveHotelSort falls back to (created_at, desc) for any field
// outside the allow-list, and to desc for any direction that is not
// asc or desc.
func ResolveHotelSort(field, direction string) (column, dir string) {
	column, ok := hotelSortColumns[field]
	if !ok {
		return "created_at", "desc"
	}
	if direction != "asc" && direction != "desc" {
		direction = "desc"
	}
	return column, direction
}

// SortableHotelFields lists the allow-listed sort fields in a stable
// order, for the filter-options endpoint.
func SortableHotelFields() []string {
	return []string{"name", "price", "status", "currency", "created_at", "updated_at"}
}
