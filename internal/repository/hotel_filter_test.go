package repository

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveHotelSort(t *testing.T) {
	tests := []struct {
		name      string
		field     string
		direction string
		wantCol   string
		wantDir   string
	}{
		{"allowed field asc", "name", "asc", "name", "asc"},
		{"allowed field desc", "name", "desc", "name", "desc"},
		{"price maps to column", "price", "asc", "price_per_night", "asc"},
		{"status", "status", "desc", "status", "desc"},
		{"currency", "currency", "asc", "currency", "asc"},
		{"created_at", "created_at", "asc", "created_at", "asc"},
		{"updated_at", "updated_at", "desc", "updated_at", "desc"},
		{"unknown field falls back", "password_hash", "asc", "created_at", "desc"},
		{"empty field falls back", "", "asc", "created_at", "desc"},
		{"sql injection attempt falls back", "name; DROP TABLE hotels", "asc", "created_at", "desc"},
		{"invalid direction defaults to desc", "name", "sideways", "name", "desc"},
		{"empty direction defaults to desc", "price", "", "price_per_night", "desc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, dir := ResolveHotelSort(tt.field, tt.direction)
			assert.Equal(t, tt.wantCol, col)
			assert.Equal(t, tt.wantDir, dir)
		})
	}
}

func TestAppliedHotelFilters(t *testing.T) {
	values := url.Values{}
	values.Set("status", "active")
	values.Set("price_min", "50")
	values.Set("search", "Paradise")
	values.Set("sort_field", "price")
	values.Set("page", "2")         // not a filter key
	values.Set("per_page", "20")    // not a filter key
	values.Set("unknown_key", "x")  // not recognized
	values.Set("date_from", "   ")  // blank values are not echoed

	applied := AppliedHotelFilters(values)

	assert.Equal(t, map[string]string{
		"status":     "active",
		"price_min":  "50",
		"search":     "Paradise",
		"sort_field": "price",
	}, applied)
}

func TestAppliedHotelFilters_Empty(t *testing.T) {
	assert.Empty(t, AppliedHotelFilters(url.Values{}))
}
