package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampPerPage(t *testing.T) {
	intPtr := func(n int) *int { return &n }

	tests := []struct {
		name      string
		requested *int
		want      int
	}{
		{"absent defaults to 15", nil, 15},
		{"below floor clamps to 5", intPtr(1), 5},
		{"zero clamps to 5", intPtr(0), 5},
		{"negative clamps to 5", intPtr(-10), 5},
		{"floor passes through", intPtr(5), 5},
		{"in range passes through", intPtr(42), 42},
		{"ceiling passes through", intPtr(100), 100},
		{"above ceiling clamps to 100", intPtr(500), 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampPerPage(tt.requested)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, MinPerPage)
			assert.LessOrEqual(t, got, MaxPerPage)
		})
	}
}

func TestNewPageMeta(t *testing.T) {
	meta := NewPageMeta(2, 15, 31)

	assert.Equal(t, 2, meta.CurrentPage)
	assert.Equal(t, 3, meta.LastPage)
	assert.Equal(t, 15, meta.PerPage)
	assert.Equal(t, int64(31), meta.Total)
	assert.Equal(t, 16, *meta.From)
	assert.Equal(t, 30, *meta.To)
	assert.Equal(t, 1, meta.Links.First)
	assert.Equal(t, 3, meta.Links.Last)
	assert.Equal(t, 1, *meta.Links.Prev)
	assert.Equal(t, 3, *meta.Links.Next)
}

func TestNewPageMeta_LastPartialPage(t *testing.T) {
	meta := NewPageMeta(3, 15, 31)

	assert.Equal(t, 31, *meta.From)
	assert.Equal(t, 31, *meta.To)
	assert.Nil(t, meta.Links.Next)
}

func TestNewPageMeta_Empty(t *testing.T) {
	meta := NewPageMeta(1, 15, 0)

	assert.Equal(t, 1, meta.CurrentPage)
	assert.Equal(t, 1, meta.LastPage)
	assert.Nil(t, meta.From)
	assert.Nil(t, meta.To)
	assert.Nil(t, meta.Links.Prev)
	assert.Nil(t, meta.Links.Next)
}

func TestNewPageMeta_PageBeyondLast(t *testing.T) {
	meta := NewPageMeta(9, 15, 31)

	assert.Equal(t, 3, meta.LastPage)
	assert.Nil(t, meta.From)
	assert.Nil(t, meta.To)
}
