package hotel

type CreateHotelRequest struct {
	Name          string  `json:"name" form:"name" validate:"required,max=255"`
	Address       string  `json:"address" form:"address" validate:"required"`
	Email         string  `json:"email" form:"email" validate:"required,email"`
	Phone         string  `json:"phone" form:"phone" validate:"required"`
	PricePerNight float64 `json:"price_per_night" form:"price_per_night" validate:"gte=0"`
	Currency      string  `json:"currency" form:"currency" validate:"required"`
	Status        string  `json:"status" form:"status"`
}

type UpdateHotelRequest struct {
	Name          *string  `json:"name,omitempty" validate:"omitempty,max=255"`
	Address       *string  `json:"address,omitempty"`
	Email         *string  `json:"email,omitempty" validate:"omitempty,email"`
	Phone         *string  `json:"phone,omitempty"`
	PricePerNight *float64 `json:"price_per_night,omitempty" validate:"omitempty,gte=0"`
	Currency      *string  `json:"currency,omitempty"`
	Status        *string  `json:"status,omitempty"`
}

type Statistics struct {
	TotalHotels    int64 `json:"total_hotels"`
	ActiveHotels   int64 `json:"active_hotels"`
	InactiveHotels int64 `json:"inactive_hotels"`
	TrashedHotels  int64 `json:"trashed_hotels"`
}

type MonthlyStat struct {
	Month string `json:"month"`
	Total int64  `json:"total"`
}
