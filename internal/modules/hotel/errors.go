package hotel

import "errors"

var (
	ErrForbidden       = errors.New("forbidden")
	ErrInvalidStatus   = errors.New("invalid hotel status")
	ErrInvalidCurrency = errors.New("invalid currency")
	ErrUploadFailed    = errors.New("photo upload failed")
)
