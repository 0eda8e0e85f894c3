package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
)

var ErrNotConfigured = errors.New("media storage is not configured")

// Uploader is the media-host collaborator. Upload failures abort the
// surrounding write; Delete is best-effort and reports success only.
type Uploader interface {
	UploadAvatar(ctx context.Context, file io.Reader, filename string) (string, error)
	UploadHotelPhoto(ctx context.Context, file io.Reader, filename string) (string, error)
	Delete(ctx context.Context, fileURL string) bool
}

var allowedImageExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
}

// ValidateImage rejects non-image uploads before they reach the
// media host.
func ValidateImage(header *multipart.FileHeader, maxSizeMB int64) error {
	if header == nil || header.Size == 0 {
		return errors.New("invalid or empty file")
	}
	if header.Size > maxSizeMB<<20 {
		return fmt.Errorf("file too large, max %dMB", maxSizeMB)
	}
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExtensions[ext] {
		return fmt.Errorf("file extension not allowed: %s", ext)
	}
	return nil
}

// Disabled is used when no media host is configured: uploads fail,
// deletes report failure.
type Disabled struct{}

func (Disabled) UploadAvatar(context.Context, io.Reader, string) (string, error) {
	return "", ErrNotConfigured
}

func (Disabled) UploadHotelPhoto(context.Context, io.Reader, string) (string, error) {
	return "", ErrNotConfigured
}

func (Disabled) Delete(context.Context, string) bool { return false }
