package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"regexp"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const (
	avatarFolder = "hotelier/avatars"
	hotelFolder  = "hotelier/hotels"

	avatarTransformation = "c_fill,g_face,h_200,w_200"
	hotelTransformation  = "c_fill,h_600,w_800,q_auto"
)

// publicIDPattern pulls the public id out of a Cloudinary delivery
// URL, e.g. .../upload/v1712/hotelier/hotels/abc.jpg ->
// hotelier/hotels/abc.
var publicIDPattern = regexp.MustCompile(`/upload/(?:v\d+/)?(.+?)\.\w+$`)

type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryStore(cloudinaryURL string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &CloudinaryStore{cld: cld}, nil
}

func (s *CloudinaryStore) UploadAvatar(ctx context.Context, file io.Reader, filename string) (string, error) {
	return s.upload(ctx, file, avatarFolder, avatarTransformation)
}

func (s *CloudinaryStore) UploadHotelPhoto(ctx context.Context, file io.Reader, filename string) (string, error) {
	return s.upload(ctx, file, hotelFolder, hotelTransformation)
}

func (s *CloudinaryStore) upload(ctx context.Context, file io.Reader, folder, transformation string) (string, error) {
	resp, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         folder,
		Transformation: transformation,
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload to %s: %w", folder, err)
	}
	// The SDK reports some API failures in the body, not as err.
	if resp.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload to %s: %s", folder, resp.Error.Message)
	}
	if resp.SecureURL == "" {
		return "", errors.New("cloudinary upload returned no secure URL")
	}
	return resp.SecureURL, nil
}

// Delete removes the asset behind a delivery URL. Best-effort: any
// failure is logged and reported as false, never as an error.
func (s *CloudinaryStore) Delete(ctx context.Context, fileURL string) bool {
	if fileURL == "" {
		return false
	}

	publicID := extractPublicID(fileURL)
	if publicID == "" {
		log.Printf("media: cannot extract public id url=%s", fileURL)
		return false
	}

	resp, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		log.Printf("media: destroy failed public_id=%s error=%v", publicID, err)
		return false
	}
	if resp.Result != "ok" {
		log.Printf("media: destroy not confirmed public_id=%s result=%s", publicID, resp.Result)
		return false
	}
	return true
}

func extractPublicID(fileURL string) string {
	matches := publicIDPattern.FindStringSubmatch(fileURL)
	if len(matches) != 2 {
		return ""
	}
	return matches[1]
}
