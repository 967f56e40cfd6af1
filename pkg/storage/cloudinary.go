package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"theater-booking/pkg/utils"
)

// CloudinaryStore implements BlobStore on top of Cloudinary.
type CloudinaryStore struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryStore(config utils.StorageConfig) (*CloudinaryStore, error) {
	if config.CloudName == "" || config.APIKey == "" || config.APISecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}

	cld, err := cloudinary.NewFromParams(config.CloudName, config.APIKey, config.APISecret)
	if err != nil {
		return nil, fmt.Errorf("initialize cloudinary: %w", err)
	}

	return &CloudinaryStore{
		cld:    cld,
		folder: config.Folder,
	}, nil
}

func (s *CloudinaryStore) Upload(ctx context.Context, key, contentType string, data []byte) error {
	params := uploader.UploadParams{
		PublicID:     key,
		Folder:       s.folder,
		ResourceType: "auto",
		// Key collisions must surface as errors so the retry layer can
		// regenerate the key instead of silently replacing a receipt.
		Overwrite: api.Bool(false),
	}

	result, err := s.cld.Upload.Upload(ctx, bytes.NewReader(data), params)
	if err != nil {
		return fmt.Errorf("upload %s: %w", key, err)
	}
	// The SDK reports API-level failures in the result body
	if result.Error.Message != "" {
		return fmt.Errorf("upload %s: %s", key, result.Error.Message)
	}
	if result.PublicID == "" {
		return errors.New("upload: no public ID returned")
	}

	return nil
}

func (s *CloudinaryStore) Delete(ctx context.Context, key string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: s.publicID(key)})
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (s *CloudinaryStore) PublicURL(key string) (string, error) {
	a, err := s.cld.Media(s.publicID(key))
	if err != nil {
		return "", fmt.Errorf("resolve asset %s: %w", key, err)
	}

	url, err := a.String()
	if err != nil {
		return "", fmt.Errorf("build URL for %s: %w", key, err)
	}
	return url, nil
}

func (s *CloudinaryStore) publicID(key string) string {
	if s.folder == "" {
		return key
	}
	return s.folder + "/" + key
}
