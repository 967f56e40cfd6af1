package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"theater-booking/pkg/utils"
)

// Storage-side limit. The HTTP layer applies its own, smaller cap; both
// must pass.
const maxReceiptSize = 10 << 20 // 10 MiB

var allowedReceiptTypes = map[string]bool{
	"image/jpeg":      true,
	"image/jpg":       true,
	"image/png":       true,
	"image/gif":       true,
	"application/pdf": true,
}

// ErrInvalidFile marks receipts rejected before any network call.
var ErrInvalidFile = errors.New("invalid receipt file")

// failureKind drives the retry strategy for a failed upload attempt.
type failureKind int

const (
	failureGeneric failureKind = iota
	failureTimeout
	failureCollision
)

func classifyFailure(err error) failureKind {
	switch {
	case strings.Contains(err.Error(), "already exists"):
		return failureCollision
	case errors.Is(err, context.DeadlineExceeded):
		return failureTimeout
	default:
		return failureGeneric
	}
}

// ReceiptUploader pushes receipt files into the blob store with a bounded
// retry loop: a collision gets a fresh key and an immediate retry, a
// timed-out attempt backs off n*2s, anything else backs off n*1s.
type ReceiptUploader struct {
	store          BlobStore
	log            *zap.Logger
	maxAttempts    int
	attemptTimeout time.Duration
	sleep          func(time.Duration)
	now            func() time.Time
}

func NewReceiptUploader(store BlobStore, config utils.UploadConfig, log *zap.Logger) *ReceiptUploader {
	maxAttempts := config.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	attemptTimeout := config.AttemptTimeout
	if attemptTimeout <= 0 {
		attemptTimeout = 25 * time.Second
	}

	return &ReceiptUploader{
		store:          store,
		log:            log.With(zap.String("service", "receipt-upload")),
		maxAttempts:    maxAttempts,
		attemptTimeout: attemptTimeout,
		sleep:          time.Sleep,
		now:            time.Now,
	}
}

// Upload validates the file and stores it under <ownerID>-<millis><ext>,
// retrying up to the attempt budget. Returns the key actually used and
// its public URL.
func (u *ReceiptUploader) Upload(ctx context.Context, file *ReceiptFile, ownerID string) (*UploadedReceipt, error) {
	if len(file.Data) > maxReceiptSize {
		return nil, fmt.Errorf("%w: size %d exceeds 10MB limit", ErrInvalidFile, len(file.Data))
	}
	if !allowedReceiptTypes[file.ContentType] {
		return nil, fmt.Errorf("%w: type %s not supported, use JPG, PNG, GIF, or PDF", ErrInvalidFile, file.ContentType)
	}

	ext := filepath.Ext(file.Name)
	key := fmt.Sprintf("%s-%d%s", ownerID, u.now().UnixMilli(), ext)

	var lastErr error
	for attempt := 1; attempt <= u.maxAttempts; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, u.attemptTimeout)
		err := u.store.Upload(attemptCtx, key, file.ContentType, file.Data)
		cancel()

		if err == nil {
			u.log.Info("Receipt uploaded",
				zap.String("key", key),
				zap.Int("attempt", attempt),
				zap.Int("size", len(file.Data)),
			)

			url, err := u.store.PublicURL(key)
			if err != nil {
				return nil, fmt.Errorf("resolve receipt URL: %w", err)
			}
			return &UploadedReceipt{Key: key, URL: url}, nil
		}

		lastErr = err
		kind := classifyFailure(err)
		u.log.Warn("Receipt upload attempt failed",
			zap.Error(err),
			zap.String("key", key),
			zap.Int("attempt", attempt),
		)

		switch kind {
		case failureCollision:
			// Taken key: rename and go again immediately
			key = fmt.Sprintf("%s-%d-%d%s", ownerID, u.now().UnixMilli(), attempt, ext)
		case failureTimeout:
			if attempt < u.maxAttempts {
				u.sleep(time.Duration(attempt) * 2 * time.Second)
			}
		default:
			if attempt < u.maxAttempts {
				u.sleep(time.Duration(attempt) * time.Second)
			}
		}
	}

	return nil, fmt.Errorf("upload failed after %d attempts: %w", u.maxAttempts, lastErr)
}

// Delete removes a previously uploaded receipt.
func (u *ReceiptUploader) Delete(ctx context.Context, key string) error {
	return u.store.Delete(ctx, key)
}
