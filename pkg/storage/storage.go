package storage

import (
	"context"
)

// ReceiptFile is a payment receipt read from a multipart form.
type ReceiptFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// UploadedReceipt identifies a stored receipt. Key is kept around so a
// booking that fails after upload can remove the orphaned blob.
type UploadedReceipt struct {
	Key string
	URL string
}

// BlobStore is the object storage used for receipt images and PDFs.
type BlobStore interface {
	// Upload stores data under key. It must fail, not overwrite, when the
	// key is already taken.
	Upload(ctx context.Context, key, contentType string, data []byte) error
	Delete(ctx context.Context, key string) error
	PublicURL(key string) (string, error)
}
