package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

type fakeBlobStore struct {
	errs    []error // result per attempt, nil past the end means success
	keys    []string
	deleted []string
}

func (f *fakeBlobStore) Upload(ctx context.Context, key, contentType string, data []byte) error {
	f.keys = append(f.keys, key)
	if n := len(f.keys); n <= len(f.errs) {
		return f.errs[n-1]
	}
	return nil
}

func (f *fakeBlobStore) Delete(ctx context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeBlobStore) PublicURL(key string) (string, error) {
	return "https://blobs.test/" + key, nil
}

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestUploader(store BlobStore, slept *[]time.Duration) *ReceiptUploader {
	return &ReceiptUploader{
		store:          store,
		log:            zap.NewNop(),
		maxAttempts:    3,
		attemptTimeout: 25 * time.Second,
		sleep: func(d time.Duration) {
			*slept = append(*slept, d)
		},
		now: func() time.Time { return fixedNow },
	}
}

func pngFile(size int) *ReceiptFile {
	return &ReceiptFile{
		Name:        "receipt.png",
		ContentType: "image/png",
		Data:        make([]byte, size),
	}
}

func TestUploadRejectsOversizeFile(t *testing.T) {
	store := &fakeBlobStore{}
	var slept []time.Duration
	u := newTestUploader(store, &slept)

	_, err := u.Upload(context.Background(), pngFile(maxReceiptSize+1), "owner")
	if !errors.Is(err, ErrInvalidFile) {
		t.Fatalf("Upload() error = %v, want ErrInvalidFile", err)
	}
	if len(store.keys) != 0 {
		t.Errorf("store calls = %d, want 0", len(store.keys))
	}
}

func TestUploadRejectsUnsupportedType(t *testing.T) {
	store := &fakeBlobStore{}
	var slept []time.Duration
	u := newTestUploader(store, &slept)

	file := &ReceiptFile{Name: "receipt.exe", ContentType: "application/octet-stream", Data: []byte("x")}
	_, err := u.Upload(context.Background(), file, "owner")
	if !errors.Is(err, ErrInvalidFile) {
		t.Fatalf("Upload() error = %v, want ErrInvalidFile", err)
	}
	if len(store.keys) != 0 {
		t.Errorf("store calls = %d, want 0", len(store.keys))
	}
}

func TestUploadFirstAttemptSucceeds(t *testing.T) {
	store := &fakeBlobStore{}
	var slept []time.Duration
	u := newTestUploader(store, &slept)

	got, err := u.Upload(context.Background(), pngFile(16), "owner")
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	wantKey := fmt.Sprintf("owner-%d.png", fixedNow.UnixMilli())
	if got.Key != wantKey {
		t.Errorf("key = %q, want %q", got.Key, wantKey)
	}
	if got.URL != "https://blobs.test/"+wantKey {
		t.Errorf("url = %q", got.URL)
	}
	if len(slept) != 0 {
		t.Errorf("slept = %v, want none", slept)
	}
}

func TestUploadCollisionRegeneratesKeyImmediately(t *testing.T) {
	store := &fakeBlobStore{errs: []error{errors.New("resource already exists")}}
	var slept []time.Duration
	u := newTestUploader(store, &slept)

	got, err := u.Upload(context.Background(), pngFile(16), "owner")
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	// Collision on attempt 1 appends the attempt number; no backoff
	wantKey := fmt.Sprintf("owner-%d-1.png", fixedNow.UnixMilli())
	if got.Key != wantKey {
		t.Errorf("key = %q, want %q", got.Key, wantKey)
	}
	if len(slept) != 0 {
		t.Errorf("slept = %v, want none", slept)
	}
	if len(store.keys) != 2 {
		t.Errorf("store calls = %d, want 2", len(store.keys))
	}
}

func TestUploadTimeoutThenCollisionThenSuccess(t *testing.T) {
	store := &fakeBlobStore{errs: []error{
		context.DeadlineExceeded,
		errors.New("resource already exists"),
	}}
	var slept []time.Duration
	u := newTestUploader(store, &slept)

	got, err := u.Upload(context.Background(), pngFile(16), "owner")
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	// Timeout on attempt 1 waits 1*2s; collision on attempt 2 renames
	// with no wait; attempt 3 stores under the regenerated key.
	if len(slept) != 1 || slept[0] != 2*time.Second {
		t.Errorf("slept = %v, want [2s]", slept)
	}
	wantKey := fmt.Sprintf("owner-%d-2.png", fixedNow.UnixMilli())
	if got.Key != wantKey {
		t.Errorf("key = %q, want %q", got.Key, wantKey)
	}
	if got.URL != "https://blobs.test/"+wantKey {
		t.Errorf("url = %q, want it to reflect the attempt-3 key", got.URL)
	}
}

func TestUploadExhaustsRetryBudget(t *testing.T) {
	boom := errors.New("connection reset")
	store := &fakeBlobStore{errs: []error{boom, boom, boom}}
	var slept []time.Duration
	u := newTestUploader(store, &slept)

	_, err := u.Upload(context.Background(), pngFile(16), "owner")
	if err == nil || !strings.Contains(err.Error(), "after 3 attempts") {
		t.Fatalf("Upload() error = %v, want retry exhaustion", err)
	}
	if !errors.Is(err, boom) {
		t.Errorf("Upload() error = %v, want wrapped last error", err)
	}

	// Linear backoff between generic failures, none after the last
	if len(slept) != 2 || slept[0] != 1*time.Second || slept[1] != 2*time.Second {
		t.Errorf("slept = %v, want [1s 2s]", slept)
	}
	if len(store.keys) != 3 {
		t.Errorf("store calls = %d, want 3", len(store.keys))
	}
}
