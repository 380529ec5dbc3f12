// Package blob stores uploaded media on local disk and hands back
// public URL paths for the stored files.
package blob

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"inkwell/internal/models"

	"github.com/google/uuid"
)

const (
	DefaultUploadDir       = "/tmp/inkwell/uploads"
	DefaultMaxUploadSizeMB = 10
)

var extensionByMIME = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"video/mp4":  ".mp4",
	"video/webm": ".webm",
}

// Store persists uploaded media and returns a URL path that the HTTP
// layer can serve.
type Store interface {
	Save(ctx context.Context, content []byte) (string, error)
}

// DiskStore writes uploads under a single directory with random names,
// so original filenames never reach the filesystem.
type DiskStore struct {
	uploadDir          string
	maxUploadSizeBytes int64
	urlPrefix          string
}

// NewDiskStore creates a DiskStore rooted at uploadDir. Files are served
// under urlPrefix (e.g. "/uploads").
func NewDiskStore(uploadDir, urlPrefix string, maxUploadSizeMB int) *DiskStore {
	if uploadDir == "" {
		uploadDir = DefaultUploadDir
	}
	if maxUploadSizeMB <= 0 {
		maxUploadSizeMB = DefaultMaxUploadSizeMB
	}
	return &DiskStore{
		uploadDir:          uploadDir,
		maxUploadSizeBytes: int64(maxUploadSizeMB) * 1024 * 1024,
		urlPrefix:          urlPrefix,
	}
}

// Dir returns the directory uploads are written to.
func (s *DiskStore) Dir() string {
	return s.uploadDir
}

// Save validates and writes content to disk, returning its public URL path.
// The content type is sniffed from the bytes, never trusted from the client.
func (s *DiskStore) Save(_ context.Context, content []byte) (string, error) {
	if len(content) == 0 {
		return "", models.NewValidationError("No file uploaded")
	}
	if int64(len(content)) > s.maxUploadSizeBytes {
		return "", models.NewValidationError(fmt.Sprintf("File too large (max %dMB)", s.maxUploadSizeBytes/(1024*1024)))
	}

	detectedType := http.DetectContentType(content)
	ext, ok := extensionByMIME[detectedType]
	if !ok {
		return "", models.NewValidationError("Unsupported file type")
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", models.NewInternalError(fmt.Errorf("create upload dir: %w", err))
	}

	name := uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(s.uploadDir, name), content, 0o644); err != nil {
		return "", models.NewInternalError(fmt.Errorf("write upload: %w", err))
	}

	return s.urlPrefix + "/" + name, nil
}
