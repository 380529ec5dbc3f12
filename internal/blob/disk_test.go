package blob

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Minimal valid PNG: signature plus truncated header, enough for MIME sniffing.
var pngBytes = []byte{
	0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A,
	0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52,
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeValidation, appErr.Code)
}

func TestDiskStore_Save(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskStore(dir, "/uploads", 10)
	ctx := context.Background()

	url, err := store.Save(ctx, pngBytes)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	name := strings.TrimPrefix(url, "/uploads/")
	written, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, pngBytes, written)
}

func TestDiskStore_SaveRandomizesNames(t *testing.T) {
	store := NewDiskStore(t.TempDir(), "/uploads", 10)
	ctx := context.Background()

	first, err := store.Save(ctx, pngBytes)
	require.NoError(t, err)
	second, err := store.Save(ctx, pngBytes)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestDiskStore_SaveRejections(t *testing.T) {
	store := NewDiskStore(t.TempDir(), "/uploads", 1)
	ctx := context.Background()

	t.Run("empty content", func(t *testing.T) {
		_, err := store.Save(ctx, nil)
		assertValidationError(t, err)
	})

	t.Run("unsupported type", func(t *testing.T) {
		_, err := store.Save(ctx, []byte("plain text is not media"))
		assertValidationError(t, err)
	})

	t.Run("over size limit", func(t *testing.T) {
		big := make([]byte, 1*1024*1024+1)
		copy(big, pngBytes)
		_, err := store.Save(ctx, big)
		assertValidationError(t, err)
	})
}

func TestNewDiskStoreDefaults(t *testing.T) {
	store := NewDiskStore("", "/uploads", 0)
	assert.Equal(t, DefaultUploadDir, store.Dir())
	assert.Equal(t, int64(DefaultMaxUploadSizeMB)*1024*1024, store.maxUploadSizeBytes)
}
