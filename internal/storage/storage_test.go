package storage_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/harvest-export/website/internal/config"
	"github.com/harvest-export/website/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStorageInterfaceCompliance(t *testing.T) {
	var _ storage.Storage = (*storage.LocalStorage)(nil)
	var _ storage.Storage = (*storage.AzureBlobStorage)(nil)
}

func TestNewLocalStorage_CreatesDirectory(t *testing.T) {
	basePath := filepath.Join(t.TempDir(), "uploads")

	ls, err := storage.NewLocalStorage(basePath, "/uploads")
	require.NoError(t, err)
	assert.NotNil(t, ls)

	info, err := os.Stat(basePath)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLocalStorage_RoundTrip(t *testing.T) {
	ls, err := storage.NewLocalStorage(t.TempDir(), "/uploads/")
	require.NoError(t, err)
	ctx := context.Background()

	content := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00}
	storagePath, size, err := ls.Upload(ctx, "media/2024/05/photo.jpg", "image/jpeg", bytes.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, "media/2024/05/photo.jpg", storagePath)
	assert.Equal(t, int64(len(content)), size)
	assert.Equal(t, "/uploads/media/2024/05/photo.jpg", ls.URL(storagePath))

	reader, err := ls.Download(ctx, storagePath)
	require.NoError(t, err)
	got, err := io.ReadAll(reader)
	require.NoError(t, err)
	require.NoError(t, reader.Close())
	assert.Equal(t, content, got)

	require.NoError(t, ls.Delete(ctx, storagePath))
	_, err = ls.Download(ctx, storagePath)
	assert.Error(t, err)

	// deleting twice is fine
	assert.NoError(t, ls.Delete(ctx, storagePath))
}

func TestLocalStorage_KeysStayInsideRoot(t *testing.T) {
	root := t.TempDir()
	ls, err := storage.NewLocalStorage(filepath.Join(root, "uploads"), "/uploads")
	require.NoError(t, err)

	storagePath, _, err := ls.Upload(context.Background(), "../../escape.txt", "text/plain", bytes.NewReader([]byte("x")))
	require.NoError(t, err)
	assert.Equal(t, "escape.txt", storagePath)

	_, err = os.Stat(filepath.Join(root, "escape.txt"))
	assert.True(t, os.IsNotExist(err))

	_, _, err = ls.Upload(context.Background(), "", "text/plain", bytes.NewReader(nil))
	assert.ErrorIs(t, err, storage.ErrInvalidPath)
}

func TestLocalStorage_FileServer(t *testing.T) {
	ls, err := storage.NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	_, _, err = ls.Upload(context.Background(), "media/a.txt", "text/plain", bytes.NewReader([]byte("hello")))
	require.NoError(t, err)

	handler := http.StripPrefix("/uploads", ls.FileServer())

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/uploads/media/a.txt", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hello", w.Body.String())

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/uploads/media/", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNewStorage_Modes(t *testing.T) {
	_, err := storage.NewStorage(&config.StorageConfig{Mode: "local", LocalBasePath: t.TempDir()}, zap.NewNop())
	assert.NoError(t, err)

	_, err = storage.NewStorage(&config.StorageConfig{Mode: "azure"}, zap.NewNop())
	assert.Error(t, err)

	_, err = storage.NewStorage(&config.StorageConfig{Mode: "ftp"}, zap.NewNop())
	assert.Error(t, err)
}
