package storage

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadedFile(t *testing.T, name, content string) *multipart.FileHeader {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	fw, err := w.CreateFormFile("attachments", name)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["attachments"][0]
}

func TestLocalStore_SaveAndURL(t *testing.T) {
	root := t.TempDir()
	store, err := NewLocalStore(root, "/storage")
	require.NoError(t, err)

	path, err := store.Save(context.Background(), uploadedFile(t, "notes.txt", "hello"), "attachments")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "attachments/"))
	assert.True(t, strings.HasSuffix(path, ".txt"))

	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(path)))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	assert.Equal(t, "/storage/"+path, store.URL(path))
}

func TestLocalStore_UniqueNamesPerUpload(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "/storage")
	require.NoError(t, err)

	first, err := store.Save(context.Background(), uploadedFile(t, "dup.txt", "a"), "attachments")
	require.NoError(t, err)
	second, err := store.Save(context.Background(), uploadedFile(t, "dup.txt", "b"), "attachments")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
