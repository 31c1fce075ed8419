package storage

import (
	"context"
	"mime/multipart"
	"os"
)

// Store is the blob-storage collaborator. Handlers hand it uploaded files
// and get back an opaque path which is persisted on the Attachment row; the
// public URL is derived from that path at response time.
type Store interface {
	Save(ctx context.Context, file *multipart.FileHeader, dir string) (string, error)
	URL(path string) string
}

// FromEnv selects the storage backend. STORAGE_DRIVER=firebase uses the
// Firebase Storage bucket named by FIREBASE_STORAGE_BUCKET; anything else
// falls back to local disk under STORAGE_PATH.
func FromEnv(ctx context.Context) (Store, error) {
	if os.Getenv("STORAGE_DRIVER") == "firebase" {
		return NewFirebaseStore(ctx, os.Getenv("FIREBASE_STORAGE_BUCKET"))
	}

	root := os.Getenv("STORAGE_PATH")
	if root == "" {
		root = "storage/public"
	}
	baseURL := os.Getenv("STORAGE_BASE_URL")
	if baseURL == "" {
		baseURL = "/storage"
	}
	return NewLocalStore(root, baseURL)
}
