package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	gcs "cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"github.com/google/uuid"
)

// FirebaseStore uploads attachments to a Firebase Storage bucket. Objects
// are publicly addressable through the standard GCS URL scheme.
type FirebaseStore struct {
	bucket     *gcs.BucketHandle
	bucketName string
}

func NewFirebaseStore(ctx context.Context, bucketName string) (*FirebaseStore, error) {
	app, err := firebase.NewApp(ctx, &firebase.Config{StorageBucket: bucketName})
	if err != nil {
		return nil, err
	}
	client, err := app.Storage(ctx)
	if err != nil {
		return nil, err
	}
	bucket, err := client.DefaultBucket()
	if err != nil {
		return nil, err
	}
	return &FirebaseStore{bucket: bucket, bucketName: bucketName}, nil
}

func (s *FirebaseStore) Save(ctx context.Context, file *multipart.FileHeader, dir string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
	object := dir + "/" + name

	w := s.bucket.Object(object).NewWriter(ctx)
	w.ContentType = file.Header.Get("Content-Type")
	if _, err := io.Copy(w, src); err != nil {
		w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	return object, nil
}

func (s *FirebaseStore) URL(path string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucketName, path)
}
