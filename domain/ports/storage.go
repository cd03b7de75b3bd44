package ports

import (
	"context"
	"io"
)

// StoragePort คือ interface หลักสำหรับ storage
// ทำให้เปลี่ยน storage provider ได้ง่าย (local, s3/minio)
type StoragePort interface {
	// UploadFile stores file at path and returns its public URL.
	UploadFile(ctx context.Context, file io.Reader, size int64, path string, contentType string) (string, error)

	DeleteFile(ctx context.Context, path string) error

	// GetFileURL derives the public URL of path without touching the backend.
	GetFileURL(path string) string

	GetProviderName() string
}
