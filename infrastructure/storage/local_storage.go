package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"meetapp/domain/ports"
	"meetapp/pkg/logger"
)

// ErrUnsafePath is returned when a key would resolve outside the base path.
var ErrUnsafePath = errors.New("unsafe storage path")

// LocalStorage implements StoragePort สำหรับเก็บไฟล์ใน local filesystem.
// Files are served by the HTTP layer under BaseURL.
type LocalStorage struct {
	basePath string
	baseURL  string
}

type LocalStorageConfig struct {
	BasePath string // ./tmp/uploads
	BaseURL  string // http://localhost:3333/files
}

func NewLocalStorage(config LocalStorageConfig) (*LocalStorage, error) {
	if err := os.MkdirAll(config.BasePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &LocalStorage{
		basePath: config.BasePath,
		baseURL:  strings.TrimSuffix(config.BaseURL, "/"),
	}, nil
}

var _ ports.StoragePort = (*LocalStorage)(nil)

// BasePath is the directory served statically under /files.
func (l *LocalStorage) BasePath() string {
	return l.basePath
}

func (l *LocalStorage) resolve(path string) (string, error) {
	path = strings.TrimPrefix(strings.ReplaceAll(path, "\\", "/"), "/")
	if path == "" || strings.Contains(path, "..") {
		return "", ErrUnsafePath
	}
	return filepath.Join(l.basePath, filepath.FromSlash(path)), nil
}

func (l *LocalStorage) UploadFile(ctx context.Context, file io.Reader, size int64, path string, contentType string) (string, error) {
	fullPath, err := l.resolve(path)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, file)
	if err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	logger.DebugContext(ctx, "File stored locally", "path", path, "bytes", written, "content_type", contentType)

	return l.GetFileURL(path), nil
}

// DeleteFile ignores files that are already gone.
func (l *LocalStorage) DeleteFile(ctx context.Context, path string) error {
	fullPath, err := l.resolve(path)
	if err != nil {
		return err
	}

	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (l *LocalStorage) GetFileURL(path string) string {
	path = strings.TrimPrefix(strings.ReplaceAll(path, "\\", "/"), "/")
	return l.baseURL + "/" + path
}

func (l *LocalStorage) GetProviderName() string {
	return "local"
}
