package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

// LocalProvider implements storage for the local filesystem
type LocalProvider struct {
	basePath string
	baseURL  string // For serving files via HTTP
}

// NewLocalProvider creates a new local storage provider
func NewLocalProvider(basePath, baseURL string) *LocalProvider {
	// ensure the base path exists
	err := os.MkdirAll(basePath, 0755)
	if err != nil {
		panic(fmt.Sprintf("failed to create storage directory: %v", err))
	}

	return &LocalProvider{
		basePath: basePath,
		baseURL:  baseURL,
	}
}

// Upload uploads a file to the local filesystem
func (l *LocalProvider) Upload(ctx context.Context, file *multipart.FileHeader, filename string) (string, error) {
	// open the uploaded file
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	// create the full path
	fullPath := filepath.Join(l.basePath, filename)

	// ensure the directory exists
	err = os.MkdirAll(filepath.Dir(fullPath), 0755)
	if err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	// create the destination file
	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	// copy the file content
	_, err = io.Copy(dst, src)
	if err != nil {
		return "", fmt.Errorf("failed to copy file: %w", err)
	}

	// return the relative path
	return filename, nil
}

// Delete deletes a file from the local filesystem
func (l *LocalProvider) Delete(ctx context.Context, path string) error {
	fullPath := filepath.Join(l.basePath, path)
	return os.Remove(fullPath)
}

// GetPublicURL returns a direct URL for accessing the file
func (l *LocalProvider) GetPublicURL(ctx context.Context, path string) (string, error) {
	return fmt.Sprintf("%s/%s", l.baseURL, path), nil
}
