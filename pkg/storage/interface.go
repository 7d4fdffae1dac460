package storage

import (
	"context"
	"mime/multipart"
)

// photo uploads live under this prefix
const MoviePhotoPrefix = "movies/"

// Provider defines the interface for storage providers
type Provider interface {
	// Upload uploads a file and returns the storage path
	Upload(ctx context.Context, file *multipart.FileHeader, filename string) (string, error)

	// Delete deletes a file from storage
	Delete(ctx context.Context, path string) error

	// GetPublicURL returns a public URL for the file
	GetPublicURL(ctx context.Context, path string) (string, error)
}
