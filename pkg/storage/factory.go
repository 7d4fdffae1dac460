package storage

import (
	"context"
	"fmt"

	"moviehub/pkg/config"
)

// Storage provider constants
const (
	StorageProviderLocal = "local"
	StorageProviderMinIO = "minio"
)

// NewStorageProvider creates a storage provider based on configuration
func NewStorageProvider(ctx context.Context, cfg *config.StorageConfig) (Provider, error) {
	switch cfg.Provider {
	case StorageProviderLocal:
		return NewLocalProvider(cfg.LocalPath, cfg.LocalURL), nil

	case StorageProviderMinIO:
		if cfg.MinIO.Endpoint == "" {
			return nil, fmt.Errorf("MinIO endpoint is required")
		}
		return NewMinIOProvider(ctx, cfg.MinIO)

	default:
		return nil, fmt.Errorf("unsupported storage provider: %s", cfg.Provider)
	}
}
