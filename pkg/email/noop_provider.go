package email

import (
	"context"

	"moviehub/pkg/logger"
)

// NoOpProvider implements the Provider interface but does nothing. Useful
// for local development when no mail transport is configured.
type NoOpProvider struct {
}

// NewNoOpProvider creates a new no-op email provider
func NewNoOpProvider() *NoOpProvider {
	return &NoOpProvider{}
}

// SendEmail does nothing gracefully
func (n *NoOpProvider) SendEmail(ctx context.Context, to []string, subject string, body EmailBody) error {
	return nil
}

// SendTemplateEmail does nothing gracefully
func (n *NoOpProvider) SendTemplateEmail(ctx context.Context, to []string, templateName string, data interface{}) error {
	return nil
}

// ValidateProvider always succeeds
func (n *NoOpProvider) ValidateProvider(ctx context.Context) error {
	logger.Info("Email provider disabled - emails will be silently ignored")
	return nil
}
