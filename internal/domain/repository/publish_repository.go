package repository

import (
	"context"

	"github.com/skytrade/uav-volume-dashboard-go/internal/shared/types"
)

// PublishRepository uploads exported reports to object storage.
type PublishRepository interface {
	GetAWSProfiles() []string
	GetAccountID(ctx context.Context, profile, region string) (string, error)
	// Publish uploads files under <prefix>/<runID>/ and returns their URIs.
	Publish(ctx context.Context, target types.PublishConfig, runID string, files []string) ([]string, error)
}
