package repository

import (
	"github.com/skytrade/uav-volume-dashboard-go/internal/shared/types"
)

// ConfigRepository defines the interface for loading and writing configuration files.
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
	SaveConfigFile(filePath string, config *types.Config) error
}
