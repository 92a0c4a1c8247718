package drink_config

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/drinktracker/internal/repositories/drink_config Repository

import (
	"context"

	"github.com/KirkDiggler/drinktracker/internal/models"
)

// Repository defines the interface for storing the active drink type configuration
type Repository interface {
	// GetConfig retrieves the active configuration
	GetConfig(ctx context.Context) (*models.DrinkTypeConfig, error)

	// SaveConfig replaces the active configuration
	SaveConfig(ctx context.Context, input *SaveConfigInput) error
}

// SaveConfigInput contains parameters for replacing the configuration
type SaveConfigInput struct {
	Config *models.DrinkTypeConfig
}
