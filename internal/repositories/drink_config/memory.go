package drink_config

import (
	"context"
	"errors"
	"sync"

	"github.com/KirkDiggler/drinktracker/internal/models"
)

type memoryRepository struct {
	mu     sync.RWMutex
	config *models.DrinkTypeConfig
}

// NewMemory creates an in-memory configuration store with nothing saved yet
func NewMemory() *memoryRepository {
	return &memoryRepository{}
}

func (r *memoryRepository) GetConfig(ctx context.Context) (*models.DrinkTypeConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.config == nil {
		return nil, ErrConfigNotFound
	}
	cfg := *r.config
	return &cfg, nil
}

func (r *memoryRepository) SaveConfig(ctx context.Context, input *SaveConfigInput) error {
	if input == nil || input.Config == nil {
		return errors.New("input and config cannot be nil")
	}

	cfg := *input.Config

	r.mu.Lock()
	r.config = &cfg
	r.mu.Unlock()

	return nil
}
