package drink_log

import (
	"context"
	"errors"
	"sync"

	"github.com/KirkDiggler/drinktracker/internal/models"
)

// memoryRepository keeps the drink log in a slice for the lifetime of the process
type memoryRepository struct {
	mu     sync.RWMutex
	drinks []models.DrinkEvent
}

// NewMemory creates an in-memory drink log
func NewMemory() *memoryRepository {
	return &memoryRepository{}
}

// AppendDrink adds a copy of the drink event to the end of the log
func (r *memoryRepository) AppendDrink(ctx context.Context, input *AppendDrinkInput) error {
	if err := validateAppend(input); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.drinks {
		if r.drinks[i].ID == input.Drink.ID {
			return ErrDuplicateDrink
		}
	}
	r.drinks = append(r.drinks, *input.Drink)

	return nil
}

// ListDrinks retrieves every drink event in insertion order
func (r *memoryRepository) ListDrinks(ctx context.Context, input *ListDrinksInput) (*ListDrinksOutput, error) {
	return &ListDrinksOutput{
		Drinks: r.filter(func(*models.DrinkEvent) bool { return true }),
	}, nil
}

// GetDrinksForFriend retrieves all drink events for a friend
func (r *memoryRepository) GetDrinksForFriend(ctx context.Context, input *GetDrinksForFriendInput) (*GetDrinksForFriendOutput, error) {
	if input == nil || input.FriendID == "" {
		return nil, errors.New("input and friend ID cannot be empty")
	}

	return &GetDrinksForFriendOutput{
		Drinks: r.filter(func(d *models.DrinkEvent) bool { return d.FriendID == input.FriendID }),
	}, nil
}

// GetDrinksSince retrieves drink events logged at or after input.Since
func (r *memoryRepository) GetDrinksSince(ctx context.Context, input *GetDrinksSinceInput) (*GetDrinksSinceOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return &GetDrinksSinceOutput{
		Drinks: r.filter(func(d *models.DrinkEvent) bool { return !d.Timestamp.Before(input.Since) }),
	}, nil
}

// PurgeDrinksForFriend removes every drink event for a friend
func (r *memoryRepository) PurgeDrinksForFriend(ctx context.Context, input *PurgeDrinksForFriendInput) (*PurgeDrinksForFriendOutput, error) {
	if input == nil || input.FriendID == "" {
		return nil, errors.New("input and friend ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.drinks[:0]
	purged := 0
	for _, drink := range r.drinks {
		if drink.FriendID == input.FriendID {
			purged++
			continue
		}
		kept = append(kept, drink)
	}
	r.drinks = kept

	return &PurgeDrinksForFriendOutput{
		Purged: purged,
	}, nil
}

func (r *memoryRepository) filter(keep func(*models.DrinkEvent) bool) []*models.DrinkEvent {
	r.mu.RLock()
	defer r.mu.RUnlock()

	drinks := make([]*models.DrinkEvent, 0, len(r.drinks))
	for i := range r.drinks {
		drink := r.drinks[i]
		if keep(&drink) {
			drinks = append(drinks, &drink)
		}
	}
	return drinks
}

func validateAppend(input *AppendDrinkInput) error {
	if input == nil || input.Drink == nil {
		return errors.New("input and drink cannot be nil")
	}
	if input.Drink.ID == "" {
		return errors.New("drink ID cannot be empty")
	}
	if input.Drink.FriendID == "" {
		return errors.New("friend ID cannot be empty")
	}
	if input.Drink.Timestamp.IsZero() {
		return errors.New("drink timestamp cannot be zero")
	}
	return nil
}
