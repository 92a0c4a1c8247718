package discord

import (
	"sync"

	"github.com/KirkDiggler/drinktracker/internal/models"
)

// Selection remembers which friend each Discord user last selected
type Selection struct {
	mu       sync.Mutex
	selected map[string]string
}

// NewSelection creates an empty selection
func NewSelection() *Selection {
	return &Selection{
		selected: make(map[string]string),
	}
}

// Select marks friendID as the user's selected friend
func (s *Selection) Select(userID, friendID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected[userID] = friendID
}

// Current returns the user's selected friend from friends. When nothing is
// selected, or the selected friend is gone, it falls back to the first
// friend and remembers that choice. It returns nil only if friends is empty.
func (s *Selection) Current(userID string, friends []*models.Friend) *models.Friend {
	if len(friends) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.selected[userID]; ok {
		for _, f := range friends {
			if f.ID == id {
				return f
			}
		}
	}

	s.selected[userID] = friends[0].ID
	return friends[0]
}
