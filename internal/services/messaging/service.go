package messaging

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/drinktracker/internal/models"
)

// Drinks logged in a day before the messages start suggesting water
const heavyDayThreshold = 6

// service implements the Service interface
type service struct {
	// rand is not safe for concurrent use; interactions arrive concurrently
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	seed := time.Now().UnixNano()
	if config != nil && config.Seed != 0 {
		seed = config.Seed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

// GetDrinkLoggedMessage returns a message for when a friend logs a drink
func (s *service) GetDrinkLoggedMessage(ctx context.Context, input *GetDrinkLoggedMessageInput) (*GetDrinkLoggedMessageOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("input cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	name := input.FriendName
	var messages []string

	switch {
	case input.TodayCount >= heavyDayThreshold:
		tone = ToneEncouraging
		messages = []string{
			fmt.Sprintf("That's %d today, %s. Maybe the next one is a glass of water?", input.TodayCount, name),
			fmt.Sprintf("%s is on drink number %d. Hydration is also a drink!", name, input.TodayCount),
			fmt.Sprintf("%d and counting for %s. Pace yourself, champ.", input.TodayCount, name),
		}
	case tone == ToneNeutral:
		messages = []string{
			fmt.Sprintf("Logged a %s for %s.", input.DrinkType.Label(), name),
		}
	default:
		messages = drinkMessages(name, input.DrinkType)
	}

	return &GetDrinkLoggedMessageOutput{
		Title:   fmt.Sprintf("%s logged", input.DrinkType.Label()),
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

func drinkMessages(name string, drinkType models.DrinkType) []string {
	switch drinkType {
	case models.DrinkTypeBeer:
		return []string{
			fmt.Sprintf("%s cracked open a cold one. 🍺", name),
			fmt.Sprintf("Hops and dreams! %s grabbed a beer.", name),
			fmt.Sprintf("Another pint for %s. The foam is the best part.", name),
			fmt.Sprintf("%s is hoppy. Get it? Because beer.", name),
		}
	case models.DrinkTypeShot:
		return []string{
			fmt.Sprintf("%s took a shot! Somebody get the lime. 🥃", name),
			fmt.Sprintf("Down the hatch, %s!", name),
			fmt.Sprintf("%s said \"just one shot\". We'll see.", name),
			fmt.Sprintf("Bottoms up, %s! That one had some bite.", name),
		}
	default:
		return []string{
			fmt.Sprintf("%s had a drink. Cheers! 🥂", name),
			fmt.Sprintf("One more for %s. Keep it classy.", name),
			fmt.Sprintf("%s is sipping. Sophisticated.", name),
			fmt.Sprintf("Cheers to %s and their fine beverage choices!", name),
		}
	}
}

// GetFriendAddedMessage returns a message for when a friend joins the tracker
func (s *service) GetFriendAddedMessage(ctx context.Context, input *GetFriendAddedMessageInput) (*GetFriendAddedMessageOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("input cannot be nil")
	}

	messages := []string{
		fmt.Sprintf("Welcome to the party, %s! 🎉", input.FriendName),
		fmt.Sprintf("A new challenger appears! %s is now on the board.", input.FriendName),
		fmt.Sprintf("%s pulled up a chair. First round's on... someone.", input.FriendName),
		fmt.Sprintf("Look who decided to join! Hi %s.", input.FriendName),
	}

	return &GetFriendAddedMessageOutput{
		Message: s.pick(messages),
	}, nil
}

// GetFriendRemovedMessage returns a message for when a friend is removed
func (s *service) GetFriendRemovedMessage(ctx context.Context, input *GetFriendRemovedMessageInput) (*GetFriendRemovedMessageOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("input cannot be nil")
	}

	var messages []string
	if input.PurgedDrinks == 0 {
		messages = []string{
			fmt.Sprintf("%s left without a single drink. Respect.", input.FriendName),
			fmt.Sprintf("%s has left the building. Clean record!", input.FriendName),
		}
	} else {
		messages = []string{
			fmt.Sprintf("%s went home. Their %s went with them.", input.FriendName, pluralDrinks(input.PurgedDrinks)),
			fmt.Sprintf("Goodbye %s! %s wiped from the record.", input.FriendName, pluralDrinks(input.PurgedDrinks)),
			fmt.Sprintf("%s called an Uber. Forgetting their %s.", input.FriendName, pluralDrinks(input.PurgedDrinks)),
		}
	}

	return &GetFriendRemovedMessageOutput{
		Message: s.pick(messages),
	}, nil
}

func pluralDrinks(n int) string {
	if n == 1 {
		return "1 drink"
	}
	return fmt.Sprintf("%d drinks", n)
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("input cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	var messages []string

	switch input.ErrorType {
	case ErrorTypeValidation:
		messages = []string{
			"That doesn't look right. Check what you typed and try again.",
			"Hmm, I couldn't make sense of that. Had one too many?",
			"Invalid input! Even the bartender is confused.",
		}
	case ErrorTypeNotFound:
		messages = []string{
			"I can't find that friend. Did they sneak out?",
			"Nobody by that name here. Maybe they went home already.",
			"That friend isn't on the list. Add them first!",
		}
	case ErrorTypeInvariantViolation:
		messages = []string{
			"Someone has to stay! You can't remove the last friend.",
			"The last friend standing can't leave. Who else would drink?",
			"Can't remove everyone. Somebody has to close the tab.",
		}
	default:
		messages = []string{
			"Something went wrong! Try again later.",
			"Oops! The tap is jammed. Try again.",
			"Technical difficulties! The bartender is looking into it.",
		}
	}

	return &GetErrorMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// pick returns a random message
func (s *service) pick(messages []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return messages[s.rand.Intn(len(messages))]
}
