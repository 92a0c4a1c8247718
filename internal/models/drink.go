package models

import (
	"time"
)

// DrinkType identifies the kind of drink that was logged
type DrinkType string

const (
	// DrinkTypeStandard is a generic mixed or standard drink
	DrinkTypeStandard DrinkType = "standardDrink"

	// DrinkTypeBeer is a beer
	DrinkTypeBeer DrinkType = "beer"

	// DrinkTypeShot is a shot of spirits
	DrinkTypeShot DrinkType = "shot"
)

// AllDrinkTypes lists every drink type in display order
var AllDrinkTypes = []DrinkType{
	DrinkTypeStandard,
	DrinkTypeBeer,
	DrinkTypeShot,
}

// IsValid reports whether the drink type is one of the known types
func (t DrinkType) IsValid() bool {
	switch t {
	case DrinkTypeStandard, DrinkTypeBeer, DrinkTypeShot:
		return true
	}
	return false
}

// Label returns a human readable name for the drink type
func (t DrinkType) Label() string {
	switch t {
	case DrinkTypeStandard:
		return "Drink"
	case DrinkTypeBeer:
		return "Beer"
	case DrinkTypeShot:
		return "Shot"
	}
	return string(t)
}

// ParseDrinkType converts a tag into a DrinkType, rejecting unknown tags
func ParseDrinkType(tag string) (DrinkType, bool) {
	t := DrinkType(tag)
	if !t.IsValid() {
		return "", false
	}
	return t, true
}

// DrinkEvent records a single drink consumed by a friend
type DrinkEvent struct {
	// ID is the unique identifier for the drink event
	ID string `json:"id"`

	// FriendID is the ID of the friend who had the drink
	FriendID string `json:"personId"`

	// DrinkType is the kind of drink
	DrinkType DrinkType `json:"drinkType"`

	// Timestamp is when the drink was logged
	Timestamp time.Time `json:"timestamp"`

	// AlcoholPercentAtLogTime is the ABV configured for the drink type when it was logged
	AlcoholPercentAtLogTime float64 `json:"alcoholPercentAtLogTime"`
}
