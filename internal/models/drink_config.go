package models

import (
	"fmt"
	"math"
)

// DrinkTypeConfig holds the alcohol-by-volume percentage for each drink type
type DrinkTypeConfig struct {
	// StandardDrink is the ABV percentage of a standard drink
	StandardDrink float64 `json:"standardDrink"`

	// Beer is the ABV percentage of a beer
	Beer float64 `json:"beer"`

	// Shot is the ABV percentage of a shot
	Shot float64 `json:"shot"`
}

// DefaultDrinkTypeConfig returns the percentages used until someone changes them
func DefaultDrinkTypeConfig() DrinkTypeConfig {
	return DrinkTypeConfig{
		StandardDrink: 5,
		Beer:          4.5,
		Shot:          40,
	}
}

// Percent returns the configured percentage for a drink type
func (c DrinkTypeConfig) Percent(t DrinkType) float64 {
	switch t {
	case DrinkTypeStandard:
		return c.StandardDrink
	case DrinkTypeBeer:
		return c.Beer
	case DrinkTypeShot:
		return c.Shot
	}
	return 0
}

// Validate checks every percentage is a finite value within [0, 100]
func (c DrinkTypeConfig) Validate() error {
	for _, t := range AllDrinkTypes {
		p := c.Percent(t)
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return fmt.Errorf("%s percentage must be a finite number", t)
		}
		if p < 0 || p > 100 {
			return fmt.Errorf("%s percentage must be between 0 and 100, got %v", t, p)
		}
	}
	return nil
}
