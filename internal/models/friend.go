package models

// Friend represents a person whose drinks are being tracked
type Friend struct {
	// ID is the unique identifier for the friend
	ID string `json:"id"`

	// DisplayName is the trimmed name shown for the friend
	DisplayName string `json:"displayName"`

	// ColorTag is a cosmetic color assigned when the friend was added
	ColorTag string `json:"colorTag"`
}
