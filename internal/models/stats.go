package models

// HoursPerDay is the number of hourly buckets in a daily series
const HoursPerDay = 24

// Totals summarises the drinks logged for one friend
type Totals struct {
	// FriendID is the ID of the friend the totals belong to
	FriendID string

	// Total is the number of drinks logged for the friend
	Total int

	// ByType counts drinks per type; every drink type is present
	ByType map[DrinkType]int
}

// HourlyBucket holds per-friend drink counts for one hour of the day
type HourlyBucket struct {
	// Hour is the local hour of day, 0 through 23
	Hour int

	// HourLabel is the zero-padded hour, e.g. "09:00"
	HourLabel string

	// Names lists friend display names in insertion order
	Names []string

	// Counts maps friend display name to the number of drinks in this hour
	Counts map[string]int
}
