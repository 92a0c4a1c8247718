// Package stats computes drink totals and hourly series from snapshots of
// friends and drink events. Every function is pure: the same inputs always
// produce the same output and nothing is cached between calls.
package stats

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/drinktracker/internal/models"
)

// StartOfDay returns midnight of t's calendar date in t's location
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// HourLabel formats an hour of day as "HH:00"
func HourLabel(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

// ComputeTotals counts the drinks logged for a friend, overall and by type
func ComputeTotals(drinks []*models.DrinkEvent, friendID string) models.Totals {
	totals := models.Totals{
		FriendID: friendID,
		ByType:   make(map[models.DrinkType]int, len(models.AllDrinkTypes)),
	}
	for _, t := range models.AllDrinkTypes {
		totals.ByType[t] = 0
	}

	for _, drink := range drinks {
		if drink == nil || drink.FriendID != friendID {
			continue
		}
		totals.Total++
		if drink.DrinkType.IsValid() {
			totals.ByType[drink.DrinkType]++
		}
	}

	return totals
}

// ComputeAllTotals returns totals for every friend in insertion order
func ComputeAllTotals(drinks []*models.DrinkEvent, friends []*models.Friend) []models.Totals {
	all := make([]models.Totals, 0, len(friends))
	for _, friend := range friends {
		if friend == nil {
			continue
		}
		all = append(all, ComputeTotals(drinks, friend.ID))
	}
	return all
}

// ComputeHourlySeries buckets the drinks logged on now's calendar day by
// local hour. The result always has 24 buckets, and every bucket carries
// every friend's display name, zero when nothing was logged. Drinks whose
// friend no longer exists are skipped.
func ComputeHourlySeries(drinks []*models.DrinkEvent, friends []*models.Friend, now time.Time) []models.HourlyBucket {
	names := make([]string, 0, len(friends))
	byID := make(map[string]string, len(friends))
	seenName := make(map[string]bool, len(friends))
	for _, friend := range friends {
		if friend == nil {
			continue
		}
		byID[friend.ID] = friend.DisplayName
		// Friends sharing a display name share a key.
		if !seenName[friend.DisplayName] {
			seenName[friend.DisplayName] = true
			names = append(names, friend.DisplayName)
		}
	}

	buckets := make([]models.HourlyBucket, models.HoursPerDay)
	for hour := range buckets {
		counts := make(map[string]int, len(names))
		for _, name := range names {
			counts[name] = 0
		}
		buckets[hour] = models.HourlyBucket{
			Hour:      hour,
			HourLabel: HourLabel(hour),
			Names:     append([]string(nil), names...),
			Counts:    counts,
		}
	}

	loc := now.Location()
	dayStart := StartOfDay(now)
	for _, drink := range drinks {
		if drink == nil || drink.Timestamp.Before(dayStart) {
			continue
		}
		name, ok := byID[drink.FriendID]
		if !ok {
			continue
		}
		hour := drink.Timestamp.In(loc).Hour()
		buckets[hour].Counts[name]++
	}

	return buckets
}
