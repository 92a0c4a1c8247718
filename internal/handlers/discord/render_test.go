package discord

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/KirkDiggler/drinktracker/internal/models"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampPercent(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{in: 4.5, want: 4.5},
		{in: 0, want: 0},
		{in: 100, want: 100},
		{in: -0.5, want: 0},
		{in: 140, want: 100},
		{in: math.Inf(1), want: 100},
		{in: math.Inf(-1), want: 0},
		{in: math.NaN(), want: 0},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ClampPercent(tc.in), "ClampPercent(%v)", tc.in)
	}
}

func TestQuickLogCustomID(t *testing.T) {
	for _, dt := range models.AllDrinkTypes {
		got, ok := parseQuickLogCustomID(quickLogCustomID(dt))
		assert.True(t, ok)
		assert.Equal(t, dt, got)
	}

	_, ok := parseQuickLogCustomID("log_drink:wine")
	assert.False(t, ok)

	_, ok = parseQuickLogCustomID("beer")
	assert.False(t, ok)
}

func TestRenderQuickLogButtons(t *testing.T) {
	rows := renderQuickLogButtons()
	require.Len(t, rows, 1)

	row, ok := rows[0].(discordgo.ActionsRow)
	require.True(t, ok)
	require.Len(t, row.Components, 3)

	var labels []string
	for _, c := range row.Components {
		button, ok := c.(discordgo.Button)
		require.True(t, ok)
		labels = append(labels, button.Label)
	}
	assert.Equal(t, []string{"Drink", "Beer", "Shot"}, labels)
}

func TestRenderHourlyOnlyShowsHoursWithDrinks(t *testing.T) {
	day := time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC)
	names := []string{"Io", "Alexandra"}

	buckets := make([]models.HourlyBucket, models.HoursPerDay)
	for h := range buckets {
		buckets[h] = models.HourlyBucket{
			Hour:      h,
			HourLabel: time.Date(2025, 4, 5, h, 0, 0, 0, time.UTC).Format("15:04"),
			Names:     names,
			Counts:    map[string]int{"Io": 0, "Alexandra": 0},
		}
	}
	buckets[9].Counts["Io"] = 1
	buckets[22].Counts["Alexandra"] = 12

	embed := renderHourly(day, buckets)
	lines := strings.Split(strings.Trim(embed.Description, "`\n"), "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, "Hour  Io Alexandra", lines[0])
	assert.Equal(t, "09:00  1         0", lines[1])
	assert.Equal(t, "22:00  0        12", lines[2])
}

func TestRenderTotals(t *testing.T) {
	friends := []*models.Friend{
		{ID: "a", DisplayName: "Io", ColorTag: "#3b82f6"},
		{ID: "b", DisplayName: "Ada", ColorTag: "#10b981"},
	}
	totals := []models.Totals{
		{FriendID: "a", Total: 1, ByType: map[models.DrinkType]int{models.DrinkTypeStandard: 0, models.DrinkTypeBeer: 1, models.DrinkTypeShot: 0}},
		{FriendID: "b", Total: 0, ByType: map[models.DrinkType]int{models.DrinkTypeStandard: 0, models.DrinkTypeBeer: 0, models.DrinkTypeShot: 0}},
	}

	embed := renderTotals(friends, totals)

	assert.Equal(t, 0x3b82f6, embed.Color)
	assert.Equal(t, "1 drinks logged in total", embed.Description)
	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "Ada: 0", embed.Fields[1].Name)
	assert.Equal(t, "Drink 0 · Beer 0 · Shot 0", embed.Fields[1].Value)
}

func TestParseColorTag(t *testing.T) {
	assert.Equal(t, 0xef4444, parseColorTag("#ef4444"))
	assert.Equal(t, colorInfo, parseColorTag("blue"))
}

func TestResponseEphemeralFlag(t *testing.T) {
	r := &response{content: "hi", ephemeral: true}
	ir := r.interactionResponse(discordgo.InteractionResponseChannelMessageWithSource)

	assert.Equal(t, discordgo.InteractionResponseChannelMessageWithSource, ir.Type)
	assert.Equal(t, "hi", ir.Data.Content)
	assert.Equal(t, discordgo.MessageFlagsEphemeral, ir.Data.Flags)

	r.ephemeral = false
	assert.Zero(t, r.interactionResponse(discordgo.InteractionResponseChannelMessageWithSource).Data.Flags)
}
