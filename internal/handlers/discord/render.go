package discord

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/drinktracker/internal/models"
	"github.com/bwmarrin/discordgo"
)

// Embed colors
const (
	colorSuccess = 0x00ff00
	colorError   = 0xff0000
	colorInfo    = 0x3b82f6
)

// quickLogPrefix starts the custom ID of every quick-log button
const quickLogPrefix = "log_drink:"

// response is everything needed to answer an interaction
type response struct {
	content    string
	embeds     []*discordgo.MessageEmbed
	components []discordgo.MessageComponent
	ephemeral  bool
}

func (r *response) interactionResponse(responseType discordgo.InteractionResponseType) *discordgo.InteractionResponse {
	data := &discordgo.InteractionResponseData{
		Content:    r.content,
		Embeds:     r.embeds,
		Components: r.components,
	}
	if r.ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	return &discordgo.InteractionResponse{
		Type: responseType,
		Data: data,
	}
}

// quickLogCustomID is the custom ID of the quick-log button for a drink type
func quickLogCustomID(t models.DrinkType) string {
	return quickLogPrefix + string(t)
}

// parseQuickLogCustomID returns the drink type of a quick-log button
func parseQuickLogCustomID(customID string) (models.DrinkType, bool) {
	tag, ok := strings.CutPrefix(customID, quickLogPrefix)
	if !ok {
		return "", false
	}
	return models.ParseDrinkType(tag)
}

var drinkEmoji = map[models.DrinkType]string{
	models.DrinkTypeStandard: "🍷",
	models.DrinkTypeBeer:     "🍺",
	models.DrinkTypeShot:     "🥃",
}

// renderQuickLogButtons renders one button per drink type
func renderQuickLogButtons() []discordgo.MessageComponent {
	buttons := make([]discordgo.MessageComponent, 0, len(models.AllDrinkTypes))
	for _, t := range models.AllDrinkTypes {
		buttons = append(buttons, discordgo.Button{
			Label:    t.Label(),
			Style:    discordgo.PrimaryButton,
			CustomID: quickLogCustomID(t),
			Emoji: &discordgo.ComponentEmoji{
				Name: drinkEmoji[t],
			},
		})
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: buttons,
		},
	}
}

// renderFriends renders the friend list, marking the selected friend
func renderFriends(friends []*models.Friend, selected *models.Friend) *discordgo.MessageEmbed {
	var lines []string
	for _, f := range friends {
		line := fmt.Sprintf("• **%s** `%s`", f.DisplayName, f.ColorTag)
		if selected != nil && f.ID == selected.ID {
			line += " ⬅ selected"
		}
		lines = append(lines, line)
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Friends (%d)", len(friends)),
		Description: strings.Join(lines, "\n"),
		Color:       colorInfo,
	}
}

// renderTotals renders one field per friend with their counts by type
func renderTotals(friends []*models.Friend, totals []models.Totals) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, len(friends))
	grand := 0

	for i, f := range friends {
		if i >= len(totals) {
			break
		}
		t := totals[i]
		grand += t.Total

		parts := make([]string, 0, len(models.AllDrinkTypes))
		for _, dt := range models.AllDrinkTypes {
			parts = append(parts, fmt.Sprintf("%s %d", dt.Label(), t.ByType[dt]))
		}

		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("%s: %d", f.DisplayName, t.Total),
			Value:  strings.Join(parts, " · "),
			Inline: true,
		})
	}

	color := colorInfo
	if len(friends) > 0 {
		color = parseColorTag(friends[0].ColorTag)
	}

	return &discordgo.MessageEmbed{
		Title:       "Drink Stats",
		Description: fmt.Sprintf("%d drinks logged in total", grand),
		Color:       color,
		Fields:      fields,
	}
}

// renderHourly renders the hours that have drinks as a fixed-width table
func renderHourly(dayStart time.Time, buckets []models.HourlyBucket) *discordgo.MessageEmbed {
	title := fmt.Sprintf("Drinks by hour, %s", dayStart.Format("Mon Jan 2"))

	var rows []models.HourlyBucket
	for _, b := range buckets {
		for _, n := range b.Counts {
			if n > 0 {
				rows = append(rows, b)
				break
			}
		}
	}

	if len(rows) == 0 || len(buckets) == 0 {
		return &discordgo.MessageEmbed{
			Title:       title,
			Description: "No drinks logged today yet.",
			Color:       colorInfo,
		}
	}

	names := buckets[0].Names
	widths := make([]int, len(names))
	for i, name := range names {
		widths[i] = max(len(name), 2)
	}

	var sb strings.Builder
	sb.WriteString("```\n")
	sb.WriteString("Hour ")
	for i, name := range names {
		fmt.Fprintf(&sb, " %*s", widths[i], name)
	}
	sb.WriteString("\n")

	for _, b := range rows {
		sb.WriteString(b.HourLabel)
		for i, name := range names {
			fmt.Fprintf(&sb, " %*d", widths[i], b.Counts[name])
		}
		sb.WriteString("\n")
	}
	sb.WriteString("```")

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: sb.String(),
		Color:       colorInfo,
	}
}

// renderConfig renders the alcohol percentages per drink type
func renderConfig(title string, cfg models.DrinkTypeConfig) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, len(models.AllDrinkTypes))
	for _, t := range models.AllDrinkTypes {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   t.Label(),
			Value:  strconv.FormatFloat(cfg.Percent(t), 'f', -1, 64) + "%",
			Inline: true,
		})
	}

	return &discordgo.MessageEmbed{
		Title:  title,
		Color:  colorSuccess,
		Fields: fields,
	}
}

// renderError renders a user-facing error
func renderError(message string) *response {
	return &response{
		embeds: []*discordgo.MessageEmbed{
			{
				Title:       "Error",
				Description: message,
				Color:       colorError,
			},
		},
		ephemeral: true,
	}
}

// parseColorTag turns "#rrggbb" into an embed color
func parseColorTag(tag string) int {
	v, err := strconv.ParseInt(strings.TrimPrefix(tag, "#"), 16, 32)
	if err != nil {
		return colorInfo
	}
	return int(v)
}
