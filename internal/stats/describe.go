package stats

import (
	"fmt"
	"strconv"

	"infobot/internal/describe"
	"infobot/pkg/util"
)

// Describe renders a snapshot as the description used by both /bot stats and
// /info bot.
func Describe(snap Snapshot) describe.Description {
	d := describe.Description{Author: "Bot Stats"}
	d.Lines = []describe.Field{
		{Label: "Guilds", Value: strconv.Itoa(snap.Guilds)},
		{Label: "Users", Value: strconv.Itoa(snap.Users)},
		{Label: "Channels", Value: strconv.Itoa(snap.Channels)},
		{Label: "Uptime", Value: util.FormatDuration(snap.UptimeSeconds())},
		{Label: "Ping", Value: fmt.Sprintf("%dms", snap.LatencyMillis())},
	}
	return d
}
