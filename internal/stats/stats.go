// Package stats computes bot-level gauges from the session's state cache.
// Collect is a pure read; it never issues network requests.
package stats

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

// Snapshot holds the aggregate counters shown by /bot stats and the HTTP
// stats endpoint.
type Snapshot struct {
	Guilds   int
	Users    int
	Channels int
	Uptime   time.Duration
	Latency  time.Duration
}

// UptimeSeconds is the uptime as whole seconds.
func (s Snapshot) UptimeSeconds() int64 {
	return int64(s.Uptime.Seconds())
}

// LatencyMillis is the last measured gateway round-trip in milliseconds.
func (s Snapshot) LatencyMillis() int64 {
	return s.Latency.Milliseconds()
}

// Collect reads the cached guild list: guild count, the sum of each guild's
// cached member count, and the channel count (guild channels plus open
// private channels).
func Collect(st *discordgo.State, latency time.Duration, started time.Time) Snapshot {
	st.RLock()
	defer st.RUnlock()

	snap := Snapshot{
		Guilds:  len(st.Guilds),
		Uptime:  time.Since(started),
		Latency: latency,
	}
	for _, g := range st.Guilds {
		snap.Users += g.MemberCount
		snap.Channels += len(g.Channels)
	}
	snap.Channels += len(st.PrivateChannels)
	return snap
}
