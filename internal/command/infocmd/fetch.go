package infocmd

import (
	"github.com/bwmarrin/discordgo"
)

// State-first, REST-fallback lookups. The state cache is the fresh snapshot
// source; the REST call only covers entities the gateway has not cached yet.

func fetchGuild(s *discordgo.Session, guildID string) (*discordgo.Guild, error) {
	if guild, err := s.State.Guild(guildID); err == nil {
		return guild, nil
	}
	return s.Guild(guildID)
}

func fetchChannel(s *discordgo.Session, channelID string) (*discordgo.Channel, error) {
	if channel, err := s.State.Channel(channelID); err == nil {
		return channel, nil
	}
	return s.Channel(channelID)
}

func fetchMember(s *discordgo.Session, guildID, userID string) (*discordgo.Member, error) {
	if member, err := s.State.Member(guildID, userID); err == nil {
		return member, nil
	}
	return s.GuildMember(guildID, userID)
}
