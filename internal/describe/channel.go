package describe

import (
	"strconv"

	"github.com/bwmarrin/discordgo"
)

// ChannelKind is a closed enumeration over the channel types the bot knows
// how to describe. Anything Discord adds later lands on KindUnknown and is
// described with the common block only.
type ChannelKind int

const (
	KindUnknown ChannelKind = iota
	KindText
	KindDM
	KindVoice
	KindGroupDM
	KindCategory
	KindNews
	KindNewsThread
	KindPublicThread
	KindPrivateThread
	KindStageVoice
	KindDirectory
	KindForum
)

var kindLabels = map[ChannelKind]string{
	KindText:          "Text",
	KindDM:            "DM",
	KindVoice:         "Voice",
	KindGroupDM:       "Group DM",
	KindCategory:      "Category",
	KindNews:          "Announcement",
	KindNewsThread:    "News Thread",
	KindPublicThread:  "Public Thread",
	KindPrivateThread: "Private Thread",
	KindStageVoice:    "Stage Voice",
	KindDirectory:     "Directory",
	KindForum:         "Forum",
}

// Label returns the display name for the kind, "Unknown" for anything
// outside the mapping table.
func (k ChannelKind) Label() string {
	if label, ok := kindLabels[k]; ok {
		return label
	}
	return "Unknown"
}

// KindOf maps the platform's numeric channel type onto the closed enum.
func KindOf(t discordgo.ChannelType) ChannelKind {
	switch t {
	case discordgo.ChannelTypeGuildText:
		return KindText
	case discordgo.ChannelTypeDM:
		return KindDM
	case discordgo.ChannelTypeGuildVoice:
		return KindVoice
	case discordgo.ChannelTypeGroupDM:
		return KindGroupDM
	case discordgo.ChannelTypeGuildCategory:
		return KindCategory
	case discordgo.ChannelTypeGuildNews:
		return KindNews
	case discordgo.ChannelTypeGuildNewsThread:
		return KindNewsThread
	case discordgo.ChannelTypeGuildPublicThread:
		return KindPublicThread
	case discordgo.ChannelTypeGuildPrivateThread:
		return KindPrivateThread
	case discordgo.ChannelTypeGuildStageVoice:
		return KindStageVoice
	case discordgo.ChannelTypeGuildDirectory:
		return KindDirectory
	case discordgo.ChannelTypeGuildForum:
		return KindForum
	default:
		return KindUnknown
	}
}

// ChannelSnapshot is a read-only projection of one channel. Variant fields
// are populated only when the kind matches; see NewChannelSnapshot.
type ChannelSnapshot struct {
	ID       string
	Name     string
	Kind     ChannelKind
	Category string

	// text-like
	Topic    string
	Position int
	Slowmode int
	NSFW     bool

	// thread
	OwnerID  string
	Archived bool
	Locked   bool

	// voice-like
	Bitrate   int
	UserLimit int
	Full      bool
}

// NewChannelSnapshot projects a cached channel into a snapshot. guild may be
// nil (direct messages); it is only read for the parent category name and
// voice occupancy.
func NewChannelSnapshot(c *discordgo.Channel, guild *discordgo.Guild) ChannelSnapshot {
	snap := ChannelSnapshot{
		ID:       c.ID,
		Name:     c.Name,
		Kind:     KindOf(c.Type),
		Category: parentName(c, guild),
	}

	switch snap.Kind {
	case KindText, KindNews:
		snap.Topic = c.Topic
		snap.Position = c.Position
		snap.Slowmode = c.RateLimitPerUser
		snap.NSFW = c.NSFW
	case KindPublicThread, KindPrivateThread:
		snap.OwnerID = c.OwnerID
		if c.ThreadMetadata != nil {
			snap.Archived = c.ThreadMetadata.Archived
			snap.Locked = c.ThreadMetadata.Locked
		}
	case KindVoice, KindStageVoice:
		snap.Position = c.Position
		snap.Bitrate = c.Bitrate
		snap.UserLimit = c.UserLimit
		snap.Full = voiceFull(c, guild)
	}

	return snap
}

func parentName(c *discordgo.Channel, guild *discordgo.Guild) string {
	if c.ParentID == "" || guild == nil {
		return ""
	}
	for _, parent := range guild.Channels {
		if parent.ID == c.ParentID {
			return parent.Name
		}
	}
	return ""
}

func voiceFull(c *discordgo.Channel, guild *discordgo.Guild) bool {
	if c.UserLimit <= 0 || guild == nil {
		return false
	}
	occupied := 0
	for _, vs := range guild.VoiceStates {
		if vs.ChannelID == c.ID {
			occupied++
		}
	}
	return occupied >= c.UserLimit
}

// Channel builds the channel description: the four common lines, then the
// block for the snapshot's variant. Unknown kinds get the common block only.
func Channel(snap ChannelSnapshot) Description {
	d := Description{Author: "Channel Details"}

	category := snap.Category
	if category == "" {
		category = "NA"
	}

	d.addLine("ID", snap.ID)
	d.addLine("Name", snap.Name)
	d.addLine("Type", snap.Kind.Label())
	d.addLine("Category", category)

	switch snap.Kind {
	case KindText, KindNews:
		topic := snap.Topic
		if topic == "" {
			topic = "No topic set"
		}
		d.addLine("Topic", topic)
		d.addLine("Position", strconv.Itoa(snap.Position))
		d.addLine("Slowmode", strconv.Itoa(snap.Slowmode))
		d.addLine("isNSFW", check(snap.NSFW))
	case KindPublicThread, KindPrivateThread:
		d.addLine("Owner Id", snap.OwnerID)
		d.addLine("Is Archived", check(snap.Archived))
		d.addLine("Is Locked", check(snap.Locked))
	case KindVoice, KindStageVoice:
		d.addLine("Position", strconv.Itoa(snap.Position))
		d.addLine("Bitrate", strconv.Itoa(snap.Bitrate))
		d.addLine("User Limit", strconv.Itoa(snap.UserLimit))
		d.addLine("isFull", check(snap.Full))
	}

	return d
}
