package command

import (
	"errors"

	"github.com/bwmarrin/discordgo"
)

// ErrUnknownSubcommand is returned when a command that declares subcommands
// is invoked without a recognizable one.
var ErrUnknownSubcommand = errors.New("not a valid subcommand")

// SubcommandData is the typed view over one subcommand invocation: its name
// and its options, resolved against the interaction's resolved-entity maps.
// Parsed once at the routing boundary; handlers never touch raw options.
type SubcommandData struct {
	Name     string
	options  []*discordgo.ApplicationCommandInteractionDataOption
	resolved *discordgo.ApplicationCommandInteractionDataResolved
}

// Subcommand extracts the invoked subcommand from the interaction.
func Subcommand(i *discordgo.InteractionCreate) (*SubcommandData, error) {
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 || data.Options[0].Type != discordgo.ApplicationCommandOptionSubCommand {
		return nil, ErrUnknownSubcommand
	}
	sub := data.Options[0]
	return &SubcommandData{
		Name:     sub.Name,
		options:  sub.Options,
		resolved: data.Resolved,
	}, nil
}

// String returns the named string option, or "" when absent.
func (d *SubcommandData) String(name string) string {
	for _, opt := range d.options {
		if opt.Name == name && opt.Type == discordgo.ApplicationCommandOptionString {
			return opt.StringValue()
		}
	}
	return ""
}

// User returns the named user option resolved from the interaction payload,
// or nil when the option is absent.
func (d *SubcommandData) User(name string) *discordgo.User {
	for _, opt := range d.options {
		if opt.Name == name && opt.Type == discordgo.ApplicationCommandOptionUser {
			id, ok := opt.Value.(string)
			if !ok || d.resolved == nil {
				return nil
			}
			return d.resolved.Users[id]
		}
	}
	return nil
}

// ChannelID returns the id of the named channel option, or "" when absent.
// The fresh channel itself is read from state at handling time, not from the
// interaction payload.
func (d *SubcommandData) ChannelID(name string) string {
	for _, opt := range d.options {
		if opt.Name == name && opt.Type == discordgo.ApplicationCommandOptionChannel {
			if id, ok := opt.Value.(string); ok {
				return id
			}
		}
	}
	return ""
}
