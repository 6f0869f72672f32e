package config

import (
	"github.com/m-mizutani/goerr/v2"

	"github.com/Cl4sm/discord-ctftime-bot/pkg/domain/types"
)

// Discord holds the platform identifiers the bot operates on. It is built
// once at startup and passed by reference into every component that needs
// them; there is no ambient global configuration.
type Discord struct {
	Guild               types.GuildID
	RoleChannel         types.ChannelID
	AnnouncementChannel types.ChannelID
	AcademyChannel      types.ChannelID
}

// Validate checks that all required platform IDs are well-formed
func (x *Discord) Validate() error {
	if err := x.Guild.Validate(); err != nil {
		return goerr.Wrap(err, "invalid guild ID")
	}
	if err := x.RoleChannel.Validate(); err != nil {
		return goerr.Wrap(err, "invalid role channel ID")
	}
	if err := x.AnnouncementChannel.Validate(); err != nil {
		return goerr.Wrap(err, "invalid announcement channel ID")
	}
	if err := x.AcademyChannel.Validate(); err != nil {
		return goerr.Wrap(err, "invalid academy channel ID")
	}
	return nil
}
