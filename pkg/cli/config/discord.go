package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	domainConfig "github.com/Cl4sm/discord-ctftime-bot/pkg/domain/model/config"
	"github.com/Cl4sm/discord-ctftime-bot/pkg/domain/types"
	"github.com/Cl4sm/discord-ctftime-bot/pkg/service/discord"
)

// Discord holds CLI flags for the gateway connection and the guild layout
type Discord struct {
	token               string
	guild               string
	roleChannel         string
	announcementChannel string
	academyChannel      string
}

// Flags returns CLI flags for Discord configuration
func (x *Discord) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "discord-token",
			Usage:       "Discord bot token",
			Required:    true,
			Sources:     cli.EnvVars("CTFBOT_DISCORD_TOKEN"),
			Destination: &x.token,
		},
		&cli.StringFlag{
			Name:        "guild-id",
			Usage:       "Guild the bot operates on",
			Required:    true,
			Sources:     cli.EnvVars("CTFBOT_GUILD_ID"),
			Destination: &x.guild,
		},
		&cli.StringFlag{
			Name:        "role-channel-id",
			Usage:       "Channel where reaction-role messages are posted",
			Required:    true,
			Sources:     cli.EnvVars("CTFBOT_ROLE_CHANNEL_ID"),
			Destination: &x.roleChannel,
		},
		&cli.StringFlag{
			Name:        "announcement-channel-id",
			Usage:       "Channel where announcements are broadcast",
			Required:    true,
			Sources:     cli.EnvVars("CTFBOT_ANNOUNCEMENT_CHANNEL_ID"),
			Destination: &x.announcementChannel,
		},
		&cli.StringFlag{
			Name:        "academy-channel-id",
			Usage:       "Channel used for academy-mode posts",
			Required:    true,
			Sources:     cli.EnvVars("CTFBOT_ACADEMY_CHANNEL_ID"),
			Destination: &x.academyChannel,
		},
	}
}

// GuildConfig builds and validates the guild layout from the flags
func (x *Discord) GuildConfig() (*domainConfig.Discord, error) {
	cfg := &domainConfig.Discord{
		Guild:               types.GuildID(x.guild),
		RoleChannel:         types.ChannelID(x.roleChannel),
		AnnouncementChannel: types.ChannelID(x.announcementChannel),
		AcademyChannel:      types.ChannelID(x.academyChannel),
	}
	if err := cfg.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid guild configuration")
	}
	return cfg, nil
}

// Configure creates the Discord client from the flags
func (x *Discord) Configure() (*discord.Client, error) {
	client, err := discord.New(x.token)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create discord client")
	}
	return client, nil
}
