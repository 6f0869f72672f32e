package discord

import (
	"context"

	"github.com/Cl4sm/discord-ctftime-bot/pkg/domain/types"
)

// Service provides interface to the Discord API for workspace provisioning,
// reaction-role publishing and role grants
type Service interface {
	// CreateRole creates a guild role with the given name
	CreateRole(ctx context.Context, guildID types.GuildID, name string) (*Role, error)

	// CreateCategory creates a category channel at the given position whose
	// permission overwrites deny view to @everyone and allow view to the
	// viewer role
	CreateCategory(ctx context.Context, guildID types.GuildID, name string, position int, viewerRole types.RoleID) (types.ChannelID, error)

	// CreateTextChannel creates a text channel under the parent category
	CreateTextChannel(ctx context.Context, guildID types.GuildID, parentID types.ChannelID, name, topic string) (types.ChannelID, error)

	// CreateForumChannel creates a forum channel under the parent category
	CreateForumChannel(ctx context.Context, guildID types.GuildID, parentID types.ChannelID, name string) (types.ChannelID, error)

	// CreateVoiceChannel creates a voice channel under the parent category
	CreateVoiceChannel(ctx context.Context, guildID types.GuildID, parentID types.ChannelID, name string) (types.ChannelID, error)

	// GuildEmojis lists the guild's custom emojis
	GuildEmojis(ctx context.Context, guildID types.GuildID) ([]Emoji, error)

	// SendMessage posts a regular message to a channel
	SendMessage(ctx context.Context, channelID types.ChannelID, content string) (*Message, error)

	// SendSilentMessage posts a message without triggering notifications
	SendSilentMessage(ctx context.Context, channelID types.ChannelID, content string) (*Message, error)

	// AddReaction attaches an emoji reaction to a message
	AddReaction(ctx context.Context, channelID types.ChannelID, messageID types.MessageID, emoji Emoji) error

	// AddMemberRole grants a role to a guild member by IDs alone; no prior
	// role fetch is needed
	AddMemberRole(ctx context.Context, guildID types.GuildID, userID types.UserID, roleID types.RoleID) error

	// BotUserID returns the bot's own user ID, or empty before the gateway
	// session is ready
	BotUserID() types.UserID
}

// Role is a lightweight reference to a created guild role
type Role struct {
	ID   types.RoleID
	Name string
}

// Emoji is a custom guild emoji
type Emoji struct {
	ID   types.EmojiID
	Name string
}

// MessageFormat returns the markup that renders the emoji inside a message
func (x Emoji) MessageFormat() string {
	return "<:" + x.Name + ":" + x.ID.String() + ">"
}

// APIName returns the name:id form used by the reaction endpoints
func (x Emoji) APIName() string {
	return x.Name + ":" + x.ID.String()
}

// Message is a lightweight reference to a posted message
type Message struct {
	ID        types.MessageID
	ChannelID types.ChannelID
}
