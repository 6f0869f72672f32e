package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/m-mizutani/goerr/v2"

	"github.com/Cl4sm/discord-ctftime-bot/pkg/domain/types"
)

// Client implements Service on top of a discordgo session. It exposes the
// underlying session so the gateway controller can register event handlers
// on it.
type Client struct {
	session *discordgo.Session
}

// New creates a Discord service with the provided bot token. The session is
// not connected yet; call Open before serving events.
func New(token string) (*Client, error) {
	if token == "" {
		return nil, goerr.New("Discord bot token is required")
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Discord session")
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentsGuildEmojis

	return &Client{session: session}, nil
}

// Session returns the underlying gateway session for handler registration
func (x *Client) Session() *discordgo.Session {
	return x.session
}

// Open connects the gateway session
func (x *Client) Open() error {
	if err := x.session.Open(); err != nil {
		return goerr.Wrap(err, "failed to open Discord gateway session")
	}
	return nil
}

// Close disconnects the gateway session
func (x *Client) Close() error {
	return x.session.Close()
}

func (x *Client) CreateRole(ctx context.Context, guildID types.GuildID, name string) (*Role, error) {
	role, err := x.session.GuildRoleCreate(guildID.String(), &discordgo.RoleParams{
		Name: name,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create role",
			goerr.V("guild_id", guildID), goerr.V("name", name))
	}

	return &Role{ID: types.RoleID(role.ID), Name: role.Name}, nil
}

func (x *Client) CreateCategory(ctx context.Context, guildID types.GuildID, name string, position int, viewerRole types.RoleID) (types.ChannelID, error) {
	// The @everyone role shares its ID with the guild
	overwrites := []*discordgo.PermissionOverwrite{
		{
			ID:   guildID.String(),
			Type: discordgo.PermissionOverwriteTypeRole,
			Deny: discordgo.PermissionViewChannel,
		},
		{
			ID:    viewerRole.String(),
			Type:  discordgo.PermissionOverwriteTypeRole,
			Allow: discordgo.PermissionViewChannel,
		},
	}

	channel, err := x.session.GuildChannelCreateComplex(guildID.String(), discordgo.GuildChannelCreateData{
		Name:                 name,
		Type:                 discordgo.ChannelTypeGuildCategory,
		Position:             position,
		PermissionOverwrites: overwrites,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return "", goerr.Wrap(err, "failed to create category",
			goerr.V("guild_id", guildID), goerr.V("name", name))
	}

	return types.ChannelID(channel.ID), nil
}

func (x *Client) CreateTextChannel(ctx context.Context, guildID types.GuildID, parentID types.ChannelID, name, topic string) (types.ChannelID, error) {
	channel, err := x.session.GuildChannelCreateComplex(guildID.String(), discordgo.GuildChannelCreateData{
		Name:     name,
		Type:     discordgo.ChannelTypeGuildText,
		Topic:    topic,
		ParentID: parentID.String(),
	}, discordgo.WithContext(ctx))
	if err != nil {
		return "", goerr.Wrap(err, "failed to create text channel",
			goerr.V("guild_id", guildID), goerr.V("name", name))
	}

	return types.ChannelID(channel.ID), nil
}

func (x *Client) CreateForumChannel(ctx context.Context, guildID types.GuildID, parentID types.ChannelID, name string) (types.ChannelID, error) {
	channel, err := x.session.GuildChannelCreateComplex(guildID.String(), discordgo.GuildChannelCreateData{
		Name:     name,
		Type:     discordgo.ChannelTypeGuildForum,
		ParentID: parentID.String(),
	}, discordgo.WithContext(ctx))
	if err != nil {
		return "", goerr.Wrap(err, "failed to create forum channel",
			goerr.V("guild_id", guildID), goerr.V("name", name))
	}

	return types.ChannelID(channel.ID), nil
}

func (x *Client) CreateVoiceChannel(ctx context.Context, guildID types.GuildID, parentID types.ChannelID, name string) (types.ChannelID, error) {
	channel, err := x.session.GuildChannelCreateComplex(guildID.String(), discordgo.GuildChannelCreateData{
		Name:     name,
		Type:     discordgo.ChannelTypeGuildVoice,
		ParentID: parentID.String(),
	}, discordgo.WithContext(ctx))
	if err != nil {
		return "", goerr.Wrap(err, "failed to create voice channel",
			goerr.V("guild_id", guildID), goerr.V("name", name))
	}

	return types.ChannelID(channel.ID), nil
}

func (x *Client) GuildEmojis(ctx context.Context, guildID types.GuildID) ([]Emoji, error) {
	emojis, err := x.session.GuildEmojis(guildID.String(), discordgo.WithContext(ctx))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list guild emojis", goerr.V("guild_id", guildID))
	}

	result := make([]Emoji, 0, len(emojis))
	for _, e := range emojis {
		result = append(result, Emoji{ID: types.EmojiID(e.ID), Name: e.Name})
	}
	return result, nil
}

func (x *Client) SendMessage(ctx context.Context, channelID types.ChannelID, content string) (*Message, error) {
	msg, err := x.session.ChannelMessageSend(channelID.String(), content, discordgo.WithContext(ctx))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to send message", goerr.V("channel_id", channelID))
	}

	return &Message{ID: types.MessageID(msg.ID), ChannelID: types.ChannelID(msg.ChannelID)}, nil
}

func (x *Client) SendSilentMessage(ctx context.Context, channelID types.ChannelID, content string) (*Message, error) {
	msg, err := x.session.ChannelMessageSendComplex(channelID.String(), &discordgo.MessageSend{
		Content: content,
		Flags:   discordgo.MessageFlagsSuppressNotifications,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to send silent message", goerr.V("channel_id", channelID))
	}

	return &Message{ID: types.MessageID(msg.ID), ChannelID: types.ChannelID(msg.ChannelID)}, nil
}

func (x *Client) AddReaction(ctx context.Context, channelID types.ChannelID, messageID types.MessageID, emoji Emoji) error {
	err := x.session.MessageReactionAdd(channelID.String(), messageID.String(), emoji.APIName(), discordgo.WithContext(ctx))
	if err != nil {
		return goerr.Wrap(err, "failed to add reaction",
			goerr.V("channel_id", channelID), goerr.V("message_id", messageID), goerr.V("emoji", emoji.APIName()))
	}
	return nil
}

func (x *Client) AddMemberRole(ctx context.Context, guildID types.GuildID, userID types.UserID, roleID types.RoleID) error {
	err := x.session.GuildMemberRoleAdd(guildID.String(), userID.String(), roleID.String(), discordgo.WithContext(ctx))
	if err != nil {
		return goerr.Wrap(err, "failed to grant role",
			goerr.V("guild_id", guildID), goerr.V("user_id", userID), goerr.V("role_id", roleID))
	}
	return nil
}

func (x *Client) BotUserID() types.UserID {
	if x.session.State == nil || x.session.State.User == nil {
		return ""
	}
	return types.UserID(x.session.State.User.ID)
}

var _ Service = &Client{}
