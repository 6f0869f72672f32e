package usecase_test

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"

	"github.com/Cl4sm/discord-ctftime-bot/pkg/domain/model"
	"github.com/Cl4sm/discord-ctftime-bot/pkg/domain/types"
	"github.com/Cl4sm/discord-ctftime-bot/pkg/service/discord"
)

// stubSchedule is a canned ctftime.Service
type stubSchedule struct {
	event *model.Event
	err   error
	calls int
}

func (x *stubSchedule) GetEvent(ctx context.Context, eventID string) (*model.Event, error) {
	x.calls++
	if x.err != nil {
		return nil, x.err
	}
	return x.event, nil
}

type createdRole struct {
	Guild types.GuildID
	Name  string
}

type createdCategory struct {
	Guild      types.GuildID
	Name       string
	Position   int
	ViewerRole types.RoleID
}

type createdChannel struct {
	Guild  types.GuildID
	Parent types.ChannelID
	Name   string
	Topic  string
}

type sentMessage struct {
	Channel types.ChannelID
	Content string
}

type addedReaction struct {
	Channel types.ChannelID
	Message types.MessageID
	Emoji   discord.Emoji
}

type roleGrant struct {
	Guild types.GuildID
	User  types.UserID
	Role  types.RoleID
}

// mockDiscord records every platform call and can be told to fail specific
// operations
type mockDiscord struct {
	botID  types.UserID
	emojis []discord.Emoji

	failReaction bool

	roles          []createdRole
	categories     []createdCategory
	textChannels   []createdChannel
	forumChannels  []createdChannel
	voiceChannels  []createdChannel
	silentMessages []sentMessage
	messages       []sentMessage
	reactions      []addedReaction
	grants         []roleGrant

	nextID int
}

func (x *mockDiscord) callCount() int {
	return len(x.roles) + len(x.categories) + len(x.textChannels) + len(x.forumChannels) +
		len(x.voiceChannels) + len(x.silentMessages) + len(x.messages) + len(x.reactions) + len(x.grants)
}

func (x *mockDiscord) nextSnowflake() string {
	x.nextID++
	return fmt.Sprintf("%d", 9000+x.nextID)
}

func (x *mockDiscord) CreateRole(ctx context.Context, guildID types.GuildID, name string) (*discord.Role, error) {
	x.roles = append(x.roles, createdRole{Guild: guildID, Name: name})
	return &discord.Role{ID: types.RoleID(x.nextSnowflake()), Name: name}, nil
}

func (x *mockDiscord) CreateCategory(ctx context.Context, guildID types.GuildID, name string, position int, viewerRole types.RoleID) (types.ChannelID, error) {
	x.categories = append(x.categories, createdCategory{Guild: guildID, Name: name, Position: position, ViewerRole: viewerRole})
	return types.ChannelID(x.nextSnowflake()), nil
}

func (x *mockDiscord) CreateTextChannel(ctx context.Context, guildID types.GuildID, parentID types.ChannelID, name, topic string) (types.ChannelID, error) {
	x.textChannels = append(x.textChannels, createdChannel{Guild: guildID, Parent: parentID, Name: name, Topic: topic})
	return types.ChannelID(x.nextSnowflake()), nil
}

func (x *mockDiscord) CreateForumChannel(ctx context.Context, guildID types.GuildID, parentID types.ChannelID, name string) (types.ChannelID, error) {
	x.forumChannels = append(x.forumChannels, createdChannel{Guild: guildID, Parent: parentID, Name: name})
	return types.ChannelID(x.nextSnowflake()), nil
}

func (x *mockDiscord) CreateVoiceChannel(ctx context.Context, guildID types.GuildID, parentID types.ChannelID, name string) (types.ChannelID, error) {
	x.voiceChannels = append(x.voiceChannels, createdChannel{Guild: guildID, Parent: parentID, Name: name})
	return types.ChannelID(x.nextSnowflake()), nil
}

func (x *mockDiscord) GuildEmojis(ctx context.Context, guildID types.GuildID) ([]discord.Emoji, error) {
	return x.emojis, nil
}

func (x *mockDiscord) SendMessage(ctx context.Context, channelID types.ChannelID, content string) (*discord.Message, error) {
	x.messages = append(x.messages, sentMessage{Channel: channelID, Content: content})
	return &discord.Message{ID: types.MessageID(x.nextSnowflake()), ChannelID: channelID}, nil
}

func (x *mockDiscord) SendSilentMessage(ctx context.Context, channelID types.ChannelID, content string) (*discord.Message, error) {
	x.silentMessages = append(x.silentMessages, sentMessage{Channel: channelID, Content: content})
	return &discord.Message{ID: types.MessageID(x.nextSnowflake()), ChannelID: channelID}, nil
}

func (x *mockDiscord) AddReaction(ctx context.Context, channelID types.ChannelID, messageID types.MessageID, emoji discord.Emoji) error {
	if x.failReaction {
		return goerr.New("reaction rejected")
	}
	x.reactions = append(x.reactions, addedReaction{Channel: channelID, Message: messageID, Emoji: emoji})
	return nil
}

func (x *mockDiscord) AddMemberRole(ctx context.Context, guildID types.GuildID, userID types.UserID, roleID types.RoleID) error {
	x.grants = append(x.grants, roleGrant{Guild: guildID, User: userID, Role: roleID})
	return nil
}

func (x *mockDiscord) BotUserID() types.UserID {
	return x.botID
}
