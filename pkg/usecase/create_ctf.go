package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/Cl4sm/discord-ctftime-bot/pkg/domain/model"
	"github.com/Cl4sm/discord-ctftime-bot/pkg/domain/types"
	"github.com/Cl4sm/discord-ctftime-bot/pkg/service/ctftime"
	"github.com/Cl4sm/discord-ctftime-bot/pkg/service/discord"
	"github.com/Cl4sm/discord-ctftime-bot/pkg/utils/logging"
)

// categoryPosition pins new CTF categories below the standing guild sections
const categoryPosition = 8

// CreateCTFResult summarizes everything one command invocation created
type CreateCTFResult struct {
	Event    *model.Event
	Role     *discord.Role
	Category types.ChannelID
	Emoji    discord.Emoji
	Messages []*discord.Message
}

// CreateCTF stands up a full competition workspace: schedule lookup, role,
// private category with channels, reaction-role message, and announcement.
// Steps run in order with no rollback; the first failure aborts the rest and
// already-created platform objects stay behind.
func (uc *UseCases) CreateCTF(ctx context.Context, input *model.CreateCTFInput) (*CreateCTFResult, error) {
	if err := input.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid create_ctf input")
	}

	logger := logging.From(ctx)

	eventID, err := ctftime.ExtractEventID(input.CTFTimeURL)
	if err != nil {
		return nil, err
	}

	event, err := uc.schedule.GetEvent(ctx, eventID)
	if err != nil {
		return nil, goerr.Wrap(err, "schedule lookup failed", goerr.V("url", input.CTFTimeURL))
	}

	logger.Info("creating workspace",
		"event", event.Title,
		"category", input.CategoryName,
		"role", input.RoleName,
		"academy", input.Academy,
	)

	role, category, err := uc.provisionWorkspace(ctx, input, event.URL)
	if err != nil {
		return nil, err
	}

	emoji, messages, err := uc.publishRoleReact(ctx, role, event.Title, input.Academy)
	if err != nil {
		return nil, err
	}

	timeInfo, err := ctftime.FormatTimeRange(event.Start, event.Finish)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to format event time window", goerr.V("event", event.Title))
	}

	if err := uc.announce(ctx, event.Title, timeInfo, emoji, messages[0], input.Academy); err != nil {
		return nil, err
	}

	return &CreateCTFResult{
		Event:    event,
		Role:     role,
		Category: category,
		Emoji:    emoji,
		Messages: messages,
	}, nil
}

// provisionWorkspace creates the role, the private category, and the three
// channels inside it
func (uc *UseCases) provisionWorkspace(ctx context.Context, input *model.CreateCTFInput, eventURL string) (*discord.Role, types.ChannelID, error) {
	role, err := uc.discord.CreateRole(ctx, uc.cfg.Guild, input.RoleName)
	if err != nil {
		return nil, "", err
	}
	logging.From(ctx).Info("created role", "role_id", role.ID, "name", role.Name)

	category, err := uc.discord.CreateCategory(ctx, uc.cfg.Guild, input.CategoryName, categoryPosition, role.ID)
	if err != nil {
		return nil, "", err
	}

	topic := channelTopic(eventURL, input.Username, input.Password)
	if _, err := uc.discord.CreateTextChannel(ctx, uc.cfg.Guild, category, input.RoleName+"-general", topic); err != nil {
		return nil, "", err
	}
	if _, err := uc.discord.CreateForumChannel(ctx, uc.cfg.Guild, category, input.RoleName+"-challs"); err != nil {
		return nil, "", err
	}
	if _, err := uc.discord.CreateVoiceChannel(ctx, uc.cfg.Guild, category, input.RoleName+"-general"); err != nil {
		return nil, "", err
	}

	return role, category, nil
}

// channelTopic embeds the competition URL and optional credentials into the
// general channel topic
func channelTopic(url, username, password string) string {
	var sb strings.Builder
	sb.WriteString("URL: " + url + "\n")
	if username != "" {
		sb.WriteString("Username: " + username + "\n")
	}
	if password != "" {
		sb.WriteString("Password: " + password + "\n")
	}
	return sb.String()
}

// publishRoleReact posts the reaction-role message (twice in academy mode),
// attaches the randomly chosen emoji, and persists the binding. The binding
// is only appended after every message is posted, so a platform failure here
// leaves no dangling binding.
func (uc *UseCases) publishRoleReact(ctx context.Context, role *discord.Role, eventName string, academy bool) (discord.Emoji, []*discord.Message, error) {
	emoji, err := uc.pickEmoji(ctx)
	if err != nil {
		return discord.Emoji{}, nil, err
	}

	content := uc.templates.RenderReactMessage(eventName, emoji.MessageFormat(), role.Name)

	channels := []types.ChannelID{uc.cfg.RoleChannel}
	if academy {
		channels = append(channels, uc.cfg.AcademyChannel)
	}

	var messages []*discord.Message
	for _, channelID := range channels {
		msg, err := uc.discord.SendSilentMessage(ctx, channelID, content)
		if err != nil {
			return discord.Emoji{}, nil, err
		}
		if err := uc.discord.AddReaction(ctx, channelID, msg.ID, emoji); err != nil {
			return discord.Emoji{}, nil, err
		}
		messages = append(messages, msg)
	}

	binding := &model.Binding{
		CTFName: eventName,
		Emoji:   emoji.ID,
		Role:    role.ID,
	}
	for _, msg := range messages {
		binding.Messages = append(binding.Messages, msg.ID)
	}

	if err := uc.repo.Append(ctx, binding); err != nil {
		return discord.Emoji{}, nil, goerr.Wrap(err, "failed to persist reaction-role binding",
			goerr.V("event", eventName))
	}

	return emoji, messages, nil
}

// pickEmoji chooses one custom emoji uniformly at random from the guild set
func (uc *UseCases) pickEmoji(ctx context.Context) (discord.Emoji, error) {
	emojis, err := uc.discord.GuildEmojis(ctx, uc.cfg.Guild)
	if err != nil {
		return discord.Emoji{}, err
	}
	if len(emojis) == 0 {
		return discord.Emoji{}, goerr.Wrap(ErrNoGuildEmojis, "cannot publish reaction-role message",
			goerr.V("guild_id", uc.cfg.Guild))
	}
	return emojis[uc.pickIndex(len(emojis))], nil
}

// announce broadcasts the event to the main announcement channel, and to the
// academy channel in academy mode
func (uc *UseCases) announce(ctx context.Context, eventName, timeInfo string, emoji discord.Emoji, reactMessage *discord.Message, academy bool) error {
	content := uc.templates.RenderAnnouncement(eventName, timeInfo, emoji.MessageFormat(),
		reactMessage.ChannelID.Mention(), academy)
	if _, err := uc.discord.SendMessage(ctx, uc.cfg.AnnouncementChannel, content); err != nil {
		return err
	}

	if !academy {
		return nil
	}

	content = uc.templates.RenderAcademyAnnouncement(eventName, timeInfo, emoji.MessageFormat())
	if _, err := uc.discord.SendMessage(ctx, uc.cfg.AcademyChannel, content); err != nil {
		return err
	}
	return nil
}
