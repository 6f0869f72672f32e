package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"

	"github.com/Cl4sm/discord-ctftime-bot/pkg/domain/model"
	"github.com/Cl4sm/discord-ctftime-bot/pkg/domain/model/config"
	"github.com/Cl4sm/discord-ctftime-bot/pkg/domain/types"
	"github.com/Cl4sm/discord-ctftime-bot/pkg/usecase"
	"github.com/Cl4sm/discord-ctftime-bot/pkg/utils/errutil"
	"github.com/Cl4sm/discord-ctftime-bot/pkg/utils/logging"
)

const commandName = "create_ctf"

// createCTFCommand is the guild-scoped slash command registered on ready
var createCTFCommand = &discordgo.ApplicationCommand{
	Name:        commandName,
	Description: "Sets up a CTF by creating the category, role, and announcement",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "ctftime_url",
			Description: "CTFTime event URL",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "category_name",
			Description: "Name of the category to create",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "role_name",
			Description: "Name of the role to create",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "username",
			Description: "Shared competition account username",
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "password",
			Description: "Shared competition account password",
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "academy",
			Description: "Set to \"true\" to also publish to the academy channel",
		},
	},
}

// Handler registers the slash command and routes gateway events into the
// use case layer
type Handler struct {
	session *discordgo.Session
	uc      *usecase.UseCases
	cfg     *config.Discord
}

// New creates a gateway event handler
func New(session *discordgo.Session, uc *usecase.UseCases, cfg *config.Discord) *Handler {
	return &Handler{
		session: session,
		uc:      uc,
		cfg:     cfg,
	}
}

// Register attaches the gateway event handlers to the session. Call before
// opening the session.
func (x *Handler) Register() {
	x.session.AddHandler(x.onReady)
	x.session.AddHandler(x.onInteractionCreate)
	x.session.AddHandler(x.onReactionAdd)
}

func (x *Handler) onReady(s *discordgo.Session, _ *discordgo.Ready) {
	ctx := context.Background()
	if _, err := s.ApplicationCommandCreate(s.State.User.ID, x.cfg.Guild.String(), createCTFCommand); err != nil {
		_ = errutil.Handle(ctx, err, "failed to register slash command")
		return
	}
	logging.Default().Info("ready", "bot_user", s.State.User.Username, "guild_id", x.cfg.Guild)
}

func (x *Handler) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	data := i.ApplicationCommandData()
	if data.Name != commandName {
		return
	}

	// Each invocation gets its own ID so its log lines can be correlated
	ctx := logging.With(context.Background(),
		logging.Default().With("invocation_id", uuid.New().String()))

	input := parseCreateCTFOptions(data.Options)
	result, err := x.uc.CreateCTF(ctx, input)
	if err != nil {
		// The operator sees the platform's interaction-failed indicator;
		// details go to the log only
		_ = errutil.Handle(ctx, err, "create_ctf failed")
		return
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: buildSummary(input, result),
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		_ = errutil.Handle(ctx, err, "failed to send command summary")
	}
}

func (x *Handler) onReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	ctx := context.Background()

	ev := &model.ReactionEvent{
		GuildID:   types.GuildID(r.GuildID),
		ChannelID: types.ChannelID(r.ChannelID),
		MessageID: types.MessageID(r.MessageID),
		UserID:    types.UserID(r.UserID),
		EmojiID:   types.EmojiID(r.Emoji.ID),
	}

	if err := x.uc.HandleReactionAdd(ctx, ev); err != nil {
		_ = errutil.Handle(ctx, err, "reaction handling failed")
	}
}

// parseCreateCTFOptions maps the interaction options onto the invocation
// context. Missing optional values stay empty.
func parseCreateCTFOptions(opts []*discordgo.ApplicationCommandInteractionDataOption) *model.CreateCTFInput {
	input := &model.CreateCTFInput{}
	for _, opt := range opts {
		switch opt.Name {
		case "ctftime_url":
			input.CTFTimeURL = opt.StringValue()
		case "category_name":
			input.CategoryName = opt.StringValue()
		case "role_name":
			input.RoleName = opt.StringValue()
		case "username":
			input.Username = opt.StringValue()
		case "password":
			input.Password = opt.StringValue()
		case "academy":
			input.Academy = normalizeAcademy(opt.StringValue())
		}
	}
	return input
}

// normalizeAcademy treats only a case-insensitive "true" as true; any other
// value, including an absent option, is false
func normalizeAcademy(v string) bool {
	return strings.EqualFold(v, "true")
}

// buildSummary renders the ephemeral success reply to the operator
func buildSummary(input *model.CreateCTFInput, result *usecase.CreateCTFResult) string {
	var sb strings.Builder
	sb.WriteString("Created CTF Successfully!\n")
	sb.WriteString("Category: " + input.CategoryName + "\n")
	sb.WriteString("Role: " + result.Role.Name + "\n")
	sb.WriteString("URL: " + result.Event.URL + "\n")
	sb.WriteString("Username: " + input.Username + "\n")
	sb.WriteString("Password: " + input.Password + "\n")
	sb.WriteString(fmt.Sprintf("Academy: %t", input.Academy))
	return sb.String()
}
