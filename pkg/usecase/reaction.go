package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"

	"github.com/Cl4sm/discord-ctftime-bot/pkg/domain/model"
	"github.com/Cl4sm/discord-ctftime-bot/pkg/repository"
	"github.com/Cl4sm/discord-ctftime-bot/pkg/utils/logging"
)

// HandleReactionAdd grants the bound role when a member reacts to a
// reaction-role message with the bound emoji. Every mismatch — unknown
// message, wrong emoji, the bot's own auto-attached reaction — is a silent
// no-op; members never receive errors for reactions. Removing a reaction
// never revokes the role.
func (uc *UseCases) HandleReactionAdd(ctx context.Context, ev *model.ReactionEvent) error {
	binding, err := uc.repo.FindByMessage(ctx, ev.MessageID)
	if err != nil {
		if errors.Is(err, repository.ErrBindingNotFound) {
			return nil
		}
		return goerr.Wrap(err, "failed to look up reaction binding", goerr.V("message_id", ev.MessageID))
	}

	if ev.UserID == uc.discord.BotUserID() {
		return nil
	}

	if !binding.HasMessage(ev.MessageID) || binding.Emoji != ev.EmojiID {
		return nil
	}

	if err := uc.discord.AddMemberRole(ctx, ev.GuildID, ev.UserID, binding.Role); err != nil {
		return err
	}

	logging.From(ctx).Info("granted role via reaction",
		"user_id", ev.UserID,
		"role_id", binding.Role,
		"ctf", binding.CTFName,
	)
	return nil
}
