package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/Cl4sm/discord-ctftime-bot/pkg/domain/model"
	"github.com/Cl4sm/discord-ctftime-bot/pkg/domain/types"
	"github.com/Cl4sm/discord-ctftime-bot/pkg/repository/memory"
	"github.com/Cl4sm/discord-ctftime-bot/pkg/usecase"
)

func seedBinding(t *testing.T, repo *memory.Repository) *model.Binding {
	t.Helper()
	binding := &model.Binding{
		CTFName:  "PicoCTF 2024",
		Messages: []types.MessageID{"1000", "1001"},
		Emoji:    "555",
		Role:     "777",
	}
	gt.NoError(t, repo.Append(context.Background(), binding)).Required()
	return binding
}

func reactionEvent() *model.ReactionEvent {
	return &model.ReactionEvent{
		GuildID:   "100",
		ChannelID: "200",
		MessageID: "1000",
		UserID:    "42",
		EmojiID:   "555",
	}
}

func TestHandleReactionAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("matching reaction grants the role", func(t *testing.T) {
		dc := &mockDiscord{botID: "1"}
		repo := memory.New()
		seedBinding(t, repo)
		uc := usecase.New(repo, dc, &stubSchedule{}, testCfg)

		gt.NoError(t, uc.HandleReactionAdd(ctx, reactionEvent())).Required()

		gt.Array(t, dc.grants).Length(1)
		gt.Value(t, dc.grants[0].User).Equal(types.UserID("42"))
		gt.Value(t, dc.grants[0].Role).Equal(types.RoleID("777"))
		gt.Value(t, dc.grants[0].Guild).Equal(types.GuildID("100"))
	})

	t.Run("secondary message of the binding also grants", func(t *testing.T) {
		dc := &mockDiscord{botID: "1"}
		repo := memory.New()
		seedBinding(t, repo)
		uc := usecase.New(repo, dc, &stubSchedule{}, testCfg)

		ev := reactionEvent()
		ev.MessageID = "1001"
		gt.NoError(t, uc.HandleReactionAdd(ctx, ev)).Required()
		gt.Array(t, dc.grants).Length(1)
	})

	t.Run("unknown message is a no-op", func(t *testing.T) {
		dc := &mockDiscord{botID: "1"}
		repo := memory.New()
		seedBinding(t, repo)
		uc := usecase.New(repo, dc, &stubSchedule{}, testCfg)

		ev := reactionEvent()
		ev.MessageID = "9999"
		gt.NoError(t, uc.HandleReactionAdd(ctx, ev)).Required()
		gt.Array(t, dc.grants).Length(0)
	})

	t.Run("empty store is a no-op", func(t *testing.T) {
		dc := &mockDiscord{botID: "1"}
		uc := usecase.New(memory.New(), dc, &stubSchedule{}, testCfg)

		gt.NoError(t, uc.HandleReactionAdd(ctx, reactionEvent())).Required()
		gt.Array(t, dc.grants).Length(0)
	})

	t.Run("wrong emoji is a no-op", func(t *testing.T) {
		dc := &mockDiscord{botID: "1"}
		repo := memory.New()
		seedBinding(t, repo)
		uc := usecase.New(repo, dc, &stubSchedule{}, testCfg)

		ev := reactionEvent()
		ev.EmojiID = "666"
		gt.NoError(t, uc.HandleReactionAdd(ctx, ev)).Required()
		gt.Array(t, dc.grants).Length(0)
	})

	t.Run("bot's own reaction is a no-op", func(t *testing.T) {
		dc := &mockDiscord{botID: "42"}
		repo := memory.New()
		seedBinding(t, repo)
		uc := usecase.New(repo, dc, &stubSchedule{}, testCfg)

		// UserID 42 is the bot itself here
		gt.NoError(t, uc.HandleReactionAdd(ctx, reactionEvent())).Required()
		gt.Array(t, dc.grants).Length(0)
	})

	t.Run("storage failure escalates", func(t *testing.T) {
		dc := &mockDiscord{botID: "1"}
		uc := usecase.New(&failingRepo{}, dc, &stubSchedule{}, testCfg)

		err := uc.HandleReactionAdd(ctx, reactionEvent())
		gt.Error(t, err)
		gt.Array(t, dc.grants).Length(0)
	})
}

// failingRepo simulates an unreadable state file
type failingRepo struct{}

func (x *failingRepo) Append(ctx context.Context, binding *model.Binding) error {
	return goerr.New("state file unreadable")
}

func (x *failingRepo) FindByMessage(ctx context.Context, id types.MessageID) (*model.Binding, error) {
	return nil, goerr.New("state file unreadable")
}

func (x *failingRepo) List(ctx context.Context) ([]*model.Binding, error) {
	return nil, goerr.New("state file unreadable")
}
