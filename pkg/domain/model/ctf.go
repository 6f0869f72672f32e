package model

import (
	"github.com/m-mizutani/goerr/v2"

	"github.com/Cl4sm/discord-ctftime-bot/pkg/domain/types"
)

// CreateCTFInput is the operator-supplied invocation context of the
// /create_ctf command. It lives only for one command execution.
type CreateCTFInput struct {
	CTFTimeURL   string
	CategoryName string
	RoleName     string
	Username     string
	Password     string
	Academy      bool
}

// Validate checks the required command options
func (x *CreateCTFInput) Validate() error {
	if x.CTFTimeURL == "" {
		return goerr.New("ctftime_url is required")
	}
	if x.CategoryName == "" {
		return goerr.New("category_name is required")
	}
	if x.RoleName == "" {
		return goerr.New("role_name is required")
	}
	return nil
}

// ReactionEvent is a platform reaction-add event reduced to the fields the
// role grant decision needs.
type ReactionEvent struct {
	GuildID   types.GuildID
	ChannelID types.ChannelID
	MessageID types.MessageID
	UserID    types.UserID
	EmojiID   types.EmojiID
}
