package model

import (
	"github.com/m-mizutani/goerr/v2"

	"github.com/Cl4sm/discord-ctftime-bot/pkg/domain/types"
)

// Binding ties a published reaction-role message to the role it grants.
// A binding is created once when the message is posted and never mutated.
// The JSON field names are the on-disk state file format.
type Binding struct {
	CTFName  string            `json:"ctf_name"`
	Messages []types.MessageID `json:"messages"`
	Emoji    types.EmojiID     `json:"emoji"`
	Role     types.RoleID      `json:"role"`
}

// Validate checks structural invariants before the binding is persisted
func (x *Binding) Validate() error {
	if x.CTFName == "" {
		return goerr.New("binding name is required")
	}
	if len(x.Messages) == 0 {
		return goerr.New("binding must reference at least one message", goerr.V("name", x.CTFName))
	}
	for _, id := range x.Messages {
		if err := id.Validate(); err != nil {
			return goerr.Wrap(err, "invalid binding message ID", goerr.V("name", x.CTFName))
		}
	}
	if err := x.Emoji.Validate(); err != nil {
		return goerr.Wrap(err, "invalid binding emoji ID", goerr.V("name", x.CTFName))
	}
	if err := x.Role.Validate(); err != nil {
		return goerr.Wrap(err, "invalid binding role ID", goerr.V("name", x.CTFName))
	}
	return nil
}

// HasMessage reports whether the binding was published as the given message
func (x *Binding) HasMessage(id types.MessageID) bool {
	for _, m := range x.Messages {
		if m == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so repository callers cannot alias stored state
func (x *Binding) Clone() *Binding {
	copied := &Binding{
		CTFName: x.CTFName,
		Emoji:   x.Emoji,
		Role:    x.Role,
	}
	copied.Messages = make([]types.MessageID, len(x.Messages))
	copy(copied.Messages, x.Messages)
	return copied
}
