package interfaces

import (
	"context"

	"github.com/Cl4sm/discord-ctftime-bot/pkg/domain/model"
	"github.com/Cl4sm/discord-ctftime-bot/pkg/domain/types"
)

// BindingRepository defines the interface for reaction-role binding
// persistence. Bindings are append-only: no update or delete exists.
type BindingRepository interface {
	// Append stores a new binding after the reaction message has been posted
	Append(ctx context.Context, binding *model.Binding) error

	// FindByMessage returns the binding whose message set contains the given
	// ID, or repository.ErrBindingNotFound
	FindByMessage(ctx context.Context, id types.MessageID) (*model.Binding, error)

	// List returns all bindings in append order
	List(ctx context.Context) ([]*model.Binding, error)
}
