package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/Cl4sm/discord-ctftime-bot/pkg/domain/interfaces"
	"github.com/Cl4sm/discord-ctftime-bot/pkg/domain/model"
	"github.com/Cl4sm/discord-ctftime-bot/pkg/domain/types"
	"github.com/Cl4sm/discord-ctftime-bot/pkg/repository"
)

// Repository is an in-memory binding store for tests and development
type Repository struct {
	mu       sync.RWMutex
	bindings []*model.Binding
}

// New creates an empty in-memory binding repository
func New() *Repository {
	return &Repository{}
}

// Append stores a new binding
func (x *Repository) Append(ctx context.Context, binding *model.Binding) error {
	if err := binding.Validate(); err != nil {
		return goerr.Wrap(err, "refusing to store invalid binding")
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	x.bindings = append(x.bindings, binding.Clone())
	return nil
}

// FindByMessage returns the binding containing the given message ID
func (x *Repository) FindByMessage(ctx context.Context, id types.MessageID) (*model.Binding, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	for _, b := range x.bindings {
		if b.HasMessage(id) {
			return b.Clone(), nil
		}
	}
	return nil, goerr.Wrap(repository.ErrBindingNotFound, "no binding for message", goerr.V("message_id", id))
}

// List returns all stored bindings in append order
func (x *Repository) List(ctx context.Context) ([]*model.Binding, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	result := make([]*model.Binding, 0, len(x.bindings))
	for _, b := range x.bindings {
		result = append(result, b.Clone())
	}
	return result, nil
}

var _ interfaces.BindingRepository = &Repository{}
