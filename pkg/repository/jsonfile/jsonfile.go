package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/Cl4sm/discord-ctftime-bot/pkg/domain/interfaces"
	"github.com/Cl4sm/discord-ctftime-bot/pkg/domain/model"
	"github.com/Cl4sm/discord-ctftime-bot/pkg/domain/types"
	"github.com/Cl4sm/discord-ctftime-bot/pkg/repository"
)

// Repository persists bindings as a JSON array in a single file. Every
// append reads the whole array and rewrites the whole file; lookups scan
// linearly. The volume of bindings is expected to stay small enough that
// neither matters.
//
// A process-level mutex serializes access between the command handler and
// the reaction listener. Cross-process coordination is out of scope.
type Repository struct {
	path string
	mu   sync.Mutex
}

// New creates a file-backed binding repository at the given path. The file
// itself must already exist; see Init.
func New(path string) *Repository {
	return &Repository{path: path}
}

// Init creates an empty state file. It is a no-op if the file already
// exists, so it is safe to run on every deploy.
func (x *Repository) Init(ctx context.Context) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	f, err := os.OpenFile(x.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		if os.IsExist(err) {
			return nil
		}
		return goerr.Wrap(err, "failed to create state file", goerr.V("path", x.path))
	}
	defer f.Close()

	if _, err := f.Write([]byte("[]\n")); err != nil {
		return goerr.Wrap(err, "failed to initialize state file", goerr.V("path", x.path))
	}
	return nil
}

func (x *Repository) load() ([]*model.Binding, error) {
	data, err := os.ReadFile(x.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read state file", goerr.V("path", x.path))
	}

	var bindings []*model.Binding
	if err := json.Unmarshal(data, &bindings); err != nil {
		return nil, goerr.Wrap(err, "state file is not a valid JSON array", goerr.V("path", x.path))
	}
	return bindings, nil
}

func (x *Repository) save(bindings []*model.Binding) error {
	data, err := json.MarshalIndent(bindings, "", "    ")
	if err != nil {
		return goerr.Wrap(err, "failed to encode state file")
	}

	if err := os.WriteFile(x.path, data, 0600); err != nil {
		return goerr.Wrap(err, "failed to write state file", goerr.V("path", x.path))
	}
	return nil
}

// Append stores a new binding by rewriting the whole file
func (x *Repository) Append(ctx context.Context, binding *model.Binding) error {
	if err := binding.Validate(); err != nil {
		return goerr.Wrap(err, "refusing to persist invalid binding")
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	bindings, err := x.load()
	if err != nil {
		return err
	}

	bindings = append(bindings, binding.Clone())
	return x.save(bindings)
}

// FindByMessage scans the file for a binding containing the given message ID
func (x *Repository) FindByMessage(ctx context.Context, id types.MessageID) (*model.Binding, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	bindings, err := x.load()
	if err != nil {
		return nil, err
	}

	for _, b := range bindings {
		if b.HasMessage(id) {
			return b.Clone(), nil
		}
	}
	return nil, goerr.Wrap(repository.ErrBindingNotFound, "no binding for message", goerr.V("message_id", id))
}

// List returns all stored bindings in append order
func (x *Repository) List(ctx context.Context) ([]*model.Binding, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	bindings, err := x.load()
	if err != nil {
		return nil, err
	}

	result := make([]*model.Binding, 0, len(bindings))
	for _, b := range bindings {
		result = append(result, b.Clone())
	}
	return result, nil
}

var _ interfaces.BindingRepository = &Repository{}
