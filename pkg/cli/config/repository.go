package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/Cl4sm/discord-ctftime-bot/pkg/domain/interfaces"
	"github.com/Cl4sm/discord-ctftime-bot/pkg/repository/jsonfile"
	"github.com/Cl4sm/discord-ctftime-bot/pkg/repository/memory"
	"github.com/Cl4sm/discord-ctftime-bot/pkg/utils/logging"
)

// DefaultStateFile is where the reaction-role bindings live unless overridden
const DefaultStateFile = ".active_roles.json"

// Repository holds CLI flags for state store configuration
type Repository struct {
	backend   string
	stateFile string
}

// Flags returns CLI flags for repository configuration
func (x *Repository) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "repository-backend",
			Usage:       "State store backend (jsonfile or memory)",
			Value:       "jsonfile",
			Sources:     cli.EnvVars("CTFBOT_REPOSITORY_BACKEND"),
			Destination: &x.backend,
		},
		&cli.StringFlag{
			Name:        "state-file",
			Usage:       "Path of the binding state file (jsonfile backend)",
			Value:       DefaultStateFile,
			Sources:     cli.EnvVars("CTFBOT_STATE_FILE"),
			Destination: &x.stateFile,
		},
	}
}

// StateFile returns the configured state file path
func (x *Repository) StateFile() string {
	return x.stateFile
}

// Configure initializes the binding repository for the configured backend
func (x *Repository) Configure(ctx context.Context) (interfaces.BindingRepository, error) {
	switch x.backend {
	case "jsonfile":
		logging.Default().Info("Using JSON file repository", "path", x.stateFile)
		return jsonfile.New(x.stateFile), nil

	case "memory":
		logging.Default().Info("Using in-memory repository (development mode)")
		return memory.New(), nil

	default:
		return nil, goerr.New("invalid repository backend", goerr.V("backend", x.backend))
	}
}
