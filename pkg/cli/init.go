package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/Cl4sm/discord-ctftime-bot/pkg/cli/config"
	"github.com/Cl4sm/discord-ctftime-bot/pkg/repository/jsonfile"
	"github.com/Cl4sm/discord-ctftime-bot/pkg/utils/logging"
)

func cmdInit() *cli.Command {
	var stateFile string

	return &cli.Command{
		Name:  "init",
		Usage: "Create an empty binding state file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "state-file",
				Usage:       "Path of the binding state file",
				Value:       config.DefaultStateFile,
				Sources:     cli.EnvVars("CTFBOT_STATE_FILE"),
				Destination: &stateFile,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := jsonfile.New(stateFile).Init(ctx); err != nil {
				return goerr.Wrap(err, "failed to initialize state file")
			}
			logging.Default().Info("State file ready", "path", stateFile)
			return nil
		},
	}
}
