package cli

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/Cl4sm/discord-ctftime-bot/pkg/cli/config"
	"github.com/Cl4sm/discord-ctftime-bot/pkg/utils/logging"
)

func Run(ctx context.Context, args []string, version string) error {
	// A missing .env file is fine; flags and real env vars still apply
	_ = godotenv.Load()

	var loggerCfg config.Logger
	var closer func()

	app := &cli.Command{
		Name:    "ctfbot",
		Usage:   "Discord bot that provisions CTF workspaces from CTFTime events",
		Version: version,
		Flags:   loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			f, err := loggerCfg.Configure()
			if err != nil {
				return ctx, err
			}
			closer = f

			logging.Default().Info("Starting ctfbot", "logger", loggerCfg)
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if closer != nil {
				closer()
			}
			return nil
		},
		Commands: []*cli.Command{
			cmdServe(),
			cmdInit(),
			cmdBindings(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		logging.Default().Error("failed to run app", "error", err)
		return err
	}

	return nil
}
