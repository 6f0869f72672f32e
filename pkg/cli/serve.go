package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/Cl4sm/discord-ctftime-bot/pkg/cli/config"
	discordctrl "github.com/Cl4sm/discord-ctftime-bot/pkg/controller/discord"
	httpctrl "github.com/Cl4sm/discord-ctftime-bot/pkg/controller/http"
	"github.com/Cl4sm/discord-ctftime-bot/pkg/usecase"
	"github.com/Cl4sm/discord-ctftime-bot/pkg/utils/logging"
)

func cmdServe() *cli.Command {
	var addr string
	var discordCfg config.Discord
	var repoCfg config.Repository
	var ctftimeCfg config.CTFTime
	var templatesCfg config.Templates
	var sentryCfg config.Sentry

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Status HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("CTFBOT_ADDR"),
			Destination: &addr,
		},
	}
	flags = append(flags, discordCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, ctftimeCfg.Flags()...)
	flags = append(flags, templatesCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Connect to the gateway and run the status HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			sentryCloser, err := sentryCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure error reporting")
			}
			defer sentryCloser()

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}

			templates, err := templatesCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load message templates")
			}

			guildCfg, err := discordCfg.GuildConfig()
			if err != nil {
				return goerr.Wrap(err, "failed to load guild configuration")
			}

			dc, err := discordCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to initialize discord client")
			}

			uc := usecase.New(repo, dc, ctftimeCfg.Configure(), guildCfg,
				usecase.WithTemplates(templates),
			)

			handler := discordctrl.New(dc.Session(), uc, guildCfg)
			handler.Register()

			if err := dc.Open(); err != nil {
				return goerr.Wrap(err, "failed to open gateway connection")
			}
			defer func() {
				if err := dc.Close(); err != nil {
					logging.Default().Error("failed to close gateway connection", "error", err.Error())
				}
			}()

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(repo),
				ReadHeaderTimeout: 30 * time.Second,
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			eg, ctx := errgroup.WithContext(ctx)
			eg.Go(func() error {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					return goerr.Wrap(err, "failed to start server")
				}
				return nil
			})
			eg.Go(func() error {
				<-ctx.Done()
				logging.Default().Info("Shutting down")

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}
				return nil
			})

			if err := eg.Wait(); err != nil {
				return err
			}

			logging.Default().Info("Server shutdown completed")
			return nil
		},
	}
}
