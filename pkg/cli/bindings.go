package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/Cl4sm/discord-ctftime-bot/pkg/cli/config"
)

func cmdBindings() *cli.Command {
	var repoCfg config.Repository

	return &cli.Command{
		Name:  "bindings",
		Usage: "Print the stored reaction-role bindings",
		Flags: repoCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}

			bindings, err := repo.List(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to list bindings")
			}

			if len(bindings) == 0 {
				fmt.Println("No bindings stored")
				return nil
			}

			title := color.New(color.FgCyan, color.Bold)
			for _, b := range bindings {
				title.Printf("%s\n", b.CTFName)
				fmt.Printf("  Role:  %s\n", b.Role)
				fmt.Printf("  Emoji: %s\n", b.Emoji)
				for _, msg := range b.Messages {
					fmt.Printf("  Message: %s\n", msg)
				}
			}
			return nil
		},
	}
}
