package config

import (
	"github.com/urfave/cli/v3"

	"github.com/Cl4sm/discord-ctftime-bot/pkg/service/ctftime"
)

// CTFTime holds CLI flags for the schedule API client
type CTFTime struct {
	baseURL   string
	userAgent string
}

// Flags returns CLI flags for schedule API configuration
func (x *CTFTime) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "ctftime-base-url",
			Usage:       "Base URL of the CTFTime API",
			Value:       ctftime.DefaultBaseURL,
			Sources:     cli.EnvVars("CTFBOT_CTFTIME_BASE_URL"),
			Destination: &x.baseURL,
		},
		&cli.StringFlag{
			Name:        "ctftime-user-agent",
			Usage:       "User-Agent header sent to the CTFTime API",
			Sources:     cli.EnvVars("CTFBOT_CTFTIME_USER_AGENT"),
			Destination: &x.userAgent,
		},
	}
}

// Configure creates the schedule API client from the flags
func (x *CTFTime) Configure() *ctftime.Client {
	opts := []ctftime.Option{
		ctftime.WithBaseURL(x.baseURL),
	}
	if x.userAgent != "" {
		opts = append(opts, ctftime.WithUserAgent(x.userAgent))
	}
	return ctftime.New(opts...)
}
