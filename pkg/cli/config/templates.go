package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	domainConfig "github.com/Cl4sm/discord-ctftime-bot/pkg/domain/model/config"
)

// Templates holds CLI flags for message wording overrides
type Templates struct {
	path string
}

// Flags returns CLI flags for template configuration
func (x *Templates) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "templates",
			Usage:       "TOML file overriding the built-in message wording",
			Sources:     cli.EnvVars("CTFBOT_TEMPLATES"),
			Destination: &x.path,
		},
	}
}

// Configure loads message templates. Keys missing from the TOML file keep
// their built-in wording; without a file the built-ins are used as-is.
func (x *Templates) Configure() (*domainConfig.Templates, error) {
	tmpl := domainConfig.DefaultTemplates()
	if x.path == "" {
		return tmpl, nil
	}

	data, err := os.ReadFile(x.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read templates file", goerr.V("path", x.path))
	}
	if err := toml.Unmarshal(data, tmpl); err != nil {
		return nil, goerr.Wrap(err, "failed to parse templates file", goerr.V("path", x.path))
	}
	if err := tmpl.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid templates file", goerr.V("path", x.path))
	}

	return tmpl, nil
}
