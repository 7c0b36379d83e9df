package config

import (
	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/farrier/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Sentry holds error reporting configuration
type Sentry struct {
	DSN string `masq:"secret"`
	Env string
}

// Flags returns CLI flags for Sentry configuration
func (c *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN for error reporting",
			Destination: &c.DSN,
			Sources:     cli.EnvVars("FARRIER_SENTRY_DSN", "SENTRY_DSN"),
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Environment name reported to Sentry",
			Destination: &c.Env,
			Sources:     cli.EnvVars("FARRIER_SENTRY_ENV"),
		},
	}
}

// Configure initializes the Sentry SDK. Returns false when reporting is
// disabled by leaving the DSN empty.
func (c *Sentry) Configure() (bool, error) {
	if c.DSN == "" {
		return false, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         c.DSN,
		Environment: c.Env,
		Release:     types.AppName + "@" + types.Version,
	})
	if err != nil {
		return false, goerr.Wrap(err, "failed to initialize Sentry")
	}
	return true, nil
}
