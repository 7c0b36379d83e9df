package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/farrier/pkg/cli/config"
	"github.com/m-mizutani/farrier/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	var (
		loggerCfg config.Logger
		sentryCfg config.Sentry
	)
	var logger *slog.Logger
	var sentryEnabled bool

	app := &cli.Command{
		Name:    types.AppName,
		Usage:   "Library version management tools for Maven projects over MCP",
		Version: types.Version,
		Flags:   append(loggerCfg.Flags(), sentryCfg.Flags()...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)

			sentryEnabled, err = sentryCfg.Configure()
			if err != nil {
				return nil, err
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdServe(),
			cmdCheck(),
			cmdBump(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		if sentryEnabled {
			sentry.CaptureException(err)
			sentry.Flush(2 * time.Second)
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		return err
	}

	return nil
}
