package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/farrier/pkg/cli/config"
	controller "github.com/m-mizutani/farrier/pkg/controller/http"
	mcpctrl "github.com/m-mizutani/farrier/pkg/controller/mcp"
	"github.com/m-mizutani/farrier/pkg/domain/interfaces"
	"github.com/m-mizutani/farrier/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg config.Server
		llmCfg    config.LLM
		scanCfg   config.Scan
		traceCfg  config.Trace
		notifyCfg config.Notify
		transport string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "transport",
			Usage:       "MCP transport (stdio, http)",
			Value:       "stdio",
			Destination: &transport,
			Sources:     cli.EnvVars("FARRIER_TRANSPORT"),
		},
	}
	flags = append(flags, serverCfg.Flags()...)
	flags = append(flags, llmCfg.Flags()...)
	flags = append(flags, scanCfg.Flags()...)
	flags = append(flags, traceCfg.Flags()...)
	flags = append(flags, notifyCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start the MCP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			// One sink instance serializes check and edit records.
			sink := traceCfg.Sink()

			compatUC, err := buildCompatUseCase(ctx, &llmCfg, &scanCfg, sink, notifyCfg.Notifier())
			if err != nil {
				return err
			}
			manifestUC := buildManifestUseCase(sink)
			mcpServer := mcpctrl.New(compatUC, manifestUC)

			switch transport {
			case "stdio":
				logger.Info("Starting MCP server on stdio")
				stdioCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
				defer stop()
				return mcpServer.ServeStdio(stdioCtx)
			case "http":
				return serveHTTP(ctx, mcpServer, &serverCfg)
			default:
				return goerr.New("unknown transport", goerr.V("transport", transport))
			}
		},
	}
}

// buildCompatUseCase wires the compatibility checker from CLI configuration.
func buildCompatUseCase(
	ctx context.Context,
	llmCfg *config.LLM,
	scanCfg *config.Scan,
	sink interfaces.TraceSink,
	notifier interfaces.Notifier,
) (interfaces.CompatUseCase, error) {
	llmClient, err := llmCfg.Configure(ctx)
	if err != nil {
		return nil, err
	}

	markers, err := scanCfg.MarkerSets()
	if err != nil {
		return nil, err
	}

	var opts []usecase.CompatOption
	if len(markers) > 0 {
		opts = append(opts, usecase.WithMarkerSets(markers...))
	}
	if sink != nil {
		opts = append(opts, usecase.WithTraceSink(sink))
	}
	if notifier != nil {
		opts = append(opts, usecase.WithNotifier(notifier))
	}

	return usecase.NewCompat(llmClient, opts...)
}

func buildManifestUseCase(sink interfaces.TraceSink) interfaces.ManifestUseCase {
	var opts []usecase.ManifestOption
	if sink != nil {
		opts = append(opts, usecase.WithManifestTraceSink(sink))
	}
	return usecase.NewManifest(opts...)
}

// serveHTTP runs the streamable HTTP transport until shutdown.
func serveHTTP(ctx context.Context, mcpServer *mcpctrl.Server, serverCfg *config.Server) error {
	logger := ctxlog.From(ctx)

	server, err := controller.NewServer(
		ctx,
		mcpServer.HTTPHandler(),
		controller.WithAddr(serverCfg.Addr),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to create HTTP server")
	}

	// Start server in goroutine
	go func() {
		logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", slog.Any("error", err))
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case <-ctx.Done():
		logger.Info("Context cancelled, shutting down...")
	case sig := <-sigChan:
		logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
	}

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return goerr.Wrap(err, "failed to shutdown server gracefully")
	}

	logger.Info("Server shutdown complete")
	return nil
}
