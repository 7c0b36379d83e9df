package config

import (
	"github.com/m-mizutani/farrier/pkg/domain/interfaces"
	"github.com/m-mizutani/farrier/pkg/infra/trace"
	"github.com/urfave/cli/v3"
)

// Trace holds diagnostic trace configuration
type Trace struct {
	Path     string
	Disabled bool
}

// Flags returns CLI flags for trace configuration
func (c *Trace) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "trace-file",
			Usage:       "Append a diagnostic record of every check and edit to this file",
			Value:       "farrier-trace.log",
			Destination: &c.Path,
			Sources:     cli.EnvVars("FARRIER_TRACE_FILE"),
		},
		&cli.BoolFlag{
			Name:        "no-trace",
			Usage:       "Disable the diagnostic trace file",
			Destination: &c.Disabled,
			Sources:     cli.EnvVars("FARRIER_NO_TRACE"),
		},
	}
}

// Sink returns the configured trace sink, or nil when tracing is off.
func (c *Trace) Sink() interfaces.TraceSink {
	if c.Disabled || c.Path == "" {
		return nil
	}
	return trace.NewFile(c.Path)
}
