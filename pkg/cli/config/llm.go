package config

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/urfave/cli/v3"
)

// LLM selects the model provider used for compatibility analysis.
type LLM struct {
	Provider string
	Claude   Claude
	Gemini   Gemini
}

// Flags returns CLI flags for LLM provider configuration
func (c *LLM) Flags() []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "llm-provider",
			Usage:       "LLM provider for compatibility analysis (claude, gemini)",
			Value:       "claude",
			Destination: &c.Provider,
			Sources:     cli.EnvVars("FARRIER_LLM_PROVIDER"),
		},
	}
	flags = append(flags, c.Claude.Flags()...)
	flags = append(flags, c.Gemini.Flags()...)
	return flags
}

// Configure builds the client of the selected provider.
func (c *LLM) Configure(ctx context.Context) (gollem.LLMClient, error) {
	switch strings.ToLower(c.Provider) {
	case "claude", "":
		return c.Claude.Configure(ctx)
	case "gemini":
		return c.Gemini.Configure(ctx)
	default:
		return nil, goerr.New("unknown LLM provider", goerr.V("provider", c.Provider))
	}
}
