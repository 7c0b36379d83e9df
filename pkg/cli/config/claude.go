package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gollem/llm/claude"
	"github.com/urfave/cli/v3"
)

// Decoding parameters for compatibility analysis. Deterministic output
// matters more than variety here, so temperature stays at zero.
const (
	claudeMaxTokens   = 2000
	claudeTemperature = 0.0
)

// Claude holds Anthropic Claude configuration
type Claude struct {
	APIKey string `masq:"secret"`
	Model  string
}

// Flags returns CLI flags for Claude configuration
func (c *Claude) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "claude-api-key",
			Usage:       "Anthropic API key",
			Destination: &c.APIKey,
			Sources:     cli.EnvVars("FARRIER_CLAUDE_API_KEY", "ANTHROPIC_API_KEY"),
		},
		&cli.StringFlag{
			Name:        "claude-model",
			Usage:       "Claude model to use",
			Value:       "claude-3-7-sonnet-20250219",
			Destination: &c.Model,
			Sources:     cli.EnvVars("FARRIER_CLAUDE_MODEL"),
		},
	}
}

// Configure builds a Claude client for the analysis session.
func (c *Claude) Configure(ctx context.Context) (gollem.LLMClient, error) {
	if c.APIKey == "" {
		return nil, goerr.New("Claude API key is required")
	}

	client, err := claude.New(ctx, c.APIKey,
		claude.WithModel(c.Model),
		claude.WithMaxTokens(claudeMaxTokens),
		claude.WithTemperature(claudeTemperature),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Claude client")
	}
	return client, nil
}
