package config

import (
	"github.com/m-mizutani/farrier/pkg/domain/interfaces"
	"github.com/m-mizutani/farrier/pkg/infra/notify"
	"github.com/urfave/cli/v3"
)

// Notify holds notification configuration
type Notify struct {
	SlackWebhookURL string `masq:"secret"`
}

// Flags returns CLI flags for notification configuration
func (c *Notify) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-webhook-url",
			Usage:       "Slack incoming webhook for check notifications",
			Destination: &c.SlackWebhookURL,
			Sources:     cli.EnvVars("FARRIER_SLACK_WEBHOOK_URL"),
		},
	}
}

// Notifier returns the configured notifier, or nil when notifications are
// off.
func (c *Notify) Notifier() interfaces.Notifier {
	if c.SlackWebhookURL == "" {
		return nil
	}
	return notify.NewSlack(c.SlackWebhookURL)
}
