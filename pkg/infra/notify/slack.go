package notify

import (
	"context"
	"fmt"

	"github.com/m-mizutani/farrier/pkg/domain/interfaces"
	"github.com/m-mizutani/farrier/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
)

// SlackNotifier posts a one-line summary of every finished compatibility
// check to a Slack incoming webhook.
type SlackNotifier struct {
	webhookURL string
}

var _ interfaces.Notifier = (*SlackNotifier)(nil)

// NewSlack creates a notifier for the given incoming webhook URL.
func NewSlack(webhookURL string) *SlackNotifier {
	return &SlackNotifier{webhookURL: webhookURL}
}

func (n *SlackNotifier) CompatChecked(ctx context.Context, report *model.CompatibilityReport) error {
	msg := &slack.WebhookMessage{
		Text: fmt.Sprintf("Compatibility check `%s` finished: %s %s -> %s (%d files inspected)",
			report.CheckID,
			report.Library,
			report.FromVersion,
			report.ToVersion,
			len(report.Candidates),
		),
	}

	if err := slack.PostWebhookContext(ctx, n.webhookURL, msg); err != nil {
		return goerr.Wrap(err, "failed to post check notification to Slack", goerr.V("check_id", report.CheckID))
	}
	return nil
}
