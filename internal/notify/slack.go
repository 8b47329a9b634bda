package notify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/slack-go/slack"
)

// SlackNotifier sends notifications to Slack via an incoming webhook.
type SlackNotifier struct {
	WebhookURL string
	Client     *http.Client
}

// NewSlackNotifier creates a new SlackNotifier.
func NewSlackNotifier(webhookURL string) *SlackNotifier {
	return &SlackNotifier{
		WebhookURL: webhookURL,
		Client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// Notify sends a message to the configured Slack webhook.
func (s *SlackNotifier) Notify(ctx context.Context, message string) error {
	if s.WebhookURL == "" {
		return fmt.Errorf("slack webhook URL is not configured")
	}

	msg := &slack.WebhookMessage{Text: message}

	// A manually constructed notifier may have no client; the library
	// default is used then.
	var err error
	if s.Client != nil {
		err = slack.PostWebhookCustomHTTPContext(ctx, s.WebhookURL, s.Client, msg)
	} else {
		err = slack.PostWebhookContext(ctx, s.WebhookURL, msg)
	}
	if err != nil {
		return fmt.Errorf("failed to send slack notification: %w", err)
	}

	return nil
}
