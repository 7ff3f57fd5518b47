package main

import (
	"fmt"
	"log"

	"github.com/slack-go/slack"
)

// Notifier posts short operational summaries to a Slack channel. It is
// optional: a nil Notifier silently does nothing, so call sites never need
// to branch on whether notifications are configured.
type Notifier struct {
	api     *slack.Client
	channel string
}

func NewNotifier(cfg Config) *Notifier {
	if cfg.SlackBotToken == "" || cfg.NotifyChannelID == "" {
		return nil
	}
	return &Notifier{
		api:     slack.New(cfg.SlackBotToken),
		channel: cfg.NotifyChannelID,
	}
}

func (n *Notifier) TrainingFinished(m Manifest) {
	if n == nil {
		return
	}
	n.post(fmt.Sprintf("Priority model retrained on %s data: %d samples, %d trees, accuracy %.2f (run %s)",
		m.Source, m.Samples, m.Trees, m.Accuracy, m.RunID))
}

func (n *Notifier) PrioritiesUpdated(count int) {
	if n == nil {
		return
	}
	n.post(fmt.Sprintf("Report priorities refreshed: %d reports updated", count))
}

func (n *Notifier) post(msg string) {
	_, _, err := n.api.PostMessage(n.channel, slack.MsgOptionText(msg, false))
	if err != nil {
		log.Printf("Slack notification failed: %v", err)
	}
}
