package capability

import (
	"context"
	"fmt"
	"strings"

	contractx "github.com/napatw/Sarabun-HR-Copilot/agent/contract"
	qstashx "github.com/napatw/Sarabun-HR-Copilot/pkg/qstash"
)

// QStashNotifier delivers notifications through the QStash publish API.
type QStashNotifier struct {
	client             *qstashx.Client
	defaultDestination string
}

var _ contractx.Notifier = (*QStashNotifier)(nil)

func NewQStashNotifier(client *qstashx.Client, defaultDestination string) (*QStashNotifier, error) {
	if client == nil {
		return nil, fmt.Errorf("%w: qstash client is required", contractx.ErrCapabilityUnavailable)
	}
	return &QStashNotifier{
		client:             client,
		defaultDestination: strings.TrimSpace(defaultDestination),
	}, nil
}

func (n *QStashNotifier) Notify(ctx context.Context, destination string, payload map[string]any) error {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		destination = n.defaultDestination
	}
	if destination == "" {
		return fmt.Errorf("%w: no notification destination", contractx.ErrCapabilityUnavailable)
	}
	return n.client.Publish(ctx, destination, payload)
}
