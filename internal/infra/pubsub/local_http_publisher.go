package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"time"

	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	"portal/internal/domain/service"
	"portal/internal/infra/httpclient"

	"github.com/pkg/errors"
)

const (
	localPublishTimeout = 5 * time.Second
	localSubscription   = "projects/local/subscriptions/portal-audit-sub"
)

// localHTTPPublisher pushes audit events to an HTTP sink in the Pub/Sub push format.
type localHTTPPublisher struct {
	sink   *httpclient.Client
	logger *slog.Logger
}

// PushMessage is the envelope Pub/Sub push subscriptions deliver.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a publisher for local development sinks.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		sink:   httpclient.New(endpoint, localPublishTimeout),
		logger: logger,
	}
}

// PublishAuthEvent posts one push envelope. Any non-2xx answer is an error.
func (p *localHTTPPublisher) PublishAuthEvent(ctx context.Context, event *entity.AuthEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	var envelope PushMessage
	envelope.Subscription = localSubscription
	envelope.Message.Data = base64.StdEncoding.EncodeToString(data)
	envelope.Message.MessageID = event.ID
	envelope.Message.PublishTime = event.OccurredAt.UTC().Format(time.RFC3339)
	envelope.Message.Attributes = eventAttributes(event)

	if deliverycontext.GetRequestIDFromContext(ctx) == "" && event.RequestID != "" {
		ctx = deliverycontext.WithRequestID(ctx, event.RequestID)
	}

	if err := p.sink.Post(ctx, "", nil, &envelope, nil); err != nil {
		return errors.Wrap(err, "failed to push audit event")
	}

	p.logger.Debug("Audit event pushed to local sink",
		slog.String("event_id", event.ID),
		slog.String("event_type", string(event.Type)),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	return nil
}
