package relay

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// Sender submits one addressed message to the push gateway. Exactly one
// attempt per call; retry policy, if any, belongs to the caller.
type Sender interface {
	Send(ctx context.Context, token, title, body string, data map[string]string) (string, error)
}

// FCMSender sends notifications through Firebase Cloud Messaging.
type FCMSender struct {
	client *messaging.Client
}

// NewFCMSender initializes the gateway client from a service account file.
func NewFCMSender(ctx context.Context, credentialsFile string) (*FCMSender, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("init push gateway app: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("init push gateway client: %w", err)
	}
	return &FCMSender{client: client}, nil
}

// Send forwards one message and returns the gateway-assigned message id.
func (s *FCMSender) Send(ctx context.Context, token, title, body string, data map[string]string) (string, error) {
	id, err := s.client.Send(ctx, &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	})
	if err != nil {
		return "", fmt.Errorf("send push message: %w", err)
	}
	return id, nil
}
