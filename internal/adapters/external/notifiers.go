package external

import (
	"context"
	"fmt"
	"html"

	"allweather.app/internal/ports"
	"allweather.app/pkg/errors"
)

// LogNotifier surfaces weather notifications as structured log lines
type LogNotifier struct {
	logger ports.Logger
}

func NewLogNotifier(logger ports.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(ctx context.Context, message ports.NotificationMessage) error {
	n.logger.Info("Weather notification",
		ports.F("title", message.Title),
		ports.F("text", message.Text),
		ports.F("channel", "log"))
	return nil
}

// EmailNotifier delivers weather notifications to a single configured recipient
type EmailNotifier struct {
	emailProvider ports.EmailProvider
	recipient     string
	logger        ports.Logger
}

// EmailNotifierDependencies holds dependencies for the email notifier
type EmailNotifierDependencies struct {
	EmailProvider ports.EmailProvider
	Recipient     string
	Logger        ports.Logger
}

func NewEmailNotifier(deps EmailNotifierDependencies) (*EmailNotifier, error) {
	if deps.EmailProvider == nil {
		return nil, errors.NewValidationError("email provider is required")
	}
	if deps.Recipient == "" {
		return nil, errors.NewValidationError("notification recipient is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &EmailNotifier{
		emailProvider: deps.EmailProvider,
		recipient:     deps.Recipient,
		logger:        deps.Logger,
	}, nil
}

func (n *EmailNotifier) Notify(ctx context.Context, message ports.NotificationMessage) error {
	params := ports.EmailParams{
		To:      n.recipient,
		Subject: message.Title,
		Body:    buildNotificationEmailBody(message),
		IsHTML:  true,
	}

	if err := n.emailProvider.SendEmail(ctx, params); err != nil {
		return fmt.Errorf("send weather notification email: %w", err)
	}

	n.logger.Debug("Weather notification emailed",
		ports.F("recipient", n.recipient),
		ports.F("title", message.Title))
	return nil
}

func buildNotificationEmailBody(message ports.NotificationMessage) string {
	return fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif;">
	<h2>%s</h2>
	<p>%s</p>
</body>
</html>`, html.EscapeString(message.Title), html.EscapeString(message.Text))
}
