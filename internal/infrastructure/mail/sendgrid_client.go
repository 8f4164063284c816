package mail

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"lumera/pkg/logger"
)

// SendGridClient is the outbound mail transport for order confirmations.
type SendGridClient struct {
	apiKey string
	from   string
}

func NewSendGridClient(apiKey, from string) *SendGridClient {
	return &SendGridClient{apiKey: apiKey, from: from}
}

func (c *SendGridClient) Send(ctx context.Context, to, subject, body string) error {
	if c.apiKey == "" {
		return fmt.Errorf("sendgrid api key is empty")
	}
	if to == "" {
		return fmt.Errorf("to address is empty")
	}

	fromEmail := sgmail.NewEmail("Lumera", c.from)
	toEmail := sgmail.NewEmail("", to)
	htmlContent := fmt.Sprintf("<pre>%s</pre>", body)

	message := sgmail.NewSingleEmail(fromEmail, subject, toEmail, body, htmlContent)

	client := sendgrid.NewSendClient(c.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sendgrid send error: %w", err)
	}

	if response.StatusCode >= 400 {
		logger.Warn("sendgrid error status=%d body=%s", response.StatusCode, response.Body)
		return fmt.Errorf("sendgrid send failed: status=%d", response.StatusCode)
	}

	return nil
}
