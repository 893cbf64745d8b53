// Greeting-card composition and delivery. Delivery is simulated by default;
// the SendGrid path is selected only when an API key is configured.
// https://github.com/sendgrid/sendgrid-go
package cards

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"soapbox/internal/config"
)

// Card is one greeting card to deliver.
type Card struct {
	Recipient      string `json:"recipient"`
	RecipientEmail string `json:"recipientEmail"`
	From           string `json:"from"`
	Message        string `json:"message"`
	ProductID      string `json:"productId,omitempty"` // optional featured product
}

func (c Card) validate() error {
	if strings.TrimSpace(c.RecipientEmail) == "" {
		return errors.New("recipient email is required")
	}
	if strings.TrimSpace(c.Message) == "" {
		return errors.New("message is required")
	}
	return nil
}

// Sender delivers a composed card.
type Sender interface {
	Send(ctx context.Context, card Card) error
}

// NewSender picks the SendGrid sender when a key is configured, otherwise the
// logging simulation.
func NewSender(cfg config.CardsConfig) Sender {
	if cfg.SendGridKey != "" {
		return &sendGridSender{cfg: cfg}
	}
	return &simulatedSender{}
}

var titleCaser = cases.Title(language.AmericanEnglish)

// Compose renders the card's subject and plain-text body.
func Compose(card Card) (subject, body string) {
	recipient := titleCaser.String(strings.TrimSpace(card.Recipient))
	if recipient == "" {
		recipient = "Friend"
	}
	from := strings.TrimSpace(card.From)
	if from == "" {
		from = "A fellow citizen"
	}

	subject = fmt.Sprintf("A card for %s", recipient)
	body = fmt.Sprintf("Dear %s,\n\n%s\n\n— %s\n", recipient, strings.TrimSpace(card.Message), from)
	return subject, body
}

// simulatedSender logs the card instead of delivering it.
type simulatedSender struct{}

func (s *simulatedSender) Send(ctx context.Context, card Card) error {
	if err := card.validate(); err != nil {
		return err
	}
	subject, body := Compose(card)
	slog.InfoContext(ctx, "simulated greeting card delivery",
		"to", card.RecipientEmail,
		"subject", subject,
		"bytes", len(body),
	)
	return nil
}

type sendGridSender struct {
	cfg config.CardsConfig
}

func (s *sendGridSender) Send(ctx context.Context, card Card) error {
	if err := card.validate(); err != nil {
		return err
	}

	subject, body := Compose(card)
	from := mail.NewEmail(s.cfg.FromName, s.cfg.FromAddress)
	to := mail.NewEmail(card.Recipient, card.RecipientEmail)
	message := mail.NewSingleEmail(from, subject, to, body, "")

	client := sendgrid.NewSendClient(s.cfg.SendGridKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("send greeting card: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("send greeting card: status %d: %s", response.StatusCode, response.Body)
	}
	slog.InfoContext(ctx, "greeting card sent", "to", card.RecipientEmail, "status", response.StatusCode)
	return nil
}
