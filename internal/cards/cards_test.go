package cards

import (
	"context"
	"strings"
	"testing"

	"soapbox/internal/config"
)

func TestCompose(t *testing.T) {
	t.Parallel()

	subject, body := Compose(Card{
		Recipient: "jordan rivera",
		From:      "Sam",
		Message:   "Happy election day!",
	})

	if subject != "A card for Jordan Rivera" {
		t.Fatalf("unexpected subject: %q", subject)
	}
	if !strings.Contains(body, "Dear Jordan Rivera,") {
		t.Fatalf("expected title-cased greeting, got %q", body)
	}
	if !strings.Contains(body, "Happy election day!") || !strings.Contains(body, "— Sam") {
		t.Fatalf("unexpected body: %q", body)
	}
}

func TestCompose_Defaults(t *testing.T) {
	t.Parallel()

	subject, body := Compose(Card{Message: "hi"})
	if subject != "A card for Friend" {
		t.Fatalf("unexpected subject: %q", subject)
	}
	if !strings.Contains(body, "— A fellow citizen") {
		t.Fatalf("unexpected body: %q", body)
	}
}

func TestSimulatedSender_Validation(t *testing.T) {
	t.Parallel()

	sender := NewSender(config.CardsConfig{})
	if _, ok := sender.(*simulatedSender); !ok {
		t.Fatalf("expected the simulation without an API key, got %T", sender)
	}

	if err := sender.Send(context.Background(), Card{Message: "no recipient"}); err == nil {
		t.Fatal("expected validation error for missing recipient email")
	}
	if err := sender.Send(context.Background(), Card{RecipientEmail: "a@b.c"}); err == nil {
		t.Fatal("expected validation error for missing message")
	}
	if err := sender.Send(context.Background(), Card{RecipientEmail: "a@b.c", Message: "hello"}); err != nil {
		t.Fatalf("simulated send: %v", err)
	}
}

func TestNewSender_PicksSendGridWhenConfigured(t *testing.T) {
	t.Parallel()

	sender := NewSender(config.CardsConfig{SendGridKey: "SG.test"})
	if _, ok := sender.(*sendGridSender); !ok {
		t.Fatalf("expected the SendGrid sender with an API key, got %T", sender)
	}
}
