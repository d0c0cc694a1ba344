package payment

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/webhook"
)

const (
	// ExternalRefMetadataKey ключ метаданных PaymentIntent, в котором передается external_ref пополнения.
	ExternalRefMetadataKey = "external_ref"

	eventPaymentSucceeded = "payment_intent.succeeded"
	eventPaymentFailed    = "payment_intent.payment_failed"
)

// ErrIgnoredEvent событие stripe, не относящееся к пополнениям.
var ErrIgnoredEvent = errors.New("ignored stripe event")

// StripeGateway принимает вебхуки stripe и превращает их в подписанные ConfirmationEvent.
type StripeGateway struct {
	webhookSecret string
	signer        *HMACVerifier
}

func NewStripeGateway(webhookSecret string, signer *HMACVerifier) *StripeGateway {
	return &StripeGateway{webhookSecret: webhookSecret, signer: signer}
}

// ParseWebhook проверяет заголовок Stripe-Signature и разбирает событие. Без секрета вебхука
// ни одно событие не считается подлинным.
// Ошибки: domain.ErrAuthenticationFailed, domain.ErrInvalidConfirmation, ErrIgnoredEvent.
func (g *StripeGateway) ParseWebhook(payload []byte, signatureHeader string) (*domain.ConfirmationEvent, error) {
	if g.webhookSecret == "" {
		return nil, fmt.Errorf("%w: stripe webhook secret is not set", domain.ErrAuthenticationFailed)
	}
	event, err := webhook.ConstructEvent(payload, signatureHeader, g.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrAuthenticationFailed, err.Error())
	}

	var status domain.ConfirmationStatus
	switch event.Type {
	case eventPaymentSucceeded:
		status = domain.ConfirmationPaid
	case eventPaymentFailed:
		status = domain.ConfirmationFailed
	default:
		return nil, fmt.Errorf("%w: %s", ErrIgnoredEvent, event.Type)
	}

	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		return nil, fmt.Errorf("%w: decode payment intent: %s", domain.ErrInvalidConfirmation, err.Error())
	}
	ref := intent.Metadata[ExternalRefMetadataKey]
	if ref == "" {
		return nil, fmt.Errorf("%w: payment intent %s has no %s", domain.ErrInvalidConfirmation,
			intent.ID, ExternalRefMetadataKey)
	}

	ev := domain.ConfirmationEvent{
		ExternalRef: ref,
		Status:      status,
		// stripe передает сумму в минимальных единицах валюты
		Amount: decimal.New(intent.Amount, -2),
	}
	ev.Signature = g.signer.Sign(ev)
	return &ev, nil
}
