package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/fsdevblog/virtnum/internal/service"
)

type OrderServicer interface {
	Buy(ctx context.Context, args service.BuyArgs) (*domain.Order, error)
	Get(ctx context.Context, userID, orderID int64) (*domain.Order, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.Order, error)
	ResolveSMS(ctx context.Context, orderID int64) (*domain.Order, error)
	ResolveByProviderOrderID(ctx context.Context, p domain.ProviderType, providerOrderID string) (*domain.Order, error)
	Cancel(ctx context.Context, userID, orderID int64) (*domain.Order, error)
}

type LedgerServicer interface {
	Balance(ctx context.Context, userID int64) (decimal.Decimal, error)
	Entries(ctx context.Context, userID int64) ([]domain.LedgerEntry, error)
}

type TopupServicer interface {
	Initiate(ctx context.Context, userID int64, amount decimal.Decimal) (*domain.Topup, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.Topup, error)
	HandleConfirmation(ctx context.Context, ev domain.ConfirmationEvent) (*service.TopupConfirmation, error)
}

type CatalogServicer interface {
	List(ctx context.Context) ([]domain.Service, error)
	SetPrice(ctx context.Context, serviceID int64, price decimal.Decimal) (*domain.Service, error)
}

// StripeWebhookParser проверяет подпись вебхука stripe и превращает его в подтверждение платежа.
type StripeWebhookParser interface {
	ParseWebhook(payload []byte, signatureHeader string) (*domain.ConfirmationEvent, error)
}
