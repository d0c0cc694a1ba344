package service

import (
	"context"
	"time"

	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/fsdevblog/virtnum/internal/provider"
	"github.com/fsdevblog/virtnum/internal/repository/repoargs"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type UserRepository interface {
	Create(ctx context.Context, args repoargs.CreateUser) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// DecreaseBalance атомарно уменьшает баланс, если его достаточно. Возвращает новый баланс,
	// domain.ErrInsufficientBalance или domain.ErrRecordNotFound.
	DecreaseBalance(ctx context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, error)
	IncreaseBalance(ctx context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, error)
}

type LedgerRepository interface {
	// Append добавляет запись аудита. Если запись с такими (reason, reference_id) уже есть, возвращает
	// domain.ErrDuplicateKey, транзакция при этом остается рабочей.
	Append(ctx context.Context, args repoargs.LedgerEntryCreate) (*domain.LedgerEntry, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.LedgerEntry, error)
	SumByUserID(ctx context.Context, userID int64) (decimal.Decimal, error)
}

type TopupRepository interface {
	Create(ctx context.Context, args repoargs.CreateTopup) (*domain.Topup, error)
	FindByExternalRef(ctx context.Context, externalRef string) (*domain.Topup, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.Topup, error)
	// UpdateStatus условный переход from -> to. Если статус уже не from, возвращает domain.ErrRecordNotFound.
	UpdateStatus(ctx context.Context, id int64, from, to domain.TopupStatusType) (*domain.Topup, error)
}

type OrderRepository interface {
	Create(ctx context.Context, args repoargs.CreateOrder) (*domain.Order, error)
	FindByID(ctx context.Context, id int64) (*domain.Order, error)
	FindByProviderOrderID(ctx context.Context, p domain.ProviderType, providerOrderID string) (*domain.Order, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.Order, error)
	GetByStatus(ctx context.Context, status domain.OrderStatusType, limit uint) ([]domain.Order, error)
	GetPendingCreatedBefore(ctx context.Context, before time.Time, limit uint) ([]domain.Order, error)
	// Transition применяет условный переход статуса. Если текущий статус не совпадает с From,
	// возвращает domain.ErrRecordNotFound.
	Transition(ctx context.Context, args repoargs.OrderTransition) (*domain.Order, error)
	// IncrementPollErrors увеличивает счетчик ошибок опроса заказа в статусе waiting.
	IncrementPollErrors(ctx context.Context, id int64) (*domain.Order, error)
}

type ServiceRepository interface {
	Create(ctx context.Context, args repoargs.CreateService) (*domain.Service, error)
	FindByID(ctx context.Context, id int64) (*domain.Service, error)
	List(ctx context.Context) ([]domain.Service, error)
	UpdatePrice(ctx context.Context, id int64, price decimal.Decimal) (*domain.Service, error)
}

// ServiceCache кэш каталога услуг. Промах возвращает domain.ErrRecordNotFound.
// Add сохраняет услугу, только если ее еще нет в кэше, Set перезаписывает.
type ServiceCache interface {
	Get(ctx context.Context, id int64) (*domain.Service, error)
	Add(ctx context.Context, s *domain.Service) error
	Set(ctx context.Context, s *domain.Service) error
	Delete(ctx context.Context, id int64) error
}

type CatalogReader interface {
	Lookup(ctx context.Context, serviceID int64) (*domain.Service, error)
}

type ProviderRegistry interface {
	Get(p domain.ProviderType) (provider.Adapter, error)
}

type SignatureVerifier interface {
	Verify(ev domain.ConfirmationEvent) bool
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, ev domain.OrderEvent) error
	PublishTopupEvent(ctx context.Context, ev domain.TopupEvent) error
}

type MetricsCollector interface {
	RecordLedgerMutation(reason domain.LedgerReasonType, amount decimal.Decimal)
	RecordOrderStatus(status domain.OrderStatusType, p domain.ProviderType)
	RecordTopupStatus(status domain.TopupStatusType)
	RecordProviderCall(p domain.ProviderType, op string, err error, d time.Duration)
	RecordLedgerConflict()
}
