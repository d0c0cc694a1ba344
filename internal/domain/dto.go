package domain

import "github.com/shopspring/decimal"

type RoleType string

const (
	RoleUser  RoleType = "user"
	RoleAdmin RoleType = "admin"
)

type ProviderType string

const (
	ProviderA ProviderType = "provider_a"
	ProviderB ProviderType = "provider_b"
)

type TopupStatusType string

const (
	TopupStatusPending TopupStatusType = "pending"
	TopupStatusPaid    TopupStatusType = "paid"
	TopupStatusFailed  TopupStatusType = "failed"
)

func (s TopupStatusType) IsTerminal() bool {
	return s == TopupStatusPaid || s == TopupStatusFailed
}

type OrderStatusType string

const (
	// OrderStatusPending заказ создан и средства зарезервированы, номер у провайдера еще не получен.
	OrderStatusPending   OrderStatusType = "pending"
	OrderStatusWaiting   OrderStatusType = "waiting"
	OrderStatusReceived  OrderStatusType = "received"
	OrderStatusExpired   OrderStatusType = "expired"
	OrderStatusCancelled OrderStatusType = "cancelled"
	OrderStatusRefunded  OrderStatusType = "refunded"
)

// orderTransitions допустимые переходы статусов заказа. Все, что не pending и не waiting - терминальные статусы.
var orderTransitions = map[OrderStatusType][]OrderStatusType{
	OrderStatusPending: {OrderStatusWaiting, OrderStatusRefunded},
	OrderStatusWaiting: {OrderStatusReceived, OrderStatusExpired, OrderStatusCancelled},
}

func (s OrderStatusType) IsTerminal() bool {
	_, ok := orderTransitions[s]
	return !ok
}

// CanTransitionTo проверяет, что переход s -> to есть в графе состояний заказа.
func (s OrderStatusType) CanTransitionTo(to OrderStatusType) bool {
	for _, st := range orderTransitions[s] {
		if st == to {
			return true
		}
	}
	return false
}

type LedgerReasonType string

const (
	LedgerReasonTopup    LedgerReasonType = "topup"
	LedgerReasonPurchase LedgerReasonType = "purchase"
	LedgerReasonRefund   LedgerReasonType = "refund"
)

type ConfirmationStatus string

const (
	ConfirmationPaid   ConfirmationStatus = "PAID"
	ConfirmationFailed ConfirmationStatus = "FAILED"
)

// ConfirmationEvent подтверждение платежа от платежного шлюза.
type ConfirmationEvent struct {
	ExternalRef string
	Status      ConfirmationStatus
	Amount      decimal.Decimal
	Signature   string
}
