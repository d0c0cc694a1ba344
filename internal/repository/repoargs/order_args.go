package repoargs

import (
	"time"

	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateOrder struct {
	UserID    int64
	ServiceID int64
	Provider  domain.ProviderType
	Price     decimal.Decimal
}

// OrderTransition условный переход статуса заказа From -> To. Переход применяется только если текущий статус
// равен From. Nil поля не изменяются.
type OrderTransition struct {
	ID              int64
	From            domain.OrderStatusType
	To              domain.OrderStatusType
	ProviderOrderID *string
	VirtualNumber   *string
	SMSCode         *string
	ExpiresAt       *time.Time
}
