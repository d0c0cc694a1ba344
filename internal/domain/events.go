package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderEvent событие жизненного цикла заказа для внешних подписчиков.
type OrderEvent struct {
	OrderID       int64           `json:"order_id"`
	UserID        int64           `json:"user_id"`
	ServiceID     int64           `json:"service_id"`
	Provider      ProviderType    `json:"provider"`
	Status        OrderStatusType `json:"status"`
	Price         decimal.Decimal `json:"price"`
	VirtualNumber string          `json:"virtual_number,omitempty"`
	OccurredAt    time.Time       `json:"occurred_at"`
}

func NewOrderEvent(o *Order, at time.Time) OrderEvent {
	e := OrderEvent{
		OrderID:    o.ID,
		UserID:     o.UserID,
		ServiceID:  o.ServiceID,
		Provider:   o.Provider,
		Status:     o.Status,
		Price:      o.Price,
		OccurredAt: at,
	}
	if o.VirtualNumber != nil {
		e.VirtualNumber = *o.VirtualNumber
	}
	return e
}

type TopupEvent struct {
	TopupID     int64           `json:"topup_id"`
	UserID      int64           `json:"user_id"`
	ExternalRef string          `json:"external_ref"`
	Status      TopupStatusType `json:"status"`
	Amount      decimal.Decimal `json:"amount"`
	OccurredAt  time.Time       `json:"occurred_at"`
}

func NewTopupEvent(t *Topup, at time.Time) TopupEvent {
	return TopupEvent{
		TopupID:     t.ID,
		UserID:      t.UserID,
		ExternalRef: t.ExternalRef,
		Status:      t.Status,
		Amount:      t.Amount,
		OccurredAt:  at,
	}
}
