package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MoneyScale число знаков после запятой у денежных сумм (NUMERIC(14,2) в хранилище).
const MoneyScale = 2

// IsMoneyScale сумма представима с точностью до копейки без округления.
func IsMoneyScale(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(MoneyScale))
}

type User struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Balance   decimal.Decimal
	Role      RoleType
}

// Service позиция каталога: что и у какого провайдера покупаем и за сколько продаем.
type Service struct {
	ID           int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Code         string
	Provider     ProviderType
	ProviderCost decimal.Decimal
	Price        decimal.Decimal
	Active       bool
}

type Topup struct {
	ID          int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	UserID      int64
	Amount      decimal.Decimal
	ExternalRef string
	Status      TopupStatusType
}

// Order заказ виртуального номера. Price фиксируется при создании и используется как для списания,
// так и для возврата средств.
type Order struct {
	ID              int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
	UserID          int64
	ServiceID       int64
	Provider        ProviderType
	Price           decimal.Decimal
	ProviderOrderID *string
	VirtualNumber   *string
	SMSCode         *string
	Status          OrderStatusType
	PollErrors      uint
	ExpiresAt       *time.Time
}

// IsExpiredAt сообщает, истек ли срок ожидания смс к моменту now.
func (o *Order) IsExpiredAt(now time.Time) bool {
	return o.ExpiresAt != nil && !now.Before(*o.ExpiresAt)
}

// LedgerEntry запись аудита движения средств. Никогда не изменяется после создания.
type LedgerEntry struct {
	ID          int64
	CreatedAt   time.Time
	UserID      int64
	Delta       decimal.Decimal
	Reason      LedgerReasonType
	ReferenceID int64
}
