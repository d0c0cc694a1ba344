package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")

	// ErrLedgerConflict конкурентное изменение данных (serialization failure, deadlock). Операцию можно повторить.
	ErrLedgerConflict = errors.New("ledger conflict")

	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrLedgerInconsistent   = errors.New("ledger inconsistent")
	ErrUnknownReference     = errors.New("unknown reference")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrAmountMismatch       = errors.New("amount mismatch")
	ErrInvalidConfirmation  = errors.New("invalid confirmation status")
	ErrServiceNotFound      = errors.New("service not found")
	ErrServiceInactive      = errors.New("service inactive")
	ErrOrderNotFound        = errors.New("order not found")
	ErrPurchaseFailed       = errors.New("purchase failed")
	ErrInvalidTransition    = errors.New("invalid transition")
)

// InvalidTransitionError отказ в переходе статуса заказа. Order содержит текущее, неизмененное состояние.
type InvalidTransitionError struct {
	Order *Order
	To    OrderStatusType
}

func NewInvalidTransitionError(order *Order, to OrderStatusType) error {
	return &InvalidTransitionError{Order: order, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("order %d: transition %s -> %s is not allowed", e.Order.ID, e.Order.Status, e.To)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
