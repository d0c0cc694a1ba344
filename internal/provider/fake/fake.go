// Package fake детерминированный провайдер без сети для локального запуска и тестов.
package fake

import (
	"context"
	"fmt"
	"sync"

	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/fsdevblog/virtnum/internal/provider"
	nanoid "github.com/jaevor/go-nanoid"
)

const idLength = 12

type Adapter struct {
	mu         sync.Mutex
	p          domain.ProviderType
	newID      func() string
	seq        int
	nextIDs    []string
	orderErrs  []error
	smsErrs    []error
	orders     map[string]*provider.SMSResult
	orderCalls int
	smsCalls   int
}

func New(p domain.ProviderType) (*Adapter, error) {
	gen, err := nanoid.Standard(idLength)
	if err != nil {
		return nil, fmt.Errorf("fake provider: %w", err)
	}
	return &Adapter{
		p:      p,
		newID:  gen,
		orders: make(map[string]*provider.SMSResult),
	}, nil
}

// FailOrders добавляет ошибки, которые вернут следующие вызовы OrderNumber.
func (a *Adapter) FailOrders(errs ...error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.orderErrs = append(a.orderErrs, errs...)
}

// QueueOrderIDs задает номера заказов провайдера для следующих вызовов OrderNumber.
func (a *Adapter) QueueOrderIDs(ids ...string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.nextIDs = append(a.nextIDs, ids...)
}

// FailSMS добавляет ошибки, которые вернут следующие вызовы GetSMS.
func (a *Adapter) FailSMS(errs ...error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.smsErrs = append(a.smsErrs, errs...)
}

// Deliver имитирует поступление смс с кодом на номер заказа.
func (a *Adapter) Deliver(providerOrderID, code string) {
	a.set(providerOrderID, provider.SMSResult{Status: provider.SMSReceived, Code: code})
}

// Expire имитирует истечение заказа у провайдера.
func (a *Adapter) Expire(providerOrderID string) {
	a.set(providerOrderID, provider.SMSResult{Status: provider.SMSExpired})
}

func (a *Adapter) set(providerOrderID string, res provider.SMSResult) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.orders[providerOrderID] = &res
}

func (a *Adapter) OrderNumber(ctx context.Context, _ string) (*provider.Allocation, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.orderCalls++

	if err := ctx.Err(); err != nil {
		return nil, provider.NewTransientError(a.p, "order_number", err)
	}
	if len(a.orderErrs) > 0 {
		err := a.orderErrs[0]
		a.orderErrs = a.orderErrs[1:]
		return nil, err
	}

	a.seq++
	id := a.newID()
	if len(a.nextIDs) > 0 {
		id = a.nextIDs[0]
		a.nextIDs = a.nextIDs[1:]
	}
	a.orders[id] = &provider.SMSResult{Status: provider.SMSPending}
	return &provider.Allocation{ProviderOrderID: id, Number: fmt.Sprintf("+1555%07d", a.seq)}, nil
}

// GetSMS возвращает текущее состояние заказа. Неизвестный заказ считается истекшим.
func (a *Adapter) GetSMS(ctx context.Context, providerOrderID string) (*provider.SMSResult, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.smsCalls++

	if err := ctx.Err(); err != nil {
		return nil, provider.NewTransientError(a.p, "get_sms", err)
	}
	if len(a.smsErrs) > 0 {
		err := a.smsErrs[0]
		a.smsErrs = a.smsErrs[1:]
		return nil, err
	}

	res, ok := a.orders[providerOrderID]
	if !ok {
		return &provider.SMSResult{Status: provider.SMSExpired}, nil
	}
	out := *res
	return &out, nil
}

// Calls возвращает количество вызовов OrderNumber и GetSMS.
func (a *Adapter) Calls() (int, int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.orderCalls, a.smsCalls
}
