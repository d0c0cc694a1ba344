// Package provider описывает контракт поставщиков виртуальных номеров и общие для адаптеров ошибки.
package provider

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fsdevblog/virtnum/internal/domain"
)

//go:generate mockgen -source=adapter.go -destination=mocks/mocks.go -package=mocks

type SMSStatus string

const (
	SMSPending  SMSStatus = "pending"
	SMSReceived SMSStatus = "received"
	SMSExpired  SMSStatus = "expired"
)

// Allocation выделенный провайдером номер. Поля уже нормализованы адаптером.
type Allocation struct {
	ProviderOrderID string
	Number          string
}

type SMSResult struct {
	Status SMSStatus
	Code   string
}

// Adapter контракт поставщика номеров. Любая ошибка адаптера приводится к *Error.
type Adapter interface {
	OrderNumber(ctx context.Context, serviceCode string) (*Allocation, error)
	GetSMS(ctx context.Context, providerOrderID string) (*SMSResult, error)
}

type ErrorKind int

const (
	KindTransient ErrorKind = iota
	KindPermanent
)

func (k ErrorKind) String() string {
	if k == KindPermanent {
		return "permanent"
	}
	return "transient"
}

// Error ошибка провайдера. RetryAfter заполняется, если провайдер сообщил, когда можно повторить запрос.
type Error struct {
	Kind       ErrorKind
	Provider   domain.ProviderType
	Op         string
	RetryAfter time.Duration
	Err        error
}

func NewTransientError(p domain.ProviderType, op string, err error) *Error {
	return &Error{Kind: KindTransient, Provider: p, Op: op, Err: err}
}

func NewPermanentError(p domain.ProviderType, op string, err error) *Error {
	return &Error{Kind: KindPermanent, Provider: p, Op: op, Err: err}
}

func (e *Error) Error() string {
	return fmt.Sprintf("provider %s %s: %s error: %v", e.Provider, e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsTransient сообщает, имеет ли смысл повторить операцию. Таймауты считаются временными ошибками,
// отмена контекста вызывающей стороной - нет.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	var pErr *Error
	if errors.As(err, &pErr) {
		return pErr.Kind == KindTransient
	}
	return errors.Is(err, context.DeadlineExceeded)
}

var ErrUnknownProvider = errors.New("unknown provider")

// Registry набор адаптеров по типу провайдера.
type Registry struct {
	mu       sync.RWMutex
	adapters map[domain.ProviderType]Adapter
}

func NewRegistry() *Registry {
	return &Registry{adapters: make(map[domain.ProviderType]Adapter)}
}

func (r *Registry) Register(p domain.ProviderType, a Adapter) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.adapters[p] = a
	return r
}

func (r *Registry) Get(p domain.ProviderType) (Adapter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.adapters[p]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, p)
	}
	return a, nil
}
