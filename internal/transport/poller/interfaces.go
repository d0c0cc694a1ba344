package poller

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/fsdevblog/virtnum/internal/domain"
)

type Servicer interface {
	OrdersForPolling(ctx context.Context, limit uint) ([]domain.Order, error)
	ResolveSMS(ctx context.Context, orderID int64) (*domain.Order, error)
	RecoverStalePending(ctx context.Context, olderThan time.Duration, limit uint) (int, error)
}
