package service

import (
	"context"
	"time"

	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/shopspring/decimal"
)

// NoopMetrics MetricsCollector, который ничего не делает.
type NoopMetrics struct{}

func (NoopMetrics) RecordLedgerMutation(domain.LedgerReasonType, decimal.Decimal) {}
func (NoopMetrics) RecordOrderStatus(domain.OrderStatusType, domain.ProviderType) {}
func (NoopMetrics) RecordTopupStatus(domain.TopupStatusType) {}
func (NoopMetrics) RecordProviderCall(domain.ProviderType, string, error, time.Duration) {}
func (NoopMetrics) RecordLedgerConflict() {}

// NoopPublisher EventPublisher, который никуда не публикует.
type NoopPublisher struct{}

func (NoopPublisher) PublishOrderEvent(context.Context, domain.OrderEvent) error { return nil }
func (NoopPublisher) PublishTopupEvent(context.Context, domain.TopupEvent) error { return nil }
