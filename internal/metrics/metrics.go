// Package metrics prometheus метрики кошелька, пополнений, заказов и вызовов провайдеров.
package metrics

import (
	"time"

	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/fsdevblog/virtnum/internal/provider"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

const namespace = "virtnum"

type Collector struct {
	ledgerMutations      *prometheus.CounterVec
	ledgerAmount         *prometheus.CounterVec
	ledgerConflicts      prometheus.Counter
	orderStatuses        *prometheus.CounterVec
	topupStatuses        *prometheus.CounterVec
	providerCalls        *prometheus.CounterVec
	providerCallDuration *prometheus.HistogramVec
}

// NewCollector регистрирует метрики в reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)
	return &Collector{
		ledgerMutations: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ledger_mutations_total",
				Help:      "Количество записей в журнале баланса",
			},
			[]string{"reason"},
		),
		ledgerAmount: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ledger_amount_total",
				Help:      "Сумма движений по журналу баланса (по модулю)",
			},
			[]string{"reason"},
		),
		ledgerConflicts: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ledger_conflicts_total",
				Help:      "Количество повторов транзакций из-за конкурентного доступа",
			},
		),
		orderStatuses: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "order_status_transitions_total",
				Help:      "Переходы заказов в статус",
			},
			[]string{"status", "provider"},
		),
		topupStatuses: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "topup_status_transitions_total",
				Help:      "Переходы пополнений в статус",
			},
			[]string{"status"},
		),
		providerCalls: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "provider_calls_total",
				Help:      "Вызовы провайдеров номеров",
			},
			[]string{"provider", "op", "result"},
		),
		providerCallDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "provider_call_duration_seconds",
				Help:      "Длительность вызовов провайдеров номеров",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"provider", "op"},
		),
	}
}

func (c *Collector) RecordLedgerMutation(reason domain.LedgerReasonType, amount decimal.Decimal) {
	c.ledgerMutations.WithLabelValues(string(reason)).Inc()
	c.ledgerAmount.WithLabelValues(string(reason)).Add(amount.Abs().InexactFloat64())
}

func (c *Collector) RecordOrderStatus(status domain.OrderStatusType, p domain.ProviderType) {
	c.orderStatuses.WithLabelValues(string(status), string(p)).Inc()
}

func (c *Collector) RecordTopupStatus(status domain.TopupStatusType) {
	c.topupStatuses.WithLabelValues(string(status)).Inc()
}

func (c *Collector) RecordProviderCall(p domain.ProviderType, op string, err error, d time.Duration) {
	c.providerCalls.WithLabelValues(string(p), op, callResult(err)).Inc()
	c.providerCallDuration.WithLabelValues(string(p), op).Observe(d.Seconds())
}

func (c *Collector) RecordLedgerConflict() {
	c.ledgerConflicts.Inc()
}

func callResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case provider.IsTransient(err):
		return "transient"
	default:
		return "permanent"
	}
}
