// Package poller опрашивает провайдеров о смс по ожидающим заказам и возвращает средства по зависшим.
package poller

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/fsdevblog/virtnum/internal/provider"
	"github.com/sirupsen/logrus"
)

const (
	defaultServiceTimeout         = 3 * time.Second
	defaultResolveTimeout         = time.Minute
	defaultPollInterval           = 5 * time.Second
	defaultStalePendingAfter      = 5 * time.Minute
	defaultLimitPerIteration uint = 100
	defaultPollWorkers       uint = 10
)

var ErrNoOrders = errors.New("no orders")

// Processor фоновый опрос заказов, ожидающих смс.
type Processor struct {
	svs               Servicer
	l                 *logrus.Entry
	limitPerIteration uint
	workers           uint
	pollInterval      time.Duration
	resolveTimeout    time.Duration
	staleAfter        time.Duration
}

func New(svs Servicer, l *logrus.Logger) *Processor {
	loggerEntry := l.WithFields(logrus.Fields{
		"component": "poller",
		"module":    "processor",
	})

	return &Processor{
		svs:               svs,
		l:                 loggerEntry,
		limitPerIteration: defaultLimitPerIteration,
		workers:           defaultPollWorkers,
		pollInterval:      defaultPollInterval,
		resolveTimeout:    defaultResolveTimeout,
		staleAfter:        defaultStalePendingAfter,
	}
}

// SetLimitPerIteration устанавливает кол-во заказов, обрабатываемых в одной итерации.
func (p *Processor) SetLimitPerIteration(limit uint) *Processor {
	p.limitPerIteration = limit
	return p
}

// SetWorkers устанавливает кол-во воркеров, опрашивающих провайдеров.
func (p *Processor) SetWorkers(workers uint) *Processor {
	if workers > 0 {
		p.workers = workers
	}
	return p
}

// SetPollInterval пауза между итерациями.
func (p *Processor) SetPollInterval(d time.Duration) *Processor {
	p.pollInterval = d
	return p
}

// SetStalePendingAfter возраст, после которого заказ в pending считается зависшим. Должен превышать полное
// время покупки номера у провайдера с повторами.
func (p *Processor) SetStalePendingAfter(d time.Duration) *Processor {
	p.staleAfter = d
	return p
}

// Run опрашивает заказы в цикле до отмены контекста.
//
// Алгоритм работы:
//  1. Возвращает средства по заказам, зависшим в pending (RecoverStalePending).
//  2. Запрашивает через сервисный слой заказы в статусе waiting, объем ограничен SetLimitPerIteration.
//  3. Раздает заказы N воркерам (SetWorkers), каждый вызывает ResolveSMS. Переходы статусов, возвраты средств
//     и учет ошибок опроса выполняет сервисный слой.
//  4. Ждет SetPollInterval перед следующей итерацией.
func (p *Processor) Run(ctx context.Context) {
	p.l.WithFields(logrus.Fields{
		"limitPerIteration": p.limitPerIteration,
		"workers":           p.workers,
		"pollInterval":      p.pollInterval,
	}).Info("Starting")

	for {
		if err := p.process(ctx); err != nil && !errors.Is(err, ErrNoOrders) && ctx.Err() == nil {
			p.l.WithError(err).Error("process error")
		}

		select {
		case <-ctx.Done():
			p.l.Info("Got stop signal, exiting...")
			return
		case <-time.After(p.pollInterval):
		}
	}
}

// process одна итерация опроса. Возвращает ErrNoOrders, если ожидающих заказов нет.
func (p *Processor) process(ctx context.Context) error {
	p.recoverStale(ctx)

	orders, ordersErr := p.produce(ctx)
	if ordersErr != nil {
		return fmt.Errorf("process: %w", ordersErr)
	}

	results := p.runWorkers(ctx, orders)

	var changed int
	for _, result := range results {
		if result.Error == nil && result.Updated != nil && result.Updated.Status != result.Order.Status {
			changed++
		}
	}
	p.l.WithFields(logrus.Fields{"orders": len(orders), "changed": changed}).Debug("iteration done")
	return nil
}

// recoverStale возвращает средства по зависшим заказам. Ошибки только логируются: опрос продолжается.
func (p *Processor) recoverStale(ctx context.Context) {
	recovered, err := p.svs.RecoverStalePending(ctx, p.staleAfter, p.limitPerIteration)
	if err != nil {
		p.l.WithError(err).Error("recover stale pending orders")
	}
	if recovered > 0 {
		p.l.WithField("recovered", recovered).Warn("stale pending orders refunded")
	}
}

// workerResult результат опроса одного заказа.
type workerResult struct {
	WorkerID uint
	Order    *domain.Order
	Updated  *domain.Order
	Error    error
}

// runWorkers запускает параллельных воркеров и ожидает конца их работы (fan-out/fan-in).
func (p *Processor) runWorkers(ctx context.Context, orders []domain.Order) []workerResult {
	var taskCh = make(chan *domain.Order, len(orders))

	for i := range orders {
		taskCh <- &orders[i]
	}
	close(taskCh)

	wg := new(sync.WaitGroup)
	wg.Add(int(p.workers)) // nolint:gosec

	var resultCh = make(chan *workerResult, len(orders))

	for i := range p.workers {
		go p.worker(ctx, wg, i+1, taskCh, resultCh)
	}
	wg.Wait()

	close(resultCh)

	var results = make([]workerResult, 0, len(orders))
	for result := range resultCh {
		l := p.l.WithFields(logrus.Fields{
			"worker":  result.WorkerID,
			"orderID": result.Order.ID,
		})
		switch {
		case result.Error != nil:
			l.WithError(result.Error).Warn("resolve sms")
		case result.Updated != nil && result.Updated.Status != result.Order.Status:
			l.WithField("status", result.Updated.Status).Info("order status changed")
		}
		results = append(results, *result)
	}
	return results
}

// worker опрашивает заказы из канала. Если провайдер попросил подождать (Retry-After), воркер выдерживает
// паузу перед следующим заказом.
func (p *Processor) worker(
	ctx context.Context,
	wg *sync.WaitGroup,
	workerID uint,
	taskCh <-chan *domain.Order,
	resultCh chan<- *workerResult,
) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case task, ok := <-taskCh:
			if !ok {
				return
			}
			result := p.processWorkerTask(ctx, workerID, task)
			resultCh <- result

			if pause := retryAfterOf(result.Error); pause > 0 {
				select {
				case <-ctx.Done():
					return
				case <-time.After(pause):
				}
			}
		}
	}
}

func (p *Processor) processWorkerTask(ctx context.Context, workerID uint, task *domain.Order) *workerResult {
	reqCtx, cancel := context.WithTimeout(ctx, p.resolveTimeout)
	defer cancel()

	updated, err := p.svs.ResolveSMS(reqCtx, task.ID)
	return &workerResult{
		WorkerID: workerID,
		Order:    task,
		Updated:  updated,
		Error:    err,
	}
}

// retryAfterOf пауза, о которой попросил провайдер. 0, если ошибки нет или провайдер ничего не сообщил.
func retryAfterOf(err error) time.Duration {
	var pErr *provider.Error
	if errors.As(err, &pErr) {
		return pErr.RetryAfter
	}
	return 0
}

// produce получает список заказов для опроса. Возвращает ErrNoOrders, если заказы отсутствуют.
func (p *Processor) produce(ctx context.Context) ([]domain.Order, error) {
	produceCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	orders, ordersErr := p.svs.OrdersForPolling(produceCtx, p.limitPerIteration)
	if ordersErr != nil {
		return nil, fmt.Errorf("produce: %w", ordersErr)
	}

	if len(orders) == 0 {
		return nil, ErrNoOrders
	}
	return orders, nil
}
