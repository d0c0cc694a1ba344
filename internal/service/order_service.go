package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/fsdevblog/virtnum/internal/provider"
	"github.com/fsdevblog/virtnum/internal/repository/repoargs"
	"github.com/fsdevblog/virtnum/pkg/uow"
	"github.com/sirupsen/logrus"
)

const (
	opOrderNumber = "order_number"
	opGetSMS      = "get_sms"
)

// errOrderTransitionLost условный переход не применился: статус заказа уже изменил кто-то другой.
var errOrderTransitionLost = errors.New("order transition lost")

// OrderOptions параметры оркестрации заказов.
type OrderOptions struct {
	// ProviderTimeout таймаут одного вызова провайдера.
	ProviderTimeout time.Duration
	// ProviderRetries количество попыток вызова провайдера при временных ошибках.
	ProviderRetries uint
	ProviderBackoff time.Duration
	// OrderTTL сколько ждать смс после выдачи номера.
	OrderTTL time.Duration
	// MaxPollErrors после стольких неудачных опросов подряд заказ истекает с возвратом средств.
	MaxPollErrors uint
	// CompensationTimeout сколько пытаться вернуть средства, прежде чем оставить заказ для фоновой очистки.
	CompensationTimeout time.Duration
	CompensationBackoff time.Duration
}

func DefaultOrderOptions() OrderOptions {
	return OrderOptions{
		ProviderTimeout:     15 * time.Second,       //nolint:mnd
		ProviderRetries:     3,                      //nolint:mnd
		ProviderBackoff:     500 * time.Millisecond, //nolint:mnd
		OrderTTL:            20 * time.Minute,       //nolint:mnd
		MaxPollErrors:       10,                     //nolint:mnd
		CompensationTimeout: time.Minute,
		CompensationBackoff: 100 * time.Millisecond, //nolint:mnd
	}
}

type BuyArgs struct {
	UserID    int64
	ServiceID int64
}

type OrderServiceArgs struct {
	UOW       uow.UOW
	Ledger    *LedgerService
	Catalog   CatalogReader
	Providers ProviderRegistry
	Publisher EventPublisher
	Metrics   MetricsCollector
	Logger    *logrus.Logger
	Options   OrderOptions
}

// OrderService ведет заказ от резервирования средств до терминального статуса.
//
// Граф статусов: pending -> waiting -> {received | expired | cancelled}, pending -> refunded.
// Каждый переход выполняется условным обновлением по текущему статусу, поэтому из двух конкурентных
// переходов применяется только первый, а received никогда не перезаписывается.
type OrderService struct {
	ledger    *LedgerService
	orderRepo OrderRepository
	catalog   CatalogReader
	providers ProviderRegistry
	publisher EventPublisher
	metrics   MetricsCollector
	l         *logrus.Entry
	opts      OrderOptions
	now       func() time.Time
}

func NewOrderService(args OrderServiceArgs) (*OrderService, error) {
	orderRepo, err := uow.GetRepositoryAs[OrderRepository](args.UOW, uow.RepositoryName(repoargs.OrderRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &OrderService{
		ledger:    args.Ledger,
		orderRepo: orderRepo,
		catalog:   args.Catalog,
		providers: args.Providers,
		publisher: args.Publisher,
		metrics:   args.Metrics,
		l:         args.Logger.WithField("component", "orders"),
		opts:      args.Options,
		now:       time.Now,
	}, nil
}

// SetClock подменяет источник текущего времени.
func (o *OrderService) SetClock(now func() time.Time) *OrderService {
	o.now = now
	return o
}

// Buy покупает номер для услуги.
//
// Алгоритм работы:
//  1. Читает услугу из каталога один раз; ее цена используется и для списания, и для возврата.
//  2. В одной транзакции создает заказ в статусе pending и списывает цену с ключом (purchase, orderID).
//     При нехватке средств транзакция откатывается целиком, провайдер не вызывается.
//  3. Вне транзакции запрашивает номер у провайдера, повторяя временные ошибки.
//  4. Успех: pending -> waiting с номером провайдера. Ошибка провайдера или сохранения номера:
//     pending -> refunded с возвратом средств, вызывающему возвращается domain.ErrPurchaseFailed.
func (o *OrderService) Buy(ctx context.Context, args BuyArgs) (*domain.Order, error) {
	svc, err := o.catalog.Lookup(ctx, args.ServiceID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if !svc.Active {
		return nil, fmt.Errorf("%w: id %d", domain.ErrServiceInactive, svc.ID)
	}
	adapter, err := o.providers.Get(svc.Provider)
	if err != nil {
		return nil, fmt.Errorf("buy: %w", err)
	}

	order, err := o.reserve(ctx, args.UserID, svc)
	if err != nil {
		return nil, fmt.Errorf("buy service %d: %w", svc.ID, err)
	}
	l := o.l.WithFields(logrus.Fields{"orderID": order.ID, "userID": order.UserID, "provider": order.Provider})
	o.emit(ctx, order)

	alloc, allocErr := o.allocate(ctx, order.Provider, adapter, svc.Code)
	if allocErr != nil {
		l.WithError(allocErr).Warn("number allocation failed, refunding")
		if _, _, compErr := o.compensate(ctx, order, domain.OrderStatusPending, domain.OrderStatusRefunded); compErr != nil {
			l.WithError(compErr).Error("refund after failed allocation, left for recovery")
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrPurchaseFailed, allocErr)
	}

	expiresAt := o.now().Add(o.opts.OrderTTL)
	waiting, err := o.orderRepo.Transition(ctx, repoargs.OrderTransition{
		ID:              order.ID,
		From:            domain.OrderStatusPending,
		To:              domain.OrderStatusWaiting,
		ProviderOrderID: &alloc.ProviderOrderID,
		VirtualNumber:   &alloc.Number,
		ExpiresAt:       &expiresAt,
	})
	if err != nil {
		// Номер у провайдера остается невостребованным. Если заказ уже вернула фоновая очистка,
		// compensate увидит смену статуса и повторного возврата не будет.
		l.WithError(err).WithField("providerOrderID", alloc.ProviderOrderID).Error("store allocation, refunding")
		if _, _, compErr := o.compensate(ctx, order, domain.OrderStatusPending, domain.OrderStatusRefunded); compErr != nil {
			l.WithError(compErr).Error("refund after failed allocation store, left for recovery")
		}
		return nil, fmt.Errorf("%w: store allocation: %w", domain.ErrPurchaseFailed, err)
	}

	l.WithField("providerOrderID", alloc.ProviderOrderID).Info("number allocated")
	o.emit(ctx, waiting)
	return waiting, nil
}

// reserve создает заказ в статусе pending и списывает его цену в одной транзакции.
func (o *OrderService) reserve(ctx context.Context, userID int64, svc *domain.Service) (*domain.Order, error) {
	var order *domain.Order
	err := o.ledger.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, err := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		created, err := repo.Create(c, repoargs.CreateOrder{
			UserID:    userID,
			ServiceID: svc.ID,
			Provider:  svc.Provider,
			Price:     svc.Price,
		})
		if err != nil {
			return err //nolint:wrapcheck
		}
		if created.Price.IsPositive() {
			if _, err = o.ledger.DebitTx(c, tx, LedgerMutation{
				UserID:      userID,
				Amount:      created.Price,
				Reason:      domain.LedgerReasonPurchase,
				ReferenceID: created.ID,
			}); err != nil {
				return err //nolint:wrapcheck
			}
		}
		order = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	if order.Price.IsPositive() {
		o.metrics.RecordLedgerMutation(domain.LedgerReasonPurchase, order.Price)
	}
	return order, nil
}

func (o *OrderService) allocate(
	ctx context.Context,
	p domain.ProviderType,
	adapter provider.Adapter,
	serviceCode string,
) (*provider.Allocation, error) {
	var alloc *provider.Allocation
	err := retry(ctx, o.providerPolicy(), provider.IsTransient, func(c context.Context) error {
		callCtx, cancel := context.WithTimeout(c, o.opts.ProviderTimeout)
		defer cancel()

		started := time.Now()
		var err error
		alloc, err = adapter.OrderNumber(callCtx, serviceCode)
		o.metrics.RecordProviderCall(p, opOrderNumber, err, time.Since(started))
		return err //nolint:wrapcheck
	})
	return alloc, err
}

func (o *OrderService) fetchSMS(
	ctx context.Context,
	p domain.ProviderType,
	adapter provider.Adapter,
	providerOrderID string,
) (*provider.SMSResult, error) {
	var res *provider.SMSResult
	err := retry(ctx, o.providerPolicy(), provider.IsTransient, func(c context.Context) error {
		callCtx, cancel := context.WithTimeout(c, o.opts.ProviderTimeout)
		defer cancel()

		started := time.Now()
		var err error
		res, err = adapter.GetSMS(callCtx, providerOrderID)
		o.metrics.RecordProviderCall(p, opGetSMS, err, time.Since(started))
		return err //nolint:wrapcheck
	})
	return res, err
}

func (o *OrderService) providerPolicy() backoffPolicy {
	return o.opts.providerPolicy()
}

func (o OrderOptions) providerPolicy() backoffPolicy {
	return backoffPolicy{
		Attempts: max(o.ProviderRetries, 1),
		Base:     o.ProviderBackoff,
		Max:      o.ProviderTimeout,
	}
}

// PurchaseBudget наибольшее время выдачи номера в Buy: все попытки вызова провайдера и паузы между ними.
// Заказ в pending младше этого срока может быть еще в работе.
func (o OrderOptions) PurchaseBudget() time.Duration {
	p := o.providerPolicy()
	total := o.ProviderTimeout * time.Duration(p.Attempts)
	for attempt := uint(0); attempt+1 < p.Attempts; attempt++ {
		total += p.maxDelay(attempt)
	}
	return total
}

// ResolveSMS опрашивает провайдера по заказу в статусе waiting и продвигает его: код получен -> received,
// провайдер сообщил об истечении или истек срок ожидания -> expired с возвратом средств.
// Заказы в других статусах возвращаются без изменений.
func (o *OrderService) ResolveSMS(ctx context.Context, orderID int64) (*domain.Order, error) {
	order, err := o.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return o.resolve(ctx, order)
}

// ResolveByProviderOrderID то же, что ResolveSMS, для уведомления от провайдера. Содержимое уведомления
// считается только подсказкой: код всегда запрашивается у провайдера.
func (o *OrderService) ResolveByProviderOrderID(
	ctx context.Context,
	p domain.ProviderType,
	providerOrderID string,
) (*domain.Order, error) {
	order, err := o.orderRepo.FindByProviderOrderID(ctx, p, providerOrderID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s/%s", domain.ErrOrderNotFound, p, providerOrderID)
		}
		return nil, fmt.Errorf("find order by provider id: %w", err)
	}
	return o.resolve(ctx, order)
}

func (o *OrderService) resolve(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if order.Status != domain.OrderStatusWaiting {
		return order, nil
	}
	if order.ProviderOrderID == nil {
		return nil, fmt.Errorf("order %d: waiting without provider order id", order.ID)
	}
	adapter, err := o.providers.Get(order.Provider)
	if err != nil {
		return nil, fmt.Errorf("resolve order %d: %w", order.ID, err)
	}

	res, fetchErr := o.fetchSMS(ctx, order.Provider, adapter, *order.ProviderOrderID)
	if fetchErr != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("resolve order %d: %w", order.ID, fetchErr)
		}
		return o.registerPollError(ctx, order, fetchErr)
	}

	switch res.Status {
	case provider.SMSReceived:
		return o.receive(ctx, order, res.Code)
	case provider.SMSExpired:
		return o.expire(ctx, order)
	default:
		if order.IsExpiredAt(o.now()) {
			return o.expire(ctx, order)
		}
		return order, nil
	}
}

func (o *OrderService) receive(ctx context.Context, order *domain.Order, code string) (*domain.Order, error) {
	updated, err := o.orderRepo.Transition(ctx, repoargs.OrderTransition{
		ID:      order.ID,
		From:    domain.OrderStatusWaiting,
		To:      domain.OrderStatusReceived,
		SMSCode: &code,
	})
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			// заказ уже отменен или истек
			return o.findOrder(ctx, order.ID)
		}
		return nil, fmt.Errorf("receive sms for order %d: %w", order.ID, err)
	}
	o.l.WithField("orderID", order.ID).Info("sms received")
	o.emit(ctx, updated)
	return updated, nil
}

func (o *OrderService) expire(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	updated, _, err := o.compensate(ctx, order, domain.OrderStatusWaiting, domain.OrderStatusExpired)
	if err != nil {
		return nil, fmt.Errorf("expire order %d: %w", order.ID, err)
	}
	return updated, nil
}

// registerPollError учитывает неудачный опрос. Когда ошибок набирается MaxPollErrors или истек срок
// ожидания, заказ истекает с возвратом средств.
func (o *OrderService) registerPollError(ctx context.Context, order *domain.Order, cause error) (*domain.Order, error) {
	updated, err := o.orderRepo.IncrementPollErrors(ctx, order.ID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return o.findOrder(ctx, order.ID)
		}
		return nil, errors.Join(cause, err)
	}

	o.l.WithError(cause).WithFields(logrus.Fields{
		"orderID":    order.ID,
		"pollErrors": updated.PollErrors,
	}).Warn("poll provider")

	if updated.PollErrors >= o.opts.MaxPollErrors || updated.IsExpiredAt(o.now()) {
		return o.expire(ctx, updated)
	}
	return nil, fmt.Errorf("get sms for order %d: %w", order.ID, cause)
}

// Cancel отменяет заказ пользователя, пока смс не получено. Для заказа в другом статусе возвращает
// *domain.InvalidTransitionError с текущим состоянием заказа.
func (o *OrderService) Cancel(ctx context.Context, userID, orderID int64) (*domain.Order, error) {
	order, err := o.Get(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.OrderStatusWaiting {
		return nil, domain.NewInvalidTransitionError(order, domain.OrderStatusCancelled)
	}

	updated, applied, err := o.compensate(ctx, order, domain.OrderStatusWaiting, domain.OrderStatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("cancel order %d: %w", orderID, err)
	}
	if !applied {
		return nil, domain.NewInvalidTransitionError(updated, domain.OrderStatusCancelled)
	}
	return updated, nil
}

// compensate переводит заказ from -> to и в той же транзакции возвращает его цену с ключом (refund, orderID).
// Повторяет попытки до успеха или истечения CompensationTimeout, даже если ctx вызывающего уже отменен.
// applied == false означает, что статус заказа успел измениться, тогда возвращается его текущее состояние.
func (o *OrderService) compensate(
	ctx context.Context,
	order *domain.Order,
	from, to domain.OrderStatusType,
) (*domain.Order, bool, error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), o.opts.CompensationTimeout)
	defer cancel()

	notLost := func(err error) bool { return !errors.Is(err, errOrderTransitionLost) }
	policy := backoffPolicy{Base: o.opts.CompensationBackoff, Max: 5 * time.Second} //nolint:mnd

	var updated *domain.Order
	err := retry(ctx, policy, notLost, func(c context.Context) error {
		return o.ledger.Do(c, func(c context.Context, tx uow.TX) error {
			repo, err := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
			if err != nil {
				return err //nolint:wrapcheck
			}
			updated, err = repo.Transition(c, repoargs.OrderTransition{ID: order.ID, From: from, To: to})
			if err != nil {
				if errors.Is(err, domain.ErrRecordNotFound) {
					return errOrderTransitionLost
				}
				return err //nolint:wrapcheck
			}
			if !order.Price.IsPositive() {
				return nil
			}
			_, _, err = o.ledger.CreditTx(c, tx, LedgerMutation{
				UserID:      order.UserID,
				Amount:      order.Price,
				Reason:      domain.LedgerReasonRefund,
				ReferenceID: order.ID,
			})
			return err
		})
	})
	if err != nil {
		if errors.Is(err, errOrderTransitionLost) {
			current, findErr := o.findOrder(ctx, order.ID)
			return current, false, findErr
		}
		return nil, false, err
	}

	o.l.WithFields(logrus.Fields{
		"orderID": order.ID,
		"status":  to,
		"refund":  order.Price.StringFixed(2),
	}).Info("order refunded")
	if order.Price.IsPositive() {
		o.metrics.RecordLedgerMutation(domain.LedgerReasonRefund, order.Price)
	}
	o.emit(ctx, updated)
	return updated, true, nil
}

// RecoverStalePending возвращает средства по заказам, зависшим в pending дольше olderThan (например, процесс
// упал между списанием и ответом провайдера). olderThan должен превышать полное время вызова провайдера.
func (o *OrderService) RecoverStalePending(ctx context.Context, olderThan time.Duration, limit uint) (int, error) {
	orders, err := o.orderRepo.GetPendingCreatedBefore(ctx, o.now().Add(-olderThan), limit)
	if err != nil {
		return 0, fmt.Errorf("stale pending orders: %w", err)
	}

	var recovered int
	var errs []error
	for i := range orders {
		_, applied, compErr := o.compensate(ctx, &orders[i], domain.OrderStatusPending, domain.OrderStatusRefunded)
		if compErr != nil {
			errs = append(errs, compErr)
			continue
		}
		if applied {
			recovered++
		}
	}
	return recovered, errors.Join(errs...)
}

// OrdersForPolling заказы, ожидающие смс, в порядке давности опроса.
func (o *OrderService) OrdersForPolling(ctx context.Context, limit uint) ([]domain.Order, error) {
	orders, err := o.orderRepo.GetByStatus(ctx, domain.OrderStatusWaiting, limit)
	if err != nil {
		return nil, fmt.Errorf("orders for polling: %w", err)
	}
	return orders, nil
}

// Get возвращает заказ пользователя. Чужой заказ неотличим от отсутствующего.
func (o *OrderService) Get(ctx context.Context, userID, orderID int64) (*domain.Order, error) {
	order, err := o.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, fmt.Errorf("%w: id %d", domain.ErrOrderNotFound, orderID)
	}
	return order, nil
}

// GetByUserID заказы пользователя, новые первыми.
func (o *OrderService) GetByUserID(ctx context.Context, userID int64) ([]domain.Order, error) {
	orders, err := o.orderRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("orders of user %d: %w", userID, err)
	}
	return orders, nil
}

func (o *OrderService) findOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	order, err := o.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrOrderNotFound, orderID)
		}
		return nil, fmt.Errorf("find order %d: %w", orderID, err)
	}
	return order, nil
}

// emit фиксирует новый статус заказа в метриках и публикует событие. Ошибка публикации не влияет на заказ.
func (o *OrderService) emit(ctx context.Context, order *domain.Order) {
	o.metrics.RecordOrderStatus(order.Status, order.Provider)
	if err := o.publisher.PublishOrderEvent(ctx, domain.NewOrderEvent(order, o.now())); err != nil {
		o.l.WithError(err).WithField("orderID", order.ID).Warn("publish order event")
	}
}
