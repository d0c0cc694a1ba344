package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/fsdevblog/virtnum/internal/provider"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type OrderServiceTestSuite struct {
	suite.Suite
	env *testEnv
	svc *domain.Service
}

func TestOrderServiceSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}

func (s *OrderServiceTestSuite) SetupTest() {
	s.env = newTestEnv(s.T())
	s.svc = s.env.newService("1.50", true)
}

func (s *OrderServiceTestSuite) buy(userID int64) *domain.Order {
	order, err := s.env.services.Orders.Buy(s.T().Context(), BuyArgs{UserID: userID, ServiceID: s.svc.ID})
	s.Require().NoError(err)
	return order
}

func (s *OrderServiceTestSuite) TestBuyAndReceive() {
	user := s.env.newUser("10.00")

	order := s.buy(user.ID)
	s.Equal(domain.OrderStatusWaiting, order.Status)
	s.Require().NotNil(order.ProviderOrderID)
	s.Require().NotNil(order.VirtualNumber)
	s.Require().NotNil(order.ExpiresAt)
	s.Equal("1.50", order.Price.StringFixed(2))
	s.env.requireBalance(user.ID, "8.50")

	s.env.adapter.Deliver(*order.ProviderOrderID, "123456")
	resolved, err := s.env.services.Orders.ResolveSMS(s.T().Context(), order.ID)
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusReceived, resolved.Status)
	s.Require().NotNil(resolved.SMSCode)
	s.Equal("123456", *resolved.SMSCode)
	s.env.requireBalance(user.ID, "8.50")

	// received не перезаписывается ни отменой, ни повторным опросом
	_, err = s.env.services.Orders.Cancel(s.T().Context(), user.ID, order.ID)
	s.ErrorIs(err, domain.ErrInvalidTransition)
	s.env.adapter.Expire(*order.ProviderOrderID)
	again, err := s.env.services.Orders.ResolveSMS(s.T().Context(), order.ID)
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusReceived, again.Status)
	s.env.requireBalance(user.ID, "8.50")
}

func (s *OrderServiceTestSuite) TestBuyInsufficientBalance() {
	user := s.env.newUser("1.00")

	_, err := s.env.services.Orders.Buy(s.T().Context(), BuyArgs{UserID: user.ID, ServiceID: s.svc.ID})
	s.ErrorIs(err, domain.ErrInsufficientBalance)

	s.Empty(s.env.userOrders(user.ID))
	s.env.requireBalance(user.ID, "1.00")
	orderCalls, _ := s.env.adapter.Calls()
	s.Zero(orderCalls)
}

func (s *OrderServiceTestSuite) TestBuyProviderFailureRefunds() {
	user := s.env.newUser("10.00")
	s.env.adapter.FailOrders(provider.NewPermanentError(domain.ProviderA, "order_number", errors.New("NO_NUMBERS")))

	_, err := s.env.services.Orders.Buy(s.T().Context(), BuyArgs{UserID: user.ID, ServiceID: s.svc.ID})
	s.ErrorIs(err, domain.ErrPurchaseFailed)

	orders := s.env.userOrders(user.ID)
	s.Require().Len(orders, 1)
	s.Equal(domain.OrderStatusRefunded, orders[0].Status)
	s.Nil(orders[0].ProviderOrderID)
	s.env.requireBalance(user.ID, "10.00")
	s.Len(s.env.entries(user.ID, domain.LedgerReasonPurchase), 1)
	s.Len(s.env.entries(user.ID, domain.LedgerReasonRefund), 1)

	// permanent ошибка не повторяется
	orderCalls, _ := s.env.adapter.Calls()
	s.Equal(1, orderCalls)
}

func (s *OrderServiceTestSuite) TestBuyRetriesTransientErrors() {
	user := s.env.newUser("10.00")
	s.env.adapter.FailOrders(
		provider.NewTransientError(domain.ProviderA, "order_number", context.DeadlineExceeded),
		provider.NewTransientError(domain.ProviderA, "order_number", errors.New("503")),
	)

	order := s.buy(user.ID)
	s.Equal(domain.OrderStatusWaiting, order.Status)
	orderCalls, _ := s.env.adapter.Calls()
	s.Equal(3, orderCalls)
	s.env.requireBalance(user.ID, "8.50")
}

func (s *OrderServiceTestSuite) TestBuyTransientExhaustedRefunds() {
	user := s.env.newUser("10.00")
	transient := provider.NewTransientError(domain.ProviderA, "order_number", errors.New("timeout"))
	s.env.adapter.FailOrders(transient, transient, transient)

	_, err := s.env.services.Orders.Buy(s.T().Context(), BuyArgs{UserID: user.ID, ServiceID: s.svc.ID})
	s.ErrorIs(err, domain.ErrPurchaseFailed)
	s.env.requireBalance(user.ID, "10.00")
}

func (s *OrderServiceTestSuite) TestBuyCatalogErrors() {
	user := s.env.newUser("10.00")

	_, err := s.env.services.Orders.Buy(s.T().Context(), BuyArgs{UserID: user.ID, ServiceID: 404})
	s.ErrorIs(err, domain.ErrServiceNotFound)

	inactive := s.env.newService("1.00", false)
	_, err = s.env.services.Orders.Buy(s.T().Context(), BuyArgs{UserID: user.ID, ServiceID: inactive.ID})
	s.ErrorIs(err, domain.ErrServiceInactive)
	s.Empty(s.env.userOrders(user.ID))
}

func (s *OrderServiceTestSuite) TestFreeServiceSkipsLedger() {
	user := s.env.newUser("0")
	free := s.env.newService("0", true)

	order, err := s.env.services.Orders.Buy(s.T().Context(), BuyArgs{UserID: user.ID, ServiceID: free.ID})
	s.Require().NoError(err)

	cancelled, err := s.env.services.Orders.Cancel(s.T().Context(), user.ID, order.ID)
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusCancelled, cancelled.Status)
	s.env.requireBalance(user.ID, "0")
	s.Empty(s.env.entries(user.ID, domain.LedgerReasonPurchase))
}

func (s *OrderServiceTestSuite) TestProviderExpiryRefunds() {
	user := s.env.newUser("10.00")
	order := s.buy(user.ID)

	s.env.adapter.Expire(*order.ProviderOrderID)
	resolved, err := s.env.services.Orders.ResolveSMS(s.T().Context(), order.ID)
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusExpired, resolved.Status)
	s.env.requireBalance(user.ID, "10.00")

	// повторный опрос терминального заказа ничего не делает
	_, err = s.env.services.Orders.ResolveSMS(s.T().Context(), order.ID)
	s.Require().NoError(err)
	s.env.requireBalance(user.ID, "10.00")
	s.Len(s.env.entries(user.ID, domain.LedgerReasonRefund), 1)
}

func (s *OrderServiceTestSuite) TestPendingUntilTTL() {
	user := s.env.newUser("10.00")
	order := s.buy(user.ID)

	resolved, err := s.env.services.Orders.ResolveSMS(s.T().Context(), order.ID)
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusWaiting, resolved.Status)

	s.env.services.Orders.SetClock(func() time.Time { return order.ExpiresAt.Add(time.Second) })
	resolved, err = s.env.services.Orders.ResolveSMS(s.T().Context(), order.ID)
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusExpired, resolved.Status)
	s.env.requireBalance(user.ID, "10.00")
}

func (s *OrderServiceTestSuite) TestPollErrorsExpireOrder() {
	user := s.env.newUser("10.00")
	order := s.buy(user.ID)
	transient := provider.NewTransientError(domain.ProviderA, "get_sms", errors.New("502"))

	// каждая итерация опроса исчерпывает 3 попытки вызова
	for i := 1; i < 3; i++ {
		s.env.adapter.FailSMS(transient, transient, transient)
		_, err := s.env.services.Orders.ResolveSMS(s.T().Context(), order.ID)
		s.Require().Error(err)
		current, getErr := s.env.services.Orders.Get(s.T().Context(), user.ID, order.ID)
		s.Require().NoError(getErr)
		s.Equal(domain.OrderStatusWaiting, current.Status)
		s.Equal(uint(i), current.PollErrors)
	}

	s.env.adapter.FailSMS(transient, transient, transient)
	resolved, err := s.env.services.Orders.ResolveSMS(s.T().Context(), order.ID)
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusExpired, resolved.Status)
	s.env.requireBalance(user.ID, "10.00")
}

func (s *OrderServiceTestSuite) TestCancel() {
	user := s.env.newUser("10.00")
	order := s.buy(user.ID)

	cancelled, err := s.env.services.Orders.Cancel(s.T().Context(), user.ID, order.ID)
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusCancelled, cancelled.Status)
	s.env.requireBalance(user.ID, "10.00")

	_, err = s.env.services.Orders.Cancel(s.T().Context(), user.ID, order.ID)
	var transitionErr *domain.InvalidTransitionError
	s.Require().ErrorAs(err, &transitionErr)
	s.Equal(domain.OrderStatusCancelled, transitionErr.Order.Status)
	s.env.requireBalance(user.ID, "10.00")

	// чужой заказ неотличим от отсутствующего
	stranger := s.env.newUser("0")
	_, err = s.env.services.Orders.Cancel(s.T().Context(), stranger.ID, order.ID)
	s.ErrorIs(err, domain.ErrOrderNotFound)
}

func (s *OrderServiceTestSuite) TestConcurrentCancelAndResolve() {
	user := s.env.newUser("10.00")
	order := s.buy(user.ID)
	s.env.adapter.Expire(*order.ProviderOrderID)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, _ = s.env.services.Orders.Cancel(context.Background(), user.ID, order.ID)
	}()
	go func() {
		defer wg.Done()
		_, _ = s.env.services.Orders.ResolveSMS(context.Background(), order.ID)
	}()
	wg.Wait()

	current, err := s.env.services.Orders.Get(s.T().Context(), user.ID, order.ID)
	s.Require().NoError(err)
	s.Contains([]domain.OrderStatusType{domain.OrderStatusCancelled, domain.OrderStatusExpired}, current.Status)
	s.env.requireBalance(user.ID, "10.00")
	s.Len(s.env.entries(user.ID, domain.LedgerReasonRefund), 1)
}

func (s *OrderServiceTestSuite) TestResolveByProviderOrderID() {
	user := s.env.newUser("10.00")
	order := s.buy(user.ID)
	s.env.adapter.Deliver(*order.ProviderOrderID, "4242")

	resolved, err := s.env.services.Orders.ResolveByProviderOrderID(
		s.T().Context(), domain.ProviderA, *order.ProviderOrderID,
	)
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusReceived, resolved.Status)

	_, err = s.env.services.Orders.ResolveByProviderOrderID(s.T().Context(), domain.ProviderA, "unknown")
	s.ErrorIs(err, domain.ErrOrderNotFound)
}

func (s *OrderServiceTestSuite) TestRecoverStalePending() {
	user := s.env.newUser("10.00")
	order, err := s.env.services.Orders.reserve(s.T().Context(), user.ID, s.svc)
	s.Require().NoError(err)
	s.env.requireBalance(user.ID, "8.50")

	// свежие pending заказы не трогаются
	recovered, err := s.env.services.Orders.RecoverStalePending(s.T().Context(), time.Hour, 10)
	s.Require().NoError(err)
	s.Zero(recovered)

	s.env.services.Orders.SetClock(func() time.Time { return order.CreatedAt.Add(2 * time.Hour) })
	recovered, err = s.env.services.Orders.RecoverStalePending(s.T().Context(), time.Hour, 10)
	s.Require().NoError(err)
	s.Equal(1, recovered)
	s.env.requireBalance(user.ID, "10.00")

	current, err := s.env.services.Orders.Get(s.T().Context(), user.ID, order.ID)
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusRefunded, current.Status)
}

func (s *OrderServiceTestSuite) TestOrdersForPolling() {
	user := s.env.newUser("10.00")
	first := s.buy(user.ID)
	second := s.buy(user.ID)
	s.env.adapter.Deliver(*second.ProviderOrderID, "1")
	_, err := s.env.services.Orders.ResolveSMS(s.T().Context(), second.ID)
	s.Require().NoError(err)

	orders, err := s.env.services.Orders.OrdersForPolling(s.T().Context(), 10)
	s.Require().NoError(err)
	s.Require().Len(orders, 1)
	s.Equal(first.ID, orders[0].ID)
}

func (s *OrderServiceTestSuite) TestBuyStoreFailureRefunds() {
	user := s.env.newUser("10.00")
	s.env.adapter.QueueOrderIDs("dup", "dup")

	first := s.buy(user.ID)
	s.Equal("dup", *first.ProviderOrderID)
	s.env.requireBalance(user.ID, "8.50")

	// номер провайдера уже занят другим заказом, сохранить выдачу нельзя
	_, err := s.env.services.Orders.Buy(s.T().Context(), BuyArgs{UserID: user.ID, ServiceID: s.svc.ID})
	s.ErrorIs(err, domain.ErrPurchaseFailed)
	s.ErrorIs(err, domain.ErrDuplicateKey)

	s.env.requireBalance(user.ID, "8.50")
	orders := s.env.userOrders(user.ID)
	s.Require().Len(orders, 2)
	statuses := []domain.OrderStatusType{orders[0].Status, orders[1].Status}
	s.ElementsMatch([]domain.OrderStatusType{domain.OrderStatusWaiting, domain.OrderStatusRefunded}, statuses)
	s.Len(s.env.entries(user.ID, domain.LedgerReasonRefund), 1)
}

func (s *OrderServiceTestSuite) TestRefundUsesOrderPrice() {
	user := s.env.newUser("10.00")
	order := s.buy(user.ID)
	s.env.requireBalance(user.ID, "8.50")

	_, err := s.env.services.Catalog.SetPrice(s.T().Context(), s.svc.ID, decimal.RequireFromString("5.00"))
	s.Require().NoError(err)

	cancelled, err := s.env.services.Orders.Cancel(s.T().Context(), user.ID, order.ID)
	s.Require().NoError(err)
	s.Equal("1.50", cancelled.Price.StringFixed(2))
	s.env.requireBalance(user.ID, "10.00")

	refunds := s.env.entries(user.ID, domain.LedgerReasonRefund)
	s.Require().Len(refunds, 1)
	s.Equal("1.50", refunds[0].Delta.StringFixed(2))
}

func (s *OrderServiceTestSuite) TestBuyWholeBalance() {
	user := s.env.newUser("10.00")
	svc := s.env.newService("10.00", true)

	order, err := s.env.services.Orders.Buy(s.T().Context(), BuyArgs{UserID: user.ID, ServiceID: svc.ID})
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusWaiting, order.Status)
	s.env.requireBalance(user.ID, "0.00")

	_, err = s.env.services.Orders.Buy(s.T().Context(), BuyArgs{UserID: user.ID, ServiceID: svc.ID})
	s.ErrorIs(err, domain.ErrInsufficientBalance)
	s.Len(s.env.userOrders(user.ID), 1)
	s.env.requireBalance(user.ID, "0.00")
}
