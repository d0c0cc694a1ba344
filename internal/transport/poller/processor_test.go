package poller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/fsdevblog/virtnum/internal/provider"
	"github.com/fsdevblog/virtnum/internal/transport/poller/mocks"
	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type ProcessorTestSuite struct {
	suite.Suite
	processor   *Processor
	mockService *mocks.MockServicer
	ctrl        *gomock.Controller
}

func (s *ProcessorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = mocks.NewMockServicer(s.ctrl)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	s.processor = New(s.mockService, logger).
		SetWorkers(3).
		SetLimitPerIteration(10).
		SetPollInterval(10 * time.Millisecond).
		SetStalePendingAfter(time.Minute)
}

func TestProcessorSuite(t *testing.T) {
	suite.Run(t, new(ProcessorTestSuite))
}

func (s *ProcessorTestSuite) waiting(id int64) domain.Order {
	return domain.Order{ID: id, UserID: 100, Provider: domain.ProviderA, Status: domain.OrderStatusWaiting}
}

// TestProcess_NoOrders Нет заказов для опроса, зависшие заказы все равно проверяются.
func (s *ProcessorTestSuite) TestProcess_NoOrders() {
	s.mockService.EXPECT().RecoverStalePending(gomock.Any(), time.Minute, uint(10)).Return(0, nil)
	s.mockService.EXPECT().OrdersForPolling(gomock.Any(), uint(10)).Return([]domain.Order{}, nil)

	err := s.processor.process(s.T().Context())

	s.ErrorIs(err, ErrNoOrders)
}

func (s *ProcessorTestSuite) TestProcess_ProduceError() {
	s.mockService.EXPECT().RecoverStalePending(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil)
	s.mockService.EXPECT().OrdersForPolling(gomock.Any(), gomock.Any()).Return(nil, errors.New("db is down"))

	err := s.processor.process(s.T().Context())

	s.Require().Error(err)
	s.NotErrorIs(err, ErrNoOrders)
}

// TestProcess_ResolvesEveryOrder Каждый заказ опрашивается ровно один раз, ошибки отдельных заказов
// не прерывают итерацию.
func (s *ProcessorTestSuite) TestProcess_ResolvesEveryOrder() {
	orders := []domain.Order{s.waiting(1), s.waiting(2), s.waiting(3), s.waiting(4)}

	received := s.waiting(1)
	received.Status = domain.OrderStatusReceived
	expired := s.waiting(2)
	expired.Status = domain.OrderStatusExpired
	stillWaiting := s.waiting(4)

	// ошибка возврата зависших заказов не мешает опросу
	s.mockService.EXPECT().RecoverStalePending(gomock.Any(), time.Minute, uint(10)).
		Return(1, errors.New("one of orders failed"))
	s.mockService.EXPECT().OrdersForPolling(gomock.Any(), uint(10)).Return(orders, nil)
	s.mockService.EXPECT().ResolveSMS(gomock.Any(), int64(1)).Return(&received, nil)
	s.mockService.EXPECT().ResolveSMS(gomock.Any(), int64(2)).Return(&expired, nil)
	s.mockService.EXPECT().ResolveSMS(gomock.Any(), int64(3)).
		Return(nil, provider.NewTransientError(domain.ProviderA, "get_sms", errors.New("timeout")))
	s.mockService.EXPECT().ResolveSMS(gomock.Any(), int64(4)).Return(&stillWaiting, nil)

	s.NoError(s.processor.process(s.T().Context()))
}

// TestWorker_RetryAfter Воркер выдерживает паузу Retry-After перед следующим заказом.
func (s *ProcessorTestSuite) TestWorker_RetryAfter() {
	s.processor.SetWorkers(1)
	orders := []domain.Order{s.waiting(1), s.waiting(2)}

	limited := provider.NewTransientError(domain.ProviderA, "get_sms", errors.New("too many requests"))
	limited.RetryAfter = 50 * time.Millisecond

	var firstAt, secondAt time.Time
	gomock.InOrder(
		s.mockService.EXPECT().ResolveSMS(gomock.Any(), int64(1)).
			DoAndReturn(func(context.Context, int64) (*domain.Order, error) {
				firstAt = time.Now()
				return nil, fmt.Errorf("resolve order 1: %w", limited)
			}),
		s.mockService.EXPECT().ResolveSMS(gomock.Any(), int64(2)).
			DoAndReturn(func(_ context.Context, id int64) (*domain.Order, error) {
				secondAt = time.Now()
				o := s.waiting(id)
				return &o, nil
			}),
	)

	results := s.processor.runWorkers(s.T().Context(), orders)

	s.Len(results, 2)
	s.GreaterOrEqual(secondAt.Sub(firstAt), limited.RetryAfter)
}

func (s *ProcessorTestSuite) TestRun_StopsOnCancel() {
	s.mockService.EXPECT().RecoverStalePending(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()
	s.mockService.EXPECT().OrdersForPolling(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	ctx, cancel := context.WithTimeout(s.T().Context(), 50*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		s.processor.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		s.Fail("processor did not stop")
	}
}

func TestRetryAfterOf(t *testing.T) {
	limited := provider.NewTransientError(domain.ProviderB, "get_sms", errors.New("429"))
	limited.RetryAfter = time.Second

	cases := []struct {
		name string
		err  error
		want time.Duration
	}{
		{name: "no error", err: nil, want: 0},
		{name: "plain error", err: errors.New("boom"), want: 0},
		{name: "provider error without pause", err: provider.NewPermanentError(domain.ProviderB, "get_sms", errors.New("x"))},
		{name: "wrapped retry after", err: fmt.Errorf("resolve: %w", limited), want: time.Second},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := retryAfterOf(tc.err); got != tc.want {
				t.Errorf("retryAfterOf() = %v, want %v", got, tc.want)
			}
		})
	}
}
