package pgrepo

import (
	"context"
	"errors"
	"io"
	"os"
	"sync"
	"testing"

	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/fsdevblog/virtnum/internal/repository/repoargs"
	"github.com/fsdevblog/virtnum/pkg/uow"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

// testDSNEnv база для тестов репозиториев. Без нее набор пропускается. Таблицы очищаются перед каждым тестом.
const testDSNEnv = "TEST_DATABASE_URI"

type PostgresTestSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	uow  *uow.UnitOfWork
}

func TestPostgresSuite(t *testing.T) {
	suite.Run(t, new(PostgresTestSuite))
}

func (s *PostgresTestSuite) SetupSuite() {
	dsn := os.Getenv(testDSNEnv)
	if dsn == "" {
		s.T().Skipf("%s is not set", testDSNEnv)
	}

	l := logrus.New()
	l.SetOutput(io.Discard)

	pool, err := Connect(s.T().Context(), "../../../migrations", dsn, l)
	s.Require().NoError(err)
	s.pool = pool

	s.uow = uow.NewUnitOfWork(pool)
	s.Require().NoError(Register(s.uow))
}

func (s *PostgresTestSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *PostgresTestSuite) SetupTest() {
	_, err := s.pool.Exec(s.T().Context(),
		`TRUNCATE ledger_entries, orders, topups, services, users RESTART IDENTITY CASCADE`)
	s.Require().NoError(err)
}

func (s *PostgresTestSuite) newUser(balance string) *domain.User {
	users := NewUserRepository(s.pool)
	user, err := users.Create(s.T().Context(), repoargs.CreateUser{})
	s.Require().NoError(err)
	if amount := decimal.RequireFromString(balance); amount.IsPositive() {
		_, err = users.IncreaseBalance(s.T().Context(), user.ID, amount)
		s.Require().NoError(err)
	}
	return user
}

func (s *PostgresTestSuite) newWaitingOrder(userID int64, providerOrderID string) *domain.Order {
	ctx := s.T().Context()
	svc, err := NewServiceRepository(s.pool).Create(ctx, repoargs.CreateService{
		Code:     "svc-" + providerOrderID,
		Provider: domain.ProviderA,
		Price:    decimal.RequireFromString("1.50"),
		Active:   true,
	})
	s.Require().NoError(err)

	orders := NewOrderRepository(s.pool)
	order, err := orders.Create(ctx, repoargs.CreateOrder{
		UserID:    userID,
		ServiceID: svc.ID,
		Provider:  svc.Provider,
		Price:     svc.Price,
	})
	s.Require().NoError(err)

	number := "+15550000001"
	order, err = orders.Transition(ctx, repoargs.OrderTransition{
		ID:              order.ID,
		From:            domain.OrderStatusPending,
		To:              domain.OrderStatusWaiting,
		ProviderOrderID: &providerOrderID,
		VirtualNumber:   &number,
	})
	s.Require().NoError(err)
	return order
}

func (s *PostgresTestSuite) TestConcurrentDecreaseBalance() {
	user := s.newUser("10.00")
	amount := decimal.RequireFromString("3.00")

	const workers = 10
	var (
		wg           sync.WaitGroup
		mu           sync.Mutex
		succeeded    int
		insufficient int
	)
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			err := s.uow.Do(context.Background(), func(ctx context.Context, tx uow.TX) error {
				users, err := uow.GetAs[*UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
				if err != nil {
					return err
				}
				_, err = users.DecreaseBalance(ctx, user.ID, amount)
				return err
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, domain.ErrInsufficientBalance):
				insufficient++
			}
		}()
	}
	wg.Wait()

	s.Equal(3, succeeded)
	s.Equal(workers-3, insufficient)

	got, err := NewUserRepository(s.pool).FindByID(s.T().Context(), user.ID)
	s.Require().NoError(err)
	s.Equal("1.00", got.Balance.StringFixed(2))
}

func (s *PostgresTestSuite) TestDecreaseBalanceUnknownUser() {
	_, err := NewUserRepository(s.pool).DecreaseBalance(s.T().Context(), 404, decimal.NewFromInt(1))
	s.ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *PostgresTestSuite) TestLedgerDuplicateKeepsTransaction() {
	user := s.newUser("0")
	entry := repoargs.LedgerEntryCreate{
		UserID:      user.ID,
		Delta:       decimal.RequireFromString("5.00"),
		Reason:      domain.LedgerReasonTopup,
		ReferenceID: 1,
	}

	err := s.uow.Do(s.T().Context(), func(ctx context.Context, tx uow.TX) error {
		ledger, err := uow.GetAs[*LedgerRepository](tx, uow.RepositoryName(repoargs.LedgerRepoName))
		if err != nil {
			return err
		}
		users, err := uow.GetAs[*UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if err != nil {
			return err
		}
		if _, err = ledger.Append(ctx, entry); err != nil {
			return err
		}
		// повтор не прерывает транзакцию, следующие запросы выполняются
		if _, err = ledger.Append(ctx, entry); !errors.Is(err, domain.ErrDuplicateKey) {
			return errors.Join(errors.New("duplicate expected"), err)
		}
		_, err = users.IncreaseBalance(ctx, user.ID, entry.Delta)
		return err
	})
	s.Require().NoError(err)

	ledger := NewLedgerRepository(s.pool)
	entries, err := ledger.GetByUserID(s.T().Context(), user.ID)
	s.Require().NoError(err)
	s.Len(entries, 1)
	sum, err := ledger.SumByUserID(s.T().Context(), user.ID)
	s.Require().NoError(err)
	s.Equal("5.00", sum.StringFixed(2))
}

func (s *PostgresTestSuite) TestConcurrentTransitionsSingleWinner() {
	user := s.newUser("0")
	order := s.newWaitingOrder(user.ID, "p-1")
	orders := NewOrderRepository(s.pool)

	targets := []domain.OrderStatusType{
		domain.OrderStatusCancelled,
		domain.OrderStatusExpired,
		domain.OrderStatusCancelled,
		domain.OrderStatusExpired,
	}
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		applied int
		lost    int
	)
	wg.Add(len(targets))
	for _, to := range targets {
		go func() {
			defer wg.Done()
			_, err := orders.Transition(context.Background(), repoargs.OrderTransition{
				ID:   order.ID,
				From: domain.OrderStatusWaiting,
				To:   to,
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				applied++
			case errors.Is(err, domain.ErrRecordNotFound):
				lost++
			}
		}()
	}
	wg.Wait()

	s.Equal(1, applied)
	s.Equal(len(targets)-1, lost)
}

func (s *PostgresTestSuite) TestReceivedIsFinal() {
	user := s.newUser("0")
	order := s.newWaitingOrder(user.ID, "p-2")
	orders := NewOrderRepository(s.pool)

	code := "123456"
	received, err := orders.Transition(s.T().Context(), repoargs.OrderTransition{
		ID:      order.ID,
		From:    domain.OrderStatusWaiting,
		To:      domain.OrderStatusReceived,
		SMSCode: &code,
	})
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusReceived, received.Status)

	_, err = orders.Transition(s.T().Context(), repoargs.OrderTransition{
		ID:   order.ID,
		From: domain.OrderStatusWaiting,
		To:   domain.OrderStatusExpired,
	})
	s.ErrorIs(err, domain.ErrRecordNotFound)

	current, err := orders.FindByID(s.T().Context(), order.ID)
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusReceived, current.Status)
	s.Require().NotNil(current.SMSCode)
	s.Equal(code, *current.SMSCode)
}

func (s *PostgresTestSuite) TestProviderOrderIDUnique() {
	user := s.newUser("0")
	s.newWaitingOrder(user.ID, "p-3")

	ctx := s.T().Context()
	orders := NewOrderRepository(s.pool)
	svc, err := NewServiceRepository(s.pool).Create(ctx, repoargs.CreateService{
		Code:     "svc-dup",
		Provider: domain.ProviderA,
		Price:    decimal.RequireFromString("1.50"),
		Active:   true,
	})
	s.Require().NoError(err)
	second, err := orders.Create(ctx, repoargs.CreateOrder{
		UserID:    user.ID,
		ServiceID: svc.ID,
		Provider:  svc.Provider,
		Price:     svc.Price,
	})
	s.Require().NoError(err)

	dup := "p-3"
	_, err = orders.Transition(ctx, repoargs.OrderTransition{
		ID:              second.ID,
		From:            domain.OrderStatusPending,
		To:              domain.OrderStatusWaiting,
		ProviderOrderID: &dup,
	})
	s.ErrorIs(err, domain.ErrDuplicateKey)

	current, err := orders.FindByID(ctx, second.ID)
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusPending, current.Status)
}
