package service

import (
	"io"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/fsdevblog/virtnum/internal/payment"
	"github.com/fsdevblog/virtnum/internal/provider"
	"github.com/fsdevblog/virtnum/internal/provider/fake"
	"github.com/fsdevblog/virtnum/internal/repository/memrepo"
	"github.com/fsdevblog/virtnum/internal/repository/repoargs"
	"github.com/fsdevblog/virtnum/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

const testPaymentSecret = "payment-secret"

// testEnv сервисы поверх хранилища в памяти и фейкового провайдера.
type testEnv struct {
	t        *testing.T
	store    *memrepo.UnitOfWork
	adapter  *fake.Adapter
	signer   *payment.HMACVerifier
	services *AppServices
	refSeq   int64
}

func testOrderOptions() OrderOptions {
	return OrderOptions{
		ProviderTimeout:     time.Second,
		ProviderRetries:     3,
		ProviderBackoff:     time.Millisecond,
		OrderTTL:            20 * time.Minute,
		MaxPollErrors:       3,
		CompensationTimeout: time.Second,
		CompensationBackoff: time.Millisecond,
	}
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	adapter, err := fake.New(domain.ProviderA)
	require.NoError(t, err)

	l := logrus.New()
	l.SetOutput(io.Discard)

	store := memrepo.New()
	signer := payment.NewHMACVerifier(testPaymentSecret)
	services, err := Factory(FactoryArgs{
		UOW:          store,
		Providers:    provider.NewRegistry().Register(domain.ProviderA, adapter),
		Verifier:     signer,
		Logger:       l,
		OrderOptions: testOrderOptions(),
	})
	require.NoError(t, err)

	return &testEnv{
		t:        t,
		store:    store,
		adapter:  adapter,
		signer:   signer,
		services: services,
		refSeq:   1000,
	}
}

// newUser создает пользователя и пополняет баланс на amount через журнал.
func (e *testEnv) newUser(amount string) *domain.User {
	e.t.Helper()
	repo, err := uow.GetRepositoryAs[UserRepository](e.store, uow.RepositoryName(repoargs.UserRepoName))
	require.NoError(e.t, err)
	user, err := repo.Create(e.t.Context(), repoargs.CreateUser{})
	require.NoError(e.t, err)

	if value := decimal.RequireFromString(amount); value.IsPositive() {
		e.refSeq++
		_, err = e.services.Ledger.Credit(e.t.Context(), LedgerMutation{
			UserID:      user.ID,
			Amount:      value,
			Reason:      domain.LedgerReasonTopup,
			ReferenceID: e.refSeq,
		})
		require.NoError(e.t, err)
	}
	return user
}

func (e *testEnv) newService(price string, active bool) *domain.Service {
	e.t.Helper()
	repo, err := uow.GetRepositoryAs[ServiceRepository](e.store, uow.RepositoryName(repoargs.ServiceRepoName))
	require.NoError(e.t, err)
	svc, err := repo.Create(e.t.Context(), repoargs.CreateService{
		Code:         gofakeit.LetterN(8),
		Provider:     domain.ProviderA,
		ProviderCost: decimal.RequireFromString("0.10"),
		Price:        decimal.RequireFromString(price),
		Active:       active,
	})
	require.NoError(e.t, err)
	return svc
}

func (e *testEnv) balance(userID int64) decimal.Decimal {
	e.t.Helper()
	b, err := e.services.Ledger.Balance(e.t.Context(), userID)
	require.NoError(e.t, err)
	return b
}

func (e *testEnv) requireBalance(userID int64, want string) {
	e.t.Helper()
	got := e.balance(userID)
	require.Truef(e.t, decimal.RequireFromString(want).Equal(got), "balance: want %s, got %s", want, got)
	require.NoError(e.t, e.services.Ledger.Audit(e.t.Context(), userID))
}

func (e *testEnv) userOrders(userID int64) []domain.Order {
	e.t.Helper()
	orders, err := e.services.Orders.GetByUserID(e.t.Context(), userID)
	require.NoError(e.t, err)
	return orders
}

func (e *testEnv) entries(userID int64, reason domain.LedgerReasonType) []domain.LedgerEntry {
	e.t.Helper()
	all, err := e.services.Ledger.Entries(e.t.Context(), userID)
	require.NoError(e.t, err)
	var res []domain.LedgerEntry
	for _, en := range all {
		if en.Reason == reason {
			res = append(res, en)
		}
	}
	return res
}
