package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/fsdevblog/virtnum/internal/repository/repoargs"
	"github.com/fsdevblog/virtnum/pkg/uow"
	"github.com/shopspring/decimal"
)

const (
	defaultLedgerAttempts uint = 3
	defaultLedgerBackoff       = 20 * time.Millisecond
)

// LedgerMutation команда изменения баланса. Amount всегда положительный, знак определяется операцией.
type LedgerMutation struct {
	UserID      int64
	Amount      decimal.Decimal
	Reason      domain.LedgerReasonType
	ReferenceID int64
}

// LedgerService кошелек пользователя: атомарное изменение баланса и журнал аудита.
type LedgerService struct {
	uow            uow.UOW
	userRepo       UserRepository
	ledgerRepo     LedgerRepository
	metrics        MetricsCollector
	conflictPolicy backoffPolicy
}

func NewLedgerService(u uow.UOW, metrics MetricsCollector) (*LedgerService, error) {
	userRepo, err := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	ledgerRepo, err := uow.GetRepositoryAs[LedgerRepository](u, uow.RepositoryName(repoargs.LedgerRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &LedgerService{
		uow:            u,
		userRepo:       userRepo,
		ledgerRepo:     ledgerRepo,
		metrics:        metrics,
		conflictPolicy: backoffPolicy{Attempts: defaultLedgerAttempts, Base: defaultLedgerBackoff},
	}, nil
}

// SetConflictRetries устанавливает количество попыток транзакции при конфликте конкурентного доступа.
func (l *LedgerService) SetConflictRetries(attempts uint, backoff time.Duration) *LedgerService {
	l.conflictPolicy = backoffPolicy{Attempts: attempts, Base: backoff}
	return l
}

// Debit списывает средства в собственной транзакции. Возвращает новый баланс или
// domain.ErrInsufficientBalance, если средств не хватает.
func (l *LedgerService) Debit(ctx context.Context, m LedgerMutation) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := l.Do(ctx, func(c context.Context, tx uow.TX) error {
		var err error
		balance, err = l.DebitTx(c, tx, m)
		return err
	})
	if err != nil {
		return decimal.Zero, fmt.Errorf("debit user %d: %w", m.UserID, err)
	}
	l.metrics.RecordLedgerMutation(m.Reason, m.Amount)
	return balance, nil
}

// Credit зачисляет средства в собственной транзакции. Повторное зачисление с теми же (Reason, ReferenceID)
// ничего не меняет и возвращает текущий баланс.
func (l *LedgerService) Credit(ctx context.Context, m LedgerMutation) (decimal.Decimal, error) {
	var balance decimal.Decimal
	var applied bool
	err := l.Do(ctx, func(c context.Context, tx uow.TX) error {
		var err error
		balance, applied, err = l.CreditTx(c, tx, m)
		return err
	})
	if err != nil {
		return decimal.Zero, fmt.Errorf("credit user %d: %w", m.UserID, err)
	}
	if applied {
		l.metrics.RecordLedgerMutation(m.Reason, m.Amount)
	}
	return balance, nil
}

// DebitTx списание внутри транзакции вызывающей стороны. Проверка баланса и уменьшение выполняются
// одним условным обновлением.
func (l *LedgerService) DebitTx(ctx context.Context, tx uow.TX, m LedgerMutation) (decimal.Decimal, error) {
	if !m.Amount.IsPositive() || !domain.IsMoneyScale(m.Amount) {
		return decimal.Zero, domain.ErrInvalidAmount
	}
	userRepo, ledgerRepo, err := l.txRepos(tx)
	if err != nil {
		return decimal.Zero, err
	}

	balance, err := userRepo.DecreaseBalance(ctx, m.UserID, m.Amount)
	if err != nil {
		return decimal.Zero, err //nolint:wrapcheck
	}
	if _, err = ledgerRepo.Append(ctx, repoargs.LedgerEntryCreate{
		UserID:      m.UserID,
		Delta:       m.Amount.Neg(),
		Reason:      m.Reason,
		ReferenceID: m.ReferenceID,
	}); err != nil {
		return decimal.Zero, err //nolint:wrapcheck
	}
	return balance, nil
}

// CreditTx зачисление внутри транзакции вызывающей стороны. applied == false означает, что зачисление
// с такими (Reason, ReferenceID) уже было.
func (l *LedgerService) CreditTx(
	ctx context.Context,
	tx uow.TX,
	m LedgerMutation,
) (decimal.Decimal, bool, error) {
	if !m.Amount.IsPositive() || !domain.IsMoneyScale(m.Amount) {
		return decimal.Zero, false, domain.ErrInvalidAmount
	}
	userRepo, ledgerRepo, err := l.txRepos(tx)
	if err != nil {
		return decimal.Zero, false, err
	}

	_, appendErr := ledgerRepo.Append(ctx, repoargs.LedgerEntryCreate{
		UserID:      m.UserID,
		Delta:       m.Amount,
		Reason:      m.Reason,
		ReferenceID: m.ReferenceID,
	})
	if appendErr != nil {
		if !errors.Is(appendErr, domain.ErrDuplicateKey) {
			return decimal.Zero, false, appendErr //nolint:wrapcheck
		}
		user, findErr := userRepo.FindByID(ctx, m.UserID)
		if findErr != nil {
			return decimal.Zero, false, findErr //nolint:wrapcheck
		}
		return user.Balance, false, nil
	}

	balance, err := userRepo.IncreaseBalance(ctx, m.UserID, m.Amount)
	if err != nil {
		return decimal.Zero, false, err //nolint:wrapcheck
	}
	return balance, true, nil
}

// Balance текущий баланс пользователя.
func (l *LedgerService) Balance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	user, err := l.userRepo.FindByID(ctx, userID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("balance of user %d: %w", userID, err)
	}
	return user.Balance, nil
}

// Entries журнал движения средств пользователя, новые записи первыми.
func (l *LedgerService) Entries(ctx context.Context, userID int64) ([]domain.LedgerEntry, error) {
	entries, err := l.ledgerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("ledger entries of user %d: %w", userID, err)
	}
	return entries, nil
}

// Audit сверяет баланс пользователя с суммой его записей журнала.
// Возвращает domain.ErrLedgerInconsistent при расхождении или отрицательном балансе.
func (l *LedgerService) Audit(ctx context.Context, userID int64) error {
	return l.uow.Do(ctx, func(c context.Context, tx uow.TX) error { //nolint:wrapcheck
		userRepo, ledgerRepo, err := l.txRepos(tx)
		if err != nil {
			return err
		}
		user, err := userRepo.FindByID(c, userID)
		if err != nil {
			return fmt.Errorf("audit user %d: %w", userID, err)
		}
		sum, err := ledgerRepo.SumByUserID(c, userID)
		if err != nil {
			return fmt.Errorf("audit user %d: %w", userID, err)
		}
		if !user.Balance.Equal(sum) || user.Balance.IsNegative() {
			return fmt.Errorf("%w: user %d balance %s, entries sum %s",
				domain.ErrLedgerInconsistent, userID, user.Balance.StringFixed(2), sum.StringFixed(2))
		}
		return nil
	})
}

// Do выполняет fn в единице работы, повторяя ее целиком при конфликте конкурентного доступа.
// Исчерпав попытки, возвращает ошибку с domain.ErrLedgerConflict.
func (l *LedgerService) Do(ctx context.Context, fn func(context.Context, uow.TX) error) error {
	err := retry(ctx, l.conflictPolicy, l.isConflict, func(c context.Context) error {
		return l.uow.Do(c, fn)
	})
	if err != nil && isConflict(err) && !errors.Is(err, domain.ErrLedgerConflict) {
		return errors.Join(domain.ErrLedgerConflict, err)
	}
	return err
}

func (l *LedgerService) isConflict(err error) bool {
	if isConflict(err) {
		l.metrics.RecordLedgerConflict()
		return true
	}
	return false
}

func isConflict(err error) bool {
	return errors.Is(err, domain.ErrLedgerConflict) || errors.Is(err, uow.ErrConflict)
}

func (l *LedgerService) txRepos(tx uow.TX) (UserRepository, LedgerRepository, error) {
	userRepo, err := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}
	ledgerRepo, err := uow.GetAs[LedgerRepository](tx, uow.RepositoryName(repoargs.LedgerRepoName))
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}
	return userRepo, ledgerRepo, nil
}
