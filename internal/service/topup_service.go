package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/fsdevblog/virtnum/internal/repository/repoargs"
	"github.com/fsdevblog/virtnum/pkg/uow"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// errTopupTransitionLost условный переход не применился: топап уже перевели в терминальный статус.
var errTopupTransitionLost = errors.New("topup transition lost")

// TopupConfirmation результат обработки подтверждения платежа.
type TopupConfirmation struct {
	Topup *domain.Topup
	// Replayed подтверждение уже было обработано ранее, повторно ничего не применялось.
	Replayed bool
}

// TopupService сверка пополнений кошелька с подтверждениями платежного шлюза.
type TopupService struct {
	ledger    *LedgerService
	topupRepo TopupRepository
	verifier  SignatureVerifier
	publisher EventPublisher
	metrics   MetricsCollector
	l         *logrus.Entry
	now       func() time.Time
}

type TopupServiceArgs struct {
	UOW       uow.UOW
	Ledger    *LedgerService
	Verifier  SignatureVerifier
	Publisher EventPublisher
	Metrics   MetricsCollector
	Logger    *logrus.Logger
}

func NewTopupService(args TopupServiceArgs) (*TopupService, error) {
	repo, err := uow.GetRepositoryAs[TopupRepository](args.UOW, uow.RepositoryName(repoargs.TopupRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &TopupService{
		ledger:    args.Ledger,
		topupRepo: repo,
		verifier:  args.Verifier,
		publisher: args.Publisher,
		metrics:   args.Metrics,
		l:         args.Logger.WithField("component", "topup"),
		now:       time.Now,
	}, nil
}

// Initiate создает ожидающее оплаты пополнение с уникальной внешней ссылкой для платежного шлюза.
func (t *TopupService) Initiate(ctx context.Context, userID int64, amount decimal.Decimal) (*domain.Topup, error) {
	if !amount.IsPositive() || !domain.IsMoneyScale(amount) {
		return nil, domain.ErrInvalidAmount
	}
	topup, err := t.topupRepo.Create(ctx, repoargs.CreateTopup{
		UserID:      userID,
		Amount:      amount,
		ExternalRef: uuid.NewString(),
	})
	if err != nil {
		return nil, fmt.Errorf("initiate topup: %w", err)
	}
	t.metrics.RecordTopupStatus(topup.Status)
	return topup, nil
}

// GetByUserID пополнения пользователя, новые первыми.
func (t *TopupService) GetByUserID(ctx context.Context, userID int64) ([]domain.Topup, error) {
	topups, err := t.topupRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("topups of user %d: %w", userID, err)
	}
	return topups, nil
}

// HandleConfirmation применяет подтверждение платежа ровно один раз.
//
// Алгоритм работы:
//  1. Проверяет подпись события до любых обращений к хранилищу (domain.ErrAuthenticationFailed).
//  2. Ищет пополнение по внешней ссылке (domain.ErrUnknownReference, если не найдено).
//  3. Пополнение уже в терминальном статусе - это повтор: сверяет сумму и ничего не применяет.
//  4. PAID: в одной транзакции переводит pending -> paid и зачисляет сумму с ключом (topup, topupID).
//  5. FAILED: переводит pending -> failed без движения средств.
//
// Если условный переход проиграл гонку с параллельной доставкой того же события, событие обрабатывается
// как повтор.
func (t *TopupService) HandleConfirmation(
	ctx context.Context,
	ev domain.ConfirmationEvent,
) (*TopupConfirmation, error) {
	if !t.verifier.Verify(ev) {
		return nil, domain.ErrAuthenticationFailed
	}
	if ev.Status != domain.ConfirmationPaid && ev.Status != domain.ConfirmationFailed {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidConfirmation, ev.Status)
	}

	l := t.l.WithFields(logrus.Fields{"externalRef": ev.ExternalRef, "status": ev.Status})

	topup, err := t.topupRepo.FindByExternalRef(ctx, ev.ExternalRef)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnknownReference, ev.ExternalRef)
		}
		return nil, fmt.Errorf("find topup: %w", err)
	}

	if !ev.Amount.Equal(topup.Amount) {
		l.WithFields(logrus.Fields{
			"expected": topup.Amount.StringFixed(2),
			"got":      ev.Amount.StringFixed(2),
		}).Warn("confirmation amount mismatch")
		return nil, fmt.Errorf("%w: topup %d", domain.ErrAmountMismatch, topup.ID)
	}

	if topup.Status.IsTerminal() {
		return t.replay(l, topup, ev), nil
	}

	updated, applyErr := t.apply(ctx, topup, ev)
	if applyErr != nil {
		if !errors.Is(applyErr, errTopupTransitionLost) {
			return nil, fmt.Errorf("apply confirmation for topup %d: %w", topup.ID, applyErr)
		}
		current, findErr := t.topupRepo.FindByExternalRef(ctx, ev.ExternalRef)
		if findErr != nil {
			return nil, fmt.Errorf("reload topup %d: %w", topup.ID, findErr)
		}
		return t.replay(l, current, ev), nil
	}

	l.WithFields(logrus.Fields{"topupID": updated.ID, "userID": updated.UserID}).Info("topup confirmed")
	t.metrics.RecordTopupStatus(updated.Status)
	if updated.Status == domain.TopupStatusPaid {
		t.metrics.RecordLedgerMutation(domain.LedgerReasonTopup, updated.Amount)
	}
	if pubErr := t.publisher.PublishTopupEvent(ctx, domain.NewTopupEvent(updated, t.now())); pubErr != nil {
		l.WithError(pubErr).Warn("publish topup event")
	}
	return &TopupConfirmation{Topup: updated}, nil
}

// apply переводит ожидающее пополнение в статус события, для PAID - вместе с зачислением средств.
func (t *TopupService) apply(ctx context.Context, topup *domain.Topup, ev domain.ConfirmationEvent) (*domain.Topup, error) {
	to := domain.TopupStatusFailed
	if ev.Status == domain.ConfirmationPaid {
		to = domain.TopupStatusPaid
	}

	var updated *domain.Topup
	err := t.ledger.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, err := uow.GetAs[TopupRepository](tx, uow.RepositoryName(repoargs.TopupRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		updated, err = repo.UpdateStatus(c, topup.ID, domain.TopupStatusPending, to)
		if err != nil {
			if errors.Is(err, domain.ErrRecordNotFound) {
				return errTopupTransitionLost
			}
			return err //nolint:wrapcheck
		}
		if to != domain.TopupStatusPaid {
			return nil
		}
		_, _, err = t.ledger.CreditTx(c, tx, LedgerMutation{
			UserID:      topup.UserID,
			Amount:      topup.Amount,
			Reason:      domain.LedgerReasonTopup,
			ReferenceID: topup.ID,
		})
		return err
	})
	return updated, err
}

func (t *TopupService) replay(l *logrus.Entry, topup *domain.Topup, ev domain.ConfirmationEvent) *TopupConfirmation {
	entry := l.WithFields(logrus.Fields{"topupID": topup.ID, "current": topup.Status})
	if (ev.Status == domain.ConfirmationPaid) != (topup.Status == domain.TopupStatusPaid) {
		entry.Warn("replayed confirmation disagrees with stored status")
	} else {
		entry.Debug("confirmation replay ignored")
	}
	return &TopupConfirmation{Topup: topup, Replayed: true}
}
