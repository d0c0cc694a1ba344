package pgrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/fsdevblog/virtnum/internal/repository/repoargs"
	"github.com/fsdevblog/virtnum/pkg/uow"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const ledgerColumns = `id, created_at, user_id, delta, reason, reference_id`

type LedgerRepository struct {
	conn uow.DBTX
}

func NewLedgerRepository(conn uow.DBTX) *LedgerRepository {
	return &LedgerRepository{conn: conn}
}

// Append добавляет запись в журнал. Конфликт по (reason, reference_id) не прерывает транзакцию
// (ON CONFLICT DO NOTHING) и возвращается как domain.ErrDuplicateKey.
func (l *LedgerRepository) Append(ctx context.Context, args repoargs.LedgerEntryCreate) (*domain.LedgerEntry, error) {
	row := l.conn.QueryRow(ctx,
		`INSERT INTO ledger_entries (user_id, delta, reason, reference_id)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (reason, reference_id) DO NOTHING
		 RETURNING `+ledgerColumns,
		args.UserID, args.Delta, string(args.Reason), args.ReferenceID,
	)
	entry, err := scanLedgerEntry(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf(
			"[repository/appending ledger entry %s:%d] %w", args.Reason, args.ReferenceID, domain.ErrDuplicateKey,
		)
	}
	if err != nil {
		return nil, convertErr(err, "appending ledger entry %s:%d", args.Reason, args.ReferenceID)
	}
	return entry, nil
}

// GetByUserID возвращает журнал пользователя, новые записи первыми.
func (l *LedgerRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.LedgerEntry, error) {
	rows, err := l.conn.Query(ctx,
		`SELECT `+ledgerColumns+` FROM ledger_entries WHERE user_id = $1 ORDER BY id DESC`,
		userID,
	)
	if err != nil {
		return nil, convertErr(err, "getting ledger entries by userID `%d`", userID)
	}
	entries, err := collect(rows, scanLedgerEntry)
	if err != nil {
		return nil, convertErr(err, "scanning ledger entries of user `%d`", userID)
	}
	return entries, nil
}

func (l *LedgerRepository) SumByUserID(ctx context.Context, userID int64) (decimal.Decimal, error) {
	var sum decimal.Decimal
	if err := l.conn.QueryRow(ctx,
		`SELECT COALESCE(SUM(delta), 0) FROM ledger_entries WHERE user_id = $1`,
		userID,
	).Scan(&sum); err != nil {
		return decimal.Zero, convertErr(err, "summing ledger entries of user `%d`", userID)
	}
	return sum, nil
}

func scanLedgerEntry(row pgx.Row) (*domain.LedgerEntry, error) {
	var (
		e      domain.LedgerEntry
		reason string
	)
	if err := row.Scan(&e.ID, &e.CreatedAt, &e.UserID, &e.Delta, &reason, &e.ReferenceID); err != nil {
		return nil, err //nolint:wrapcheck
	}
	e.Reason = domain.LedgerReasonType(reason)
	return &e, nil
}
