package pgrepo

import (
	"context"

	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/fsdevblog/virtnum/internal/repository/repoargs"
	"github.com/fsdevblog/virtnum/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const topupColumns = `id, created_at, updated_at, user_id, amount, external_ref, status`

type TopupRepository struct {
	conn uow.DBTX
}

func NewTopupRepository(conn uow.DBTX) *TopupRepository {
	return &TopupRepository{conn: conn}
}

// Create создает пополнение в статусе pending. Повтор external_ref возвращает domain.ErrDuplicateKey.
func (t *TopupRepository) Create(ctx context.Context, args repoargs.CreateTopup) (*domain.Topup, error) {
	row := t.conn.QueryRow(ctx,
		`INSERT INTO topups (user_id, amount, external_ref, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+topupColumns,
		args.UserID, args.Amount, args.ExternalRef, string(domain.TopupStatusPending),
	)
	topup, err := scanTopup(row)
	if err != nil {
		return nil, convertErr(err, "creating topup with ref `%s`", args.ExternalRef)
	}
	return topup, nil
}

func (t *TopupRepository) FindByExternalRef(ctx context.Context, externalRef string) (*domain.Topup, error) {
	topup, err := scanTopup(t.conn.QueryRow(ctx,
		`SELECT `+topupColumns+` FROM topups WHERE external_ref = $1`,
		externalRef,
	))
	if err != nil {
		return nil, convertErr(err, "finding topup by ref `%s`", externalRef)
	}
	return topup, nil
}

func (t *TopupRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Topup, error) {
	rows, err := t.conn.Query(ctx,
		`SELECT `+topupColumns+` FROM topups WHERE user_id = $1 ORDER BY id DESC`,
		userID,
	)
	if err != nil {
		return nil, convertErr(err, "getting topups by userID `%d`", userID)
	}
	topups, err := collect(rows, scanTopup)
	if err != nil {
		return nil, convertErr(err, "scanning topups of user `%d`", userID)
	}
	return topups, nil
}

func (t *TopupRepository) UpdateStatus(
	ctx context.Context,
	id int64,
	from, to domain.TopupStatusType,
) (*domain.Topup, error) {
	row := t.conn.QueryRow(ctx,
		`UPDATE topups SET status = $3, updated_at = now()
		 WHERE id = $1 AND status = $2
		 RETURNING `+topupColumns,
		id, string(from), string(to),
	)
	topup, err := scanTopup(row)
	if err != nil {
		return nil, convertErr(err, "updating topup %d status %s -> %s", id, from, to)
	}
	return topup, nil
}

func scanTopup(row pgx.Row) (*domain.Topup, error) {
	var (
		t      domain.Topup
		status string
	)
	if err := row.Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt, &t.UserID, &t.Amount, &t.ExternalRef, &status); err != nil {
		return nil, err //nolint:wrapcheck
	}
	t.Status = domain.TopupStatusType(status)
	return &t, nil
}
