package pgrepo

import (
	"context"
	"errors"

	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/fsdevblog/virtnum/internal/repository/repoargs"
	"github.com/fsdevblog/virtnum/pkg/uow"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const userColumns = `id, created_at, updated_at, balance, role`

type UserRepository struct {
	conn uow.DBTX
}

func NewUserRepository(conn uow.DBTX) *UserRepository {
	return &UserRepository{conn: conn}
}

// Create создает пользователя с нулевым балансом.
func (u *UserRepository) Create(ctx context.Context, args repoargs.CreateUser) (*domain.User, error) {
	role := args.Role
	if role == "" {
		role = domain.RoleUser
	}
	row := u.conn.QueryRow(ctx,
		`INSERT INTO users (role) VALUES ($1) RETURNING `+userColumns,
		string(role),
	)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "creating user")
	}
	return user, nil
}

func (u *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := scanUser(u.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, convertErr(err, "finding user by id %d", id)
	}
	return user, nil
}

// DecreaseBalance списывает amount одним условным UPDATE. Если строка не обновилась, проверяет существование
// пользователя, чтобы отличить domain.ErrInsufficientBalance от domain.ErrRecordNotFound.
func (u *UserRepository) DecreaseBalance(
	ctx context.Context,
	userID int64,
	amount decimal.Decimal,
) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := u.conn.QueryRow(ctx,
		`UPDATE users SET balance = balance - $2, updated_at = now()
		 WHERE id = $1 AND balance >= $2
		 RETURNING balance`,
		userID, amount,
	).Scan(&balance)
	if err == nil {
		return balance, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, convertErr(err, "decreasing balance of user %d", userID)
	}

	var exists bool
	if existsErr := u.conn.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, userID).
		Scan(&exists); existsErr != nil {
		return decimal.Zero, convertErr(existsErr, "checking user %d", userID)
	}
	if !exists {
		return decimal.Zero, newNotFound("decreasing balance of user %d", userID)
	}
	return decimal.Zero, domain.ErrInsufficientBalance
}

func (u *UserRepository) IncreaseBalance(
	ctx context.Context,
	userID int64,
	amount decimal.Decimal,
) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := u.conn.QueryRow(ctx,
		`UPDATE users SET balance = balance + $2, updated_at = now() WHERE id = $1 RETURNING balance`,
		userID, amount,
	).Scan(&balance)
	if err != nil {
		return decimal.Zero, convertErr(err, "increasing balance of user %d", userID)
	}
	return balance, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		user domain.User
		role string
	)
	if err := row.Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt, &user.Balance, &role); err != nil {
		return nil, err //nolint:wrapcheck
	}
	user.Role = domain.RoleType(role)
	return &user, nil
}
