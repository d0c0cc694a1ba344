package memrepo

import (
	"context"
	"time"

	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/fsdevblog/virtnum/internal/repository/repoargs"
	"github.com/shopspring/decimal"
)

type UserRepository struct {
	acc access
}

func (r *UserRepository) Create(_ context.Context, args repoargs.CreateUser) (*domain.User, error) {
	var user domain.User
	err := r.acc.with(func(d *data) error {
		now := time.Now()
		role := args.Role
		if role == "" {
			role = domain.RoleUser
		}
		user = domain.User{
			ID:        d.nextID(repoargs.UserRepoName),
			CreatedAt: now,
			UpdatedAt: now,
			Balance:   decimal.Zero,
			Role:      role,
		}
		d.users[user.ID] = user
		return nil
	})
	return &user, err
}

func (r *UserRepository) FindByID(_ context.Context, id int64) (*domain.User, error) {
	var user domain.User
	err := r.acc.with(func(d *data) error {
		u, ok := d.users[id]
		if !ok {
			return notFound("finding user by id %d", id)
		}
		user = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) DecreaseBalance(_ context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	return r.changeBalance(userID, amount.Neg())
}

func (r *UserRepository) IncreaseBalance(_ context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	return r.changeBalance(userID, amount)
}

// changeBalance аналог UPDATE ... SET balance = balance + delta WHERE balance + delta >= 0.
func (r *UserRepository) changeBalance(userID int64, delta decimal.Decimal) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := r.acc.with(func(d *data) error {
		u, ok := d.users[userID]
		if !ok {
			return notFound("changing balance of user %d", userID)
		}
		next := u.Balance.Add(delta)
		if next.IsNegative() {
			return domain.ErrInsufficientBalance
		}
		u.Balance = next
		u.UpdatedAt = time.Now()
		d.users[userID] = u
		balance = next
		return nil
	})
	return balance, err
}
