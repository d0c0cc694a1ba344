// Package memrepo хранилище в памяти с той же семантикой, что и pgrepo: условные обновления,
// уникальные ключи и транзакции с откатом.
package memrepo

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/fsdevblog/virtnum/internal/repository/repoargs"
	"github.com/fsdevblog/virtnum/pkg/uow"
)

type data struct {
	users    map[int64]domain.User
	services map[int64]domain.Service
	topups   map[int64]domain.Topup
	orders   map[int64]domain.Order
	entries  []domain.LedgerEntry
	seq      map[repoargs.RepositoryName]int64
}

func newData() *data {
	return &data{
		users:    make(map[int64]domain.User),
		services: make(map[int64]domain.Service),
		topups:   make(map[int64]domain.Topup),
		orders:   make(map[int64]domain.Order),
		seq:      make(map[repoargs.RepositoryName]int64),
	}
}

// clone копия для транзакции. Записи хранятся по значению, указатели внутри них не изменяются на месте.
func (d *data) clone() *data {
	return &data{
		users:    maps.Clone(d.users),
		services: maps.Clone(d.services),
		topups:   maps.Clone(d.topups),
		orders:   maps.Clone(d.orders),
		entries:  slices.Clone(d.entries),
		seq:      maps.Clone(d.seq),
	}
}

func (d *data) nextID(name repoargs.RepositoryName) int64 {
	d.seq[name]++
	return d.seq[name]
}

// access доступ репозитория к данным: под блокировкой хранилища или к копии внутри транзакции.
type access interface {
	with(fn func(d *data) error) error
}

type storeAccess struct {
	s *UnitOfWork
}

func (a storeAccess) with(fn func(d *data) error) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	return fn(a.s.data)
}

type txAccess struct {
	d *data
}

func (a txAccess) with(fn func(d *data) error) error {
	return fn(a.d)
}

// UnitOfWork реализация uow.UOW в памяти. Транзакции выполняются строго по очереди на копии данных,
// копия заменяет данные только при успешном завершении fn.
//
// Репозитории из GetRepository нельзя использовать внутри Do: они ждут ту же блокировку.
type UnitOfWork struct {
	mu   sync.Mutex
	data *data
}

func New() *UnitOfWork {
	return &UnitOfWork{data: newData()}
}

func (u *UnitOfWork) Do(ctx context.Context, fn func(context.Context, uow.TX) error) error {
	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}
	u.mu.Lock()
	defer u.mu.Unlock()

	snapshot := u.data.clone()
	if err := fn(ctx, &transaction{acc: txAccess{d: snapshot}, cache: make(map[uow.RepositoryName]uow.Repository)}); err != nil {
		return err
	}
	u.data = snapshot
	return nil
}

func (u *UnitOfWork) GetRepository(name uow.RepositoryName) (uow.Repository, error) {
	return newRepository(name, storeAccess{s: u})
}

type transaction struct {
	acc   access
	cache map[uow.RepositoryName]uow.Repository
}

func (t *transaction) Get(name uow.RepositoryName) (uow.Repository, error) {
	if repo, ok := t.cache[name]; ok {
		return repo, nil
	}
	repo, err := newRepository(name, t.acc)
	if err != nil {
		return nil, err
	}
	t.cache[name] = repo
	return repo, nil
}

func newRepository(name uow.RepositoryName, acc access) (uow.Repository, error) {
	switch repoargs.RepositoryName(name) {
	case repoargs.UserRepoName:
		return &UserRepository{acc: acc}, nil
	case repoargs.ServiceRepoName:
		return &ServiceRepository{acc: acc}, nil
	case repoargs.TopupRepoName:
		return &TopupRepository{acc: acc}, nil
	case repoargs.OrderRepoName:
		return &OrderRepository{acc: acc}, nil
	case repoargs.LedgerRepoName:
		return &LedgerRepository{acc: acc}, nil
	default:
		return nil, fmt.Errorf("%w: %s", uow.ErrRepositoryNotRegistered, name)
	}
}

func notFound(format string, args ...any) error {
	return fmt.Errorf("[memrepo/%s] %w", fmt.Sprintf(format, args...), domain.ErrRecordNotFound)
}

func duplicate(format string, args ...any) error {
	return fmt.Errorf("[memrepo/%s] %w", fmt.Sprintf(format, args...), domain.ErrDuplicateKey)
}
