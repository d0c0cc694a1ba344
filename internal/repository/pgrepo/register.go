package pgrepo

import (
	"fmt"

	"github.com/fsdevblog/virtnum/internal/repository/repoargs"
	"github.com/fsdevblog/virtnum/pkg/uow"
)

// Register регистрирует все postgres репозитории в единице работы.
func Register(u *uow.UnitOfWork) error {
	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.UserRepoName: func(conn uow.DBTX) uow.Repository {
			return NewUserRepository(conn)
		},
		repoargs.ServiceRepoName: func(conn uow.DBTX) uow.Repository {
			return NewServiceRepository(conn)
		},
		repoargs.TopupRepoName: func(conn uow.DBTX) uow.Repository {
			return NewTopupRepository(conn)
		},
		repoargs.OrderRepoName: func(conn uow.DBTX) uow.Repository {
			return NewOrderRepository(conn)
		},
		repoargs.LedgerRepoName: func(conn uow.DBTX) uow.Repository {
			return NewLedgerRepository(conn)
		},
	}
	for name, factory := range factories {
		if err := u.Register(uow.RepositoryName(name), factory); err != nil {
			return fmt.Errorf("register %s repository: %w", name, err)
		}
	}
	return nil
}
