package app

import (
	"context"
	"fmt"

	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/fsdevblog/virtnum/internal/repository/repoargs"
	"github.com/fsdevblog/virtnum/internal/service"
	"github.com/fsdevblog/virtnum/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// seedMemory заполняет пустое хранилище в памяти: администратор, пользователь и пара услуг. Пользователи
// выпускаются внешним сервисом аутентификации, поэтому без них локально ничего не купить.
func seedMemory(ctx context.Context, u uow.UOW, l *logrus.Logger) error {
	users, err := uow.GetRepositoryAs[service.UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	services, err := uow.GetRepositoryAs[service.ServiceRepository](u, uow.RepositoryName(repoargs.ServiceRepoName))
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	log := l.WithField("component", "seed")
	for _, role := range []domain.RoleType{domain.RoleAdmin, domain.RoleUser} {
		user, createErr := users.Create(ctx, repoargs.CreateUser{Role: role})
		if createErr != nil {
			return fmt.Errorf("seed %s user: %w", role, createErr)
		}
		log.WithFields(logrus.Fields{"userID": user.ID, "role": user.Role}).Info("user created")
	}

	catalog := []repoargs.CreateService{
		{
			Code:         "tg",
			Provider:     domain.ProviderA,
			ProviderCost: decimal.RequireFromString("8.00"),
			Price:        decimal.RequireFromString("15.00"),
			Active:       true,
		},
		{
			Code:         "wa",
			Provider:     domain.ProviderB,
			ProviderCost: decimal.RequireFromString("11.50"),
			Price:        decimal.RequireFromString("20.00"),
			Active:       true,
		},
	}
	for _, args := range catalog {
		svc, createErr := services.Create(ctx, args)
		if createErr != nil {
			return fmt.Errorf("seed service %s: %w", args.Code, createErr)
		}
		log.WithFields(logrus.Fields{"serviceID": svc.ID, "code": svc.Code}).Info("service created")
	}
	return nil
}
