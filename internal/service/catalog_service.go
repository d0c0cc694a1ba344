package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/fsdevblog/virtnum/internal/repository/repoargs"
	"github.com/fsdevblog/virtnum/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// CatalogService каталог услуг с кэшем для чтения.
type CatalogService struct {
	serviceRepo ServiceRepository
	cache       ServiceCache
	l           *logrus.Entry
}

// NewCatalogService создает каталог. cache может быть nil, тогда чтение идет напрямую из репозитория.
func NewCatalogService(u uow.UOW, cache ServiceCache, l *logrus.Logger) (*CatalogService, error) {
	repo, err := uow.GetRepositoryAs[ServiceRepository](u, uow.RepositoryName(repoargs.ServiceRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &CatalogService{
		serviceRepo: repo,
		cache:       cache,
		l:           l.WithField("component", "catalog"),
	}, nil
}

// Lookup возвращает услугу по id или domain.ErrServiceNotFound. Ошибки кэша не мешают чтению из БД.
func (c *CatalogService) Lookup(ctx context.Context, serviceID int64) (*domain.Service, error) {
	if c.cache != nil {
		cached, err := c.cache.Get(ctx, serviceID)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, domain.ErrRecordNotFound) {
			c.l.WithError(err).WithField("serviceID", serviceID).Warn("catalog cache get")
		}
	}

	svc, err := c.serviceRepo.FindByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrServiceNotFound, serviceID)
		}
		return nil, fmt.Errorf("lookup service %d: %w", serviceID, err)
	}

	// Add не перетирает запись, которую успел обновить SetPrice после нашего чтения из БД.
	if c.cache != nil {
		if addErr := c.cache.Add(ctx, svc); addErr != nil {
			c.l.WithError(addErr).WithField("serviceID", serviceID).Warn("catalog cache add")
		}
	}
	return svc, nil
}

// List все услуги каталога.
func (c *CatalogService) List(ctx context.Context) ([]domain.Service, error) {
	services, err := c.serviceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return services, nil
}

// SetPrice устанавливает цену продажи услуги. Уже идущие заказы продолжают использовать цену,
// сохраненную в заказе.
func (c *CatalogService) SetPrice(ctx context.Context, serviceID int64, price decimal.Decimal) (*domain.Service, error) {
	if price.IsNegative() || !domain.IsMoneyScale(price) {
		return nil, domain.ErrInvalidAmount
	}
	svc, err := c.serviceRepo.UpdatePrice(ctx, serviceID, price)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrServiceNotFound, serviceID)
		}
		return nil, fmt.Errorf("set price of service %d: %w", serviceID, err)
	}

	if c.cache != nil {
		c.refreshCache(ctx, svc)
	}
	c.l.WithFields(logrus.Fields{"serviceID": serviceID, "price": price.StringFixed(2)}).Info("price updated")
	return svc, nil
}

// refreshCache записывает в кэш свежую версию услуги. Если записать не удалось, удаляет устаревшую.
func (c *CatalogService) refreshCache(ctx context.Context, svc *domain.Service) {
	l := c.l.WithField("serviceID", svc.ID)
	setErr := c.cache.Set(ctx, svc)
	if setErr == nil {
		return
	}
	l.WithError(setErr).Warn("catalog cache set")
	if delErr := c.cache.Delete(ctx, svc.ID); delErr != nil {
		l.WithError(delErr).Error("catalog cache invalidate")
	}
}
