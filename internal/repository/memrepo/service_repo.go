package memrepo

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/fsdevblog/virtnum/internal/repository/repoargs"
	"github.com/shopspring/decimal"
)

type ServiceRepository struct {
	acc access
}

func (r *ServiceRepository) Create(_ context.Context, args repoargs.CreateService) (*domain.Service, error) {
	var svc domain.Service
	err := r.acc.with(func(d *data) error {
		for _, s := range d.services {
			if s.Code == args.Code {
				return duplicate("creating service with code `%s`", args.Code)
			}
		}
		now := time.Now()
		svc = domain.Service{
			ID:           d.nextID(repoargs.ServiceRepoName),
			CreatedAt:    now,
			UpdatedAt:    now,
			Code:         args.Code,
			Provider:     args.Provider,
			ProviderCost: args.ProviderCost,
			Price:        args.Price,
			Active:       args.Active,
		}
		d.services[svc.ID] = svc
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *ServiceRepository) FindByID(_ context.Context, id int64) (*domain.Service, error) {
	var svc domain.Service
	err := r.acc.with(func(d *data) error {
		s, ok := d.services[id]
		if !ok {
			return notFound("finding service by id %d", id)
		}
		svc = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *ServiceRepository) List(_ context.Context) ([]domain.Service, error) {
	var services []domain.Service
	err := r.acc.with(func(d *data) error {
		for _, s := range d.services {
			services = append(services, s)
		}
		return nil
	})
	slices.SortFunc(services, func(a, b domain.Service) int { return cmp.Compare(a.ID, b.ID) })
	return services, err
}

func (r *ServiceRepository) UpdatePrice(_ context.Context, id int64, price decimal.Decimal) (*domain.Service, error) {
	var svc domain.Service
	err := r.acc.with(func(d *data) error {
		s, ok := d.services[id]
		if !ok {
			return notFound("updating price of service %d", id)
		}
		s.Price = price
		s.UpdatedAt = time.Now()
		d.services[id] = s
		svc = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &svc, nil
}
