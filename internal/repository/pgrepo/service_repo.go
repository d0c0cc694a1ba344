package pgrepo

import (
	"context"

	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/fsdevblog/virtnum/internal/repository/repoargs"
	"github.com/fsdevblog/virtnum/pkg/uow"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const serviceColumns = `id, created_at, updated_at, code, provider, provider_cost, price, active`

type ServiceRepository struct {
	conn uow.DBTX
}

func NewServiceRepository(conn uow.DBTX) *ServiceRepository {
	return &ServiceRepository{conn: conn}
}

func (s *ServiceRepository) Create(ctx context.Context, args repoargs.CreateService) (*domain.Service, error) {
	row := s.conn.QueryRow(ctx,
		`INSERT INTO services (code, provider, provider_cost, price, active)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+serviceColumns,
		args.Code, string(args.Provider), args.ProviderCost, args.Price, args.Active,
	)
	svc, err := scanService(row)
	if err != nil {
		return nil, convertErr(err, "creating service `%s`", args.Code)
	}
	return svc, nil
}

func (s *ServiceRepository) FindByID(ctx context.Context, id int64) (*domain.Service, error) {
	svc, err := scanService(s.conn.QueryRow(ctx, `SELECT `+serviceColumns+` FROM services WHERE id = $1`, id))
	if err != nil {
		return nil, convertErr(err, "finding service by id %d", id)
	}
	return svc, nil
}

func (s *ServiceRepository) List(ctx context.Context) ([]domain.Service, error) {
	rows, err := s.conn.Query(ctx, `SELECT `+serviceColumns+` FROM services ORDER BY id`)
	if err != nil {
		return nil, convertErr(err, "listing services")
	}
	services, err := collect(rows, scanService)
	if err != nil {
		return nil, convertErr(err, "scanning services")
	}
	return services, nil
}

func (s *ServiceRepository) UpdatePrice(ctx context.Context, id int64, price decimal.Decimal) (*domain.Service, error) {
	row := s.conn.QueryRow(ctx,
		`UPDATE services SET price = $2, updated_at = now() WHERE id = $1 RETURNING `+serviceColumns,
		id, price,
	)
	svc, err := scanService(row)
	if err != nil {
		return nil, convertErr(err, "updating price of service %d", id)
	}
	return svc, nil
}

func scanService(row pgx.Row) (*domain.Service, error) {
	var (
		svc      domain.Service
		provider string
	)
	if err := row.Scan(
		&svc.ID, &svc.CreatedAt, &svc.UpdatedAt, &svc.Code, &provider, &svc.ProviderCost, &svc.Price, &svc.Active,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	svc.Provider = domain.ProviderType(provider)
	return &svc, nil
}
