package pgrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/fsdevblog/virtnum/internal/repository/repoargs"
	"github.com/fsdevblog/virtnum/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const orderColumns = `id, created_at, updated_at, user_id, service_id, provider, price, provider_order_id,
	virtual_number, sms_code, status, poll_errors, expires_at`

type OrderRepository struct {
	conn uow.DBTX
}

func NewOrderRepository(conn uow.DBTX) *OrderRepository {
	return &OrderRepository{conn: conn}
}

// Create создает заказ в статусе pending с зафиксированной ценой.
func (o *OrderRepository) Create(ctx context.Context, args repoargs.CreateOrder) (*domain.Order, error) {
	row := o.conn.QueryRow(ctx,
		`INSERT INTO orders (user_id, service_id, provider, price, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+orderColumns,
		args.UserID, args.ServiceID, string(args.Provider), args.Price, string(domain.OrderStatusPending),
	)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "creating order for user %d", args.UserID)
	}
	return order, nil
}

func (o *OrderRepository) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := scanOrder(o.conn.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		return nil, convertErr(err, "finding order by id %d", id)
	}
	return order, nil
}

func (o *OrderRepository) FindByProviderOrderID(
	ctx context.Context,
	p domain.ProviderType,
	providerOrderID string,
) (*domain.Order, error) {
	order, err := scanOrder(o.conn.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE provider = $1 AND provider_order_id = $2`,
		string(p), providerOrderID,
	))
	if err != nil {
		return nil, convertErr(err, "finding order by provider id `%s:%s`", p, providerOrderID)
	}
	return order, nil
}

// GetByUserID Возвращает список заказов по id юзера, отсортированный по дате создания по убыванию.
func (o *OrderRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Order, error) {
	return o.query(ctx, fmt.Sprintf("getting orders by userID `%d`", userID),
		`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY created_at DESC, id DESC`,
		userID,
	)
}

// GetByStatus возвращает заказы в статусе status, давно не обновлявшиеся - первыми.
func (o *OrderRepository) GetByStatus(
	ctx context.Context,
	status domain.OrderStatusType,
	limit uint,
) ([]domain.Order, error) {
	safeLimit, err := limitOrAll(limit)
	if err != nil {
		return nil, convertErr(err, "converting limit")
	}
	return o.query(ctx, fmt.Sprintf("getting orders by status `%s`", status),
		`SELECT `+orderColumns+` FROM orders WHERE status = $1 ORDER BY updated_at, id LIMIT $2`,
		string(status), safeLimit,
	)
}

func (o *OrderRepository) GetPendingCreatedBefore(
	ctx context.Context,
	before time.Time,
	limit uint,
) ([]domain.Order, error) {
	safeLimit, err := limitOrAll(limit)
	if err != nil {
		return nil, convertErr(err, "converting limit")
	}
	return o.query(ctx, "getting stale pending orders",
		`SELECT `+orderColumns+` FROM orders WHERE status = $1 AND created_at < $2 ORDER BY id LIMIT $3`,
		string(domain.OrderStatusPending), before, safeLimit,
	)
}

// Transition условный переход статуса. provider_order_id записывается только один раз, остальные nil поля
// не изменяются.
func (o *OrderRepository) Transition(ctx context.Context, args repoargs.OrderTransition) (*domain.Order, error) {
	row := o.conn.QueryRow(ctx,
		`UPDATE orders SET
			status = $3,
			provider_order_id = COALESCE(provider_order_id, $4),
			virtual_number = COALESCE($5, virtual_number),
			sms_code = COALESCE($6, sms_code),
			expires_at = COALESCE($7, expires_at),
			updated_at = now()
		 WHERE id = $1 AND status = $2
		 RETURNING `+orderColumns,
		args.ID, string(args.From), string(args.To),
		args.ProviderOrderID, args.VirtualNumber, args.SMSCode, args.ExpiresAt,
	)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "order %d transition %s -> %s", args.ID, args.From, args.To)
	}
	return order, nil
}

func (o *OrderRepository) IncrementPollErrors(ctx context.Context, id int64) (*domain.Order, error) {
	row := o.conn.QueryRow(ctx,
		`UPDATE orders SET poll_errors = poll_errors + 1, updated_at = now()
		 WHERE id = $1 AND status = $2
		 RETURNING `+orderColumns,
		id, string(domain.OrderStatusWaiting),
	)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "incrementing poll errors of order %d", id)
	}
	return order, nil
}

func (o *OrderRepository) query(ctx context.Context, msg string, sql string, args ...any) ([]domain.Order, error) {
	rows, err := o.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, convertErr(err, "%s", msg)
	}
	orders, err := collect(rows, scanOrder)
	if err != nil {
		return nil, convertErr(err, "scanning %s", msg)
	}
	return orders, nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		order      domain.Order
		provider   string
		status     string
		pollErrors int32
	)
	if err := row.Scan(
		&order.ID,
		&order.CreatedAt,
		&order.UpdatedAt,
		&order.UserID,
		&order.ServiceID,
		&provider,
		&order.Price,
		&order.ProviderOrderID,
		&order.VirtualNumber,
		&order.SMSCode,
		&status,
		&pollErrors,
		&order.ExpiresAt,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	order.Provider = domain.ProviderType(provider)
	order.Status = domain.OrderStatusType(status)
	if pollErrors > 0 {
		order.PollErrors = uint(pollErrors)
	}
	return &order, nil
}
