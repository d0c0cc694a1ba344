package memrepo

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/fsdevblog/virtnum/internal/repository/repoargs"
)

type OrderRepository struct {
	acc access
}

func (r *OrderRepository) Create(_ context.Context, args repoargs.CreateOrder) (*domain.Order, error) {
	var order domain.Order
	err := r.acc.with(func(d *data) error {
		if _, ok := d.users[args.UserID]; !ok {
			return notFound("creating order for user %d", args.UserID)
		}
		now := time.Now()
		order = domain.Order{
			ID:        d.nextID(repoargs.OrderRepoName),
			CreatedAt: now,
			UpdatedAt: now,
			UserID:    args.UserID,
			ServiceID: args.ServiceID,
			Provider:  args.Provider,
			Price:     args.Price,
			Status:    domain.OrderStatusPending,
		}
		d.orders[order.ID] = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) FindByID(_ context.Context, id int64) (*domain.Order, error) {
	var order domain.Order
	err := r.acc.with(func(d *data) error {
		o, ok := d.orders[id]
		if !ok {
			return notFound("finding order by id %d", id)
		}
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) FindByProviderOrderID(
	_ context.Context,
	p domain.ProviderType,
	providerOrderID string,
) (*domain.Order, error) {
	var order domain.Order
	err := r.acc.with(func(d *data) error {
		for _, o := range d.orders {
			if o.Provider == p && o.ProviderOrderID != nil && *o.ProviderOrderID == providerOrderID {
				order = o
				return nil
			}
		}
		return notFound("finding order by provider id %s/%s", p, providerOrderID)
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) GetByUserID(_ context.Context, userID int64) ([]domain.Order, error) {
	orders, err := r.filter(func(o domain.Order) bool { return o.UserID == userID })
	slices.SortFunc(orders, func(a, b domain.Order) int { return cmp.Compare(b.ID, a.ID) })
	return orders, err
}

func (r *OrderRepository) GetByStatus(_ context.Context, status domain.OrderStatusType, limit uint) ([]domain.Order, error) {
	orders, err := r.filter(func(o domain.Order) bool { return o.Status == status })
	slices.SortFunc(orders, func(a, b domain.Order) int {
		return cmp.Or(a.UpdatedAt.Compare(b.UpdatedAt), cmp.Compare(a.ID, b.ID))
	})
	return truncate(orders, limit), err
}

func (r *OrderRepository) GetPendingCreatedBefore(_ context.Context, before time.Time, limit uint) ([]domain.Order, error) {
	orders, err := r.filter(func(o domain.Order) bool {
		return o.Status == domain.OrderStatusPending && o.CreatedAt.Before(before)
	})
	slices.SortFunc(orders, func(a, b domain.Order) int { return cmp.Compare(a.ID, b.ID) })
	return truncate(orders, limit), err
}

// Transition аналог UPDATE orders SET ... WHERE id = $1 AND status = $from. provider_order_id
// устанавливается только если еще не задан.
func (r *OrderRepository) Transition(_ context.Context, args repoargs.OrderTransition) (*domain.Order, error) {
	var order domain.Order
	err := r.acc.with(func(d *data) error {
		o, ok := d.orders[args.ID]
		if !ok || o.Status != args.From {
			return notFound("order %d transition %s -> %s", args.ID, args.From, args.To)
		}
		if args.ProviderOrderID != nil && o.ProviderOrderID == nil {
			for _, other := range d.orders {
				if other.Provider == o.Provider && other.ProviderOrderID != nil &&
					*other.ProviderOrderID == *args.ProviderOrderID {
					return duplicate("order %d provider order id `%s`", args.ID, *args.ProviderOrderID)
				}
			}
			o.ProviderOrderID = args.ProviderOrderID
		}
		if args.VirtualNumber != nil {
			o.VirtualNumber = args.VirtualNumber
		}
		if args.SMSCode != nil {
			o.SMSCode = args.SMSCode
		}
		if args.ExpiresAt != nil {
			o.ExpiresAt = args.ExpiresAt
		}
		o.Status = args.To
		o.UpdatedAt = time.Now()
		d.orders[o.ID] = o
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) IncrementPollErrors(_ context.Context, id int64) (*domain.Order, error) {
	var order domain.Order
	err := r.acc.with(func(d *data) error {
		o, ok := d.orders[id]
		if !ok || o.Status != domain.OrderStatusWaiting {
			return notFound("incrementing poll errors of order %d", id)
		}
		o.PollErrors++
		o.UpdatedAt = time.Now()
		d.orders[id] = o
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) filter(keep func(domain.Order) bool) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.acc.with(func(d *data) error {
		for _, o := range d.orders {
			if keep(o) {
				orders = append(orders, o)
			}
		}
		return nil
	})
	return orders, err
}

func truncate(orders []domain.Order, limit uint) []domain.Order {
	if limit > 0 && uint(len(orders)) > limit {
		return orders[:limit]
	}
	return orders
}
