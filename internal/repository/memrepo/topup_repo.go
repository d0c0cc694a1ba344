package memrepo

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/fsdevblog/virtnum/internal/repository/repoargs"
)

type TopupRepository struct {
	acc access
}

func (r *TopupRepository) Create(_ context.Context, args repoargs.CreateTopup) (*domain.Topup, error) {
	var topup domain.Topup
	err := r.acc.with(func(d *data) error {
		for _, t := range d.topups {
			if t.ExternalRef == args.ExternalRef {
				return duplicate("creating topup with external ref `%s`", args.ExternalRef)
			}
		}
		if _, ok := d.users[args.UserID]; !ok {
			return notFound("creating topup for user %d", args.UserID)
		}
		now := time.Now()
		topup = domain.Topup{
			ID:          d.nextID(repoargs.TopupRepoName),
			CreatedAt:   now,
			UpdatedAt:   now,
			UserID:      args.UserID,
			Amount:      args.Amount,
			ExternalRef: args.ExternalRef,
			Status:      domain.TopupStatusPending,
		}
		d.topups[topup.ID] = topup
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &topup, nil
}

func (r *TopupRepository) FindByExternalRef(_ context.Context, externalRef string) (*domain.Topup, error) {
	var topup domain.Topup
	err := r.acc.with(func(d *data) error {
		for _, t := range d.topups {
			if t.ExternalRef == externalRef {
				topup = t
				return nil
			}
		}
		return notFound("finding topup by external ref `%s`", externalRef)
	})
	if err != nil {
		return nil, err
	}
	return &topup, nil
}

func (r *TopupRepository) GetByUserID(_ context.Context, userID int64) ([]domain.Topup, error) {
	var topups []domain.Topup
	err := r.acc.with(func(d *data) error {
		for _, t := range d.topups {
			if t.UserID == userID {
				topups = append(topups, t)
			}
		}
		return nil
	})
	slices.SortFunc(topups, func(a, b domain.Topup) int { return cmp.Compare(b.ID, a.ID) })
	return topups, err
}

func (r *TopupRepository) UpdateStatus(
	_ context.Context,
	id int64,
	from, to domain.TopupStatusType,
) (*domain.Topup, error) {
	var topup domain.Topup
	err := r.acc.with(func(d *data) error {
		t, ok := d.topups[id]
		if !ok || t.Status != from {
			return notFound("updating topup %d status %s -> %s", id, from, to)
		}
		t.Status = to
		t.UpdatedAt = time.Now()
		d.topups[id] = t
		topup = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &topup, nil
}
