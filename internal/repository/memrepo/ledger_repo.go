package memrepo

import (
	"context"
	"slices"
	"time"

	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/fsdevblog/virtnum/internal/repository/repoargs"
	"github.com/shopspring/decimal"
)

type LedgerRepository struct {
	acc access
}

func (r *LedgerRepository) Append(_ context.Context, args repoargs.LedgerEntryCreate) (*domain.LedgerEntry, error) {
	var entry domain.LedgerEntry
	err := r.acc.with(func(d *data) error {
		for _, e := range d.entries {
			if e.Reason == args.Reason && e.ReferenceID == args.ReferenceID {
				return duplicate("appending ledger entry %s/%d", args.Reason, args.ReferenceID)
			}
		}
		if _, ok := d.users[args.UserID]; !ok {
			return notFound("appending ledger entry for user %d", args.UserID)
		}
		entry = domain.LedgerEntry{
			ID:          d.nextID(repoargs.LedgerRepoName),
			CreatedAt:   time.Now(),
			UserID:      args.UserID,
			Delta:       args.Delta,
			Reason:      args.Reason,
			ReferenceID: args.ReferenceID,
		}
		d.entries = append(d.entries, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *LedgerRepository) GetByUserID(_ context.Context, userID int64) ([]domain.LedgerEntry, error) {
	var entries []domain.LedgerEntry
	err := r.acc.with(func(d *data) error {
		for _, e := range d.entries {
			if e.UserID == userID {
				entries = append(entries, e)
			}
		}
		return nil
	})
	slices.Reverse(entries)
	return entries, err
}

func (r *LedgerRepository) SumByUserID(_ context.Context, userID int64) (decimal.Decimal, error) {
	sum := decimal.Zero
	err := r.acc.with(func(d *data) error {
		for _, e := range d.entries {
			if e.UserID == userID {
				sum = sum.Add(e.Delta)
			}
		}
		return nil
	})
	return sum, err
}
