package pgrepo

import (
	"errors"
	"testing"

	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestConvertErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: domain.ErrRecordNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: uniqueViolationCode}, want: domain.ErrDuplicateKey},
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, want: domain.ErrLedgerConflict},
		{name: "deadlock", err: &pgconn.PgError{Code: "40P01"}, want: domain.ErrLedgerConflict},
		{name: "check violation", err: &pgconn.PgError{Code: "23514"}, want: domain.ErrUnknown},
		{name: "plain error", err: errors.New("boom"), want: domain.ErrUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := convertErr(tt.err, "doing %s", "something")
			assert.ErrorIs(t, got, tt.want)
			assert.Contains(t, got.Error(), "[repository/doing something]")
		})
	}
	assert.NoError(t, convertErr(nil, "nothing"))
}

func TestLimitOrAll(t *testing.T) {
	l, err := limitOrAll(0)
	assert.NoError(t, err)
	assert.Nil(t, l)

	l, err = limitOrAll(25)
	assert.NoError(t, err)
	if assert.NotNil(t, l) {
		assert.Equal(t, int32(25), *l)
	}
}
