package pgrepo

import (
	"fmt"
	"math"

	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/jackc/pgx/v5"
)

// safeConvertUintToInt32 безопасно конвертирует uint в int32. В случае выхода значения за рамки диапазона
// выбрасывает ошибку.
func safeConvertUintToInt32(val uint) (int32, error) {
	if val > uint(math.MaxInt32) {
		return 0, fmt.Errorf("value is out of range: %d", val)
	}
	return int32(val), nil
}

// limitOrAll 0 означает "без ограничения", в SQL это LIMIT NULL.
func limitOrAll(limit uint) (*int32, error) {
	if limit == 0 {
		return nil, nil //nolint:nilnil
	}
	l, err := safeConvertUintToInt32(limit)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// collect читает все строки rows функцией scan.
func collect[T any](rows pgx.Rows, scan func(pgx.Row) (*T, error)) ([]T, error) {
	defer rows.Close()
	var res []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return res, nil
}

// newNotFound ошибка для условных обновлений, не затронувших ни одной строки.
func newNotFound(format string, formatArgs ...any) error {
	return fmt.Errorf("[repository/%s] %w", fmt.Sprintf(format, formatArgs...), domain.ErrRecordNotFound)
}
