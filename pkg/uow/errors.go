package uow

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrRepositoryNotRegistered     = errors.New("[uow] repository not registered")
	ErrRepositoryAlreadyRegistered = errors.New("[uow] repository already registered")
	ErrInvalidRepositoryType       = errors.New("[uow] invalid repository type")
	// ErrConflict транзакция не смогла завершиться из-за конкурентного доступа, ее можно повторить целиком.
	ErrConflict = errors.New("[uow] transaction conflict")
)

// Коды ошибок postgres, после которых транзакцию можно повторить.
const (
	serializationFailureCode = "40001"
	deadlockDetectedCode     = "40P01"
)

// markConflict добавляет ErrConflict к ошибкам сериализации и дедлокам.
func markConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) &&
		(pgErr.Code == serializationFailureCode || pgErr.Code == deadlockDetectedCode) {
		return errors.Join(ErrConflict, err)
	}
	return err
}
