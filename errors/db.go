package errors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Mã lỗi của Postgres, xem https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// IsNotFound kiểm tra lỗi record không tồn tại
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsUniqueViolation kiểm tra lỗi vi phạm unique constraint.
// Constraint ở database là nguồn enforce duy nhất cho các invariant
// "một review/favorite cho mỗi cặp (user, resource)"; pre-check ở
// controller chỉ là đường tắt cho UX.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// IsForeignKeyViolation kiểm tra lỗi vi phạm foreign key
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}
