package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/mis-libros/internal/domain"
)

// pgCode devuelve el SQLSTATE del error de PostgreSQL ("" si no lo es).
func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// translateError convierte violaciones de constraints en errores de dominio y
// envuelve el resto con la operación.
func translateError(op string, err error) error {
	switch pgCode(err) {
	case pgerrcode.UniqueViolation:
		return fmt.Errorf("%s: %w", op, domain.ErrDuplicate)
	case pgerrcode.ForeignKeyViolation:
		return fmt.Errorf("%s: %w", op, domain.ErrInvalidReference)
	case pgerrcode.NotNullViolation, pgerrcode.CheckViolation,
		pgerrcode.StringDataRightTruncationDataException, pgerrcode.NumericValueOutOfRange:
		return fmt.Errorf("%s: %w", op, domain.ErrInvalidInput)
	}
	return fmt.Errorf("%s: %w", op, err)
}
