package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/blues182/sistema-transporte-admin/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// isTransient clasifica errores de conexión/timeout como transitorios:
// clase 08 (connection exception), 53 (insufficient resources),
// 57 (operator intervention), timeouts de contexto y errores de red.
func isTransient(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		for _, class := range []string{"08", "53", "57"} {
			if strings.HasPrefix(pgErr.Code, class) {
				return true
			}
		}
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

// wrapStoreErr normaliza un error de pgx: transitorio -> ErrStoreUnavailable
// (el caller puede reintentar), el resto se envuelve con la operación.
func wrapStoreErr(op string, err error) error {
	if isTransient(err) {
		return fmt.Errorf("%s: %w", op, domain.ErrStoreUnavailable)
	}
	return fmt.Errorf("%s: %w", op, err)
}
