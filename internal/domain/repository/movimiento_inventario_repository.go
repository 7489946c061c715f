package repository

import "github.com/blues182/sistema-transporte-admin/internal/domain/entity"

// MovimientoInventarioRepository define el puerto del ledger de inventario.
// El ledger es append-only: no hay Update ni Delete.
type MovimientoInventarioRepository interface {
	Create(m *entity.MovimientoInventario) error
	// ListByRefaccion lista movimientos de una refacción, más recientes primero.
	ListByRefaccion(refaccionID string) ([]*entity.MovimientoInventario, error)
}
