package inventario

import (
	"context"

	"github.com/blues182/sistema-transporte-admin/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el ajuste de stock y el registro
// en el ledger se apliquen juntos o ninguno (atomicidad del motor de inventario).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		refaccionRepo repository.RefaccionRepository,
		movRepo repository.MovimientoInventarioRepository,
	) error) error
}
