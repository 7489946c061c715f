package mantenimiento

import (
	"context"

	"github.com/blues182/sistema-transporte-admin/internal/domain/entity"
	"github.com/blues182/sistema-transporte-admin/internal/domain/repository"
)

// TxRunner ejecuta una función con los repositorios del flujo de mantenimiento
// atados a una misma transacción: orden, refacciones, ledger y trailer se
// escriben todos o ninguno.
type TxRunner interface {
	RunMantenimiento(ctx context.Context, fn func(
		mantRepo repository.MantenimientoRepository,
		refaccionRepo repository.RefaccionRepository,
		movRepo repository.MovimientoInventarioRepository,
		trailerRepo repository.TrailerRepository,
	) error) error
}

// OrdenPDFGenerator genera la hoja imprimible de una orden de servicio.
type OrdenPDFGenerator interface {
	GenerateOrdenPDF(
		ctx context.Context,
		orden *entity.Mantenimiento,
		trailer *entity.Trailer,
		usos []*entity.MantenimientoRefaccion,
	) ([]byte, error)
}
