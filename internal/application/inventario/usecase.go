package inventario

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/blues182/sistema-transporte-admin/internal/application/dto"
	"github.com/blues182/sistema-transporte-admin/internal/domain"
	"github.com/blues182/sistema-transporte-admin/internal/domain/entity"
	"github.com/blues182/sistema-transporte-admin/internal/domain/repository"
)

// InventarioUseCase es el único camino por el que cambia stock_actual.
// Cada cambio se ejecuta en una transacción con bloqueo de fila
// (SELECT FOR UPDATE) y queda emparejado con exactamente un registro
// en movimientos_inventario; Commit o Rollback de ambos juntos.
type InventarioUseCase struct {
	txRunner      TxRunner
	refaccionRepo repository.RefaccionRepository
	movRepo       repository.MovimientoInventarioRepository
}

// NewInventarioUseCase construye el caso de uso.
func NewInventarioUseCase(
	txRunner TxRunner,
	refaccionRepo repository.RefaccionRepository,
	movRepo repository.MovimientoInventarioRepository,
) *InventarioUseCase {
	return &InventarioUseCase{
		txRunner:      txRunner,
		refaccionRepo: refaccionRepo,
		movRepo:       movRepo,
	}
}

// parseFecha interpreta la fecha del movimiento (YYYY-MM-DD); vacía = hoy.
func parseFecha(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	f, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	return f, nil
}

// RegistrarEntrada suma cantidad al stock de la refacción y agrega un
// movimiento tipo entrada al ledger, todo en una transacción.
func (uc *InventarioUseCase) RegistrarEntrada(ctx context.Context, refaccionID, creadoPor string, in dto.MovimientoRequest) (*dto.StockResponse, error) {
	if in.Cantidad <= 0 {
		return nil, domain.ErrInvalidInput
	}
	fecha, err := parseFecha(in.Fecha)
	if err != nil {
		return nil, err
	}

	var nuevoStock int
	err = uc.txRunner.Run(ctx, func(
		refaccionRepo repository.RefaccionRepository,
		movRepo repository.MovimientoInventarioRepository,
	) error {
		// Bloquea la fila de la refacción para serializar escrituras concurrentes
		ref, err := refaccionRepo.GetForUpdate(refaccionID)
		if err != nil {
			return err
		}
		if ref == nil {
			return domain.ErrNotFound
		}
		nuevoStock = ref.StockActual + in.Cantidad
		if err := refaccionRepo.UpdateStock(refaccionID, nuevoStock); err != nil {
			return err
		}
		return movRepo.Create(&entity.MovimientoInventario{
			ID:          uuid.New().String(),
			RefaccionID: refaccionID,
			Tipo:        entity.MovimientoEntrada,
			Cantidad:    in.Cantidad,
			Fecha:       fecha,
			Motivo:      in.Motivo,
			Referencia:  in.Referencia,
			CreadoPor:   creadoPor,
			CreadoEn:    time.Now(),
		})
	})
	if err != nil {
		return nil, err
	}
	return &dto.StockResponse{
		RefaccionID: refaccionID,
		StockActual: nuevoStock,
		Message:     "entrada registrada exitosamente",
	}, nil
}

// RegistrarSalida resta cantidad del stock tras verificar suficiencia bajo el
// mismo bloqueo de fila: dos salidas concurrentes sobre la misma refacción no
// pueden pasar ambas la verificación con un stock ya obsoleto.
func (uc *InventarioUseCase) RegistrarSalida(ctx context.Context, refaccionID, creadoPor string, in dto.MovimientoRequest) (*dto.StockResponse, error) {
	if in.Cantidad <= 0 {
		return nil, domain.ErrInvalidInput
	}
	fecha, err := parseFecha(in.Fecha)
	if err != nil {
		return nil, err
	}

	var nuevoStock int
	err = uc.txRunner.Run(ctx, func(
		refaccionRepo repository.RefaccionRepository,
		movRepo repository.MovimientoInventarioRepository,
	) error {
		ref, err := refaccionRepo.GetForUpdate(refaccionID)
		if err != nil {
			return err
		}
		if ref == nil {
			return domain.ErrNotFound
		}
		if ref.StockActual < in.Cantidad {
			return domain.ErrInsufficientStock
		}
		nuevoStock = ref.StockActual - in.Cantidad
		if err := refaccionRepo.UpdateStock(refaccionID, nuevoStock); err != nil {
			return err
		}
		return movRepo.Create(&entity.MovimientoInventario{
			ID:          uuid.New().String(),
			RefaccionID: refaccionID,
			Tipo:        entity.MovimientoSalida,
			Cantidad:    in.Cantidad,
			Fecha:       fecha,
			Motivo:      in.Motivo,
			Referencia:  in.Referencia,
			CreadoPor:   creadoPor,
			CreadoEn:    time.Now(),
		})
	})
	if err != nil {
		return nil, err
	}
	return &dto.StockResponse{
		RefaccionID: refaccionID,
		StockActual: nuevoStock,
		Message:     "salida registrada exitosamente",
	}, nil
}

// Movimientos devuelve el historial del ledger de una refacción, más recientes primero.
func (uc *InventarioUseCase) Movimientos(refaccionID string) ([]dto.MovimientoResponse, error) {
	ref, err := uc.refaccionRepo.GetByID(refaccionID)
	if err != nil {
		return nil, err
	}
	if ref == nil {
		return nil, domain.ErrNotFound
	}
	movs, err := uc.movRepo.ListByRefaccion(refaccionID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovimientoResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, dto.MovimientoResponse{
			ID:          m.ID,
			RefaccionID: m.RefaccionID,
			Tipo:        m.Tipo,
			Cantidad:    m.Cantidad,
			Fecha:       m.Fecha,
			Motivo:      m.Motivo,
			Referencia:  m.Referencia,
			CreadoPor:   m.CreadoPor,
			CreadoEn:    m.CreadoEn,
		})
	}
	return out, nil
}

// StockBajo devuelve las refacciones en o bajo su punto de reorden,
// las más agotadas primero.
func (uc *InventarioUseCase) StockBajo() ([]dto.RefaccionResponse, error) {
	refs, err := uc.refaccionRepo.ListLowStock()
	if err != nil {
		return nil, err
	}
	out := make([]dto.RefaccionResponse, 0, len(refs))
	for _, r := range refs {
		out = append(out, toRefaccionResponse(r))
	}
	return out, nil
}

func toRefaccionResponse(r *entity.Refaccion) dto.RefaccionResponse {
	return dto.RefaccionResponse{
		ID:             r.ID,
		Codigo:         r.Codigo,
		Nombre:         r.Nombre,
		Descripcion:    r.Descripcion,
		Categoria:      r.Categoria,
		StockActual:    r.StockActual,
		StockMinimo:    r.StockMinimo,
		PrecioUnitario: r.PrecioUnitario,
		Ubicacion:      r.Ubicacion,
		CreadoEn:       r.CreadoEn,
		ActualizadoEn:  r.ActualizadoEn,
	}
}
