package mantenimiento

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/blues182/sistema-transporte-admin/internal/application/dto"
	"github.com/blues182/sistema-transporte-admin/internal/domain"
	"github.com/blues182/sistema-transporte-admin/internal/domain/entity"
	domainmant "github.com/blues182/sistema-transporte-admin/internal/domain/mantenimiento"
	"github.com/blues182/sistema-transporte-admin/internal/domain/repository"
)

// MantenimientoUseCase orquesta el flujo de órdenes de servicio: abrir la
// orden, consumir refacciones (decremento de stock + ledger, mismo mecanismo
// que una salida directa) y alternar el estado del trailer. Este caso de uso
// es el único escritor de las transiciones activo ↔ mantenimiento del trailer.
type MantenimientoUseCase struct {
	txRunner    TxRunner
	mantRepo    repository.MantenimientoRepository
	trailerRepo repository.TrailerRepository
	pdfGen      OrdenPDFGenerator
}

// NewMantenimientoUseCase construye el caso de uso. pdfGen puede ser nil si no
// se expone la hoja imprimible.
func NewMantenimientoUseCase(
	txRunner TxRunner,
	mantRepo repository.MantenimientoRepository,
	trailerRepo repository.TrailerRepository,
	pdfGen OrdenPDFGenerator,
) *MantenimientoUseCase {
	return &MantenimientoUseCase{
		txRunner:    txRunner,
		mantRepo:    mantRepo,
		trailerRepo: trailerRepo,
		pdfGen:      pdfGen,
	}
}

func tipoValido(tipo string) bool {
	switch tipo {
	case entity.MantenimientoPreventivo, entity.MantenimientoCorrectivo, entity.MantenimientoEmergencia:
		return true
	}
	return false
}

// Create abre una orden en una sola transacción: (a) trailer a "mantenimiento",
// (b) inserta la orden, (c) por cada refacción usada inserta el uso con el
// precio dado (snapshot), descuenta stock bajo bloqueo de fila y agrega el
// movimiento de salida con referencia "MANT-<id>". Si alguna refacción no
// alcanza, todo se revierte: ni orden, ni cambio de trailer, ni consumos.
func (uc *MantenimientoUseCase) Create(ctx context.Context, creadoPor string, in dto.CreateMantenimientoRequest) (*dto.IDResponse, error) {
	if in.TrailerID == "" || in.Descripcion == "" || !tipoValido(in.Tipo) {
		return nil, domain.ErrInvalidInput
	}
	if in.CostoManoObra.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	fecha, err := time.Parse("2006-01-02", in.Fecha)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	for _, ref := range in.Refacciones {
		if ref.RefaccionID == "" || ref.Cantidad <= 0 || ref.PrecioUnitario.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}

	ordenID := uuid.New().String()
	now := time.Now()

	err = uc.txRunner.RunMantenimiento(ctx, func(
		mantRepo repository.MantenimientoRepository,
		refaccionRepo repository.RefaccionRepository,
		movRepo repository.MovimientoInventarioRepository,
		trailerRepo repository.TrailerRepository,
	) error {
		// La unidad queda fuera de servicio desde la apertura de la orden
		trailer, err := trailerRepo.GetForUpdate(in.TrailerID)
		if err != nil {
			return err
		}
		if trailer == nil {
			return domain.ErrNotFound
		}
		if err := trailerRepo.UpdateEstado(in.TrailerID, entity.TrailerMantenimiento); err != nil {
			return err
		}

		orden := &entity.Mantenimiento{
			ID:            ordenID,
			TrailerID:     in.TrailerID,
			Fecha:         fecha,
			Tipo:          in.Tipo,
			Descripcion:   in.Descripcion,
			Kilometraje:   in.Kilometraje,
			CostoManoObra: in.CostoManoObra,
			Taller:        in.Taller,
			Estado:        entity.EstadoEnProceso,
			CreadoEn:      now,
			ActualizadoEn: now,
		}
		if err := mantRepo.Create(orden); err != nil {
			return err
		}

		for _, ref := range in.Refacciones {
			refaccion, err := refaccionRepo.GetForUpdate(ref.RefaccionID)
			if err != nil {
				return err
			}
			if refaccion == nil {
				return domain.ErrNotFound
			}
			if refaccion.StockActual < ref.Cantidad {
				return domain.ErrInsufficientStock
			}
			if err := mantRepo.CreateRefaccionUsage(&entity.MantenimientoRefaccion{
				ID:              uuid.New().String(),
				MantenimientoID: ordenID,
				RefaccionID:     ref.RefaccionID,
				Cantidad:        ref.Cantidad,
				PrecioUnitario:  ref.PrecioUnitario,
			}); err != nil {
				return err
			}
			if err := refaccionRepo.UpdateStock(ref.RefaccionID, refaccion.StockActual-ref.Cantidad); err != nil {
				return err
			}
			if err := movRepo.Create(&entity.MovimientoInventario{
				ID:          uuid.New().String(),
				RefaccionID: ref.RefaccionID,
				Tipo:        entity.MovimientoSalida,
				Cantidad:    ref.Cantidad,
				Fecha:       fecha,
				Motivo:      "Mantenimiento",
				Referencia:  fmt.Sprintf("MANT-%s", ordenID),
				CreadoPor:   creadoPor,
				CreadoEn:    now,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.IDResponse{ID: ordenID, Message: "mantenimiento registrado exitosamente"}, nil
}

// Update modifica campos enumerados de una orden. Si Estado transiciona a
// "completado", el trailer regresa a "activo" dentro de la misma transacción.
// "completado" es terminal: repetirlo o intentar salir de él devuelve ErrConflict.
func (uc *MantenimientoUseCase) Update(ctx context.Context, id string, in dto.UpdateMantenimientoRequest) error {
	if in.Tipo != nil && !tipoValido(*in.Tipo) {
		return domain.ErrInvalidInput
	}
	if in.Estado != nil {
		switch *in.Estado {
		case entity.EstadoProgramado, entity.EstadoEnProceso, entity.EstadoCompletado:
		default:
			return domain.ErrInvalidInput
		}
	}
	if in.CostoManoObra != nil && in.CostoManoObra.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	var fecha *time.Time
	if in.Fecha != nil {
		f, err := time.Parse("2006-01-02", *in.Fecha)
		if err != nil {
			return domain.ErrInvalidInput
		}
		fecha = &f
	}

	return uc.txRunner.RunMantenimiento(ctx, func(
		mantRepo repository.MantenimientoRepository,
		_ repository.RefaccionRepository,
		_ repository.MovimientoInventarioRepository,
		trailerRepo repository.TrailerRepository,
	) error {
		orden, err := mantRepo.GetByID(id)
		if err != nil {
			return err
		}
		if orden == nil {
			return domain.ErrNotFound
		}
		if orden.Estado == entity.EstadoCompletado && in.Estado != nil {
			return domain.ErrConflict
		}
		completando := in.Estado != nil && *in.Estado == entity.EstadoCompletado

		if fecha != nil {
			orden.Fecha = *fecha
		}
		if in.Tipo != nil {
			orden.Tipo = *in.Tipo
		}
		if in.Descripcion != nil {
			orden.Descripcion = *in.Descripcion
		}
		if in.Kilometraje != nil {
			orden.Kilometraje = in.Kilometraje
		}
		if in.CostoManoObra != nil {
			orden.CostoManoObra = *in.CostoManoObra
		}
		if in.Taller != nil {
			orden.Taller = *in.Taller
		}
		if in.Estado != nil {
			orden.Estado = *in.Estado
		}
		orden.ActualizadoEn = time.Now()
		if err := mantRepo.Update(orden); err != nil {
			return err
		}
		if completando {
			return trailerRepo.UpdateEstado(orden.TrailerID, entity.TrailerActivo)
		}
		return nil
	})
}

// Completar marca la orden como completada y reactiva el trailer en la misma
// transacción. Completar una orden ya completada devuelve ErrConflict.
func (uc *MantenimientoUseCase) Completar(ctx context.Context, id string) error {
	return uc.txRunner.RunMantenimiento(ctx, func(
		mantRepo repository.MantenimientoRepository,
		_ repository.RefaccionRepository,
		_ repository.MovimientoInventarioRepository,
		trailerRepo repository.TrailerRepository,
	) error {
		orden, err := mantRepo.GetByID(id)
		if err != nil {
			return err
		}
		if orden == nil {
			return domain.ErrNotFound
		}
		if orden.Estado == entity.EstadoCompletado {
			return domain.ErrConflict
		}
		orden.Estado = entity.EstadoCompletado
		orden.ActualizadoEn = time.Now()
		if err := mantRepo.Update(orden); err != nil {
			return err
		}
		return trailerRepo.UpdateEstado(orden.TrailerID, entity.TrailerActivo)
	})
}

// GetByID devuelve la orden con sus refacciones usadas.
func (uc *MantenimientoUseCase) GetByID(id string) (*dto.MantenimientoResponse, error) {
	orden, err := uc.mantRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if orden == nil {
		return nil, nil
	}
	usos, err := uc.mantRepo.ListRefaccionUsage(id)
	if err != nil {
		return nil, err
	}
	out := toMantenimientoResponse(orden)
	for _, u := range usos {
		out.Refacciones = append(out.Refacciones, dto.RefaccionUsadaResponse{
			RefaccionID:    u.RefaccionID,
			Codigo:         u.Codigo,
			Nombre:         u.Nombre,
			Cantidad:       u.Cantidad,
			PrecioUnitario: u.PrecioUnitario,
		})
	}
	return out, nil
}

// List devuelve todas las órdenes (con unidad y placas), fecha descendente.
func (uc *MantenimientoUseCase) List() ([]dto.MantenimientoResponse, error) {
	ordenes, err := uc.mantRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.MantenimientoResponse, 0, len(ordenes))
	for _, o := range ordenes {
		out = append(out, *toMantenimientoResponse(o))
	}
	return out, nil
}

// ListByTrailer historial de mantenimiento de una unidad.
func (uc *MantenimientoUseCase) ListByTrailer(trailerID string) ([]dto.MantenimientoResponse, error) {
	trailer, err := uc.trailerRepo.GetByID(trailerID)
	if err != nil {
		return nil, err
	}
	if trailer == nil {
		return nil, domain.ErrNotFound
	}
	ordenes, err := uc.mantRepo.ListByTrailer(trailerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MantenimientoResponse, 0, len(ordenes))
	for _, o := range ordenes {
		out = append(out, *toMantenimientoResponse(o))
	}
	return out, nil
}

// CostoTotal devuelve mano de obra + refacciones de la orden. Lectura pura.
func (uc *MantenimientoUseCase) CostoTotal(id string) (*dto.CostoTotalResponse, error) {
	orden, err := uc.mantRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if orden == nil {
		return nil, domain.ErrNotFound
	}
	usos, err := uc.mantRepo.ListRefaccionUsage(id)
	if err != nil {
		return nil, err
	}
	costoRefacciones := domainmant.CostoRefacciones(usos)
	return &dto.CostoTotalResponse{
		CostoManoObra:    orden.CostoManoObra,
		CostoRefacciones: costoRefacciones,
		CostoTotal:       orden.CostoManoObra.Add(costoRefacciones),
	}, nil
}

// GenerarPDF produce la hoja imprimible de la orden de servicio.
func (uc *MantenimientoUseCase) GenerarPDF(ctx context.Context, id string) ([]byte, error) {
	orden, err := uc.mantRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if orden == nil {
		return nil, domain.ErrNotFound
	}
	trailer, err := uc.trailerRepo.GetByID(orden.TrailerID)
	if err != nil {
		return nil, err
	}
	usos, err := uc.mantRepo.ListRefaccionUsage(id)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateOrdenPDF(ctx, orden, trailer, usos)
}

func toMantenimientoResponse(o *entity.Mantenimiento) *dto.MantenimientoResponse {
	return &dto.MantenimientoResponse{
		ID:              o.ID,
		TrailerID:       o.TrailerID,
		NumeroEconomico: o.NumeroEconomico,
		Placas:          o.Placas,
		Fecha:           o.Fecha,
		Tipo:            o.Tipo,
		Descripcion:     o.Descripcion,
		Kilometraje:     o.Kilometraje,
		CostoManoObra:   o.CostoManoObra,
		Taller:          o.Taller,
		Estado:          o.Estado,
		CreadoEn:        o.CreadoEn,
	}
}
