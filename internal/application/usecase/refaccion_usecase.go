package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/blues182/sistema-transporte-admin/internal/application/dto"
	"github.com/blues182/sistema-transporte-admin/internal/domain"
	"github.com/blues182/sistema-transporte-admin/internal/domain/entity"
	"github.com/blues182/sistema-transporte-admin/internal/domain/repository"
)

// RefaccionUseCase casos de uso CRUD para refacciones. StockActual solo se
// fija aquí en la creación; después se gobierna por el ledger de inventario.
type RefaccionUseCase struct {
	repo repository.RefaccionRepository
}

// NewRefaccionUseCase construye el caso de uso.
func NewRefaccionUseCase(repo repository.RefaccionRepository) *RefaccionUseCase {
	return &RefaccionUseCase{repo: repo}
}

// Create registra una refacción nueva. Codigo es único.
func (uc *RefaccionUseCase) Create(in dto.CreateRefaccionRequest) (*dto.RefaccionResponse, error) {
	if in.Codigo == "" || in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.StockActual < 0 || in.StockMinimo < 0 || in.PrecioUnitario.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByCodigo(in.Codigo)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	ref := &entity.Refaccion{
		ID:             uuid.New().String(),
		Codigo:         in.Codigo,
		Nombre:         in.Nombre,
		Descripcion:    in.Descripcion,
		Categoria:      in.Categoria,
		StockActual:    in.StockActual,
		StockMinimo:    in.StockMinimo,
		PrecioUnitario: in.PrecioUnitario,
		Ubicacion:      in.Ubicacion,
		CreadoEn:       now,
		ActualizadoEn:  now,
	}
	if err := uc.repo.Create(ref); err != nil {
		return nil, err
	}
	out := toRefaccionResponse(ref)
	return &out, nil
}

// GetByID obtiene una refacción por ID; nil si no existe.
func (uc *RefaccionUseCase) GetByID(id string) (*dto.RefaccionResponse, error) {
	ref, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ref == nil {
		return nil, nil
	}
	out := toRefaccionResponse(ref)
	return &out, nil
}

// List devuelve el catálogo completo ordenado por nombre.
func (uc *RefaccionUseCase) List() ([]dto.RefaccionResponse, error) {
	refs, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.RefaccionResponse, 0, len(refs))
	for _, r := range refs {
		out = append(out, toRefaccionResponse(r))
	}
	return out, nil
}

// Update actualiza campos del catálogo. No toca stock_actual: eso es del ledger.
func (uc *RefaccionUseCase) Update(id string, in dto.UpdateRefaccionRequest) (*dto.RefaccionResponse, error) {
	ref, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ref == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		ref.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		ref.Descripcion = *in.Descripcion
	}
	if in.Categoria != nil {
		ref.Categoria = *in.Categoria
	}
	if in.StockMinimo != nil {
		if *in.StockMinimo < 0 {
			return nil, domain.ErrInvalidInput
		}
		ref.StockMinimo = *in.StockMinimo
	}
	if in.PrecioUnitario != nil {
		if in.PrecioUnitario.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		ref.PrecioUnitario = *in.PrecioUnitario
	}
	if in.Ubicacion != nil {
		ref.Ubicacion = *in.Ubicacion
	}
	ref.ActualizadoEn = time.Now()
	if err := uc.repo.Update(ref); err != nil {
		return nil, err
	}
	out := toRefaccionResponse(ref)
	return &out, nil
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
