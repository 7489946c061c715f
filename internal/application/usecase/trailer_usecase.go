package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/blues182/sistema-transporte-admin/internal/application/dto"
	"github.com/blues182/sistema-transporte-admin/internal/domain"
	"github.com/blues182/sistema-transporte-admin/internal/domain/entity"
	"github.com/blues182/sistema-transporte-admin/internal/domain/repository"
)

// TrailerUseCase casos de uso CRUD para trailers. Las transiciones de estado
// hacia/desde "mantenimiento" no pasan por aquí: son del flujo de mantenimiento.
type TrailerUseCase struct {
	repo repository.TrailerRepository
}

// NewTrailerUseCase construye el caso de uso.
func NewTrailerUseCase(repo repository.TrailerRepository) *TrailerUseCase {
	return &TrailerUseCase{repo: repo}
}

// Create da de alta un trailer, estado inicial "activo".
func (uc *TrailerUseCase) Create(in dto.CreateTrailerRequest) (*dto.TrailerResponse, error) {
	if in.NumeroEconomico == "" || in.Placas == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	t := &entity.Trailer{
		ID:              uuid.New().String(),
		NumeroEconomico: in.NumeroEconomico,
		Placas:          in.Placas,
		Marca:           in.Marca,
		Modelo:          in.Modelo,
		Anio:            in.Anio,
		Kilometraje:     in.Kilometraje,
		Estado:          entity.TrailerActivo,
		CreadoEn:        now,
		ActualizadoEn:   now,
	}
	if err := uc.repo.Create(t); err != nil {
		return nil, err
	}
	out := toTrailerResponse(t)
	return &out, nil
}

// GetByID obtiene un trailer por ID; nil si no existe.
func (uc *TrailerUseCase) GetByID(id string) (*dto.TrailerResponse, error) {
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	out := toTrailerResponse(t)
	return &out, nil
}

// List devuelve la flotilla ordenada por número económico.
func (uc *TrailerUseCase) List() ([]dto.TrailerResponse, error) {
	trailers, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.TrailerResponse, 0, len(trailers))
	for _, t := range trailers {
		out = append(out, toTrailerResponse(t))
	}
	return out, nil
}

// Update actualiza datos del trailer. Estado solo admite activo/inactivo por
// esta vía, y nunca mientras la unidad está en mantenimiento.
func (uc *TrailerUseCase) Update(id string, in dto.UpdateTrailerRequest) (*dto.TrailerResponse, error) {
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	if in.Estado != nil {
		if *in.Estado != entity.TrailerActivo && *in.Estado != entity.TrailerInactivo {
			return nil, domain.ErrInvalidInput
		}
		if t.Estado == entity.TrailerMantenimiento {
			return nil, domain.ErrConflict
		}
		t.Estado = *in.Estado
	}
	if in.NumeroEconomico != nil {
		t.NumeroEconomico = *in.NumeroEconomico
	}
	if in.Placas != nil {
		t.Placas = *in.Placas
	}
	if in.Marca != nil {
		t.Marca = *in.Marca
	}
	if in.Modelo != nil {
		t.Modelo = *in.Modelo
	}
	if in.Anio != nil {
		t.Anio = *in.Anio
	}
	if in.Kilometraje != nil {
		t.Kilometraje = *in.Kilometraje
	}
	t.ActualizadoEn = time.Now()
	if err := uc.repo.Update(t); err != nil {
		return nil, err
	}
	out := toTrailerResponse(t)
	return &out, nil
}

func toTrailerResponse(t *entity.Trailer) dto.TrailerResponse {
	return dto.TrailerResponse{
		ID:              t.ID,
		NumeroEconomico: t.NumeroEconomico,
		Placas:          t.Placas,
		Marca:           t.Marca,
		Modelo:          t.Modelo,
		Anio:            t.Anio,
		Kilometraje:     t.Kilometraje,
		Estado:          t.Estado,
		CreadoEn:        t.CreadoEn,
	}
}
