package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/blues182/sistema-transporte-admin/internal/domain"
	"github.com/blues182/sistema-transporte-admin/internal/domain/entity"
	"github.com/blues182/sistema-transporte-admin/internal/domain/repository"
)

var _ repository.TrailerRepository = (*TrailerRepo)(nil)

const trailerColumns = `id, numero_economico, placas, marca, modelo, anio, kilometraje, estado, creado_en, actualizado_en`

// TrailerRepo implementación de TrailerRepository sobre PostgreSQL (usable con pool o tx).
type TrailerRepo struct {
	q Querier
}

// NewTrailerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTrailerRepository(q Querier) *TrailerRepo {
	return &TrailerRepo{q: q}
}

func scanTrailer(row pgx.Row) (*entity.Trailer, error) {
	var t entity.Trailer
	err := row.Scan(
		&t.ID, &t.NumeroEconomico, &t.Placas, &t.Marca, &t.Modelo,
		&t.Anio, &t.Kilometraje, &t.Estado, &t.CreadoEn, &t.ActualizadoEn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

// Create persiste un trailer. numero_economico duplicado -> ErrDuplicate.
func (r *TrailerRepo) Create(t *entity.Trailer) error {
	query := `
		INSERT INTO trailers (` + trailerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.NumeroEconomico, t.Placas, t.Marca, t.Modelo,
		t.Anio, t.Kilometraje, t.Estado, t.CreadoEn, t.ActualizadoEn,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return wrapStoreErr("insert trailer", err)
	}
	return nil
}

// GetByID obtiene un trailer por ID; nil si no existe.
func (r *TrailerRepo) GetByID(id string) (*entity.Trailer, error) {
	query := `SELECT ` + trailerColumns + ` FROM trailers WHERE id = $1`
	t, err := scanTrailer(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, wrapStoreErr("get trailer", err)
	}
	return t, nil
}

// GetForUpdate obtiene el trailer y bloquea la fila (SELECT FOR UPDATE).
// Usar solo dentro de una transacción del flujo de mantenimiento.
func (r *TrailerRepo) GetForUpdate(id string) (*entity.Trailer, error) {
	query := `SELECT ` + trailerColumns + ` FROM trailers WHERE id = $1 FOR UPDATE`
	t, err := scanTrailer(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, wrapStoreErr("get trailer for update", err)
	}
	return t, nil
}

// Update persiste los campos del trailer, estado incluido.
func (r *TrailerRepo) Update(t *entity.Trailer) error {
	query := `
		UPDATE trailers
		SET numero_economico = $2, placas = $3, marca = $4, modelo = $5,
		    anio = $6, kilometraje = $7, estado = $8, actualizado_en = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.NumeroEconomico, t.Placas, t.Marca, t.Modelo,
		t.Anio, t.Kilometraje, t.Estado, t.ActualizadoEn,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return wrapStoreErr("update trailer", err)
	}
	return nil
}

// UpdateEstado fija solo el estado (transiciones del flujo de mantenimiento).
func (r *TrailerRepo) UpdateEstado(id, estado string) error {
	query := `UPDATE trailers SET estado = $2, actualizado_en = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, estado)
	if err != nil {
		return wrapStoreErr("update trailer estado", err)
	}
	return nil
}

// List devuelve la flotilla ordenada por número económico.
func (r *TrailerRepo) List() ([]*entity.Trailer, error) {
	query := `SELECT ` + trailerColumns + ` FROM trailers ORDER BY numero_economico`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, wrapStoreErr("list trailers", err)
	}
	defer rows.Close()
	var list []*entity.Trailer
	for rows.Next() {
		var t entity.Trailer
		if err := rows.Scan(
			&t.ID, &t.NumeroEconomico, &t.Placas, &t.Marca, &t.Modelo,
			&t.Anio, &t.Kilometraje, &t.Estado, &t.CreadoEn, &t.ActualizadoEn,
		); err != nil {
			return nil, wrapStoreErr("scan trailer", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
