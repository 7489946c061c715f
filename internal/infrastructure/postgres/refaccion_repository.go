package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/blues182/sistema-transporte-admin/internal/domain"
	"github.com/blues182/sistema-transporte-admin/internal/domain/entity"
	"github.com/blues182/sistema-transporte-admin/internal/domain/repository"
)

var _ repository.RefaccionRepository = (*RefaccionRepo)(nil)

const refaccionColumns = `id, codigo, nombre, descripcion, categoria, stock_actual, stock_minimo, precio_unitario, ubicacion, creado_en, actualizado_en`

// RefaccionRepo implementación de RefaccionRepository sobre PostgreSQL (usable con pool o tx).
type RefaccionRepo struct {
	q Querier
}

// NewRefaccionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRefaccionRepository(q Querier) *RefaccionRepo {
	return &RefaccionRepo{q: q}
}

func scanRefaccion(row pgx.Row) (*entity.Refaccion, error) {
	var r entity.Refaccion
	err := row.Scan(
		&r.ID, &r.Codigo, &r.Nombre, &r.Descripcion, &r.Categoria,
		&r.StockActual, &r.StockMinimo, &r.PrecioUnitario, &r.Ubicacion,
		&r.CreadoEn, &r.ActualizadoEn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &r, nil
}

// Create persiste una refacción nueva. Codigo duplicado -> ErrDuplicate.
func (r *RefaccionRepo) Create(ref *entity.Refaccion) error {
	query := `
		INSERT INTO refacciones (` + refaccionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		ref.ID, ref.Codigo, ref.Nombre, ref.Descripcion, ref.Categoria,
		ref.StockActual, ref.StockMinimo, ref.PrecioUnitario, ref.Ubicacion,
		ref.CreadoEn, ref.ActualizadoEn,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return wrapStoreErr("insert refaccion", err)
	}
	return nil
}

// GetByID obtiene una refacción por ID; nil si no existe.
func (r *RefaccionRepo) GetByID(id string) (*entity.Refaccion, error) {
	query := `SELECT ` + refaccionColumns + ` FROM refacciones WHERE id = $1`
	ref, err := scanRefaccion(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, wrapStoreErr("get refaccion", err)
	}
	return ref, nil
}

// GetByCodigo obtiene una refacción por su código único; nil si no existe.
func (r *RefaccionRepo) GetByCodigo(codigo string) (*entity.Refaccion, error) {
	query := `SELECT ` + refaccionColumns + ` FROM refacciones WHERE codigo = $1`
	ref, err := scanRefaccion(r.q.QueryRow(context.Background(), query, codigo))
	if err != nil {
		return nil, wrapStoreErr("get refaccion by codigo", err)
	}
	return ref, nil
}

// GetForUpdate obtiene la refacción y bloquea la fila (SELECT FOR UPDATE).
// Usar solo dentro de una transacción: el lock serializa el check-then-write
// de stock contra escritores concurrentes de la misma fila.
func (r *RefaccionRepo) GetForUpdate(id string) (*entity.Refaccion, error) {
	query := `SELECT ` + refaccionColumns + ` FROM refacciones WHERE id = $1 FOR UPDATE`
	ref, err := scanRefaccion(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, wrapStoreErr("get refaccion for update", err)
	}
	return ref, nil
}

// Update actualiza los campos de catálogo. stock_actual se excluye a propósito:
// solo cambia vía UpdateStock dentro del motor de inventario.
func (r *RefaccionRepo) Update(ref *entity.Refaccion) error {
	query := `
		UPDATE refacciones
		SET nombre = $2, descripcion = $3, categoria = $4, stock_minimo = $5,
		    precio_unitario = $6, ubicacion = $7, actualizado_en = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		ref.ID, ref.Nombre, ref.Descripcion, ref.Categoria, ref.StockMinimo,
		ref.PrecioUnitario, ref.Ubicacion, ref.ActualizadoEn,
	)
	if err != nil {
		return wrapStoreErr("update refaccion", err)
	}
	return nil
}

// UpdateStock fija stock_actual. Llamar solo con la fila bloqueada (GetForUpdate).
func (r *RefaccionRepo) UpdateStock(id string, stock int) error {
	query := `UPDATE refacciones SET stock_actual = $2, actualizado_en = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, stock)
	if err != nil {
		return wrapStoreErr("update stock", err)
	}
	return nil
}

// List devuelve el catálogo completo ordenado por nombre.
func (r *RefaccionRepo) List() ([]*entity.Refaccion, error) {
	query := `SELECT ` + refaccionColumns + ` FROM refacciones ORDER BY nombre`
	return r.list(query)
}

// ListLowStock devuelve refacciones con stock_actual <= stock_minimo,
// ascendente por stock_actual (las más agotadas primero).
func (r *RefaccionRepo) ListLowStock() ([]*entity.Refaccion, error) {
	query := `SELECT ` + refaccionColumns + ` FROM refacciones WHERE stock_actual <= stock_minimo ORDER BY stock_actual`
	return r.list(query)
}

func (r *RefaccionRepo) list(query string, args ...any) ([]*entity.Refaccion, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, wrapStoreErr("list refacciones", err)
	}
	defer rows.Close()
	var list []*entity.Refaccion
	for rows.Next() {
		var ref entity.Refaccion
		if err := rows.Scan(
			&ref.ID, &ref.Codigo, &ref.Nombre, &ref.Descripcion, &ref.Categoria,
			&ref.StockActual, &ref.StockMinimo, &ref.PrecioUnitario, &ref.Ubicacion,
			&ref.CreadoEn, &ref.ActualizadoEn,
		); err != nil {
			return nil, wrapStoreErr("scan refaccion", err)
		}
		list = append(list, &ref)
	}
	return list, rows.Err()
}
