package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/blues182/sistema-transporte-admin/internal/domain"
	"github.com/blues182/sistema-transporte-admin/internal/domain/entity"
	"github.com/blues182/sistema-transporte-admin/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación de UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste un usuario. Username duplicado -> ErrDuplicate.
func (r *UsuarioRepo) Create(u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (id, username, nombre, password_hash, rol, estado, creado_en)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Username, u.Nombre, u.PasswordHash, u.Rol, u.Estado, u.CreadoEn,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return wrapStoreErr("insert usuario", err)
	}
	return nil
}

// GetByUsername obtiene un usuario por username; nil si no existe.
func (r *UsuarioRepo) GetByUsername(username string) (*entity.Usuario, error) {
	query := `
		SELECT id, username, nombre, password_hash, rol, estado, creado_en
		FROM usuarios WHERE username = $1`
	var u entity.Usuario
	err := r.q.QueryRow(context.Background(), query, username).Scan(
		&u.ID, &u.Username, &u.Nombre, &u.PasswordHash, &u.Rol, &u.Estado, &u.CreadoEn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapStoreErr("get usuario", err)
	}
	return &u, nil
}
