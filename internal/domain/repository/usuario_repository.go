package repository

import "github.com/blues182/sistema-transporte-admin/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para usuarios.
type UsuarioRepository interface {
	Create(u *entity.Usuario) error
	GetByUsername(username string) (*entity.Usuario, error)
}
