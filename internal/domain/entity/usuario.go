package entity

import "time"

// Roles de usuario.
const (
	RolAdmin    = "admin"
	RolOperador = "operador"
)

// Usuario cuenta de acceso al sistema.
type Usuario struct {
	ID           string
	Username     string
	Nombre       string
	PasswordHash string
	Rol          string // admin | operador
	Estado       string // activo | inactivo
	CreadoEn     time.Time
}
