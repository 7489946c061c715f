package dto

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token JWT + datos básicos del usuario.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}

// RegisterRequest body para POST /api/auth/register (solo admin).
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Nombre   string `json:"nombre"`
	Rol      string `json:"rol,omitempty"` // admin | operador; default operador
}

// UsuarioResponse representación HTTP de un usuario (sin hash).
type UsuarioResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Nombre   string `json:"nombre"`
	Rol      string `json:"rol"`
}
