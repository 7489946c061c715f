package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/blues182/sistema-transporte-admin/internal/application/dto"
	"github.com/blues182/sistema-transporte-admin/internal/domain"
	"github.com/blues182/sistema-transporte-admin/internal/domain/entity"
	"github.com/blues182/sistema-transporte-admin/internal/domain/repository"
	"github.com/blues182/sistema-transporte-admin/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login y registro de usuarios.
// Es el colaborador de identidad del sistema: el núcleo recibe llamadas ya
// autorizadas y nunca decide sobre roles por su cuenta.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// Login verifica username/password contra bcrypt, genera JWT con el rol y
// retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.usuarioRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Estado != "activo" {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Usuario: toUsuarioResponse(user),
	}, nil
}

// RegisterUser crea un usuario: hashea el password con bcrypt y persiste.
// Devuelve ErrDuplicate si el username ya existe.
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest) (*dto.UsuarioResponse, error) {
	if in.Username == "" || in.Password == "" || in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	rol := in.Rol
	if rol == "" {
		rol = entity.RolOperador
	}
	if rol != entity.RolAdmin && rol != entity.RolOperador {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.usuarioRepo.GetByUsername(in.Username)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.Usuario{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Nombre:       in.Nombre,
		PasswordHash: string(hash),
		Rol:          rol,
		Estado:       "activo",
		CreadoEn:     time.Now(),
	}
	if err := uc.usuarioRepo.Create(user); err != nil {
		return nil, err
	}
	out := toUsuarioResponse(user)
	return &out, nil
}

func toUsuarioResponse(u *entity.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		ID:       u.ID,
		Username: u.Username,
		Nombre:   u.Nombre,
		Rol:      u.Rol,
	}
}
