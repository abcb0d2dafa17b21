package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/andresfq/caja-api/internal/application/dto"
	"github.com/andresfq/caja-api/internal/domain"
	"github.com/andresfq/caja-api/internal/domain/entity"
	"github.com/andresfq/caja-api/internal/domain/repository"
	"github.com/andresfq/caja-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación: login con email y password.
type AuthUseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, jwtCfg: jwtCfg}
}

// Login valida credenciales y emite un JWT con user_id, shop_id y role.
// Un usuario desactivado o sin verificar no puede iniciar sesión; en todos
// los casos de rechazo se devuelve el mismo error para no filtrar cuál fue.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	u, err := uc.users.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if u == nil || !u.Active() || !u.Verified {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	shopID := ""
	if u.ShopID != nil {
		shopID = *u.ShopID
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, shopID, u.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: userToResponse(u)}, nil
}

func userToResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		City:      u.City,
		Address:   u.Address,
		Tel:       u.Tel,
		Role:      u.Role,
		ShopID:    u.ShopID,
		Verified:  u.Verified,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
		DeletedAt: u.DeletedAt,
	}
}
