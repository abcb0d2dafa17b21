package auth

import (
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andresfq/caja-api/internal/application/dto"
	"github.com/andresfq/caja-api/internal/domain"
	"github.com/andresfq/caja-api/internal/domain/entity"
	pkgjwt "github.com/andresfq/caja-api/pkg/jwt"
)

// fakeUserRepo implementación mínima en memoria del puerto de usuarios,
// solo lo que Login necesita.
type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error { return nil }
func (r *fakeUserRepo) GetByID(id string, includeDeleted bool) (*entity.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.byEmail[email], nil
}
func (r *fakeUserRepo) Update(u *entity.User) error                  { return nil }
func (r *fakeUserRepo) List(shopID *string) ([]*entity.User, error)  { return nil, nil }
func (r *fakeUserRepo) SoftDelete(id, actorID string) error          { return nil }
func (r *fakeUserRepo) Restore(id, actorID string) error             { return nil }
func (r *fakeUserRepo) Delete(id string) error                       { return nil }
func (r *fakeUserRepo) DeactivateByShop(shopID, actorID string) error { return nil }

const testSecret = "secret-para-tests"

func seededUC(t *testing.T, mutate func(*entity.User)) (*AuthUseCase, *entity.User) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secreta123"), bcrypt.MinCost)
	require.NoError(t, err)

	shop := "shop-1"
	u := &entity.User{
		ID:           "u1",
		Email:        "ana@example.com",
		Role:         entity.RoleAdmin,
		ShopID:       &shop,
		Verified:     true,
		PasswordHash: string(hash),
	}
	if mutate != nil {
		mutate(u)
	}
	repo := &fakeUserRepo{byEmail: map[string]*entity.User{u.Email: u}}
	uc := NewAuthUseCase(repo, JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "caja-test"})
	return uc, u
}

func TestLogin_EmiteTokenConClaims(t *testing.T) {
	uc, _ := seededUC(t, nil)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "secreta123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, shopID, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
	assert.Equal(t, "shop-1", shopID)
	assert.Equal(t, entity.RoleAdmin, role)
	assert.Equal(t, "ana@example.com", out.User.Email)
}

func TestLogin_SuperadminSinTienda(t *testing.T) {
	uc, _ := seededUC(t, func(u *entity.User) {
		u.Role = entity.RoleSuperadmin
		u.ShopID = nil
	})

	out, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "secreta123"})
	require.NoError(t, err)

	_, shopID, _, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Empty(t, shopID, "superadmin lleva shop_id vacío en el token")
}

func TestLogin_RechazosUniformes(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*entity.User)
		req    dto.LoginRequest
	}{
		{
			name: "password incorrecto",
			req:  dto.LoginRequest{Email: "ana@example.com", Password: "otra"},
		},
		{
			name: "email inexistente",
			req:  dto.LoginRequest{Email: "nadie@example.com", Password: "secreta123"},
		},
		{
			name:   "usuario desactivado",
			mutate: func(u *entity.User) { now := time.Now(); u.DeletedAt = &now },
			req:    dto.LoginRequest{Email: "ana@example.com", Password: "secreta123"},
		},
		{
			name:   "usuario sin verificar",
			mutate: func(u *entity.User) { u.Verified = false },
			req:    dto.LoginRequest{Email: "ana@example.com", Password: "secreta123"},
		},
		{
			name: "credenciales vacías",
			req:  dto.LoginRequest{},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, _ := seededUC(t, tc.mutate)
			_, err := uc.Login(tc.req)
			assert.ErrorIs(t, err, domain.ErrInvalidCredentials,
				"todos los rechazos devuelven el mismo error para no filtrar el motivo")
		})
	}
}
