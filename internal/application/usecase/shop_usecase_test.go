package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andresfq/caja-api/internal/application/dto"
	"github.com/andresfq/caja-api/internal/domain"
	"github.com/andresfq/caja-api/internal/domain/entity"
)

func newShopUC(shops *fakeShopRepo, users *fakeUserRepo) (*ShopUseCase, *fakeTxRunner) {
	tx := &fakeTxRunner{shops: shops, users: users}
	uc := NewShopUseCase(shops, tx)
	uc.now = func() time.Time { return testNow }
	return uc, tx
}

func seedShopWithUsers(shops *fakeShopRepo, users *fakeUserRepo) {
	shop1 := "shop-1"
	shop2 := "shop-2"
	shops.shops["shop-1"] = &entity.Shop{ID: "shop-1", Name: "Centro"}
	shops.shops["shop-2"] = &entity.Shop{ID: "shop-2", Name: "Norte"}
	users.users["u1"] = &entity.User{ID: "u1", Role: entity.RoleAdmin, ShopID: &shop1}
	users.users["u2"] = &entity.User{ID: "u2", Role: entity.RoleEmployee, ShopID: &shop1}
	users.users["u3"] = &entity.User{ID: "u3", Role: entity.RoleEmployee, ShopID: &shop2}
}

// ──────────────────────────────────────────────────────────────────────────────
// Solo superadmin administra tiendas
// ──────────────────────────────────────────────────────────────────────────────

func TestShop_SoloSuperadmin(t *testing.T) {
	uc, _ := newShopUC(newFakeShopRepo(), newFakeUserRepo())

	_, err := uc.List(admActor, false)
	assert.ErrorIs(t, err, domain.ErrForbidden, "admin no administra tiendas")

	_, err = uc.Create(empActor, dto.CreateShopRequest{Name: "Sur"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Deactivate(admActor, "shop-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestShopCreate_NombreRequerido(t *testing.T) {
	uc, _ := newShopUC(newFakeShopRepo(), newFakeUserRepo())

	_, err := uc.Create(saActor, dto.CreateShopRequest{})
	_, ok := domain.AsValidation(err)
	assert.True(t, ok)
}

// ──────────────────────────────────────────────────────────────────────────────
// Desactivación en cascada
// ──────────────────────────────────────────────────────────────────────────────

func TestShopDeactivate_CascadaDesactivaUsuarios(t *testing.T) {
	shops := newFakeShopRepo()
	users := newFakeUserRepo()
	uc, _ := newShopUC(shops, users)
	seedShopWithUsers(shops, users)

	out, err := uc.Deactivate(saActor, "shop-1")
	require.NoError(t, err)
	assert.NotNil(t, out.DeletedAt, "la tienda queda con tombstone")

	u1, _ := users.GetByID("u1", true)
	u2, _ := users.GetByID("u2", true)
	u3, _ := users.GetByID("u3", true)
	assert.NotNil(t, u1.DeletedAt, "todos los usuarios de la tienda caen con ella")
	assert.NotNil(t, u2.DeletedAt)
	assert.Nil(t, u3.DeletedAt, "los usuarios de otras tiendas no se tocan")
}

func TestShopDeactivate_FallaDeTransaccionNoDesactivaNada(t *testing.T) {
	shops := newFakeShopRepo()
	users := newFakeUserRepo()
	uc, tx := newShopUC(shops, users)
	seedShopWithUsers(shops, users)

	tx.failWith = errors.New("deadlock")

	_, err := uc.Deactivate(saActor, "shop-1")
	require.Error(t, err)

	s, _ := shops.GetByID("shop-1", true)
	u1, _ := users.GetByID("u1", true)
	assert.Nil(t, s.DeletedAt, "sin transacción exitosa la tienda sigue activa")
	assert.Nil(t, u1.DeletedAt)
}

func TestShopRestore_NoReactivaUsuarios(t *testing.T) {
	shops := newFakeShopRepo()
	users := newFakeUserRepo()
	uc, _ := newShopUC(shops, users)
	seedShopWithUsers(shops, users)

	_, err := uc.Deactivate(saActor, "shop-1")
	require.NoError(t, err)

	out, err := uc.Restore(saActor, "shop-1")
	require.NoError(t, err)
	assert.Nil(t, out.DeletedAt)

	u1, _ := users.GetByID("u1", true)
	assert.NotNil(t, u1.DeletedAt,
		"restaurar la tienda no reactiva a sus usuarios: se restauran uno a uno")
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestShopUpdate_RenombraTambienDesactivada(t *testing.T) {
	shops := newFakeShopRepo()
	users := newFakeUserRepo()
	uc, _ := newShopUC(shops, users)

	deleted := testNow
	shops.shops["shop-1"] = &entity.Shop{ID: "shop-1", Name: "Centro", DeletedAt: &deleted}

	out, err := uc.Update(saActor, dto.UpdateShopRequest{ID: "shop-1", Name: "Centro Histórico"})
	require.NoError(t, err)
	assert.Equal(t, "Centro Histórico", out.Name)
}

func TestShopDelete_Definitivo(t *testing.T) {
	shops := newFakeShopRepo()
	uc, _ := newShopUC(shops, newFakeUserRepo())
	shops.shops["shop-1"] = &entity.Shop{ID: "shop-1", Name: "Centro"}

	require.NoError(t, uc.Delete(saActor, "shop-1"))
	got, _ := shops.GetByID("shop-1", true)
	assert.Nil(t, got)
}

func TestShopDelete_InexistenteEsNotFound(t *testing.T) {
	uc, _ := newShopUC(newFakeShopRepo(), newFakeUserRepo())
	assert.ErrorIs(t, uc.Delete(saActor, "nope"), domain.ErrNotFound)
}
