package usecase

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andresfq/caja-api/internal/application/dto"
	"github.com/andresfq/caja-api/internal/domain"
	"github.com/andresfq/caja-api/internal/domain/entity"
	"github.com/andresfq/caja-api/internal/domain/policy"
)

var (
	testNow = time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	saActor  = policy.Actor{ID: "sa-1", Role: entity.RoleSuperadmin}
	admActor = policy.Actor{ID: "ad-1", Role: entity.RoleAdmin, ShopID: "shop-1"}
	empActor = policy.Actor{ID: "em-1", Role: entity.RoleEmployee, ShopID: "shop-1"}
)

func newDrawUC(repo *fakeDrawRepo) *DrawUseCase {
	uc := NewDrawUseCase(repo)
	uc.now = func() time.Time { return testNow }
	return uc
}

// ──────────────────────────────────────────────────────────────────────────────
// Create: fecha efectiva, tienda destino, PlusMinus
// ──────────────────────────────────────────────────────────────────────────────

func TestDrawCreate_EmployeeRecibeFechaDelServidor(t *testing.T) {
	repo := newFakeDrawRepo()
	uc := newDrawUC(repo)

	out, err := uc.Create(empActor, dto.CreateDrawRequest{
		Date:         "2020-01-01",
		CashAmount:   decimal.NewFromInt(100),
		TotalAmount:  decimal.NewFromInt(100),
		SystemAmount: decimal.NewFromInt(90),
	})
	require.NoError(t, err)

	assert.Equal(t, testNow, out.Date,
		"la fecha enviada por el employee se ignora y se estampa la del servidor")
	assert.Equal(t, "shop-1", out.ShopID, "el employee queda anclado a su tienda")
}

func TestDrawCreate_AdminPuedeFijarFecha(t *testing.T) {
	repo := newFakeDrawRepo()
	uc := newDrawUC(repo)

	out, err := uc.Create(admActor, dto.CreateDrawRequest{
		Date:   "2025-06-01",
		ShopID: "shop-9", // se ignora: admin no elige tienda
	})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local), out.Date,
		"las fechas del payload se interpretan en la zona local del servidor")
	assert.Equal(t, "shop-1", out.ShopID)
}

func TestDrawCreate_SuperadminEligeTienda(t *testing.T) {
	repo := newFakeDrawRepo()
	uc := newDrawUC(repo)

	out, err := uc.Create(saActor, dto.CreateDrawRequest{ShopID: "shop-9"})
	require.NoError(t, err)
	assert.Equal(t, "shop-9", out.ShopID)
}

func TestDrawCreate_SuperadminSinTiendaFalla(t *testing.T) {
	uc := newDrawUC(newFakeDrawRepo())

	_, err := uc.Create(saActor, dto.CreateDrawRequest{})
	ve, ok := domain.AsValidation(err)
	require.True(t, ok, "superadmin sin shop_id en el request debe fallar por validación")
	assert.Contains(t, ve.Fields, "shop_id es requerido")
}

func TestDrawCreate_PlusMinusCalculadoEnServidor(t *testing.T) {
	repo := newFakeDrawRepo()
	uc := newDrawUC(repo)

	out, err := uc.Create(admActor, dto.CreateDrawRequest{
		TotalAmount:  decimal.RequireFromString("150.50"),
		SystemAmount: decimal.RequireFromString("148.25"),
	})
	require.NoError(t, err)

	assert.True(t, out.PlusMinus.Equal(decimal.RequireFromString("2.25")),
		"plus_minus = total_amount - system_amount, nunca lo que diga el cliente")
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestDrawUpdate_EmployeeNoCambiaFecha(t *testing.T) {
	repo := newFakeDrawRepo()
	uc := newDrawUC(repo)

	original := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	created := "em-1"
	repo.draws["d1"] = &entity.Draw{ID: "d1", Date: original, ShopID: "shop-1", CreatedBy: &created}

	out, err := uc.Update(empActor, dto.UpdateDrawRequest{ID: "d1", Date: "2020-01-01"})
	require.NoError(t, err)

	assert.Equal(t, original, out.Date, "el employee no puede reescribir la fecha del arqueo")
}

func TestDrawUpdate_FueraDeTiendaEsForbidden(t *testing.T) {
	repo := newFakeDrawRepo()
	uc := newDrawUC(repo)
	repo.draws["d1"] = &entity.Draw{ID: "d1", ShopID: "shop-2"}

	_, err := uc.Update(admActor, dto.UpdateDrawRequest{ID: "d1"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDrawUpdate_InexistenteEsNotFound(t *testing.T) {
	uc := newDrawUC(newFakeDrawRepo())

	_, err := uc.Update(admActor, dto.UpdateDrawRequest{ID: "nope"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete: alcance por rol y permanencia
// ──────────────────────────────────────────────────────────────────────────────

func TestDrawDelete_EmployeeSoloLoPropio(t *testing.T) {
	repo := newFakeDrawRepo()
	uc := newDrawUC(repo)

	own := "em-1"
	other := "em-2"
	repo.draws["propio"] = &entity.Draw{ID: "propio", ShopID: "shop-1", CreatedBy: &own}
	repo.draws["ajeno"] = &entity.Draw{ID: "ajeno", ShopID: "shop-1", CreatedBy: &other}

	assert.ErrorIs(t, uc.Delete(empActor, "ajeno"), domain.ErrForbidden,
		"employee no borra arqueos que no creó")
	require.NoError(t, uc.Delete(empActor, "propio"))

	got, _ := repo.GetByID("propio")
	assert.Nil(t, got, "el borrado de arqueos es definitivo, no hay tombstone")
}

func TestDrawDelete_AdminCualquieraDeSuTienda(t *testing.T) {
	repo := newFakeDrawRepo()
	uc := newDrawUC(repo)

	other := "em-2"
	repo.draws["ajeno"] = &entity.Draw{ID: "ajeno", ShopID: "shop-1", CreatedBy: &other}
	repo.draws["otraTienda"] = &entity.Draw{ID: "otraTienda", ShopID: "shop-2", CreatedBy: &other}

	require.NoError(t, uc.Delete(admActor, "ajeno"))
	assert.ErrorIs(t, uc.Delete(admActor, "otraTienda"), domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// List: alcance por tienda
// ──────────────────────────────────────────────────────────────────────────────

func TestDrawList_AlcancePorRol(t *testing.T) {
	repo := newFakeDrawRepo()
	uc := newDrawUC(repo)
	repo.draws["a"] = &entity.Draw{ID: "a", ShopID: "shop-1", Date: testNow}
	repo.draws["b"] = &entity.Draw{ID: "b", ShopID: "shop-2", Date: testNow.Add(time.Hour)}

	all, err := uc.List(saActor)
	require.NoError(t, err)
	assert.Len(t, all, 2, "superadmin ve todas las tiendas")

	mine, err := uc.List(empActor)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "a", mine[0].ID)
}

func TestDrawList_SinAutenticarEsForbidden(t *testing.T) {
	uc := newDrawUC(newFakeDrawRepo())
	_, err := uc.List(policy.Actor{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
