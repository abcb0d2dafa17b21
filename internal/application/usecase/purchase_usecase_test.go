package usecase

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andresfq/caja-api/internal/application/dto"
	"github.com/andresfq/caja-api/internal/domain"
	"github.com/andresfq/caja-api/internal/domain/entity"
)

func newPurchaseUC(purchases *fakePurchaseRepo, suppliers *fakeSupplierRepo) *PurchaseUseCase {
	uc := NewPurchaseUseCase(purchases, suppliers)
	uc.now = func() time.Time { return testNow }
	return uc
}

// ──────────────────────────────────────────────────────────────────────────────
// Find-or-create del proveedor
// ──────────────────────────────────────────────────────────────────────────────

func TestPurchaseCreate_ReutilizaProveedorExistente(t *testing.T) {
	purchases := newFakePurchaseRepo()
	suppliers := newFakeSupplierRepo()
	uc := newPurchaseUC(purchases, suppliers)

	suppliers.suppliers["sup-1"] = &entity.Supplier{ID: "sup-1", Company: "Metro AG"}

	out, err := uc.Create(empActor, dto.CreatePurchaseRequest{
		Supplier: "Metro AG",
		Amount:   decimal.NewFromInt(40),
	})
	require.NoError(t, err)

	assert.Equal(t, "sup-1", out.SupplierID, "mismo nombre exacto de empresa = mismo proveedor")
	assert.Len(t, suppliers.suppliers, 1, "no debe crearse un duplicado")
}

func TestPurchaseCreate_CreaProveedorNuevo(t *testing.T) {
	purchases := newFakePurchaseRepo()
	suppliers := newFakeSupplierRepo()
	uc := newPurchaseUC(purchases, suppliers)

	out, err := uc.Create(empActor, dto.CreatePurchaseRequest{Supplier: "Selgros"})
	require.NoError(t, err)

	assert.NotEmpty(t, out.SupplierID)
	s, err := suppliers.GetByCompany("Selgros")
	require.NoError(t, err)
	require.NotNil(t, s, "el proveedor inexistente se crea en el camino")
	assert.Equal(t, s.ID, out.SupplierID)
}

func TestPurchaseCreate_GanaLaCarreraDelConstraintUnico(t *testing.T) {
	purchases := newFakePurchaseRepo()
	suppliers := newFakeSupplierRepo()
	uc := newPurchaseUC(purchases, suppliers)

	// Otro request crea el mismo proveedor entre el select y el insert; el
	// insert cae por duplicado y debe releerse la fila ganadora.
	suppliers.beforeCreate = func() {
		suppliers.beforeCreate = nil
		suppliers.suppliers["ganador"] = &entity.Supplier{ID: "ganador", Company: "Selgros"}
	}

	out, err := uc.Create(empActor, dto.CreatePurchaseRequest{Supplier: "Selgros"})
	require.NoError(t, err)

	assert.Equal(t, "ganador", out.SupplierID,
		"tras el duplicado se usa el proveedor que ganó la carrera")
	assert.Len(t, suppliers.suppliers, 1)
}

func TestPurchaseCreate_SinProveedorFalla(t *testing.T) {
	uc := newPurchaseUC(newFakePurchaseRepo(), newFakeSupplierRepo())

	_, err := uc.Create(empActor, dto.CreatePurchaseRequest{})
	ve, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "supplier es requerido")
}

// ──────────────────────────────────────────────────────────────────────────────
// Política de fecha y tienda (igual que arqueos)
// ──────────────────────────────────────────────────────────────────────────────

func TestPurchaseCreate_EmployeeRecibeFechaDelServidor(t *testing.T) {
	purchases := newFakePurchaseRepo()
	uc := newPurchaseUC(purchases, newFakeSupplierRepo())

	out, err := uc.Create(empActor, dto.CreatePurchaseRequest{
		Supplier: "Metro AG",
		Date:     "2020-01-01",
		ShopID:   "shop-9",
	})
	require.NoError(t, err)

	assert.Equal(t, testNow, out.Date)
	assert.Equal(t, "shop-1", out.ShopID)
}

func TestPurchaseUpdate_ResuelveProveedorPorNombre(t *testing.T) {
	purchases := newFakePurchaseRepo()
	suppliers := newFakeSupplierRepo()
	uc := newPurchaseUC(purchases, suppliers)

	suppliers.suppliers["sup-1"] = &entity.Supplier{ID: "sup-1", Company: "Metro AG"}
	created := "em-1"
	purchases.purchases["p1"] = &entity.Purchase{
		ID: "p1", ShopID: "shop-1", SupplierID: "sup-1", CreatedBy: &created,
	}

	out, err := uc.Update(admActor, dto.UpdatePurchaseRequest{
		ID:       "p1",
		Supplier: "Selgros",
		Amount:   decimal.NewFromInt(70),
	})
	require.NoError(t, err)

	assert.NotEqual(t, "sup-1", out.SupplierID, "el nombre nuevo resuelve a otro proveedor")
	require.NotNil(t, out.Supplier)
	assert.Equal(t, "Selgros", out.Supplier.Company)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listados y borrado
// ──────────────────────────────────────────────────────────────────────────────

func TestPurchaseListOutside_FiltraSoloExternas(t *testing.T) {
	purchases := newFakePurchaseRepo()
	uc := newPurchaseUC(purchases, newFakeSupplierRepo())

	purchases.purchases["in"] = &entity.Purchase{ID: "in", ShopID: "shop-1"}
	purchases.purchases["out"] = &entity.Purchase{ID: "out", ShopID: "shop-1", IsOutside: true}

	list, err := uc.ListOutside(empActor)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "out", list[0].ID)
}

func TestPurchaseDelete_EmployeeSoloLoPropio(t *testing.T) {
	purchases := newFakePurchaseRepo()
	uc := newPurchaseUC(purchases, newFakeSupplierRepo())

	other := "em-2"
	purchases.purchases["ajena"] = &entity.Purchase{ID: "ajena", ShopID: "shop-1", CreatedBy: &other}

	assert.ErrorIs(t, uc.Delete(empActor, "ajena"), domain.ErrForbidden)

	got, _ := purchases.GetByID("ajena")
	assert.NotNil(t, got, "el rechazo no debe tocar el registro")
}

func TestPurchaseDelete_Definitivo(t *testing.T) {
	purchases := newFakePurchaseRepo()
	uc := newPurchaseUC(purchases, newFakeSupplierRepo())

	id := uuid.New().String()
	purchases.purchases[id] = &entity.Purchase{ID: id, ShopID: "shop-9"}

	require.NoError(t, uc.Delete(saActor, id))
	got, _ := purchases.GetByID(id)
	assert.Nil(t, got)
}
