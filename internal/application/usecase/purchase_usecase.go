package usecase

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/andresfq/caja-api/internal/application/dto"
	"github.com/andresfq/caja-api/internal/domain"
	"github.com/andresfq/caja-api/internal/domain/entity"
	"github.com/andresfq/caja-api/internal/domain/policy"
	"github.com/andresfq/caja-api/internal/domain/repository"
)

// PurchaseUseCase casos de uso de compras. El proveedor llega como nombre de
// empresa y se resuelve con un find-or-create contra la clave natural.
type PurchaseUseCase struct {
	purchases repository.PurchaseRepository
	suppliers repository.SupplierRepository
	now       func() time.Time
}

// NewPurchaseUseCase construye el caso de uso con los puertos de persistencia.
func NewPurchaseUseCase(purchases repository.PurchaseRepository, suppliers repository.SupplierRepository) *PurchaseUseCase {
	return &PurchaseUseCase{purchases: purchases, suppliers: suppliers, now: time.Now}
}

// List devuelve las compras visibles para el actor, fecha descendente.
func (uc *PurchaseUseCase) List(actor policy.Actor) ([]dto.PurchaseResponse, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrForbidden
	}
	list, err := uc.purchases.List(policy.ScopeShop(actor))
	if err != nil {
		return nil, err
	}
	return toPurchaseResponses(list), nil
}

// ListOutside devuelve solo las compras marcadas is_outside, mismo alcance.
func (uc *PurchaseUseCase) ListOutside(actor policy.Actor) ([]dto.PurchaseResponse, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrForbidden
	}
	list, err := uc.purchases.ListOutside(policy.ScopeShop(actor))
	if err != nil {
		return nil, err
	}
	return toPurchaseResponses(list), nil
}

func toPurchaseResponses(list []*entity.Purchase) []dto.PurchaseResponse {
	items := make([]dto.PurchaseResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPurchaseResponse(p))
	}
	return items
}

// findOrCreateSupplier resuelve el proveedor por nombre exacto de empresa o
// lo crea si no existe. Hay una ventana de carrera entre el select y el
// insert: si otro request crea el mismo nombre en el medio, el insert cae
// por el constraint único y se relee la fila ganadora.
func (uc *PurchaseUseCase) findOrCreateSupplier(actor policy.Actor, company string) (*entity.Supplier, error) {
	if company == "" {
		return nil, domain.NewValidationError("supplier es requerido")
	}
	s, err := uc.suppliers.GetByCompany(company)
	if err != nil {
		return nil, err
	}
	if s != nil {
		return s, nil
	}
	now := uc.now()
	s = &entity.Supplier{
		ID:        uuid.New().String(),
		Company:   company,
		CreatedBy: &actor.ID,
		UpdatedBy: &actor.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err = uc.suppliers.Create(s)
	if errors.Is(err, domain.ErrDuplicate) {
		return uc.suppliers.GetByCompany(company)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Create registra una compra. Fecha y tienda se resuelven por política
// (employee: hora del servidor, tienda propia); el proveedor por
// find-or-create.
func (uc *PurchaseUseCase) Create(actor policy.Actor, in dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrForbidden
	}
	shopID := policy.EffectiveShop(actor, in.ShopID)
	if shopID == "" {
		return nil, domain.NewValidationError("shop_id es requerido")
	}
	supplier, err := uc.findOrCreateSupplier(actor, in.Supplier)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	p := &entity.Purchase{
		ID:            uuid.New().String(),
		Date:          policy.EffectiveDate(actor, parseDate(in.Date), now),
		Amount:        in.Amount,
		IsDeclared:    in.IsDeclared,
		IsOutside:     in.IsOutside,
		InvoiceNumber: in.InvoiceNumber,
		Comment:       in.Comment,
		ShopID:        shopID,
		SupplierID:    supplier.ID,
		CreatedBy:     &actor.ID,
		UpdatedBy:     &actor.ID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.purchases.Create(p); err != nil {
		return nil, err
	}
	p.Supplier = supplier
	return toPurchaseResponse(p), nil
}

// Update edita una compra existente, con las mismas reglas de política que
// Create; el proveedor se vuelve a resolver por nombre.
func (uc *PurchaseUseCase) Update(actor policy.Actor, in dto.UpdatePurchaseRequest) (*dto.PurchaseResponse, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrForbidden
	}
	p, err := uc.purchases.GetByID(in.ID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if !policy.CanSee(actor, p.ShopID) {
		return nil, domain.ErrForbidden
	}
	supplier, err := uc.findOrCreateSupplier(actor, in.Supplier)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	if policy.For(actor).OverrideDate {
		p.Date = policy.EffectiveDate(actor, parseDate(in.Date), now)
	}
	p.Amount = in.Amount
	p.IsDeclared = in.IsDeclared
	p.IsOutside = in.IsOutside
	p.InvoiceNumber = in.InvoiceNumber
	p.Comment = in.Comment
	p.ShopID = policy.EffectiveShop(actor, in.ShopID)
	p.SupplierID = supplier.ID
	p.UpdatedBy = &actor.ID
	p.UpdatedAt = now
	if err := uc.purchases.Update(p); err != nil {
		return nil, err
	}
	p.Supplier = supplier
	return toPurchaseResponse(p), nil
}

// Delete elimina definitivamente una compra. Superadmin cualquiera; admin
// las de su tienda; employee solo las que creó él mismo.
func (uc *PurchaseUseCase) Delete(actor policy.Actor, id string) error {
	if !actor.Authenticated() {
		return domain.ErrForbidden
	}
	p, err := uc.purchases.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	if !policy.CanDeleteRecord(actor, p.ShopID, p.CreatedBy) {
		return domain.ErrForbidden
	}
	return uc.purchases.Delete(id)
}
