package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/andresfq/caja-api/internal/application/dto"
	"github.com/andresfq/caja-api/internal/domain"
	"github.com/andresfq/caja-api/internal/domain/entity"
	"github.com/andresfq/caja-api/internal/domain/policy"
	"github.com/andresfq/caja-api/internal/domain/repository"
)

// SupplierUseCase casos de uso de proveedores. Los proveedores son
// compartidos entre tiendas: cualquier usuario autenticado puede
// administrarlos.
type SupplierUseCase struct {
	suppliers repository.SupplierRepository
	now       func() time.Time
}

// NewSupplierUseCase construye el caso de uso con el puerto de persistencia.
func NewSupplierUseCase(suppliers repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{suppliers: suppliers, now: time.Now}
}

// List devuelve los proveedores; con includeDeleted también los desactivados.
func (uc *SupplierUseCase) List(actor policy.Actor, includeDeleted bool) ([]dto.SupplierResponse, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrForbidden
	}
	list, err := uc.suppliers.List(includeDeleted)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s))
	}
	return items, nil
}

// Create registra un proveedor. Devuelve error de validación si el nombre de
// empresa falta o ya existe.
func (uc *SupplierUseCase) Create(actor policy.Actor, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrForbidden
	}
	if in.Company == "" {
		return nil, domain.NewValidationError("company es requerido")
	}
	now := uc.now()
	s := &entity.Supplier{
		ID:        uuid.New().String(),
		Company:   in.Company,
		City:      in.City,
		Address:   in.Address,
		Tel:       in.Tel,
		CreatedBy: &actor.ID,
		UpdatedBy: &actor.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.suppliers.Create(s); err != nil {
		if err == domain.ErrDuplicate {
			return nil, domain.NewValidationError("company ya está registrado")
		}
		return nil, err
	}
	return toSupplierResponse(s), nil
}

// Update edita un proveedor (también desactivado).
func (uc *SupplierUseCase) Update(actor policy.Actor, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrForbidden
	}
	s, err := uc.suppliers.GetByID(in.ID, true)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if in.Company == "" {
		return nil, domain.NewValidationError("company es requerido")
	}
	s.Company = in.Company
	s.City = in.City
	s.Address = in.Address
	s.Tel = in.Tel
	s.UpdatedBy = &actor.ID
	s.UpdatedAt = uc.now()
	if err := uc.suppliers.Update(s); err != nil {
		if err == domain.ErrDuplicate {
			return nil, domain.NewValidationError("company ya está registrado")
		}
		return nil, err
	}
	return toSupplierResponse(s), nil
}

// Deactivate pone el tombstone al proveedor.
func (uc *SupplierUseCase) Deactivate(actor policy.Actor, id string) (*dto.SupplierResponse, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrForbidden
	}
	s, err := uc.suppliers.GetByID(id, true)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.suppliers.SoftDelete(id, actor.ID); err != nil {
		return nil, err
	}
	s, err = uc.suppliers.GetByID(id, true)
	if err != nil {
		return nil, err
	}
	return toSupplierResponse(s), nil
}

// Restore limpia el tombstone del proveedor.
func (uc *SupplierUseCase) Restore(actor policy.Actor, id string) (*dto.SupplierResponse, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrForbidden
	}
	s, err := uc.suppliers.GetByID(id, true)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.suppliers.Restore(id, actor.ID); err != nil {
		return nil, err
	}
	s, err = uc.suppliers.GetByID(id, false)
	if err != nil {
		return nil, err
	}
	return toSupplierResponse(s), nil
}

// Delete purga definitivamente un proveedor (irreversible).
func (uc *SupplierUseCase) Delete(actor policy.Actor, id string) error {
	if !actor.Authenticated() {
		return domain.ErrForbidden
	}
	s, err := uc.suppliers.GetByID(id, true)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	return uc.suppliers.Delete(id)
}
