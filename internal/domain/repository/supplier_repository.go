package repository

import "github.com/andresfq/caja-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier.
// Company es clave natural única: Create devuelve domain.ErrDuplicate si el
// nombre de empresa ya existe (base del find-or-create en compras).
type SupplierRepository interface {
	Create(s *entity.Supplier) error
	GetByID(id string, includeDeleted bool) (*entity.Supplier, error)
	// GetByCompany busca un proveedor activo por nombre exacto de empresa.
	GetByCompany(company string) (*entity.Supplier, error)
	Update(s *entity.Supplier) error
	List(includeDeleted bool) ([]*entity.Supplier, error)
	SoftDelete(id, actorID string) error
	Restore(id, actorID string) error
	Delete(id string) error
}
