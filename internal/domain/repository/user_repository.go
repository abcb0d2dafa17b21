package repository

import "github.com/andresfq/caja-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos Get devuelven (nil, nil) cuando el registro no existe.
type UserRepository interface {
	Create(u *entity.User) error
	// GetByID busca por id; con includeDeleted también encuentra desactivados.
	GetByID(id string, includeDeleted bool) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(u *entity.User) error
	// List devuelve usuarios (activos y desactivados) de la tienda indicada,
	// o de todas si shopID es nil. Orden: no verificados primero, luego más
	// recientes primero. Incluye referencias createdBy/updatedBy/shop.
	List(shopID *string) ([]*entity.User, error)
	// SoftDelete desactiva (tombstone) y estampa updatedBy.
	SoftDelete(id, actorID string) error
	// Restore limpia el tombstone y estampa updatedBy.
	Restore(id, actorID string) error
	// Delete elimina definitivamente el registro.
	Delete(id string) error
	// DeactivateByShop desactiva todos los usuarios activos de una tienda
	// (cascada de ShopDeactivated; se usa con repos atados a la transacción).
	DeactivateByShop(shopID, actorID string) error
}
