package repository

import "github.com/andresfq/caja-api/internal/domain/entity"

// ShopRepository define el puerto de persistencia para Shop.
type ShopRepository interface {
	Create(s *entity.Shop) error
	GetByID(id string, includeDeleted bool) (*entity.Shop, error)
	Update(s *entity.Shop) error
	// List devuelve las tiendas con referencias de auditoría; con
	// includeDeleted también las desactivadas.
	List(includeDeleted bool) ([]*entity.Shop, error)
	SoftDelete(id, actorID string) error
	Restore(id, actorID string) error
	Delete(id string) error
}
