package repository

import (
	"time"

	"github.com/andresfq/caja-api/internal/domain/entity"
)

// PurchaseRepository define el puerto de persistencia para Purchase.
// Las compras no tienen borrado lógico: Delete es definitivo.
type PurchaseRepository interface {
	Create(p *entity.Purchase) error
	GetByID(id string) (*entity.Purchase, error)
	Update(p *entity.Purchase) error
	// List devuelve las compras de la tienda indicada (nil = todas) con
	// referencias createdBy/updatedBy/shop/supplier, ordenadas por fecha
	// descendente.
	List(shopID *string) ([]*entity.Purchase, error)
	// ListOutside como List pero solo compras marcadas is_outside.
	ListOutside(shopID *string) ([]*entity.Purchase, error)
	// ListByDateRange devuelve las compras de una tienda con fecha en
	// [from, to], orden descendente (consulta de conciliación).
	ListByDateRange(shopID string, from, to time.Time) ([]*entity.Purchase, error)
	Delete(id string) error
}
