package repository

import (
	"time"

	"github.com/andresfq/caja-api/internal/domain/entity"
)

// DrawRepository define el puerto de persistencia para Draw (arqueos).
// Los arqueos no tienen borrado lógico: Delete es definitivo.
type DrawRepository interface {
	Create(d *entity.Draw) error
	GetByID(id string) (*entity.Draw, error)
	Update(d *entity.Draw) error
	// List devuelve los arqueos de la tienda indicada (nil = todas) con
	// referencias createdBy/updatedBy/shop, ordenados por fecha descendente.
	List(shopID *string) ([]*entity.Draw, error)
	// ListByDateRange devuelve los arqueos de una tienda con fecha en
	// [from, to], orden descendente (consulta de conciliación).
	ListByDateRange(shopID string, from, to time.Time) ([]*entity.Draw, error)
	Delete(id string) error
}
