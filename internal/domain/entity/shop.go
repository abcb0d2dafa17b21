package entity

import "time"

// Shop representa una tienda/punto de venta. Soporta borrado lógico:
// DeletedAt distinto de nil = tienda desactivada. Desactivar una tienda
// desactiva también a todos sus usuarios (ver event.ShopDeactivated).
type Shop struct {
	ID        string
	Name      string
	CreatedBy *string
	UpdatedBy *string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time

	CreatedByUser *UserRef
	UpdatedByUser *UserRef
}
